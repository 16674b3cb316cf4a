package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidQueryParam = "Invalid %s query parameter"

	// Dataset error messages
	ErrMsgUnsupportedFormat = "Unsupported dataset format. Use json or yaml"
	ErrMsgDatasetTooLarge   = "Dataset document is too large"
	ErrMsgReadBodyFailed    = "Failed to read request body"
	ErrMsgEncodeFailed      = "Failed to encode dataset"

	// Valuation error messages
	ErrMsgMissingItemName = "Missing item name"
)

// Success messages for API responses
const (
	MsgDatasetReplaced = "Dataset replaced"
	MsgMaterialSaved   = "Material saved"
	MsgMaterialRemoved = "Material removed"
	MsgRecipeSaved     = "Recipe saved"
	MsgRecipeRemoved   = "Recipe removed"
	MsgDatasetLoaded   = "Dataset loaded"
	MsgDatasetExported = "Dataset exported"
)
