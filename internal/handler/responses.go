package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/CraftValue_Go/internal/domain"
	"github.com/osse101/CraftValue_Go/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response. Kind and Item are set for
// valuation failures so clients can react to the specific cause.
type ErrorResponse struct {
	Error string           `json:"error"`
	Kind  domain.ErrorKind `json:"kind,omitempty"`
	Item  string           `json:"item,omitempty"`
}

// VersionedResponse reports the dataset version produced by a mutation
type VersionedResponse struct {
	Message string `json:"message"`
	Version uint64 `json:"version"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode before writing headers so an encoding failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a service failure and maps it to a status and user
// message. Resolve errors also carry their kind and the offending item name.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, message := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err)
	} else {
		log.Warn(opName+" rejected", "status", status, "error", err)
	}
	resp := ErrorResponse{Error: message}
	if re, ok := domain.AsResolveError(err); ok {
		resp.Kind = re.Kind
		resp.Item = re.Name
	}
	respondJSON(w, status, resp)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."
	ErrMsgAuthFailedError     = "Authentication failed. Please check your API key."
	ErrMsgTooManyRequestsErr  = "Too many requests. Please try again later."

	// Valuation messages
	ErrMsgItemNotFoundError        = "Item not found"
	ErrMsgMaterialPriceMissingErr  = "A material in this recipe has no price yet"
	ErrMsgCircularDependencyError  = "This recipe depends on itself"
	ErrMsgGenericCostError         = "This item has no cost, so efficiency cannot be computed"
	ErrMsgInvalidEfficiencyModeErr = "Unknown efficiency mode. Use best, 1, 2, 3, 5 or 10"

	// Dataset messages
	ErrMsgInvalidDatasetError = "Dataset is invalid"
	ErrMsgNameConflictError   = "That name is already used by another material or recipe"
	ErrMsgDatasetMissingError = "Saved dataset not found"
	ErrMsgNoPersistenceError  = "Saving datasets is not enabled on this server"
	ErrMsgInvalidInputError   = "Invalid input"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrMaterialPriceMissing):
		return http.StatusUnprocessableEntity, ErrMsgMaterialPriceMissingErr
	case errors.Is(err, domain.ErrCircularDependency):
		return http.StatusUnprocessableEntity, ErrMsgCircularDependencyError
	case errors.Is(err, domain.ErrGenericCost):
		return http.StatusUnprocessableEntity, ErrMsgGenericCostError
	case errors.Is(err, domain.ErrInvalidEfficiencyMode):
		return http.StatusBadRequest, ErrMsgInvalidEfficiencyModeErr
	case errors.Is(err, domain.ErrNameConflict):
		return http.StatusConflict, ErrMsgNameConflictError
	case errors.Is(err, domain.ErrInvalidDataset):
		return http.StatusBadRequest, ErrMsgInvalidDatasetError
	case errors.Is(err, domain.ErrDatasetMissing):
		return http.StatusNotFound, ErrMsgDatasetMissingError
	case errors.Is(err, domain.ErrNoPersistence):
		return http.StatusNotImplemented, ErrMsgNoPersistenceError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
