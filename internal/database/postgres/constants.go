package postgres

// Error Messages - Dataset Operations
const (
	ErrMsgFailedToEncodeDataset = "failed to encode dataset"
	ErrMsgFailedToDecodeDataset = "failed to decode dataset"
	ErrMsgFailedToSaveDataset   = "failed to save dataset"
	ErrMsgFailedToGetDataset    = "failed to get dataset"
	ErrMsgFailedToListDatasets  = "failed to list datasets"
	ErrMsgFailedToScanDatasets  = "failed to scan datasets"
	ErrMsgFailedToDeleteDataset = "failed to delete dataset"
)
