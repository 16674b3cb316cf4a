package worker

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

const (
	LogMsgWorkerJobFailed  = "Worker job failed"
	LogMsgWorkerJobDropped = "Worker queue full, job dropped"
)

// ============================================================================
// Log Messages - Dataset Refresh
// ============================================================================

const (
	LogMsgDatasetRefreshed     = "Dataset refreshed from remote source"
	LogMsgDatasetUnchanged     = "Remote dataset unchanged"
	LogMsgDatasetRefreshFailed = "Dataset refresh failed"
)

// Refresh outcomes reported to metrics
const (
	RefreshOutcomeReplaced  = "replaced"
	RefreshOutcomeUnchanged = "unchanged"
	RefreshOutcomeFailed    = "failed"
)

// JobNameDatasetRefresh identifies the refresh job in logs
const JobNameDatasetRefresh = "dataset_refresh"
