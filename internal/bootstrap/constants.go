package bootstrap

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files (read/write for owner, read for group/others)
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of log files kept after cleanup,
	// leaving room for the file about to be created
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingService     = "Starting craft value service"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// =============================================================================
// Dataset Source Messages
// =============================================================================

const (
	LogMsgDatasetFetched     = "Dataset fetched"
	LogMsgDatasetLoaded      = "Dataset loaded from file"
	LogMsgDatasetFileMissing = "Dataset file not found, starting empty"
	LogMsgDatasetEmpty       = "No dataset source configured, starting empty"
	LogMsgStoredDatasetReady = "Stored dataset activated"

	ErrMsgFailedFetchDataset = "failed to fetch dataset"
	ErrMsgFailedLoadDataset  = "failed to load dataset"
)

// =============================================================================
// Persistence Messages
// =============================================================================

const (
	LogMsgPersistenceDisabled = "Persistence disabled, save and load are unavailable"
	ErrMsgFailedConnectDB     = "failed to connect to database"
	ErrMsgFailedMigrateDB     = "failed to migrate database"
)

// =============================================================================
// Refresh Messages
// =============================================================================

const (
	LogMsgRefreshScheduled = "Dataset refresh scheduled"
	LogMsgRefreshStopping  = "Stopping dataset refresh..."
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgClosingDatabase      = "Closing database pool..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
)
