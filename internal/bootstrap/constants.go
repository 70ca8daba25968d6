package bootstrap

// Log messages for application lifecycle
const (
	LogMsgLoggingInitialized    = "Logging initialized"
	LogMsgStartingService       = "Starting predictgate"
	LogMsgConfigurationLoaded   = "Configuration loaded"
	LogMsgShuttingDownServer    = "Shutting down server..."
	LogMsgServerForcedShutdown  = "Server forced to shutdown"
	LogMsgClosingLedgerStore    = "Closing ledger store"
	LogMsgServerStopped         = "Server stopped"
)

// maxLogFiles is the number of log files kept after cleanup
const maxLogFiles = 9
