package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/wagerlab/predictgate/internal/config"
	"github.com/wagerlab/predictgate/internal/logger"
)

// SetupLogger initializes the application logger with file and stdout output.
// It creates the log directory, cleans up old logs, sets up a MultiWriter for
// stdout and file output, and initializes slog.
// Returns the log file handle (caller must close) and any error encountered.
func SetupLogger(cfg *config.Config) (*os.File, error) {
	// Create logs directory
	if err := os.MkdirAll(cfg.LogDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create logs directory: %w", err)
	}

	// Cleanup old logs
	cleanupLogs(cfg.LogDir)

	// Create timestamped log file
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	logFileName := filepath.Join(cfg.LogDir, fmt.Sprintf("session_%s.log", timestamp))

	logFile, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	// Initialize logger with MultiWriter (stdout + file)
	mw := io.MultiWriter(os.Stdout, logFile)

	addSource := cfg.Environment == "dev" || cfg.Environment == "development"
	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		logger.DefaultServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	)
	logger.InitLoggerWithWriter(loggerConfig, mw)

	slog.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel)
	slog.Info(LogMsgStartingService,
		"environment", cfg.Environment,
		"log_level", cfg.LogLevel,
		"log_format", cfg.LogFormat,
		"version", cfg.Version)

	slog.Debug(LogMsgConfigurationLoaded,
		"store_backend", cfg.StoreBackend,
		"networks_config", cfg.NetworksConfig,
		"minimum_deposit", cfg.MinimumDeposit,
		"predictions_awarded", cfg.PredictionsAwarded,
		"port", cfg.Port)

	return logFile, nil
}

// cleanupLogs removes old log files, keeping only the most recent ones.
// This prevents unbounded log file accumulation.
func cleanupLogs(logDir string) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var logFiles []os.DirEntry
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".log") {
			logFiles = append(logFiles, entry)
		}
	}

	if len(logFiles) > maxLogFiles {
		toDelete := len(logFiles) - maxLogFiles
		for i := 0; i < toDelete; i++ {
			err := os.Remove(filepath.Join(logDir, logFiles[i].Name()))
			if err != nil {
				fmt.Printf("Failed to delete old log file %s: %v\n", logFiles[i].Name(), err)
			}
		}
	}
}
