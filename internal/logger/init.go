package logger

import (
	"io"
	"log/slog"
	"os"
)

// InitLogger initializes the default slog logger writing to stdout.
func InitLogger(config Config) {
	InitLoggerWithWriter(config, os.Stdout)
}

// InitLoggerWithWriter initializes the default slog logger with a custom
// writer. Used by tests and by the bootstrap layer for file+stdout output.
func InitLoggerWithWriter(config Config, w io.Writer) {
	opts := &slog.HandlerOptions{
		Level:     config.LogLevel(),
		AddSource: config.AddSource,
	}

	var handler slog.Handler
	if config.IsJSON() {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler.WithAttrs(config.BaseAttributes()))
	slog.SetDefault(logger)
}

// Package-level logging helpers that use the default logger.

func Debug(msg string, args ...any) {
	slog.Default().Debug(msg, args...)
}

func Info(msg string, args ...any) {
	slog.Default().Info(msg, args...)
}

func Warn(msg string, args ...any) {
	slog.Default().Warn(msg, args...)
}

func Error(msg string, args ...any) {
	slog.Default().Error(msg, args...)
}
