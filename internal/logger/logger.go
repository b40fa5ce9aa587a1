package logger

import (
	"log/slog"
	"os"
	"strings"
)

// Logger is a structured logger wrapper around slog.
type Logger struct {
	*slog.Logger
}

// New creates a JSON logger writing to stderr at the given level.
func New(level string) *Logger {
	var logLevel slog.Level

	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn", "warning":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithFields creates a child logger with additional fields.
func (l *Logger) WithFields(fields ...any) *Logger {
	return &Logger{
		Logger: l.With(fields...),
	}
}
