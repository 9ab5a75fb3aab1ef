package main

import (
	"fmt"
	"log/slog"
	"os"
)

// ResolveLogLevel maps a -log-level value to a slog level.
func ResolveLogLevel(level string) (slog.Level, error) {
	switch level {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level: %s", level)
	}
}

// newLogger writes text logs to path. The terminal belongs to the TUI, so an
// empty path discards everything. cleanup closes the log file.
func newLogger(level, path string) (logger *slog.Logger, cleanup func(), err error) {
	logLevel, err := ResolveLogLevel(level)
	if err != nil {
		return nil, nil, err
	}
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	handler := slog.NewTextHandler(f, &slog.HandlerOptions{
		Level: logLevel,
	})
	return slog.New(handler), func() { f.Close() }, nil
}
