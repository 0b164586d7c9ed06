// Package logging provides structured logging setup for the portfolio server and CLI.
package logging

import (
	"io"
	"log/slog"
)

// Setup installs and returns the default slog logger writing to w.
// Dev mode uses human-readable text at debug level; otherwise JSON at info level.
func Setup(w io.Writer, devMode bool) *slog.Logger {
	var handler slog.Handler
	if devMode {
		handler = slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	} else {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
