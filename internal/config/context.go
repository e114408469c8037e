package config

import (
	"context"
	"io"
	"log/slog"
)

// currentConfig stores the last loaded config for access by commands.
var currentConfig *Config

// GetCurrent returns the currently loaded configuration, or nil before
// Load has run.
func GetCurrent() *Config {
	return currentConfig
}

// loggerKey is the context key for the CLI logger. It lives here rather
// than in the cli package so the commands package can retrieve the
// logger without an import cycle.
type loggerKey struct{}

// LoggerKey returns the context key used for storing the logger.
func LoggerKey() interface{} {
	return loggerKey{}
}

// NewLogger builds the CLI logger. Verbose enables debug-level records.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// GetLogger retrieves the logger from the command context.
func GetLogger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	// Safe fallback for commands run outside the root command.
	return slog.New(slog.DiscardHandler)
}
