package logging

import (
	"log/slog"
)

// WithCommand creates a logger with command context.
// Use this to tag every record produced while handling one input line.
//
// Example:
//
//	log := logging.WithCommand("delete")
//	log.Debug("applying", "index", 3)
func WithCommand(kind string) *slog.Logger {
	return GetLogger().With("command", kind)
}

// WithPath creates a logger with file context for persistence operations.
//
// Example:
//
//	log := logging.WithPath("data/people")
//	log.Info("table saved", "rows", 10)
func WithPath(path string) *slog.Logger {
	return GetLogger().With("path", path)
}

// WithComponent creates a logger with component/subsystem context.
//
// Example:
//
//	log := logging.WithComponent("storage")
//	log.Info("component initialized")
func WithComponent(component string) *slog.Logger {
	return GetLogger().With("component", component)
}

// WithError creates a logger with error context.
// Use this when logging errors to include the error in structured format.
//
// Example:
//
//	log := logging.WithError(err)
//	log.Warn("command failed", "line", line)
func WithError(err error) *slog.Logger {
	if err == nil {
		return GetLogger()
	}
	return GetLogger().With("error", err.Error())
}
