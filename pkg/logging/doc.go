// Package logging provides a process-wide structured logger for csvdb.
//
// The package wraps [log/slog] and exposes a single global logger instance
// that is initialized once and then retrieved via GetLogger. All packages
// obtain their logger here, so level and destination are controlled from
// one place.
//
// # Initialisation
//
// Call Init (or InitDefault for defaults) once at program startup:
//
//	if err := logging.Init(logging.Config{Level: logging.LevelDebug, OutputPath: "csvdb.log"}); err != nil {
//	    log.Fatal(err)
//	}
//
// InitDefault writes WARN-level text logs to stderr. Standard output belongs
// to command responses and is never a log destination by default.
//
// If GetLogger is called before Init, a default logger is created lazily
// (via sync.Once).
//
// # Context helpers
//
//	log := logging.WithCommand("add")   // adds command field
//	log := logging.WithPath(path)       // adds path field
//	log := logging.WithComponent(name)  // adds component field
package logging
