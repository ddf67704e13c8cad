// Package telemetry is a thin, consistently-configured wrapper around
// charmbracelet/log, giving every collaborator package the same field
// names and level handling instead of each reaching for log/slog on its
// own.
package telemetry

import (
	"os"

	"github.com/charmbracelet/log"
)

// New returns a logger writing to os.Stderr at level, with the
// component name attached to every line as the logger prefix.
func New(component string, level log.Level) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.000",
		Prefix:          component,
	})
	logger.SetLevel(level)
	return logger
}

// LevelFromString parses a case-insensitive level name (debug, info,
// warn, error), defaulting to log.InfoLevel on an unrecognized value.
func LevelFromString(s string) log.Level {
	lvl, err := log.ParseLevel(s)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
