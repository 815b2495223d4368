// Package logging wraps charmbracelet/log with the conventions pastemd
// commands share: stderr by default, no timestamps, structured key/value
// fields named by the constants in fields.go.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

//nolint:gochecknoglobals // One process-wide logger keeps command wiring simple.
var (
	std     *log.Logger
	stdOnce sync.Once
)

// parseLevel maps a level name to a log level. Unknown names fall back to
// info so a typo in a flag never silences diagnostics.
func parseLevel(name string) log.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// New builds a logger writing to w at the named level.
// Valid levels: "debug", "info", "warn", "error".
func New(w io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
	})
	logger.SetLevel(parseLevel(level))

	return logger
}

// NewInteractive creates a logger for user-facing command output.
// It writes to stderr so transformed content on stdout stays clean.
func NewInteractive() *log.Logger {
	return New(os.Stderr, "info")
}

// Default returns the process-wide logger, creating it on first use.
func Default() *log.Logger {
	stdOnce.Do(func() {
		if std == nil {
			std = New(os.Stderr, "info")
		}
	})

	return std
}

// SetDefault replaces the process-wide logger.
func SetDefault(logger *log.Logger) {
	std = logger
}

// SetLevel updates the level of the process-wide logger.
func SetLevel(level string) {
	Default().SetLevel(parseLevel(level))
}
