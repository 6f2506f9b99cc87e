// Package logging configures the diagnostic logger written to stderr.
package logging

import (
	"io"

	"github.com/charmbracelet/log"
)

// Prefix tags every log line.
const Prefix = "todo"

// New returns a text logger on w. Only warnings and errors are shown unless
// debug is set.
func New(w io.Writer, debug bool) *log.Logger {
	level := log.WarnLevel
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       log.TextFormatter,
		ReportTimestamp: false,
		ReportCaller:    false,
		Prefix:          Prefix,
	})
}
