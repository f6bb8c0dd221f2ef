package tui

import (
	"io"

	"github.com/mrz1836/rcli/internal/constants"
)

// Output provides methods for structured output to a terminal.
type Output interface {
	// Success prints a success message.
	Success(msg string)
	// Error prints an error, including its suggestion when it is an ActionableError.
	Error(err error)
	// Warning prints a warning message.
	Warning(msg string)
	// Info prints an informational message.
	Info(msg string)
	// Table prints rows under the given headers.
	Table(headers []string, rows [][]string)
}

// NewOutput creates the appropriate output based on format.
// Anything other than "json" gets styled terminal output.
func NewOutput(w io.Writer, format string) Output {
	if format == constants.OutputFormatJSON {
		return NewJSONOutput(w)
	}
	return NewTTYOutput(w)
}
