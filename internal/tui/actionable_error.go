package tui

// ActionableError wraps an error message with an actionable suggestion.
//
// Example usage:
//
//	err := NewActionableError("key file already exists", "Re-run with --force to overwrite")
//	output.Error(err)
//	// Outputs: ✗ key file already exists
//	//          ▸ Try: Re-run with --force to overwrite
type ActionableError struct {
	// Message is the primary error message.
	Message string

	// Suggestion provides guidance for resolving the error.
	Suggestion string

	// Context provides optional detail appended to the message in parentheses.
	Context string

	cause error
}

// NewActionableError creates a new ActionableError with message and suggestion.
func NewActionableError(msg, suggestion string) *ActionableError {
	return &ActionableError{
		Message:    msg,
		Suggestion: suggestion,
	}
}

// Error implements the error interface.
// Returns the message with context if provided, e.g., "file not found (/path/to/file)".
func (e *ActionableError) Error() string {
	if e.Context != "" {
		return e.Message + " (" + e.Context + ")"
	}
	return e.Message
}

// Unwrap returns the underlying error, if one was attached with WithCause.
func (e *ActionableError) Unwrap() error {
	return e.cause
}

// WithContext adds optional context to the error.
// Returns the same error for method chaining.
func (e *ActionableError) WithContext(ctx string) *ActionableError {
	e.Context = ctx
	return e
}

// WithCause attaches the original error so errors.Is keeps working.
func (e *ActionableError) WithCause(err error) *ActionableError {
	e.cause = err
	return e
}
