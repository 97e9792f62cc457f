package output

import "errors"

// Exit codes:
// 0 = Success (including an explicit list request)
// 1 = Failure (unknown cow, missing catalog, unreadable or malformed file)
// 2 = Usage (bad flags or arguments)
const (
	ExitSuccess = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// ExitError is an error that carries an exit code for the CLI.
type ExitError struct {
	Code    int
	Message string
	Hint    string
	Cause   error
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause for errors.Is/errors.As support.
func (e *ExitError) Unwrap() error {
	return e.Cause
}

// NewFailure creates an error for a failed request (exit code 1).
func NewFailure(message string) *ExitError {
	return &ExitError{
		Code:    ExitFailure,
		Message: message,
	}
}

// NewFailureWithCause creates a failure wrapping an underlying cause.
func NewFailureWithCause(message string, cause error) *ExitError {
	return &ExitError{
		Code:    ExitFailure,
		Message: message,
		Cause:   cause,
	}
}

// NewUsageError creates an error for invalid command-line input (exit code 2).
func NewUsageError(message string) *ExitError {
	return &ExitError{
		Code:    ExitUsage,
		Message: message,
	}
}

// WithHint attaches a follow-up suggestion shown after the message.
func (e *ExitError) WithHint(hint string) *ExitError {
	e.Hint = hint
	return e
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil, ExitFailure for non-ExitError errors.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return ExitFailure
}
