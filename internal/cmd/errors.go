package cmd

import (
	"errors"
	"fmt"
)

// ExitError wraps an error with an exit code.
type ExitError struct {
	Err  error
	Code int
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// operational wraps an operational failure of a command with a context
// message and the general-error exit code. Errors escaping the command layer
// without this wrapping are treated as usage errors by the entry point.
func operational(msg string, err error) error {
	return NewExitError(fmt.Errorf("%s: %w", msg, err), ExitGeneralError)
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return ExitUsageError
}
