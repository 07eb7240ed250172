package errors

import "errors"

// Exit codes returned by the CLI.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitConfigError indicates missing or invalid configuration, including
	// a missing vendor directory or script.
	ExitConfigError = 2

	// ExitSubprocessError indicates an external tool exited non-zero.
	ExitSubprocessError = 3

	// ExitPatchShapeError indicates the rule table is stale relative to the
	// vendor release.
	ExitPatchShapeError = 4

	// ExitNotFound indicates a required file or artifact was not found.
	ExitNotFound = 5
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitConfigError:
		return "Configuration Error"
	case ExitSubprocessError:
		return "Subprocess Error"
	case ExitPatchShapeError:
		return "Patch Shape Error"
	case ExitNotFound:
		return "Not Found"
	default:
		return "Unknown"
	}
}

// ExitError wraps an error with an exit code. Printed records whether the
// command layer already wrote the error to the terminal, so main does not
// print it twice.
type ExitError struct {
	Err     error
	Code    int
	Printed bool
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

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, ErrConfiguration):
		return ExitConfigError
	case errors.Is(err, ErrSubprocess):
		return ExitSubprocessError
	case errors.Is(err, ErrPatchShape):
		return ExitPatchShapeError
	case errors.Is(err, ErrNotFound):
		return ExitNotFound
	default:
		return ExitGeneralError
	}
}
