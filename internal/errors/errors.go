// Package errors provides sentinel errors for the tskforge CLI.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrConfiguration indicates a required vendor directory, script, or
	// config value is missing or invalid.
	ErrConfiguration = errors.New("configuration error")

	// ErrSubprocess indicates an external tool (configure, bootstrap, git,
	// binding generator) exited non-zero.
	ErrSubprocess = errors.New("subprocess failed")

	// ErrPatchShape indicates the vendored source no longer matches the
	// fixed line indices the patch step expects.
	ErrPatchShape = errors.New("patch shape error")

	// ErrNotFound indicates a source file, header, or artifact was not found.
	ErrNotFound = errors.New("not found")
)

// DetailError captures structured error information for terminal display.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file path and line number (optional).
	Location string

	// Field is the field name for config errors (optional).
	Field string

	// Context contains additional key-value context (optional).
	Context map[string]string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}
	if e.Field != "" {
		b.WriteString("  Field: ")
		b.WriteString(e.Field)
		b.WriteString("\n")
	}
	for k, v := range e.Context {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(v)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewConfigurationError creates a configuration error with details.
func NewConfigurationError(message, location, hint string) error {
	return &DetailError{
		Type:     "configuration failed",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrConfiguration,
	}
}

// NewSubprocessError creates a subprocess failure with the tool's output
// attached as context. A nil cause records only the sentinel.
func NewSubprocessError(message string, command string, output string, cause error) error {
	ctx := map[string]string{"command": command}
	if output != "" {
		ctx["output"] = output
	}
	wrapped := ErrSubprocess
	if cause != nil {
		wrapped = fmt.Errorf("%w: %w", ErrSubprocess, cause)
	}
	return &DetailError{
		Type:    "subprocess failed",
		Message: message,
		Context: ctx,
		Cause:   wrapped,
	}
}

// NewPatchShapeError creates a patch shape error with details. It signals
// that the rule table's fixed indices are stale relative to the vendor
// release.
func NewPatchShapeError(message, location string) error {
	return &DetailError{
		Type:     "patch shape error",
		Message:  message,
		Location: location,
		Hint:     "The vendor release changed shape; update the rule table before re-running.",
		Cause:    ErrPatchShape,
	}
}

// NewNotFoundError creates a not found error with details.
func NewNotFoundError(message, location, hint string) error {
	return &DetailError{
		Type:     "not found",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrNotFound,
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}
