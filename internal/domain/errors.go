// Package domain defines core types, interfaces, and errors for the query front end.
package domain

import "fmt"

// MissingInputError indicates the caller supplied no file, no audio, or no
// question text. It is raised before any downstream call is made.
type MissingInputError struct {
	Message string
}

func (e *MissingInputError) Error() string { return e.Message }

// NotFoundError indicates a resource was not found.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// ValidationError indicates invalid input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// UpstreamError indicates a transport failure or non-2xx response from the
// external NLU service. Op names the failed operation ("ingestion",
// "transcription", "query"); Message carries the downstream error text opaque.
type UpstreamError struct {
	Op      string
	Message string
}

func (e *UpstreamError) Error() string { return fmt.Sprintf("%s failed: %s", e.Op, e.Message) }

// ErrMissingInput creates a MissingInputError with a formatted message.
func ErrMissingInput(format string, args ...interface{}) *MissingInputError {
	return &MissingInputError{Message: fmt.Sprintf(format, args...)}
}

// ErrNotFound creates a NotFoundError with a formatted message.
func ErrNotFound(format string, args ...interface{}) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

// ErrValidation creates a ValidationError with a formatted message.
func ErrValidation(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ErrUpstream creates an UpstreamError for the given operation.
func ErrUpstream(op string, format string, args ...interface{}) *UpstreamError {
	return &UpstreamError{Op: op, Message: fmt.Sprintf(format, args...)}
}
