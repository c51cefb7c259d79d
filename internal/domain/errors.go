// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity or request payload
	// fails validation. It is often wrapped with a more specific message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an identifier is malformed, for example
	// a non-numeric path parameter.
	ErrInvalidID = errors.New("invalid ID")

	// ErrEmptyContent is returned when post content is blank.
	ErrEmptyContent = errors.New("content cannot be blank")

	// ErrUnauthorized is returned when an operation requires an
	// authenticated principal and none could be resolved.
	ErrUnauthorized = errors.New("unauthorized")
)

// ValidationError wraps a sentinel error with the field and reason that
// failed, so handlers can surface a descriptive message while callers can
// still match with errors.Is.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Field + " " + e.Message
}

// Unwrap returns the wrapped sentinel to support errors.Is.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a ValidationError wrapping the given sentinel.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{Field: field, Message: message, Err: err}
}
