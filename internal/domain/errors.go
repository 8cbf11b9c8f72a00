package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// It is wrapped by ValidationError so callers can match with errors.Is.
	ErrValidation = errors.New("validation failed")

	// ErrUnknownCardReference is returned when a list references a card id
	// that does not exist in the card collection.
	ErrUnknownCardReference = errors.New("unknown card reference")

	// ErrUnauthorized is returned when a request does not carry a valid token.
	ErrUnauthorized = errors.New("unauthorized request")
)

// ValidationError describes a single failed field check on a domain entity.
type ValidationError struct {
	Field   string // JSON name of the offending field (e.g. "title", "cardIds")
	Message string // Human readable reason, safe to return to clients
	Err     error  // Underlying sentinel error
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Field, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Is reports ErrValidation for every ValidationError, whatever sentinel it wraps.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError creates a new ValidationError for the given field.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}
