package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain value fails validation.
	// It is usually reached through a ValidationError.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidFormat is returned when encoded data is not in the expected shape.
	ErrInvalidFormat = errors.New("invalid format")
)

// ValidationError describes a single field that failed validation.
// It matches both ErrValidation and the specific cause under errors.Is.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError creates a ValidationError for field with the given message
// and underlying cause. A nil cause defaults to ErrValidation.
func NewValidationError(field, message string, err error) *ValidationError {
	if err == nil {
		err = ErrValidation
	}
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", ErrValidation, e.Message)
	}
	return fmt.Sprintf("%s: %s %s", ErrValidation, e.Field, e.Message)
}

// Unwrap returns the underlying cause.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Is reports ErrValidation as a match in addition to the wrapped cause.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
