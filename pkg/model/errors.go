package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a listing or bucket is not found.
	ErrNotFound = errors.New("listing not found")
	// ErrPersistence is returned when the backing file cannot be written.
	// Fatal for the triggering request; there is no retry.
	ErrPersistence = errors.New("failed to persist data")
)

// ValidationError reports bad input on a mutation. It is always
// surfaced to the caller, never retried, never fatal.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError with a formatted message.
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
