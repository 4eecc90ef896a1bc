package service

import (
	"errors"
	"fmt"
)

// ErrUnavailable reports that the embedding model or the vector index is not
// ready. Chat degrades to templated answers when it sees it.
var ErrUnavailable = errors.New("knowledge base unavailable")

// ValidationError is returned when a required input field is missing.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError builds a ValidationError for a required field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation reports whether err is, or wraps, a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// ServiceError is a rejection by the external speech service. Only this
// category advances the speech fallback chain.
type ServiceError struct {
	Engine string
	Err    error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("speech service (%s): %v", e.Engine, e.Err)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// unavailable wraps cause so that errors.Is(err, ErrUnavailable) holds.
func unavailable(cause error) error {
	if cause == nil {
		return ErrUnavailable
	}
	return fmt.Errorf("%w: %w", ErrUnavailable, cause)
}
