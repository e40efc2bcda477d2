package entity

import (
	"errors"
	"fmt"
)

// Error kinds shared by every layer. The HTTP layer maps each kind to one status code.
var (
	// ErrNotFound indicates that a requested entity was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that the request could not be decoded
	ErrInvalidInput = errors.New("invalid input")

	// ErrValidationFailed indicates that validation checks have failed
	ErrValidationFailed = errors.New("validation failed")

	// ErrUnauthorized indicates missing or rejected credentials
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden indicates an authenticated caller acting on a resource it does not own
	ErrForbidden = errors.New("forbidden")

	// ErrConflict indicates a uniqueness constraint violation
	ErrConflict = errors.New("conflict")
)

// ValidationError represents a validation error with detailed field information.
// It implements the error interface and provides context about which field failed validation.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// Is makes every ValidationError match ErrValidationFailed.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// KindError is an error whose message is independent of its kind.
type KindError struct {
	Kind error
	Msg  string
}

func (e *KindError) Error() string { return e.Msg }

// Unwrap returns the kind so errors.Is(err, ErrNotFound) and friends work.
func (e *KindError) Unwrap() error { return e.Kind }

// NewError creates an error carrying kind with the given message.
func NewError(kind error, msg string) error {
	return &KindError{Kind: kind, Msg: msg}
}
