package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain layer operations.
var (
	// ErrValidationFailed indicates that validation checks have failed.
	// Every *ValidationError matches it through errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidReference indicates that a reference field did not receive
	// an entity of the required kind (for example a nil author on an article).
	ErrInvalidReference = errors.New("invalid entity reference")

	// ErrInvalidLength indicates that a text field is outside its allowed length range.
	ErrInvalidLength = errors.New("invalid length")

	// ErrBlankValue indicates that a text field is empty or whitespace only.
	ErrBlankValue = errors.New("blank value")

	// ErrImmutableField indicates an attempt to change a write-once field.
	ErrImmutableField = errors.New("field is immutable")
)

// ValidationError represents a validation error with detailed field information.
// It implements the error interface and provides context about which field failed validation.
// Err, when set, names the kind of constraint that was violated.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// Unwrap returns the constraint kind so callers can use errors.Is.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Is reports every ValidationError as ErrValidationFailed.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// ImmutableFieldError is returned when a write-once field is assigned a second time.
type ImmutableFieldError struct {
	Entity string
	Field  string
}

// Error returns a formatted error message for the immutability violation.
func (e *ImmutableFieldError) Error() string {
	return fmt.Sprintf("%s %s cannot be changed once set", e.Entity, e.Field)
}

// Unwrap returns ErrImmutableField.
func (e *ImmutableFieldError) Unwrap() error {
	return ErrImmutableField
}
