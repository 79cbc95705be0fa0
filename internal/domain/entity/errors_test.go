package entity

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		message  string
		expected string
	}{
		{
			name:     "length error",
			field:    "title",
			message:  "must be between 5 and 50 characters (got 4)",
			expected: "validation error on field 'title': must be between 5 and 50 characters (got 4)",
		},
		{
			name:     "blank error",
			field:    "category",
			message:  "must be a non-empty string",
			expected: "validation error on field 'category': must be a non-empty string",
		},
		{
			name:     "empty field name",
			field:    "",
			message:  "test message",
			expected: "validation error on field '': test message",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &ValidationError{
				Field:   tt.field,
				Message: tt.message,
			}

			assert.Equal(t, tt.expected, err.Error())
		})
	}
}

func TestValidationError_WithErrors(t *testing.T) {
	err := &ValidationError{
		Field:   "name",
		Message: "must be between 2 and 16 characters (got 1)",
		Err:     ErrInvalidLength,
	}

	assert.True(t, errors.Is(err, ErrValidationFailed))
	assert.True(t, errors.Is(err, ErrInvalidLength))
	assert.False(t, errors.Is(err, ErrBlankValue))
	assert.False(t, errors.Is(err, ErrImmutableField))

	var validationErr *ValidationError
	assert.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "name", validationErr.Field)
}

func TestValidationError_InErrorChain(t *testing.T) {
	baseErr := &ValidationError{Field: "author", Message: "missing", Err: ErrInvalidReference}
	wrappedErr := fmt.Errorf("create article: %w", baseErr)

	var validationErr *ValidationError
	assert.True(t, errors.As(wrappedErr, &validationErr))
	assert.Equal(t, "author", validationErr.Field)
	assert.ErrorIs(t, wrappedErr, ErrInvalidReference)
	assert.ErrorIs(t, wrappedErr, ErrValidationFailed)
}

func TestImmutableFieldError(t *testing.T) {
	err := &ImmutableFieldError{Entity: "article", Field: "title"}

	assert.Equal(t, "article title cannot be changed once set", err.Error())
	assert.ErrorIs(t, err, ErrImmutableField)
	assert.False(t, errors.Is(err, ErrValidationFailed))
}

func TestSentinelErrors_ErrorMessages(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"ErrValidationFailed", ErrValidationFailed, "validation failed"},
		{"ErrInvalidReference", ErrInvalidReference, "invalid entity reference"},
		{"ErrInvalidLength", ErrInvalidLength, "invalid length"},
		{"ErrBlankValue", ErrBlankValue, "blank value"},
		{"ErrImmutableField", ErrImmutableField, "field is immutable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}
