package entity

import (
	"fmt"
	"strings"

	"magazine-catalog/internal/utils/text"
)

// Field length limits, counted in characters (runes), not bytes.
const (
	MagazineNameMinLength = 2
	MagazineNameMaxLength = 16
	ArticleTitleMinLength = 5
	ArticleTitleMaxLength = 50
)

// ValidateNotBlank checks that value contains at least one non-whitespace character.
// The value itself is not trimmed; only the emptiness check ignores surrounding whitespace.
func ValidateNotBlank(field, value string) error {
	if text.IsBlank(value) {
		return &ValidationError{
			Field:   field,
			Message: "must be a non-empty string",
			Err:     ErrBlankValue,
		}
	}
	return nil
}

// ValidateLength checks that value has between minLen and maxLen characters inclusive.
func ValidateLength(field, value string, minLen, maxLen int) error {
	n := text.CountRunes(value)
	if n < minLen || n > maxLen {
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be between %d and %d characters (got %d)", minLen, maxLen, n),
			Err:     ErrInvalidLength,
		}
	}
	return nil
}

// validateReference reports a missing author or magazine reference.
func validateReference(field string, missing bool) error {
	if missing {
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s must be an instance of %s", field, strings.ToUpper(field[:1])+field[1:]),
			Err:     ErrInvalidReference,
		}
	}
	return nil
}
