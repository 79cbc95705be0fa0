// Package text provides character counting helpers shared by the entity
// validators and the test fixtures.
package text

import (
	"strings"
	"unicode/utf8"
)

// CountRunes counts the Unicode characters (runes) in s, not its bytes.
//
//	CountRunes("Vogue")   // 5
//	CountRunes("Élan")    // 4
//	CountRunes("Hi👋")    // 3
//	CountRunes("")        // 0
func CountRunes(s string) int {
	return utf8.RuneCountInString(s)
}

// IsBlank reports whether s is empty or contains only whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// OfLength returns a string of exactly n runes built by repeating unit.
// It returns "" when n <= 0 or unit is empty.
func OfLength(unit string, n int) string {
	if n <= 0 || unit == "" {
		return ""
	}
	runes := []rune(unit)
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteRune(runes[i%len(runes)])
	}
	return b.String()
}
