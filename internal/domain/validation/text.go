package validation

import (
	"strings"
	"unicode/utf8"
)

// IsBlank reports whether s holds only whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Length counts the characters of s ignoring surrounding whitespace.
func Length(s string) int {
	return utf8.RuneCountInString(strings.TrimSpace(s))
}

// Within reports whether the trimmed length of s lies in [min, max].
func Within(s string, min, max int) bool {
	n := Length(s)
	return n >= min && n <= max
}
