// Package validation provides input sanitization for the pomodoro tracker.
package validation

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// SanitizeString cleans a string input by:
// - Trimming leading/trailing whitespace
// - Removing null bytes (which can cause issues in databases)
// - Ensuring valid UTF-8 encoding
// Special characters like SQL fragments and markup are preserved as raw text;
// they are stored safely via parameterized queries, not executed.
func SanitizeString(s string) string {
	// Remove null bytes which can cause issues
	s = strings.ReplaceAll(s, "\x00", "")

	// Ensure valid UTF-8 by replacing invalid sequences
	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, "")
	}

	// Trim leading/trailing whitespace
	s = strings.TrimSpace(s)

	return s
}

// ContainsControlChars checks if a string contains control characters
// (except for common whitespace like space, tab, newline).
func ContainsControlChars(s string) bool {
	for _, r := range s {
		if unicode.IsControl(r) && r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return true
		}
	}
	return false
}

// IsValidUTF8 checks if a string is valid UTF-8.
func IsValidUTF8(s string) bool {
	return utf8.ValidString(s)
}
