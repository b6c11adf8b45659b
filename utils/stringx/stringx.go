// File: stringx.go
// Title: Core String Utilities
// Description: Implements blank detection, token stripping and prefix
//              matching helpers. StripAll is the normalization step of the
//              complex literal parser; HasAnyPrefix drives the merger's
//              header and trailer detection.
// Author: Advestis
// Version: v0.1.0
// Created: 2025-03-12
// Modified: 2025-03-12
//
// Change History:
// - 2025-03-12 v0.1.0: Initial implementation

package stringx

import (
	"strings"
	"unicode"
)

// IsEmpty reports whether the string has zero length
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank reports whether the string is empty or contains only whitespace
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// StripAll removes every occurrence of each token from s, in order.
// Whitespace runes are removed when " " is among the tokens.
func StripAll(s string, tokens ...string) string {
	for _, token := range tokens {
		if token == " " {
			s = stripSpace(s)
			continue
		}
		s = strings.ReplaceAll(s, token, "")
	}
	return s
}

func stripSpace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if !unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// HasAnyPrefix reports whether s starts with any of the given prefixes
func HasAnyPrefix(s string, prefixes ...string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

// FirstNonBlank returns the first argument that is not blank, or ""
func FirstNonBlank(values ...string) string {
	for _, v := range values {
		if !IsBlank(v) {
			return v
		}
	}
	return ""
}
