// File: stringx.go
// Title: Core String Utility Functions
// Description: String helpers used by the presenter: emptiness tests,
//              Unicode safe truncation, HTML attribute escaping and PHP
//              compatible trimming.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation with core utilities
// - 2026-10-17 v0.2.0: NFC truncation, attribute escaping, TrimSpaceNull

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// DefaultEllipsis is appended by Truncate when no marker is given
const DefaultEllipsis = "..."

// TrimCutset is the character set stripped by TrimSpaceNull: space, tab,
// newline, carriage return, NUL and vertical tab.
const TrimCutset = " \t\n\r\x00\x0B"

var (
	attrEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#039;",
	)
	attrUnescaper = strings.NewReplacer(
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&#039;", "'",
		"&#39;", "'",
		"&amp;", "&",
	)
)

// IsBlank returns true if the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	if len(s) == 0 {
		return true
	}
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsNotBlank is the inverse of IsBlank.
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// IsEmptyOrNull reports whether a value counts as "no value" for display:
// nil, the empty string, and whitespace-only text.
func IsEmptyOrNull(s *string) bool {
	return s == nil || IsBlank(*s)
}

// FirstNonBlank returns the first non-blank string, or "" when all are blank.
func FirstNonBlank(values ...string) string {
	for _, s := range values {
		if IsNotBlank(s) {
			return s
		}
	}
	return ""
}

// Truncate shortens s to at most maxLen runes. The text is NFC-normalized
// first so composed and decomposed input count the same. When truncation
// happens, trailing whitespace of the kept part is dropped and ellipsis is
// appended; the result including the ellipsis never exceeds maxLen runes.
// If the ellipsis alone does not fit, the text is cut hard at maxLen.
//
// Truncate is idempotent: truncating its own output with the same maxLen
// returns it unchanged.
func Truncate(s string, maxLen int, ellipsis string) string {
	if maxLen <= 0 {
		return ""
	}

	s = norm.NFC.String(s)
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	runes := []rune(s)
	ellipsisLen := utf8.RuneCountInString(ellipsis)
	if ellipsisLen >= maxLen {
		return string(runes[:maxLen])
	}

	kept := strings.TrimRightFunc(string(runes[:maxLen-ellipsisLen]), unicode.IsSpace)
	return kept + ellipsis
}

// EscapeAttr escapes &, <, >, " and ' so text can be embedded in a quoted
// HTML attribute.
func EscapeAttr(s string) string {
	return attrEscaper.Replace(s)
}

// UnescapeAttr reverses EscapeAttr.
func UnescapeAttr(s string) string {
	return attrUnescaper.Replace(s)
}

// TrimSpaceNull trims the characters in TrimCutset from both ends.
func TrimSpaceNull(s string) string {
	return strings.Trim(s, TrimCutset)
}
