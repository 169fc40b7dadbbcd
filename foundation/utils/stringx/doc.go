// File: doc.go
// Title: String Utilities Package Documentation
// Description: Package stringx provides the string helpers the presenter
//              delegates to.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-12 v0.1.0: Initial package documentation
// - 2026-10-17 v0.2.0: Reduced to presenter helpers

// Package stringx provides Unicode-safe string helpers.
//
// Truncate counts runes after NFC normalization (golang.org/x/text/unicode/norm),
// so "é" written as one code point or as "e" plus a combining accent has the
// same length and is never split. EscapeAttr produces the entity forms
// &amp; &lt; &gt; &quot; &#039; and UnescapeAttr accepts them back.
package stringx
