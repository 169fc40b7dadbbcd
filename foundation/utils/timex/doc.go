// File: doc.go
// Title: Time Utilities Package Documentation
// Description: Package timex parses dates in many notations and formats them
//              with named layouts.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation
// - 2026-10-17 v0.2.0: Day-first parsing and relative words

// Package timex parses and formats dates for display.
//
// Parse accepts RFC 3339 and ISO 8601 timestamps, business notation
// ("2006-01-02 15:04:05"), day-first European dates with slash, dot or dash
// separators, compact and English display dates, the RFC mail formats, and
// the words now, today, yesterday and tomorrow. Slash dates are always read
// day first, so "05/02/2023" is 5 February. ParseAt takes the reference time
// explicitly for deterministic relative parsing.
//
// Format understands names such as "italian" (02/01/2006) or "iso8601-date"
// and otherwise treats its argument as a Go layout.
package timex
