// File: timex.go
// Title: Core Time Utilities
// Description: Date and time parsing over a broad list of layouts,
//              including European day-first dates and the relative words
//              now, today, yesterday and tomorrow, plus named output formats.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation with comprehensive time utilities
// - 2026-10-17 v0.2.0: Day-first European layouts, relative words, ParseAt

package timex

import (
	"strings"
	"time"

	mdwerror "github.com/msto63/presenty/foundation/core/error"
)

// Common time formats
const (
	// ISO formats
	ISO8601         = "2006-01-02T15:04:05Z07:00"
	ISO8601Date     = "2006-01-02"
	ISO8601Time     = "15:04:05"
	ISO8601DateTime = "2006-01-02T15:04:05"

	// Business formats
	BusinessDate     = "2006-01-02"
	BusinessDateTime = "2006-01-02 15:04:05"
	BusinessTime     = "15:04:05"

	// Display formats
	DisplayDate     = "January 2, 2006"
	DisplayDateTime = "January 2, 2006 at 3:04 PM"

	// European day-first formats
	ItalianDate      = "02/01/2006"
	ItalianDateTime  = "02/01/2006 15:04"
	EuropeanDotDate  = "02.01.2006"
	EuropeanDashDate = "02-01-2006"

	// Compact formats
	CompactDate     = "20060102"
	CompactDateTime = "20060102150405"

	// Log formats
	LogTimestamp = "2006-01-02 15:04:05.000"
)

// parseLayouts is tried in order; the first layout that matches wins.
// Slash dates are read day first.
var parseLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	ISO8601DateTime,
	LogTimestamp,
	BusinessDateTime,
	"2006-01-02 15:04",
	BusinessDate,
	"2006-1-2",
	ItalianDateTime,
	ItalianDate,
	"2/1/2006",
	EuropeanDotDate,
	"2.1.2006",
	EuropeanDashDate,
	"2-1-2006",
	CompactDateTime,
	CompactDate,
	DisplayDateTime,
	DisplayDate,
	"2 January 2006",
	"Jan 2, 2006",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC850,
	time.RFC822Z,
	time.RFC822,
	time.ANSIC,
}

// Parse parses value against the known layouts, resolving relative words
// against the current time
func Parse(value string) (time.Time, error) {
	return ParseAt(value, time.Now())
}

// ParseAt is Parse with an explicit reference time for now, today,
// yesterday and tomorrow
func ParseAt(value string, now time.Time) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, mdwerror.New("empty time string").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("timex.Parse")
	}

	switch strings.ToLower(trimmed) {
	case "now":
		return now, nil
	case "today", "midnight":
		return StartOfDay(now), nil
	case "yesterday":
		return StartOfDay(now.AddDate(0, 0, -1)), nil
	case "tomorrow":
		return StartOfDay(now.AddDate(0, 0, 1)), nil
	}

	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, nil
		}
	}

	return time.Time{}, mdwerror.New("unable to parse time string: " + value).
		WithCode(mdwerror.CodeInvalidFormat).
		WithOperation("timex.Parse").
		WithDetail("input", value)
}

// Format formats t using a named format or, for unknown names, treats the
// name as a Go layout
func Format(t time.Time, format string) string {
	switch format {
	case "iso8601":
		return t.Format(ISO8601)
	case "iso8601-date":
		return t.Format(ISO8601Date)
	case "business":
		return t.Format(BusinessDateTime)
	case "business-date":
		return t.Format(BusinessDate)
	case "display":
		return t.Format(DisplayDateTime)
	case "display-date":
		return t.Format(DisplayDate)
	case "italian", "italian-date":
		return t.Format(ItalianDate)
	case "italian-datetime":
		return t.Format(ItalianDateTime)
	case "compact":
		return t.Format(CompactDateTime)
	case "compact-date":
		return t.Format(CompactDate)
	case "log":
		return t.Format(LogTimestamp)
	default:
		return t.Format(format)
	}
}

// StartOfDay returns midnight of t's day in t's location
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Today returns today's date at midnight
func Today() time.Time {
	return StartOfDay(time.Now())
}
