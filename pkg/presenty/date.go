// ============================================================================
// presenty - fluent text presentation for Go
// ============================================================================
//
// Package:     presenty
// Description: Date reformatting
// Author:      Mike Stoffels
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package presenty

import (
	mdwlog "github.com/msto63/presenty/foundation/core/log"
	"github.com/msto63/presenty/foundation/utils/stringx"
	"github.com/msto63/presenty/foundation/utils/timex"
)

// DateIta parses the value as a date and rewrites it as dd/mm/yyyy.
// Accepted input includes ISO 8601, RFC 3339 and RFC 1123 timestamps,
// day-first dates separated by "/", "." or "-", and the words now, today,
// midnight, yesterday and tomorrow. A blank value is left unchanged. When
// parsing fails the value is kept and an error matching ErrDateParse is
// returned.
func (p *Presenter) DateIta() (*Presenter, error) {
	return p.reformatDate("presenty.DateIta", timex.ItalianDate)
}

// Date is DateIta with an explicit output layout. layout is a Go reference
// layout or a timex format name such as "iso8601-date"; blank uses
// Defaults.DateLayout.
func (p *Presenter) Date(layout string) (*Presenter, error) {
	return p.reformatDate("presenty.Date", stringx.FirstNonBlank(layout, p.defaults.DateLayout, timex.ItalianDate))
}

func (p *Presenter) reformatDate(operation, layout string) (*Presenter, error) {
	if p.isBlank() {
		return p, nil
	}

	t, err := timex.ParseAt(p.value, p.now())
	if err != nil {
		wrapped := dateParseError(err, operation, p.value)
		p.debug("date not recognised", mdwlog.Fields{"value": p.value, "operation": operation})
		return p, wrapped
	}

	p.value = timex.Format(t, layout)
	return p, nil
}
