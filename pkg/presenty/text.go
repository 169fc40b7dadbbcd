// ============================================================================
// presenty - fluent text presentation for Go
// ============================================================================
//
// Package:     presenty
// Description: Boolean labels and text truncation
// Author:      Mike Stoffels
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package presenty

import (
	"github.com/msto63/presenty/foundation/utils/mathx"
	"github.com/msto63/presenty/foundation/utils/stringx"
	"github.com/msto63/presenty/foundation/utils/validationx"
)

var one = mathx.NewDecimalFromInt(1)

// Boolean replaces the value with labels[0] when it is affirmative (IsOne or
// IsBooleanYes) and with labels[1] otherwise. The labels default to
// Defaults.YesLabel and Defaults.NoLabel. A blank value is left unchanged.
func (p *Presenter) Boolean(labels ...string) *Presenter {
	if p.isBlank() {
		return p
	}

	yes, no := p.defaults.YesLabel, p.defaults.NoLabel
	if len(labels) > 0 {
		yes = labels[0]
	}
	if len(labels) > 1 {
		no = labels[1]
	}

	if p.IsOne() || p.IsBooleanYes() {
		p.value = yes
	} else {
		p.value = no
	}
	return p
}

// IsBooleanYes reports whether the value is a yes-word: yes, si, sì, y or s
// in any case
func (p *Presenter) IsBooleanYes() bool {
	return validationx.IsAffirmative(p.value)
}

// IsOne reports whether the value is a number equal to 1, such as "1",
// "1.0" or " 1 "
func (p *Presenter) IsOne() bool {
	if !validationx.IsNumeric(p.value) {
		return false
	}
	d, ok := mathx.ParseLoose(p.value)
	return ok && d.Equal(one)
}

// URL shortens the value to at most maxLength characters, ellipsis
// included. maxLength defaults to Defaults.TruncateLength.
func (p *Presenter) URL(maxLength ...int) *Presenter {
	return p.truncate(maxLength)
}

// Description shortens the value like URL
func (p *Presenter) Description(maxLength ...int) *Presenter {
	return p.truncate(maxLength)
}

func (p *Presenter) truncate(maxLength []int) *Presenter {
	if p.isBlank() {
		return p
	}

	limit := p.defaults.TruncateLength
	if len(maxLength) > 0 {
		limit = maxLength[0]
	}

	p.value = stringx.Truncate(p.value, limit, p.defaults.Ellipsis)
	return p
}
