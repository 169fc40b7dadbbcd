// ============================================================================
// presenty - fluent text presentation for Go
// ============================================================================
//
// Package:     presenty
// Description: Number and money formatting
// Author:      Mike Stoffels
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package presenty

import (
	"strings"

	mdwlog "github.com/msto63/presenty/foundation/core/log"
	"github.com/msto63/presenty/foundation/utils/mathx"
)

// Number formats the value as a number with the given decimals, rounding
// half away from zero. separators[0] is the decimal point and separators[1]
// the thousands separator; they default to Defaults.DecimalSeparator and
// Defaults.GroupSeparator. A blank value counts as 0 and so does text that
// does not start with a number. Negative decimals count as 0.
//
//	1234.5 -> Number(2) -> "1.234,50"
func (p *Presenter) Number(decimals int, separators ...string) *Presenter {
	decPoint, groupSep := p.defaults.DecimalSeparator, p.defaults.GroupSeparator
	if len(separators) > 0 {
		decPoint = separators[0]
	}
	if len(separators) > 1 {
		groupSep = separators[1]
	}

	p.value = mathx.FormatNumber(p.numericValue(), decimals, decPoint, groupSep)
	return p
}

// Money formats the value with Number and prefixes the currency symbol and
// a space. The symbol defaults to Defaults.CurrencySymbol. When the
// formatted number is "" or "0" it is kept without symbol, so Money(0) on a
// blank value yields "0" while Money(2) yields "€ 0,00".
func (p *Presenter) Money(decimals int, symbol ...string) *Presenter {
	sym := p.defaults.CurrencySymbol
	if len(symbol) > 0 {
		sym = symbol[0]
	}
	return p.money(decimals, sym)
}

// MoneyIn formats the value as Money using the symbol and minor digits of a
// registered ISO 4217 currency. An unknown code is used as the symbol with
// Defaults.MoneyDecimals.
func (p *Presenter) MoneyIn(code string) *Presenter {
	currency, ok := mathx.GetCurrency(code)
	if !ok {
		p.debug("unknown currency code", mdwlog.String("code", code))
		return p.money(p.defaults.MoneyDecimals, strings.ToUpper(strings.TrimSpace(code)))
	}
	return p.money(currency.DecimalPlaces, currency.Symbol)
}

func (p *Presenter) money(decimals int, symbol string) *Presenter {
	p.Number(decimals)
	if isFalsy(p.value) {
		return p
	}
	p.value = symbol + " " + p.value
	return p
}

// numericValue reads the value as a decimal; blank and non-numeric text is 0
func (p *Presenter) numericValue() mathx.Decimal {
	if p.isBlank() {
		return mathx.Zero()
	}
	d, ok := mathx.ParseLoose(p.value)
	if !ok {
		p.debug("non-numeric value formatted as zero", mdwlog.String("value", p.value))
	}
	return d
}

// isFalsy reports the two strings a loose truth test rejects
func isFalsy(s string) bool {
	return s == "" || s == "0"
}
