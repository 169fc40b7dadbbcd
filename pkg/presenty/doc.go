// ============================================================================
// presenty - fluent text presentation for Go
// ============================================================================
//
// Package:     presenty
// Description: Package documentation
// Author:      Mike Stoffels
// Created:     2026-10-12
// License:     MIT
// ============================================================================

/*
Package presenty formats a single text value for display through chained
method calls.

A Presenter wraps one string. Each formatting method rewrites that string in
place and returns the same Presenter, so calls compose:

	p, err := presenty.Create(1234.5)
	if err != nil {
		return err
	}
	fmt.Println(p.Money(2)) // € 1.234,50

Construction accepts text, byte slices, booleans, every integer and float
kind, fmt.Stringer and error values. Slices, arrays, maps and values without
a text form fail with an error matching ErrInvalidArgument.

The methods and what they do with a blank value (empty or whitespace only):

	Number          grouped decimal, blank counts as 0
	Money           Number plus currency symbol, blank counts as 0
	MoneyIn         Money using a registered ISO 4217 currency
	Boolean         yes/no label, blank unchanged
	URL/Description truncation with ellipsis, blank unchanged
	Anchor          <a> with explicit href, blank unchanged
	Mailto          mailto <a>, always applied
	BkgPositiveOrNegative
	                <span> with a sign dependent class, blank unchanged
	DateIta/Date    reformatted date, blank unchanged
	Implode         replaces the value with joined list items
	ImplodeDefault  Implode with the default separator, zeros excluded

Only Create/New and the date methods return errors. A failing method leaves
the value untouched.

Parameters left out fall back to a Defaults value. DefaultDefaults holds the
Italian conventions ("," decimal point, "." grouping, "€", "si"/"no");
DefaultsFromConfig reads overrides from a TOML or YAML file, and a Factory
keeps them current when that file changes.

A Presenter is not safe for concurrent use. A Factory is.
*/
package presenty
