// File: format.go
// Title: Grouped Number Formatting
// Description: Renders decimals with a configurable decimal point and
//              thousands separator, rounding half away from zero.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package mathx

import "strings"

// FormatNumber renders d with the given number of decimals, decimal point and
// thousands separator: FormatNumber(1234.5, 2, ",", ".") is "1.234,50".
// Negative decimals count as 0 and a value that rounds to zero has no sign.
func FormatNumber(d Decimal, decimals int, decPoint, thousandsSep string) string {
	if decimals < 0 {
		decimals = 0
	}

	fixed := d.StringFixed(decimals)

	negative := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	b.WriteString(groupThousands(intPart, thousandsSep))
	if decimals > 0 {
		b.WriteString(decPoint)
		b.WriteString(fracPart)
	}
	return b.String()
}

func groupThousands(digits, sep string) string {
	if len(digits) <= 3 || sep == "" {
		return digits
	}

	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
