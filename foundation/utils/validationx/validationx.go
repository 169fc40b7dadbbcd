// File: validationx.go
// Title: Core Validation Utilities
// Description: Numeric and affirmative-token predicates used to classify
//              display values. Locale-aware decimal separators come from the
//              CLDR data in golang.org/x/text.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation with comprehensive validation utilities
// - 2026-10-17 v0.2.0: IsNumericDouble with locale separators, IsAffirmative

package validationx

import (
	"regexp"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	decimalPattern       = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)
	strictDecimalPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)$`)

	separatorCache sync.Map // locale -> decimal separator
)

// numericSpace is the whitespace a lenient numeric check tolerates around
// the number
const numericSpace = " \t\n\r\v\f"

// affirmativeTokens are the case-insensitive words read as "yes"
var affirmativeTokens = map[string]struct{}{
	"yes": {},
	"si":  {},
	"sì":  {},
	"y":   {},
	"s":   {},
}

// DecimalSeparator returns the decimal separator of a locale such as "it",
// "de-CH" or "it_IT.UTF-8". Empty or unknown locales, and locales whose
// digits are not ASCII, yield ".".
func DecimalSeparator(locale string) string {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return "."
	}
	if cached, ok := separatorCache.Load(locale); ok {
		return cached.(string)
	}

	sep := "."
	tag, err := language.Parse(normalizeLocale(locale))
	if err == nil {
		// render 1.5 and keep what sits between the digits
		sample := message.NewPrinter(tag).Sprintf("%.1f", 1.5)
		if len(sample) > 2 && strings.HasPrefix(sample, "1") && strings.HasSuffix(sample, "5") {
			sep = sample[1 : len(sample)-1]
		}
	}

	separatorCache.Store(locale, sep)
	return sep
}

// normalizeLocale turns POSIX names like it_IT.UTF-8 into BCP 47 form
func normalizeLocale(locale string) string {
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	return strings.ReplaceAll(locale, "_", "-")
}

// IsNumericDouble reports whether value is a decimal number written with the
// locale's decimal separator ("" means "."). Strict mode rejects surrounding
// whitespace and exponents; lenient mode trims whitespace and accepts an
// exponent such as 1.5e3.
func IsNumericDouble(value, locale string, strict bool) bool {
	if !strict {
		value = strings.Trim(value, numericSpace)
	}
	if value == "" {
		return false
	}

	if sep := DecimalSeparator(locale); sep != "." {
		// a "." cannot act as decimal point in a comma locale
		if strings.Contains(value, ".") {
			return false
		}
		value = strings.Replace(value, sep, ".", 1)
	}

	if strict {
		return strictDecimalPattern.MatchString(value)
	}
	return decimalPattern.MatchString(value)
}

// IsNumeric reports whether value is a number in "." notation, allowing
// surrounding whitespace and an exponent
func IsNumeric(value string) bool {
	return IsNumericDouble(value, "", false)
}

// IsAffirmative reports whether value is one of yes, si, sì, y or s, ignoring
// case and surrounding whitespace
func IsAffirmative(value string) bool {
	_, ok := affirmativeTokens[strings.ToLower(strings.TrimSpace(value))]
	return ok
}
