// File: doc.go
// Title: Validation Utilities Package Documentation
// Description: Package validationx provides predicates that classify
//              display values.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-12 v0.1.0: Initial package documentation
// - 2026-10-17 v0.2.0: Numeric and affirmative predicates

/*
Package validationx provides predicates used when choosing how to render a
value.

IsNumericDouble checks for a plain decimal number. The decimal separator is
taken from CLDR data for the given locale (golang.org/x/text/message), so
"3,5" is numeric for "it" and "3.5" is numeric for "en". In strict mode the
value must consist of the number alone, without whitespace or exponent.

IsAffirmative recognises yes-words in English and Italian.
*/
package validationx
