// File: doc.go
// Title: Package Documentation for mathx
// Description: Package mathx provides exact decimal arithmetic, grouped
//              number formatting and a currency registry.
// Author: msto63
// Version: v0.3.0
// Created: 2026-10-12
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation with decimal arithmetic
// - 2026-10-17 v0.3.0: Exact rounding and FormatNumber for the presenter

// Package mathx provides exact decimal numbers for display formatting.
//
// Decimal wraps math/big.Rat, so values such as 1.005 round to 1.01 instead of
// suffering from binary floating point. Round supports half up (away from
// zero), half even, half down, up and down.
//
// FormatNumber renders a Decimal with a chosen decimal point and thousands
// separator:
//
//	d, _ := mathx.ParseLoose("1234.5")
//	mathx.FormatNumber(d, 2, ",", ".") // "1.234,50"
//
// The currency registry maps ISO 4217 codes to symbol and minor digits.
package mathx
