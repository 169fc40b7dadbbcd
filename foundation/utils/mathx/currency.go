// File: currency.go
// Title: Currency Registry
// Description: ISO 4217 currencies with their display symbol and number of
//              minor digits, plus a registry for lookups by code.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation with currency formatting and operations
// - 2026-10-17 v0.2.0: Registry guarded by a mutex, formatting via FormatNumber

package mathx

import (
	"sort"
	"strings"
	"sync"
)

// Currency represents a currency with its properties
type Currency struct {
	Code          string // ISO 4217 code (e.g., "USD", "EUR")
	Symbol        string // Currency symbol (e.g., "$", "€")
	DecimalPlaces int    // Number of minor digits
	Name          string // Full name (e.g., "US Dollar")
}

// Common currencies
var (
	USD = Currency{Code: "USD", Symbol: "$", DecimalPlaces: 2, Name: "US Dollar"}
	EUR = Currency{Code: "EUR", Symbol: "€", DecimalPlaces: 2, Name: "Euro"}
	GBP = Currency{Code: "GBP", Symbol: "£", DecimalPlaces: 2, Name: "British Pound"}
	JPY = Currency{Code: "JPY", Symbol: "¥", DecimalPlaces: 0, Name: "Japanese Yen"}
	CHF = Currency{Code: "CHF", Symbol: "CHF", DecimalPlaces: 2, Name: "Swiss Franc"}
	CAD = Currency{Code: "CAD", Symbol: "C$", DecimalPlaces: 2, Name: "Canadian Dollar"}
	AUD = Currency{Code: "AUD", Symbol: "A$", DecimalPlaces: 2, Name: "Australian Dollar"}
	CNY = Currency{Code: "CNY", Symbol: "¥", DecimalPlaces: 2, Name: "Chinese Yuan"}
	INR = Currency{Code: "INR", Symbol: "₹", DecimalPlaces: 2, Name: "Indian Rupee"}
	BTC = Currency{Code: "BTC", Symbol: "₿", DecimalPlaces: 8, Name: "Bitcoin"}
)

var (
	registryMu sync.RWMutex
	registry   = map[string]Currency{
		"USD": USD,
		"EUR": EUR,
		"GBP": GBP,
		"JPY": JPY,
		"CHF": CHF,
		"CAD": CAD,
		"AUD": AUD,
		"CNY": CNY,
		"INR": INR,
		"BTC": BTC,
	}
)

// RegisterCurrency adds or replaces a currency in the registry
func RegisterCurrency(currency Currency) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[strings.ToUpper(currency.Code)] = currency
}

// GetCurrency retrieves a currency by code, case-insensitively
func GetCurrency(code string) (Currency, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	currency, exists := registry[strings.ToUpper(strings.TrimSpace(code))]
	return currency, exists
}

// CurrencyCodes returns the registered codes in sorted order
func CurrencyCodes() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Format renders amount in this currency's minor digits followed by the
// separators, prefixed with the symbol and a space
func (c Currency) Format(amount Decimal, decPoint, thousandsSep string) string {
	return c.Symbol + " " + FormatNumber(amount, c.DecimalPlaces, decPoint, thousandsSep)
}
