// ============================================================================
// presenty - fluent text presentation for Go
// ============================================================================
//
// Package:     presenty
// Description: Parameter defaults and their configuration mapping
// Author:      Mike Stoffels
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package presenty

import (
	"github.com/msto63/presenty/foundation/core/config"
	"github.com/msto63/presenty/foundation/utils/timex"
)

// Defaults holds the values used when a method's optional parameters are
// left out
type Defaults struct {
	Encoding         string
	NumberDecimals   int
	DecimalSeparator string
	GroupSeparator   string
	MoneyDecimals    int
	CurrencySymbol   string
	YesLabel         string
	NoLabel          string
	TruncateLength   int
	Ellipsis         string
	PositiveClass    string
	NegativeClass    string
	AnchorTarget     string
	DateLayout       string
	ImplodeSeparator string
}

// DefaultDefaults returns the built-in defaults
func DefaultDefaults() Defaults {
	return Defaults{
		Encoding:         "UTF-8",
		NumberDecimals:   0,
		DecimalSeparator: ",",
		GroupSeparator:   ".",
		MoneyDecimals:    2,
		CurrencySymbol:   "€",
		YesLabel:         "si",
		NoLabel:          "no",
		TruncateLength:   50,
		Ellipsis:         "...",
		PositiveClass:    "label label-success",
		NegativeClass:    "label label-danger",
		AnchorTarget:     "_blank",
		DateLayout:       timex.ItalianDate,
		ImplodeSeparator: " ",
	}
}

// Configuration keys
const (
	KeyEncoding         = "encoding"
	KeyNumberDecimals   = "number.decimals"
	KeyDecimalSeparator = "number.decimal_separator"
	KeyGroupSeparator   = "number.group_separator"
	KeyMoneyDecimals    = "money.decimals"
	KeyCurrencySymbol   = "money.symbol"
	KeyYesLabel         = "boolean.yes"
	KeyNoLabel          = "boolean.no"
	KeyTruncateLength   = "truncate.length"
	KeyEllipsis         = "truncate.ellipsis"
	KeyPositiveClass    = "sign.positive_class"
	KeyNegativeClass    = "sign.negative_class"
	KeyAnchorTarget     = "anchor.target"
	KeyDateLayout       = "date.layout"
	KeyImplodeSeparator = "implode.separator"
)

// DefaultsFromConfig reads Defaults from cfg; missing keys keep the built-in
// value. A nil cfg yields DefaultDefaults.
func DefaultsFromConfig(cfg *config.Config) Defaults {
	d := DefaultDefaults()
	if cfg == nil {
		return d
	}

	d.Encoding = cfg.GetString(KeyEncoding, d.Encoding)
	d.NumberDecimals = cfg.GetInt(KeyNumberDecimals, d.NumberDecimals)
	d.DecimalSeparator = cfg.GetString(KeyDecimalSeparator, d.DecimalSeparator)
	d.GroupSeparator = cfg.GetString(KeyGroupSeparator, d.GroupSeparator)
	d.MoneyDecimals = cfg.GetInt(KeyMoneyDecimals, d.MoneyDecimals)
	d.CurrencySymbol = cfg.GetString(KeyCurrencySymbol, d.CurrencySymbol)
	d.YesLabel = cfg.GetString(KeyYesLabel, d.YesLabel)
	d.NoLabel = cfg.GetString(KeyNoLabel, d.NoLabel)
	d.TruncateLength = cfg.GetInt(KeyTruncateLength, d.TruncateLength)
	d.Ellipsis = cfg.GetString(KeyEllipsis, d.Ellipsis)
	d.PositiveClass = cfg.GetString(KeyPositiveClass, d.PositiveClass)
	d.NegativeClass = cfg.GetString(KeyNegativeClass, d.NegativeClass)
	d.AnchorTarget = cfg.GetString(KeyAnchorTarget, d.AnchorTarget)
	d.DateLayout = cfg.GetString(KeyDateLayout, d.DateLayout)
	d.ImplodeSeparator = cfg.GetString(KeyImplodeSeparator, d.ImplodeSeparator)

	return d
}

// ValidationRules returns the rules a presenter configuration must satisfy
func ValidationRules() config.ValidationRules {
	return config.ValidationRules{
		KeyEncoding:         {Type: "string", Min: 1},
		KeyNumberDecimals:   {Type: "int", Min: 0, Max: 20},
		KeyDecimalSeparator: {Type: "string"},
		KeyGroupSeparator:   {Type: "string"},
		KeyMoneyDecimals:    {Type: "int", Min: 0, Max: 20},
		KeyCurrencySymbol:   {Type: "string"},
		KeyYesLabel:         {Type: "string"},
		KeyNoLabel:          {Type: "string"},
		KeyTruncateLength:   {Type: "int", Min: 1},
		KeyEllipsis:         {Type: "string"},
		KeyPositiveClass:    {Type: "string"},
		KeyNegativeClass:    {Type: "string"},
		KeyAnchorTarget:     {Type: "string"},
		KeyDateLayout:       {Type: "string", Min: 1},
		KeyImplodeSeparator: {Type: "string"},
	}
}
