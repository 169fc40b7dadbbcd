package presenty

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumber(t *testing.T) {
	tests := []struct {
		name       string
		input      any
		decimals   int
		separators []string
		want       string
	}{
		{"grouped with defaults", "1234.5", 2, nil, "1.234,50"},
		{"custom separators", "1234.5", 2, []string{".", ","}, "1,234.50"},
		{"decimal point only", "1234.5", 1, []string{"."}, "1.234.5"},
		{"no grouping", "1234567", 0, []string{",", ""}, "1234567"},
		{"millions", 1234567.891, 2, nil, "1.234.567,89"},
		{"blank is zero", "", 2, nil, "0,00"},
		{"whitespace is zero", "   ", 0, nil, "0"},
		{"text is zero", "abc", 0, nil, "0"},
		{"leading number", "12abc", 1, nil, "12,0"},
		{"exponent", "1.5e3", 0, nil, "1.500"},
		{"exponent with leading zeros", "1e00002", 0, nil, "100"},
		{"long exponent with leading zeros", "1.5e000003", 0, nil, "1.500"},
		{"negative exponent with leading zeros", "25e-0001", 1, nil, "2,5"},
		{"exponent out of range is zero", "1e12345", 0, nil, "0"},
		{"half away from zero", "2.5", 0, nil, "3"},
		{"negative half away from zero", "-2.5", 0, nil, "-3"},
		{"no negative zero", "-0.004", 2, nil, "0,00"},
		{"negative grouped", "-1234567", 0, nil, "-1.234.567"},
		{"negative decimals", "12.7", -2, nil, "13"},
		{"exact decimal rounding", "1.005", 2, nil, "1,01"},
		{"bool true", true, 0, nil, "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MustCreate(tt.input).Number(tt.decimals, tt.separators...).String()
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMoney(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		decimals int
		symbol   []string
		want     string
	}{
		{"default symbol", "1234.5", 2, nil, "€ 1.234,50"},
		{"custom symbol", "10", 2, []string{"$"}, "$ 10,00"},
		{"no decimals", "99.6", 0, nil, "€ 100"},
		{"blank without decimals stays zero", "", 0, nil, "0"},
		{"blank with decimals gets symbol", "", 2, nil, "€ 0,00"},
		{"rounds to zero", "0.2", 0, nil, "0"},
		{"negative", "-5", 2, nil, "€ -5,00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MustCreate(tt.input).Money(tt.decimals, tt.symbol...).String())
		})
	}
}

func TestMoneyIn(t *testing.T) {
	assert.Equal(t, "$ 1.234,57", MustCreate("1234.567").MoneyIn("usd").String())
	assert.Equal(t, "¥ 1.235", MustCreate("1234.5").MoneyIn("JPY").String())
	assert.Equal(t, "£ 0,50", MustCreate("0.5").MoneyIn(" gbp ").String())
	assert.Equal(t, "XYZ 5,00", MustCreate("5").MoneyIn("xyz").String())
	assert.Equal(t, "0", MustCreate("0").MoneyIn("JPY").String())
}

func TestMoneyUsesDefaults(t *testing.T) {
	d := DefaultDefaults()
	d.CurrencySymbol = "CHF"
	d.DecimalSeparator = "."
	d.GroupSeparator = "'"

	p, err := New("1234.5", WithDefaults(d))
	assert.NoError(t, err)
	assert.Equal(t, "CHF 1'234.50", p.Money(2).String())
}

func TestNumberLargestExponent(t *testing.T) {
	got := MustCreate("1e9999").Number(0, ",", "").String()
	assert.Equal(t, 10000, len(got))
	assert.Equal(t, "1"+strings.Repeat("0", 9999), got)
}
