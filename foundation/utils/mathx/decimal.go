// File: decimal.go
// Title: Decimal Arithmetic Implementation
// Description: Implements exact decimal numbers on top of math/big.Rat with
//              locale-free parsing and integer based rounding in several
//              modes. Nothing goes through float64.
// Author: msto63
// Version: v0.2.1
// Created: 2026-10-12
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation with core decimal operations
// - 2026-10-17 v0.2.0: Exact rounding, lenient prefix parsing
// - 2026-10-17 v0.2.1: Exponents bounded by value instead of digit count

package mathx

import (
	"math/big"
	"regexp"
	"strconv"
	"strings"

	mdwerror "github.com/msto63/presenty/foundation/core/error"
)

// RoundingMode defines how decimal numbers should be rounded
type RoundingMode int

const (
	// RoundingModeHalfUp rounds halves away from zero (commercial rounding)
	RoundingModeHalfUp RoundingMode = iota

	// RoundingModeHalfEven rounds halves to the nearest even digit (banker's rounding)
	RoundingModeHalfEven

	// RoundingModeHalfDown rounds halves toward zero
	RoundingModeHalfDown

	// RoundingModeUp always rounds away from zero
	RoundingModeUp

	// RoundingModeDown always rounds toward zero (truncation)
	RoundingModeDown
)

// MaxExponent is the largest exponent magnitude ParseLoose accepts. Literals
// beyond it would need huge allocations and are read as non-numeric.
const MaxExponent = 9999

// numericPrefix matches the leading decimal literal of a string. Group 4
// holds the exponent digits.
var numericPrefix = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?(\d+))?`)

var (
	bigOne = big.NewInt(1)
	bigTen = big.NewInt(10)
)

// Decimal represents a decimal number with arbitrary precision.
// The zero value is 0.
type Decimal struct {
	value *big.Rat
}

func (d Decimal) rat() *big.Rat {
	if d.value == nil {
		return new(big.Rat)
	}
	return d.value
}

// NewDecimal creates a Decimal from a string such as "123.45", "-6e3" or "1/2"
func NewDecimal(s string) (Decimal, error) {
	rat, ok := new(big.Rat).SetString(strings.TrimSpace(s))
	if !ok || strings.TrimSpace(s) == "" {
		return Decimal{}, mdwerror.New("invalid decimal format: " + s).
			WithCode(mdwerror.CodeInvalidFormat).
			WithOperation("mathx.NewDecimal").
			WithDetail("input", s)
	}
	return Decimal{value: rat}, nil
}

// MustNewDecimal creates a new Decimal from a string, panicking on error
func MustNewDecimal(s string) Decimal {
	d, err := NewDecimal(s)
	if err != nil {
		panic(err)
	}
	return d
}

// ParseLoose reads the longest leading decimal literal of s, after leading
// whitespace, the way a lenient numeric cast does: "12abc" is 12, "1.5e2x" is
// 150, "abc" is 0. ok reports whether a number was found; an exponent above
// MaxExponent in magnitude yields 0 and false.
func ParseLoose(s string) (d Decimal, ok bool) {
	trimmed := strings.TrimLeft(s, " \t\n\r\v\f")
	groups := numericPrefix.FindStringSubmatch(trimmed)
	if groups == nil {
		return Zero(), false
	}
	match := groups[0]
	if groups[4] != "" && !exponentInRange(groups[4]) {
		return Zero(), false
	}
	rat, parsed := new(big.Rat).SetString(match)
	if !parsed {
		// "5." is accepted by the pattern but not by big.Rat
		rat, parsed = new(big.Rat).SetString(strings.TrimSuffix(match, "."))
		if !parsed {
			return Zero(), false
		}
	}
	return Decimal{value: rat}, true
}

// exponentInRange reports whether a run of exponent digits, leading zeros
// allowed, stays within MaxExponent
func exponentInRange(digits string) bool {
	digits = strings.TrimLeft(digits, "0")
	if len(digits) > len(strconv.Itoa(MaxExponent)) {
		return false
	}
	exp, err := strconv.Atoi("0" + digits)
	return err == nil && exp <= MaxExponent
}

// NewDecimalFromInt creates a new Decimal from an integer
func NewDecimalFromInt(i int64) Decimal {
	return Decimal{value: new(big.Rat).SetInt64(i)}
}

// Zero returns a decimal representing zero
func Zero() Decimal {
	return Decimal{value: new(big.Rat)}
}

// IsZero returns true if d equals zero
func (d Decimal) IsZero() bool {
	return d.rat().Sign() == 0
}

// Sign returns -1, 0 or +1
func (d Decimal) Sign() int {
	return d.rat().Sign()
}

// Compare returns -1 if d < other, 0 if d == other, +1 if d > other
func (d Decimal) Compare(other Decimal) int {
	return d.rat().Cmp(other.rat())
}

// Equal returns true if d equals other
func (d Decimal) Equal(other Decimal) bool {
	return d.Compare(other) == 0
}

// Round rounds d to the given number of decimal places. Negative places are
// treated as 0.
func (d Decimal) Round(places int, mode RoundingMode) Decimal {
	if places < 0 {
		places = 0
	}

	scale := new(big.Int).Exp(bigTen, big.NewInt(int64(places)), nil)
	r := d.rat()

	scaled := new(big.Int).Mul(r.Num(), scale)
	q, rem := new(big.Int).QuoRem(scaled, r.Denom(), new(big.Int))

	if rem.Sign() != 0 && roundAway(q, rem, r.Denom(), mode) {
		if scaled.Sign() < 0 {
			q.Sub(q, bigOne)
		} else {
			q.Add(q, bigOne)
		}
	}

	return Decimal{value: new(big.Rat).SetFrac(q, scale)}
}

// roundAway decides whether a truncated quotient q with non-zero remainder
// rem over denom must move one unit away from zero.
func roundAway(q, rem, denom *big.Int, mode RoundingMode) bool {
	twice := new(big.Int).Abs(rem)
	twice.Lsh(twice, 1)
	half := twice.Cmp(denom)

	switch mode {
	case RoundingModeHalfUp:
		return half >= 0
	case RoundingModeHalfDown:
		return half > 0
	case RoundingModeHalfEven:
		return half > 0 || (half == 0 && q.Bit(0) == 1)
	case RoundingModeUp:
		return true
	default:
		return false
	}
}

// StringFixed renders d rounded half up to exactly places decimals with "."
// as the decimal point. Zero is never rendered with a minus sign.
func (d Decimal) StringFixed(places int) string {
	if places < 0 {
		places = 0
	}
	rounded := d.Round(places, RoundingModeHalfUp)
	if rounded.IsZero() {
		rounded = Zero()
	}
	return rounded.rat().FloatString(places)
}

// String returns the shortest exact decimal form of d, or "num/denom" when
// the expansion does not terminate
func (d Decimal) String() string {
	r := d.rat()
	if r.IsInt() {
		return r.Num().String()
	}
	if places, ok := terminatingPlaces(r.Denom()); ok {
		return r.FloatString(places)
	}
	return r.RatString()
}

// terminatingPlaces returns the number of decimals needed to write 1/denom
// exactly, when denom only has the prime factors 2 and 5
func terminatingPlaces(denom *big.Int) (int, bool) {
	n := new(big.Int).Set(denom)
	two, five := big.NewInt(2), big.NewInt(5)
	mod := new(big.Int)
	twos, fives := 0, 0

	for {
		if q, m := new(big.Int).QuoRem(n, two, mod); m.Sign() == 0 {
			n, twos = q, twos+1
			continue
		}
		break
	}
	for {
		if q, m := new(big.Int).QuoRem(n, five, mod); m.Sign() == 0 {
			n, fives = q, fives+1
			continue
		}
		break
	}

	if n.Cmp(bigOne) != 0 {
		return 0, false
	}
	if twos > fives {
		return twos, true
	}
	return fives, true
}
