package domain

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Cents is a monetary amount in minor currency units.
// All stored and computed amounts use Cents; floats never touch money.
type Cents int64

// CentsPerUnit is the number of minor units in one major unit.
const CentsPerUnit = 100

var hundred = decimal.NewFromInt(CentsPerUnit)

// ParseCents converts a decimal string such as "19.99" into Cents.
// The value is multiplied by 100 and rounded half-up, so "19.999" becomes 2000.
// This is the single entry point from user-supplied prices into storage.
func ParseCents(s string) (Cents, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidPrice
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, ErrInvalidPrice
	}
	if d.IsNegative() {
		return 0, ErrNegativePrice
	}
	// Round is half away from zero, which equals half-up for non-negative values.
	minor := d.Mul(hundred).Round(0)
	bi := minor.BigInt()
	if !bi.IsInt64() {
		return 0, ErrAmountOverflow
	}
	return Cents(bi.Int64()), nil
}

// MustParseCents is ParseCents for literals in tests and fixtures.
func MustParseCents(s string) Cents {
	c, err := ParseCents(s)
	if err != nil {
		panic("money: " + err.Error())
	}
	return c
}

// Add returns c+other or ErrAmountOverflow.
func (c Cents) Add(other Cents) (Cents, error) {
	if (other > 0 && c > math.MaxInt64-other) || (other < 0 && c < math.MinInt64-other) {
		return 0, ErrAmountOverflow
	}
	return c + other, nil
}

// Mul returns c*quantity or ErrAmountOverflow.
func (c Cents) Mul(quantity int) (Cents, error) {
	if c == 0 || quantity == 0 {
		return 0, nil
	}
	q := int64(quantity)
	r := int64(c) * q
	if r/q != int64(c) || (int64(c) == -1 && q == math.MinInt64) || (q == -1 && int64(c) == math.MinInt64) {
		return 0, ErrAmountOverflow
	}
	return Cents(r), nil
}

// IsNegative reports whether c is below zero.
func (c Cents) IsNegative() bool { return c < 0 }

// Int64 returns the raw minor-unit amount for persistence.
func (c Cents) Int64() int64 { return int64(c) }

// String formats c with two decimals, e.g. 1300 -> "13.00".
// Presentation only; the result is never parsed back into storage.
func (c Cents) String() string {
	v := int64(c)
	sign := ""
	var abs uint64
	if v < 0 {
		sign = "-"
		abs = uint64(-(v + 1)) + 1
	} else {
		abs = uint64(v)
	}
	units := strconv.FormatUint(abs/CentsPerUnit, 10)
	frac := abs % CentsPerUnit
	if frac < 10 {
		return sign + units + ".0" + strconv.FormatUint(frac, 10)
	}
	return sign + units + "." + strconv.FormatUint(frac, 10)
}

// Dollars formats c for display with a currency sign, e.g. "$13.00".
func (c Cents) Dollars() string {
	s := c.String()
	if strings.HasPrefix(s, "-") {
		return "-$" + s[1:]
	}
	return "$" + s
}
