package decimal

import (
	"github.com/shopspring/decimal"
)

// onePercent is 0.01 held exactly.
var onePercent = decimal.New(1, -2)

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString creates a new Money instance from a string
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// RoundTo rounds to the given number of minor-unit digits (half away from zero).
// Currencies without minor units use 0, most others 2.
func (m Money) RoundTo(places int32) Money {
	return Money{m.Decimal.Round(places)}
}

// Percent returns pct percent of the amount: pct / 100 * m.
// No rounding is applied.
func (m Money) Percent(pct decimal.Decimal) Money {
	return Money{pct.Mul(onePercent).Mul(m.Decimal)}
}

// Clamp bounds the magnitude of m to 10^digits and drops everything past
// the digits-th fraction place. Larger magnitudes become ±10^digits,
// smaller ones zero. The result's coefficient never exceeds 2*digits+1 digits.
func (m Money) Clamp(digits int32) Money {
	if m.IsZero() {
		return m
	}
	exp := int64(m.Exponent())
	// position of the leading digit relative to the decimal point
	lead := int64(len(m.Abs().Coefficient().String())) + exp
	switch {
	case lead > int64(digits):
		if m.IsNegative() {
			return Money{decimal.New(-1, digits)}
		}
		return Money{decimal.New(1, digits)}
	case lead < -int64(digits):
		return Zero()
	case exp < -int64(digits):
		return Money{m.Truncate(digits)}
	}
	return m
}

// Add adds another Money amount
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// IsZero checks if the amount is zero
func (m Money) IsZero() bool {
	return m.Decimal.IsZero()
}

// IsNegative checks if the amount is negative
func (m Money) IsNegative() bool {
	return m.Decimal.IsNegative()
}

// Zero returns a zero Money amount
func Zero() Money {
	return Money{decimal.Zero}
}
