package marketcl

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// The game trades in a single currency.
const currencyCode = money.USD

// Money represents an exact monetary value. The zero value is $0.
//
// Arithmetic is performed on the full decimal value; rounding to cents
// happens only when formatting for display or persisting.
type Money struct {
	value decimal.Decimal
}

// M creates a Money from a numeric constant.
func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

// newDecimal is a convenient factory for decimal.Decimal.
func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool        { return m.value.GreaterThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }

func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value)} }
func (m Money) Neg() Money        { return Money{value: m.value.Neg()} }

// Mul scales the value by a whole number of shares.
func (m Money) Mul(shares int64) Money {
	return Money{value: m.value.Mul(decimal.NewFromInt(shares))}
}

// MulRate scales the value by a fraction, e.g. a tax rate.
func (m Money) MulRate(rate decimal.Decimal) Money {
	return Money{value: m.value.Mul(rate)}
}

// Shares returns the largest whole number of shares at the given price per
// share that this amount can pay for. It returns 0 when price is not positive.
func (m Money) Shares(price Money) int64 {
	if !price.IsPositive() || m.IsNegative() {
		return 0
	}
	return m.value.Div(price.value).IntPart()
}

// PctOf returns the relative difference from base, as a percentage.
// It is used for unrealized profit: (price - basis) / basis.
func (m Money) PctOf(base Money) Percent {
	if base.IsZero() {
		return 0
	}
	pct, _ := m.Sub(base).value.Div(base.value).Mul(decimal.NewFromInt(100)).Float64()
	return Percent(pct)
}

// String returns the value formatted in the game currency, e.g. "$1,234.50".
func (m Money) String() string {
	cur := money.GetCurrency(currencyCode)
	cents := m.value.Shift(int32(cur.Fraction)).Round(0)
	return money.New(cents.IntPart(), currencyCode).Display()
}

// SignedString is like String but with an explicit sign, and "-" for zero.
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

// MarshalJSON encodes the value as a plain JSON number.
func (m Money) MarshalJSON() ([]byte, error) { return m.value.MarshalJSON() }

// UnmarshalJSON decodes a plain JSON number.
func (m *Money) UnmarshalJSON(data []byte) error { return m.value.UnmarshalJSON(data) }

// Percent is a display type for percentages.
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", p)
	if res == "+0.00%" {
		return "-"
	}
	return res
}
