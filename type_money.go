package report

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value in the reporting currency.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M builds a Money from any numeric value and a currency code.
func M[T float32 | float64 | int | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// USD builds a Money in US dollars, the default reporting currency.
func USD[T float32 | float64 | int | int64 | decimal.Decimal](value T) Money {
	return M(value, money.USD)
}

// currency returns the money's full currency definition.
func (m Money) currency() money.Currency {
	// to get a never nil currency we need to go through the money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the string representation of the money value, formatted
// for its currency (e.g. "$1,234.56").
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.Round(0).IntPart())
}

func (m Money) Currency() string      { return m.cur }
func (m Money) Equal(n Money) bool    { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool          { return m.value.IsZero() }
func (m Money) IsPositive() bool      { return m.value.IsPositive() }
func (m Money) IsNegative() bool      { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool { return m.value.LessThan(n.value) }
func (m Money) Neg() Money            { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) Mul(q Quantity) Money  { return Money{value: m.value.Mul(q.value), cur: m.cur} }
func (m Money) Add(n Money) Money     { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money     { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// Div returns the ratio of two monetary amounts as a bare decimal.
func (m Money) Div(n Money) decimal.Decimal { return m.value.Div(n.value) }

// Decimal returns the amount as a decimal in major units.
func (m Money) Decimal() decimal.Decimal { return m.value }

// AsFloat returns the amount as a float64, for presentation only.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }

// cur resolves the currency of a binary operation, treating "" as weak.
func cur(a, b Money) string {
	if a.cur == "" {
		return b.cur
	}
	if b.cur == "" {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch " + a.cur + "!=" + b.cur)
	}
	return a.cur
}
