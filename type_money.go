package capex

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// The store records every project amount in base currency units.
const currency = "MAD"

// Money represents a monetary amount in MAD.
type Money struct {
	value decimal.Decimal // as major unit value
}

func MAD[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool        { return m.value.GreaterThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }
func (m Money) Neg() Money                      { return Money{value: m.value.Neg()} }
func (m Money) Add(n Money) Money               { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money               { return Money{value: m.value.Sub(n.value)} }
func (m Money) Mul(q Quantity) Money            { return Money{value: m.value.Mul(q.value)} }

// Ratio returns m/n as a Percent, or 0 when n is zero.
func (m Money) Ratio(n Money) Percent {
	if n.value.IsZero() {
		return 0
	}
	return Percent(m.value.Div(n.value).InexactFloat64() * 100)
}

// String returns the amount formatted as MAD.
func (m Money) String() string {
	cur := *money.New(0, currency).Currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// SignedString returns the string representation of the amount with a sign.
// 0 is represented as "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

// Kilo renders the amount in thousands of MAD, the unit used on the list
// views.
func (m Money) Kilo() string {
	return m.value.Div(newDecimal(1000)).StringFixed(2) + " KDH"
}

// Mega renders the amount in millions of MAD, the unit used on the budget
// summary.
func (m Money) Mega() string {
	return m.value.Div(newDecimal(1_000_000)).StringFixed(2) + " MDH"
}

func (m Money) MarshalJSON() ([]byte, error) {
	return m.value.Round(2).MarshalJSON()
}

func (m *Money) UnmarshalJSON(data []byte) error {
	m.value = lenientDecimal(data)
	return nil
}
