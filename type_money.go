package folio

import (
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value in a given currency.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M creates a Money from a float amount and a currency code.
func M(value float64, currency string) Money {
	return Money{value: decimal.NewFromFloat(value), cur: currency}
}

// currency returns the money's currency metadata.
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

func (m Money) Currency() string   { return m.cur }
func (m Money) IsZero() bool       { return m.value.IsZero() }
func (m Money) IsNegative() bool   { return m.value.IsNegative() }
func (m Money) Equal(n Money) bool { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) Add(n Money) Money  { return Money{value: m.value.Add(n.value), cur: m.cur} }
func (m Money) Sub(n Money) Money  { return Money{value: m.value.Sub(n.value), cur: m.cur} }

// AsFloat returns the amount as a float64 for aggregation.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }

// Rounded returns the amount rounded to two fraction digits, half-even.
// Half-even is the documented rounding rule for every displayed amount.
func (m Money) Rounded() decimal.Decimal { return m.value.RoundBank(2) }

// String renders the amount with the currency symbol and two fraction
// digits, e.g. "$1,234.50".
func (m Money) String() string {
	cur := m.currency()
	dec := m.Rounded().Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// SignedString is like String but with an explicit sign, and "-" for zero.
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	s := m.String()
	if !m.value.IsNegative() && !strings.HasPrefix(s, "+") {
		return "+" + s
	}
	return s
}

// FormatAmount renders an amount in the given currency with the documented
// rounding rule (2 fraction digits, half-even). It never fails: an unknown
// currency code falls back to the generic go-money formatting, and a
// non-finite amount renders as zero.
func FormatAmount(amount float64, currencyCode string) string {
	if !isFinite(amount) {
		amount = 0
	}
	return M(amount, currencyCode).String()
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
