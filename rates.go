package folio

import "math"

// DefaultRates is the built-in rate-to-USD table. Values are deliberately
// coarse: they seed the table on first run and whenever a persisted table
// fails to parse; users maintain their own rates afterwards.
func DefaultRates() map[string]float64 {
	return map[string]float64{
		"USD": 1,
		"CNY": 0.14,
		"HKD": 0.13,
		"EUR": 1.08,
		"JPY": 0.0067,
		"GBP": 1.27,
	}
}

// KnownCurrencies lists the codes offered by the rate editor, in display
// order. Any other code still converts, falling back to a rate of 1.
var KnownCurrencies = []string{"USD", "CNY", "HKD", "EUR", "JPY", "GBP"}

// RateTable maps a currency code to its rate against the USD pivot.
// A nil table converts everything at identity.
type RateTable map[string]float64

// Rate returns the rate-to-USD for a code, or 1 when the code is unknown
// or its stored rate is unusable.
func (t RateTable) Rate(code string) float64 {
	r, ok := t[code]
	if !ok || r <= 0 || math.IsNaN(r) || math.IsInf(r, 0) {
		return 1
	}
	return r
}

// Convert converts an amount between two currencies through the USD pivot:
// amount * rate(from) / rate(to). Conversion never divides by a missing or
// zero rate; either side falling back makes that side an identity step.
func (t RateTable) Convert(amount float64, from, to string) float64 {
	if from == to {
		return amount
	}
	return amount * t.Rate(from) / t.Rate(to)
}

// Set stores a rate, coercing a non-positive or non-finite value back to
// the built-in default for that code (or 1 when there is none).
func (t RateTable) Set(code string, rate float64) {
	if rate <= 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
		if def, ok := DefaultRates()[code]; ok {
			rate = def
		} else {
			rate = 1
		}
	}
	t[code] = rate
}

// DefaultCurrency returns the locale-dependent display currency.
func DefaultCurrency(locale string) string {
	if isChinese(locale) {
		return "CNY"
	}
	return "USD"
}
