package cmd

import (
	"flag"
	"math"

	"github.com/openfolio/folio"
)

// holdingFlags are the asset fields shared by 'add' and 'edit'.
type holdingFlags struct {
	name      string
	category  string
	quantity  float64
	cost      float64
	price     float64
	currency  string
	risk      string
	strategy  string
	sentiment string
	tags      string
	note      string
}

func (h *holdingFlags) set(f *flag.FlagSet) {
	f.StringVar(&h.name, "name", "", "asset name")
	f.StringVar(&h.category, "category", "stock", "asset category: stock, crypto, etf or cash")
	f.Float64Var(&h.quantity, "quantity", 0, "quantity held, must be greater than 0")
	f.Float64Var(&h.cost, "cost", 0, "total acquisition cost")
	f.Float64Var(&h.price, "price", math.NaN(), "current unit price (omit when unknown)")
	f.StringVar(&h.currency, "currency", "", "ISO currency code, defaults to the locale currency")
	f.StringVar(&h.risk, "risk", "medium", "risk level: low, medium or high")
	f.StringVar(&h.strategy, "strategy", "", "free-form strategy note")
	f.StringVar(&h.sentiment, "sentiment", "", "free-form sentiment note")
	f.StringVar(&h.tags, "tags", "", "comma or pipe separated tags")
	f.StringVar(&h.note, "note", "", "free-form note")
}

func (h *holdingFlags) input() folio.Input {
	in := folio.Input{
		Name:      h.name,
		Category:  h.category,
		Quantity:  h.quantity,
		TotalCost: h.cost,
		Currency:  h.currency,
		RiskLevel: h.risk,
		Strategy:  h.strategy,
		Sentiment: h.sentiment,
		Tags:      folio.SplitTags(h.tags),
		Note:      h.note,
	}
	if !math.IsNaN(h.price) {
		price := h.price
		in.CurrentPrice = &price
	}
	return in
}
