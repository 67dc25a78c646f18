package folio

import (
	"fmt"
	"strings"
)

// Message keys for the per-field validation failures. They double as
// localization keys so a caller can display every violated field at once.
const (
	NameRequired    = "assetNameError"
	QuantityInvalid = "quantityError"
	CostInvalid     = "costError"
	PriceInvalid    = "currentPriceError"
)

// ValidationError reports every violated field of a save input. It is
// detected locally, before any network call, and nothing is mutated when
// it is returned.
type ValidationError struct {
	Fields map[string]string // field name -> message key
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		keys = append(keys, field)
	}
	return fmt.Sprintf("invalid asset input: %s", strings.Join(keys, ", "))
}

// Input is the raw material of a save operation, before normalization.
type Input struct {
	Name         string
	Category     string
	Quantity     float64
	TotalCost    float64
	CurrentPrice *float64
	Currency     string
	RiskLevel    string
	Strategy     string
	Sentiment    string
	Tags         []string
	Note         string
}

// Validate runs the four field checks independently and reports them
// together, never short-circuiting, so every violated field surfaces in
// one pass.
func (in Input) Validate() *ValidationError {
	fields := make(map[string]string)
	if NormalizeName(in.Name) == "" {
		fields["name"] = NameRequired
	}
	if !(in.Quantity > 0) {
		fields["quantity"] = QuantityInvalid
	}
	if !(in.TotalCost >= 0) {
		fields["cost"] = CostInvalid
	}
	if in.CurrentPrice != nil && !(*in.CurrentPrice >= 0) {
		fields["currentPrice"] = PriceInvalid
	}
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

// normalized returns the holding payload derived from the input: name and
// note trimmed and length-capped, category and risk normalized, tags
// de-duplicated, currency defaulted by locale when unset.
func (in Input) normalized(locale string) Holding {
	name := NormalizeName(in.Name)
	if runes := []rune(name); len(runes) > MaxNameLength {
		name = string(runes[:MaxNameLength])
	}
	note := strings.TrimSpace(in.Note)
	if runes := []rune(note); len(runes) > MaxNoteLength {
		note = string(runes[:MaxNoteLength])
	}
	currency := strings.ToUpper(strings.TrimSpace(in.Currency))
	if currency == "" {
		currency = DefaultCurrency(locale)
	}
	return Holding{
		Name:         name,
		Category:     NormalizeCategory(in.Category),
		Quantity:     in.Quantity,
		TotalCost:    in.TotalCost,
		CurrentPrice: in.CurrentPrice,
		Currency:     currency,
		RiskLevel:    NormalizeRisk(in.RiskLevel),
		Strategy:     strings.TrimSpace(in.Strategy),
		Sentiment:    strings.TrimSpace(in.Sentiment),
		Tags:         NormalizeTags(in.Tags),
		Note:         note,
	}
}
