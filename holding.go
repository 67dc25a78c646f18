package folio

import "strings"

// Limits inherited from the backing store contract.
const (
	MaxNameLength = 120
	MaxNoteLength = 200
	MaxTags       = 8
	MaxTagLength  = 20
)

// Holding is one portfolio entry, as served by the portfolio API.
//
// TotalCost is expressed in Currency. CurrentPrice is a pointer because the
// API distinguishes "no price known" (market value falls back to cost) from
// an explicit zero price.
type Holding struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Category     Category  `json:"category"`
	Quantity     float64   `json:"quantity"`
	TotalCost    float64   `json:"totalCost"`
	CurrentPrice *float64  `json:"currentPrice,omitempty"`
	Currency     string    `json:"currency,omitempty"`
	RiskLevel    RiskLevel `json:"riskLevel,omitempty"`
	Strategy     string    `json:"strategy,omitempty"`
	Sentiment    string    `json:"sentiment,omitempty"`
	Tags         []string  `json:"tags,omitempty"`
	Note         string    `json:"note,omitempty"`
	CreatedAt    string    `json:"createdAt,omitempty"`
	UpdatedAt    string    `json:"updatedAt,omitempty"`
}

// MarketValue returns the holding's market value in its own currency:
// quantity times current price when a price is known, total cost otherwise.
func (h Holding) MarketValue() float64 {
	if h.CurrentPrice != nil {
		return *h.CurrentPrice * h.Quantity
	}
	return h.TotalCost
}

// UnrealizedGain returns market value minus cost, in the holding's currency.
func (h Holding) UnrealizedGain() float64 {
	return h.MarketValue() - h.TotalCost
}

// HasTag reports whether any of the holding's tags contains the query,
// case-insensitively. An empty query matches nothing.
func (h Holding) HasTag(query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return false
	}
	for _, tag := range h.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

// NormalizeTags collapses whitespace, drops empties, de-duplicates
// case-insensitively while keeping the display form of the first
// occurrence, and enforces the tag count and length limits by truncation.
func NormalizeTags(tags []string) []string {
	normalized := make([]string, 0, len(tags))
	seen := make(map[string]bool)
	for _, tag := range tags {
		cleaned := strings.Join(strings.Fields(tag), " ")
		if cleaned == "" {
			continue
		}
		if runes := []rune(cleaned); len(runes) > MaxTagLength {
			cleaned = string(runes[:MaxTagLength])
		}
		key := strings.ToLower(cleaned)
		if seen[key] {
			continue
		}
		seen[key] = true
		normalized = append(normalized, cleaned)
		if len(normalized) == MaxTags {
			break
		}
	}
	return normalized
}

// SplitTags splits a comma- or pipe-separated tag string into raw tags.
// Both separators are accepted because older exports used commas.
func SplitTags(value string) []string {
	fields := strings.FieldsFunc(value, func(r rune) bool {
		return r == ',' || r == '|' || r == '，'
	})
	tags := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			tags = append(tags, f)
		}
	}
	return tags
}

// NormalizeName collapses inner whitespace and trims the name.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}
