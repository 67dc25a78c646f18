package folio

import "strings"

// Category classifies a holding. The set is closed: every value coming from
// the API, a CSV file or a legacy record is normalized to one of the
// canonical codes before any comparison or aggregation.
type Category string

const (
	Stock  Category = "stock"
	Crypto Category = "crypto"
	ETF    Category = "etf"
	Cash   Category = "cash"
	// Unknown marks input that no normalization rule recognizes. Earlier
	// clients silently passed such values through, which misclassifies
	// aggregates; keeping them apart makes the drift visible.
	Unknown Category = "unknown"
)

// Categories lists the canonical categories, in display order.
var Categories = []Category{Stock, Crypto, ETF, Cash}

// categoryAliases maps every accepted spelling to its canonical code.
// Legacy records from the first client generations carry the localized
// labels, so they are part of the accepted set forever.
var categoryAliases = map[string]Category{
	"stock":  Stock,
	"股票":     Stock,
	"crypto": Crypto,
	"虚拟币":    Crypto,
	"etf":    ETF,
	"ETF":    ETF,
	"cash":   Cash,
	"现金":     Cash,
}

// NormalizeCategory maps raw input (canonical code or legacy localized
// label) to its canonical category. Unrecognized input yields Unknown.
func NormalizeCategory(raw string) Category {
	raw = strings.TrimSpace(raw)
	if c, ok := categoryAliases[raw]; ok {
		return c
	}
	if c, ok := categoryAliases[strings.ToLower(raw)]; ok {
		return c
	}
	return Unknown
}

// RiskLevel grades a holding. Default is RiskMedium.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// riskScores weights risk levels for the composite portfolio score.
var riskScores = map[RiskLevel]float64{RiskLow: 1, RiskMedium: 2, RiskHigh: 3}

// NormalizeRisk maps raw input to a risk level, defaulting to RiskMedium.
func NormalizeRisk(raw string) RiskLevel {
	switch RiskLevel(strings.ToLower(strings.TrimSpace(raw))) {
	case RiskLow:
		return RiskLow
	case RiskHigh:
		return RiskHigh
	default:
		return RiskMedium
	}
}
