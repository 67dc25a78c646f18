package renderer

// Stat is one labeled summary figure.
type Stat struct {
	Label string
	Value string
}

// AllocationRow compares one category against its target.
type AllocationRow struct {
	Category string
	Cost     string
	Actual   string
	Target   string
	Delta    string // localized over/under/match phrase
}

// Summary is the view of the portfolio summary report.
type Summary struct {
	Title       string
	Stats       []Stat
	Allocations []AllocationRow
	TargetTotal string
	Budget      string // empty when no budget is set
	RiskScore   string // empty when the portfolio is empty
}

// SummaryMarkdown renders the summary report to a markdown string.
func SummaryMarkdown(s *Summary) string {
	return renderTemplate("summary", "summary.md", s)
}
