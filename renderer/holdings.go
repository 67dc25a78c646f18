package renderer

// HoldingRow is one pre-formatted line of the holdings table.
type HoldingRow struct {
	Name        string
	Category    string
	Quantity    string
	Cost        string
	MarketValue string
	Gain        string
	Risk        string
	Tags        string
}

// Holdings is the view of the visible holdings table.
type Holdings struct {
	Title    string
	Subtitle string
	Rows     []HoldingRow
	Empty    string // shown when Rows is empty
}

// HoldingsMarkdown renders the holdings table to a markdown string.
func HoldingsMarkdown(h *Holdings) string {
	return renderTemplate("holdings", "holdings.md", h)
}
