package renderer

// TimelineEntry is one pre-formatted timeline record, newest first.
type TimelineEntry struct {
	When   string
	Title  string
	Detail string
}

// Timeline is the view of the mutation event log.
type Timeline struct {
	Title   string
	Entries []TimelineEntry
	Empty   string
}

// TimelineMarkdown renders the timeline to a markdown string.
func TimelineMarkdown(t *Timeline) string {
	return renderTemplate("timeline", "timeline.md", t)
}

// HistoryPoint is one pre-formatted value snapshot.
type HistoryPoint struct {
	When  string
	Value string
	Bar   string // proportional bar for a terminal-friendly trend view
}

// History is the view of the portfolio value trend.
type History struct {
	Title  string
	Points []HistoryPoint
	Empty  string
}

// HistoryMarkdown renders the value history to a markdown string.
func HistoryMarkdown(h *History) string {
	return renderTemplate("history", "history.md", h)
}
