package folio

import (
	"time"

	"github.com/google/uuid"
)

const (
	// ValueHistoryCap bounds the number of retained value snapshots.
	ValueHistoryCap = 30
	// SnapshotSpacing is the minimum age of the latest snapshot before a
	// new one is appended. Rapid mutations therefore cannot spam the
	// trend series.
	SnapshotSpacing = 2 * time.Hour
	// EventLogCap bounds the number of retained timeline events.
	EventLogCap = 40
)

// ValuePoint is one snapshot of the portfolio's total market value, in the
// display currency at the time it was taken.
type ValuePoint struct {
	At    time.Time `json:"at"`
	Value float64   `json:"value"`
}

// ValueHistory is an ordered, append-only, capacity-bounded series of
// value snapshots driving the trend chart.
type ValueHistory struct {
	Points []ValuePoint `json:"points"`
}

// Record appends a snapshot unless the latest one is younger than the
// spacing interval. It reports whether a point was appended. The series
// keeps at most ValueHistoryCap points, dropping the oldest.
func (h *ValueHistory) Record(at time.Time, value float64) bool {
	if n := len(h.Points); n > 0 && at.Sub(h.Points[n-1].At) < SnapshotSpacing {
		return false
	}
	h.Points = append(h.Points, ValuePoint{At: at, Value: value})
	if len(h.Points) > ValueHistoryCap {
		h.Points = h.Points[len(h.Points)-ValueHistoryCap:]
	}
	return true
}

// Latest returns the most recent snapshot, if any.
func (h *ValueHistory) Latest() (ValuePoint, bool) {
	if len(h.Points) == 0 {
		return ValuePoint{}, false
	}
	return h.Points[len(h.Points)-1], true
}

// Event is one timeline record of a holding-level mutation.
type Event struct {
	ID     string    `json:"id"`
	At     time.Time `json:"at"`
	Title  string    `json:"title"`  // localization key: eventAdded, eventUpdated, ...
	Detail string    `json:"detail"` // holding name or free text
}

// EventLog is an ordered, prepend-only, capacity-bounded sequence of
// mutation records, newest first.
type EventLog struct {
	Events []Event `json:"events"`
}

// Event title keys, matching the localization tables.
const (
	EventAdded    = "eventAdded"
	EventUpdated  = "eventUpdated"
	EventDeleted  = "eventDeleted"
	EventImported = "eventImported"
)

// Prepend inserts a new event at the head and trims the tail beyond the
// capacity.
func (l *EventLog) Prepend(at time.Time, title, detail string) Event {
	e := Event{ID: uuid.NewString(), At: at, Title: title, Detail: detail}
	l.Events = append([]Event{e}, l.Events...)
	if len(l.Events) > EventLogCap {
		l.Events = l.Events[:EventLogCap]
	}
	return e
}
