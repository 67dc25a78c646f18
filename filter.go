package folio

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey selects the ordering of the visible holdings.
type SortKey string

const (
	// SortRecent keeps the underlying list order. Creates are prepended,
	// so this is most-recent-first without any reordering.
	SortRecent    SortKey = "recent"
	SortName      SortKey = "name"
	SortTotalCost SortKey = "totalCost"
	SortQuantity  SortKey = "quantity"
)

var sortKeys = map[SortKey]bool{
	SortRecent: true, SortName: true, SortTotalCost: true, SortQuantity: true,
}

// Filter is the persisted presentation state of the holdings table.
// Every field has a safe zero-ish default; loaders replace any invalid
// field with its default rather than failing.
type Filter struct {
	Query    string  `json:"query"`
	Category string  `json:"category"` // canonical category or "all"
	Sort     SortKey `json:"sort"`
	Tag      string  `json:"tag"`
}

// DefaultFilter returns the filter applied when nothing is persisted.
func DefaultFilter() Filter {
	return Filter{Query: "", Category: "all", Sort: SortRecent, Tag: ""}
}

// normalize replaces invalid fields with their defaults, in place. The
// category is canonicalized, not just validated: persisted filters from
// older clients carry the localized labels.
func (f *Filter) normalize() {
	if f.Category != "all" {
		if c := NormalizeCategory(f.Category); c == Unknown {
			f.Category = "all"
		} else {
			f.Category = string(c)
		}
	}
	if !sortKeys[f.Sort] {
		f.Sort = SortRecent
	}
}

// IsActive reports whether the filter narrows or reorders the full list.
func (f Filter) IsActive() bool {
	return strings.TrimSpace(f.Query) != "" || f.Category != "all" ||
		f.Sort != SortRecent || strings.TrimSpace(f.Tag) != ""
}

// Matches reports whether a holding satisfies all active predicates:
// name substring, category equality, tag substring. Predicates compose as
// a conjunction.
func (f Filter) Matches(h Holding) bool {
	if query := strings.ToLower(strings.TrimSpace(f.Query)); query != "" {
		if !strings.Contains(strings.ToLower(h.Name), query) {
			return false
		}
	}
	if f.Category != "all" && NormalizeCategory(string(h.Category)) != NormalizeCategory(f.Category) {
		return false
	}
	if tag := strings.TrimSpace(f.Tag); tag != "" && !h.HasTag(tag) {
		return false
	}
	return true
}

// sortHoldings orders holdings in place by the filter's sort key. The sort
// is stable so equal elements keep their most-recent-first order. Cost
// ordering converts to the display currency first so mixed-currency lists
// rank correctly.
func (f Filter) sortHoldings(list []Holding, rates RateTable, display string, loc language.Tag) {
	switch f.Sort {
	case SortName:
		coll := collate.New(loc, collate.Loose)
		sort.SliceStable(list, func(i, j int) bool {
			return coll.CompareString(list[i].Name, list[j].Name) < 0
		})
	case SortTotalCost:
		sort.SliceStable(list, func(i, j int) bool {
			return rates.Convert(list[i].TotalCost, list[i].Currency, display) >
				rates.Convert(list[j].TotalCost, list[j].Currency, display)
		})
	case SortQuantity:
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Quantity > list[j].Quantity
		})
	}
}

// Preset is a named, user-saved snapshot of a filter.
type Preset struct {
	Name   string `json:"name"`
	Filter Filter `json:"filter"`
}
