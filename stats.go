package folio

import (
	"math"
	"sort"
	"strings"
)

// Statistics summarizes the currently visible holdings, in the display
// currency. All sums are currency-converted before aggregation; the empty
// set yields zeros, never NaN.
type Statistics struct {
	AssetCount  int
	TotalCost   Money
	MarketValue Money
	Gain        Money
	AverageCost Money
}

// Statistics computes the summary over the visible set.
func (vm *ViewModel) Statistics() Statistics {
	visible := vm.Visible()
	var cost, market, quantity float64
	for _, h := range visible {
		cost += vm.toDisplay(h.TotalCost, h.Currency)
		market += vm.toDisplay(h.MarketValue(), h.Currency)
		quantity += h.Quantity
	}
	average := 0.0
	if quantity > 0 {
		average = cost / quantity
	}
	cur := vm.display
	return Statistics{
		AssetCount:  len(visible),
		TotalCost:   M(cost, cur),
		MarketValue: M(market, cur),
		Gain:        M(market-cost, cur),
		AverageCost: M(average, cur),
	}
}

// TargetStatus grades an allocation slice against its target.
type TargetStatus string

const (
	TargetOver  TargetStatus = "over"
	TargetUnder TargetStatus = "under"
	TargetMatch TargetStatus = "match"
)

// targetDeadBand is the tolerance, in percent points, within which an
// allocation counts as matching its target.
const targetDeadBand = 2.0

// AllocationSlice compares one category's share of the converted cost
// total against its target percent.
type AllocationSlice struct {
	Category Category
	Cost     Money
	Actual   Percent // integer-rounded share of the cost total
	Target   Percent
	Delta    Percent // Actual - Target
	Status   TargetStatus
}

// Allocation computes the per-category breakdown over the full holdings
// list (target tracking is filter-independent). Percentages are rounded
// to the nearest integer and are 0 when the total is 0.
func (vm *ViewModel) Allocation() []AllocationSlice {
	costs := make(map[Category]float64)
	total := 0.0
	for _, h := range vm.holdings {
		cost := vm.toDisplay(h.TotalCost, h.Currency)
		costs[NormalizeCategory(string(h.Category))] += cost
		total += cost
	}

	categories := append([]Category(nil), Categories...)
	if costs[Unknown] > 0 {
		categories = append(categories, Unknown)
	}

	slices := make([]AllocationSlice, 0, len(categories))
	for _, c := range categories {
		actual := 0.0
		if total > 0 {
			actual = math.Round(costs[c] / total * 100)
		}
		target := vm.targets[c]
		delta := actual - target
		status := TargetMatch
		switch {
		case delta > targetDeadBand:
			status = TargetOver
		case delta < -targetDeadBand:
			status = TargetUnder
		}
		slices = append(slices, AllocationSlice{
			Category: c,
			Cost:     M(costs[c], vm.display),
			Actual:   Percent(actual),
			Target:   Percent(target),
			Delta:    Percent(delta),
			Status:   status,
		})
	}
	return slices
}

// TargetTotal returns the informational sum of all targets. It is never
// validated to 100, only surfaced.
func (vm *ViewModel) TargetTotal() Percent {
	total := 0.0
	for _, pct := range vm.targets {
		total += pct
	}
	return Percent(total)
}

// TagInsight aggregates one tag across the portfolio.
type TagInsight struct {
	Tag   string // display form of the first occurrence
	Count int
	Cost  Money
	Share Percent // share of the converted cost total
}

// TagInsights aggregates tags case-insensitively over the full list,
// ordered by converted cost descending then tag ascending.
func (vm *ViewModel) TagInsights() []TagInsight {
	type bucket struct {
		display string
		count   int
		cost    float64
	}
	buckets := make(map[string]*bucket)
	total := 0.0
	for _, h := range vm.holdings {
		cost := vm.toDisplay(h.TotalCost, h.Currency)
		total += cost
		for _, tag := range h.Tags {
			key := strings.ToLower(tag)
			b, ok := buckets[key]
			if !ok {
				b = &bucket{display: tag}
				buckets[key] = b
			}
			b.count++
			b.cost += cost
		}
	}
	insights := make([]TagInsight, 0, len(buckets))
	for _, b := range buckets {
		share := 0.0
		if total > 0 {
			share = math.Round(b.cost / total * 100)
		}
		insights = append(insights, TagInsight{
			Tag:   b.display,
			Count: b.count,
			Cost:  M(b.cost, vm.display),
			Share: Percent(share),
		})
	}
	sort.Slice(insights, func(i, j int) bool {
		if insights[i].Cost.AsFloat() != insights[j].Cost.AsFloat() {
			return insights[i].Cost.AsFloat() > insights[j].Cost.AsFloat()
		}
		return insights[i].Tag < insights[j].Tag
	})
	return insights
}

// RiskSlice aggregates one risk level.
type RiskSlice struct {
	Level RiskLevel
	Count int
	Cost  Money
}

// RiskBreakdown aggregates risk levels over the full list and returns the
// cost-weighted composite score (1 = all low risk, 3 = all high risk,
// 0 when the portfolio is empty or costless).
func (vm *ViewModel) RiskBreakdown() (slices []RiskSlice, score float64) {
	counts := make(map[RiskLevel]int)
	costs := make(map[RiskLevel]float64)
	total := 0.0
	for _, h := range vm.holdings {
		level := NormalizeRisk(string(h.RiskLevel))
		cost := vm.toDisplay(h.TotalCost, h.Currency)
		counts[level]++
		costs[level] += cost
		total += cost
	}
	for _, level := range []RiskLevel{RiskLow, RiskMedium, RiskHigh} {
		slices = append(slices, RiskSlice{Level: level, Count: counts[level], Cost: M(costs[level], vm.display)})
		if total > 0 {
			score += riskScores[level] * costs[level] / total
		}
	}
	return slices, score
}

// BudgetProgress reports invested cost against the monthly budget, as a
// percent (uncapped so an overrun is visible). Zero budget yields zero.
func (vm *ViewModel) BudgetProgress() Percent {
	if vm.budget <= 0 {
		return 0
	}
	invested := 0.0
	for _, h := range vm.holdings {
		invested += vm.toDisplay(h.TotalCost, h.Currency)
	}
	return Percent(math.Round(invested / vm.budget * 100))
}
