package folio

import (
	"math"
	"testing"

	"github.com/rs/zerolog"
)

// statsVM builds an offline view-model with a preloaded holdings list.
func statsVM(holdings []Holding) *ViewModel {
	vm := NewViewModel(NewClient("http://unused", zerolog.Nop()), MemStore{})
	vm.holdings = holdings
	return vm
}

func TestStatisticsScenario(t *testing.T) {
	// 10 AAPL bought for 1000 USD, now priced 120.
	vm := statsVM([]Holding{
		{Name: "AAPL", Category: Stock, Quantity: 10, TotalCost: 1000, CurrentPrice: ptr(120), Currency: "USD"},
	})
	stats := vm.Statistics()
	if stats.AssetCount != 1 {
		t.Errorf("AssetCount = %d, want 1", stats.AssetCount)
	}
	if !stats.AverageCost.Equal(M(100, "USD")) {
		t.Errorf("AverageCost = %v, want $100", stats.AverageCost)
	}
	if !stats.MarketValue.Equal(M(1200, "USD")) {
		t.Errorf("MarketValue = %v, want $1200", stats.MarketValue)
	}
	if !stats.Gain.Equal(M(200, "USD")) {
		t.Errorf("Gain = %v, want $200", stats.Gain)
	}
}

func TestStatisticsEmpty(t *testing.T) {
	stats := statsVM(nil).Statistics()
	if stats.AssetCount != 0 {
		t.Errorf("AssetCount = %d, want 0", stats.AssetCount)
	}
	// The empty set yields zeros, never NaN.
	if !stats.AverageCost.IsZero() || !stats.TotalCost.IsZero() {
		t.Errorf("empty statistics = %+v, want all zeros", stats)
	}
}

func TestStatisticsOverVisibleSet(t *testing.T) {
	vm := statsVM([]Holding{
		{Name: "AAPL", Category: Stock, Quantity: 1, TotalCost: 100, Currency: "USD"},
		{Name: "BTC", Category: Crypto, Quantity: 1, TotalCost: 900, Currency: "USD"},
	})
	vm.filter = Filter{Category: "stock"}
	stats := vm.Statistics()
	if stats.AssetCount != 1 {
		t.Errorf("AssetCount = %d, want the visible subset only", stats.AssetCount)
	}
	if !stats.TotalCost.Equal(M(100, "USD")) {
		t.Errorf("TotalCost = %v, want $100", stats.TotalCost)
	}
}

func TestAllocationScenario(t *testing.T) {
	// 80% stock / 20% crypto against targets 60/40: stock is over by 20,
	// crypto under by 20, both outside the 2-point dead band.
	vm := statsVM([]Holding{
		{Name: "AAPL", Category: Stock, TotalCost: 8000, Currency: "USD"},
		{Name: "BTC", Category: Crypto, TotalCost: 2000, Currency: "USD"},
	})
	vm.targets = map[Category]float64{Stock: 60, Crypto: 40}

	byCat := make(map[Category]AllocationSlice)
	for _, s := range vm.Allocation() {
		byCat[s.Category] = s
	}
	stock := byCat[Stock]
	if !stock.Actual.Equal(80) || stock.Status != TargetOver || !stock.Delta.Equal(20) {
		t.Errorf("stock slice = %+v, want 80%% over by 20", stock)
	}
	crypto := byCat[Crypto]
	if !crypto.Actual.Equal(20) || crypto.Status != TargetUnder || !crypto.Delta.Equal(-20) {
		t.Errorf("crypto slice = %+v, want 20%% under by 20", crypto)
	}
	if etf := byCat[ETF]; etf.Status != TargetMatch {
		t.Errorf("etf slice = %+v, want match at 0 vs no target", etf)
	}
}

func TestAllocationDeadBand(t *testing.T) {
	// 61% vs a 60% target is within the 2-point band.
	vm := statsVM([]Holding{
		{Name: "A", Category: Stock, TotalCost: 61, Currency: "USD"},
		{Name: "B", Category: Cash, TotalCost: 39, Currency: "USD"},
	})
	vm.targets = map[Category]float64{Stock: 60, Cash: 39}
	for _, s := range vm.Allocation() {
		if s.Category == Stock && s.Status != TargetMatch {
			t.Errorf("stock at 61%% vs 60%% = %v, want match", s.Status)
		}
	}
}

func TestAllocationIgnoresFilter(t *testing.T) {
	vm := statsVM([]Holding{
		{Name: "AAPL", Category: Stock, TotalCost: 500, Currency: "USD"},
		{Name: "BTC", Category: Crypto, TotalCost: 500, Currency: "USD"},
	})
	vm.filter = Filter{Category: "stock"}
	for _, s := range vm.Allocation() {
		if s.Category == Crypto && !s.Actual.Equal(50) {
			t.Errorf("crypto share = %v, allocation must cover the full list", s.Actual)
		}
	}
}

func TestAllocationEmptyPortfolio(t *testing.T) {
	for _, s := range statsVM(nil).Allocation() {
		if !s.Actual.Equal(0) {
			t.Errorf("%s share = %v on an empty portfolio, want 0", s.Category, s.Actual)
		}
	}
}

func TestAllocationUnknownBucket(t *testing.T) {
	vm := statsVM([]Holding{
		{Name: "Mystery", Category: "bond", TotalCost: 100, Currency: "USD"},
	})
	found := false
	for _, s := range vm.Allocation() {
		if s.Category == Unknown {
			found = true
			if !s.Actual.Equal(100) {
				t.Errorf("unknown share = %v, want 100", s.Actual)
			}
		}
	}
	if !found {
		t.Error("Allocation() did not surface the unknown bucket")
	}

	// Without unrecognized holdings the bucket stays hidden.
	vm = statsVM([]Holding{{Name: "AAPL", Category: Stock, TotalCost: 100, Currency: "USD"}})
	for _, s := range vm.Allocation() {
		if s.Category == Unknown {
			t.Error("Allocation() surfaced an empty unknown bucket")
		}
	}
}

func TestTargetTotal(t *testing.T) {
	vm := statsVM(nil)
	vm.targets = map[Category]float64{Stock: 60, Crypto: 30, ETF: 30}
	if got := vm.TargetTotal(); !got.Equal(120) {
		t.Errorf("TargetTotal() = %v, want 120 surfaced, never forced to 100", got)
	}
}

func TestTagInsights(t *testing.T) {
	vm := statsVM([]Holding{
		{Name: "AAPL", TotalCost: 600, Currency: "USD", Tags: []string{"Tech"}},
		{Name: "NVDA", TotalCost: 300, Currency: "USD", Tags: []string{"tech", "ai"}},
		{Name: "KO", TotalCost: 100, Currency: "USD", Tags: []string{"dividends"}},
	})
	insights := vm.TagInsights()
	if len(insights) != 3 {
		t.Fatalf("len(insights) = %d, want tags merged case-insensitively", len(insights))
	}
	top := insights[0]
	if top.Tag != "Tech" {
		t.Errorf("top tag = %q, want the first display form kept", top.Tag)
	}
	if top.Count != 2 || !top.Cost.Equal(M(900, "USD")) || !top.Share.Equal(90) {
		t.Errorf("top insight = %+v, want 2 holdings, $900, 90%%", top)
	}
}

func TestRiskBreakdown(t *testing.T) {
	vm := statsVM([]Holding{
		{Name: "T-Bills", TotalCost: 500, Currency: "USD", RiskLevel: RiskLow},
		{Name: "BTC", TotalCost: 500, Currency: "USD", RiskLevel: RiskHigh},
	})
	slices, score := vm.RiskBreakdown()
	if len(slices) != 3 {
		t.Fatalf("len(slices) = %d, want one per level", len(slices))
	}
	// Half low (1), half high (3) weighs out to 2.
	if math.Abs(score-2) > 1e-9 {
		t.Errorf("score = %v, want 2", score)
	}

	_, empty := statsVM(nil).RiskBreakdown()
	if empty != 0 {
		t.Errorf("empty portfolio score = %v, want 0", empty)
	}
}

func TestBudgetProgress(t *testing.T) {
	vm := statsVM([]Holding{{Name: "AAPL", TotalCost: 1500, Currency: "USD"}})
	if got := vm.BudgetProgress(); !got.Equal(0) {
		t.Errorf("BudgetProgress() without a budget = %v, want 0", got)
	}
	vm.budget = 1000
	if got := vm.BudgetProgress(); !got.Equal(150) {
		t.Errorf("BudgetProgress() = %v, want the uncapped 150", got)
	}
}

func TestStatisticsMixedCurrencies(t *testing.T) {
	vm := statsVM([]Holding{
		{Name: "US", Quantity: 1, TotalCost: 100, Currency: "USD"},
		{Name: "CN", Quantity: 1, TotalCost: 1000, Currency: "CNY"}, // 140 USD
	})
	stats := vm.Statistics()
	want := 100 + 1000*0.14
	if math.Abs(stats.TotalCost.AsFloat()-want) > 0.01 {
		t.Errorf("TotalCost = %v, want %v USD", stats.TotalCost.AsFloat(), want)
	}
	if stats.TotalCost.Currency() != "USD" {
		t.Errorf("Currency = %q, want the display currency", stats.TotalCost.Currency())
	}
}
