package folio

import (
	"path/filepath"
	"testing"
)

func TestDirStore(t *testing.T) {
	store, err := NewDirStore(filepath.Join(t.TempDir(), "state"))
	if err != nil {
		t.Fatalf("NewDirStore() = %v", err)
	}
	if _, ok := store.GetItem(KeyToken); ok {
		t.Error("GetItem() on a fresh store = ok, want miss")
	}
	if err := store.SetItem(KeyToken, "abc"); err != nil {
		t.Fatalf("SetItem() = %v", err)
	}
	got, ok := store.GetItem(KeyToken)
	if !ok || got != "abc" {
		t.Errorf("GetItem() = %q, %v, want abc, true", got, ok)
	}
}

func TestLoadFilterDefensive(t *testing.T) {
	cases := []struct {
		name string
		blob string
	}{
		{"missing", ""},
		{"garbage", "not json"},
		{"wrong types", `{"query": 42, "sort": ["x"]}`},
		{"invalid values", `{"category": "bond", "sort": "alphabetical"}`},
	}
	for _, c := range cases {
		store := MemStore{}
		if c.blob != "" {
			store[KeyFilter] = c.blob
		}
		got := LoadFilter(store)
		if got.Category != "all" || got.Sort != SortRecent {
			t.Errorf("%s: LoadFilter() = %+v, want defaults", c.name, got)
		}
	}

	// A valid blob survives intact.
	store := MemStore{KeyFilter: `{"query":"apple","category":"stock","sort":"name","tag":"tech"}`}
	got := LoadFilter(store)
	if got.Query != "apple" || got.Category != "stock" || got.Sort != SortName || got.Tag != "tech" {
		t.Errorf("LoadFilter() = %+v, want the persisted filter", got)
	}

	// A legacy blob with a localized category label canonicalizes.
	store = MemStore{KeyFilter: `{"category":"股票"}`}
	if got := LoadFilter(store); got.Category != "stock" {
		t.Errorf("LoadFilter(legacy label) category = %q, want stock", got.Category)
	}
}

func TestLoadTargetsDefensive(t *testing.T) {
	for _, blob := range []string{"][", `"sixty"`, `{}`, `{"bond": 50}`} {
		store := MemStore{KeyTargets: blob}
		got := LoadTargets(store)
		if got[Stock] != 60 || got[Crypto] != 20 || got[ETF] != 20 {
			t.Errorf("LoadTargets(%q) = %v, want defaults", blob, got)
		}
	}
}

func TestLoadTargetsClamps(t *testing.T) {
	store := MemStore{KeyTargets: `{"stock": 150, "crypto": -10, "etf": 30, "unknown": 5}`}
	got := LoadTargets(store)
	if got[Stock] != 100 {
		t.Errorf("Stock target = %v, want clamped 100", got[Stock])
	}
	if got[Crypto] != 0 {
		t.Errorf("Crypto target = %v, want clamped 0", got[Crypto])
	}
	if got[ETF] != 30 {
		t.Errorf("ETF target = %v, want 30", got[ETF])
	}
	if _, ok := got[Unknown]; ok {
		t.Error("Unknown category must not carry a target")
	}
}

func TestLoadRatesMergesOverDefaults(t *testing.T) {
	store := MemStore{KeyRates: `{"EUR": 1.10, "CHF": 1.12, "JPY": -5}`}
	got := LoadRates(store)
	if got["EUR"] != 1.10 {
		t.Errorf("EUR = %v, want the persisted 1.10", got["EUR"])
	}
	if got["CHF"] != 1.12 {
		t.Errorf("CHF = %v, want the persisted 1.12", got["CHF"])
	}
	if got["JPY"] != 0.0067 {
		t.Errorf("JPY = %v, want the default after coercion", got["JPY"])
	}
	if got["CNY"] != 0.14 {
		t.Errorf("CNY = %v, want the untouched default", got["CNY"])
	}
}

func TestLoadDisplayCurrency(t *testing.T) {
	if got := LoadDisplayCurrency(MemStore{}, "zh-CN"); got != "CNY" {
		t.Errorf("LoadDisplayCurrency(empty, zh-CN) = %q, want CNY", got)
	}
	if got := LoadDisplayCurrency(MemStore{KeyCurrency: " eur "}, "en-US"); got != "EUR" {
		t.Errorf("LoadDisplayCurrency(eur) = %q, want EUR", got)
	}
	if got := LoadDisplayCurrency(MemStore{KeyCurrency: "EURO"}, "en-US"); got != "USD" {
		t.Errorf("LoadDisplayCurrency(EURO) = %q, want the USD fallback", got)
	}
}

func TestLoadBudget(t *testing.T) {
	cases := []struct {
		blob string
		want float64
	}{
		{"2000", 2000},
		{"-5", 0},
		{`"lots"`, 0},
		{"null", 0},
	}
	for _, c := range cases {
		store := MemStore{KeyBudget: c.blob}
		if got := LoadBudget(store); got != c.want {
			t.Errorf("LoadBudget(%q) = %v, want %v", c.blob, got, c.want)
		}
	}
}

func TestLoadHistoryTrimsOversize(t *testing.T) {
	store := MemStore{KeyHistory: "broken"}
	if got := LoadHistory(store); len(got.Points) != 0 {
		t.Errorf("LoadHistory(broken) = %d points, want 0", len(got.Points))
	}
}

func TestLoadPresets(t *testing.T) {
	store := MemStore{KeyPresets: `[{"name":"tech","filter":{"category":"bond","sort":"name"}},{"name":"  "}]`}
	got := LoadPresets(store)
	if len(got) != 1 {
		t.Fatalf("len(presets) = %d, want the unnamed one dropped", len(got))
	}
	if got[0].Filter.Category != "all" {
		t.Errorf("preset category = %q, want normalized to all", got[0].Filter.Category)
	}
	if got[0].Filter.Sort != SortName {
		t.Errorf("preset sort = %q, want name", got[0].Filter.Sort)
	}
}

func TestLoadLocale(t *testing.T) {
	if got := LoadLocale(MemStore{}); got != "en-US" {
		t.Errorf("LoadLocale(empty) = %q, want en-US", got)
	}
	if got := LoadLocale(MemStore{KeyLocale: "zh-CN"}); got != "zh-CN" {
		t.Errorf("LoadLocale() = %q, want zh-CN", got)
	}
}
