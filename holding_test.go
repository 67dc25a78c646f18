package folio

import (
	"reflect"
	"strings"
	"testing"
)

func ptr(f float64) *float64 { return &f }

func TestMarketValue(t *testing.T) {
	h := Holding{Quantity: 10, TotalCost: 1000}
	if got := h.MarketValue(); got != 1000 {
		t.Errorf("MarketValue() without price = %v, want cost 1000", got)
	}
	h.CurrentPrice = ptr(120)
	if got := h.MarketValue(); got != 1200 {
		t.Errorf("MarketValue() with price = %v, want 1200", got)
	}
	if got := h.UnrealizedGain(); got != 200 {
		t.Errorf("UnrealizedGain() = %v, want 200", got)
	}
	// An explicit zero price is not "no price".
	h.CurrentPrice = ptr(0)
	if got := h.MarketValue(); got != 0 {
		t.Errorf("MarketValue() with zero price = %v, want 0", got)
	}
}

func TestHasTag(t *testing.T) {
	h := Holding{Tags: []string{"Long Term", "tech"}}
	if !h.HasTag("long") {
		t.Error("HasTag(long) = false, want substring match")
	}
	if !h.HasTag("TECH") {
		t.Error("HasTag(TECH) = false, want case-insensitive match")
	}
	if h.HasTag("") {
		t.Error("HasTag(\"\") = true, want empty query to match nothing")
	}
	if h.HasTag("bonds") {
		t.Error("HasTag(bonds) = true, want false")
	}
}

func TestNormalizeTags(t *testing.T) {
	got := NormalizeTags([]string{" tech ", "Tech", "", "long\tterm", "TECH"})
	want := []string{"tech", "long term"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeTags() = %v, want %v", got, want)
	}
}

func TestNormalizeTagsLimits(t *testing.T) {
	long := strings.Repeat("x", MaxTagLength+5)
	got := NormalizeTags([]string{long})
	if len(got) != 1 || len([]rune(got[0])) != MaxTagLength {
		t.Errorf("NormalizeTags(long) = %v, want one tag truncated to %d runes", got, MaxTagLength)
	}

	many := make([]string, MaxTags+4)
	for i := range many {
		many[i] = strings.Repeat("t", i+1)
	}
	if got := NormalizeTags(many); len(got) != MaxTags {
		t.Errorf("NormalizeTags(%d tags) kept %d, want %d", len(many), len(got), MaxTags)
	}
}

func TestSplitTags(t *testing.T) {
	cases := []struct {
		value string
		want  []string
	}{
		{"a,b", []string{"a", "b"}},
		{"a|b", []string{"a", "b"}},
		{"a， b", []string{"a", "b"}},
		{" a , ,b ", []string{"a", "b"}},
		{"", nil},
	}
	for _, c := range cases {
		got := SplitTags(c.value)
		if len(got) == 0 && len(c.want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("SplitTags(%q) = %v, want %v", c.value, got, c.want)
		}
	}
}

func TestNormalizeName(t *testing.T) {
	if got := NormalizeName("  Apple \t Inc  "); got != "Apple Inc" {
		t.Errorf("NormalizeName() = %q, want %q", got, "Apple Inc")
	}
}
