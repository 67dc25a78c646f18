package folio

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
)

func TestMoneyRoundedHalfEven(t *testing.T) {
	cases := []struct {
		value float64
		want  string
	}{
		{2.345, "2.34"}, // ties go to the even digit
		{2.355, "2.36"},
		{2.344, "2.34"},
		{-2.345, "-2.34"},
	}
	for _, c := range cases {
		got := M(c.value, "USD").Rounded()
		if want := decimal.RequireFromString(c.want); !got.Equal(want) {
			t.Errorf("M(%v).Rounded() = %s, want %s", c.value, got, c.want)
		}
	}
}

func TestMoneyString(t *testing.T) {
	if got := M(1234.5, "USD").String(); got != "$1,234.50" {
		t.Errorf("String() = %q, want %q", got, "$1,234.50")
	}
	if got := FormatAmount(1234.5, "USD"); got != "$1,234.50" {
		t.Errorf("FormatAmount() = %q, want %q", got, "$1,234.50")
	}
	if got := FormatAmount(math.NaN(), "USD"); got != "$0.00" {
		t.Errorf("FormatAmount(NaN) = %q, want %q", got, "$0.00")
	}
}

func TestMoneySignedString(t *testing.T) {
	if got := M(0, "USD").SignedString(); got != "-" {
		t.Errorf("SignedString(0) = %q, want -", got)
	}
	if got := M(12, "USD").SignedString(); got != "+$12.00" {
		t.Errorf("SignedString(12) = %q, want +$12.00", got)
	}
	m := M(-12, "USD")
	if got := m.SignedString(); got[0] == '+' {
		t.Errorf("SignedString(-12) = %q, want no plus sign", got)
	}
}

func TestMoneyArithmetic(t *testing.T) {
	a, b := M(10, "USD"), M(2.5, "USD")
	if got := a.Add(b); !got.Equal(M(12.5, "USD")) {
		t.Errorf("Add() = %v, want 12.5 USD", got)
	}
	if got := a.Sub(b); !got.Equal(M(7.5, "USD")) {
		t.Errorf("Sub() = %v, want 7.5 USD", got)
	}
	if M(1, "USD").Equal(M(1, "EUR")) {
		t.Error("Equal() across currencies = true, want false")
	}
}

func TestPercent(t *testing.T) {
	if got := Percent(12).String(); got != "12%" {
		t.Errorf("Percent.String() = %q, want 12%%", got)
	}
	if !Percent(10).Equal(Percent(10.00001)) {
		t.Error("Equal() within precision = false, want true")
	}
	if Percent(10).Equal(Percent(10.1)) {
		t.Error("Equal() beyond precision = true, want false")
	}
}
