package emi

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestMonthly_Golden(t *testing.T) {
	// Pinned golden value: 100000 at 12% p.a. over 12 months.
	got := Monthly(dec("100000"), 12.0, 12)
	if want := dec("8884.88"); !got.Equal(want) {
		t.Fatalf("Monthly(100000, 12.0, 12) = %s, want %s", got, want)
	}
}

func TestMonthly_Deterministic(t *testing.T) {
	first := Monthly(dec("250000"), 8.5, 60)
	for i := 0; i < 10; i++ {
		if got := Monthly(dec("250000"), 8.5, 60); !got.Equal(first) {
			t.Fatalf("run %d: Monthly = %s, want %s", i, got, first)
		}
	}
}

func TestMonthly_ZeroTenure(t *testing.T) {
	if got := Monthly(dec("100000"), 12.0, 0); !got.IsZero() {
		t.Fatalf("tenure=0: got %s, want 0", got)
	}
	if got := Monthly(dec("100000"), 12.0, -5); !got.IsZero() {
		t.Fatalf("tenure=-5: got %s, want 0", got)
	}
}

func TestMonthly_ZeroRate(t *testing.T) {
	tests := []struct {
		principal string
		tenure    int
		want      string
	}{
		{"1200", 12, "100"},
		{"100", 3, "33.33"},
		// exactly-half case: half-to-even rounding keeps the even digit
		{"0.25", 10, "0.02"},
	}
	for _, tt := range tests {
		got := Monthly(dec(tt.principal), 0, tt.tenure)
		if !got.Equal(dec(tt.want)) {
			t.Errorf("Monthly(%s, 0, %d) = %s, want %s", tt.principal, tt.tenure, got, tt.want)
		}
	}
}

func TestMonthly_TwoDecimalPlaces(t *testing.T) {
	got := Monthly(dec("333333"), 9.0, 48)
	if got.Exponent() < -2 {
		t.Fatalf("installment %s has more than 2 decimal places", got)
	}
	if !got.IsPositive() {
		t.Fatalf("installment %s not positive", got)
	}
}
