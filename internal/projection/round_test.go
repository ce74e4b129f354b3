package projection

import (
	"log/slog"
	"math"
	"testing"

	"github.com/shopspring/decimal"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestRoundHalfUp_TiesAwayFromZero(t *testing.T) {
	cases := []struct {
		in     string
		places int32
		want   string
	}{
		{"12.345", 2, "12.35"},
		{"12.344", 2, "12.34"},
		{"-12.345", 2, "-12.35"},
		{"0.005", 2, "0.01"},
		{"2.5", 0, "3"},
		{"-2.5", 0, "-3"},
		{"1000", 2, "1000"},
	}

	for _, tc := range cases {
		d, err := decimal.NewFromString(tc.in)
		if err != nil {
			t.Fatalf("parse %q: %v", tc.in, err)
		}
		got := RoundHalfUp(d, tc.places)
		want, _ := decimal.NewFromString(tc.want)
		if !got.Equal(want) {
			t.Fatalf("RoundHalfUp(%s, %d) = %s, want %s", tc.in, tc.places, got, tc.want)
		}
	}
}

func TestRoundHalfUp_GuardPrecisionIsLossless(t *testing.T) {
	d, _ := decimal.NewFromString("123456.789")
	if got := RoundHalfUp(d, GuardPlaces); !got.Equal(d) {
		t.Fatalf("guard rounding changed value: %s -> %s", d, got)
	}
}

func TestRoundFloatHalfUp(t *testing.T) {
	got, ok := RoundFloatHalfUp(discardLogger(), 12.345, 2)
	if !ok {
		t.Fatal("RoundFloatHalfUp returned !ok for a finite value")
	}
	if want, _ := decimal.NewFromString("12.35"); !got.Equal(want) {
		t.Fatalf("RoundFloatHalfUp(12.345, 2) = %s, want 12.35", got)
	}
}

func TestRoundFloatHalfUp_NaNPassesThrough(t *testing.T) {
	if _, ok := RoundFloatHalfUp(discardLogger(), math.NaN(), 2); ok {
		t.Fatal("RoundFloatHalfUp returned ok for NaN")
	}
	if _, ok := RoundFloatHalfUp(discardLogger(), math.Inf(1), 2); ok {
		t.Fatal("RoundFloatHalfUp returned ok for +Inf")
	}
}
