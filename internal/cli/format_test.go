package cli

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatGBP(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1234.5", "£1,234.50"},
		{"1000000", "£1,000,000.00"},
		{"0", "£0.00"},
		{"-960", "-£960.00"},
		{"12.345", "£12.35"},
	}

	for _, tc := range cases {
		d, err := decimal.NewFromString(tc.in)
		if err != nil {
			t.Fatalf("parse %q: %v", tc.in, err)
		}
		if got := FormatGBP(d); got != tc.want {
			t.Fatalf("FormatGBP(%s) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatGBPFloat(t *testing.T) {
	if got := FormatGBPFloat(1234.5); got != "£1,234.50" {
		t.Fatalf("FormatGBPFloat(1234.5) = %q, want £1,234.50", got)
	}
}

func TestFormatGBPShort(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{750000, "£750k"},
		{1200000, "£1.2M"},
		{500, "£500"},
		{1500, "£1.5k"},
		{-2000, "-£2k"},
	}

	for _, tc := range cases {
		if got := FormatGBPShort(tc.in); got != tc.want {
			t.Fatalf("FormatGBPShort(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestRenderTable_HasAllCells(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"Age", "Fund"},
		Rows: [][]string{
			{"55", "£750,000.00"},
			{"56", "£742,500.00"},
		},
	})

	for _, want := range []string{"Age", "Fund", "55", "£750,000.00", "56"} {
		if !strings.Contains(out, want) {
			t.Fatalf("rendered table missing %q:\n%s", want, out)
		}
	}
}

func TestBarChart_RendersBarsAndLabels(t *testing.T) {
	out := BarChart(
		[]float64{100000, 50000, 0},
		[]string{"60", "61", "62"},
		60, 10,
	)

	if !strings.Contains(out, "█") {
		t.Fatalf("chart has no bars:\n%s", out)
	}
	if !strings.Contains(out, "60") {
		t.Fatalf("chart missing x label:\n%s", out)
	}
	if !strings.Contains(out, "£0") {
		t.Fatalf("chart missing zero tick:\n%s", out)
	}
}

func TestBarChart_EmptyInput(t *testing.T) {
	if out := BarChart(nil, nil, 60, 10); out != "" {
		t.Fatalf("BarChart(nil) = %q, want empty", out)
	}
}
