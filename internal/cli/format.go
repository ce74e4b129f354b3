// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// FormatGBP renders an amount in pounds with thousands separators and two
// decimal places, e.g. 1234.5 -> "£1,234.50".
func FormatGBP(d decimal.Decimal) string {
	minor := d.Shift(2).Round(0)
	return money.New(minor.IntPart(), money.GBP).Display()
}

// FormatGBPFloat is FormatGBP for float inputs, used where a rendering
// library hands back float axis values.
func FormatGBPFloat(v float64) string {
	return money.New(int64(math.Round(v*100)), money.GBP).Display()
}

// FormatGBPShort renders a compact pound amount for axis tick labels.
// e.g. 750000 -> "£750k", 1250000 -> "£1.3M"
func FormatGBPShort(v float64) string {
	neg := ""
	if v < 0 {
		neg = "-"
		v = -v
	}
	switch {
	case v >= 1e6:
		if v == math.Trunc(v/1e6)*1e6 {
			return fmt.Sprintf("%s£%.0fM", neg, v/1e6)
		}
		return fmt.Sprintf("%s£%.1fM", neg, v/1e6)
	case v >= 1e3:
		if v == math.Trunc(v/1e3)*1e3 {
			return fmt.Sprintf("%s£%.0fk", neg, v/1e3)
		}
		return fmt.Sprintf("%s£%.1fk", neg, v/1e3)
	default:
		return fmt.Sprintf("%s£%.0f", neg, v)
	}
}
