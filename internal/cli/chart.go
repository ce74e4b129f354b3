package cli

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// BarChart renders a unicode bar chart, one bar per value, with pound-scale
// tick labels on the y-axis and the given labels along the x-axis. Negative
// values are drawn as empty columns; callers chart the zero-clamped display
// series so none should appear.
func BarChart(values []float64, labels []string, width, height int) string {
	if len(values) == 0 || width < 20 || height < 4 {
		return ""
	}

	maxVal := 0.0
	for _, v := range values {
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	tick := tickStep(maxVal)
	ceiling := math.Ceil(maxVal/tick) * tick
	intervals := int(math.Round(ceiling / tick))
	if intervals < 1 {
		intervals = 1
	}

	rowsPerTick := height / intervals
	if rowsPerTick < 1 {
		rowsPerTick = 1
	}
	chartH := rowsPerTick * intervals

	yLabelW := len(FormatGBPShort(ceiling)) + 1
	tickLabels := make(map[int]string, intervals)
	for i := 1; i <= intervals; i++ {
		tickLabels[i*rowsPerTick] = FormatGBPShort(tick * float64(i))
	}

	n := len(values)
	barW := (width - yLabelW - 1 - (n - 1)) / n
	if barW < 1 {
		barW = 1
	}
	if barW > 4 {
		barW = 4
	}
	gap := 1
	axisLen := n*barW + (n-1)*gap

	blocks := []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	barStyle := lipgloss.NewStyle().Foreground(ColorAccent)
	axisStyle := lipgloss.NewStyle().Foreground(ColorTextDim)

	var b strings.Builder
	for row := chartH; row >= 1; row-- {
		rowTop := ceiling * float64(row) / float64(chartH)
		rowBottom := ceiling * float64(row-1) / float64(chartH)

		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, tickLabels[row])))
		b.WriteString(axisStyle.Render("│"))

		for i, v := range values {
			if i > 0 {
				b.WriteString(strings.Repeat(" ", gap))
			}
			switch {
			case v >= rowTop:
				b.WriteString(barStyle.Render(strings.Repeat("█", barW)))
			case v > rowBottom:
				frac := (v - rowBottom) / (rowTop - rowBottom)
				idx := int(frac * 8)
				if idx < 1 {
					idx = 1
				}
				if idx > 8 {
					idx = 8
				}
				b.WriteString(barStyle.Render(strings.Repeat(string(blocks[idx]), barW)))
			default:
				b.WriteString(strings.Repeat(" ", barW))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, "£0")))
	b.WriteString(axisStyle.Render("└"))
	b.WriteString(axisStyle.Render(strings.Repeat("─", axisLen)))
	b.WriteString("\n")

	if len(labels) == n {
		buf := []byte(strings.Repeat(" ", axisLen))
		step := 1
		for step*(barW+gap) < 6 {
			step++
		}
		for i := 0; i < n; i += step {
			pos := i * (barW + gap)
			lbl := labels[i]
			if pos+len(lbl) > axisLen {
				break
			}
			copy(buf[pos:pos+len(lbl)], lbl)
		}
		b.WriteString(strings.Repeat(" ", yLabelW+1))
		b.WriteString(axisStyle.Render(strings.TrimRight(string(buf), " ")))
		b.WriteString("\n")
	}

	return b.String()
}

// tickStep picks a round tick interval targeting ~5 ticks.
func tickStep(maxVal float64) float64 {
	if maxVal <= 0 {
		return 1
	}
	rough := maxVal / 5
	base := math.Pow(10, math.Floor(math.Log10(rough)))
	frac := rough / base

	switch {
	case frac < 1.5:
		return base
	case frac < 3.5:
		return 2 * base
	default:
		return 5 * base
	}
}
