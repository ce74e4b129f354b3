package export

import (
	"fmt"
	"os"
	"strconv"

	"pensionproj/internal/cli"
	"pensionproj/internal/projection"

	"github.com/wcharczuk/go-chart/v2"
)

const (
	chartWidth  = 1200
	chartHeight = 800
)

// WritePNG renders the display view as a bar chart image, one bar per age,
// and writes it to path, overwriting any existing file. Callers pass the
// zero-clamped display series so no bar dips below the axis.
func WritePNG(path string, rows []projection.Row) error {
	if len(rows) == 0 {
		return fmt.Errorf("rendering chart: empty series")
	}

	bars := make([]chart.Value, len(rows))
	for i, r := range rows {
		bars[i] = chart.Value{
			Label: strconv.Itoa(r.Age),
			Value: r.EndingFundValue.InexactFloat64(),
		}
	}

	graph := chart.BarChart{
		Title:      "Fund value by age",
		Width:      chartWidth,
		Height:     chartHeight,
		BarWidth:   barWidth(len(bars)),
		BarSpacing: 4,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		XAxis: chart.Style{},
		YAxis: chart.YAxis{
			ValueFormatter: poundFormatter,
		},
		Bars: bars,
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating chart file: %w", err)
	}
	if err := graph.Render(chart.PNG, f); err != nil {
		f.Close()
		return fmt.Errorf("rendering chart: %w", err)
	}
	return f.Close()
}

// poundFormatter labels y-axis ticks as currency with thousands separators.
func poundFormatter(v interface{}) string {
	f, ok := v.(float64)
	if !ok {
		return ""
	}
	return cli.FormatGBPFloat(f)
}

// barWidth sizes bars so the full age range fits the canvas.
func barWidth(n int) int {
	w := (chartWidth - 100) / n
	if w < 4 {
		w = 4
	}
	if w > 60 {
		w = 60
	}
	return w
}
