// Package export persists a computed projection: the CSV table of the export
// view and the PNG bar chart of the display view.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"pensionproj/internal/projection"
)

// Header is the fixed CSV column layout.
var Header = []string{"Age", "pension_fund_value", "projected_growth", "charges", "ending_fund_value"}

// WriteCSV writes the export view to path, overwriting any existing file.
// Values are plain fixed 2-decimal numbers with no thousands separators.
func WriteCSV(path string, rows []projection.Row) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating table file: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(Header); err != nil {
		f.Close()
		return fmt.Errorf("writing table header: %w", err)
	}
	for _, r := range rows {
		record := []string{
			strconv.Itoa(r.Age),
			r.StartingFundValue.StringFixed(2),
			r.ProjectedGrowth.StringFixed(2),
			r.Charges.StringFixed(2),
			r.EndingFundValue.StringFixed(2),
		}
		if err := w.Write(record); err != nil {
			f.Close()
			return fmt.Errorf("writing table row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flushing table: %w", err)
	}
	return f.Close()
}
