package cmd

import (
	"fmt"
	"strconv"

	"pensionproj/internal/cli"
	"pensionproj/internal/logging"
	"pensionproj/internal/projection"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the projection as a terminal table and bar chart",
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(_ *cobra.Command, _ []string) error {
	log := logging.Console()

	cfg, err := loadProjectionConfig(log)
	if err != nil {
		return err
	}

	series := projection.Compute(log, cfg)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("FUND VALUE BY AGE  %s", cfg.Name)))
	fmt.Println()

	export := series.ExportView()
	rows := make([][]string, 0, len(export))
	for _, r := range export {
		rows = append(rows, []string{
			strconv.Itoa(r.Age),
			cli.FormatGBP(r.StartingFundValue),
			cli.FormatGBP(r.ProjectedGrowth),
			cli.FormatGBP(r.Charges),
			cli.FormatGBP(r.EndingFundValue),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Age", "Fund at start", "Growth", "Charges", "Fund at end"},
		Rows:    rows,
	}))

	display := series.DisplayView()
	values := make([]float64, len(display))
	labels := make([]string, len(display))
	for i, r := range display {
		values[i] = r.EndingFundValue.InexactFloat64()
		labels[i] = strconv.Itoa(r.Age)
	}

	fmt.Println()
	fmt.Print(cli.BarChart(values, labels, 100, 16))
	fmt.Println()

	return nil
}
