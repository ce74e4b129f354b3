package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"pensionproj/internal/export"
	"pensionproj/internal/logging"
	"pensionproj/internal/projection"
	"pensionproj/internal/watchdog"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Compute the projection and write the CSV table and PNG chart",
	RunE:  runProjection,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runProjection(_ *cobra.Command, _ []string) error {
	log, closeLogs, err := logging.New(flagOutDir)
	if err != nil {
		return err
	}
	defer closeLogs()

	guard := watchdog.Start(flagTimeout, log, os.Exit)
	defer guard.Stop()

	cfg, err := loadProjectionConfig(log)
	if err != nil {
		log.Error("aborting before computation", "err", err)
		return err
	}

	series := projection.Compute(log, cfg)

	csvPath := filepath.Join(flagOutDir, cfg.Name+"_values.csv")
	if err := export.WriteCSV(csvPath, series.ExportView()); err != nil {
		log.Error("table export failed", "err", err)
		return err
	}
	log.Debug("csv written", "path", csvPath)

	chartPath := filepath.Join(flagOutDir, cfg.Name+"_chart.png")
	if err := export.WritePNG(chartPath, series.DisplayView()); err != nil {
		log.Error("chart render failed", "err", err)
		return err
	}
	log.Debug("chart written", "path", chartPath)

	log.Info("projection complete",
		"name", cfg.Name,
		"rows", series.Len(),
		"table", csvPath,
		"chart", chartPath,
	)
	if !flagQuiet {
		fmt.Printf("  Wrote %s and %s (%d rows)\n", csvPath, chartPath, series.Len())
	}

	return nil
}
