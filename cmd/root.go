package cmd

import (
	"log/slog"
	"os"
	"time"

	"pensionproj/internal/config"
	"pensionproj/internal/projection"

	"github.com/spf13/cobra"
)

var (
	flagConfig  string
	flagOutDir  string
	flagTimeout time.Duration
	flagQuiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "pensionproj",
	Short: "Pension fund projection CLI",
	Long:  "Project a pension fund year by year, export the table as CSV and render the trajectory as a bar chart.",
	RunE:  runProjection,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", config.DefaultPath, "Projection config file")
	rootCmd.PersistentFlags().StringVarP(&flagOutDir, "out-dir", "o", ".", "Directory for CSV, chart and log output")
	rootCmd.PersistentFlags().DurationVar(&flagTimeout, "timeout", 5*time.Minute, "Wall-clock budget before the watchdog kills the run")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// loadProjectionConfig is the shared config loading path used by all commands.
func loadProjectionConfig(log *slog.Logger) (*projection.Config, error) {
	values, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	log.Info("config file is valid", "path", flagConfig)
	return projection.NewConfig(log, values)
}
