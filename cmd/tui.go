package cmd

import (
	"fmt"

	"pensionproj/internal/logging"
	"pensionproj/internal/projection"
	"pensionproj/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse the projection in an interactive viewer",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	log := logging.Console()

	cfg, err := loadProjectionConfig(log)
	if err != nil {
		return err
	}

	series := projection.Compute(log, cfg)

	p := tea.NewProgram(tui.New(cfg, series), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running viewer: %w", err)
	}
	return nil
}
