package cmd

import (
	"errors"
	"fmt"

	"pensionproj/internal/config"
	"pensionproj/internal/logging"
	"pensionproj/internal/projection"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a projection config file with a guided form",
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(_ *cobra.Command, _ []string) error {
	answers := map[string]string{}

	fields := []struct {
		key         string
		title       string
		description string
	}{
		{"name", "Client name", "Used to name the CSV and chart output files"},
		{"age", "Current age", "Whole years, e.g. 55"},
		{"maximum_age", "Maximum age", "Last age to project to, e.g. 95"},
		{"pension_fund_value", "Pension fund value", "Commas are fine, e.g. 750,000"},
		{"annual_income", "Annual income withdrawal", "Amount taken out each year"},
		{"pct_growth_above_inflation", "Growth above inflation (%)", "Whole-number percentage, e.g. 5"},
		{"pct_charges_above_inflation", "Charges above inflation (%)", "Whole-number percentage, e.g. 1"},
	}

	inputs := make([]huh.Field, 0, len(fields))
	values := make([]string, len(fields))
	for i, f := range fields {
		inputs = append(inputs, huh.NewInput().
			Title(f.title).
			Description(f.description).
			Value(&values[i]))
	}

	form := huh.NewForm(huh.NewGroup(inputs...))
	if err := form.Run(); err != nil {
		return fmt.Errorf("running form: %w", err)
	}

	for i, f := range fields {
		answers[f.key] = values[i]
	}

	// Validate before writing so a bad answer never lands on disk.
	if _, err := projection.NewConfig(logging.Console(), answers); err != nil {
		var verr *projection.ValidationError
		if errors.As(err, &verr) {
			return fmt.Errorf("invalid answer for %s: %s", verr.Field, verr.Reason)
		}
		return err
	}

	if err := config.Save(flagConfig, answers); err != nil {
		return err
	}

	fmt.Printf("  Saved %s\n", flagConfig)
	fmt.Println("  Run `pensionproj` to compute the projection.")
	return nil
}
