package projection

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func validValues() map[string]string {
	return map[string]string{
		"name":                        "smith",
		"age":                         "55",
		"maximum_age":                 "95",
		"pension_fund_value":          "750,000",
		"annual_income":               "30,000",
		"pct_growth_above_inflation":  "5",
		"pct_charges_above_inflation": "1",
	}
}

func mustConfig(t *testing.T, values map[string]string) *Config {
	t.Helper()
	cfg, err := NewConfig(discardLogger(), values)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	return cfg
}

func TestNewConfig_StripsCommas(t *testing.T) {
	values := validValues()
	values["pension_fund_value"] = "1,000,000"

	cfg := mustConfig(t, values)
	if want := decimal.NewFromInt(1000000); !cfg.PensionFundValue.Equal(want) {
		t.Fatalf("PensionFundValue = %s, want 1000000", cfg.PensionFundValue)
	}
}

func TestNewConfig_PercentagesBecomeRates(t *testing.T) {
	cfg := mustConfig(t, validValues())

	if want, _ := decimal.NewFromString("0.05"); !cfg.PctGrowthAboveInflation.Equal(want) {
		t.Fatalf("PctGrowthAboveInflation = %s, want 0.05", cfg.PctGrowthAboveInflation)
	}
	if want, _ := decimal.NewFromString("0.01"); !cfg.PctChargesAboveInflation.Equal(want) {
		t.Fatalf("PctChargesAboveInflation = %s, want 0.01", cfg.PctChargesAboveInflation)
	}
}

func TestNewConfig_FractionalPercentage(t *testing.T) {
	values := validValues()
	values["pct_growth_above_inflation"] = "2.5"

	cfg := mustConfig(t, values)
	if want, _ := decimal.NewFromString("0.025"); !cfg.PctGrowthAboveInflation.Equal(want) {
		t.Fatalf("PctGrowthAboveInflation = %s, want 0.025", cfg.PctGrowthAboveInflation)
	}
}

func TestNewConfig_MissingKeyNamesIt(t *testing.T) {
	values := validValues()
	delete(values, "annual_income")

	_, err := NewConfig(discardLogger(), values)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("NewConfig error = %v, want ValidationError", err)
	}
	if verr.Field != "annual_income" {
		t.Fatalf("ValidationError.Field = %q, want annual_income", verr.Field)
	}
}

func TestNewConfig_UnknownKeyRejected(t *testing.T) {
	values := validValues()
	values["favourite_colour"] = "teal"

	_, err := NewConfig(discardLogger(), values)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("NewConfig error = %v, want ValidationError", err)
	}
	if verr.Field != "favourite_colour" {
		t.Fatalf("ValidationError.Field = %q, want favourite_colour", verr.Field)
	}
}

func TestNewConfig_NonNumericFieldRejected(t *testing.T) {
	values := validValues()
	values["pension_fund_value"] = "lots"

	_, err := NewConfig(discardLogger(), values)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("NewConfig error = %v, want ValidationError", err)
	}
	if verr.Field != "pension_fund_value" {
		t.Fatalf("ValidationError.Field = %q, want pension_fund_value", verr.Field)
	}
}

func TestNewConfig_NameStaysFreeText(t *testing.T) {
	values := validValues()
	values["name"] = "smith2026"

	cfg := mustConfig(t, values)
	if cfg.Name != "smith2026" {
		t.Fatalf("Name = %q, want smith2026", cfg.Name)
	}
}

func TestNewConfig_MaximumAgeBelowAge(t *testing.T) {
	values := validValues()
	values["maximum_age"] = "50"

	_, err := NewConfig(discardLogger(), values)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("NewConfig error = %v, want ValidationError", err)
	}
	if verr.Field != "maximum_age" {
		t.Fatalf("ValidationError.Field = %q, want maximum_age", verr.Field)
	}
}

func TestNewConfig_NegativeFundRejected(t *testing.T) {
	values := validValues()
	values["pension_fund_value"] = "-100"

	if _, err := NewConfig(discardLogger(), values); err == nil {
		t.Fatal("NewConfig accepted a negative fund value")
	}
}
