// Package projection implements the year-by-year pension fund projection:
// the typed configuration model, the decimal rounding rules, and the engine
// that computes the full series in a single forward pass.
package projection

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// RequiredKeys are the keys the Values section of the config file must carry.
var RequiredKeys = []string{
	"name",
	"age",
	"maximum_age",
	"pension_fund_value",
	"annual_income",
	"pct_growth_above_inflation",
	"pct_charges_above_inflation",
}

// ValidationError reports a configuration key that is missing, unknown, or
// holds a value that cannot be interpreted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config value %q: %s", e.Field, e.Reason)
}

// Config holds the validated, typed projection parameters. It is immutable
// after construction.
type Config struct {
	Name                     string
	Age                      int
	MaximumAge               int
	PensionFundValue         decimal.Decimal
	AnnualIncome             decimal.Decimal
	PctGrowthAboveInflation  decimal.Decimal
	PctChargesAboveInflation decimal.Decimal
}

// NewConfig builds a Config from the raw Values mapping. Thousands-separator
// commas are stripped from every value before interpretation. Percentage
// fields are entered as whole-number percentages and divided by 100 here.
//
// Every required key must be present and every present key must be required;
// any other shape fails with a ValidationError naming the offending key. The
// name field is the only one allowed to stay free text.
func NewConfig(log *slog.Logger, values map[string]string) (*Config, error) {
	for _, key := range RequiredKeys {
		if _, ok := values[key]; !ok {
			return nil, &ValidationError{Field: key, Reason: "missing from Values"}
		}
	}
	for key := range values {
		if !isRequiredKey(key) {
			return nil, &ValidationError{Field: key, Reason: "unknown key"}
		}
	}

	clean := func(key string) string {
		return strings.ReplaceAll(values[key], ",", "")
	}

	age, err := parseIntField("age", clean("age"))
	if err != nil {
		return nil, err
	}
	maximumAge, err := parseIntField("maximum_age", clean("maximum_age"))
	if err != nil {
		return nil, err
	}
	fundValue, err := parseDecimalField("pension_fund_value", clean("pension_fund_value"))
	if err != nil {
		return nil, err
	}
	income, err := parseDecimalField("annual_income", clean("annual_income"))
	if err != nil {
		return nil, err
	}
	pctGrowth, err := parseDecimalField("pct_growth_above_inflation", clean("pct_growth_above_inflation"))
	if err != nil {
		return nil, err
	}
	pctCharges, err := parseDecimalField("pct_charges_above_inflation", clean("pct_charges_above_inflation"))
	if err != nil {
		return nil, err
	}

	if maximumAge < age {
		return nil, &ValidationError{
			Field:  "maximum_age",
			Reason: fmt.Sprintf("must be >= age (%d < %d)", maximumAge, age),
		}
	}
	if fundValue.IsNegative() {
		return nil, &ValidationError{Field: "pension_fund_value", Reason: "must not be negative"}
	}
	if income.IsNegative() {
		return nil, &ValidationError{Field: "annual_income", Reason: "must not be negative"}
	}

	cfg := &Config{
		Name:             clean("name"),
		Age:              age,
		MaximumAge:       maximumAge,
		PensionFundValue: fundValue,
		AnnualIncome:     income,
		// Whole-number percentages become fractional rates. Shift is exact,
		// no division precision comes into play.
		PctGrowthAboveInflation:  pctGrowth.Shift(-2),
		PctChargesAboveInflation: pctCharges.Shift(-2),
	}

	log.Debug("projection config built",
		"name", cfg.Name,
		"age", cfg.Age,
		"maximum_age", cfg.MaximumAge,
		"pension_fund_value", cfg.PensionFundValue,
		"annual_income", cfg.AnnualIncome,
	)

	return cfg, nil
}

func isRequiredKey(key string) bool {
	for _, k := range RequiredKeys {
		if k == key {
			return true
		}
	}
	return false
}

func parseIntField(field, raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &ValidationError{Field: field, Reason: fmt.Sprintf("%q is not an integer", raw)}
	}
	return n, nil
}

func parseDecimalField(field, raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, &ValidationError{Field: field, Reason: fmt.Sprintf("%q is not a number", raw)}
	}
	return RoundHalfUp(d, GuardPlaces), nil
}
