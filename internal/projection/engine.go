package projection

import (
	"log/slog"

	"github.com/shopspring/decimal"
)

// Row is one projected year of the fund.
type Row struct {
	Age               int
	StartingFundValue decimal.Decimal
	ProjectedGrowth   decimal.Decimal
	Charges           decimal.Decimal
	EndingFundValue   decimal.Decimal
}

// Series is the full ordered projection, one row per age in
// [Age, MaximumAge]. It is built once and never updated.
type Series struct {
	rows []Row
}

// Compute runs the projection recurrence over every age in the configured
// range. Each row starts from the previous row's UNCLAMPED ending value; a
// fund that goes negative keeps compounding negative, exactly as computed.
// Zero-clamping only ever happens in DisplayView.
func Compute(log *slog.Logger, cfg *Config) Series {
	rows := make([]Row, cfg.MaximumAge-cfg.Age+1)

	start := RoundHalfUp(cfg.PensionFundValue, GuardPlaces)
	for i := range rows {
		growth := RoundHalfUp(start.Mul(cfg.PctGrowthAboveInflation), GuardPlaces)
		charges := RoundHalfUp(start.Mul(cfg.PctChargesAboveInflation), GuardPlaces)
		end := start.Add(growth).Sub(cfg.AnnualIncome).Sub(charges)

		rows[i] = Row{
			Age:               cfg.Age + i,
			StartingFundValue: start,
			ProjectedGrowth:   growth,
			Charges:           charges,
			EndingFundValue:   end,
		}
		start = end
	}

	log.Debug("projection computed", "name", cfg.Name, "rows", len(rows))
	return Series{rows: rows}
}

// Len returns the number of projected years.
func (s Series) Len() int { return len(s.rows) }

// Rows returns the raw series at full internal precision.
func (s Series) Rows() []Row { return s.rows }

// ExportView returns the series with every monetary column quantized to
// 2 fractional digits, half-up. This is what lands in the CSV.
func (s Series) ExportView() []Row {
	out := make([]Row, len(s.rows))
	for i, r := range s.rows {
		out[i] = Row{
			Age:               r.Age,
			StartingFundValue: RoundHalfUp(r.StartingFundValue, ExportPlaces),
			ProjectedGrowth:   RoundHalfUp(r.ProjectedGrowth, ExportPlaces),
			Charges:           RoundHalfUp(r.Charges, ExportPlaces),
			EndingFundValue:   RoundHalfUp(r.EndingFundValue, ExportPlaces),
		}
	}
	return out
}

// DisplayView returns the export view with negative ending values replaced
// by zero. Chart-only: the recurrence has already completed by the time this
// copy is taken, so the clamp never feeds back.
func (s Series) DisplayView() []Row {
	out := s.ExportView()
	for i := range out {
		if out[i].EndingFundValue.IsNegative() {
			out[i].EndingFundValue = decimal.Zero
		}
	}
	return out
}
