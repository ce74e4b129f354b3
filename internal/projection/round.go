package projection

import (
	"log/slog"
	"math"

	"github.com/shopspring/decimal"
)

// GuardPlaces is the precision carried through intermediate arithmetic.
// Results are only cut down to 2 places at the export boundary.
const GuardPlaces = 20

// ExportPlaces is the precision of the export and display views.
const ExportPlaces = 2

// RoundHalfUp quantizes d to the given number of fractional digits,
// rounding ties away from zero.
func RoundHalfUp(d decimal.Decimal, places int32) decimal.Decimal {
	return d.Round(places)
}

// RoundFloatHalfUp converts v to a decimal quantized to places. NaN and
// infinities have no decimal form; the condition is logged and ok is false,
// leaving the caller to carry the original value forward unchanged.
func RoundFloatHalfUp(log *slog.Logger, v float64, places int32) (d decimal.Decimal, ok bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		log.Error("cannot convert value to decimal", "value", v)
		return decimal.Decimal{}, false
	}
	log.Debug("converting value to decimal", "value", v, "places", places)
	return decimal.NewFromFloat(v).Round(places), true
}
