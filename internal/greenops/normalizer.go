package greenops

import (
	"math"
	"strings"
)

// unitFactors maps lower-cased unit names to their kilogram factor.
//
//nolint:gochecknoglobals // Read-only lookup table.
var unitFactors = map[string]float64{
	"g":      GramsToKg,
	"gco2e":  GramsToKg,
	"kg":     KgToKg,
	"kgco2e": KgToKg,
	"t":      TonsToKg,
	"tco2e":  TonsToKg,
	"lb":     PoundsToKg,
	"lbco2e": PoundsToKg,
}

// NormalizeToKg converts value in unit to kilograms. Unit matching is
// case-insensitive and an empty unit means kilograms, the unit every
// footprint Result is expressed in.
//
// It returns ErrCalculationOverflow for Inf/NaN input or an overflowing
// product, ErrNegativeValue for negative input and ErrInvalidUnit for an
// unknown unit.
func NormalizeToKg(value float64, unit string) (float64, error) {
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, ErrCalculationOverflow
	}
	if value < 0 {
		return 0, ErrNegativeValue
	}

	factor, ok := unitFactor(unit)
	if !ok {
		return 0, ErrInvalidUnit
	}

	kg := value * factor
	if math.IsInf(kg, 0) {
		return 0, ErrCalculationOverflow
	}
	return kg, nil
}

// IsRecognizedUnit reports whether unit can be passed to NormalizeToKg.
func IsRecognizedUnit(unit string) bool {
	_, ok := unitFactor(unit)
	return ok
}

func unitFactor(unit string) (float64, bool) {
	u := strings.ToLower(strings.TrimSpace(unit))
	if u == "" {
		return KgToKg, true
	}
	f, ok := unitFactors[u]
	return f, ok
}
