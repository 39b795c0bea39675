package greenops

import (
	"fmt"
	"math"

	"github.com/rs/zerolog/log"

	"github.com/digicarbon/digicarbon/internal/footprint"
)

// equivalency describes how to derive and label one category.
type equivalency struct {
	kind   EquivalencyType
	factor float64
	label  string
}

//nolint:gochecknoglobals // Read-only lookup table.
var equivalencies = []equivalency{
	{EquivalencyMilesDriven, EPAMilesDrivenFactor, "miles driven"},
	{EquivalencySmartphonesCharged, EPASmartphoneChargeFactor, "smartphones charged"},
	{EquivalencyTreeSeedlings, EPATreeSeedlingFactor, "tree seedlings grown for 10 years"},
	{EquivalencyHomeDays, EPAHomeDayFactor, "days of home electricity"},
}

// Calculate normalizes input to kilograms and derives every equivalency.
//
// Inputs below MinEquivalencyThresholdKg produce an empty output without an
// error. Normalization failures and non-finite results produce an empty
// output together with the corresponding sentinel error.
func Calculate(input CarbonInput) (EquivalencyOutput, error) {
	kg, err := NormalizeToKg(input.Value, input.Unit)
	if err != nil {
		return EquivalencyOutput{IsEmpty: true}, err
	}

	if kg < MinEquivalencyThresholdKg {
		return EquivalencyOutput{InputKg: kg, IsEmpty: true}, nil
	}

	results := make([]EquivalencyResult, 0, len(equivalencies))
	for _, eq := range equivalencies {
		v := kg / eq.factor
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return EquivalencyOutput{IsEmpty: true}, ErrCalculationOverflow
		}
		results = append(results, EquivalencyResult{
			Type:           eq.kind,
			Value:          v,
			FormattedValue: formatEquivalencyValue(v),
			Label:          eq.label,
		})
	}

	miles := results[0].FormattedValue
	phones := results[1].FormattedValue

	return EquivalencyOutput{
		InputKg:     kg,
		Results:     results,
		DisplayText: fmt.Sprintf("Equivalent to driving ~%s miles or charging ~%s smartphones", miles, phones),
		CompactText: fmt.Sprintf("(≈ %s mi, %s phones)", miles, phones),
	}, nil
}

// CalculateAnnual restates a daily footprint result as a yearly amount and
// derives its equivalencies. Failures are logged and yield an empty output.
func CalculateAnnual(daily footprint.Result) EquivalencyOutput {
	annual := footprint.Annualize(daily)
	out, err := Calculate(CarbonInput{Value: annual.Total, Unit: "kg"})
	if err != nil {
		log.Warn().Err(err).Float64("annual_kg", annual.Total).Msg("equivalency calculation failed")
		return EquivalencyOutput{IsEmpty: true}
	}
	return out
}

// formatEquivalencyValue abbreviates large values and rounds the rest.
func formatEquivalencyValue(v float64) string {
	if v >= LargeNumberThreshold {
		return FormatLarge(v)
	}
	if v < 10 {
		return FormatFloat(v, 1)
	}
	return FormatNumber(int64(math.Round(v)))
}
