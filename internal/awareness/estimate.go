package awareness

import (
	"fmt"
	"math"

	"github.com/digicarbon/digicarbon/internal/footprint"
)

// Self-estimate outcomes.
const (
	LearningPhase           = "Learning Phase"
	AccurateUnderstanding   = "Accurate Understanding"
	BetterThanExpected      = "Better Than Expected"
	OptimizationOpportunity = "Optimization Opportunity"
)

// NotSure is the self-estimate answer that skips the comparison.
const NotSure = "Not sure"

// openRangeMaxKg caps the open-ended bucket and unrecognised answers.
const openRangeMaxKg = 10000

// EstimateRange is a self-estimate bucket in kg CO2 per year.
type EstimateRange struct {
	Label string
	MinKg float64
	MaxKg float64
}

// EstimateRanges lists the self-estimate answers in form order.
//
//nolint:gochecknoglobals // Read-only lookup table.
var EstimateRanges = []EstimateRange{
	{"Less than 100 kg", 0, 100},
	{"100-300 kg", 100, 300},
	{"300-500 kg", 300, 500},
	{"500-1000 kg", 500, 1000},
	{"More than 1000 kg", 1000, openRangeMaxKg},
	{NotSure, 0, openRangeMaxKg},
}

// LookupRange returns the range for label. Unknown labels cover every
// plausible value, like "Not sure".
func LookupRange(label string) EstimateRange {
	for _, r := range EstimateRanges {
		if r.Label == label {
			return r
		}
	}
	return EstimateRange{Label: label, MinKg: 0, MaxKg: openRangeMaxKg}
}

// Assessment compares a self-estimate with the calculated footprint.
type Assessment struct {
	Estimate   string  `json:"estimate"`
	ActualKg   float64 `json:"actual_annual_kg"`
	IsAccurate bool    `json:"is_accurate"`
	Outcome    string  `json:"outcome"`

	// PercentOff is how far ActualKg lies outside the chosen range,
	// relative to the nearest bound. Zero when inside.
	PercentOff float64 `json:"percent_off"`
	Message    string  `json:"message"`
}

// AssessSelfEstimate compares the respondent's annual estimate bucket with
// the annualized daily result. ok is false when no estimate was given.
func AssessSelfEstimate(estimate string, daily footprint.Result) (Assessment, bool) {
	if estimate == "" {
		return Assessment{}, false
	}

	actual := daily.Total * footprint.DaysPerYear
	r := LookupRange(estimate)

	a := Assessment{
		Estimate:   estimate,
		ActualKg:   actual,
		IsAccurate: actual >= r.MinKg && actual <= r.MaxKg,
	}

	switch {
	case estimate == NotSure:
		a.Outcome = LearningPhase
		a.Message = fmt.Sprintf("Your calculated footprint is %.2f kg CO2/year.", actual)
	case a.IsAccurate:
		a.Outcome = AccurateUnderstanding
		a.Message = fmt.Sprintf("Your estimate of %s matches your calculated footprint of %.2f kg CO2/year.", estimate, actual)
	case actual < r.MinKg:
		a.Outcome = BetterThanExpected
		a.PercentOff = math.Round((r.MinKg - actual) / r.MinKg * 100)
		a.Message = fmt.Sprintf("Your footprint (%.2f kg CO2/year) is %.0f%% lower than your estimate of %s.", actual, a.PercentOff, estimate)
	default:
		a.Outcome = OptimizationOpportunity
		a.PercentOff = math.Round((actual - r.MaxKg) / r.MaxKg * 100)
		a.Message = fmt.Sprintf("Your footprint (%.2f kg CO2/year) is %.0f%% higher than your estimate of %s.", actual, a.PercentOff, estimate)
	}
	return a, true
}
