// Package greenops translates footprint figures into relatable equivalencies.
//
// A respondent's annual digital footprint (kg CO2e) is hard to picture, so it
// is restated as miles driven, smartphones charged, tree seedlings needed to
// absorb it, and days of household electricity, using EPA factors.
package greenops

import "fmt"

// EquivalencyType identifies one equivalency category.
type EquivalencyType int

const (
	// EquivalencyMilesDriven is miles driven in an average passenger vehicle.
	EquivalencyMilesDriven EquivalencyType = iota

	// EquivalencySmartphonesCharged is full smartphone charges.
	EquivalencySmartphonesCharged

	// EquivalencyTreeSeedlings is seedlings grown for 10 years to absorb the CO2.
	EquivalencyTreeSeedlings

	// EquivalencyHomeDays is days of average home electricity use.
	EquivalencyHomeDays
)

// String returns the category name.
func (e EquivalencyType) String() string {
	switch e {
	case EquivalencyMilesDriven:
		return "MilesDriven"
	case EquivalencySmartphonesCharged:
		return "SmartphonesCharged"
	case EquivalencyTreeSeedlings:
		return "TreeSeedlings"
	case EquivalencyHomeDays:
		return "HomeDays"
	default:
		return fmt.Sprintf("EquivalencyType(%d)", e)
	}
}

// CarbonInput is an amount of CO2e in a given unit.
type CarbonInput struct {
	// Value is the emission amount.
	Value float64 `json:"value"`

	// Unit is one of g, kg, t, lb or their CO2e suffixed forms.
	Unit string `json:"unit"`
}

// EquivalencyResult is one calculated equivalency.
type EquivalencyResult struct {
	Type           EquivalencyType `json:"type"`
	Value          float64         `json:"value"`
	FormattedValue string          `json:"formatted_value"`
	Label          string          `json:"label"`
}

// EquivalencyOutput holds every equivalency for one input.
type EquivalencyOutput struct {
	// InputKg is the input normalized to kilograms.
	InputKg float64 `json:"input_kg"`

	// Results are ordered miles, phones, seedlings, home days.
	Results []EquivalencyResult `json:"results"`

	// DisplayText is a sentence for terminal output, for example
	// "Equivalent to driving ~1,375 miles or charging ~32,117 smartphones".
	DisplayText string `json:"display_text"`

	// CompactText is a one-line summary, for example "(≈ 1,375 mi, 32,117 phones)".
	CompactText string `json:"compact_text"`

	// IsEmpty is true when the input was below MinEquivalencyThresholdKg or invalid.
	IsEmpty bool `json:"is_empty"`
}

// Find returns the result of the given type, if present.
func (o EquivalencyOutput) Find(t EquivalencyType) (EquivalencyResult, bool) {
	for _, r := range o.Results {
		if r.Type == t {
			return r, true
		}
	}
	return EquivalencyResult{}, false
}
