package awareness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digicarbon/digicarbon/internal/footprint"
)

// daily returns a result whose annual total is annualKg.
func daily(annualKg float64) footprint.Result {
	d := annualKg / footprint.DaysPerYear
	return footprint.Result{Total: d, Devices: d}
}

func TestAssessSelfEstimate(t *testing.T) {
	tests := []struct {
		name        string
		estimate    string
		annual      float64
		wantOutcome string
		wantPercent float64
		wantOK      bool
	}{
		{"inside range", "100-300 kg", 263.5, AccurateUnderstanding, 0, true},
		{"upper part of range", "300-500 kg", 450, AccurateUnderstanding, 0, true},
		{"below range", "500-1000 kg", 250, BetterThanExpected, 50, true},
		{"above range", "Less than 100 kg", 265, OptimizationOpportunity, 165, true},
		{"open top", "More than 1000 kg", 20000, OptimizationOpportunity, 100, true},
		{"not sure", NotSure, 263.5, LearningPhase, 0, true},
		{"unknown label", "a lot", 263.5, AccurateUnderstanding, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, ok := AssessSelfEstimate(tt.estimate, daily(tt.annual))
			require.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantOutcome, a.Outcome)
			assert.InDelta(t, tt.wantPercent, a.PercentOff, 1e-9)
			assert.InDelta(t, tt.annual, a.ActualKg, 1e-6)
			assert.NotEmpty(t, a.Message)
		})
	}
}

func TestAssessSelfEstimate_NoEstimate(t *testing.T) {
	_, ok := AssessSelfEstimate("", daily(100))
	assert.False(t, ok)
}

func TestAssessSelfEstimate_NotSureIsAccurate(t *testing.T) {
	a, ok := AssessSelfEstimate(NotSure, daily(5))
	require.True(t, ok)
	assert.True(t, a.IsAccurate)
	assert.Contains(t, a.Message, "5.00 kg CO2/year")
}

func TestLookupRange(t *testing.T) {
	r := LookupRange("300-500 kg")
	assert.InDelta(t, 300.0, r.MinKg, 1e-9)
	assert.InDelta(t, 500.0, r.MaxKg, 1e-9)

	r = LookupRange("??")
	assert.Zero(t, r.MinKg)
	assert.InDelta(t, 10000.0, r.MaxKg, 1e-9)
}
