package awareness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digicarbon/digicarbon/internal/footprint"
)

func p(v int) *int { return &v }

func fullQuiz(v int) footprint.Quiz {
	return footprint.Quiz{
		DataUsageImpact:       p(v),
		DeviceLifespanImpact:  p(v),
		ChargingHabitsImpact:  p(v),
		StreamingGamingImpact: p(v),
		RenewableEnergyImpact: p(v),
		AIUsageImpact:         p(v),
	}
}

func TestThresholds_Score(t *testing.T) {
	streaming := Thresholds{Low: 0.15, Medium: 0.35}
	tests := []struct {
		kg   float64
		want int
	}{
		{0, ScoreNone},
		{0.01, ScoreLow},
		{0.1499, ScoreLow},
		{0.15, ScoreMedium},
		{0.3499, ScoreMedium},
		{0.35, ScoreHigh},
		{5, ScoreHigh},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, streaming.Score(tt.kg), "kg=%v", tt.kg)
	}
}

func TestCompare(t *testing.T) {
	assert.Equal(t, Accurate, Compare(6, 6))
	assert.Equal(t, Accurate, Compare(7, 6))
	assert.Equal(t, Accurate, Compare(5, 6))
	assert.Equal(t, Overestimated, Compare(9, 6))
	assert.Equal(t, Underestimated, Compare(1, 3))
}

func TestLevel(t *testing.T) {
	assert.Equal(t, LevelExcellent, Level(8))
	assert.Equal(t, LevelGood, Level(7.99))
	assert.Equal(t, LevelGood, Level(6))
	assert.Equal(t, LevelModerate, Level(4))
	assert.Equal(t, LevelNeedsImprovement, Level(3.9))
}

func TestCompareQuiz_Complete(t *testing.T) {
	// Laptop example: devices 0.602, charging 0.120, total 0.722.
	result := footprint.Result{Devices: 0.602, Charging: 0.120, Total: 0.722}

	report := CompareQuiz(fullQuiz(3), result)

	require.True(t, report.Complete)
	require.Len(t, report.Items, 6)
	assert.Equal(t, 18, report.TotalScore)
	assert.Equal(t, 60, report.MaxScore)
	assert.InDelta(t, 3.0, report.AverageScore, 1e-9)
	assert.Equal(t, LevelNeedsImprovement, report.Level)

	byKey := map[string]QuizItem{}
	for _, it := range report.Items {
		byKey[it.Key] = it
	}

	// No streaming or AI: actual score 1, prediction 3 is over by 2.
	assert.Equal(t, ScoreNone, byKey["quizDataUsageImpact"].Actual)
	assert.Equal(t, Overestimated, byKey["quizDataUsageImpact"].Comparison)
	assert.Equal(t, Overestimated, byKey["quizAiUsageImpact"].Comparison)

	assert.Equal(t, ScoreLow, byKey["quizDeviceLifespanImpact"].Actual)
	assert.True(t, byKey["quizDeviceLifespanImpact"].IsAccurate)
	assert.Equal(t, ScoreLow, byKey["quizChargingHabitsImpact"].Actual)
	assert.Equal(t, ScoreLow, byKey["quizRenewableEnergyImpact"].Actual)
	assert.InDelta(t, 0.722, byKey["quizRenewableEnergyImpact"].ActualKg, 1e-9)

	assert.Equal(t, 3, report.AccurateCount)
}

func TestCompareQuiz_Partial(t *testing.T) {
	q := footprint.Quiz{AIUsageImpact: p(9), DeviceLifespanImpact: p(7)}
	report := CompareQuiz(q, footprint.Result{AI: 0.25, Devices: 2, Total: 2.25})

	assert.False(t, report.Complete)
	assert.Empty(t, report.Level)
	assert.Equal(t, 2, report.Answered)
	assert.InDelta(t, 8.0, report.AverageScore, 1e-9)
	assert.Equal(t, "quizDeviceLifespanImpact", report.Items[0].Key, "items follow question order")
	assert.Equal(t, Underestimated, report.Items[0].Comparison)
	assert.Equal(t, -2, report.Items[0].Difference)
	assert.Equal(t, Accurate, report.Items[1].Comparison)
}

func TestCompareQuiz_Empty(t *testing.T) {
	report := CompareQuiz(footprint.Quiz{}, footprint.Result{})
	assert.Zero(t, report.Answered)
	assert.Zero(t, report.AverageScore)
	assert.False(t, report.Complete)
}

func TestCompareQuiz_HighAwareness(t *testing.T) {
	report := CompareQuiz(fullQuiz(9), footprint.Result{})
	assert.Equal(t, LevelExcellent, report.Level)
	assert.Zero(t, report.AccurateCount)
}
