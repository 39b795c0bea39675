// Package awareness compares what respondents believe about their digital
// footprint with what the estimator calculates.
//
// CompareQuiz scores the six 1-10 impact predictions against the matching
// footprint categories. AssessSelfEstimate checks the respondent's guess of
// their annual footprint against the calculated annual total.
package awareness

import (
	"math"

	"github.com/digicarbon/digicarbon/internal/footprint"
)

// Comparison labels.
const (
	Accurate       = "Accurate"
	Overestimated  = "Overestimated"
	Underestimated = "Underestimated"
)

// Awareness levels, from the mean predicted score.
const (
	LevelExcellent        = "Excellent"
	LevelGood             = "Good"
	LevelModerate         = "Moderate"
	LevelNeedsImprovement = "Needs Improvement"
)

// Impact scores an actual category value maps to.
const (
	ScoreNone   = 1
	ScoreLow    = 3
	ScoreMedium = 6
	ScoreHigh   = 9
	MaxScore    = 10
)

// Thresholds are the daily kg CO2 bounds between low, medium and high impact.
type Thresholds struct {
	Low    float64
	Medium float64
}

// Score maps kg to an impact score: 1 for zero, 3 below Low, 6 below
// Medium, 9 otherwise.
func (t Thresholds) Score(kg float64) int {
	switch {
	case kg == 0:
		return ScoreNone
	case kg < t.Low:
		return ScoreLow
	case kg < t.Medium:
		return ScoreMedium
	default:
		return ScoreHigh
	}
}

// Question is one quiz item and the category it is scored against.
type Question struct {
	Key        string
	Label      string
	Category   string
	Thresholds Thresholds
	actual     func(footprint.Result) float64
	predicted  func(footprint.Quiz) *int
}

// Questions lists the quiz in form order.
//
//nolint:gochecknoglobals // Read-only quiz definition.
var Questions = []Question{
	{
		Key: "quizDataUsageImpact", Label: "Data Usage Impact", Category: "streaming",
		Thresholds: Thresholds{Low: 0.15, Medium: 0.35},
		actual:     func(r footprint.Result) float64 { return r.Streaming },
		predicted:  func(q footprint.Quiz) *int { return q.DataUsageImpact },
	},
	{
		Key: "quizDeviceLifespanImpact", Label: "Device Lifespan Impact", Category: "devices",
		Thresholds: Thresholds{Low: 0.8, Medium: 1.5},
		actual:     func(r footprint.Result) float64 { return r.Devices },
		predicted:  func(q footprint.Quiz) *int { return q.DeviceLifespanImpact },
	},
	{
		Key: "quizChargingHabitsImpact", Label: "Charging Habits Impact", Category: "charging",
		Thresholds: Thresholds{Low: 0.15, Medium: 0.3},
		actual:     func(r footprint.Result) float64 { return r.Charging },
		predicted:  func(q footprint.Quiz) *int { return q.ChargingHabitsImpact },
	},
	{
		Key: "quizStreamingGamingImpact", Label: "Streaming/Gaming Impact", Category: "streaming",
		Thresholds: Thresholds{Low: 0.15, Medium: 0.35},
		actual:     func(r footprint.Result) float64 { return r.Streaming },
		predicted:  func(q footprint.Quiz) *int { return q.StreamingGamingImpact },
	},
	{
		Key: "quizRenewableEnergyImpact", Label: "Renewable Energy Impact", Category: "total",
		Thresholds: Thresholds{Low: 2, Medium: 3.5},
		actual:     func(r footprint.Result) float64 { return r.Total },
		predicted:  func(q footprint.Quiz) *int { return q.RenewableEnergyImpact },
	},
	{
		Key: "quizAiUsageImpact", Label: "AI Usage Impact", Category: "ai",
		Thresholds: Thresholds{Low: 0.1, Medium: 0.2},
		actual:     func(r footprint.Result) float64 { return r.AI },
		predicted:  func(q footprint.Quiz) *int { return q.AIUsageImpact },
	},
}

// QuizItem is the comparison for one answered question.
type QuizItem struct {
	Key        string  `json:"key"`
	Label      string  `json:"label"`
	Category   string  `json:"category"`
	Predicted  int     `json:"predicted"`
	Actual     int     `json:"actual"`
	ActualKg   float64 `json:"actual_kg"`
	Comparison string  `json:"comparison"`
	Difference int     `json:"difference"`
	IsAccurate bool    `json:"is_accurate"`
}

// QuizReport summarises a respondent's quiz.
type QuizReport struct {
	Items         []QuizItem `json:"items"`
	Answered      int        `json:"answered"`
	TotalScore    int        `json:"total_score"`
	MaxScore      int        `json:"max_score"`
	AverageScore  float64    `json:"average_score"`
	Level         string     `json:"level,omitempty"`
	AccurateCount int        `json:"accurate_count"`

	// Complete is true only when every question was answered. Level is
	// set only for complete reports.
	Complete bool `json:"complete"`
}

// CompareQuiz scores every answered prediction against result. Unanswered
// questions are skipped.
func CompareQuiz(q footprint.Quiz, result footprint.Result) QuizReport {
	var report QuizReport
	for _, question := range Questions {
		p := question.predicted(q)
		if p == nil {
			continue
		}

		kg := question.actual(result)
		actual := question.Thresholds.Score(kg)
		diff := *p - actual

		item := QuizItem{
			Key:        question.Key,
			Label:      question.Label,
			Category:   question.Category,
			Predicted:  *p,
			Actual:     actual,
			ActualKg:   kg,
			Comparison: Compare(*p, actual),
			Difference: diff,
		}
		item.IsAccurate = item.Comparison == Accurate
		if item.IsAccurate {
			report.AccurateCount++
		}

		report.Items = append(report.Items, item)
		report.TotalScore += *p
	}

	report.Answered = len(report.Items)
	report.MaxScore = report.Answered * MaxScore
	if report.Answered > 0 {
		report.AverageScore = float64(report.TotalScore) / float64(report.Answered)
	}
	report.Complete = report.Answered == len(Questions)
	if report.Complete {
		report.Level = Level(report.AverageScore)
	}
	return report
}

// Compare labels a prediction against the actual score. Within one point
// counts as accurate.
func Compare(predicted, actual int) string {
	diff := predicted - actual
	switch {
	case math.Abs(float64(diff)) <= 1:
		return Accurate
	case diff > 1:
		return Overestimated
	default:
		return Underestimated
	}
}

// Level maps an average predicted score to an awareness level.
func Level(avg float64) string {
	switch {
	case avg >= 8:
		return LevelExcellent
	case avg >= 6:
		return LevelGood
	case avg >= 4:
		return LevelModerate
	default:
		return LevelNeedsImprovement
	}
}
