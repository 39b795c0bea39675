package research

import (
	"slices"

	"github.com/digicarbon/digicarbon/internal/footprint"
)

// Category names used in summaries.
const (
	CategoryDevices   = "devices"
	CategoryStreaming = "streaming"
	CategoryAI        = "ai"
	CategoryCharging  = "charging"
)

// Stats describes a sample of daily totals in kg CO2.
type Stats struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// CategoryShare is one category's mean daily kg and its share of the mean
// total, in percent.
type CategoryShare struct {
	Category string  `json:"category"`
	MeanKg   float64 `json:"mean_kg"`
	Percent  float64 `json:"percent"`
}

// Summary aggregates a set of estimates.
type Summary struct {
	Responses int `json:"responses"`
	Included  int `json:"included"`
	Skipped   int `json:"skipped"`
	Adjusted  int `json:"adjusted"`

	Daily      Stats           `json:"daily"`
	AnnualMean float64         `json:"annual_mean_kg"`
	Categories []CategoryShare `json:"categories"`

	// AwarenessLevels counts completed quizzes per awareness level.
	AwarenessLevels map[string]int `json:"awareness_levels"`

	// SelfEstimates counts self-estimate outcomes.
	SelfEstimates map[string]int `json:"self_estimates"`
}

// Summarize reduces estimates to descriptive statistics. Skipped estimates
// are counted but otherwise ignored.
func Summarize(estimates []Estimate) Summary {
	s := Summary{
		Responses:       len(estimates),
		AwarenessLevels: map[string]int{},
		SelfEstimates:   map[string]int{},
	}

	totals := make([]float64, 0, len(estimates))
	var sum footprint.Result
	for _, e := range estimates {
		if e.Skipped {
			s.Skipped++
			continue
		}
		r := e.Record.Result
		totals = append(totals, r.Total)
		sum.Total += r.Total
		sum.Devices += r.Devices
		sum.Streaming += r.Streaming
		sum.AI += r.AI
		sum.Charging += r.Charging

		if len(e.Warnings) > 0 {
			s.Adjusted++
		}
		if e.Quiz.Complete {
			s.AwarenessLevels[e.Quiz.Level]++
		}
		if e.SelfEstimate != nil {
			s.SelfEstimates[e.SelfEstimate.Outcome]++
		}
	}

	s.Included = len(totals)
	if s.Included == 0 {
		return s
	}

	n := float64(s.Included)
	s.Daily = describe(totals)
	s.AnnualMean = s.Daily.Mean * footprint.DaysPerYear

	means := []CategoryShare{
		{Category: CategoryDevices, MeanKg: sum.Devices / n},
		{Category: CategoryStreaming, MeanKg: sum.Streaming / n},
		{Category: CategoryAI, MeanKg: sum.AI / n},
		{Category: CategoryCharging, MeanKg: sum.Charging / n},
	}
	for i := range means {
		if s.Daily.Mean > 0 {
			means[i].Percent = means[i].MeanKg / s.Daily.Mean * percentMultiplier
		}
	}
	s.Categories = means
	return s
}

func describe(values []float64) Stats {
	sorted := slices.Clone(values)
	slices.Sort(sorted)

	var total float64
	for _, v := range sorted {
		total += v
	}

	n := len(sorted)
	median := sorted[n/2]
	if n%2 == 0 {
		median = (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return Stats{
		Mean:   total / float64(n),
		Median: median,
		Min:    sorted[0],
		Max:    sorted[n-1],
	}
}
