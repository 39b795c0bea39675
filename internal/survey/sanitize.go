package survey

import (
	"fmt"
	"math"

	"github.com/digicarbon/digicarbon/internal/footprint"
)

// Input bounds applied by Sanitize.
const (
	MaxHoursPerDay = 24.0
	MaxAgeYears    = 50.0
	MinAge         = 10
	MaxAge         = 100
	MinQuizScore   = 1
	MaxQuizScore   = 10
)

// Warning records one value Sanitize changed.
type Warning struct {
	Field    string  `json:"field"`
	Original float64 `json:"original"`
	Clamped  float64 `json:"clamped"`
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %g adjusted to %g", w.Field, w.Original, w.Clamped)
}

// Sanitize clamps numeric answers into plausible ranges in place and
// reports each change. Non-finite numbers become 0. The estimator itself
// trusts its numeric inputs, so callers sanitize before estimating.
func Sanitize(a *footprint.Answers) []Warning {
	if a == nil {
		return nil
	}
	var warnings []Warning

	if a.Age != nil {
		clamped := min(max(*a.Age, MinAge), MaxAge)
		if clamped != *a.Age {
			warnings = append(warnings, Warning{Field: "age", Original: float64(*a.Age), Clamped: float64(clamped)})
			a.Age = &clamped
		}
	}

	if v, changed := clamp(a.AvgDailyInternetHours, MaxHoursPerDay); changed {
		warnings = append(warnings, Warning{Field: "avgDailyInternetHours", Original: a.AvgDailyInternetHours, Clamped: v})
		a.AvgDailyInternetHours = v
	}

	q := &a.Quiz
	for _, p := range []struct {
		field string
		value **int
	}{
		{"quiz.quizDataUsageImpact", &q.DataUsageImpact},
		{"quiz.quizDeviceLifespanImpact", &q.DeviceLifespanImpact},
		{"quiz.quizChargingHabitsImpact", &q.ChargingHabitsImpact},
		{"quiz.quizStreamingGamingImpact", &q.StreamingGamingImpact},
		{"quiz.quizRenewableEnergyImpact", &q.RenewableEnergyImpact},
		{"quiz.quizAiUsageImpact", &q.AIUsageImpact},
	} {
		if *p.value == nil {
			continue
		}
		orig := **p.value
		clamped := min(max(orig, MinQuizScore), MaxQuizScore)
		if clamped != orig {
			warnings = append(warnings, Warning{Field: p.field, Original: float64(orig), Clamped: float64(clamped)})
			*p.value = &clamped
		}
	}

	for i := range a.Devices {
		d := &a.Devices[i]
		prefix := fmt.Sprintf("devices[%d].", i)

		if d.Count < 0 {
			warnings = append(warnings, Warning{Field: prefix + "count", Original: float64(d.Count)})
			d.Count = 0
		}
		if v, changed := clamp(d.HoursPerDay, MaxHoursPerDay); changed {
			warnings = append(warnings, Warning{Field: prefix + "hoursPerDay", Original: d.HoursPerDay, Clamped: v})
			d.HoursPerDay = v
		}
		if v, changed := clamp(d.AgeYears, MaxAgeYears); changed {
			warnings = append(warnings, Warning{Field: prefix + "ageYears", Original: d.AgeYears, Clamped: v})
			d.AgeYears = v
		}
	}

	return warnings
}

// clamp limits v to [0, hi], mapping NaN and infinities to 0.
func clamp(v, hi float64) (float64, bool) {
	switch {
	case math.IsNaN(v), math.IsInf(v, 0):
		return 0, true
	case v < 0:
		return 0, true
	case v > hi:
		return hi, true
	default:
		return v, false
	}
}
