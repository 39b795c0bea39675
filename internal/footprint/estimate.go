package footprint

import "strings"

// Estimate computes the daily footprint breakdown for a survey response.
//
// It never fails: skipped or unrecognised answers fall back to the default
// bucket of their table. Numeric device fields are expected to be sanitized by
// the caller; the only guard applied here is the lifetime substitution for a
// zero or negative AgeYears. Estimate holds no state and is safe for
// concurrent use.
func Estimate(a Answers) Result {
	devices := deviceDaily(a.Devices)
	streaming := streamingDaily(a)
	ai := aiDaily(a)
	charging := chargingDaily(devices, a)

	return Result{
		Total:     devices + streaming + ai + charging,
		Devices:   devices,
		Streaming: streaming,
		AI:        ai,
		Charging:  charging,
	}
}

// deviceDaily amortizes manufacturing over the device lifetime and adds grid
// electricity for usage, summed annually then converted to a daily figure.
func deviceDaily(devices []Device) float64 {
	var annual float64
	for _, d := range devices {
		if d.Count <= 0 {
			continue
		}
		spec := LookupDevice(d.Type)
		count := float64(d.Count)

		manufacturing := spec.ManufacturingKg / Lifetime(d.AgeYears) * count

		annualKWh := spec.Watts * d.HoursPerDay * DaysPerYear / 1000
		usage := annualKWh * GridFactorKgPerKWh * count

		annual += manufacturing + usage
	}
	return annual / DaysPerYear
}

// Lifetime returns the amortization period for a device age, substituting
// DefaultLifetimeYears when the age is zero, negative or unset.
func Lifetime(ageYears float64) float64 {
	if ageYears > 0 {
		return ageYears
	}
	return DefaultLifetimeYears
}

func streamingDaily(a Answers) float64 {
	weekly := StreamingHours.Lookup(a.StreamingAcademicHours) +
		StreamingHours.Lookup(a.StreamingEntertainmentHours)
	streaming := weekly * StreamingKgPerHour / DaysPerWeek

	cloud := CloudHours.Lookup(a.CloudServicesUsageHours) * CloudKgPerHour / DaysPerWeek

	return streaming + cloud
}

func aiDaily(a Answers) float64 {
	interactions := AIInteractions.Lookup(a.AIInteractionsPerDay)
	session := AISessionLength.Lookup(a.TypicalAISessionLength)
	return interactions * AIKgPerInteraction * session * AITypeMultiplier(a.TypeOfAIUsage)
}

// AITypeMultiplier returns AIImageMultiplier when the usage label contains
// "Image" (case-sensitive), otherwise 1.
func AITypeMultiplier(usage string) float64 {
	if strings.Contains(usage, "Image") {
		return AIImageMultiplier
	}
	return 1
}

func chargingDaily(devicesDaily float64, a Answers) float64 {
	base := devicesDaily * ChargingShare
	return base *
		ChargingHabits.Lookup(a.PrimaryChargingHabits) *
		PowerSources.Lookup(a.PrimaryPowerSource) *
		RenewableUsage.Lookup(a.RenewableEnergyUsage) *
		EfficientAppliances.Lookup(a.EnergyEfficientAppliances)
}
