package footprint

// KgPerTonne converts kilograms to metric tonnes for pricing.
const KgPerTonne = 1000.0

// Annualize scales every field of a daily result to a yearly figure.
func Annualize(r Result) Result {
	return Result{
		Total:     r.Total * DaysPerYear,
		Devices:   r.Devices * DaysPerYear,
		Streaming: r.Streaming * DaysPerYear,
		AI:        r.AI * DaysPerYear,
		Charging:  r.Charging * DaysPerYear,
	}
}

// Project extends the daily total to a year and prices it at pricePerTonne
// currency units per tonne of CO2. A negative price is treated as zero.
func Project(r Result, pricePerTonne float64) Projection {
	if pricePerTonne < 0 {
		pricePerTonne = 0
	}
	annual := r.Total * DaysPerYear
	return Projection{
		DailyKg:       r.Total,
		AnnualKg:      annual,
		PricePerTonne: pricePerTonne,
		CostEstimate:  annual * pricePerTonne / KgPerTonne,
	}
}
