// Package footprint estimates the daily digital carbon footprint of a survey
// respondent.
//
// The estimator is a pure function over an Answers record. Every categorical
// field is a bucket label from a fixed enumeration (see tables.go); missing or
// unrecognised labels fall back to a documented default instead of failing,
// so an estimate can always be produced from an in-progress form.
//
// All Result values are in kilograms of CO2 per day.
package footprint

// Device is one line of the respondent's device inventory.
type Device struct {
	// Type is a device catalog label such as "Laptop" or "Router/Modem".
	Type string `json:"type" yaml:"type"`

	// Count is the number of units owned.
	Count int `json:"count" yaml:"count"`

	// HoursPerDay is the average daily usage of a single unit.
	HoursPerDay float64 `json:"hoursPerDay" yaml:"hoursPerDay"`

	// AgeYears is the expected device lifetime used for amortization.
	// Zero means unknown and is replaced by DefaultLifetimeYears.
	AgeYears float64 `json:"ageYears" yaml:"ageYears"`
}

// Quiz holds the respondent's 1-10 impact predictions. Nil means unanswered.
type Quiz struct {
	DataUsageImpact       *int `json:"quizDataUsageImpact,omitempty" yaml:"quizDataUsageImpact,omitempty"`
	DeviceLifespanImpact  *int `json:"quizDeviceLifespanImpact,omitempty" yaml:"quizDeviceLifespanImpact,omitempty"`
	ChargingHabitsImpact  *int `json:"quizChargingHabitsImpact,omitempty" yaml:"quizChargingHabitsImpact,omitempty"`
	StreamingGamingImpact *int `json:"quizStreamingGamingImpact,omitempty" yaml:"quizStreamingGamingImpact,omitempty"`
	RenewableEnergyImpact *int `json:"quizRenewableEnergyImpact,omitempty" yaml:"quizRenewableEnergyImpact,omitempty"`
	AIUsageImpact         *int `json:"quizAiUsageImpact,omitempty" yaml:"quizAiUsageImpact,omitempty"`
}

// Answers is a possibly incomplete survey response. Empty strings and nil
// pointers mean the respondent skipped the question.
type Answers struct {
	// Demographics. Carried through to records, never read by Estimate.
	Age                  *int   `json:"age,omitempty" yaml:"age,omitempty"`
	Gender               string `json:"gender,omitempty" yaml:"gender,omitempty"`
	Occupation           string `json:"occupation,omitempty" yaml:"occupation,omitempty"`
	HomeSchooling        string `json:"homeSchooling,omitempty" yaml:"homeSchooling,omitempty"`
	HomeCity             string `json:"homeCity,omitempty" yaml:"homeCity,omitempty"`
	HomeState            string `json:"homeState,omitempty" yaml:"homeState,omitempty"`
	CityTier             string `json:"cityTier,omitempty" yaml:"cityTier,omitempty"`
	CurrentAccommodation string `json:"currentAccommodation,omitempty" yaml:"currentAccommodation,omitempty"`
	FamilyIncomeRange    string `json:"familyIncomeRange,omitempty" yaml:"familyIncomeRange,omitempty"`

	// Internet and devices.
	PrimaryInternetConnection string   `json:"primaryInternetConnection,omitempty" yaml:"primaryInternetConnection,omitempty"`
	AvgDailyInternetHours     float64  `json:"avgDailyInternetHours,omitempty" yaml:"avgDailyInternetHours,omitempty"`
	Devices                   []Device `json:"devices,omitempty" yaml:"devices,omitempty"`

	// Charging habits and power sources.
	PrimaryChargingHabits     string `json:"primaryChargingHabits,omitempty" yaml:"primaryChargingHabits,omitempty"`
	PrimaryPowerSource        string `json:"primaryPowerSource,omitempty" yaml:"primaryPowerSource,omitempty"`
	RenewableEnergyUsage      string `json:"renewableEnergyUsage,omitempty" yaml:"renewableEnergyUsage,omitempty"`
	HasSolarPanels            string `json:"hasSolarPanels,omitempty" yaml:"hasSolarPanels,omitempty"`
	EnergyEfficientAppliances string `json:"energyEfficientAppliances,omitempty" yaml:"energyEfficientAppliances,omitempty"`

	// AI, cloud and streaming.
	AIInteractionsPerDay        string `json:"aiInteractionsPerDay,omitempty" yaml:"aiInteractionsPerDay,omitempty"`
	TypeOfAIUsage               string `json:"typeOfAiUsage,omitempty" yaml:"typeOfAiUsage,omitempty"`
	TypicalAISessionLength      string `json:"typicalAiSessionLength,omitempty" yaml:"typicalAiSessionLength,omitempty"`
	CloudServicesUsageHours     string `json:"cloudServicesUsageHours,omitempty" yaml:"cloudServicesUsageHours,omitempty"`
	UploadsPerMonthGB           string `json:"uploadsPerMonthGb,omitempty" yaml:"uploadsPerMonthGb,omitempty"`
	StreamingAcademicHours      string `json:"streamingAcademicHours,omitempty" yaml:"streamingAcademicHours,omitempty"`
	StreamingEntertainmentHours string `json:"streamingEntertainmentHours,omitempty" yaml:"streamingEntertainmentHours,omitempty"`

	// Awareness.
	Quiz                       Quiz   `json:"quiz,omitempty" yaml:"quiz,omitempty"`
	RenewableElectricityAccess string `json:"renewableElectricityAccess,omitempty" yaml:"renewableElectricityAccess,omitempty"`
	EstimatedAnnualFootprint   string `json:"estimatedAnnualFootprint,omitempty" yaml:"estimatedAnnualFootprint,omitempty"`

	ResearchConsent bool `json:"researchConsent,omitempty" yaml:"researchConsent,omitempty"`
}

// Result is the footprint breakdown in kg CO2 per day.
// Total is always Devices + Streaming + AI + Charging.
type Result struct {
	Total     float64 `json:"total" yaml:"total"`
	Devices   float64 `json:"devices" yaml:"devices"`
	Streaming float64 `json:"streaming" yaml:"streaming"`
	AI        float64 `json:"ai" yaml:"ai"`
	Charging  float64 `json:"charging" yaml:"charging"`
}

// Projection extends a daily total to a year and prices it.
type Projection struct {
	DailyKg       float64 `json:"daily_kg"`
	AnnualKg      float64 `json:"annual_kg"`
	PricePerTonne float64 `json:"price_per_tonne"`
	CostEstimate  float64 `json:"cost_estimate"`
}
