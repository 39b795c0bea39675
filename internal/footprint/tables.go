package footprint

// Emission factors. Every constant used by Estimate lives here or in one of
// the lookup tables below.
const (
	// GridFactorKgPerKWh is the regional grid intensity (India average).
	GridFactorKgPerKWh = 0.82

	// StreamingKgPerHour is the footprint of one hour of HD streaming.
	StreamingKgPerHour = 0.055

	// CloudKgPerHour is the footprint of one hour of cloud service use.
	CloudKgPerHour = 0.02

	// AIKgPerInteraction is the footprint of one baseline text interaction.
	AIKgPerInteraction = 0.002

	// AIImageMultiplier applies when the usage label mentions "Image".
	AIImageMultiplier = 5.0

	// ChargingShare is the share of daily device footprint attributed to charging.
	ChargingShare = 0.2

	// DefaultLifetimeYears replaces a zero or negative device age.
	DefaultLifetimeYears = 3.0

	// DefaultManufacturingKg is used for device types missing from the catalog.
	DefaultManufacturingKg = 50.0

	// DefaultWatts is used for device types missing from the catalog.
	DefaultWatts = 20.0

	// DaysPerYear converts annual figures to daily ones.
	DaysPerYear = 365.0

	// DaysPerWeek converts weekly hours to daily footprint.
	DaysPerWeek = 7.0

	// NeutralFactor is the multiplier applied for unset charging-stage answers.
	NeutralFactor = 1.0
)

// Device catalog labels.
const (
	DeviceSmartphone      = "Smartphone"
	DeviceLaptop          = "Laptop"
	DeviceTablet          = "Tablet"
	DeviceDesktop         = "Desktop"
	DeviceSmartTV         = "Smart TV"
	DeviceGamingConsole   = "Gaming Console"
	DeviceStreamingDevice = "Streaming Device (Roku, Chromecast, etc.)"
	DeviceSmartHome       = "Smart Home Devices (Alexa, etc.)"
	DeviceRouterModem     = "Router/Modem"
	DeviceOther           = "Other devices"
)

// DeviceSpec is the manufacturing footprint and power draw of a device type.
type DeviceSpec struct {
	ManufacturingKg float64 `json:"manufacturing_kg"`
	Watts           float64 `json:"watts"`
}

// Bucket pairs a label with its numeric value, in presentation order.
type Bucket struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Table is an ordered bucket enumeration with a fallback value.
type Table struct {
	Name     string   `json:"name"`
	Buckets  []Bucket `json:"buckets"`
	Fallback float64  `json:"fallback"`
}

// Lookup returns the value for label, or the table fallback when the label is
// empty or unknown.
func (t Table) Lookup(label string) float64 {
	for _, b := range t.Buckets {
		if b.Label == label {
			return b.Value
		}
	}
	return t.Fallback
}

// Labels returns the bucket labels in order.
func (t Table) Labels() []string {
	labels := make([]string, len(t.Buckets))
	for i, b := range t.Buckets {
		labels[i] = b.Label
	}
	return labels
}

// DeviceCatalog maps device type labels to their emission profile.
//
//nolint:gochecknoglobals // Read-only lookup table.
var DeviceCatalog = map[string]DeviceSpec{
	DeviceSmartphone:      {ManufacturingKg: 50, Watts: 5},
	DeviceLaptop:          {ManufacturingKg: 300, Watts: 50},
	DeviceTablet:          {ManufacturingKg: 100, Watts: 10},
	DeviceDesktop:         {ManufacturingKg: 500, Watts: 200},
	DeviceSmartTV:         {ManufacturingKg: 400, Watts: 100},
	DeviceGamingConsole:   {ManufacturingKg: 200, Watts: 150},
	DeviceStreamingDevice: {ManufacturingKg: 30, Watts: 5},
	DeviceSmartHome:       {ManufacturingKg: 40, Watts: 3},
	DeviceRouterModem:     {ManufacturingKg: 60, Watts: 10},
	DeviceOther:           {ManufacturingKg: DefaultManufacturingKg, Watts: DefaultWatts},
}

// DeviceTypes lists the catalog labels in presentation order.
//
//nolint:gochecknoglobals // Read-only lookup table.
var DeviceTypes = []string{
	DeviceSmartphone, DeviceLaptop, DeviceTablet, DeviceDesktop, DeviceSmartTV,
	DeviceGamingConsole, DeviceStreamingDevice, DeviceSmartHome, DeviceRouterModem, DeviceOther,
}

// AIUsageTypes lists the form's AI usage labels. Only labels containing
// "Image" change the estimate.
//
//nolint:gochecknoglobals // Read-only lookup table.
var AIUsageTypes = []string{
	"Text conversations",
	"Image generation",
	"Mixed (Text + Images)",
	"Video generation",
	"Code generation",
}

// LookupDevice returns the catalog entry for a device type, falling back to
// the default manufacturing footprint and wattage for unknown types.
func LookupDevice(deviceType string) DeviceSpec {
	if spec, ok := DeviceCatalog[deviceType]; ok {
		return spec
	}
	return DeviceSpec{ManufacturingKg: DefaultManufacturingKg, Watts: DefaultWatts}
}

// Bucket tables. Fallbacks equal the value of the documented default bucket.
//
//nolint:gochecknoglobals // Read-only lookup tables.
var (
	// StreamingHours maps weekly streaming buckets to representative hours.
	StreamingHours = Table{
		Name: "streaming hours per week",
		Buckets: []Bucket{
			{"None", 0},
			{"Less than 5 hours", 2.5},
			{"5-10 hours", 7.5},
			{"10-20 hours", 15},
			{"20-40 hours", 30},
			{"More than 40 hours", 50},
		},
		Fallback: 0,
	}

	// CloudHours maps weekly cloud-usage buckets to representative hours.
	CloudHours = Table{
		Name: "cloud hours per week",
		Buckets: []Bucket{
			{"None", 0},
			{"Less than 5", 2.5},
			{"5-10", 7.5},
			{"10-20", 15},
			{"20-40", 30},
			{"More than 40", 50},
		},
		Fallback: 0,
	}

	// AIInteractions maps daily interaction buckets to a representative count.
	AIInteractions = Table{
		Name: "AI interactions per day",
		Buckets: []Bucket{
			{"None", 0},
			{"1-5", 3},
			{"5-10", 7.5},
			{"10-20", 15},
			{"20-50", 35},
			{"More than 50", 75},
		},
		Fallback: 0,
	}

	// AISessionLength maps session length to a severity multiplier.
	// The default bucket is "5-15 minutes".
	AISessionLength = Table{
		Name: "AI session length multiplier",
		Buckets: []Bucket{
			{"Less than 5 minutes", 0.5},
			{"5-15 minutes", 1},
			{"15-30 minutes", 1.5},
			{"30-60 minutes", 2},
			{"More than 1 hour", 3},
		},
		Fallback: 1,
	}

	// ChargingHabits maps charging behaviour to a multiplier.
	ChargingHabits = Table{
		Name: "charging habit multiplier",
		Buckets: []Bucket{
			{"Use power-saving mode", 0.8},
			{"Charge when needed (20-80%)", 0.9},
			{"Charge overnight", 1.2},
			{"Keep plugged in while working", 1.4},
		},
		Fallback: NeutralFactor,
	}

	// PowerSources maps the primary power source to a multiplier.
	// The default bucket is "Grid electricity".
	PowerSources = Table{
		Name: "power source multiplier",
		Buckets: []Bucket{
			{"Solar power", 0.1},
			{"Mixed (Grid + Solar)", 0.6},
			{"Grid electricity", 1.0},
			{"Inverter/UPS (Battery backup)", 1.2},
			{"Generator", 1.8},
		},
		Fallback: NeutralFactor,
	}

	// RenewableUsage maps the renewable share to a reduction factor.
	RenewableUsage = Table{
		Name: "renewable usage reduction",
		Buckets: []Bucket{
			{"None", 1.0},
			{"Less than 25%", 0.9},
			{"25-50%", 0.7},
			{"50-75%", 0.5},
			{"More than 75%", 0.25},
		},
		Fallback: NeutralFactor,
	}

	// EfficientAppliances maps appliance efficiency coverage to a reduction factor.
	EfficientAppliances = Table{
		Name: "efficient appliance reduction",
		Buckets: []Bucket{
			{"None", 1.0},
			{"Some appliances", 0.97},
			{"Most appliances", 0.93},
			{"All appliances", 0.90},
		},
		Fallback: NeutralFactor,
	}
)

// Tables returns every bucket table in a stable order for display.
func Tables() []Table {
	return []Table{
		StreamingHours, CloudHours, AIInteractions, AISessionLength,
		ChargingHabits, PowerSources, RenewableUsage, EfficientAppliances,
	}
}
