package footprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeviceCatalog(t *testing.T) {
	tests := []struct {
		deviceType      string
		manufacturingKg float64
		watts           float64
	}{
		{DeviceSmartphone, 50, 5},
		{DeviceLaptop, 300, 50},
		{DeviceTablet, 100, 10},
		{DeviceDesktop, 500, 200},
		{DeviceSmartTV, 400, 100},
		{DeviceGamingConsole, 200, 150},
		{DeviceStreamingDevice, 30, 5},
		{DeviceSmartHome, 40, 3},
		{DeviceRouterModem, 60, 10},
		{DeviceOther, 50, 20},
		{"Hover board", DefaultManufacturingKg, DefaultWatts},
		{"", DefaultManufacturingKg, DefaultWatts},
	}

	for _, tt := range tests {
		t.Run(tt.deviceType, func(t *testing.T) {
			spec := LookupDevice(tt.deviceType)
			assert.InDelta(t, tt.manufacturingKg, spec.ManufacturingKg, 0)
			assert.InDelta(t, tt.watts, spec.Watts, 0)
		})
	}

	assert.Len(t, DeviceTypes, len(DeviceCatalog))
	for _, dt := range DeviceTypes {
		_, ok := DeviceCatalog[dt]
		assert.True(t, ok, "device type %q missing from catalog", dt)
	}
}

func TestTableLookup(t *testing.T) {
	tests := []struct {
		table Table
		label string
		want  float64
	}{
		{StreamingHours, "None", 0},
		{StreamingHours, "Less than 5 hours", 2.5},
		{StreamingHours, "5-10 hours", 7.5},
		{StreamingHours, "10-20 hours", 15},
		{StreamingHours, "20-40 hours", 30},
		{StreamingHours, "More than 40 hours", 50},
		{StreamingHours, "", 0},
		{CloudHours, "Less than 5", 2.5},
		{CloudHours, "More than 40", 50},
		{CloudHours, "More than 40 hours", 0},
		{AIInteractions, "1-5", 3},
		{AIInteractions, "5-10", 7.5},
		{AIInteractions, "20-50", 35},
		{AIInteractions, "More than 50", 75},
		{AISessionLength, "Less than 5 minutes", 0.5},
		{AISessionLength, "30-60 minutes", 2},
		{AISessionLength, "More than 1 hour", 3},
		{AISessionLength, "", 1},
		{ChargingHabits, "Use power-saving mode", 0.8},
		{ChargingHabits, "Keep plugged in while working", 1.4},
		{ChargingHabits, "", 1},
		{PowerSources, "Solar power", 0.1},
		{PowerSources, "Generator", 1.8},
		{PowerSources, "", 1},
		{RenewableUsage, "None", 1},
		{RenewableUsage, "More than 75%", 0.25},
		{EfficientAppliances, "All appliances", 0.9},
		{EfficientAppliances, "unknown", 1},
	}

	for _, tt := range tests {
		t.Run(tt.table.Name+"/"+tt.label, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.table.Lookup(tt.label), 0)
		})
	}
}

func TestTables_Ranges(t *testing.T) {
	for _, table := range Tables() {
		t.Run(table.Name, func(t *testing.T) {
			require.NotEmpty(t, table.Buckets)
			assert.Len(t, table.Labels(), len(table.Buckets))

			seen := make(map[string]bool)
			for _, b := range table.Buckets {
				assert.False(t, seen[b.Label], "duplicate label %q", b.Label)
				seen[b.Label] = true
				assert.GreaterOrEqual(t, b.Value, 0.0)
			}
		})
	}

	// Reduction factors never increase the footprint.
	for _, b := range RenewableUsage.Buckets {
		assert.LessOrEqual(t, b.Value, 1.0)
		assert.GreaterOrEqual(t, b.Value, 0.25)
	}
	for _, b := range EfficientAppliances.Buckets {
		assert.LessOrEqual(t, b.Value, 1.0)
		assert.GreaterOrEqual(t, b.Value, 0.90)
	}
}

func TestTables_FallbackMatchesDefaultBucket(t *testing.T) {
	defaults := map[string]string{
		StreamingHours.Name:      "None",
		CloudHours.Name:          "None",
		AIInteractions.Name:      "None",
		AISessionLength.Name:     "5-15 minutes",
		PowerSources.Name:        "Grid electricity",
		RenewableUsage.Name:      "None",
		EfficientAppliances.Name: "None",
	}

	for _, table := range Tables() {
		label, ok := defaults[table.Name]
		if !ok {
			continue
		}
		assert.InDelta(t, table.Lookup(label), table.Fallback, 0, table.Name)
	}
}
