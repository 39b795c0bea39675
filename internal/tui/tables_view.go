package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"

	"github.com/digicarbon/digicarbon/internal/footprint"
)

const (
	lookupLabelWidth = 44
	lookupValueWidth = 10
	deviceValueWidth = 18
)

// NewLookupTable builds a table of a bucket table's labels and values.
func NewLookupTable(t footprint.Table) table.Model {
	columns := []table.Column{
		{Title: "Answer", Width: lookupLabelWidth},
		{Title: "Value", Width: lookupValueWidth},
	}
	rows := make([]table.Row, len(t.Buckets))
	for i, b := range t.Buckets {
		rows[i] = table.Row{b.Label, strconv.FormatFloat(b.Value, 'g', -1, 64)}
	}
	return staticTable(columns, rows)
}

// NewDeviceTable builds a table of the device catalog.
func NewDeviceTable() table.Model {
	columns := []table.Column{
		{Title: "Device", Width: lookupLabelWidth},
		{Title: "Manufacturing kg", Width: deviceValueWidth},
		{Title: "Watts", Width: lookupValueWidth},
	}
	rows := make([]table.Row, len(footprint.DeviceTypes))
	for i, d := range footprint.DeviceTypes {
		spec := footprint.LookupDevice(d)
		rows[i] = table.Row{
			d,
			strconv.FormatFloat(spec.ManufacturingKg, 'g', -1, 64),
			strconv.FormatFloat(spec.Watts, 'g', -1, 64),
		}
	}
	return staticTable(columns, rows)
}

// RenderTables renders the device catalog followed by every bucket table.
func RenderTables() string {
	sections := []string{
		HeaderStyle.Render("device catalog"),
		NewDeviceTable().View(),
	}
	for _, t := range footprint.Tables() {
		title := t.Name
		if t.Fallback != 0 {
			title += MutedStyle.Render(" (default " + strconv.FormatFloat(t.Fallback, 'g', -1, 64) + ")")
		}
		sections = append(sections, HeaderStyle.Render(title), NewLookupTable(t).View())
	}
	return strings.Join(sections, "\n\n")
}
