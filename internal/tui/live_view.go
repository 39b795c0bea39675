package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Default dimensions for the live model.
const (
	liveDefaultWidth  = 80
	liveDefaultHeight = 40

	// liveChromeLines is the height taken by everything but the field list.
	liveChromeLines = 20
	minVisibleRows  = 5
	fieldLabelWidth = 34
	fieldValueWidth = 30
)

// View renders the current view.
func (m *LiveModel) View() string {
	if m.state == LiveStateQuitting {
		return ""
	}

	sections := []string{
		TitleStyle.Render("Live Digital Carbon Footprint"),
		m.renderBreakdown(),
		RenderProjection(m.projection, m.opts.Currency, m.opts.Precision),
	}
	if m.equivalencies.CompactText != "" {
		sections = append(sections, InfoStyle.Render("Per year "+m.equivalencies.CompactText))
	}
	sections = append(sections, m.renderFields(), RenderLiveHelp())

	out := strings.Join(sections, "\n\n")
	if m.width > 0 {
		return lipgloss.NewStyle().MaxWidth(m.width).Render(out)
	}
	return out
}

// renderBreakdown shows each category with its change from the baseline.
func (m *LiveModel) renderBreakdown() string {
	base := breakdownRows(m.baseline)
	var sb strings.Builder
	for i, row := range breakdownRows(m.result) {
		label := LabelStyle.Render(fmt.Sprintf("%-*s", categoryWidth, row.label))
		style := ValueStyle
		if row.label == LabelTotal {
			style = FocusedStyle
		}
		value := style.Render(fmt.Sprintf("%*s kg/day", kgColumnWidth, FormatKg(row.kg, m.opts.Precision)))
		sb.WriteString(label)
		sb.WriteString(value)
		sb.WriteString("  ")
		sb.WriteString(RenderKgDelta(row.kg-base[i].kg, m.opts.Precision))
		if i < len(base)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// renderFields renders the window of fields around the focused one.
func (m *LiveModel) renderFields() string {
	visible := max(m.height-liveChromeLines, minVisibleRows)
	start := 0
	if m.focused >= visible {
		start = m.focused - visible + 1
	}
	end := min(start+visible, len(m.fields))

	var sb strings.Builder
	sb.WriteString(HeaderStyle.Render("Answers"))
	sb.WriteString(MutedStyle.Render(fmt.Sprintf("  (%d/%d)", m.focused+1, len(m.fields))))
	for i := start; i < end; i++ {
		f := m.fields[i]
		sb.WriteString("\n")
		cursor := "  "
		labelStyle := LabelStyle
		if i == m.focused {
			cursor = IconArrowRight + " "
			labelStyle = FocusedStyle
		}
		sb.WriteString(cursor)
		sb.WriteString(labelStyle.Render(fmt.Sprintf("%-*s", fieldLabelWidth, truncate(f.Label, fieldLabelWidth))))
		sb.WriteString(ValueStyle.Render(truncate(m.FieldValue(f), fieldValueWidth)))
	}
	return sb.String()
}

// RenderLiveHelp renders the keyboard shortcut help text.
func RenderLiveHelp() string {
	shortcuts := []string{
		"↑/↓: Navigate",
		"←/→: Change",
		"r: Reset",
		"s: Save & quit",
		"q: Quit",
	}
	return MutedStyle.Render(strings.Join(shortcuts, " | "))
}
