package tui

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/table"

	"github.com/digicarbon/digicarbon/internal/footprint"
	"github.com/digicarbon/digicarbon/internal/research"
)

const (
	statWidth  = 10
	countWidth = 26
)

// NewStatsTable builds a table of the daily-total statistics.
func NewStatsTable(s research.Summary, precision int) table.Model {
	columns := []table.Column{
		{Title: "Statistic", Width: statWidth},
		{Title: "kg/day", Width: kgColumnWidth},
		{Title: "kg/year", Width: kgColumnWidth},
	}
	stat := func(name string, v float64) table.Row {
		return table.Row{name, FormatKg(v, precision), FormatKg(v*footprint.DaysPerYear, precision)}
	}
	rows := []table.Row{
		stat("Mean", s.Daily.Mean),
		stat("Median", s.Daily.Median),
		stat("Min", s.Daily.Min),
		stat("Max", s.Daily.Max),
	}
	return staticTable(columns, rows)
}

// NewCategoryTable builds a table of mean kg and share per category.
func NewCategoryTable(s research.Summary, precision int) table.Model {
	columns := []table.Column{
		{Title: "Category", Width: categoryWidth},
		{Title: "Mean kg/day", Width: kgColumnWidth},
		{Title: "Share", Width: shareWidth},
	}
	rows := make([]table.Row, len(s.Categories))
	for i, c := range s.Categories {
		rows[i] = table.Row{c.Category, FormatKg(c.MeanKg, precision), fmt.Sprintf("%.1f%%", c.Percent)}
	}
	return staticTable(columns, rows)
}

// NewCountTable builds a two-column table from a label count map, sorted by
// label.
func NewCountTable(title string, counts map[string]int) table.Model {
	columns := []table.Column{
		{Title: title, Width: countWidth},
		{Title: "Count", Width: shareWidth},
	}
	keys := slices.Sorted(maps.Keys(counts))
	rows := make([]table.Row, len(keys))
	for i, k := range keys {
		rows[i] = table.Row{k, fmt.Sprintf("%d", counts[k])}
	}
	return staticTable(columns, rows)
}

// RenderSummary renders an aggregate summary.
func RenderSummary(s research.Summary, precision int) string {
	var sections []string
	sections = append(sections, TitleStyle.Render("Survey Summary"))

	counts := fmt.Sprintf("%s %s  %s %s  %s %s  %s %s",
		LabelStyle.Render("Responses:"), ValueStyle.Render(fmt.Sprint(s.Responses)),
		LabelStyle.Render("Included:"), ValueStyle.Render(fmt.Sprint(s.Included)),
		LabelStyle.Render("Skipped:"), ValueStyle.Render(fmt.Sprint(s.Skipped)),
		LabelStyle.Render("Adjusted:"), ValueStyle.Render(fmt.Sprint(s.Adjusted)))
	sections = append(sections, counts)

	if s.Included == 0 {
		sections = append(sections, MutedStyle.Italic(true).Render("No responses to summarise"))
		return strings.Join(sections, "\n\n")
	}

	sections = append(sections,
		NewStatsTable(s, precision).View(),
		NewCategoryTable(s, precision).View(),
	)
	if len(s.AwarenessLevels) > 0 {
		sections = append(sections, NewCountTable("Awareness level", s.AwarenessLevels).View())
	}
	if len(s.SelfEstimates) > 0 {
		sections = append(sections, NewCountTable("Self-estimate", s.SelfEstimates).View())
	}
	return strings.Join(sections, "\n\n")
}
