package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/digicarbon/digicarbon/internal/awareness"
	"github.com/digicarbon/digicarbon/internal/footprint"
	"github.com/digicarbon/digicarbon/internal/greenops"
	"github.com/digicarbon/digicarbon/internal/survey"
)

// Layout constants.
const (
	categoryWidth   = 12
	kgColumnWidth   = 12
	shareWidth      = 8
	percentScale    = 100
	minTruncateLen  = 3
	tableHeaderRows = 2
)

// Category labels in display order.
const (
	LabelDevices   = "Devices"
	LabelStreaming = "Streaming"
	LabelAI        = "AI"
	LabelCharging  = "Charging"
	LabelTotal     = "Total"
)

// ReportView is everything shown for a single estimate.
type ReportView struct {
	Result        footprint.Result
	Projection    footprint.Projection
	Currency      string
	Precision     int
	Equivalencies greenops.EquivalencyOutput
	Quiz          awareness.QuizReport
	SelfEstimate  *awareness.Assessment
	Warnings      []survey.Warning
}

// CurrencySymbol returns the display symbol for an ISO currency code, or the
// code followed by a space when it has no symbol.
func CurrencySymbol(code string) string {
	switch strings.ToUpper(code) {
	case "INR":
		return "₹"
	case "USD":
		return "$"
	case "EUR":
		return "€"
	case "GBP":
		return "£"
	default:
		return code + " "
	}
}

// FormatKg formats a kg value with the given number of decimals.
func FormatKg(v float64, precision int) string {
	return strconv.FormatFloat(v, 'f', precision, 64)
}

// Share returns part as a percentage of total, or 0 when total is 0.
func Share(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return part / total * percentScale
}

// RenderKgDelta renders a signed daily kg change. Increases are warnings.
func RenderKgDelta(delta float64, precision int) string {
	scale := math.Pow10(precision)
	rounded := math.Round(delta*scale) / scale

	var icon, sign string
	var color lipgloss.Color
	switch {
	case rounded > 0:
		icon, sign, color = IconArrowUp, "+", ColorWarning
	case rounded < 0:
		icon, sign, color = IconArrowDown, "-", ColorOK
	default:
		icon, color = IconArrowRight, ColorMuted
	}

	style := lipgloss.NewStyle().Foreground(color).Bold(true)
	return style.Render(fmt.Sprintf("%s%s kg %s", sign, FormatKg(math.Abs(rounded), precision), icon))
}

type categoryRow struct {
	label string
	kg    float64
}

// breakdownRows returns the category rows of r, total last.
func breakdownRows(r footprint.Result) []categoryRow {
	return []categoryRow{
		{LabelDevices, r.Devices},
		{LabelStreaming, r.Streaming},
		{LabelAI, r.AI},
		{LabelCharging, r.Charging},
		{LabelTotal, r.Total},
	}
}

// NewBreakdownTable builds a static table of daily and annual kg per category.
func NewBreakdownTable(r footprint.Result, precision int) table.Model {
	columns := []table.Column{
		{Title: "Category", Width: categoryWidth},
		{Title: "kg/day", Width: kgColumnWidth},
		{Title: "kg/year", Width: kgColumnWidth},
		{Title: "Share", Width: shareWidth},
	}

	src := breakdownRows(r)
	rows := make([]table.Row, len(src))
	for i, row := range src {
		rows[i] = table.Row{
			row.label,
			FormatKg(row.kg, precision),
			FormatKg(row.kg*footprint.DaysPerYear, precision),
			fmt.Sprintf("%.0f%%", Share(row.kg, r.Total)),
		}
	}

	return staticTable(columns, rows)
}

// staticTable builds an unfocused table sized to show every row.
func staticTable(columns []table.Column, rows []table.Row) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+tableHeaderRows),
	)

	s := table.DefaultStyles()
	s.Header = TableHeaderStyle
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)
	return t
}

// RenderProjection renders the annual figure and its cost.
func RenderProjection(p footprint.Projection, currency string, precision int) string {
	var sb strings.Builder
	sb.WriteString(LabelStyle.Render("Annual:    "))
	sb.WriteString(ValueStyle.Render(FormatKg(p.AnnualKg, precision) + " kg CO2"))
	sb.WriteString("\n")
	sb.WriteString(LabelStyle.Render("Cost:      "))
	sb.WriteString(ValueStyle.Render(fmt.Sprintf("%s%s/yr", CurrencySymbol(currency), FormatKg(p.CostEstimate, precision))))
	sb.WriteString(MutedStyle.Render(fmt.Sprintf(" at %s%s per tonne",
		CurrencySymbol(currency), FormatKg(p.PricePerTonne, 0))))
	return sb.String()
}

// RenderEquivalencies renders the equivalency sentence, or nothing when the
// footprint is too small to compare.
func RenderEquivalencies(out greenops.EquivalencyOutput) string {
	if out.DisplayText == "" {
		return ""
	}
	return InfoStyle.Render(out.DisplayText)
}

// RenderQuizReport renders each answered prediction against its actual score.
func RenderQuizReport(q awareness.QuizReport) string {
	if q.Answered == 0 {
		return MutedStyle.Italic(true).Render("Quiz not answered")
	}

	var sb strings.Builder
	sb.WriteString(HeaderStyle.Render("Awareness quiz"))
	sb.WriteString("\n")
	for _, item := range q.Items {
		style := OKStyle
		if !item.IsAccurate {
			style = WarningStyle
		}
		sb.WriteString(fmt.Sprintf("  %s %s %s\n",
			LabelStyle.Render(fmt.Sprintf("%-26s", item.Label)),
			ValueStyle.Render(fmt.Sprintf("%2d vs %d", item.Predicted, item.Actual)),
			style.Render(item.Comparison)))
	}

	summary := fmt.Sprintf("  %d/%d accurate, average %.1f", q.AccurateCount, q.Answered, q.AverageScore)
	if q.Complete {
		summary += ", level " + q.Level
	}
	sb.WriteString(LabelStyle.Render(summary))
	return sb.String()
}

// RenderAssessment renders the self-estimate outcome.
func RenderAssessment(a awareness.Assessment) string {
	style := OKStyle
	if !a.IsAccurate {
		style = WarningStyle
	}
	return fmt.Sprintf("%s %s\n  %s",
		LabelStyle.Render("Self-estimate:"),
		style.Bold(true).Render(a.Outcome),
		MutedStyle.Render(a.Message))
}

// RenderWarnings lists adjusted answers.
func RenderWarnings(warnings []survey.Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(WarningStyle.Bold(true).Render("Adjusted answers:"))
	for _, w := range warnings {
		sb.WriteString("\n  ")
		sb.WriteString(WarningStyle.Render(w.String()))
	}
	return sb.String()
}

// RenderReport renders a full estimate report. width 0 means unconstrained.
func RenderReport(v ReportView, width int) string {
	sections := []string{
		TitleStyle.Render("Digital Carbon Footprint"),
		NewBreakdownTable(v.Result, v.Precision).View(),
		RenderProjection(v.Projection, v.Currency, v.Precision),
	}
	if eq := RenderEquivalencies(v.Equivalencies); eq != "" {
		sections = append(sections, eq)
	}
	if v.Quiz.Answered > 0 {
		sections = append(sections, RenderQuizReport(v.Quiz))
	}
	if v.SelfEstimate != nil {
		sections = append(sections, RenderAssessment(*v.SelfEstimate))
	}
	if w := RenderWarnings(v.Warnings); w != "" {
		sections = append(sections, w)
	}

	out := strings.Join(sections, "\n\n")
	if width > 0 {
		return lipgloss.NewStyle().MaxWidth(width).Render(out)
	}
	return out
}

// truncate shortens s to maxLen runes with an ellipsis.
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= minTruncateLen {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-minTruncateLen]) + "..."
}
