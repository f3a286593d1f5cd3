// internal/tui/views.go
package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/hawaiilawtech/mbebench/internal/analysis"
)

const barLabelWidth = 14

// renderAccuracy is the percentage-of-correct-answers view: one bar per
// model with the human average line and pass-rate band as captions.
func (m *Model) renderAccuracy() string {
	bars := make([]bar, 0, len(m.snap.accuracy))
	for _, row := range m.snap.accuracy {
		bars = append(bars, bar{
			Label: truncate(row.Model, barLabelWidth),
			Value: row.Percentage,
			Color: m.cfg.PaletteColor(row.Platform),
		})
	}

	b := m.cfg.Baselines
	out := sectionStyle.Render("┃ Percentage of Correct Answers by Model") + "\n"
	out += renderBarChart(m.chartWidth(), chartHeight, bars) + "\n"
	out += baselineCaption("Human Average", b.HumanAveragePct, "%") + "\n"
	out += bandCaption("Pass Rate", b.PassBandLowPct, b.PassBandHighPct, "%") + "\n"
	out += captionStyle.Render("Each bar shows the percentage of questions the model answered correctly, colored by AI platform.") + "\n"

	columns := []table.Column{
		{Title: "Model", Width: 34},
		{Title: "AI Platform", Width: 12},
		{Title: "Total", Width: 6},
		{Title: "Correct", Width: 8},
		{Title: "Percentage", Width: 10},
	}
	rows := make([]table.Row, 0, len(m.snap.accuracy))
	for _, r := range m.snap.accuracy {
		rows = append(rows, table.Row{
			r.Model, r.Platform,
			strconv.Itoa(r.Total), strconv.Itoa(r.Correct),
			fmt.Sprintf("%.1f%%", r.Percentage),
		})
	}
	out += sectionStyle.Render("┃ Raw Performance Data") + "\n" + staticTable(columns, rows)
	return out
}

// renderRawCounts is the number-of-correct-answers view.
func (m *Model) renderRawCounts() string {
	bars := make([]bar, 0, len(m.snap.rawCounts))
	for _, row := range m.snap.rawCounts {
		bars = append(bars, bar{
			Label: truncate(row.Model, barLabelWidth),
			Value: float64(row.Correct),
			Color: m.cfg.PaletteColor(row.Platform),
		})
	}

	b := m.cfg.Baselines
	out := sectionStyle.Render("┃ Correct Answers by Model") + "\n"
	out += renderBarChart(m.chartWidth(), chartHeight, bars) + "\n"
	out += baselineCaption("Human Average", b.HumanRawScore, "") + "\n"
	out += baselineCaption("Maximum Score", b.MaxRawScore, "") + "\n"
	out += bandCaption("Pass Rate", b.PassBandLowRaw, b.PassBandHighRaw, "") + "\n"
	out += captionStyle.Render("Each bar shows the raw number of questions the model answered correctly.") + "\n"

	columns := []table.Column{
		{Title: "Model", Width: 34},
		{Title: "AI Platform", Width: 12},
		{Title: "Correct", Width: 8},
		{Title: "Total Questions", Width: 15},
		{Title: "Percentage Correct", Width: 18},
	}
	rows := make([]table.Row, 0, len(m.snap.rawCounts))
	for _, r := range m.snap.rawCounts {
		rows = append(rows, table.Row{
			r.Model, r.Platform,
			strconv.Itoa(r.Correct), strconv.Itoa(r.Total),
			fmt.Sprintf("%.1f%%", r.Percentage),
		})
	}
	out += sectionStyle.Render("┃ Raw Performance Data") + "\n" + staticTable(columns, rows)
	return out
}

// renderCategories is the per-category breakdown: stacked bars per model,
// a legend, and the pivoted wide table.
func (m *Model) renderCategories() string {
	pivot := m.snap.pivot

	colorOf := make(map[string]string, len(pivot.Categories))
	for i, c := range pivot.Categories {
		colorOf[c] = categoryColor(i)
	}

	// Model order comes from the long-form rows, which already honor the
	// active sort mode.
	var order []string
	seen := make(map[string]bool)
	for _, r := range m.snap.categories {
		if !seen[r.Model] {
			seen[r.Model] = true
			order = append(order, r.Model)
		}
	}

	countsFor := make(map[string]map[string]int, len(pivot.Rows))
	for _, r := range pivot.Rows {
		countsFor[r.Model] = r.Counts
	}

	bars := make([]stackedBar, 0, len(order))
	for _, model := range order {
		sb := stackedBar{Label: truncate(model, barLabelWidth)}
		for _, c := range pivot.Categories {
			if n := countsFor[model][c]; n > 0 {
				sb.Segments = append(sb.Segments, barSegment{
					Name:  c,
					Value: float64(n),
					Color: colorOf[c],
				})
			}
		}
		bars = append(bars, sb)
	}

	sortLabel := "total correct answers"
	if m.catSort == analysis.SortByCategory {
		sortLabel = fmt.Sprintf("correct answers in %q", m.sortCategory(pivot))
	}

	out := sectionStyle.Render("┃ Correct Answers by Legal Category") + "\n"
	out += dimStyle.Render("sorted by "+sortLabel) + "\n"
	out += renderStackedBarChart(m.chartWidth(), chartHeight, bars) + "\n"

	var legend string
	for i, c := range pivot.Categories {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(colorOf[c])).Render("█")
		legend += swatch + " " + dimStyle.Render(c) + "  "
		if i%3 == 2 {
			legend += "\n"
		}
	}
	out += legend + "\n"

	columns := []table.Column{
		{Title: "Model", Width: 30},
		{Title: "AI Platform", Width: 12},
	}
	for _, c := range pivot.Categories {
		columns = append(columns, table.Column{Title: truncate(c, 12), Width: 12})
	}
	columns = append(columns, table.Column{Title: "Total", Width: 6})

	rows := make([]table.Row, 0, len(pivot.Rows))
	for _, r := range pivot.Rows {
		row := table.Row{r.Model, r.Platform}
		for _, c := range pivot.Categories {
			row = append(row, strconv.Itoa(r.Counts[c]))
		}
		row = append(row, strconv.Itoa(r.Total))
		rows = append(rows, row)
	}
	out += sectionStyle.Render("┃ Detailed Category Performance") + "\n" + staticTable(columns, rows)
	return out
}

// renderCost is the cost-vs-performance scatter view.
func (m *Model) renderCost() string {
	if !m.snap.costOK {
		return unavailableStyle.Render("Cost data is not available in the dataset.")
	}
	return m.renderEfficiency(
		"┃ Cost vs. Performance",
		"Average Cost Per Question ($)",
		"Avg Cost/Question",
		m.snap.cost,
		func(v float64) string { return fmt.Sprintf("$%.5f", v) },
	)
}

// renderTime is the time-vs-performance scatter view.
func (m *Model) renderTime() string {
	if !m.snap.latencyOK {
		return unavailableStyle.Render("Duration data is not available in the dataset.")
	}
	return m.renderEfficiency(
		"┃ Time vs. Performance",
		"Average Time Per Question (seconds)",
		"Avg Seconds",
		m.snap.latency,
		func(v float64) string { return fmt.Sprintf("%.2f", v) },
	)
}

func (m *Model) renderEfficiency(title, xLabel, colTitle string, rows []analysis.EfficiencyRow, format func(float64) string) string {
	points := make([]point, 0, len(rows))
	var maxX float64
	for _, r := range rows {
		if r.Average > maxX {
			maxX = r.Average
		}
		points = append(points, point{
			X:     r.Average,
			Y:     r.Percentage,
			Color: m.cfg.PaletteColor(r.Platform),
		})
	}

	out := sectionStyle.Render(title) + "\n"
	out += renderScatter(m.chartWidth(), chartHeight, points, maxX*1.1) + "\n"
	out += dimStyle.Render("x: "+xLabel+"   y: Percentage of Correct Answers") + "\n"

	seen := make(map[string]bool)
	var legend string
	for _, r := range rows {
		if seen[r.Platform] {
			continue
		}
		seen[r.Platform] = true
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(m.cfg.PaletteColor(r.Platform))).Render("●")
		legend += swatch + " " + dimStyle.Render(r.Platform) + "  "
	}
	out += legend + "\n"
	out += captionStyle.Render("Each point is one model. Higher and further left is better.") + "\n"

	columns := []table.Column{
		{Title: "Model", Width: 34},
		{Title: "AI Platform", Width: 12},
		{Title: colTitle, Width: 18},
		{Title: "Percentage Correct", Width: 18},
	}
	tableRows := make([]table.Row, 0, len(rows))
	for _, r := range rows {
		tableRows = append(tableRows, table.Row{
			r.Model, r.Platform, format(r.Average), fmt.Sprintf("%.1f%%", r.Percentage),
		})
	}
	out += sectionStyle.Render("┃ Data") + "\n" + staticTable(columns, tableRows)
	return out
}

// maxOutcomeColumns bounds how many per-model outcome columns fit on screen;
// wider selections fall back to the summary columns only.
const maxOutcomeColumns = 8

// renderQuestions is the per-question difficulty view.
func (m *Model) renderQuestions() string {
	rows := m.snap.questions
	if len(rows) == 0 {
		if m.filter.Empty() {
			return unavailableStyle.Render("Select at least one platform and model to view question analysis.")
		}
		return unavailableStyle.Render("no data for the current selection")
	}

	models := m.snap.working.Models()
	showOutcomes := len(models) <= maxOutcomeColumns

	columns := []table.Column{
		{Title: "Question", Width: 8},
		{Title: "Law Category", Width: 26},
		{Title: "Percentage Correct", Width: 18},
	}
	if showOutcomes {
		for _, model := range models {
			columns = append(columns, table.Column{Title: truncate(model, 10), Width: 10})
		}
	}

	tableRows := make([]table.Row, 0, len(rows))
	for _, q := range rows {
		row := table.Row{q.Question, q.Category, fmt.Sprintf("%.1f%%", q.Percentage)}
		if showOutcomes {
			for _, model := range models {
				row = append(row, q.Outcomes[model])
			}
		}
		tableRows = append(tableRows, row)
	}

	out := sectionStyle.Render("┃ Question Performance Analysis") + "\n"
	out += captionStyle.Render("Percentage Correct is the share of selected models that answered each question correctly.") + "\n"
	out += staticTable(columns, tableRows) + "\n"

	sideColumns := []table.Column{
		{Title: "Question", Width: 8},
		{Title: "Law Category", Width: 26},
		{Title: "Percentage Correct", Width: 18},
	}
	sideRows := func(qs []analysis.QuestionRow) []table.Row {
		out := make([]table.Row, 0, len(qs))
		for _, q := range qs {
			out = append(out, table.Row{q.Question, q.Category, fmt.Sprintf("%.1f%%", q.Percentage)})
		}
		return out
	}

	easiest := sectionStyle.Render("┃ Easiest Questions") + "\n" + staticTable(sideColumns, sideRows(analysis.Easiest(rows)))
	hardest := sectionStyle.Render("┃ Hardest Questions") + "\n" + staticTable(sideColumns, sideRows(analysis.Hardest(rows)))
	out += lipgloss.JoinHorizontal(lipgloss.Top, easiest, "   ", hardest)
	return out
}
