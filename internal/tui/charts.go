// internal/tui/charts.go
package tui

import (
	"fmt"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/linechart"
	"github.com/charmbracelet/lipgloss"
)

// bar is a single bar in a chart: one model, one value, colored by platform.
type bar struct {
	Label string
	Value float64
	Color string
}

// stackedBar is a bar composed of per-category segments.
type stackedBar struct {
	Label    string
	Segments []barSegment
}

type barSegment struct {
	Name  string
	Value float64
	Color string
}

// renderBarChart draws one bar per entry, in the order given.
func renderBarChart(width, height int, bars []bar) string {
	if len(bars) == 0 {
		return dimStyle.Render("no data for the current selection")
	}

	bc := barchart.New(width, height)
	for _, b := range bars {
		bc.Push(barchart.BarData{
			Label: b.Label,
			Values: []barchart.BarValue{{
				Name:  b.Label,
				Value: b.Value,
				Style: lipgloss.NewStyle().Foreground(lipgloss.Color(b.Color)),
			}},
		})
	}
	bc.Draw()
	return bc.View()
}

// renderStackedBarChart draws one stacked bar per entry, segments in the
// order given.
func renderStackedBarChart(width, height int, bars []stackedBar) string {
	if len(bars) == 0 {
		return dimStyle.Render("no data for the current selection")
	}

	bc := barchart.New(width, height)
	for _, b := range bars {
		values := make([]barchart.BarValue, 0, len(b.Segments))
		for _, s := range b.Segments {
			values = append(values, barchart.BarValue{
				Name:  s.Name,
				Value: s.Value,
				Style: lipgloss.NewStyle().Foreground(lipgloss.Color(s.Color)),
			})
		}
		bc.Push(barchart.BarData{Label: b.Label, Values: values})
	}
	bc.Draw()
	return bc.View()
}

// point is one model on an efficiency plot: metric on X, accuracy on Y.
type point struct {
	X     float64
	Y     float64
	Color string
}

// renderScatter plots points on a 0..maxX by 0..100 plane with labeled axes.
func renderScatter(width, height int, points []point, maxX float64) string {
	if len(points) == 0 {
		return dimStyle.Render("no data for the current selection")
	}
	if maxX <= 0 {
		maxX = 1
	}

	lc := linechart.New(width, height, 0, maxX, 0, 100)
	lc.DrawXYAxisAndLabel()
	for _, p := range points {
		lc.DrawRuneWithStyle(
			canvas.Float64Point{X: p.X, Y: p.Y},
			'●',
			lipgloss.NewStyle().Foreground(lipgloss.Color(p.Color)),
		)
	}
	return lc.View()
}

// baselineCaption renders the human reference-line annotation under a chart.
func baselineCaption(label string, value float64, unit string) string {
	return baselineStyle.Render(fmt.Sprintf("─ %s (%.1f%s)", label, value, unit))
}

// bandCaption renders the shaded-band annotation under a chart.
func bandCaption(label string, low, high float64, unit string) string {
	return bandStyle.Render(fmt.Sprintf("▒ %s (%.0f%s to %.0f%s)", label, low, unit, high, unit))
}
