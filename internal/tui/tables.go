// internal/tui/tables.go
package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

const maxTableRows = 12

// staticTable renders a non-interactive companion table.
func staticTable(columns []table.Column, rows []table.Row) string {
	height := len(rows)
	if height > maxTableRows {
		height = maxTableRows
	}
	if height == 0 {
		return dimStyle.Render("no rows")
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(height),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).Foreground(lipgloss.Color("51"))
	styles.Selected = lipgloss.NewStyle()
	t.SetStyles(styles)
	return t.View()
}

// truncate shortens a label to fit chart and column widths.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 1 {
		return s[:max]
	}
	return s[:max-1] + "…"
}
