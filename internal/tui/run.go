// internal/tui/run.go
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hawaiilawtech/mbebench/internal/appconfig"
	"github.com/hawaiilawtech/mbebench/internal/dataset"
)

// Run starts the interactive dashboard and blocks until the user quits.
func Run(cfg *appconfig.Config, table *dataset.Table) error {
	program := tea.NewProgram(New(cfg, table), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
