// cmd/mbebench/dashboard.go
package mbebench

import (
	"github.com/hawaiilawtech/mbebench/internal/logging"
	"github.com/hawaiilawtech/mbebench/internal/tui"
	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Launch the interactive results dashboard",
	Long: "Loads the results dataset and opens the tabbed terminal dashboard: " +
		"accuracy rates, raw correct counts, category breakdowns, cost and time " +
		"efficiency, and per-question difficulty, filterable by platform and model.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfig()
		if cfg.Debug {
			if err := logging.Init(cfg.LogFilePath()); err != nil {
				return err
			}
			defer logging.Close()
		}

		table, err := loadTable(cfg)
		if err != nil {
			return err
		}
		return tui.Run(cfg, table)
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
