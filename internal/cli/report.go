// cmd/mbebench/report.go
package mbebench

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hawaiilawtech/mbebench/internal/analysis"
	"github.com/hawaiilawtech/mbebench/internal/report"
	"github.com/spf13/cobra"
)

var (
	reportOut       string
	reportPlatforms []string
	reportModels    []string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Export a standalone HTML dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfig()
		table, err := loadTable(cfg)
		if err != nil {
			return err
		}

		filter, err := buildFilter(table, reportPlatforms, reportModels)
		if err != nil {
			return err
		}
		working := analysis.Apply(table, filter)

		html, err := report.Generate(report.Build(cfg, working))
		if err != nil {
			return fmt.Errorf("generating report: %w", err)
		}

		if dir := filepath.Dir(reportOut); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		if err := os.WriteFile(reportOut, []byte(html), 0o644); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}

		fmt.Printf("Report written to %s\n", reportOut)
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVarP(&reportOut, "out", "o", "reports/mbe_report.html", "output path for the HTML report")
	reportCmd.Flags().StringSliceVar(&reportPlatforms, "platforms", nil, "platforms to include (default all)")
	reportCmd.Flags().StringSliceVar(&reportModels, "models", nil, "models to include (default all)")
	rootCmd.AddCommand(reportCmd)
}
