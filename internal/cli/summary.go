// cmd/mbebench/summary.go
package mbebench

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/hawaiilawtech/mbebench/internal/analysis"
	"github.com/hawaiilawtech/mbebench/internal/dataset"
	"github.com/spf13/cobra"
)

var (
	summaryPlatforms []string
	summaryModels    []string
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print every aggregate view as plain tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfig()
		table, err := loadTable(cfg)
		if err != nil {
			return err
		}

		filter, err := buildFilter(table, summaryPlatforms, summaryModels)
		if err != nil {
			return err
		}
		working := analysis.Apply(table, filter)

		human := cfg.HumanPlatformLabel()
		heading := color.New(color.FgCyan, color.Bold)
		dim := color.New(color.Faint)

		heading.Println("Percentage of Correct Answers")
		for _, r := range analysis.Accuracy(working, human) {
			fmt.Printf("  %-40s %-10s %4d/%-4d %6.1f%%\n", r.Model, r.Platform, r.Correct, r.Total, r.Percentage)
		}
		dim.Printf("  Human Average: %.1f%%  Pass Rate: %.0f%% to %.0f%%\n\n",
			cfg.Baselines.HumanAveragePct, cfg.Baselines.PassBandLowPct, cfg.Baselines.PassBandHighPct)

		heading.Println("Number of Correct Answers")
		for _, r := range analysis.RawCounts(working, human) {
			fmt.Printf("  %-40s %-10s %4d of %d\n", r.Model, r.Platform, r.Correct, r.Total)
		}
		dim.Printf("  Human Average: %.0f  Maximum Score: %.0f  Pass Rate: %.0f to %.0f\n\n",
			cfg.Baselines.HumanRawScore, cfg.Baselines.MaxRawScore, cfg.Baselines.PassBandLowRaw, cfg.Baselines.PassBandHighRaw)

		heading.Println("Categories Answered Correctly")
		pivot := analysis.CategoryPivot(working, cfg.Aliases())
		for _, r := range pivot.Rows {
			fmt.Printf("  %-40s total %3d", r.Model, r.Total)
			for _, c := range pivot.Categories {
				fmt.Printf("  %s=%d", c, r.Counts[c])
			}
			fmt.Println()
		}
		fmt.Println()

		heading.Println("Cost Per Question")
		if cost, ok := analysis.CostEfficiency(working, human); ok {
			for _, r := range cost {
				fmt.Printf("  %-40s %-10s $%.5f  %5.1f%%\n", r.Model, r.Platform, r.Average, r.Percentage)
			}
		} else {
			dim.Println("  Cost data is not available in the dataset.")
		}
		fmt.Println()

		heading.Println("Time Per Question")
		if latency, ok := analysis.LatencyEfficiency(working, human); ok {
			for _, r := range latency {
				fmt.Printf("  %-40s %-10s %8.2fs  %5.1f%%\n", r.Model, r.Platform, r.Average, r.Percentage)
			}
		} else {
			dim.Println("  Duration data is not available in the dataset.")
		}
		fmt.Println()

		heading.Println("Individual Questions")
		questions := analysis.PerQuestion(working)
		for _, q := range questions {
			fmt.Printf("  Q%-5s %-30s %3d/%-3d %6.1f%%\n", q.Question, q.Category, q.TotalCorrect, q.TotalModels, q.Percentage)
		}
		if len(questions) > 0 {
			dim.Println("  Easiest:")
			for _, q := range analysis.Easiest(questions) {
				dim.Printf("    Q%-5s %-30s %6.1f%%\n", q.Question, q.Category, q.Percentage)
			}
			dim.Println("  Hardest:")
			for _, q := range analysis.Hardest(questions) {
				dim.Printf("    Q%-5s %-30s %6.1f%%\n", q.Question, q.Category, q.Percentage)
			}
		}
		return nil
	},
}

// buildFilter turns the --platforms / --models flags into a filter state.
// Unset flags select everything; named values must exist in the dataset.
func buildFilter(table *dataset.Table, platforms, models []string) (analysis.FilterState, error) {
	filter := analysis.AllOf(table)

	if len(platforms) > 0 {
		selected, err := subset(table.Platforms(), platforms, "platform")
		if err != nil {
			return analysis.FilterState{}, err
		}
		filter.Platforms = selected
	}
	if len(models) > 0 {
		selected, err := subset(table.Models(), models, "model")
		if err != nil {
			return analysis.FilterState{}, err
		}
		filter.Models = selected
	}
	return filter, nil
}

func subset(domain, names []string, kind string) (map[string]bool, error) {
	known := make(map[string]bool, len(domain))
	for _, d := range domain {
		known[d] = true
	}
	selected := make(map[string]bool, len(names))
	for _, name := range names {
		if !known[name] {
			return nil, fmt.Errorf("unknown %s %q (known: %v)", kind, name, domain)
		}
		selected[name] = true
	}
	return selected, nil
}

func init() {
	summaryCmd.Flags().StringSliceVar(&summaryPlatforms, "platforms", nil, "platforms to include (default all)")
	summaryCmd.Flags().StringSliceVar(&summaryModels, "models", nil, "models to include (default all)")
	rootCmd.AddCommand(summaryCmd)
}
