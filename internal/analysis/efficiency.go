// internal/analysis/efficiency.go
package analysis

import (
	"sort"

	"github.com/hawaiilawtech/mbebench/internal/dataset"
)

// EfficiencyRow is one model's average cost (or latency) per question paired
// with its accuracy, for a two-axis efficiency plot.
type EfficiencyRow struct {
	Model      string
	Platform   string
	Average    float64
	Correct    int
	Total      int
	Percentage float64
}

// CostEfficiency computes average cost per question joined with accuracy for
// each model, human platform excluded. The second return is false when the
// source carries no cost column; the view reports unavailable instead of
// erroring. Rows default to percentage-descending order for the companion
// table; chart placement is the caller's concern.
func CostEfficiency(t *dataset.Table, humanPlatform string) ([]EfficiencyRow, bool) {
	if !t.HasCost {
		return nil, false
	}
	return efficiency(t, humanPlatform, func(r dataset.Record) *float64 { return r.Cost }), true
}

// LatencyEfficiency is the duration analogue of CostEfficiency: mean seconds
// per question joined with accuracy, human excluded, unavailable without a
// duration column.
func LatencyEfficiency(t *dataset.Table, humanPlatform string) ([]EfficiencyRow, bool) {
	if !t.HasDuration {
		return nil, false
	}
	return efficiency(t, humanPlatform, func(r dataset.Record) *float64 { return r.Duration }), true
}

func efficiency(t *dataset.Table, humanPlatform string, metric func(dataset.Record) *float64) []EfficiencyRow {
	type acc struct {
		platform string
		sum      float64
		n        int
		total    int
		correct  int
	}
	byModel := make(map[string]*acc)
	for _, r := range t.Rows {
		if r.Platform == humanPlatform {
			continue
		}
		a, ok := byModel[r.Model]
		if !ok {
			a = &acc{platform: r.Platform}
			byModel[r.Model] = a
		}
		a.total++
		if r.Correct {
			a.correct++
		}
		if v := metric(r); v != nil {
			a.sum += *v
			a.n++
		}
	}

	rows := make([]EfficiencyRow, 0, len(byModel))
	for model, a := range byModel {
		if a.n == 0 {
			// Model carried no values for this metric (e.g. blank cells);
			// it has no point on the plot.
			continue
		}
		rows = append(rows, EfficiencyRow{
			Model:      model,
			Platform:   a.platform,
			Average:    a.sum / float64(a.n),
			Correct:    a.correct,
			Total:      a.total,
			Percentage: 100 * float64(a.correct) / float64(a.total),
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Percentage != rows[j].Percentage {
			return rows[i].Percentage > rows[j].Percentage
		}
		return rows[i].Model < rows[j].Model
	})
	return rows
}
