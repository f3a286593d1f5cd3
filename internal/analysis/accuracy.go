// internal/analysis/accuracy.go
package analysis

import (
	"sort"

	"github.com/hawaiilawtech/mbebench/internal/dataset"
)

// AccuracyRow is one model's accuracy over the working set.
type AccuracyRow struct {
	Model      string
	Platform   string
	Total      int
	Correct    int
	Percentage float64
}

// Accuracy computes per-model accuracy rates. Rows for humanPlatform are
// excluded; the human baseline is rendered as a reference line instead.
// Output is sorted by percentage descending, ties broken by model ascending.
// Models with no rows in the working set are simply absent.
func Accuracy(t *dataset.Table, humanPlatform string) []AccuracyRow {
	type counts struct {
		platform string
		total    int
		correct  int
	}
	byModel := make(map[string]*counts)
	for _, r := range t.Rows {
		if r.Platform == humanPlatform {
			continue
		}
		c, ok := byModel[r.Model]
		if !ok {
			c = &counts{platform: r.Platform}
			byModel[r.Model] = c
		}
		c.total++
		if r.Correct {
			c.correct++
		}
	}

	rows := make([]AccuracyRow, 0, len(byModel))
	for model, c := range byModel {
		rows = append(rows, AccuracyRow{
			Model:      model,
			Platform:   c.platform,
			Total:      c.total,
			Correct:    c.correct,
			Percentage: 100 * float64(c.correct) / float64(c.total),
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

// RawCountRow is one model's raw correct-answer count over the working set.
type RawCountRow struct {
	Model      string
	Platform   string
	Correct    int
	Total      int
	Percentage float64
}

// RawCounts computes per-model raw correct-answer counts, joined with the
// total attempted and the derived percentage for the companion table.
// Sorted by correct descending, ties broken by model ascending.
func RawCounts(t *dataset.Table, humanPlatform string) []RawCountRow {
	rows := make([]RawCountRow, 0)
	for _, a := range Accuracy(t, humanPlatform) {
		rows = append(rows, RawCountRow{
			Model:      a.Model,
			Platform:   a.Platform,
			Correct:    a.Correct,
			Total:      a.Total,
			Percentage: a.Percentage,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Correct != rows[j].Correct {
			return rows[i].Correct > rows[j].Correct
		}
		return rows[i].Model < rows[j].Model
	})
	return rows
}
