// internal/analysis/categories.go
package analysis

import (
	"sort"

	"github.com/hawaiilawtech/mbebench/internal/dataset"
)

// CategorySort selects how the model axis of the category breakdown is
// ordered.
type CategorySort int

const (
	// SortByTotal orders models by their total correct answers across all
	// categories, descending.
	SortByTotal CategorySort = iota
	// SortByCategory orders models by their correct count within one chosen
	// category alone, descending, independent of totals.
	SortByCategory
)

// CategoryRow is one (model, category) cell of the breakdown: the number of
// questions in that category the model answered correctly.
type CategoryRow struct {
	Model    string
	Platform string
	Category string
	Count    int
}

// NormalizeCategory collapses known category aliases to their canonical
// label. Unknown labels pass through unchanged.
func NormalizeCategory(aliases map[string]string, category string) string {
	if canonical, ok := aliases[category]; ok {
		return canonical
	}
	return category
}

// Categories counts correct answers per (model, platform, category) after
// normalizing category aliases. Rows are grouped by model in the order given
// by mode; within a model, categories sort ascending. For SortByCategory the
// chosen category's count alone determines the model order; models with no
// correct answers in that category sort last, by model ascending.
func Categories(t *dataset.Table, aliases map[string]string, mode CategorySort, category string) []CategoryRow {
	cells, platforms := categoryCells(t, aliases)

	totals := make(map[string]int)
	chosen := make(map[string]int)
	models := make(map[string]bool)
	for key, n := range cells {
		models[key.model] = true
		totals[key.model] += n
		if key.category == category {
			chosen[key.model] = n
		}
	}

	order := make([]string, 0, len(models))
	for m := range models {
		order = append(order, m)
	}
	switch mode {
	case SortByCategory:
		sort.Slice(order, func(i, j int) bool {
			a, b := chosen[order[i]], chosen[order[j]]
			if a != b {
				return a > b
			}
			return order[i] < order[j]
		})
	default:
		sort.Slice(order, func(i, j int) bool {
			a, b := totals[order[i]], totals[order[j]]
			if a != b {
				return a > b
			}
			return order[i] < order[j]
		})
	}

	var rows []CategoryRow
	for _, model := range order {
		var cats []string
		for key := range cells {
			if key.model == model {
				cats = append(cats, key.category)
			}
		}
		sort.Strings(cats)
		for _, c := range cats {
			rows = append(rows, CategoryRow{
				Model:    model,
				Platform: platforms[model],
				Category: c,
				Count:    cells[cellKey{model, c}],
			})
		}
	}
	return rows
}

// Pivot is the wide companion table of the category breakdown: one row per
// model, one column per category, plus a Total column.
type Pivot struct {
	Categories []string
	Rows       []PivotRow
}

// PivotRow is one model's per-category correct counts. Counts holds zero for
// categories the model never answered correctly.
type PivotRow struct {
	Model    string
	Platform string
	Counts   map[string]int
	Total    int
}

// CategoryPivot builds the wide table, sorted by Total descending with model
// ascending tie-break.
func CategoryPivot(t *dataset.Table, aliases map[string]string) Pivot {
	cells, platforms := categoryCells(t, aliases)

	catSet := make(map[string]bool)
	byModel := make(map[string]map[string]int)
	for key, n := range cells {
		catSet[key.category] = true
		if byModel[key.model] == nil {
			byModel[key.model] = make(map[string]int)
		}
		byModel[key.model][key.category] = n
	}

	var pivot Pivot
	for c := range catSet {
		pivot.Categories = append(pivot.Categories, c)
	}
	sort.Strings(pivot.Categories)

	for model, counts := range byModel {
		row := PivotRow{
			Model:    model,
			Platform: platforms[model],
			Counts:   make(map[string]int, len(pivot.Categories)),
		}
		for _, c := range pivot.Categories {
			row.Counts[c] = counts[c]
			row.Total += counts[c]
		}
		pivot.Rows = append(pivot.Rows, row)
	}
	sort.Slice(pivot.Rows, func(i, j int) bool {
		if pivot.Rows[i].Total != pivot.Rows[j].Total {
			return pivot.Rows[i].Total > pivot.Rows[j].Total
		}
		return pivot.Rows[i].Model < pivot.Rows[j].Model
	})
	return pivot
}

type cellKey struct {
	model    string
	category string
}

// categoryCells counts the correct-only subset per (model, category) with
// aliases collapsed, and records each model's platform.
func categoryCells(t *dataset.Table, aliases map[string]string) (map[cellKey]int, map[string]string) {
	cells := make(map[cellKey]int)
	platforms := make(map[string]string)
	for _, r := range t.Rows {
		if !r.Correct {
			continue
		}
		platforms[r.Model] = r.Platform
		cells[cellKey{r.Model, NormalizeCategory(aliases, r.Category)}]++
	}
	return cells, platforms
}
