// internal/analysis/filter.go
// Package analysis turns row-level attempt records into the summary tables
// behind each dashboard view. Every function here is a pure derivation of
// its input table: nothing is cached, nothing is mutated, and recomputing
// after a filter change is always safe.
package analysis

import (
	"github.com/hawaiilawtech/mbebench/internal/dataset"
)

// FilterState is the user's current platform and model selection. A value
// present in the map with true participates; anything else is filtered out.
type FilterState struct {
	Platforms map[string]bool
	Models    map[string]bool
}

// AllOf returns a filter state selecting every platform and model present
// in the table, the default on first render.
func AllOf(t *dataset.Table) FilterState {
	f := FilterState{
		Platforms: make(map[string]bool),
		Models:    make(map[string]bool),
	}
	for _, p := range t.Platforms() {
		f.Platforms[p] = true
	}
	for _, m := range t.Models() {
		f.Models[m] = true
	}
	return f
}

// Empty reports whether the selection excludes everything.
func (f FilterState) Empty() bool {
	for _, on := range f.Platforms {
		if on {
			for _, mOn := range f.Models {
				if mOn {
					return false
				}
			}
			return true
		}
	}
	return true
}

// Apply produces the working set: rows whose platform and model are both
// selected. An empty result is valid; downstream aggregators return empty
// outputs for it rather than failing.
func Apply(t *dataset.Table, f FilterState) *dataset.Table {
	out := &dataset.Table{
		HasCost:     t.HasCost,
		HasDuration: t.HasDuration,
	}
	for _, r := range t.Rows {
		if f.Platforms[r.Platform] && f.Models[r.Model] {
			out.Rows = append(out.Rows, r)
		}
	}
	return out
}
