// internal/analysis/efficiency_test.go
package analysis

import (
	"testing"

	"github.com/hawaiilawtech/mbebench/internal/dataset"
)

func withCost(r dataset.Record, cost float64) dataset.Record {
	r.Cost = &cost
	return r
}

func withDuration(r dataset.Record, seconds float64) dataset.Record {
	r.Duration = &seconds
	return r
}

func TestCostEfficiencyUnavailableWithoutColumn(t *testing.T) {
	table := tbl(rec("1", "Torts", "Claude", "claude-3", true))
	// HasCost defaults to false: the source carried no cost column.
	if _, ok := CostEfficiency(table, "Human"); ok {
		t.Fatal("expected cost efficiency to be unavailable without a cost column")
	}

	// The other aggregators still work on the same working set.
	if rows := Accuracy(table, "Human"); len(rows) != 1 || rows[0].Percentage != 100 {
		t.Fatalf("accuracy should be unaffected by missing cost: %+v", rows)
	}
}

func TestCostEfficiencyAveragesAndJoin(t *testing.T) {
	table := &dataset.Table{
		HasCost: true,
		Rows: []dataset.Record{
			withCost(rec("1", "Torts", "Claude", "claude-3", true), 0.02),
			withCost(rec("2", "Torts", "Claude", "claude-3", false), 0.04),
			withCost(rec("1", "Torts", "Human", "Human", true), 0),
		},
	}

	rows, ok := CostEfficiency(table, "Human")
	if !ok {
		t.Fatal("expected cost efficiency to be available")
	}
	if len(rows) != 1 {
		t.Fatalf("expected human excluded, got %d rows", len(rows))
	}
	r := rows[0]
	if r.Average != 0.03 {
		t.Fatalf("expected average cost 0.03, got %v", r.Average)
	}
	if r.Percentage != 50 {
		t.Fatalf("expected joined accuracy 50%%, got %v", r.Percentage)
	}
}

func TestLatencyEfficiencyMeanDuration(t *testing.T) {
	table := &dataset.Table{
		HasDuration: true,
		Rows: []dataset.Record{
			withDuration(rec("1", "Torts", "Claude", "claude-3", true), 2),
			withDuration(rec("2", "Torts", "Claude", "claude-3", true), 4),
		},
	}

	rows, ok := LatencyEfficiency(table, "Human")
	if !ok {
		t.Fatal("expected latency efficiency to be available")
	}
	if rows[0].Average != 3 {
		t.Fatalf("expected mean duration 3s, got %v", rows[0].Average)
	}
}

func TestLatencyEfficiencyUnavailableWithoutColumn(t *testing.T) {
	table := tbl(rec("1", "Torts", "Claude", "claude-3", true))
	if _, ok := LatencyEfficiency(table, "Human"); ok {
		t.Fatal("expected latency efficiency to be unavailable without a duration column")
	}
}

func TestEfficiencySkipsModelsWithoutValues(t *testing.T) {
	table := &dataset.Table{
		HasCost: true,
		Rows: []dataset.Record{
			withCost(rec("1", "Torts", "Claude", "claude-3", true), 0.01),
			rec("1", "Torts", "Gemini", "gemini-pro", true), // blank cost cell
		},
	}
	rows, _ := CostEfficiency(table, "Human")
	if len(rows) != 1 || rows[0].Model != "claude-3" {
		t.Fatalf("expected only the model with cost values, got %+v", rows)
	}
}
