// internal/analysis/analysis_test.go
package analysis

import (
	"testing"

	"github.com/hawaiilawtech/mbebench/internal/dataset"
)

func rec(q, category, platform, model string, correct bool) dataset.Record {
	return dataset.Record{
		Question: q,
		Category: category,
		Platform: platform,
		Model:    model,
		Correct:  correct,
	}
}

func tbl(rows ...dataset.Record) *dataset.Table {
	return &dataset.Table{Rows: rows}
}

func TestApplyFiltersByPlatformAndModel(t *testing.T) {
	table := tbl(
		rec("1", "Torts", "Claude", "claude-3", true),
		rec("1", "Torts", "Gemini", "gemini-pro", false),
		rec("1", "Torts", "Human", "Human", true),
	)

	filter := FilterState{
		Platforms: map[string]bool{"Claude": true},
		Models:    map[string]bool{"claude-3": true},
	}
	working := Apply(table, filter)
	if len(working.Rows) != 1 {
		t.Fatalf("expected 1 row after filtering, got %d", len(working.Rows))
	}
	if working.Rows[0].Model != "claude-3" {
		t.Fatalf("unexpected surviving row: %+v", working.Rows[0])
	}
}

func TestApplyEmptySelectionYieldsEmptyOutputsEverywhere(t *testing.T) {
	table := tbl(
		rec("1", "Torts", "Claude", "claude-3", true),
		rec("2", "Contracts", "Gemini", "gemini-pro", false),
	)

	empty := FilterState{Platforms: map[string]bool{}, Models: map[string]bool{}}
	if !empty.Empty() {
		t.Fatal("expected Empty() for an empty selection")
	}
	working := Apply(table, empty)
	if len(working.Rows) != 0 {
		t.Fatalf("expected empty working set, got %d rows", len(working.Rows))
	}

	if rows := Accuracy(working, "Human"); len(rows) != 0 {
		t.Fatalf("Accuracy on empty set returned %d rows", len(rows))
	}
	if rows := RawCounts(working, "Human"); len(rows) != 0 {
		t.Fatalf("RawCounts on empty set returned %d rows", len(rows))
	}
	if rows := Categories(working, nil, SortByTotal, ""); len(rows) != 0 {
		t.Fatalf("Categories on empty set returned %d rows", len(rows))
	}
	if rows := PerQuestion(working); len(rows) != 0 {
		t.Fatalf("PerQuestion on empty set returned %d rows", len(rows))
	}
}

func TestAllOfSelectsEveryObservedValue(t *testing.T) {
	table := tbl(
		rec("1", "Torts", "Claude", "claude-3", true),
		rec("1", "Torts", "Gemini", "gemini-pro", false),
	)
	filter := AllOf(table)
	if len(filter.Platforms) != 2 || len(filter.Models) != 2 {
		t.Fatalf("expected all platforms and models selected, got %+v", filter)
	}
	if got := Apply(table, filter); len(got.Rows) != len(table.Rows) {
		t.Fatalf("default filter dropped rows: %d of %d", len(got.Rows), len(table.Rows))
	}
}

func TestAccuracyPercentagesAndSort(t *testing.T) {
	table := tbl(
		rec("1", "Torts", "Claude", "claude-3", true),
		rec("2", "Torts", "Claude", "claude-3", true),
		rec("3", "Torts", "Claude", "claude-3", false),
		rec("1", "Torts", "Gemini", "gemini-pro", true),
		rec("2", "Torts", "Gemini", "gemini-pro", false),
		rec("3", "Torts", "Gemini", "gemini-pro", false),
		rec("1", "Torts", "Human", "Human", true),
	)

	rows := Accuracy(table, "Human")
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows (human excluded), got %d", len(rows))
	}
	if rows[0].Model != "claude-3" {
		t.Fatalf("expected claude-3 first (higher percentage), got %s", rows[0].Model)
	}
	if rows[0].Correct != 2 || rows[0].Total != 3 {
		t.Fatalf("unexpected counts: %+v", rows[0])
	}
	want := 100 * 2.0 / 3.0
	if rows[0].Percentage != want {
		t.Fatalf("expected percentage %.4f, got %.4f", want, rows[0].Percentage)
	}

	for _, r := range rows {
		if r.Percentage < 0 || r.Percentage > 100 {
			t.Fatalf("percentage out of bounds: %+v", r)
		}
		if r.Correct > r.Total {
			t.Fatalf("correct exceeds total: %+v", r)
		}
	}
}

func TestAccuracyTieBrokenByModelAscending(t *testing.T) {
	table := tbl(
		rec("1", "Torts", "Claude", "b-model", true),
		rec("1", "Torts", "Gemini", "a-model", true),
	)
	rows := Accuracy(table, "Human")
	if rows[0].Model != "a-model" || rows[1].Model != "b-model" {
		t.Fatalf("expected tie broken by model ascending, got %s then %s", rows[0].Model, rows[1].Model)
	}
}

func TestRawCountsSortedByCorrectDescending(t *testing.T) {
	table := tbl(
		rec("1", "Torts", "Claude", "claude-3", true),
		rec("2", "Torts", "Claude", "claude-3", true),
		rec("1", "Torts", "Gemini", "gemini-pro", true),
		rec("2", "Torts", "Gemini", "gemini-pro", false),
	)
	rows := RawCounts(table, "Human")
	if rows[0].Model != "claude-3" || rows[0].Correct != 2 {
		t.Fatalf("expected claude-3 with 2 correct first, got %+v", rows[0])
	}
	if rows[1].Percentage != 50 {
		t.Fatalf("expected joined percentage 50 for gemini-pro, got %.1f", rows[1].Percentage)
	}
}
