// internal/analysis/categories_test.go
package analysis

import (
	"testing"
)

var testAliases = map[string]string{
	"Criminal Law/Prosecution": "Criminal Law and Procedure",
}

func TestNormalizeCategoryMergesAlias(t *testing.T) {
	got := NormalizeCategory(testAliases, "Criminal Law/Prosecution")
	if got != "Criminal Law and Procedure" {
		t.Fatalf("expected alias collapsed to canonical label, got %q", got)
	}
}

func TestNormalizeCategoryIsIdempotent(t *testing.T) {
	once := NormalizeCategory(testAliases, "Criminal Law/Prosecution")
	twice := NormalizeCategory(testAliases, once)
	if once != twice {
		t.Fatalf("normalization not idempotent: %q then %q", once, twice)
	}
}

func TestNormalizeCategoryPassesUnknownLabelsThrough(t *testing.T) {
	if got := NormalizeCategory(testAliases, "Torts"); got != "Torts" {
		t.Fatalf("unknown label changed: %q", got)
	}
}

func TestCategoriesCountsCorrectOnlyWithAliasesCollapsed(t *testing.T) {
	table := tbl(
		rec("1", "Criminal Law/Prosecution", "Claude", "claude-3", true),
		rec("2", "Criminal Law and Procedure", "Claude", "claude-3", true),
		rec("3", "Torts", "Claude", "claude-3", false),
	)

	rows := Categories(table, testAliases, SortByTotal, "")
	if len(rows) != 1 {
		t.Fatalf("expected 1 cell, got %d: %+v", len(rows), rows)
	}
	if rows[0].Category != "Criminal Law and Procedure" || rows[0].Count != 2 {
		t.Fatalf("alias rows not merged: %+v", rows[0])
	}
}

func TestCategoriesSortByTotal(t *testing.T) {
	table := tbl(
		rec("1", "Torts", "Claude", "strong", true),
		rec("2", "Contracts", "Claude", "strong", true),
		rec("1", "Torts", "Gemini", "weak", true),
	)

	rows := Categories(table, nil, SortByTotal, "")
	if rows[0].Model != "strong" {
		t.Fatalf("expected model with more total correct first, got %s", rows[0].Model)
	}
}

func TestCategoriesSortByCategoryIgnoresTotals(t *testing.T) {
	// "specialist" wins Contracts but loses overall; sorting by Contracts
	// must put it first regardless of totals.
	table := tbl(
		rec("1", "Contracts", "Claude", "specialist", true),
		rec("2", "Contracts", "Claude", "specialist", true),
		rec("3", "Torts", "Gemini", "generalist", true),
		rec("4", "Torts", "Gemini", "generalist", true),
		rec("5", "Torts", "Gemini", "generalist", true),
		rec("1", "Contracts", "Gemini", "generalist", true),
	)

	rows := Categories(table, nil, SortByCategory, "Contracts")
	if rows[0].Model != "specialist" {
		t.Fatalf("expected specialist first when sorting by Contracts, got %s", rows[0].Model)
	}

	byTotal := Categories(table, nil, SortByTotal, "")
	if byTotal[0].Model != "generalist" {
		t.Fatalf("expected generalist first when sorting by totals, got %s", byTotal[0].Model)
	}
}

func TestCategoryPivotTotalsMatchRawCounts(t *testing.T) {
	table := tbl(
		rec("1", "Torts", "Claude", "claude-3", true),
		rec("2", "Contracts", "Claude", "claude-3", true),
		rec("3", "Criminal Law/Prosecution", "Claude", "claude-3", true),
		rec("4", "Torts", "Claude", "claude-3", false),
		rec("1", "Torts", "Gemini", "gemini-pro", true),
		rec("2", "Contracts", "Gemini", "gemini-pro", false),
	)

	raw := RawCounts(table, "Human")
	pivot := CategoryPivot(table, testAliases)

	if len(pivot.Rows) != len(raw) {
		t.Fatalf("pivot has %d rows, raw counts %d", len(pivot.Rows), len(raw))
	}
	correctByModel := make(map[string]int)
	for _, r := range raw {
		correctByModel[r.Model] = r.Correct
	}
	for _, row := range pivot.Rows {
		if row.Total != correctByModel[row.Model] {
			t.Fatalf("pivot Total %d for %s disagrees with raw correct count %d",
				row.Total, row.Model, correctByModel[row.Model])
		}
		sum := 0
		for _, c := range pivot.Categories {
			sum += row.Counts[c]
		}
		if sum != row.Total {
			t.Fatalf("pivot row sum %d != Total %d for %s", sum, row.Total, row.Model)
		}
	}
}

func TestCategoryPivotSortedByTotalDescending(t *testing.T) {
	table := tbl(
		rec("1", "Torts", "Claude", "low", true),
		rec("1", "Torts", "Gemini", "high", true),
		rec("2", "Contracts", "Gemini", "high", true),
	)
	pivot := CategoryPivot(table, nil)
	if pivot.Rows[0].Model != "high" || pivot.Rows[1].Model != "low" {
		t.Fatalf("unexpected pivot order: %+v", pivot.Rows)
	}
}
