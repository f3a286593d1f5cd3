// internal/dataset/dataset.go
// Package dataset loads the exam-attempt table from a delimited source file
// and exposes it as typed records. A table is loaded once and never mutated.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Record is one exam attempt: a single model answering a single question.
type Record struct {
	Question string
	Category string
	Platform string
	Model    string
	Correct  bool
	// Cost and Duration are nil when the source file omits the column
	// or leaves the cell blank.
	Cost     *float64
	Duration *float64
}

// Table is an immutable set of attempt records plus flags describing which
// optional columns the source file carried.
type Table struct {
	Rows        []Record
	HasCost     bool
	HasDuration bool
}

// Schema maps the logical columns onto header names in the source file.
// Platform is a list because published exports have used both "AI Platform"
// and "Platform" for the same column; the first header that matches wins.
type Schema struct {
	Question string
	Category string
	Platform []string
	Model    string
	Correct  string
	Cost     string
	Duration string
}

// DefaultSchema returns the column mapping used by the published exports.
func DefaultSchema() Schema {
	return Schema{
		Question: "Question Number",
		Category: "Law Category",
		Platform: []string{"AI Platform", "Platform"},
		Model:    "Model",
		Correct:  "Correct",
		Cost:     "total_cost",
		Duration: "duration",
	}
}

// Load reads the full table from a CSV file at path. Any data-quality
// problem fails the load with a *LoadError; there is no partial result.
func Load(path string, schema Schema) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Kind: KindFileUnreadable, Err: err}
	}
	defer file.Close()

	table, err := Read(file, schema)
	if err != nil {
		return nil, fmt.Errorf("loading %q: %w", path, err)
	}
	return table, nil
}

// Read parses a table from r. Split out from Load so tests and alternate
// sources can feed readers directly.
func Read(r io.Reader, schema Schema) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, &LoadError{Kind: KindBadHeader, Err: err}
	}

	cols, err := resolveColumns(header, schema)
	if err != nil {
		return nil, err
	}

	table := &Table{
		HasCost:     cols.cost >= 0,
		HasDuration: cols.duration >= 0,
	}

	line := 1
	for {
		line++
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &LoadError{Kind: KindBadRow, Line: line, Err: err}
		}

		rec, err := parseRecord(fields, cols, schema, line)
		if err != nil {
			return nil, err
		}
		table.Rows = append(table.Rows, rec)
	}

	return table, nil
}

// columnIndexes holds the resolved position of each logical column;
// -1 marks an absent optional column.
type columnIndexes struct {
	question int
	category int
	platform int
	model    int
	correct  int
	cost     int
	duration int
}

func resolveColumns(header []string, schema Schema) (columnIndexes, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if name == "" {
			return columnIndexes{}, &LoadError{Kind: KindBadHeader, Value: fmt.Sprintf("empty header at position %d", i+1)}
		}
		if _, dup := index[name]; dup {
			return columnIndexes{}, &LoadError{Kind: KindBadHeader, Column: name, Value: "duplicate header"}
		}
		index[name] = i
	}

	require := func(name string) (int, error) {
		if i, ok := index[name]; ok {
			return i, nil
		}
		return -1, &LoadError{Kind: KindMissingColumn, Column: name}
	}
	optional := func(name string) int {
		if name == "" {
			return -1
		}
		if i, ok := index[name]; ok {
			return i
		}
		return -1
	}

	var cols columnIndexes
	var err error
	if cols.question, err = require(schema.Question); err != nil {
		return columnIndexes{}, err
	}
	if cols.category, err = require(schema.Category); err != nil {
		return columnIndexes{}, err
	}
	if cols.model, err = require(schema.Model); err != nil {
		return columnIndexes{}, err
	}
	if cols.correct, err = require(schema.Correct); err != nil {
		return columnIndexes{}, err
	}

	cols.platform = -1
	for _, name := range schema.Platform {
		if i, ok := index[name]; ok {
			cols.platform = i
			break
		}
	}
	if cols.platform < 0 {
		return columnIndexes{}, &LoadError{Kind: KindMissingColumn, Column: strings.Join(schema.Platform, " or ")}
	}

	cols.cost = optional(schema.Cost)
	cols.duration = optional(schema.Duration)
	return cols, nil
}

func parseRecord(fields []string, cols columnIndexes, schema Schema, line int) (Record, error) {
	cell := func(i int) string {
		if i < 0 || i >= len(fields) {
			return ""
		}
		return strings.TrimSpace(fields[i])
	}

	correct, err := strconv.ParseBool(strings.ToLower(cell(cols.correct)))
	if err != nil {
		return Record{}, &LoadError{Kind: KindNonBooleanOutcome, Column: schema.Correct, Line: line, Value: cell(cols.correct)}
	}

	rec := Record{
		Question: cell(cols.question),
		Category: cell(cols.category),
		Platform: cell(cols.platform),
		Model:    cell(cols.model),
		Correct:  correct,
	}

	if rec.Cost, err = parseOptionalFloat(cell(cols.cost), schema.Cost, line); err != nil {
		return Record{}, err
	}
	if rec.Duration, err = parseOptionalFloat(cell(cols.duration), schema.Duration, line); err != nil {
		return Record{}, err
	}
	return rec, nil
}

func parseOptionalFloat(value, column string, line int) (*float64, error) {
	if value == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, &LoadError{Kind: KindBadRow, Column: column, Line: line, Value: value, Err: err}
	}
	if f < 0 {
		return nil, &LoadError{Kind: KindNegativeValue, Column: column, Line: line, Value: value}
	}
	return &f, nil
}

// Platforms returns the sorted distinct platform labels in the table.
func (t *Table) Platforms() []string {
	return t.distinct(func(r Record) string { return r.Platform })
}

// Models returns the sorted distinct model identifiers in the table.
func (t *Table) Models() []string {
	return t.distinct(func(r Record) string { return r.Model })
}

// Categories returns the sorted distinct raw category labels in the table.
func (t *Table) Categories() []string {
	return t.distinct(func(r Record) string { return r.Category })
}

func (t *Table) distinct(key func(Record) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range t.Rows {
		k := key(r)
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}
