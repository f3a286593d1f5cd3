// internal/analysis/questions.go
package analysis

import (
	"sort"
	"strconv"

	"github.com/hawaiilawtech/mbebench/internal/dataset"
)

// OutcomeCorrect and OutcomeIncorrect are the labels shown in the
// question-by-model pivot.
const (
	OutcomeCorrect   = "Correct"
	OutcomeIncorrect = "Incorrect"
)

// QuestionRow summarizes how the selected models fared on one question.
// Outcomes maps each model that attempted the question to an outcome label.
type QuestionRow struct {
	Question     string
	Category     string
	TotalCorrect int
	TotalModels  int
	Percentage   float64
	Outcomes     map[string]string
}

// PerQuestion computes, for every question in the working set, how many of
// the attempting models answered it correctly. Questions nobody attempted
// are absent rather than divided by zero. Sorted by percentage descending,
// ties broken by question identifier ascending (numeric when both parse).
func PerQuestion(t *dataset.Table) []QuestionRow {
	type acc struct {
		category string
		outcomes map[string]string
	}
	byQuestion := make(map[string]*acc)
	for _, r := range t.Rows {
		a, ok := byQuestion[r.Question]
		if !ok {
			a = &acc{
				category: r.Category,
				outcomes: make(map[string]string),
			}
			byQuestion[r.Question] = a
		}
		// A model with any correct attempt on a question counts as correct.
		if r.Correct {
			a.outcomes[r.Model] = OutcomeCorrect
		} else if a.outcomes[r.Model] != OutcomeCorrect {
			a.outcomes[r.Model] = OutcomeIncorrect
		}
	}

	rows := make([]QuestionRow, 0, len(byQuestion))
	for q, a := range byQuestion {
		correct := 0
		for _, outcome := range a.outcomes {
			if outcome == OutcomeCorrect {
				correct++
			}
		}
		rows = append(rows, QuestionRow{
			Question:     q,
			Category:     a.category,
			TotalCorrect: correct,
			TotalModels:  len(a.outcomes),
			Percentage:   100 * float64(correct) / float64(len(a.outcomes)),
			Outcomes:     a.outcomes,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Percentage != rows[j].Percentage {
			return rows[i].Percentage > rows[j].Percentage
		}
		return lessQuestion(rows[i].Question, rows[j].Question)
	})
	return rows
}

// Easiest returns the five questions most models answered correctly,
// in descending percentage order.
func Easiest(rows []QuestionRow) []QuestionRow {
	n := 5
	if len(rows) < n {
		n = len(rows)
	}
	out := make([]QuestionRow, n)
	copy(out, rows[:n])
	return out
}

// Hardest returns the five questions fewest models answered correctly,
// re-sorted ascending so the hardest comes first.
func Hardest(rows []QuestionRow) []QuestionRow {
	n := 5
	if len(rows) < n {
		n = len(rows)
	}
	out := make([]QuestionRow, n)
	copy(out, rows[len(rows)-n:])
	sort.Slice(out, func(i, j int) bool {
		if out[i].Percentage != out[j].Percentage {
			return out[i].Percentage < out[j].Percentage
		}
		return lessQuestion(out[i].Question, out[j].Question)
	})
	return out
}

// lessQuestion orders question identifiers numerically when both parse as
// integers, lexically otherwise.
func lessQuestion(a, b string) bool {
	ai, aerr := strconv.Atoi(a)
	bi, berr := strconv.Atoi(b)
	if aerr == nil && berr == nil {
		return ai < bi
	}
	return a < b
}
