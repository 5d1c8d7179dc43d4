package scoring

import (
	"sort"

	"github.com/rizve/percepta/internal/dataset"
)

// AnswerKey maps a test column to its expected answer, string-normalized.
type AnswerKey map[string]string

// Tests returns the key's test columns in sorted order, so scoring and
// table output are deterministic regardless of map iteration.
func (k AnswerKey) Tests() []string {
	tests := make([]string, 0, len(k))
	for t := range k {
		tests = append(tests, t)
	}
	sort.Strings(tests)
	return tests
}

// Score counts exact matches between a participant row and the key.
// Cells are normalized before comparison; a missing cell never matches.
// The result is always in [0, len(key)].
func Score(row dataset.Row, key AnswerKey) int {
	score := 0
	for test, want := range key {
		cell, ok := row.Get(test)
		if !ok {
			continue
		}
		if Normalize(cell) == Normalize(want) {
			score++
		}
	}
	return score
}

// CaseTable maps a case column to its correct option letter, used for
// the per-case correctness passes.
type CaseTable map[string]string
