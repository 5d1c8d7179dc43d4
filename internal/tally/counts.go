package tally

import (
	"sort"
	"strings"

	"github.com/rizve/percepta/internal/dataset"
)

// LabelCount is one row of a value-count table.
type LabelCount struct {
	Label string
	Count int
}

// MappedCounts tallies column values after mapping each raw response to
// a canonical label. Unmapped responses are dropped, matching how the
// noise-rating script ignores answers outside its scale. Results sort
// by label so the 1..5 scale prints in order.
func MappedCounts(t *dataset.Table, column string, mapping map[string]string) []LabelCount {
	counts := map[string]int{}
	for _, row := range t.Rows {
		cell, ok := row.Get(column)
		if !ok {
			continue
		}
		label, ok := mapping[strings.TrimSpace(cell)]
		if !ok {
			continue
		}
		counts[label]++
	}

	labels := make([]string, 0, len(counts))
	for l := range counts {
		labels = append(labels, l)
	}
	sort.Strings(labels)

	out := make([]LabelCount, 0, len(labels))
	for _, l := range labels {
		out = append(out, LabelCount{Label: l, Count: counts[l]})
	}
	return out
}
