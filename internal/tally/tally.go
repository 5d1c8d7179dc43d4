// Package tally implements the grouped counting primitives behind every
// analysis table: partition rows by a derived group, count normalized
// matches, and turn counts into percentages with the survey scripts'
// rounding and empty-subset rules.
package tally

import (
	"math"

	"github.com/rizve/percepta/internal/dataset"
	"github.com/rizve/percepta/internal/scoring"
)

// GroupFunc derives a group label for a row. Returning ("", false)
// excludes the row from every subset.
type GroupFunc func(row dataset.Row) (string, bool)

// Partition splits rows into named subsets. Subset order is the order
// of first appearance so output stays stable across runs.
type Partition struct {
	Order  []string
	Groups map[string][]dataset.Row
}

// PartitionBy groups the table's rows with fn.
func PartitionBy(t *dataset.Table, fn GroupFunc) *Partition {
	p := &Partition{Groups: map[string][]dataset.Row{}}
	for _, row := range t.Rows {
		g, ok := fn(row)
		if !ok {
			continue
		}
		if _, seen := p.Groups[g]; !seen {
			p.Order = append(p.Order, g)
		}
		p.Groups[g] = append(p.Groups[g], row)
	}
	return p
}

// CountEqual counts rows whose cell in column equals want after
// trim+uppercase normalization. Missing cells never match.
func CountEqual(rows []dataset.Row, column, want string) int {
	n := 0
	target := scoring.NormalizeUpper(want)
	for _, row := range rows {
		cell, ok := row.Get(column)
		if !ok {
			continue
		}
		if scoring.NormalizeUpper(cell) == target {
			n++
		}
	}
	return n
}

// CountPresent counts rows that have any value in column.
func CountPresent(rows []dataset.Row, column string) int {
	n := 0
	for _, row := range rows {
		if _, ok := row.Get(column); ok {
			n++
		}
	}
	return n
}

// Percent converts a count over a denominator into a percentage rounded
// to one decimal place. An empty denominator resolves to 0, not an error.
func Percent(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return Round1(float64(count) / float64(total) * 100)
}

// Round1 rounds to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Round2 rounds to two decimal places, used for rating averages.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Mean averages the numeric values of column across rows, skipping
// cells that do not parse as numbers. Returns (0, 0) when nothing
// parses.
func Mean(rows []dataset.Row, column string) (mean float64, n int) {
	sum := 0.0
	for _, row := range rows {
		cell, ok := row.Get(column)
		if !ok {
			continue
		}
		v, ok := dataset.Float(cell)
		if !ok {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return 0, 0
	}
	return sum / float64(n), n
}
