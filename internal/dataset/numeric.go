package dataset

import (
	"strconv"
	"strings"
)

// Float parses a cell as a number. Returns (0, false) for missing or
// non-numeric cells so callers can skip them, matching how the source
// surveys tolerate free-text answers in numeric columns.
func Float(cell string) (float64, bool) {
	s := strings.TrimSpace(cell)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ExtractInt pulls the first run of digits out of a cell, for responses
// like "7/10" or "8 out of 10". Returns (0, false) when the cell has no
// digits at all.
func ExtractInt(cell string) (int, bool) {
	start := -1
	for i, r := range cell {
		if r >= '0' && r <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			v, _ := strconv.Atoi(cell[start:i])
			return v, true
		}
	}
	if start >= 0 {
		v, _ := strconv.Atoi(cell[start:])
		return v, true
	}
	return 0, false
}
