package tally

import (
	"testing"

	"github.com/rizve/percepta/internal/dataset"
)

func tableOf(rows ...dataset.Row) *dataset.Table {
	return &dataset.Table{Rows: rows}
}

func TestPartitionBy(t *testing.T) {
	tbl := tableOf(
		dataset.Row{"g": "a"},
		dataset.Row{"g": "b"},
		dataset.Row{"g": "a"},
		dataset.Row{}, // excluded
	)

	p := PartitionBy(tbl, func(row dataset.Row) (string, bool) {
		return row.Get("g")
	})

	if len(p.Order) != 2 || p.Order[0] != "a" || p.Order[1] != "b" {
		t.Errorf("Order = %v, want [a b]", p.Order)
	}
	if len(p.Groups["a"]) != 2 {
		t.Errorf("group a has %d rows, want 2", len(p.Groups["a"]))
	}
	if len(p.Groups["b"]) != 1 {
		t.Errorf("group b has %d rows, want 1", len(p.Groups["b"]))
	}
}

func TestCountEqual(t *testing.T) {
	rows := []dataset.Row{
		{"Case 7": "A"},
		{"Case 7": "a"},   // case-folded match
		{"Case 7": " A "}, // trimmed match
		{"Case 7": "B"},
		{}, // missing never matches
	}

	if got := CountEqual(rows, "Case 7", "A"); got != 3 {
		t.Errorf("CountEqual = %d, want 3", got)
	}
	if got := CountEqual(rows, "Case 7", "b"); got != 1 {
		t.Errorf("CountEqual(b) = %d, want 1", got)
	}
	if got := CountEqual(nil, "Case 7", "A"); got != 0 {
		t.Errorf("CountEqual(nil) = %d, want 0", got)
	}
}

func TestCountPresent(t *testing.T) {
	rows := []dataset.Row{
		{"Case1": "A"},
		{"Case1": "  "}, // blank counts as absent
		{},
		{"Case1": "B"},
	}
	if got := CountPresent(rows, "Case1"); got != 2 {
		t.Errorf("CountPresent = %d, want 2", got)
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		count, total int
		want         float64
	}{
		{4, 10, 40.0},
		{1, 3, 33.3},
		{2, 3, 66.7},
		{0, 5, 0},
		{3, 0, 0}, // empty denominator resolves to 0
		{5, 5, 100},
	}

	for _, tt := range tests {
		got := Percent(tt.count, tt.total)
		if got != tt.want {
			t.Errorf("Percent(%d, %d) = %v, want %v", tt.count, tt.total, got, tt.want)
		}
	}
}

func TestRounding(t *testing.T) {
	if got := Round1(33.349); got != 33.3 {
		t.Errorf("Round1 = %v, want 33.3", got)
	}
	if got := Round1(33.35); got != 33.4 {
		t.Errorf("Round1 = %v, want 33.4", got)
	}
	if got := Round2(7.005); got != 7.01 {
		t.Errorf("Round2 = %v, want 7.01", got)
	}
}

func TestMean(t *testing.T) {
	rows := []dataset.Row{
		{"d": "8"},
		{"d": "x"}, // skipped
		{"d": "6"},
		{}, // missing, skipped
	}

	mean, n := Mean(rows, "d")
	if mean != 7.0 || n != 2 {
		t.Errorf("Mean = (%v, %d), want (7, 2)", mean, n)
	}

	mean, n = Mean(nil, "d")
	if mean != 0 || n != 0 {
		t.Errorf("Mean(nil) = (%v, %d), want (0, 0)", mean, n)
	}
}

func TestMappedCounts(t *testing.T) {
	mapping := map[string]string{
		"😃\nNo Noise": "1 = No Noise",
		"😃\nNo noise": "1 = No Noise",
		"😠\nIntrusive": "5 = Intrusive",
	}
	tbl := tableOf(
		dataset.Row{"noise": "😃\nNo Noise"},
		dataset.Row{"noise": "😃\nNo noise"}, // spelling variant, same label
		dataset.Row{"noise": "😠\nIntrusive"},
		dataset.Row{"noise": "something else"}, // unmapped, dropped
		dataset.Row{},
	)

	got := MappedCounts(tbl, "noise", mapping)
	if len(got) != 2 {
		t.Fatalf("got %d labels, want 2", len(got))
	}
	if got[0].Label != "1 = No Noise" || got[0].Count != 2 {
		t.Errorf("got[0] = %+v, want {1 = No Noise 2}", got[0])
	}
	if got[1].Label != "5 = Intrusive" || got[1].Count != 1 {
		t.Errorf("got[1] = %+v, want {5 = Intrusive 1}", got[1])
	}
}
