package analysis

import (
	"testing"

	"github.com/rizve/percepta/internal/dataset"
	"github.com/rizve/percepta/internal/scoring"
)

// visualRow builds a participant row scoring exactly n plates correct,
// plus any extra cells.
func visualRow(n int, extra map[string]string) dataset.Row {
	key := DefaultVisualKey()
	row := dataset.Row{}
	for i, test := range key.Tests() {
		if i >= n {
			break
		}
		row[test] = key[test]
	}
	for k, v := range extra {
		row[k] = v
	}
	return row
}

func TestVisual_Classify(t *testing.T) {
	v := NewVisual()

	tests := []struct {
		correct   int
		wantScore int
		wantClass scoring.Classification
	}{
		{10, 10, scoring.NormalVision},
		{8, 8, scoring.NormalVision},
		{7, 7, scoring.LikelyColorBlind},
		{0, 0, scoring.LikelyColorBlind},
	}

	for _, tt := range tests {
		score, class := v.Classify(visualRow(tt.correct, nil))
		if score != tt.wantScore || class != tt.wantClass {
			t.Errorf("Classify(%d correct) = (%d, %q), want (%d, %q)",
				tt.correct, score, class, tt.wantScore, tt.wantClass)
		}
	}
}

func TestScoreDistribution(t *testing.T) {
	v := NewVisual()
	tbl := &dataset.Table{Rows: []dataset.Row{
		visualRow(10, nil),
		visualRow(10, nil),
		visualRow(7, nil),
		visualRow(3, nil),
	}}

	buckets := v.ScoreDistribution(tbl)

	if len(buckets) != 3 {
		t.Fatalf("got %d buckets, want 3", len(buckets))
	}
	// Ascending score order.
	if buckets[0].Score != 3 || buckets[1].Score != 7 || buckets[2].Score != 10 {
		t.Errorf("bucket order = %d, %d, %d; want 3, 7, 10",
			buckets[0].Score, buckets[1].Score, buckets[2].Score)
	}
	if buckets[2].N != 2 {
		t.Errorf("score 10 count = %d, want 2", buckets[2].N)
	}
	if buckets[0].Class != scoring.LikelyColorBlind || buckets[2].Class != scoring.NormalVision {
		t.Error("bucket classifications do not match the threshold split")
	}

	total := 0
	for _, b := range buckets {
		total += b.N
	}
	if total != tbl.Len() {
		t.Errorf("bucket counts sum to %d, want %d", total, tbl.Len())
	}
}

func TestClassCounts(t *testing.T) {
	v := NewVisual()
	tbl := &dataset.Table{Rows: []dataset.Row{
		visualRow(10, nil),
		visualRow(9, nil),
		visualRow(2, nil),
	}}

	counts := v.ClassCounts(tbl)

	if counts[0].Class != scoring.NormalVision || counts[0].N != 2 {
		t.Errorf("counts[0] = %+v, want Normal Vision 2", counts[0])
	}
	if counts[1].Class != scoring.LikelyColorBlind || counts[1].N != 1 {
		t.Errorf("counts[1] = %+v, want Likely Color Blind 1", counts[1])
	}
}

func TestCaseOptionCounts(t *testing.T) {
	v := NewVisual()
	tbl := &dataset.Table{Rows: []dataset.Row{
		visualRow(10, map[string]string{"Case 1": "A"}),
		visualRow(10, map[string]string{"Case 1": "B"}),
		visualRow(2, map[string]string{"Case 1": "a"}), // folds to A
	}}

	rows := v.CaseOptionCounts(tbl, []string{"Case 1"})

	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	// Normal Vision first within each case.
	if rows[0].Group != scoring.NormalVision || rows[0].OptionA != 1 || rows[0].OptionB != 1 {
		t.Errorf("rows[0] = %+v, want NV A=1 B=1", rows[0])
	}
	if rows[1].Group != scoring.LikelyColorBlind || rows[1].OptionA != 1 || rows[1].OptionB != 0 {
		t.Errorf("rows[1] = %+v, want LCB A=1 B=0", rows[1])
	}
}

func TestCaseAccuracies(t *testing.T) {
	v := NewVisual()
	// Two NV rows: one answers Case 7 correctly, one skips it. One LCB
	// row answers wrong.
	tbl := &dataset.Table{Rows: []dataset.Row{
		visualRow(10, map[string]string{"Case 7": "A"}),
		visualRow(10, nil),
		visualRow(2, map[string]string{"Case 7": "B"}),
	}}

	rows := v.CaseAccuracies(tbl, []string{"Case 7"})

	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	// Likely Color Blind first.
	if rows[0].Group != scoring.LikelyColorBlind {
		t.Errorf("rows[0].Group = %q, want Likely Color Blind", rows[0].Group)
	}
	if rows[0].Correct != 0 || rows[0].Total != 1 || rows[0].Percent != 0 {
		t.Errorf("LCB row = %+v, want 0/1 0%%", rows[0])
	}
	// Denominator is the whole subset, not just respondents.
	if rows[1].Correct != 1 || rows[1].Total != 2 || rows[1].Percent != 50.0 {
		t.Errorf("NV row = %+v, want 1/2 50%%", rows[1])
	}
}

func TestCaseAccuracies_EmptyGroup(t *testing.T) {
	v := NewVisual()
	tbl := &dataset.Table{Rows: []dataset.Row{
		visualRow(10, map[string]string{"Case 7": "A"}),
	}}

	rows := v.CaseAccuracies(tbl, []string{"Case 7"})

	// Empty subset yields zero percent, not an error.
	if rows[0].Total != 0 || rows[0].Percent != 0 {
		t.Errorf("empty LCB group = %+v, want 0/0 0%%", rows[0])
	}
}

func TestCaseAccuracies_UnknownCaseSkipped(t *testing.T) {
	v := NewVisual()
	tbl := &dataset.Table{Rows: []dataset.Row{visualRow(10, nil)}}

	rows := v.CaseAccuracies(tbl, []string{"Case 99"})
	if len(rows) != 0 {
		t.Errorf("got %d rows for unknown case, want 0", len(rows))
	}
}

func TestDifficultyByGroup(t *testing.T) {
	v := NewVisual()
	tbl := &dataset.Table{Rows: []dataset.Row{
		visualRow(10, map[string]string{DifficultyColumn: "2"}),
		visualRow(10, map[string]string{DifficultyColumn: "3"}),
		visualRow(2, map[string]string{DifficultyColumn: "8"}),
		visualRow(2, map[string]string{DifficultyColumn: "very hard"}), // skipped from mean
	}}

	rows := v.DifficultyByGroup(tbl, DifficultyColumn)

	if rows[0].Group != scoring.LikelyColorBlind {
		t.Fatalf("rows[0].Group = %q, want Likely Color Blind", rows[0].Group)
	}
	if rows[0].Participants != 2 || rows[0].Rated != 1 || rows[0].AvgDifficulty != 8.0 {
		t.Errorf("LCB row = %+v, want 2 participants, 1 rated, avg 8", rows[0])
	}
	if rows[1].Participants != 2 || rows[1].AvgDifficulty != 2.5 {
		t.Errorf("NV row = %+v, want 2 participants, avg 2.5", rows[1])
	}
}
