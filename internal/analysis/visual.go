package analysis

import (
	"sort"

	"github.com/rizve/percepta/internal/dataset"
	"github.com/rizve/percepta/internal/scoring"
	"github.com/rizve/percepta/internal/tally"
)

// Visual runs the Ishihara analyses over one response table.
type Visual struct {
	Key       scoring.AnswerKey
	Cases     scoring.CaseTable
	Threshold int
}

// NewVisual builds a Visual analysis with the thesis defaults.
func NewVisual() *Visual {
	return &Visual{
		Key:       DefaultVisualKey(),
		Cases:     DefaultVisualCases(),
		Threshold: scoring.DefaultThreshold,
	}
}

// Classify scores one row against the plate key and classifies it.
func (v *Visual) Classify(row dataset.Row) (int, scoring.Classification) {
	score := scoring.Score(row, v.Key)
	return score, scoring.Classify(score, v.Threshold)
}

// groupFunc partitions rows by classification label.
func (v *Visual) groupFunc(row dataset.Row) (string, bool) {
	_, class := v.Classify(row)
	return string(class), true
}

// ScoreBucket is one row of the score-distribution table.
type ScoreBucket struct {
	Score int
	N     int
	Class scoring.Classification
}

// ScoreDistribution tallies how many participants achieved each score,
// in ascending score order. The caller appends the Total row; the sum
// of N always equals t.Len() since every row scores.
func (v *Visual) ScoreDistribution(t *dataset.Table) []ScoreBucket {
	counts := map[int]int{}
	for _, row := range t.Rows {
		score, _ := v.Classify(row)
		counts[score]++
	}

	scores := make([]int, 0, len(counts))
	for s := range counts {
		scores = append(scores, s)
	}
	sort.Ints(scores)

	buckets := make([]ScoreBucket, 0, len(scores))
	for _, s := range scores {
		buckets = append(buckets, ScoreBucket{
			Score: s,
			N:     counts[s],
			Class: scoring.Classify(s, v.Threshold),
		})
	}
	return buckets
}

// ClassCount is one slice of the classification breakdown.
type ClassCount struct {
	Class scoring.Classification
	N     int
}

// ClassCounts tallies participants per classification, NormalVision
// first.
func (v *Visual) ClassCounts(t *dataset.Table) []ClassCount {
	p := tally.PartitionBy(t, v.groupFunc)
	return []ClassCount{
		{Class: scoring.NormalVision, N: len(p.Groups[string(scoring.NormalVision)])},
		{Class: scoring.LikelyColorBlind, N: len(p.Groups[string(scoring.LikelyColorBlind)])},
	}
}

// CaseOptionRow is one row of the option cross-tab: how many
// participants in a group picked option A versus option B for a case.
type CaseOptionRow struct {
	Case    string
	Group   scoring.Classification
	OptionA int
	OptionB int
}

// CaseOptionCounts cross-tabulates option choices for the interface
// cases, NormalVision first within each case as in the thesis table.
func (v *Visual) CaseOptionCounts(t *dataset.Table, cases []string) []CaseOptionRow {
	p := tally.PartitionBy(t, v.groupFunc)

	var out []CaseOptionRow
	for _, c := range cases {
		for _, group := range []scoring.Classification{scoring.NormalVision, scoring.LikelyColorBlind} {
			rows := p.Groups[string(group)]
			out = append(out, CaseOptionRow{
				Case:    c,
				Group:   group,
				OptionA: tally.CountEqual(rows, c, "A"),
				OptionB: tally.CountEqual(rows, c, "B"),
			})
		}
	}
	return out
}

// CaseAccuracyRow is one row of the percent-correct table.
type CaseAccuracyRow struct {
	Case    string
	Group   scoring.Classification
	Correct int
	Total   int
	Percent float64
	Reason  string // optional LLM annotation
}

// CaseAccuracies computes percent correct per case and group for the
// color-dependent cases. Percentages are over the whole subset (not
// just respondents), rounded to one decimal; an empty subset yields 0.
func (v *Visual) CaseAccuracies(t *dataset.Table, order []string) []CaseAccuracyRow {
	p := tally.PartitionBy(t, v.groupFunc)

	var out []CaseAccuracyRow
	for _, c := range order {
		want, ok := v.Cases[c]
		if !ok {
			continue
		}
		for _, group := range []scoring.Classification{scoring.LikelyColorBlind, scoring.NormalVision} {
			rows := p.Groups[string(group)]
			correct := tally.CountEqual(rows, c, want)
			out = append(out, CaseAccuracyRow{
				Case:    c,
				Group:   group,
				Correct: correct,
				Total:   len(rows),
				Percent: tally.Percent(correct, len(rows)),
			})
		}
	}
	return out
}

// DifficultyRow summarizes the difficulty ratings of one group.
type DifficultyRow struct {
	Group         scoring.Classification
	Participants  int
	AvgDifficulty float64
	Rated         int // rows whose rating parsed as a number
}

// DifficultyByGroup averages the 1–10 difficulty rating per
// classification. Non-numeric ratings are skipped from the mean;
// averages round to two decimals.
func (v *Visual) DifficultyByGroup(t *dataset.Table, column string) []DifficultyRow {
	p := tally.PartitionBy(t, v.groupFunc)

	var out []DifficultyRow
	for _, group := range []scoring.Classification{scoring.LikelyColorBlind, scoring.NormalVision} {
		rows := p.Groups[string(group)]
		mean, n := tally.Mean(rows, column)
		out = append(out, DifficultyRow{
			Group:         group,
			Participants:  len(rows),
			AvgDifficulty: tally.Round2(mean),
			Rated:         n,
		})
	}
	return out
}
