package scoring

import (
	"testing"

	"github.com/rizve/percepta/internal/dataset"
)

func TestScore(t *testing.T) {
	key := AnswerKey{"test1": "74", "test2": "6"}

	tests := []struct {
		name string
		row  dataset.Row
		want int
	}{
		{"all correct", dataset.Row{"test1": "74", "test2": "6"}, 2},
		{"one wrong", dataset.Row{"test1": "74", "test2": "7"}, 1},
		{"whitespace still matches", dataset.Row{"test1": " 74 ", "test2": "6"}, 2},
		{"missing cell never matches", dataset.Row{"test1": "74"}, 1},
		{"empty row", dataset.Row{}, 0},
		{"extra columns ignored", dataset.Row{"test1": "74", "test2": "6", "name": "alice"}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.row, key)
			if got != tt.want {
				t.Errorf("Score() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestScore_Bounds(t *testing.T) {
	key := AnswerKey{"a": "1", "b": "2", "c": "3"}
	row := dataset.Row{"a": "1", "b": "2", "c": "3"}

	if got := Score(row, key); got != len(key) {
		t.Errorf("full match score = %d, want %d", got, len(key))
	}
	if got := Score(dataset.Row{}, key); got != 0 {
		t.Errorf("empty row score = %d, want 0", got)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		score int
		want  Classification
	}{
		{0, LikelyColorBlind},
		{5, LikelyColorBlind},
		{7, LikelyColorBlind},
		{8, NormalVision},
		{9, NormalVision},
		{10, NormalVision},
	}

	for _, tt := range tests {
		got := Classify(tt.score, DefaultThreshold)
		if got != tt.want {
			t.Errorf("Classify(%d, %d) = %q, want %q", tt.score, DefaultThreshold, got, tt.want)
		}
	}
}

func TestClassification_Code(t *testing.T) {
	if got := LikelyColorBlind.Code(); got != "LCB" {
		t.Errorf("LikelyColorBlind.Code() = %q, want LCB", got)
	}
	if got := NormalVision.Code(); got != "NV" {
		t.Errorf("NormalVision.Code() = %q, want NV", got)
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize("  74 "); got != "74" {
		t.Errorf("Normalize = %q, want 74", got)
	}
	// Case stays significant for plate answers.
	if Normalize("a") == Normalize("A") {
		t.Error("Normalize should not case-fold")
	}
	if got := NormalizeUpper(" a "); got != "A" {
		t.Errorf("NormalizeUpper = %q, want A", got)
	}
}

func TestAnswerKey_Tests(t *testing.T) {
	key := AnswerKey{"test2": "6", "test1": "74", "test10": "97"}
	got := key.Tests()
	want := []string{"test1", "test10", "test2"}
	if len(got) != len(want) {
		t.Fatalf("Tests() returned %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Tests()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
