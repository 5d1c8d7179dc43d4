// Package analysis wires the dataset, scoring, and tally layers into
// the fixed set of survey tables the thesis reports: Ishihara score
// distributions, per-case cross-tabs and accuracy, difficulty averages,
// and the auditory device/accuracy/noise summaries.
package analysis

import "github.com/rizve/percepta/internal/scoring"

// DefaultVisualKey is the correct answer for each of the ten Ishihara
// plates, keyed by spreadsheet column.
func DefaultVisualKey() scoring.AnswerKey {
	return scoring.AnswerKey{
		"test1":  "74",
		"test2":  "6",
		"test3":  "16",
		"test4":  "2",
		"test5":  "7",
		"test6":  "29",
		"test7":  "5",
		"test8":  "45",
		"test9":  "8",
		"test10": "97",
	}
}

// VisualCaseColumns are the interface test cases cross-tabbed by
// chosen option (no single correct answer, both options counted).
var VisualCaseColumns = []string{"Case 1", "Case 2", "Case 3", "Case 4", "Case 5"}

// VisualCorrectOrder fixes the row order of the case-accuracy table,
// matching the thesis presentation (Case 7 → 8 → 10 → 11).
var VisualCorrectOrder = []string{"Case 7", "Case 8", "Case 10", "Case 11"}

// DefaultVisualCases is the correct option per color-dependent case.
func DefaultVisualCases() scoring.CaseTable {
	return scoring.CaseTable{
		"Case 7":  "A",
		"Case 8":  "B",
		"Case 10": "A",
		"Case 11": "B",
	}
}

// DifficultyColumn is the 1–10 difficulty rating question, verbatim
// from the survey form.
const DifficultyColumn = "How difficult it was on a scale of 10?"

// AudioQualityColumn holds responses like "7/10"; the numeric score is
// extracted from the text.
const AudioQualityColumn = "Rate the audio quality from 1 (very poor) to 10 (excellent)"

// Device quality bands derived from the extracted audio score.
const (
	BandBadDevice  = "Bad Audio Device (1–6)"
	BandGoodDevice = "Good Audio Device (7–10)"
)

// AudioCaseOrder fixes the auditory accuracy table's row order.
var AudioCaseOrder = []string{"Case1", "Case2", "Case3", "Case4", "Case5", "Case6", "Case7"}

// DefaultAudioKey is the correct option per auditory case.
func DefaultAudioKey() scoring.CaseTable {
	return scoring.CaseTable{
		"Case1": "A",
		"Case2": "B",
		"Case3": "A",
		"Case4": "B",
		"Case5": "B",
		"Case6": "A",
		"Case7": "A",
	}
}

// AudioCaseConditions labels each auditory case with its playback
// condition.
var AudioCaseConditions = map[string]string{
	"Case1": "Normal",
	"Case2": "Normal",
	"Case3": "Distorted",
	"Case4": "Distorted",
	"Case5": "Noisy",
	"Case6": "Noisy",
	"Case7": "Normal",
}

// NoiseColumn holds the emoji noise-rating responses.
const NoiseColumn = "noiseEmojiRating"

// NoiseMapping collapses the emoji responses (including their spelling
// variants) onto the canonical five-point scale.
var NoiseMapping = map[string]string{
	"😃\nNo Noise":            "1 = No Noise",
	"😃\nNo noise":            "1 = No Noise",
	"🙂\nNot Noticeable":      "2 = Not Noticeable",
	"😐\nLittle noticeable":   "3 = Slightly Noticeable",
	"😐\nSlightly noticeable": "3 = Slightly Noticeable",
	"😞\nNoticeable":          "4 = Noticeable",
	"😠\nIntrusive":           "5 = Intrusive",
}
