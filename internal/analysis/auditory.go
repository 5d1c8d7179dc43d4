package analysis

import (
	"github.com/rizve/percepta/internal/dataset"
	"github.com/rizve/percepta/internal/scoring"
	"github.com/rizve/percepta/internal/tally"
)

// Auditory runs the auditory-survey analyses over one response table.
type Auditory struct {
	Key           scoring.CaseTable
	QualityColumn string
	NoiseColumn   string
}

// NewAuditory builds an Auditory analysis with the thesis defaults.
func NewAuditory() *Auditory {
	return &Auditory{
		Key:           DefaultAudioKey(),
		QualityColumn: AudioQualityColumn,
		NoiseColumn:   NoiseColumn,
	}
}

// DeviceBand classifies an audio-quality response into a device band.
// The numeric score is extracted from free text like "7/10"; responses
// with no digits are excluded, mirroring the original's NaN handling.
func DeviceBand(cell string) (string, bool) {
	score, ok := dataset.ExtractInt(cell)
	if !ok {
		return "", false
	}
	if score <= 6 {
		return BandBadDevice, true
	}
	return BandGoodDevice, true
}

// DeviceRow is one row of the device-quality split.
type DeviceRow struct {
	Band    string
	N       int
	Percent float64
}

// DeviceSplit buckets participants by reported audio-device quality.
// Percentages are of the banded sample, bad band first.
func (a *Auditory) DeviceSplit(t *dataset.Table) []DeviceRow {
	p := tally.PartitionBy(t, func(row dataset.Row) (string, bool) {
		cell, ok := row.Get(a.QualityColumn)
		if !ok {
			return "", false
		}
		return DeviceBand(cell)
	})

	total := 0
	for _, rows := range p.Groups {
		total += len(rows)
	}

	var out []DeviceRow
	for _, band := range []string{BandBadDevice, BandGoodDevice} {
		n := len(p.Groups[band])
		out = append(out, DeviceRow{Band: band, N: n, Percent: tally.Percent(n, total)})
	}
	return out
}

// AudioAccuracyRow is one row of the per-case accuracy table.
type AudioAccuracyRow struct {
	Case      string
	Condition string
	Correct   int
	Total     int
	Percent   float64
}

// CaseAccuracies computes accuracy per auditory case. Unlike the visual
// table the denominator is the responses present for that case, not the
// whole sample, matching the original script.
func (a *Auditory) CaseAccuracies(t *dataset.Table, order []string) []AudioAccuracyRow {
	var out []AudioAccuracyRow
	for _, c := range order {
		want, ok := a.Key[c]
		if !ok {
			continue
		}
		total := tally.CountPresent(t.Rows, c)
		correct := tally.CountEqual(t.Rows, c, want)
		out = append(out, AudioAccuracyRow{
			Case:      c,
			Condition: AudioCaseConditions[c],
			Correct:   correct,
			Total:     total,
			Percent:   tally.Percent(correct, total),
		})
	}
	return out
}

// NoiseLevels tallies the normalized noise-rating responses in scale
// order.
func (a *Auditory) NoiseLevels(t *dataset.Table) []tally.LabelCount {
	return tally.MappedCounts(t, a.NoiseColumn, NoiseMapping)
}
