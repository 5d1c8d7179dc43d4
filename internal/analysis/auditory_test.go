package analysis

import (
	"testing"

	"github.com/rizve/percepta/internal/dataset"
)

func TestDeviceBand(t *testing.T) {
	tests := []struct {
		cell   string
		want   string
		wantOK bool
	}{
		{"6", BandBadDevice, true},
		{"7", BandGoodDevice, true},
		{"1", BandBadDevice, true},
		{"10", BandGoodDevice, true},
		{"7/10", BandGoodDevice, true},
		{"4 out of 10", BandBadDevice, true},
		{"no idea", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := DeviceBand(tt.cell)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("DeviceBand(%q) = (%q, %v), want (%q, %v)", tt.cell, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestDeviceSplit(t *testing.T) {
	a := NewAuditory()
	tbl := &dataset.Table{Rows: []dataset.Row{
		{AudioQualityColumn: "8/10"},
		{AudioQualityColumn: "9"},
		{AudioQualityColumn: "3"},
		{AudioQualityColumn: "fine I guess"}, // no digits, excluded
		{},
	}}

	rows := a.DeviceSplit(tbl)

	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	// Bad band first; percentages over the banded sample of 3.
	if rows[0].Band != BandBadDevice || rows[0].N != 1 || rows[0].Percent != 33.3 {
		t.Errorf("rows[0] = %+v, want bad band 1 (33.3%%)", rows[0])
	}
	if rows[1].Band != BandGoodDevice || rows[1].N != 2 || rows[1].Percent != 66.7 {
		t.Errorf("rows[1] = %+v, want good band 2 (66.7%%)", rows[1])
	}
}

func TestAuditoryCaseAccuracies(t *testing.T) {
	a := NewAuditory()
	tbl := &dataset.Table{Rows: []dataset.Row{
		{"Case1": "A", "Case3": "B"},
		{"Case1": "a"}, // folds to correct
		{"Case1": "B"},
		{}, // no responses at all
	}}

	rows := a.CaseAccuracies(tbl, []string{"Case1", "Case3"})

	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	// Denominator is responses present for the case, not the sample.
	if rows[0].Correct != 2 || rows[0].Total != 3 || rows[0].Percent != 66.7 {
		t.Errorf("Case1 = %+v, want 2/3 66.7%%", rows[0])
	}
	if rows[0].Condition != "Normal" {
		t.Errorf("Case1 condition = %q, want Normal", rows[0].Condition)
	}
	if rows[1].Correct != 0 || rows[1].Total != 1 || rows[1].Condition != "Distorted" {
		t.Errorf("Case3 = %+v, want 0/1 Distorted", rows[1])
	}
}

func TestNoiseLevels(t *testing.T) {
	a := NewAuditory()
	tbl := &dataset.Table{Rows: []dataset.Row{
		{NoiseColumn: "😃\nNo Noise"},
		{NoiseColumn: "😃\nNo noise"}, // spelling variant
		{NoiseColumn: "😠\nIntrusive"},
		{NoiseColumn: "whatever"}, // unmapped, dropped
	}}

	got := a.NoiseLevels(tbl)

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
