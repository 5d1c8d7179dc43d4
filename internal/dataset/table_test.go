package dataset

import "testing"

func TestFromRecords(t *testing.T) {
	header := []string{"name", "test1", "test2"}
	records := [][]string{
		{"alice", "74", "6"},
		{"bob", "", "7"},
		{"carol", "74"}, // short record, trailing cell missing
	}

	tbl := FromRecords(header, records)

	if tbl.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", tbl.Len())
	}
	if !tbl.HasColumn("test2") {
		t.Error("expected column test2")
	}
	if tbl.HasColumn("test3") {
		t.Error("unexpected column test3")
	}

	if v, ok := tbl.Rows[0].Get("test1"); !ok || v != "74" {
		t.Errorf("row 0 test1 = (%q, %v), want (74, true)", v, ok)
	}
	if _, ok := tbl.Rows[1].Get("test1"); ok {
		t.Error("empty cell should read as missing")
	}
	if _, ok := tbl.Rows[2].Get("test2"); ok {
		t.Error("short record's trailing cell should read as missing")
	}
}

func TestRowGet_BlankIsMissing(t *testing.T) {
	row := Row{"a": "  ", "b": "\t\n", "c": "x"}

	if _, ok := row.Get("a"); ok {
		t.Error("whitespace-only cell should be missing")
	}
	if _, ok := row.Get("b"); ok {
		t.Error("tab/newline cell should be missing")
	}
	if v, ok := row.Get("c"); !ok || v != "x" {
		t.Errorf("Get(c) = (%q, %v), want (x, true)", v, ok)
	}
	if _, ok := row.Get("absent"); ok {
		t.Error("absent key should be missing")
	}
}

func TestFloat(t *testing.T) {
	tests := []struct {
		cell   string
		want   float64
		wantOK bool
	}{
		{"8", 8, true},
		{" 7.5 ", 7.5, true},
		{"", 0, false},
		{"n/a", 0, false},
		{"ten", 0, false},
	}

	for _, tt := range tests {
		got, ok := Float(tt.cell)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("Float(%q) = (%v, %v), want (%v, %v)", tt.cell, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestExtractInt(t *testing.T) {
	tests := []struct {
		cell   string
		want   int
		wantOK bool
	}{
		{"7/10", 7, true},
		{"8 out of 10", 8, true},
		{"10", 10, true},
		{"score: 6!", 6, true},
		{"😃 5", 5, true},
		{"no digits", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := ExtractInt(tt.cell)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ExtractInt(%q) = (%d, %v), want (%d, %v)", tt.cell, got, ok, tt.want, tt.wantOK)
		}
	}
}
