package report

import (
	"strings"
	"testing"
)

func TestTable_Render(t *testing.T) {
	tbl := Table{
		Title:   "Scores",
		Columns: []string{"Score", "N"},
	}
	tbl.AddRow("7", "3")
	tbl.AddRow("10", "12")

	out := tbl.Render()

	for _, want := range []string{"Scores", "Score", "7", "12"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	// Deterministic output.
	if out != tbl.Render() {
		t.Error("Render is not deterministic")
	}
}

func TestTable_RenderNote(t *testing.T) {
	tbl := Table{
		Columns: []string{"A"},
		Note:    "footnote",
	}
	tbl.AddRow("x")

	if out := tbl.Render(); !strings.Contains(out, "footnote") {
		t.Errorf("output missing note:\n%s", out)
	}
}

func TestTable_AlignmentWithEmoji(t *testing.T) {
	tbl := Table{Columns: []string{"Label", "N"}}
	tbl.AddRow("😃 No Noise", "2")
	tbl.AddRow("plain", "1")

	out := tbl.Render()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) < 4 {
		t.Fatalf("unexpected line count: %d", len(lines))
	}
	// Rows never carry trailing padding.
	for _, line := range lines {
		if strings.HasSuffix(line, " ") {
			t.Errorf("line has trailing spaces: %q", line)
		}
	}
}

func TestPct(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{40, "40.0%"},
		{66.7, "66.7%"},
		{0, "0.0%"},
		{100, "100.0%"},
	}

	for _, tt := range tests {
		if got := Pct(tt.v); got != tt.want {
			t.Errorf("Pct(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}
