// Package report renders analysis tables for the terminal: a styled
// title, aligned columns, and an optional footnote. Rendering is pure
// string building so the same inputs always produce the same output.
package report

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Table is a printable analysis table.
type Table struct {
	Title   string
	Columns []string
	Rows    [][]string
	Note    string
}

// AddRow appends one row. Values are formatted by the caller; Render
// only aligns them.
func (t *Table) AddRow(values ...string) {
	t.Rows = append(t.Rows, values)
}

// Render builds the table as a string ready for stdout.
func (t *Table) Render() string {
	widths := make([]int, len(t.Columns))
	for i, c := range t.Columns {
		widths[i] = utf8.RuneCountInString(c)
	}
	for _, row := range t.Rows {
		for i, v := range row {
			if i < len(widths) && utf8.RuneCountInString(v) > widths[i] {
				widths[i] = utf8.RuneCountInString(v)
			}
		}
	}

	var b strings.Builder

	if t.Title != "" {
		b.WriteString(titleStyle.Render(t.Title))
		b.WriteString("\n")
	}

	b.WriteString(headerStyle.Render(formatRow(t.Columns, widths)))
	b.WriteString("\n")

	ruleWidth := 0
	for _, w := range widths {
		ruleWidth += w + 2
	}
	b.WriteString(ruleStyle.Render(strings.Repeat("─", ruleWidth)))
	b.WriteString("\n")

	for _, row := range t.Rows {
		b.WriteString(formatRow(row, widths))
		b.WriteString("\n")
	}

	if t.Note != "" {
		b.WriteString(dimStyle.Render(t.Note))
		b.WriteString("\n")
	}

	return b.String()
}

// formatRow left-aligns each value to its column width, two spaces
// between columns. Rune-count padding keeps emoji labels aligned.
func formatRow(values []string, widths []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		w := 0
		if i < len(widths) {
			w = widths[i]
		}
		pad := w - utf8.RuneCountInString(v)
		if pad < 0 {
			pad = 0
		}
		parts[i] = v + strings.Repeat(" ", pad)
	}
	return strings.TrimRight(strings.Join(parts, "  "), " ")
}

// Pct formats a percentage the way the thesis tables print them.
func Pct(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}
