package dataset

// Row maps column name to raw cell text. A column that had no value in
// the source spreadsheet is simply absent from the map.
type Row map[string]string

// Get returns the raw cell text and whether the cell exists and is
// non-empty. Whitespace-only cells count as missing.
func (r Row) Get(column string) (string, bool) {
	v, ok := r[column]
	if !ok || isBlank(v) {
		return "", false
	}
	return v, true
}

// Table is an ordered collection of participant rows loaded from one
// spreadsheet. Column order follows the source header row.
type Table struct {
	Columns []string
	Rows    []Row
}

// Len returns the number of participant rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// HasColumn reports whether the table's header contains the column.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// FromRecords builds a Table from a header row plus data records, the
// shape both the xlsx and CSV loaders produce. Records shorter than the
// header leave the trailing cells missing; empty cells are skipped so
// Row.Get treats them as missing too.
func FromRecords(header []string, records [][]string) *Table {
	t := &Table{Columns: append([]string(nil), header...)}
	for _, rec := range records {
		row := Row{}
		for i, col := range t.Columns {
			if i >= len(rec) || isBlank(rec[i]) {
				continue
			}
			row[col] = rec[i]
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

func isBlank(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}
