package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestLoadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "survey.csv")
	content := "name,test1,test2\nalice,74,6\nbob,,7\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	tbl, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if tbl.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", tbl.Len())
	}
	if v, _ := tbl.Rows[0].Get("test1"); v != "74" {
		t.Errorf("row 0 test1 = %q, want 74", v)
	}
	if _, ok := tbl.Rows[1].Get("test1"); ok {
		t.Error("empty CSV cell should be missing")
	}
}

func TestLoadCSV_RaggedRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ragged.csv")
	content := "a,b,c\n1,2,3\n4,5\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	tbl, err := LoadCSV(path)
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}
	if tbl.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", tbl.Len())
	}
	if _, ok := tbl.Rows[1].Get("c"); ok {
		t.Error("short row's missing column should read as missing")
	}
}

func TestLoadXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "survey.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]any{
		{"name", "Case 1", "Case 2"},
		{"alice", "A", "B"},
		{"bob", "b", ""},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatal(err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}

	tbl, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if tbl.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", tbl.Len())
	}
	if v, _ := tbl.Rows[0].Get("Case 1"); v != "A" {
		t.Errorf("row 0 Case 1 = %q, want A", v)
	}
	if v, _ := tbl.Rows[1].Get("Case 1"); v != "b" {
		t.Errorf("row 1 Case 1 = %q, want b", v)
	}
	if _, ok := tbl.Rows[1].Get("Case 2"); ok {
		t.Error("empty xlsx cell should be missing")
	}
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	if _, err := Load("survey.pdf"); err == nil {
		t.Error("expected error for unsupported extension")
	}
}
