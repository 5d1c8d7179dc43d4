package scoring

import (
	"os"
	"path/filepath"
	"testing"
)

func writeKeyFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "key.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadAnswerKey(t *testing.T) {
	path := writeKeyFile(t, `{"test1": "74", "test2": "6"}`)

	key, err := LoadAnswerKey(path)
	if err != nil {
		t.Fatalf("LoadAnswerKey: %v", err)
	}
	if len(key) != 2 {
		t.Fatalf("got %d entries, want 2", len(key))
	}
	if key["test1"] != "74" {
		t.Errorf("test1 = %q, want 74", key["test1"])
	}
}

func TestLoadCaseTable(t *testing.T) {
	path := writeKeyFile(t, `{"Case 7": "A", "Case 8": "B"}`)

	cases, err := LoadCaseTable(path)
	if err != nil {
		t.Fatalf("LoadCaseTable: %v", err)
	}
	if cases["Case 8"] != "B" {
		t.Errorf("Case 8 = %q, want B", cases["Case 8"])
	}
}

func TestLoadAnswerKey_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not JSON", `{test1: 74}`},
		{"non-string value", `{"test1": 74}`},
		{"empty value", `{"test1": ""}`},
		{"empty object", `{}`},
		{"array", `["74", "6"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeKeyFile(t, tt.content)
			if _, err := LoadAnswerKey(path); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoadAnswerKey_MissingFile(t *testing.T) {
	if _, err := LoadAnswerKey(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
