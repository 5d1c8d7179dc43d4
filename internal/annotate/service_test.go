package annotate

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rizve/percepta/internal/analysis"
	"github.com/rizve/percepta/internal/llm"
	"github.com/rizve/percepta/internal/scoring"
)

func accuracyRows() []analysis.CaseAccuracyRow {
	return []analysis.CaseAccuracyRow{
		{Case: "Case 7", Group: scoring.LikelyColorBlind, Percent: 25.0},
		{Case: "Case 7", Group: scoring.NormalVision, Percent: 90.0},
		{Case: "Case 8", Group: scoring.LikelyColorBlind, Percent: 50.0},
		{Case: "Case 8", Group: scoring.NormalVision, Percent: 85.7},
	}
}

func TestAnnotate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"annotations": [
			{"case": "Case 7", "reason": "Relies on red-green contrast."},
			{"case": "Case 8", "reason": "Shape cue partially compensates."}
		]}`),
	})
	svc := NewService(mock, DefaultConfig())

	got, err := svc.Annotate(context.Background(), accuracyRows())
	if err != nil {
		t.Fatalf("Annotate: %v", err)
	}

	if got["Case 7"] != "Relies on red-green contrast." {
		t.Errorf("Case 7 reason = %q", got["Case 7"])
	}
	if got["Case 8"] != "Shape cue partially compensates." {
		t.Errorf("Case 8 reason = %q", got["Case 8"])
	}

	if mock.CallCount() != 1 {
		t.Fatalf("CallCount = %d, want 1", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema != AnnotationSchema {
		t.Error("request missing the annotation schema")
	}
	prompt := req.Messages[0].Content
	for _, want := range []string{"Case 7", "LCB 25.0% correct", "NV 90.0% correct"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestAnnotate_NoRows(t *testing.T) {
	mock := llm.NewMockProvider()
	svc := NewService(mock, DefaultConfig())

	got, err := svc.Annotate(context.Background(), nil)
	if err != nil {
		t.Fatalf("Annotate: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d reasons, want 0", len(got))
	}
	if mock.CallCount() != 0 {
		t.Error("provider should not be called for empty input")
	}
}

func TestAnnotate_BadResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`not json`),
	})
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.Annotate(context.Background(), accuracyRows()); err == nil {
		t.Error("expected error for malformed response")
	}
}
