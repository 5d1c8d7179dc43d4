package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/rizve/percepta/internal/dataset"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func testTable() *dataset.Table {
	return &dataset.Table{
		Columns: []string{"name", "test1"},
		Rows: []dataset.Row{
			{"name": "alice", "test1": "74"},
			{"name": "bob"},
		},
	}
}

func TestDatasetSaveAndLoad(t *testing.T) {
	s := openTestStore(t)
	repo := s.DatasetRepo()
	ctx := context.Background()

	meta := DatasetMeta{
		ID:         "ds-1",
		Name:       "pilot",
		Survey:     "visual",
		Source:     "pilot.xlsx",
		ImportedAt: time.Now().UTC().Truncate(time.Second),
	}
	if err := repo.SaveDataset(ctx, meta, testTable()); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.LatestDataset(ctx, "visual")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if got == nil {
		t.Fatal("expected a dataset")
	}
	if got.ID != "ds-1" || got.Name != "pilot" || got.RowCount != 2 {
		t.Errorf("meta = %+v", got)
	}

	table, err := repo.LoadTable(ctx, "ds-1")
	if err != nil {
		t.Fatalf("load table: %v", err)
	}
	if table.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", table.Len())
	}
	if v, _ := table.Rows[0].Get("test1"); v != "74" {
		t.Errorf("row 0 test1 = %q, want 74", v)
	}
	if _, ok := table.Rows[1].Get("test1"); ok {
		t.Error("row 1 test1 should be missing")
	}
	// Columns come back as the sorted union of row keys.
	if len(table.Columns) != 2 || table.Columns[0] != "name" || table.Columns[1] != "test1" {
		t.Errorf("columns = %v, want [name test1]", table.Columns)
	}
}

func TestLatestDataset_Empty(t *testing.T) {
	s := openTestStore(t)

	got, err := s.DatasetRepo().LatestDataset(context.Background(), "visual")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if got != nil {
		t.Fatal("expected nil when no datasets exist")
	}
}

func TestLatestDataset_PicksNewestOfSurvey(t *testing.T) {
	s := openTestStore(t)
	repo := s.DatasetRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	saves := []DatasetMeta{
		{ID: "old-visual", Survey: "visual", ImportedAt: base},
		{ID: "new-visual", Survey: "visual", ImportedAt: base.Add(time.Minute)},
		{ID: "newest-audio", Survey: "auditory", ImportedAt: base.Add(2 * time.Minute)},
	}
	for _, m := range saves {
		if err := repo.SaveDataset(ctx, m, testTable()); err != nil {
			t.Fatalf("save %s: %v", m.ID, err)
		}
	}

	got, err := repo.LatestDataset(ctx, "visual")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if got.ID != "new-visual" {
		t.Errorf("latest visual = %s, want new-visual", got.ID)
	}

	list, err := repo.ListDatasets(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("got %d datasets, want 3", len(list))
	}
	if list[0].ID != "newest-audio" {
		t.Errorf("list[0] = %s, want newest-audio", list[0].ID)
	}
}

func TestDeleteDataset(t *testing.T) {
	s := openTestStore(t)
	repo := s.DatasetRepo()
	ctx := context.Background()

	meta := DatasetMeta{ID: "ds-del", Survey: "visual", ImportedAt: time.Now().UTC()}
	if err := repo.SaveDataset(ctx, meta, testTable()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.DeleteDataset(ctx, "ds-del"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	got, err := repo.LatestDataset(ctx, "visual")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if got != nil {
		t.Error("dataset should be gone")
	}

	table, err := repo.LoadTable(ctx, "ds-del")
	if err != nil {
		t.Fatalf("load table: %v", err)
	}
	if table.Len() != 0 {
		t.Errorf("rows should be gone, got %d", table.Len())
	}
}

func TestAnalysisEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	kinds := []string{"visual-scores", "visual-accuracy", "visual-scores"}
	for i, k := range kinds {
		err := repo.AppendAnalysisEvent(ctx, AnalysisEventData{
			DatasetID: "ds-1",
			Kind:      k,
			Rows:      30 + i,
			Output:    "table",
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.QueryAnalysisEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}
	// Newest first, sequence strictly increasing underneath.
	if events[0].Sequence <= events[1].Sequence || events[1].Sequence <= events[2].Sequence {
		t.Errorf("expected descending sequences, got %d, %d, %d",
			events[0].Sequence, events[1].Sequence, events[2].Sequence)
	}
	if events[0].Kind != "visual-scores" || events[0].Rows != 32 {
		t.Errorf("events[0] = %+v", events[0])
	}

	filtered, err := repo.QueryAnalysisEvents(ctx, QueryOpts{Kind: "visual-accuracy"})
	if err != nil {
		t.Fatalf("query filtered: %v", err)
	}
	if len(filtered) != 1 || filtered[0].Kind != "visual-accuracy" {
		t.Errorf("filtered = %+v", filtered)
	}

	limited, err := repo.QueryAnalysisEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query limited: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("got %d events with limit 2", len(limited))
	}
}

func TestLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	data := LLMRequestEventData{
		Provider:     "anthropic",
		Model:        "claude-sonnet-4-5",
		Purpose:      "annotation",
		InputTokens:  120,
		OutputTokens: 60,
		LatencyMs:    800,
		Success:      true,
		RequestBody:  `{"system":"..."}`,
		ResponseBody: `{"annotations":[]}`,
	}
	if err := repo.AppendLLMRequest(ctx, data); err != nil {
		t.Fatalf("append: %v", err)
	}
	other := data
	other.Purpose = "other"
	if err := repo.AppendLLMRequest(ctx, other); err != nil {
		t.Fatalf("append other: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "annotation"})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	e := events[0]
	if e.Provider != "anthropic" || e.InputTokens != 120 || !e.Success {
		t.Errorf("event = %+v", e)
	}
	if e.RequestBody == "" || e.ResponseBody == "" {
		t.Error("bodies should round-trip")
	}

	got, err := repo.GetLLMEvent(ctx, e.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Purpose != "annotation" {
		t.Errorf("got = %+v", got)
	}

	missing, err := repo.GetLLMEvent(ctx, 9999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for unknown ID")
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	for i := 1; i < len(seqs); i++ {
		if seqs[i] != seqs[i-1]+1 {
			t.Errorf("seq[%d] = %d, want %d", i, seqs[i], seqs[i-1]+1)
		}
	}
}

func TestSequenceSharedAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendAnalysisEvent(ctx, AnalysisEventData{Kind: "visual-scores"}); err != nil {
		t.Fatalf("append analysis: %v", err)
	}
	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{Provider: "mock", Purpose: "annotation", Success: true}); err != nil {
		t.Fatalf("append llm: %v", err)
	}

	analyses, err := repo.QueryAnalysisEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatal(err)
	}
	llms, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatal(err)
	}
	if len(analyses) != 1 || len(llms) != 1 {
		t.Fatalf("got %d analysis, %d llm events", len(analyses), len(llms))
	}
	if llms[0].Sequence != analyses[0].Sequence+1 {
		t.Errorf("llm sequence = %d, want %d", llms[0].Sequence, analyses[0].Sequence+1)
	}
}
