package store

import (
	"context"
	"time"

	"github.com/rizve/percepta/internal/dataset"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int    // max results (0 = unlimited)
	Kind    string // analysis kind filter
	Purpose string // LLM purpose filter
}

// DatasetMeta describes one imported spreadsheet.
type DatasetMeta struct {
	ID         string
	Name       string
	Survey     string // visual or auditory
	Source     string
	RowCount   int
	ImportedAt time.Time
}

// DatasetRepo persists imported response tables.
type DatasetRepo interface {
	// SaveDataset stores the dataset metadata plus one row record per
	// participant.
	SaveDataset(ctx context.Context, meta DatasetMeta, table *dataset.Table) error

	// LatestDataset returns the most recently imported dataset of the
	// given survey kind, or nil if none exist.
	LatestDataset(ctx context.Context, survey string) (*DatasetMeta, error)

	// LoadTable reconstructs the response table for a dataset, rows in
	// import order. Column order is not persisted; columns are the
	// union of row keys, sorted.
	LoadTable(ctx context.Context, datasetID string) (*dataset.Table, error)

	// DeleteDataset removes a dataset and its rows.
	DeleteDataset(ctx context.Context, datasetID string) error

	// ListDatasets returns dataset metadata, newest first.
	ListDatasets(ctx context.Context) ([]DatasetMeta, error)
}

// AnalysisEventData captures one analysis run.
type AnalysisEventData struct {
	DatasetID string
	Kind      string
	Rows      int
	Output    string
}

// AnalysisEventRecord is a stored analysis event.
type AnalysisEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	AnalysisEventData
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEventRecord is a stored LLM request event.
type LLMRequestEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendAnalysisEvent records one analysis run.
	AppendAnalysisEvent(ctx context.Context, data AnalysisEventData) error

	// QueryAnalysisEvents returns analysis runs, newest first.
	QueryAnalysisEvents(ctx context.Context, opts QueryOpts) ([]AnalysisEventRecord, error)

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// GetLLMEvent returns one LLM event by ID, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error)
}
