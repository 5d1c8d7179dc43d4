// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnalysisEventsColumns holds the columns for the "analysis_events" table.
	AnalysisEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "dataset_id", Type: field.TypeString, Default: ""},
		{Name: "kind", Type: field.TypeString},
		{Name: "rows", Type: field.TypeInt, Default: 0},
		{Name: "output", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// AnalysisEventsTable holds the schema information for the "analysis_events" table.
	AnalysisEventsTable = &schema.Table{
		Name:       "analysis_events",
		Columns:    AnalysisEventsColumns,
		PrimaryKey: []*schema.Column{AnalysisEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "analysisevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AnalysisEventsColumns[1]},
			},
			{
				Name:    "analysisevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AnalysisEventsColumns[2]},
			},
			{
				Name:    "analysisevent_kind",
				Unique:  false,
				Columns: []*schema.Column{AnalysisEventsColumns[4]},
			},
			{
				Name:    "analysisevent_dataset_id",
				Unique:  false,
				Columns: []*schema.Column{AnalysisEventsColumns[3]},
			},
		},
	}
	// DatasetsColumns holds the columns for the "datasets" table.
	DatasetsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "dataset_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "survey", Type: field.TypeString},
		{Name: "source", Type: field.TypeString, Default: ""},
		{Name: "row_count", Type: field.TypeInt, Default: 0},
		{Name: "imported_at", Type: field.TypeTime},
	}
	// DatasetsTable holds the schema information for the "datasets" table.
	DatasetsTable = &schema.Table{
		Name:       "datasets",
		Columns:    DatasetsColumns,
		PrimaryKey: []*schema.Column{DatasetsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "dataset_survey",
				Unique:  false,
				Columns: []*schema.Column{DatasetsColumns[3]},
			},
			{
				Name:    "dataset_imported_at",
				Unique:  false,
				Columns: []*schema.Column{DatasetsColumns[6]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// ParticipantRowsColumns holds the columns for the "participant_rows" table.
	ParticipantRowsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "dataset_id", Type: field.TypeString},
		{Name: "row_index", Type: field.TypeInt},
		{Name: "cells", Type: field.TypeJSON},
	}
	// ParticipantRowsTable holds the schema information for the "participant_rows" table.
	ParticipantRowsTable = &schema.Table{
		Name:       "participant_rows",
		Columns:    ParticipantRowsColumns,
		PrimaryKey: []*schema.Column{ParticipantRowsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "participantrow_dataset_id",
				Unique:  false,
				Columns: []*schema.Column{ParticipantRowsColumns[1]},
			},
			{
				Name:    "participantrow_dataset_id_row_index",
				Unique:  true,
				Columns: []*schema.Column{ParticipantRowsColumns[1], ParticipantRowsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnalysisEventsTable,
		DatasetsTable,
		LlmRequestEventsTable,
		ParticipantRowsTable,
	}
)

func init() {
}
