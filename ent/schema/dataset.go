package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Dataset describes one imported survey spreadsheet.
type Dataset struct {
	ent.Schema
}

func (Dataset) Fields() []ent.Field {
	return []ent.Field{
		field.String("dataset_id").
			Unique().
			Immutable().
			Comment("UUID assigned at import time"),
		field.String("name").
			NotEmpty().
			Comment("Human-readable dataset name"),
		field.String("survey").
			NotEmpty().
			Comment("visual or auditory"),
		field.String("source").
			Default("").
			Comment("Path of the imported file"),
		field.Int("row_count").
			Default(0).
			Comment("Number of participant rows"),
		field.Time("imported_at").
			Default(time.Now).
			Immutable().
			Comment("When the import ran"),
	}
}

func (Dataset) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("survey"),
		index.Fields("imported_at"),
	}
}
