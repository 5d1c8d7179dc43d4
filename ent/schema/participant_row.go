package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ParticipantRow stores one survey response row as a column→value map.
// Cells keep their raw spreadsheet text; normalization happens at
// analysis time so re-running an analysis never depends on how the
// row was ingested.
type ParticipantRow struct {
	ent.Schema
}

func (ParticipantRow) Fields() []ent.Field {
	return []ent.Field{
		field.String("dataset_id").
			NotEmpty().
			Immutable().
			Comment("Links to Dataset"),
		field.Int("row_index").
			Comment("Zero-based position within the spreadsheet"),
		field.JSON("cells", map[string]string{}).
			Comment("Column name to raw cell text; missing cells are absent keys"),
	}
}

func (ParticipantRow) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("dataset_id"),
		index.Fields("dataset_id", "row_index").Unique(),
	}
}
