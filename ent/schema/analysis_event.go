package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnalysisEvent records one analysis run: which table was produced,
// over which dataset, and the rendered output for later inspection.
type AnalysisEvent struct {
	ent.Schema
}

func (AnalysisEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnalysisEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("dataset_id").
			Default("").
			Comment("Dataset the analysis ran over; empty for --file runs"),
		field.String("kind").
			NotEmpty().
			Comment("Analysis kind: visual-scores, visual-cases, visual-accuracy, visual-difficulty, visual-chart, audio-devices, audio-accuracy, audio-noise"),
		field.Int("rows").
			Default(0).
			Comment("Participant rows analyzed"),
		field.Text("output").
			Default("").
			Comment("Rendered table text or output file path"),
	}
}

func (AnalysisEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("kind"),
		index.Fields("dataset_id"),
	}
}
