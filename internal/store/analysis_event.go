package store

import (
	"context"
	"fmt"

	"github.com/rizve/percepta/ent"
	"github.com/rizve/percepta/ent/analysisevent"
)

func (r *eventRepo) AppendAnalysisEvent(ctx context.Context, data AnalysisEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnalysisEvent.Create().
		SetSequence(seqNum).
		SetDatasetID(data.DatasetID).
		SetKind(data.Kind).
		SetRows(data.Rows).
		SetOutput(data.Output).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save analysis event: %w", err)
	}

	return nil
}

func (r *eventRepo) QueryAnalysisEvents(ctx context.Context, opts QueryOpts) ([]AnalysisEventRecord, error) {
	q := r.client.AnalysisEvent.Query().
		Order(ent.Desc(analysisevent.FieldSequence))
	if opts.Kind != "" {
		q = q.Where(analysisevent.KindEQ(opts.Kind))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query analysis events: %w", err)
	}

	out := make([]AnalysisEventRecord, 0, len(events))
	for _, e := range events {
		out = append(out, AnalysisEventRecord{
			ID:        e.ID,
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			AnalysisEventData: AnalysisEventData{
				DatasetID: e.DatasetID,
				Kind:      e.Kind,
				Rows:      e.Rows,
				Output:    e.Output,
			},
		})
	}
	return out, nil
}
