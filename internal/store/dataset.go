package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/rizve/percepta/ent"
	entdataset "github.com/rizve/percepta/ent/dataset"
	"github.com/rizve/percepta/ent/participantrow"
	"github.com/rizve/percepta/internal/dataset"
)

// datasetRepo implements DatasetRepo using the ent client.
type datasetRepo struct {
	client *ent.Client
}

func (r *datasetRepo) SaveDataset(ctx context.Context, meta DatasetMeta, table *dataset.Table) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	_, err = tx.Dataset.Create().
		SetDatasetID(meta.ID).
		SetName(meta.Name).
		SetSurvey(meta.Survey).
		SetSource(meta.Source).
		SetRowCount(table.Len()).
		SetImportedAt(meta.ImportedAt).
		Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("save dataset: %w", err)
	}

	builders := make([]*ent.ParticipantRowCreate, 0, table.Len())
	for i, row := range table.Rows {
		builders = append(builders, tx.ParticipantRow.Create().
			SetDatasetID(meta.ID).
			SetRowIndex(i).
			SetCells(map[string]string(row)))
	}
	if _, err := tx.ParticipantRow.CreateBulk(builders...).Save(ctx); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("save participant rows: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit import: %w", err)
	}
	return nil
}

func (r *datasetRepo) LatestDataset(ctx context.Context, survey string) (*DatasetMeta, error) {
	d, err := r.client.Dataset.Query().
		Where(entdataset.SurveyEQ(survey)).
		Order(ent.Desc(entdataset.FieldImportedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest dataset: %w", err)
	}
	meta := entToMeta(d)
	return &meta, nil
}

func (r *datasetRepo) LoadTable(ctx context.Context, datasetID string) (*dataset.Table, error) {
	rows, err := r.client.ParticipantRow.Query().
		Where(participantrow.DatasetIDEQ(datasetID)).
		Order(ent.Asc(participantrow.FieldRowIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query participant rows: %w", err)
	}

	t := &dataset.Table{}
	columns := map[string]bool{}
	for _, pr := range rows {
		row := dataset.Row{}
		for col, v := range pr.Cells {
			row[col] = v
			columns[col] = true
		}
		t.Rows = append(t.Rows, row)
	}
	for col := range columns {
		t.Columns = append(t.Columns, col)
	}
	sort.Strings(t.Columns)

	return t, nil
}

func (r *datasetRepo) DeleteDataset(ctx context.Context, datasetID string) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if _, err := tx.ParticipantRow.Delete().
		Where(participantrow.DatasetIDEQ(datasetID)).
		Exec(ctx); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("delete participant rows: %w", err)
	}
	if _, err := tx.Dataset.Delete().
		Where(entdataset.DatasetIDEQ(datasetID)).
		Exec(ctx); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("delete dataset: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete: %w", err)
	}
	return nil
}

func (r *datasetRepo) ListDatasets(ctx context.Context) ([]DatasetMeta, error) {
	ds, err := r.client.Dataset.Query().
		Order(ent.Desc(entdataset.FieldImportedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query datasets: %w", err)
	}
	out := make([]DatasetMeta, 0, len(ds))
	for _, d := range ds {
		out = append(out, entToMeta(d))
	}
	return out, nil
}

func entToMeta(d *ent.Dataset) DatasetMeta {
	return DatasetMeta{
		ID:         d.DatasetID,
		Name:       d.Name,
		Survey:     d.Survey,
		Source:     d.Source,
		RowCount:   d.RowCount,
		ImportedAt: d.ImportedAt,
	}
}
