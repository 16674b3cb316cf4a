package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CraftValue_Go/internal/domain"
	"github.com/osse101/CraftValue_Go/internal/repository"
)

const (
	upsertDatasetSQL = `
INSERT INTO datasets (name, document)
VALUES ($1, $2)
ON CONFLICT (name) DO UPDATE
SET document = EXCLUDED.document,
    revision = datasets.revision + 1,
    updated_at = NOW()
RETURNING revision, updated_at`

	getDatasetSQL = `
SELECT document, revision, updated_at
FROM datasets
WHERE name = $1`

	listDatasetsSQL = `
SELECT name,
       revision,
       (SELECT count(*) FROM jsonb_object_keys(document->'materials')) AS materials,
       (SELECT count(*) FROM jsonb_object_keys(document->'recipes')) AS recipes,
       updated_at
FROM datasets
ORDER BY name`

	deleteDatasetSQL = `DELETE FROM datasets WHERE name = $1`
)

// DatasetRepository stores dataset documents as JSONB
type DatasetRepository struct {
	db *pgxpool.Pool
}

var _ repository.Dataset = (*DatasetRepository)(nil)

// NewDatasetRepository creates a new DatasetRepository
func NewDatasetRepository(db *pgxpool.Pool) *DatasetRepository {
	return &DatasetRepository{db: db}
}

// SaveDataset inserts or overwrites a named dataset, bumping its revision
func (r *DatasetRepository) SaveDataset(ctx context.Context, name string, ds *domain.Dataset) (*domain.DatasetRecord, error) {
	document, err := json.Marshal(ds)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToEncodeDataset, err)
	}

	record := &domain.DatasetRecord{Name: name, Dataset: ds}
	if err := r.db.QueryRow(ctx, upsertDatasetSQL, name, document).Scan(&record.Revision, &record.UpdatedAt); err != nil {
		return nil, fmt.Errorf("%s %s: %w", ErrMsgFailedToSaveDataset, name, err)
	}
	return record, nil
}

// GetDataset loads a named dataset
func (r *DatasetRepository) GetDataset(ctx context.Context, name string) (*domain.DatasetRecord, error) {
	var document []byte
	record := &domain.DatasetRecord{Name: name}

	err := r.db.QueryRow(ctx, getDatasetSQL, name).Scan(&document, &record.Revision, &record.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrDatasetMissing, name)
	}
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", ErrMsgFailedToGetDataset, name, err)
	}

	ds := domain.NewDataset()
	if err := json.Unmarshal(document, ds); err != nil {
		return nil, fmt.Errorf("%s %s: %w", ErrMsgFailedToDecodeDataset, name, err)
	}
	record.Dataset = ds
	return record, nil
}

// ListDatasets returns a summary of every stored dataset ordered by name
func (r *DatasetRepository) ListDatasets(ctx context.Context) ([]domain.DatasetSummary, error) {
	rows, err := r.db.Query(ctx, listDatasetsSQL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListDatasets, err)
	}

	summaries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.DatasetSummary, error) {
		var s domain.DatasetSummary
		err := row.Scan(&s.Name, &s.Revision, &s.Materials, &s.Recipes, &s.UpdatedAt)
		return s, err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanDatasets, err)
	}
	return summaries, nil
}

// DeleteDataset removes a named dataset
func (r *DatasetRepository) DeleteDataset(ctx context.Context, name string) error {
	tag, err := r.db.Exec(ctx, deleteDatasetSQL, name)
	if err != nil {
		return fmt.Errorf("%s %s: %w", ErrMsgFailedToDeleteDataset, name, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrDatasetMissing, name)
	}
	return nil
}
