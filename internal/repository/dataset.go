package repository

import (
	"context"

	"github.com/osse101/CraftValue_Go/internal/domain"
)

// Dataset defines the interface for named dataset persistence.
// Get and Delete return domain.ErrDatasetMissing for unknown names.
type Dataset interface {
	SaveDataset(ctx context.Context, name string, ds *domain.Dataset) (*domain.DatasetRecord, error)
	GetDataset(ctx context.Context, name string) (*domain.DatasetRecord, error)
	ListDatasets(ctx context.Context) ([]domain.DatasetSummary, error)
	DeleteDataset(ctx context.Context, name string) error
}
