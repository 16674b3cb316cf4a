// Package catalog edits the active dataset and moves it to and from storage.
package catalog

import (
	"context"
	"fmt"

	"github.com/osse101/CraftValue_Go/internal/dataset"
	"github.com/osse101/CraftValue_Go/internal/domain"
	"github.com/osse101/CraftValue_Go/internal/logger"
	"github.com/osse101/CraftValue_Go/internal/metrics"
	"github.com/osse101/CraftValue_Go/internal/repository"
)

// Mutation labels
const (
	OpReplace        = "replace"
	OpPutMaterial    = "put_material"
	OpRemoveMaterial = "remove_material"
	OpPutRecipe      = "put_recipe"
	OpRemoveRecipe   = "remove_recipe"
	OpUpdateSettings = "update_settings"
	OpLoad           = "load"
)

// Service defines the interface for dataset editing
type Service interface {
	Dataset(ctx context.Context) (*domain.Dataset, uint64)
	ReplaceDataset(ctx context.Context, ds *domain.Dataset) (uint64, error)
	PutMaterial(ctx context.Context, name string, price float64) (uint64, error)
	RemoveMaterial(ctx context.Context, name string) (uint64, error)
	PutRecipe(ctx context.Context, name string, recipe domain.Recipe) (uint64, error)
	RemoveRecipe(ctx context.Context, name string) (uint64, error)
	UpdateSettings(ctx context.Context, patch domain.SettingsPatch) (domain.Settings, uint64, error)

	// Save and Load require a repository; without one they return domain.ErrNoPersistence
	Save(ctx context.Context, name string) (*domain.DatasetRecord, error)
	Load(ctx context.Context, name string) (*domain.DatasetRecord, error)
	List(ctx context.Context) ([]domain.DatasetSummary, error)

	// Export writes the active dataset to the configured file
	Export(ctx context.Context) (string, error)
}

type service struct {
	store      *dataset.Store
	repo       repository.Dataset
	loader     dataset.Loader
	exportPath string
}

// NewService creates a catalog service. repo may be nil when no database is
// configured; exportPath may be empty to disable Export.
func NewService(store *dataset.Store, repo repository.Dataset, loader dataset.Loader, exportPath string) Service {
	s := &service{store: store, repo: repo, loader: loader, exportPath: exportPath}
	ds, version := store.Snapshot()
	recordDataset(ds, version)
	return s
}

func (s *service) Dataset(ctx context.Context) (*domain.Dataset, uint64) {
	return s.store.Snapshot()
}

func (s *service) ReplaceDataset(ctx context.Context, ds *domain.Dataset) (uint64, error) {
	return s.apply(ctx, OpReplace, "", func() (uint64, error) { return s.store.Replace(ds) })
}

func (s *service) PutMaterial(ctx context.Context, name string, price float64) (uint64, error) {
	return s.apply(ctx, OpPutMaterial, name, func() (uint64, error) { return s.store.PutMaterial(name, price) })
}

func (s *service) RemoveMaterial(ctx context.Context, name string) (uint64, error) {
	return s.apply(ctx, OpRemoveMaterial, name, func() (uint64, error) { return s.store.RemoveMaterial(name) })
}

func (s *service) PutRecipe(ctx context.Context, name string, recipe domain.Recipe) (uint64, error) {
	return s.apply(ctx, OpPutRecipe, name, func() (uint64, error) { return s.store.PutRecipe(name, recipe) })
}

func (s *service) RemoveRecipe(ctx context.Context, name string) (uint64, error) {
	return s.apply(ctx, OpRemoveRecipe, name, func() (uint64, error) { return s.store.RemoveRecipe(name) })
}

func (s *service) UpdateSettings(ctx context.Context, patch domain.SettingsPatch) (domain.Settings, uint64, error) {
	var settings domain.Settings
	version, err := s.apply(ctx, OpUpdateSettings, "", func() (uint64, error) {
		updated, version, err := s.store.UpdateSettings(patch)
		settings = updated
		return version, err
	})
	if err != nil {
		return domain.Settings{}, 0, err
	}
	return settings, version, nil
}

func (s *service) Save(ctx context.Context, name string) (*domain.DatasetRecord, error) {
	log := logger.FromContext(ctx)
	if s.repo == nil {
		return nil, domain.ErrNoPersistence
	}

	ds, version := s.store.Snapshot()
	record, err := s.repo.SaveDataset(ctx, name, ds)
	if err != nil {
		log.Error("Failed to save dataset", "name", name, "error", err)
		return nil, err
	}

	log.Info("Dataset saved", "name", name, "revision", record.Revision, "version", version)
	return record, nil
}

func (s *service) Load(ctx context.Context, name string) (*domain.DatasetRecord, error) {
	log := logger.FromContext(ctx)
	if s.repo == nil {
		return nil, domain.ErrNoPersistence
	}

	record, err := s.repo.GetDataset(ctx, name)
	if err != nil {
		log.Warn("Failed to get dataset", "name", name, "error", err)
		return nil, err
	}

	if _, err := s.apply(ctx, OpLoad, name, func() (uint64, error) { return s.store.Replace(record.Dataset) }); err != nil {
		return nil, fmt.Errorf("stored dataset %s is invalid: %w", name, err)
	}
	return record, nil
}

func (s *service) List(ctx context.Context) ([]domain.DatasetSummary, error) {
	if s.repo == nil {
		return nil, domain.ErrNoPersistence
	}
	return s.repo.ListDatasets(ctx)
}

func (s *service) Export(ctx context.Context) (string, error) {
	if s.exportPath == "" {
		return "", fmt.Errorf("%w: no dataset path configured", domain.ErrNoPersistence)
	}

	ds, version := s.store.Snapshot()
	if err := s.loader.SaveFile(s.exportPath, ds); err != nil {
		logger.FromContext(ctx).Error("Failed to export dataset", "path", s.exportPath, "error", err)
		return "", err
	}

	logger.FromContext(ctx).Info("Dataset exported", "path", s.exportPath, "version", version)
	return s.exportPath, nil
}

func (s *service) apply(ctx context.Context, op, name string, mutate func() (uint64, error)) (uint64, error) {
	log := logger.FromContext(ctx)

	version, err := mutate()
	if err != nil {
		log.Info("Dataset mutation rejected", "operation", op, "name", name, "error", err)
		return 0, err
	}

	metrics.DatasetMutations.WithLabelValues(op).Inc()
	ds, _ := s.store.Snapshot()
	recordDataset(ds, version)

	log.Info("Dataset updated", "operation", op, "name", name, "version", version)
	return version, nil
}

func recordDataset(ds *domain.Dataset, version uint64) {
	metrics.DatasetVersion.Set(float64(version))
	metrics.DatasetEntries.WithLabelValues(string(domain.ItemKindMaterial)).Set(float64(len(ds.Materials)))
	metrics.DatasetEntries.WithLabelValues(string(domain.ItemKindRecipe)).Set(float64(len(ds.Recipes)))
}
