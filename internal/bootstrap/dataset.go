package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/osse101/CraftValue_Go/internal/config"
	"github.com/osse101/CraftValue_Go/internal/dataset"
	"github.com/osse101/CraftValue_Go/internal/domain"
)

// LoadInitialDataset reads the dataset the server starts with. DATASET_URL wins
// over DATASET_PATH. A configured path that does not exist yet is not an error:
// the server starts empty and the path becomes the export target.
func LoadInitialDataset(ctx context.Context, cfg *config.Config, loader dataset.Loader) (*domain.Dataset, error) {
	switch {
	case cfg.DatasetURL != "":
		ds, err := loader.Fetch(ctx, cfg.DatasetURL)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedFetchDataset, err)
		}
		slog.Info(LogMsgDatasetFetched, "url", cfg.DatasetURL, "materials", len(ds.Materials), "recipes", len(ds.Recipes))
		return ds, nil

	case cfg.DatasetPath != "":
		ds, err := loader.LoadFile(cfg.DatasetPath)
		if errors.Is(err, fs.ErrNotExist) {
			slog.Warn(LogMsgDatasetFileMissing, "path", cfg.DatasetPath)
			return domain.NewDataset(), nil
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadDataset, err)
		}
		slog.Info(LogMsgDatasetLoaded, "path", cfg.DatasetPath, "materials", len(ds.Materials), "recipes", len(ds.Recipes))
		return ds, nil
	}

	slog.Info(LogMsgDatasetEmpty)
	return domain.NewDataset(), nil
}
