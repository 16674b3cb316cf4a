package worker

import (
	"bytes"
	"context"
	"fmt"

	"github.com/osse101/CraftValue_Go/internal/dataset"
	"github.com/osse101/CraftValue_Go/internal/domain"
	"github.com/osse101/CraftValue_Go/internal/logger"
	"github.com/osse101/CraftValue_Go/internal/metrics"
)

// DatasetReplacer is the part of the catalog service the refresh job needs
type DatasetReplacer interface {
	Dataset(ctx context.Context) (*domain.Dataset, uint64)
	ReplaceDataset(ctx context.Context, ds *domain.Dataset) (uint64, error)
}

// DatasetRefreshJob re-fetches the dataset from a URL and replaces the active
// dataset when the document changed. An unchanged document keeps the version, so
// cached efficiency results stay valid.
type DatasetRefreshJob struct {
	loader  dataset.Loader
	catalog DatasetReplacer
	url     string
}

// NewDatasetRefreshJob creates a refresh job for url
func NewDatasetRefreshJob(loader dataset.Loader, catalog DatasetReplacer, url string) *DatasetRefreshJob {
	return &DatasetRefreshJob{loader: loader, catalog: catalog, url: url}
}

func (j *DatasetRefreshJob) Name() string {
	return JobNameDatasetRefresh
}

func (j *DatasetRefreshJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)

	fetched, err := j.loader.Fetch(ctx, j.url)
	if err != nil {
		metrics.DatasetRefreshes.WithLabelValues(RefreshOutcomeFailed).Inc()
		return fmt.Errorf("%s: %w", LogMsgDatasetRefreshFailed, err)
	}

	current, version := j.catalog.Dataset(ctx)
	same, err := j.sameDocument(current, fetched)
	if err != nil {
		metrics.DatasetRefreshes.WithLabelValues(RefreshOutcomeFailed).Inc()
		return err
	}
	if same {
		metrics.DatasetRefreshes.WithLabelValues(RefreshOutcomeUnchanged).Inc()
		log.Debug(LogMsgDatasetUnchanged, "url", j.url, "version", version)
		return nil
	}

	next, err := j.catalog.ReplaceDataset(ctx, fetched)
	if err != nil {
		metrics.DatasetRefreshes.WithLabelValues(RefreshOutcomeFailed).Inc()
		return fmt.Errorf("%s: %w", LogMsgDatasetRefreshFailed, err)
	}

	metrics.DatasetRefreshes.WithLabelValues(RefreshOutcomeReplaced).Inc()
	log.Info(LogMsgDatasetRefreshed, "url", j.url, "version", next)
	return nil
}

// sameDocument compares the canonical JSON encodings of both datasets
func (j *DatasetRefreshJob) sameDocument(a, b *domain.Dataset) (bool, error) {
	left, err := j.loader.Encode(a, dataset.FormatJSON)
	if err != nil {
		return false, err
	}
	right, err := j.loader.Encode(b, dataset.FormatJSON)
	if err != nil {
		return false, err
	}
	return bytes.Equal(left, right), nil
}
