package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/CraftValue_Go/internal/config"
	"github.com/osse101/CraftValue_Go/internal/dataset"
	"github.com/osse101/CraftValue_Go/internal/scheduler"
	"github.com/osse101/CraftValue_Go/internal/worker"
)

// StartDatasetRefresh periodically re-fetches DATASET_URL into the active
// dataset. It returns nils when no URL or interval is configured.
func StartDatasetRefresh(ctx context.Context, cfg *config.Config, loader dataset.Loader, catalog worker.DatasetReplacer) (*scheduler.Scheduler, *worker.Pool) {
	if cfg.DatasetURL == "" || cfg.DatasetRefreshInterval <= 0 {
		return nil, nil
	}

	// One worker and one slot: a slow fetch makes later ticks skip rather than pile up
	pool := worker.NewPool(1, 1)
	pool.Start(ctx)

	sched := scheduler.New(pool)
	sched.Schedule(ctx, cfg.DatasetRefreshInterval, worker.NewDatasetRefreshJob(loader, catalog, cfg.DatasetURL))

	slog.Info(LogMsgRefreshScheduled, "url", cfg.DatasetURL, "interval", cfg.DatasetRefreshInterval)
	return sched, pool
}
