package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CraftValue_Go/internal/config"
	"github.com/osse101/CraftValue_Go/internal/database"
	"github.com/osse101/CraftValue_Go/internal/database/postgres"
	"github.com/osse101/CraftValue_Go/internal/repository"
)

// SetupPersistence connects to Postgres and applies migrations when DB_ENABLED is
// set. With persistence disabled it returns a nil pool and repository.
func SetupPersistence(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, repository.Dataset, error) {
	if !cfg.DBEnabled {
		slog.Info(LogMsgPersistenceDisabled)
		return nil, nil, nil
	}

	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
	}

	if err := database.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrateDB, err)
	}

	return pool, postgres.NewDatasetRepository(pool), nil
}
