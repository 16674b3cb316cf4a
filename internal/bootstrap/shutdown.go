package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/CraftValue_Go/internal/database"
	"github.com/osse101/CraftValue_Go/internal/scheduler"
	"github.com/osse101/CraftValue_Go/internal/server"
	"github.com/osse101/CraftValue_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server *server.Server
	// DBPool is nil when persistence is disabled
	DBPool database.Pool
	// Refresh components are nil unless a refresh interval is configured
	Scheduler  *scheduler.Scheduler
	WorkerPool *worker.Pool
}

// GracefulShutdown stops background refreshes, then the HTTP server so in-flight
// requests finish, then closes the database pool they may still be using. Errors
// are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	if components.Scheduler != nil || components.WorkerPool != nil {
		slog.Info(LogMsgRefreshStopping)
	}
	if components.Scheduler != nil {
		components.Scheduler.Stop()
	}
	if components.WorkerPool != nil {
		components.WorkerPool.Stop()
	}

	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.DBPool != nil {
		slog.Info(LogMsgClosingDatabase)
		components.DBPool.Close()
	}

	slog.Info(LogMsgServerStopped)
}
