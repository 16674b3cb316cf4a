package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/osse101/CraftValue_Go/docs"
	"github.com/osse101/CraftValue_Go/internal/bootstrap"
	"github.com/osse101/CraftValue_Go/internal/catalog"
	"github.com/osse101/CraftValue_Go/internal/config"
	"github.com/osse101/CraftValue_Go/internal/database"
	"github.com/osse101/CraftValue_Go/internal/dataset"
	"github.com/osse101/CraftValue_Go/internal/handler"
	"github.com/osse101/CraftValue_Go/internal/pricing"
	"github.com/osse101/CraftValue_Go/internal/server"
)

const shutdownTimeout = 10 * time.Second

// @title Craft Value API
// @version 1.0
// @description Crafting cost, stamina and delivery efficiency calculator.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		bootstrap.InitStdoutLogger(cfg)
		slog.Warn("File logging unavailable, logging to stdout only", "error", err)
	} else {
		defer logFile.Close()
	}

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Error("Invalid environment", "error", err)
		os.Exit(1)
	}
	for _, warning := range warnings {
		slog.Warn("Environment check", "warning", warning)
	}

	handler.InitValidator()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loader, err := dataset.NewLoader(nil)
	if err != nil {
		slog.Error("Failed to create dataset loader", "error", err)
		os.Exit(1)
	}

	initial, err := bootstrap.LoadInitialDataset(ctx, cfg, loader)
	if err != nil {
		slog.Error("Failed to load initial dataset", "error", err)
		os.Exit(1)
	}

	store, err := dataset.NewStore(initial)
	if err != nil {
		slog.Error("Initial dataset is invalid", "error", err)
		os.Exit(1)
	}

	pool, repo, err := bootstrap.SetupPersistence(ctx, cfg)
	if err != nil {
		slog.Error("Failed to set up persistence", "error", err)
		os.Exit(1)
	}

	// A nil *pgxpool.Pool stored in the interface would not compare equal to nil
	var dbPool database.Pool
	if pool != nil {
		dbPool = pool
	}

	catalogService := catalog.NewService(store, repo, loader, cfg.DatasetPath)
	if cfg.DatasetName != "" && repo != nil {
		if _, err := catalogService.Load(ctx, cfg.DatasetName); err != nil {
			slog.Error("Failed to load stored dataset", "name", cfg.DatasetName, "error", err)
			os.Exit(1)
		}
		slog.Info(bootstrap.LogMsgStoredDatasetReady, "name", cfg.DatasetName, "version", store.Version())
	}

	pricingService := pricing.NewService(store, cfg.CacheSize, cfg.CacheTTL)
	refreshScheduler, refreshPool := bootstrap.StartDatasetRefresh(ctx, cfg, loader, catalogService)

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		RateLimit:      cfg.RateLimit,
		RateWindow:     cfg.RateWindow,
		DBPool:         dbPool,
		Pricing:        pricingService,
		Catalog:        catalogService,
		Loader:         loader,
		Datasets:       store,
	})

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
	case err := <-serverErr:
		if err != nil {
			slog.Error("Server failed", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:     srv,
		DBPool:     dbPool,
		Scheduler:  refreshScheduler,
		WorkerPool: refreshPool,
	})
}
