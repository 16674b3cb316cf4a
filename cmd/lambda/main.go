package main

import (
	"context"
	_ "embed"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/osse101/CraftValue_Go/internal/config"
	"github.com/osse101/CraftValue_Go/internal/dataset"
	"github.com/osse101/CraftValue_Go/internal/logger"
	"github.com/osse101/CraftValue_Go/internal/pricing"
)

//go:embed dataset.yaml
var embeddedDataset []byte

// Serves delivery efficiency over a Lambda function URL. DATASET_URL replaces the
// bundled dataset at cold start.
func main() {
	cfg, err := config.LoadDiscord()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	logger.InitLogger(logger.NewConfig(cfg.LogLevel, "json", cfg.ServiceName, cfg.Version, cfg.Environment, false))

	h, err := newFunctionHandler(context.Background(), cfg)
	if err != nil {
		slog.Error("Failed to initialize handler", "error", err)
		os.Exit(1)
	}

	lambda.Start(h.handle)
}

func newFunctionHandler(ctx context.Context, cfg *config.Config) (*functionHandler, error) {
	loader, err := dataset.NewLoader(nil)
	if err != nil {
		return nil, err
	}

	ds, err := loader.Parse(embeddedDataset, dataset.FormatYAML)
	if err != nil {
		return nil, err
	}
	if cfg.DatasetURL != "" {
		if ds, err = loader.Fetch(ctx, cfg.DatasetURL); err != nil {
			return nil, err
		}
	}

	store, err := dataset.NewStore(ds)
	if err != nil {
		return nil, err
	}

	return &functionHandler{
		loader:    loader,
		pricing:   pricing.NewService(store, cfg.CacheSize, cfg.CacheTTL),
		cacheSize: cfg.CacheSize,
		cacheTTL:  cfg.CacheTTL,
	}, nil
}
