package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/osse101/CraftValue_Go/internal/bootstrap"
	"github.com/osse101/CraftValue_Go/internal/config"
	"github.com/osse101/CraftValue_Go/internal/dataset"
	"github.com/osse101/CraftValue_Go/internal/pricing"
	"github.com/osse101/CraftValue_Go/internal/report"
)

const reportTimeout = 2 * time.Minute

// Values every item of the configured dataset and writes an xlsx workbook.
// Delivery rows come from the rewards file (item name to reward).
func main() {
	cfg, err := config.LoadDiscord()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	out := flag.String("out", cfg.ReportPath, "Output workbook path")
	rewardsPath := flag.String("rewards", cfg.RewardsPath, "YAML or JSON file mapping item names to delivery rewards")
	flag.Parse()

	bootstrap.InitStdoutLogger(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), reportTimeout)
	defer cancel()

	loader, err := dataset.NewLoader(nil)
	if err != nil {
		slog.Error("Failed to create dataset loader", "error", err)
		os.Exit(1)
	}

	ds, err := bootstrap.LoadInitialDataset(ctx, cfg, loader)
	if err != nil {
		slog.Error("Failed to load dataset", "error", err)
		os.Exit(1)
	}

	store, err := dataset.NewStore(ds)
	if err != nil {
		slog.Error("Dataset is invalid", "error", err)
		os.Exit(1)
	}

	rewards := map[string]float64{}
	if *rewardsPath != "" {
		if rewards, err = report.LoadRewards(*rewardsPath); err != nil {
			slog.Error("Failed to load rewards", "error", err)
			os.Exit(1)
		}
	}

	svc := pricing.NewService(store, cfg.CacheSize, cfg.CacheTTL)
	snapshot, version := store.Snapshot()

	r, err := report.Build(ctx, svc, snapshot, version, rewards)
	if err != nil {
		slog.Error("Failed to build report", "error", err)
		os.Exit(1)
	}

	if err := r.WriteXLSX(*out); err != nil {
		slog.Error("Failed to write report", "path", *out, "error", err)
		os.Exit(1)
	}

	slog.Info("Report written",
		"path", *out,
		"items", len(r.Costs),
		"deliveries", len(r.Deliveries),
		"version", version)
}
