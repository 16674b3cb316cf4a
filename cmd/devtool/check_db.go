package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CraftValue_Go/internal/config"
)

const (
	dbMaxAttempts   = 30
	dbRetryInterval = 2 * time.Second
)

type CheckDBCommand struct{}

func (c *CheckDBCommand) Name() string {
	return "check-db"
}

func (c *CheckDBCommand) Description() string {
	return "Wait until the configured database accepts connections"
}

func (c *CheckDBCommand) Run(args []string) error {
	PrintHeader("Waiting for database...")

	cfg, err := config.LoadDiscord()
	if err != nil {
		return err
	}
	if !cfg.DBEnabled {
		PrintWarning("DB_ENABLED is false, skipping database check")
		return nil
	}

	for attempt := 1; attempt <= dbMaxAttempts; attempt++ {
		err = pingDB(cfg.GetDBConnString())
		if err == nil {
			PrintSuccess("Database is ready (%s:%s/%s)", cfg.DBHost, cfg.DBPort, cfg.DBName)
			return nil
		}
		fmt.Printf("Database not ready (%d/%d): %v\n", attempt, dbMaxAttempts, err)
		time.Sleep(dbRetryInterval)
	}

	return fmt.Errorf("database failed to become ready after %d attempts: %w", dbMaxAttempts, err)
}

func pingDB(connString string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return err
	}
	defer pool.Close()
	return pool.Ping(ctx)
}
