package main

import (
	"context"
	"fmt"

	"github.com/osse101/CraftValue_Go/internal/config"
	"github.com/osse101/CraftValue_Go/internal/database"
)

type MigrateCommand struct{}

func (c *MigrateCommand) Name() string {
	return "migrate"
}

func (c *MigrateCommand) Description() string {
	return "Manage database migrations (up, create)"
}

func (c *MigrateCommand) Run(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("subcommand required: up, create")
	}

	switch args[0] {
	case "up":
		return c.up()
	case "create":
		if len(args) < 2 {
			return fmt.Errorf("migration name required for create")
		}
		return runCommandVerbose("go", "run", "github.com/pressly/goose/v3/cmd/goose",
			"-dir", "internal/database/migrations", "create", args[1], "sql")
	default:
		return fmt.Errorf("unknown subcommand: %s", args[0])
	}
}

// up applies the same embedded migrations the server runs at startup
func (c *MigrateCommand) up() error {
	cfg, err := config.LoadDiscord()
	if err != nil {
		return err
	}

	ctx := context.Background()
	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), 2, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		return err
	}
	PrintSuccess("Migrations applied")
	return nil
}
