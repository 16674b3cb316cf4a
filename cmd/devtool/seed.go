package main

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/osse101/CraftValue_Go/internal/config"
	"github.com/osse101/CraftValue_Go/internal/dataset"
)

type SeedCommand struct{}

func (c *SeedCommand) Name() string {
	return "seed"
}

func (c *SeedCommand) Description() string {
	return "Validate a dataset file and upload it to the running API"
}

func (c *SeedCommand) Run(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("dataset file required: seed <path.yaml|path.json>")
	}

	cfg, err := config.LoadDiscord()
	if err != nil {
		return err
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("API_KEY must be set to replace the dataset")
	}

	loader, err := dataset.NewLoader(nil)
	if err != nil {
		return err
	}

	PrintInfo("Validating %s...", args[0])
	ds, err := loader.LoadFile(args[0])
	if err != nil {
		return err
	}
	body, err := loader.Encode(ds, dataset.FormatJSON)
	if err != nil {
		return err
	}

	url := strings.TrimRight(cfg.APIURL, "/") + "/api/v1/dataset"
	req, err := http.NewRequest(http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", cfg.APIKey)

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach API: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("API rejected dataset (%d): %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	PrintSuccess("Seeded %d materials and %d recipes: %s", len(ds.Materials), len(ds.Recipes), strings.TrimSpace(string(respBody)))
	return nil
}
