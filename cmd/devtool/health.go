package main

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/osse101/CraftValue_Go/internal/config"
)

const slowResponseThreshold = time.Second

type HealthCheckCommand struct{}

func (c *HealthCheckCommand) Name() string {
	return "health-check"
}

func (c *HealthCheckCommand) Description() string {
	return "Check API liveness and readiness (optional base URL argument)"
}

func (c *HealthCheckCommand) Run(args []string) error {
	cfg, err := config.LoadDiscord()
	if err != nil {
		return err
	}

	baseURL := cfg.APIURL
	if len(args) > 0 {
		baseURL = args[0]
	}
	baseURL = strings.TrimRight(baseURL, "/")

	PrintHeader(fmt.Sprintf("Health Check (%s)", baseURL))

	client := &http.Client{Timeout: 5 * time.Second}
	for _, path := range []string{"/healthz", "/readyz"} {
		start := time.Now()
		resp, err := client.Get(baseURL + path)
		if err != nil {
			return fmt.Errorf("%s unreachable: %w", path, err)
		}
		resp.Body.Close()
		duration := time.Since(start)

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("%s returned %d", path, resp.StatusCode)
		}
		if duration > slowResponseThreshold {
			PrintWarning("%s slow response time (%v)", path, duration)
		} else {
			PrintSuccess("%s passed (response time: %v)", path, duration)
		}
	}
	return nil
}
