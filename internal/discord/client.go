package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/osse101/CraftValue_Go/internal/domain"
)

// Retry configuration for API requests
const (
	maxRetries     = 3
	baseRetryDelay = 500 * time.Millisecond
	requestTimeout = 10 * time.Second
)

// APIClient handles communication with the valuation API
type APIClient struct {
	BaseURL string
	Client  *http.Client
	APIKey  string

	// retryDelay is the first backoff step; doubled on each attempt
	retryDelay time.Duration
}

// APIError is a non-2xx response from the API
type APIError struct {
	Status  int
	Message string
	Kind    domain.ErrorKind
	Item    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("API returned status: %d", e.Status)
	}
	return "API error: " + e.Message
}

// CostSummary is the three scalar valuations of one item
type CostSummary struct {
	Item         string
	TotalCost    float64
	MaterialCost float64
	Stamina      float64
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL, apiKey string) *APIClient {
	return &APIClient{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: requestTimeout,
		},
		APIKey:     apiKey,
		retryDelay: baseRetryDelay,
	}
}

// doRequest performs an HTTP request, retrying transport failures and 5xx responses
// with exponential backoff. The caller must close the response body.
func (c *APIClient) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reqBody []byte
	if body != nil {
		var err error
		reqBody, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal body: %w", err)
		}
	}

	target := c.BaseURL + path

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			delay := c.retryDelay * time.Duration(1<<uint(attempt-1))
			slog.Info("Retrying API request", "attempt", attempt, "path", path, "delay", delay)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		req, err := http.NewRequestWithContext(ctx, method, target, bytes.NewReader(reqBody))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}

		req.Header.Set("Content-Type", "application/json")
		if c.APIKey != "" {
			req.Header.Set("X-API-Key", c.APIKey)
		}

		resp, err := c.Client.Do(req)
		if err != nil {
			lastErr = err
			slog.Warn("API request failed", "error", err, "attempt", attempt)
			continue
		}

		// Success or non-retryable error
		if resp.StatusCode < http.StatusInternalServerError {
			return resp, nil
		}

		resp.Body.Close()
		lastErr = fmt.Errorf("server error: %d", resp.StatusCode)
		slog.Warn("Server error, will retry", "status", resp.StatusCode, "attempt", attempt)
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}

// getJSON issues a request and decodes a 200 response into out
func (c *APIClient) getJSON(ctx context.Context, method, path string, body, out interface{}) error {
	resp, err := c.doRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{Status: resp.StatusCode}
		var errResp struct {
			Error string           `json:"error"`
			Kind  domain.ErrorKind `json:"kind"`
			Item  string           `json:"item"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil {
			apiErr.Message = errResp.Error
			apiErr.Kind = errResp.Kind
			apiErr.Item = errResp.Item
		}
		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

type itemValue struct {
	Value float64 `json:"value"`
}

func (c *APIClient) itemValue(ctx context.Context, name, metric string) (float64, error) {
	var v itemValue
	path := fmt.Sprintf("/api/v1/items/%s/%s", url.PathEscape(name), metric)
	if err := c.getJSON(ctx, http.MethodGet, path, nil, &v); err != nil {
		return 0, err
	}
	return v.Value, nil
}

// GetCostSummary fetches total cost, material cost and stamina of an item
func (c *APIClient) GetCostSummary(ctx context.Context, name string) (*CostSummary, error) {
	total, err := c.itemValue(ctx, name, "cost")
	if err != nil {
		return nil, err
	}
	material, err := c.itemValue(ctx, name, "material-cost")
	if err != nil {
		return nil, err
	}
	stamina, err := c.itemValue(ctx, name, "stamina")
	if err != nil {
		return nil, err
	}
	return &CostSummary{Item: name, TotalCost: total, MaterialCost: material, Stamina: stamina}, nil
}

// EvaluateEfficiency asks the API whether delivering an item is worth it
func (c *APIClient) EvaluateEfficiency(ctx context.Context, name string, reward float64, mode domain.EfficiencyMode) (*domain.EfficiencyResult, error) {
	req := map[string]interface{}{
		"item":   name,
		"reward": reward,
		"mode":   mode,
	}

	var result domain.EfficiencyResult
	if err := c.getJSON(ctx, http.MethodPost, "/api/v1/efficiency", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetStaminaValue returns the coin value of one stamina point at a work-life balance level
func (c *APIClient) GetStaminaValue(ctx context.Context, level int) (float64, error) {
	var v itemValue
	path := "/api/v1/stamina-value?level=" + strconv.Itoa(level)
	if err := c.getJSON(ctx, http.MethodGet, path, nil, &v); err != nil {
		return 0, err
	}
	return v.Value, nil
}

// GetDataset fetches the active dataset, used for autocomplete
func (c *APIClient) GetDataset(ctx context.Context) (*domain.Dataset, error) {
	ds := domain.NewDataset()
	if err := c.getJSON(ctx, http.MethodGet, "/api/v1/dataset?format=json", nil, ds); err != nil {
		return nil, err
	}
	return ds, nil
}

// Ping checks the API liveness endpoint
func (c *APIClient) Ping(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/healthz", nil)
	if err != nil {
		return false
	}
	resp, err := c.Client.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}
