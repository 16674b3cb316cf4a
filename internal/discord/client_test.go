package discord

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CraftValue_Go/internal/domain"
)

func newTestClient(t *testing.T, handler http.Handler) *APIClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewAPIClient(srv.URL, "test-api-key")
	client.retryDelay = time.Millisecond
	return client
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestAPIClient_GetCostSummary(t *testing.T) {
	values := map[string]float64{"cost": 98, "material-cost": 52, "stamina": 23}

	r := chi.NewRouter()
	r.Get("/api/v1/items/{name}/{metric}", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "iron sword", chi.URLParam(r, "name"))
		writeJSON(w, http.StatusOK, map[string]interface{}{"item": "iron sword", "value": values[chi.URLParam(r, "metric")]})
	})

	summary, err := newTestClient(t, r).GetCostSummary(context.Background(), "iron sword")
	require.NoError(t, err)
	assert.Equal(t, &CostSummary{Item: "iron sword", TotalCost: 98, MaterialCost: 52, Stamina: 23}, summary)
}

func TestAPIClient_EvaluateEfficiency(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/v1/efficiency", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "sword", req["item"])
		assert.Equal(t, 120.0, req["reward"])
		assert.Equal(t, "best", req["mode"])

		round := 2
		writeJSON(w, http.StatusOK, domain.EfficiencyResult{Item: "sword", Mode: domain.ModeBest, Recommend: true, Round: &round})
	})

	result, err := newTestClient(t, r).EvaluateEfficiency(context.Background(), "sword", 120, domain.ModeBest)
	require.NoError(t, err)
	assert.True(t, result.Recommend)
	assert.Equal(t, 2, result.Deliveries())
}

func TestAPIClient_ErrorResponse(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/v1/efficiency", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{
			"error": "A material in this recipe has no price yet",
			"kind":  string(domain.KindMaterialPriceMissing),
			"item":  "coal",
		})
	})

	_, err := newTestClient(t, r).EvaluateEfficiency(context.Background(), "sword", 1, domain.ModeBest)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
	assert.Equal(t, domain.KindMaterialPriceMissing, apiErr.Kind)
	assert.Equal(t, "coal", apiErr.Item)
}

func TestAPIClient_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-api-key", r.Header.Get("X-API-Key"))
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"level": 6, "value": 15.38})
	})

	value, err := newTestClient(t, handler).GetStaminaValue(context.Background(), 6)
	require.NoError(t, err)
	assert.Equal(t, 15.38, value)
	assert.Equal(t, int32(3), calls.Load())
}

func TestAPIClient_GivesUpAfterMaxRetries(t *testing.T) {
	var calls atomic.Int32
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := newTestClient(t, handler).GetStaminaValue(context.Background(), 6)
	assert.ErrorContains(t, err, "max retries exceeded")
	assert.Equal(t, int32(maxRetries+1), calls.Load())
}

func TestAPIClient_GetDataset(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		_, _ = w.Write([]byte(`{"materials":{"ore":10},"recipes":{"ingot":{"category":"smithing","stamina":5,"ingredients":{"ore":2}}},"settings":{}}`))
	})

	ds, err := newTestClient(t, handler).GetDataset(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"ingot"}, ds.RecipeNames())
	assert.Equal(t, []string{"ore"}, ds.MaterialNames())
}
