//go:build staging

package staging

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	sampleMaterial = "staging_sample_ore"
	sampleRecipe   = "staging_sample_ingot"
)

// addSampleItems adds a material and a recipe that depends on it, removing both
// when the test ends
func addSampleItems(t *testing.T) {
	t.Helper()

	resp, body := makeRequest(t, http.MethodPut, "/api/v1/materials/"+sampleMaterial, map[string]interface{}{"price": 10})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	resp, body = makeRequest(t, http.MethodPut, "/api/v1/recipes/"+sampleRecipe, map[string]interface{}{
		"category":    "smithing",
		"stamina":     5,
		"ingredients": map[string]float64{sampleMaterial: 2},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	t.Cleanup(func() {
		makeRequest(t, http.MethodDelete, "/api/v1/recipes/"+sampleRecipe, nil)
		makeRequest(t, http.MethodDelete, "/api/v1/materials/"+sampleMaterial, nil)
	})
}

func TestValuationEndpoints(t *testing.T) {
	addSampleItems(t)

	resp, body := makeRequest(t, http.MethodGet, "/api/v1/items/"+sampleMaterial+"/cost", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	var value struct {
		Item  string  `json:"item"`
		Value float64 `json:"value"`
	}
	require.NoError(t, json.Unmarshal(body, &value))
	assert.Equal(t, 10.0, value.Value)

	for _, path := range []string{"/cost", "/material-cost", "/stamina", "/breakdown"} {
		resp, body := makeRequest(t, http.MethodGet, "/api/v1/items/"+sampleRecipe+path, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode, "%s: %s", path, string(body))
	}

	resp, body = makeRequest(t, http.MethodGet, "/api/v1/items/staging_missing_item/cost", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode, string(body))
}

func TestEfficiencyEndpoints(t *testing.T) {
	addSampleItems(t)

	resp, body := makeRequest(t, http.MethodPost, "/api/v1/efficiency", map[string]interface{}{
		"item":   sampleRecipe,
		"reward": 100,
		"mode":   "best",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &result))
	assert.Equal(t, sampleRecipe, result["item"])
	assert.Contains(t, result, "recommend")

	resp, body = makeRequest(t, http.MethodPost, "/api/v1/efficiency", map[string]interface{}{
		"item":   sampleRecipe,
		"reward": 100,
		"mode":   "7",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, string(body))

	resp, body = makeRequest(t, http.MethodPost, "/api/v1/efficiency/batch", map[string]interface{}{
		"queries": []map[string]interface{}{
			{"item": sampleRecipe, "reward": 100, "mode": "1"},
			{"item": "staging_missing_item", "reward": 1, "mode": "best"},
		},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var batch struct {
		Results []map[string]interface{} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(body, &batch))
	assert.Len(t, batch.Results, 2)
}

func TestStaminaValue(t *testing.T) {
	resp, body := makeRequest(t, http.MethodGet, "/api/v1/stamina-value?level=6", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
}
