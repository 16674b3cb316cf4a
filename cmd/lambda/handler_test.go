package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CraftValue_Go/internal/config"
	"github.com/osse101/CraftValue_Go/internal/domain"
)

func newTestHandler(t *testing.T) *functionHandler {
	t.Helper()
	h, err := newFunctionHandler(context.Background(), &config.Config{CacheSize: 16, CacheTTL: time.Minute})
	require.NoError(t, err)
	return h
}

func TestHandle(t *testing.T) {
	h := newTestHandler(t)

	inline := `{"materials":{"gem":50},"recipes":{"ring":{"category":"smithing","stamina":0,"ingredients":{"gem":1}}},"settings":{}}`

	tests := []struct {
		name       string
		event      events.LambdaFunctionURLRequest
		wantStatus int
		wantItem   string
		wantKind   domain.ErrorKind
	}{
		{
			name:       "bundled dataset",
			event:      events.LambdaFunctionURLRequest{Body: `{"item":"sword","reward":124,"mode":"1"}`},
			wantStatus: http.StatusOK,
			wantItem:   "sword",
		},
		{
			name: "base64 body defaults to best mode",
			event: events.LambdaFunctionURLRequest{
				Body:            base64.StdEncoding.EncodeToString([]byte(`{"item":"ingot","reward":30}`)),
				IsBase64Encoded: true,
			},
			wantStatus: http.StatusOK,
			wantItem:   "ingot",
		},
		{
			name:       "inline dataset",
			event:      events.LambdaFunctionURLRequest{Body: `{"item":"ring","reward":60,"dataset":` + inline + `}`},
			wantStatus: http.StatusOK,
			wantItem:   "ring",
		},
		{
			name:       "bad base64",
			event:      events.LambdaFunctionURLRequest{Body: "%%%", IsBase64Encoded: true},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid json",
			event:      events.LambdaFunctionURLRequest{Body: "{"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing item",
			event:      events.LambdaFunctionURLRequest{Body: `{"reward":10}`},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "negative reward",
			event:      events.LambdaFunctionURLRequest{Body: `{"item":"sword","reward":-1}`},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown mode",
			event:      events.LambdaFunctionURLRequest{Body: `{"item":"sword","reward":98,"mode":"7"}`},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown item",
			event:      events.LambdaFunctionURLRequest{Body: `{"item":"ghost","reward":5}`},
			wantStatus: http.StatusNotFound,
			wantKind:   domain.KindItemNotFound,
		},
		{
			name:       "invalid inline dataset",
			event:      events.LambdaFunctionURLRequest{Body: `{"item":"ring","reward":1,"dataset":{"materials":{}}}`},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := h.handle(context.Background(), tt.event)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Equal(t, "application/json", resp.Headers["Content-Type"])

			if tt.wantStatus == http.StatusOK {
				var result domain.EfficiencyResult
				require.NoError(t, json.Unmarshal([]byte(resp.Body), &result))
				assert.Equal(t, tt.wantItem, result.Item)
				return
			}

			var body errorBody
			require.NoError(t, json.Unmarshal([]byte(resp.Body), &body))
			assert.NotEmpty(t, body.Error)
			assert.Equal(t, tt.wantKind, body.Kind)
		})
	}
}

func TestHandle_BundledCosts(t *testing.T) {
	h := newTestHandler(t)

	cost, err := h.pricing.ResolveCost(context.Background(), "sword")
	require.NoError(t, err)
	assert.Equal(t, 124.0, cost)
}
