package discord

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordCommand(t *testing.T) {
	before := commandCounter.Load()

	RecordCommand()
	RecordCommand()

	assert.Equal(t, before+2, commandCounter.Load())
	assert.False(t, lastCommandTime().IsZero())
}

func TestHandleHealth(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(api.Close)

	session, err := discordgo.New("Bot test-token")
	require.NoError(t, err)

	tests := []struct {
		name       string
		dataReady  bool
		apiURL     string
		wantStatus int
		wantState  string
	}{
		{"healthy", true, api.URL, http.StatusOK, "healthy"},
		{"gateway down", false, api.URL, http.StatusServiceUnavailable, "degraded"},
		{"api down", true, "http://127.0.0.1:1", http.StatusServiceUnavailable, "degraded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session.DataReady = tt.dataReady
			bot := &Bot{Session: session, Client: NewAPIClient(tt.apiURL, "")}
			srv := NewHTTPServer("0", bot)

			rec := httptest.NewRecorder()
			srv.server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			var status HealthStatus
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&status))
			assert.Equal(t, tt.wantState, status.Status)
			assert.Equal(t, tt.dataReady, status.Connected)
		})
	}
}
