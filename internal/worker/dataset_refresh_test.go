package worker

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CraftValue_Go/internal/catalog"
	"github.com/osse101/CraftValue_Go/internal/dataset"
)

const (
	refreshDocOre10 = `{"materials":{"ore":10},"recipes":{},"settings":{}}`
	refreshDocOre12 = `{"materials":{"ore":12},"recipes":{},"settings":{}}`
)

func TestDatasetRefreshJob(t *testing.T) {
	var doc atomic.Value
	doc.Store(refreshDocOre10)
	var status atomic.Int32
	status.Store(http.StatusOK)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(int(status.Load()))
		_, _ = w.Write([]byte(doc.Load().(string)))
	}))
	defer srv.Close()

	loader, err := dataset.NewLoader(srv.Client())
	require.NoError(t, err)

	initial, err := loader.Parse([]byte(refreshDocOre10), dataset.FormatJSON)
	require.NoError(t, err)
	store, err := dataset.NewStore(initial)
	require.NoError(t, err)
	svc := catalog.NewService(store, nil, loader, "")

	job := NewDatasetRefreshJob(loader, svc, srv.URL+"/dataset.json")
	assert.Equal(t, JobNameDatasetRefresh, job.Name())
	ctx := context.Background()

	// Same document keeps the version
	version := store.Version()
	require.NoError(t, job.Process(ctx))
	assert.Equal(t, version, store.Version())

	// Changed document replaces the dataset
	doc.Store(refreshDocOre12)
	require.NoError(t, job.Process(ctx))
	assert.Greater(t, store.Version(), version)
	ds, _ := store.Snapshot()
	assert.Equal(t, 12.0, ds.Materials["ore"])

	// Fetch failure leaves the dataset alone
	version = store.Version()
	status.Store(http.StatusInternalServerError)
	assert.Error(t, job.Process(ctx))
	assert.Equal(t, version, store.Version())
}
