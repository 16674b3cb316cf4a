package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CraftValue_Go/internal/catalog"
	"github.com/osse101/CraftValue_Go/internal/config"
	"github.com/osse101/CraftValue_Go/internal/dataset"
)

func TestCleanupLogs(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 12; i++ {
		name := fmt.Sprintf("session_2026-01-%02d_10-00-00.log", i+1)
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o600))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0o600))

	cleanupLogs(dir, LogFileRetentionCount)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var logs []string
	for _, e := range entries {
		if filepath.Ext(e.Name()) == LogFileExtension {
			logs = append(logs, e.Name())
		}
	}
	assert.Len(t, logs, LogFileRetentionCount)
	assert.NotContains(t, logs, "session_2026-01-01_10-00-00.log")
	assert.Contains(t, logs, "session_2026-01-12_10-00-00.log")
	assert.FileExists(t, filepath.Join(dir, "notes.txt"))
}

func TestLoggerConfig(t *testing.T) {
	cfg := &config.Config{LogLevel: "debug", LogFormat: "json", ServiceName: "craft-value", Version: "1.2.0", Environment: "dev"}

	lc := LoggerConfig(cfg)
	assert.True(t, lc.AddSource)
	assert.True(t, lc.IsJSON())
	assert.Equal(t, "1.2.0", lc.Version)

	cfg.Environment = "prod"
	assert.False(t, LoggerConfig(cfg).AddSource)
}

func TestLoadInitialDataset(t *testing.T) {
	loader, err := dataset.NewLoader(nil)
	require.NoError(t, err)

	dir := t.TempDir()
	existing := filepath.Join(dir, "forge.yaml")
	require.NoError(t, os.WriteFile(existing, []byte("materials:\n  ore: 10\nrecipes: {}\nsettings: {}\n"), 0o600))

	tests := []struct {
		name      string
		cfg       *config.Config
		wantErr   bool
		wantOre   float64
		wantEmpty bool
	}{
		{name: "no source", cfg: &config.Config{}, wantEmpty: true},
		{name: "file", cfg: &config.Config{DatasetPath: existing}, wantOre: 10},
		{name: "missing file starts empty", cfg: &config.Config{DatasetPath: filepath.Join(dir, "new.json")}, wantEmpty: true},
		{name: "unreachable url", cfg: &config.Config{DatasetURL: "http://127.0.0.1:1/dataset.json"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := LoadInitialDataset(context.Background(), tt.cfg, loader)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.wantEmpty {
				assert.Empty(t, ds.Materials)
				return
			}
			assert.Equal(t, tt.wantOre, ds.Materials["ore"])
		})
	}
}

func TestSetupPersistence_Disabled(t *testing.T) {
	pool, repo, err := SetupPersistence(context.Background(), &config.Config{DBEnabled: false})
	require.NoError(t, err)
	assert.Nil(t, pool)
	assert.Nil(t, repo)
}

func TestStartDatasetRefresh(t *testing.T) {
	loader, err := dataset.NewLoader(nil)
	require.NoError(t, err)
	store, err := dataset.NewStore(nil)
	require.NoError(t, err)
	svc := catalog.NewService(store, nil, loader, "")

	sched, pool := StartDatasetRefresh(context.Background(), &config.Config{DatasetURL: "http://example.invalid/d.json"}, loader, svc)
	assert.Nil(t, sched)
	assert.Nil(t, pool)

	cfg := &config.Config{DatasetURL: "http://example.invalid/d.json", DatasetRefreshInterval: time.Hour}
	sched, pool = StartDatasetRefresh(context.Background(), cfg, loader, svc)
	require.NotNil(t, sched)
	require.NotNil(t, pool)

	assert.NotPanics(t, func() {
		GracefulShutdown(context.Background(), ShutdownComponents{Scheduler: sched, WorkerPool: pool})
	})
}

func TestGracefulShutdown_NilComponents(t *testing.T) {
	assert.NotPanics(t, func() {
		GracefulShutdown(context.Background(), ShutdownComponents{})
	})
}
