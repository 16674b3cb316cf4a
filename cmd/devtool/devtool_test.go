package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTotalCoverage(t *testing.T) {
	tests := []struct {
		name    string
		out     string
		want    float64
		wantErr bool
	}{
		{
			name: "total line",
			out:  "github.com/x/y.go:10:\tFoo\t100.0%\ntotal:\t\t\t(statements)\t83.4%",
			want: 83.4,
		},
		{name: "missing total", out: "github.com/x/y.go:10:\tFoo\t100.0%", wantErr: true},
		{name: "bad percentage", out: "total:\t(statements)\tabc%", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseTotalCoverage(tt.out)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 0.001)
		})
	}
}

func TestParseCoverageConfig(t *testing.T) {
	cfg, err := parseCoverageConfig([]string{"-pkgs", "./internal/pricing, ./internal/pricing", "out/c.out", "70", "./internal/delivery"})
	require.NoError(t, err)
	assert.Equal(t, "out/c.out", cfg.file)
	assert.Equal(t, 70.0, cfg.threshold)
	assert.Equal(t, []string{"./internal/delivery", "./internal/pricing"}, cfg.packages)

	cfg, err = parseCoverageConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, defaultCoverageFile, cfg.file)
	assert.Equal(t, defaultCoverageThreshold, cfg.threshold)

	_, err = parseCoverageConfig([]string{"../escape.out"})
	assert.Error(t, err)

	_, err = parseCoverageConfig([]string{"c.out", "lots"})
	assert.Error(t, err)
}

func TestToolVersion(t *testing.T) {
	assert.Equal(t, "go1.24.0", toolVersion("go version go1.24.0 linux/amd64", 2))
	assert.Equal(t, "24.0.5", toolVersion("Docker version 24.0.5, build ced0996", 2))
	assert.Equal(t, "v3.26.0", toolVersion("goose version:v3.26.0", -1))
	assert.Equal(t, "odd", toolVersion("odd", 3))
}

func TestCheckHostile(t *testing.T) {
	assert.NoError(t, checkHostile("go", "test", "./...", "-coverprofile=logs/coverage.out"))
	assert.Error(t, checkHostile("go", "test; rm -rf /", "$(whoami)"))
	assert.Error(t, checkHostile("a\nb"))
}

func TestRegistry(t *testing.T) {
	r := NewRegistry(&SeedCommand{}, &CheckDepsCommand{})

	cmds := r.List()
	require.Len(t, cmds, 2)
	assert.Equal(t, "check-deps", cmds[0].Name())

	_, ok := r.Get("seed")
	assert.True(t, ok)
	_, ok = r.Get("deploy")
	assert.False(t, ok)

	var help bytes.Buffer
	r.WriteHelp(&help)
	assert.Contains(t, help.String(), "check-deps")
	assert.Contains(t, help.String(), "seed")
}

type recordingCommand struct {
	args []string
}

func (c *recordingCommand) Name() string { return "record" }
func (c *recordingCommand) Description() string { return "records its args" }
func (c *recordingCommand) Run(args []string) error {
	c.args = args
	return nil
}

func TestRegistry_Dispatch(t *testing.T) {
	cmd := &recordingCommand{}
	r := NewRegistry(cmd)

	require.NoError(t, r.Dispatch([]string{"record", "a", "b"}))
	assert.Equal(t, []string{"a", "b"}, cmd.args)

	assert.ErrorIs(t, r.Dispatch(nil), errUsage)
	assert.ErrorIs(t, r.Dispatch([]string{"deploy"}), errUsage)
}
