package server

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "showdown.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFileConfig(t *testing.T) {
	t.Parallel()

	path := writeConfigFile(t, `
server {
  address          = "0.0.0.0"
  port             = 9090
  log_level        = "debug"
  max_players      = 6
  summary_interval = "30s"
}
`)

	cfg, err := LoadFileConfig(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "0.0.0.0:9090", cfg.Addr())
	assert.Equal(t, "debug", cfg.Server.LogLevel)

	rc := cfg.RuntimeConfig()
	assert.Equal(t, 6, rc.MaxPlayers)
	assert.Equal(t, 30*time.Second, rc.SummaryInterval)
}

func TestLoadFileConfigAppliesDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfigFile(t, `
server {
  port = 9999
}
`)

	cfg, err := LoadFileConfig(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "localhost:9999", cfg.Addr())
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, 10, cfg.Server.MaxPlayers)
}

func TestLoadFileConfigMissingFile(t *testing.T) {
	t.Parallel()

	cfg, err := LoadFileConfig(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, DefaultFileConfig(), cfg)
}

func TestLoadFileConfigInvalidHCL(t *testing.T) {
	t.Parallel()

	path := writeConfigFile(t, `server { port = `)
	_, err := LoadFileConfig(path)
	assert.Error(t, err)
}

func TestFileConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*FileConfig)
	}{
		{"bad port", func(c *FileConfig) { c.Server.Port = 70000 }},
		{"zero players rejected at validate", func(c *FileConfig) { c.Server.MaxPlayers = -1 }},
		{"too many players for one deck", func(c *FileConfig) { c.Server.MaxPlayers = 11 }},
		{"bad log level", func(c *FileConfig) { c.Server.LogLevel = "verbose" }},
		{"bad interval", func(c *FileConfig) { c.Server.SummaryInterval = "soon" }},
	}

	for _, testCase := range tests {
		tc := testCase
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg := DefaultFileConfig()
			tc.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
