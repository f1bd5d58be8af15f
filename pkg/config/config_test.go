package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Store.Path)
	assert.Equal(t, 5*time.Minute, cfg.Store.GCInterval)
	assert.Equal(t, "rut_data.txt", cfg.Registry.OutputFile)
	assert.Empty(t, cfg.Metrics.Addr)
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keytrie.yaml")
	err := os.WriteFile(path, []byte(`
log:
  level: debug
store:
  path: /var/lib/keytrie
  gc_interval: 1m
registry:
  output_file: out.txt
`), 0o644)
	require.NoError(t, err)

	t.Setenv("KEYTRIE_METRICS_ADDR", ":9090")
	t.Setenv("KEYTRIE_REGISTRY_OUTPUT_FILE", "env.txt")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/var/lib/keytrie", cfg.Store.Path)
	assert.Equal(t, time.Minute, cfg.Store.GCInterval)
	assert.Equal(t, "env.txt", cfg.Registry.OutputFile)
	assert.Equal(t, ":9090", cfg.Metrics.Addr)
}

func TestLoad_Invalid(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	t.Setenv("KEYTRIE_LOG_LEVEL", "loud")
	_, err = Load("")
	assert.Error(t, err)
}
