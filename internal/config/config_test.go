package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var toolboxEnv = []string{
	"TOOLBOX_CONFIG", "TOOLBOX_STORE", "TOOLBOX_DATA_DIR", "TOOLBOX_COMPRESS",
	"TOOLBOX_MEMORY_QUOTA", "TOOLBOX_SQLITE_PATH", "REDIS_URL", "TOOLBOX_REDIS_PREFIX",
	"STABILITY_API_KEY", "STABILITY_BASE_URL", "TOOLBOX_HTTP_TIMEOUT", "LOG_LEVEL",
	"TOOLBOX_EXPORT_DIR",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range toolboxEnv {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, StoreFile, cfg.Store.Kind)
	assert.Equal(t, "./data", cfg.Store.DataDir)
	assert.Equal(t, 5*1024*1024, cfg.Store.MemoryQuota)
	assert.Equal(t, filepath.Join("./data", "history.db"), cfg.Store.SQLitePath)
	assert.Equal(t, "toolbox:", cfg.Redis.Prefix)
	assert.Equal(t, 60*time.Second, cfg.Stability.Timeout)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_Env(t *testing.T) {
	clearEnv(t)
	t.Setenv("TOOLBOX_STORE", "Redis")
	t.Setenv("REDIS_URL", "redis://localhost:6379/2")
	t.Setenv("TOOLBOX_COMPRESS", "true")
	t.Setenv("TOOLBOX_MEMORY_QUOTA", "1024")
	t.Setenv("TOOLBOX_HTTP_TIMEOUT", "5s")
	t.Setenv("STABILITY_API_KEY", "sk-123")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, StoreRedis, cfg.Store.Kind)
	assert.Equal(t, "redis://localhost:6379/2", cfg.Redis.URL)
	assert.True(t, cfg.Store.Compress)
	assert.Equal(t, 1024, cfg.Store.MemoryQuota)
	assert.Equal(t, 5*time.Second, cfg.Stability.Timeout)
	assert.Equal(t, "sk-123", cfg.Stability.APIKey)
}

func TestLoad_Validation(t *testing.T) {
	clearEnv(t)
	t.Setenv("TOOLBOX_STORE", "floppy")
	_, err := Load()
	assert.ErrorContains(t, err, "unknown TOOLBOX_STORE")

	clearEnv(t)
	t.Setenv("TOOLBOX_STORE", "redis")
	_, err = Load()
	assert.ErrorContains(t, err, "REDIS_URL is required")
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "toolbox.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
store:
  kind: sqlite
  sqlite_path: /tmp/drafts.db
stability:
  timeout: 10s
log_level: debug
`), 0o644))
	t.Setenv("TOOLBOX_CONFIG", path)
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, StoreSQLite, cfg.Store.Kind)
	assert.Equal(t, "/tmp/drafts.db", cfg.Store.SQLitePath)
	assert.Equal(t, 10*time.Second, cfg.Stability.Timeout)
	assert.Equal(t, "warn", cfg.LogLevel, "env overrides the file")
	assert.Equal(t, "./data", cfg.Store.DataDir, "unset file keys keep defaults")
}

func TestLoad_BadFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "toolbox.yaml")
	require.NoError(t, os.WriteFile(path, []byte("store: [nope"), 0o644))
	t.Setenv("TOOLBOX_CONFIG", path)

	_, err := Load()
	assert.ErrorContains(t, err, "failed to parse config file")
}
