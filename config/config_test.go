package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 9090\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "127.0.0.1", cfg.HTTP.Host)
	assert.Equal(t, "mysql", cfg.DB.Driver)
	assert.Equal(t, "memory", cfg.Session.Backend)
	assert.Equal(t, 1440, cfg.Session.TTLMin)
	assert.NotEmpty(t, cfg.Session.HashKey, "a dev hash key is filled in when unset")
	assert.False(t, cfg.SMTP.Enabled)
	assert.Equal(t, "admin", cfg.Admin.Username)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
db:
  driver: sqlite
  path: ":memory:"
session:
  backend: redis
  redis_addr: 10.0.0.5:6379
  ttl_min: 30
log:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.DB.Driver)
	assert.Equal(t, ":memory:", cfg.DB.Path)
	assert.Equal(t, "redis", cfg.Session.Backend)
	assert.Equal(t, "10.0.0.5:6379", cfg.Session.RedisAddr)
	assert.Equal(t, 30, cfg.Session.TTLMin)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
