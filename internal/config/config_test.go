package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"BIGFIVE_STORE", "BIGFIVE_DB", "BIGFIVE_REDIS_ADDR", "BIGFIVE_REDIS_DB",
		"BIGFIVE_LANG", "BIGFIVE_DEV", "BIGFIVE_ENDPOINT", "BIGFIVE_LOG_LEVEL",
		"BIGFIVE_WIDE_THRESHOLD", "BIGFIVE_RESULTS", "BIGFIVE_POSTGRES_URL",
	} {
		t.Setenv(k, "")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

func TestDefaultConfigValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestLoadYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
store:
  backend: redis
  redis:
    addr: redis:6379
    ttl: 24h
survey:
  lang: de
  pacing: 300ms
endpoint:
  url: https://results.example.com
log:
  level: debug
  format: console
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, StoreRedis, cfg.Store.Backend)
	assert.Equal(t, "redis:6379", cfg.Store.Redis.Addr)
	assert.Equal(t, "bigfive", cfg.Store.Redis.Prefix, "unset keys keep defaults")
	assert.Equal(t, "de", cfg.Survey.Lang)
	assert.Equal(t, "b5-120", cfg.Survey.TestID)
	assert.Equal(t, 300*time.Millisecond, Duration(cfg.Survey.Pacing, 0))
	assert.Equal(t, "https://results.example.com", cfg.Endpoint.URL)
	assert.Equal(t, "console", cfg.Log.Format)
	require.NoError(t, cfg.Validate())
}

func TestLoadEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("survey:\n  lang: fr\n"), 0o644))

	t.Setenv("BIGFIVE_LANG", "es")
	t.Setenv("BIGFIVE_DEV", "true")
	t.Setenv("BIGFIVE_REDIS_DB", "3")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "es", cfg.Survey.Lang)
	assert.True(t, cfg.Survey.Dev)
	assert.Equal(t, 3, cfg.Store.Redis.DB)
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err, "an explicit path must exist")

	cfg, err := Load("")
	require.NoError(t, err, "the default path is optional")
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadBadEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("BIGFIVE_DEV", "maybe")
	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BIGFIVE_DEV")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errSub string
	}{
		{"unknown store", func(c *Config) { c.Store.Backend = "etcd" }, "store backend"},
		{"redis without addr", func(c *Config) {
			c.Store.Backend = StoreRedis
			c.Store.Redis.Addr = ""
		}, "redis.addr"},
		{"postgres without url", func(c *Config) { c.Server.Results = ResultsPostgres }, "POSTGRES_URL"},
		{"unknown results", func(c *Config) { c.Server.Results = "mongo" }, "results backend"},
		{"zero threshold", func(c *Config) { c.Survey.WideThreshold = 0 }, "wide_threshold"},
		{"bad pacing", func(c *Config) { c.Survey.Pacing = "soon" }, "survey.pacing"},
		{"negative timeout", func(c *Config) { c.Endpoint.Timeout = "-1s" }, "endpoint.timeout"},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }, "log format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSub)
		})
	}
}

func TestDuration(t *testing.T) {
	assert.Equal(t, time.Second, Duration("", time.Second))
	assert.Equal(t, time.Second, Duration("junk", time.Second))
	assert.Equal(t, 2*time.Minute, Duration("2m", time.Second))
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("BIGFIVE_ENDPOINT", "")
	require.NoError(t, LoadDotEnv(), "missing .env is fine")

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("BIGFIVE_ENDPOINT=http://dotenv:9000\n"), 0o644))
	// godotenv does not override variables that are already set, even empty ones.
	require.NoError(t, os.Unsetenv("BIGFIVE_ENDPOINT"))
	require.NoError(t, LoadDotEnv())
	t.Cleanup(func() { _ = os.Unsetenv("BIGFIVE_ENDPOINT") })
	assert.Equal(t, "http://dotenv:9000", os.Getenv("BIGFIVE_ENDPOINT"))
}
