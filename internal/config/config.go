// Package config loads bigfive settings from a YAML file, the environment
// and a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Store backends for survey progress.
const (
	StoreSQLite = "sqlite"
	StoreRedis  = "redis"
	StoreMemory = "memory"
)

// Result backends for the results service.
const (
	ResultsSQLite   = "sqlite"
	ResultsPostgres = "postgres"
)

// Config holds every bigfive setting.
type Config struct {
	Store    StoreConfig    `yaml:"store"`
	Survey   SurveyConfig   `yaml:"survey"`
	Endpoint EndpointConfig `yaml:"endpoint"`
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
}

// StoreConfig selects where in-progress answers are kept.
type StoreConfig struct {
	Backend string `yaml:"backend"` // sqlite, redis or memory
	DBPath  string `yaml:"db_path"` // empty resolves via store.DefaultDBPath
	Redis   struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
		Prefix   string `yaml:"prefix"`
		TTL      string `yaml:"ttl"`
	} `yaml:"redis"`
}

// SurveyConfig tunes the survey flow.
type SurveyConfig struct {
	TestID        string `yaml:"test_id"`
	Lang          string `yaml:"lang"`
	BankFile      string `yaml:"bank_file"` // empty uses the embedded bank
	Pacing        string `yaml:"pacing"`
	WideThreshold int    `yaml:"wide_threshold"`
	Dev           bool   `yaml:"dev"`
}

// EndpointConfig points the TUI at the results service.
type EndpointConfig struct {
	URL     string `yaml:"url"`
	Timeout string `yaml:"timeout"`
}

// ServerConfig configures `bigfive serve`.
type ServerConfig struct {
	Addr           string `yaml:"addr"`
	Results        string `yaml:"results"` // sqlite or postgres
	PostgresURL    string `yaml:"postgres_url"`
	BankID         string `yaml:"bank_id"` // question bank row served from Postgres
	ShutdownPeriod string `yaml:"shutdown_period"`
}

// LogConfig configures zap.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // json or console
	File   string `yaml:"file"`   // empty resolves via logging.DefaultLogPath
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	var cfg Config
	cfg.Store.Backend = StoreSQLite
	cfg.Store.Redis.Addr = "localhost:6379"
	cfg.Store.Redis.Prefix = "bigfive"
	cfg.Store.Redis.TTL = "720h"
	cfg.Survey = SurveyConfig{
		TestID:        "b5-120",
		Lang:          "en",
		Pacing:        "700ms",
		WideThreshold: 100,
	}
	cfg.Endpoint = EndpointConfig{
		URL:     "http://localhost:8080",
		Timeout: "15s",
	}
	cfg.Server = ServerConfig{
		Addr:           ":8080",
		Results:        ResultsSQLite,
		BankID:         "b5-120",
		ShutdownPeriod: "5s",
	}
	cfg.Log = LogConfig{
		Level:  "info",
		Format: "json",
	}
	return cfg
}

// LoadDotEnv loads .env from the working directory into the process
// environment. A missing file is not an error.
func LoadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

// Load reads YAML config from path over the defaults, then applies
// environment overrides. An empty path tries DefaultConfigPath and
// tolerates its absence.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		p, err := DefaultConfigPath()
		if err == nil {
			path = p
		}
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
		case errors.Is(err, fs.ErrNotExist) && !explicit:
		default:
			return cfg, fmt.Errorf("read config: %w", err)
		}
	}

	if err := cfg.ApplyEnv(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/bigfive/config.yaml, falling
// back to ~/.config/bigfive/config.yaml.
func DefaultConfigPath() (string, error) {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "bigfive", "config.yaml"), nil
}

// ApplyEnv overrides fields from BIGFIVE_* environment variables.
func (c *Config) ApplyEnv() error {
	strs := []struct {
		env string
		dst *string
	}{
		{"BIGFIVE_STORE", &c.Store.Backend},
		{"BIGFIVE_DB", &c.Store.DBPath},
		{"BIGFIVE_REDIS_ADDR", &c.Store.Redis.Addr},
		{"BIGFIVE_REDIS_PASSWORD", &c.Store.Redis.Password},
		{"BIGFIVE_REDIS_PREFIX", &c.Store.Redis.Prefix},
		{"BIGFIVE_REDIS_TTL", &c.Store.Redis.TTL},
		{"BIGFIVE_TEST_ID", &c.Survey.TestID},
		{"BIGFIVE_LANG", &c.Survey.Lang},
		{"BIGFIVE_BANK_FILE", &c.Survey.BankFile},
		{"BIGFIVE_PACING", &c.Survey.Pacing},
		{"BIGFIVE_ENDPOINT", &c.Endpoint.URL},
		{"BIGFIVE_ENDPOINT_TIMEOUT", &c.Endpoint.Timeout},
		{"BIGFIVE_SERVER_ADDR", &c.Server.Addr},
		{"BIGFIVE_RESULTS", &c.Server.Results},
		{"BIGFIVE_POSTGRES_URL", &c.Server.PostgresURL},
		{"BIGFIVE_BANK_ID", &c.Server.BankID},
		{"BIGFIVE_LOG_LEVEL", &c.Log.Level},
		{"BIGFIVE_LOG_FORMAT", &c.Log.Format},
		{"BIGFIVE_LOG_FILE", &c.Log.File},
	}
	for _, s := range strs {
		if v := os.Getenv(s.env); v != "" {
			*s.dst = v
		}
	}

	if v := os.Getenv("BIGFIVE_DEV"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("BIGFIVE_DEV: %w", err)
		}
		c.Survey.Dev = b
	}
	if v := os.Getenv("BIGFIVE_REDIS_DB"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("BIGFIVE_REDIS_DB: %w", err)
		}
		c.Store.Redis.DB = n
	}
	if v := os.Getenv("BIGFIVE_WIDE_THRESHOLD"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("BIGFIVE_WIDE_THRESHOLD: %w", err)
		}
		c.Survey.WideThreshold = n
	}
	return nil
}

// Validate checks backend names, thresholds and durations.
func (c Config) Validate() error {
	switch c.Store.Backend {
	case StoreSQLite, StoreMemory:
	case StoreRedis:
		if c.Store.Redis.Addr == "" {
			return fmt.Errorf("store.redis.addr is required for the redis store")
		}
	default:
		return fmt.Errorf("unknown store backend: %q", c.Store.Backend)
	}

	switch c.Server.Results {
	case ResultsSQLite:
	case ResultsPostgres:
		if c.Server.PostgresURL == "" {
			return fmt.Errorf("BIGFIVE_POSTGRES_URL is required for postgres results")
		}
	default:
		return fmt.Errorf("unknown results backend: %q", c.Server.Results)
	}

	if c.Survey.WideThreshold <= 0 {
		return fmt.Errorf("survey.wide_threshold must be positive, got %d", c.Survey.WideThreshold)
	}
	if c.Survey.TestID == "" {
		return fmt.Errorf("survey.test_id is required")
	}

	durations := []struct {
		name, raw string
	}{
		{"survey.pacing", c.Survey.Pacing},
		{"endpoint.timeout", c.Endpoint.Timeout},
		{"store.redis.ttl", c.Store.Redis.TTL},
		{"server.shutdown_period", c.Server.ShutdownPeriod},
	}
	for _, d := range durations {
		if d.raw == "" {
			continue
		}
		v, err := time.ParseDuration(d.raw)
		if err != nil {
			return fmt.Errorf("%s: %w", d.name, err)
		}
		if v < 0 {
			return fmt.Errorf("%s must not be negative", d.name)
		}
	}

	switch c.Log.Format {
	case "", "json", "console":
	default:
		return fmt.Errorf("unknown log format: %q", c.Log.Format)
	}
	return nil
}

// Duration parses a duration string or returns the fallback if empty or
// malformed.
func Duration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}
