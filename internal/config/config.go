package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/content-toolbox/internal/store"
)

// StoreKind names a history backend
type StoreKind string

const (
	StoreMemory StoreKind = "memory"
	StoreFile   StoreKind = "file"
	StoreRedis  StoreKind = "redis"
	StoreSQLite StoreKind = "sqlite"
)

// Config holds all configuration for the application
type Config struct {
	Store     StoreConfig     `yaml:"store"`
	Redis     RedisConfig     `yaml:"redis"`
	Stability StabilityConfig `yaml:"stability"`
	LogLevel  string          `yaml:"log_level"`
	ExportDir string          `yaml:"export_dir"`
}

// StoreConfig selects and tunes the history backend
type StoreConfig struct {
	Kind        StoreKind `yaml:"kind"`
	DataDir     string    `yaml:"data_dir"`
	Compress    bool      `yaml:"compress"`
	MemoryQuota int       `yaml:"memory_quota"`
	SQLitePath  string    `yaml:"sqlite_path"`
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	URL    string `yaml:"url"`
	Prefix string `yaml:"prefix"`
}

// StabilityConfig holds text-to-image API configuration
type StabilityConfig struct {
	APIKey  string        `yaml:"api_key"`
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

// Default returns the configuration used when nothing is set
func Default() *Config {
	return &Config{
		Store: StoreConfig{
			Kind:        StoreFile,
			DataDir:     "./data",
			MemoryQuota: store.DefaultMemoryQuota,
		},
		Redis: RedisConfig{
			Prefix: store.DefaultRedisPrefix,
		},
		Stability: StabilityConfig{
			BaseURL: "https://api.stability.ai",
			Timeout: 60 * time.Second,
		},
		LogLevel:  "info",
		ExportDir: ".",
	}
}

// Load builds configuration from defaults, an optional YAML file named by
// TOOLBOX_CONFIG, then environment variables, in that order.
func Load() (*Config, error) {
	cfg := Default()

	if path := os.Getenv("TOOLBOX_CONFIG"); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}

	cfg.Store.Kind = StoreKind(strings.ToLower(getEnvOrDefault("TOOLBOX_STORE", string(cfg.Store.Kind))))
	cfg.Store.DataDir = getEnvOrDefault("TOOLBOX_DATA_DIR", cfg.Store.DataDir)
	cfg.Store.Compress = getEnvAsBoolOrDefault("TOOLBOX_COMPRESS", cfg.Store.Compress)
	cfg.Store.MemoryQuota = getEnvAsIntOrDefault("TOOLBOX_MEMORY_QUOTA", cfg.Store.MemoryQuota)
	cfg.Store.SQLitePath = getEnvOrDefault("TOOLBOX_SQLITE_PATH", cfg.Store.SQLitePath)

	cfg.Redis.URL = getEnvOrDefault("REDIS_URL", cfg.Redis.URL)
	cfg.Redis.Prefix = getEnvOrDefault("TOOLBOX_REDIS_PREFIX", cfg.Redis.Prefix)

	cfg.Stability.APIKey = getEnvOrDefault("STABILITY_API_KEY", cfg.Stability.APIKey)
	cfg.Stability.BaseURL = getEnvOrDefault("STABILITY_BASE_URL", cfg.Stability.BaseURL)
	cfg.Stability.Timeout = getEnvAsDurationOrDefault("TOOLBOX_HTTP_TIMEOUT", cfg.Stability.Timeout)

	cfg.LogLevel = getEnvOrDefault("LOG_LEVEL", cfg.LogLevel)
	cfg.ExportDir = getEnvOrDefault("TOOLBOX_EXPORT_DIR", cfg.ExportDir)

	if cfg.Store.SQLitePath == "" {
		cfg.Store.SQLitePath = filepath.Join(cfg.Store.DataDir, "history.db")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// Validate checks the combination of settings
func (c *Config) Validate() error {
	switch c.Store.Kind {
	case StoreMemory, StoreFile, StoreSQLite:
	case StoreRedis:
		if c.Redis.URL == "" {
			return fmt.Errorf("REDIS_URL is required when TOOLBOX_STORE=redis")
		}
	default:
		return fmt.Errorf("unknown TOOLBOX_STORE %q (want memory, file, redis or sqlite)", c.Store.Kind)
	}

	if c.Store.MemoryQuota < 0 {
		return fmt.Errorf("TOOLBOX_MEMORY_QUOTA cannot be negative")
	}
	if c.Stability.Timeout <= 0 {
		return fmt.Errorf("TOOLBOX_HTTP_TIMEOUT must be positive")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
