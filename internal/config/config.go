// Package config loads balanze settings from TOML files and the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Store drivers
const (
	DriverREST   = "rest"
	DriverSQLite = "sqlite"
)

// Config holds all configuration for balanze
type Config struct {
	Environment string        `toml:"environment"`
	Server      ServerConfig  `toml:"server"`
	Store       StoreConfig   `toml:"store"`
	Logging     LoggingConfig `toml:"logging"`
	Sentry      SentryConfig  `toml:"sentry"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// Addr returns host:port for http.Server
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// StoreConfig selects where financial records are read from
type StoreConfig struct {
	Driver     string `toml:"driver"`
	URL        string `toml:"url"`
	APIKey     string `toml:"api_key"`
	SQLitePath string `toml:"sqlite_path"`
	Timeout    string `toml:"timeout"`
	RateLimit  int    `toml:"rate_limit"` // requests per second, 0 disables
	MaxRetries int    `toml:"max_retries"`
}

// GetTimeout parses and returns the timeout duration
func (c *StoreConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// SentryConfig enables error reporting when DSN is set
type SentryConfig struct {
	DSN string `toml:"dsn"`
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Store: StoreConfig{
			Driver:     DriverREST,
			SQLitePath: "data/balanze.db",
			Timeout:    "30s",
			RateLimit:  10,
			MaxRetries: 3,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadConfig loads configuration from files with environment overrides.
// A .env file in the working directory is read first if present.
func LoadConfig(paths ...string) (*Config, error) {
	_ = godotenv.Load()

	config := NewDefaultConfig()

	// Later files override earlier ones
	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("BALANZE_ENV"); env != "" {
		config.Environment = env
	}

	if host := os.Getenv("BALANZE_HOST"); host != "" {
		config.Server.Host = host
	}

	if port := os.Getenv("BALANZE_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}

	if level := os.Getenv("BALANZE_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	if driver := os.Getenv("BALANZE_STORE_DRIVER"); driver != "" {
		config.Store.Driver = strings.ToLower(driver)
	}

	if path := os.Getenv("BALANZE_SQLITE_PATH"); path != "" {
		config.Store.SQLitePath = path
	}

	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		config.Sentry.DSN = dsn
	}

	if url := firstEnv("SUPABASE_URL", "VITE_SUPABASE_URL"); url != "" {
		config.Store.URL = url
	}

	// The service key bypasses row-level security and is preferred server side
	if key := firstEnv("SUPABASE_SERVICE_KEY", "SUPABASE_ANON_KEY"); key != "" {
		config.Store.APIKey = key
	}
}

func firstEnv(names ...string) string {
	for _, name := range names {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

// Validate reports the first setting that would prevent startup
func (c *Config) Validate() error {
	if c.Server.Port <= 0 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}

	switch c.Store.Driver {
	case DriverREST:
		if c.Store.URL == "" || c.Store.APIKey == "" {
			return fmt.Errorf("store driver %q requires url and api_key (SUPABASE_URL, SUPABASE_SERVICE_KEY)", DriverREST)
		}
	case DriverSQLite:
		if c.Store.SQLitePath == "" {
			return fmt.Errorf("store driver %q requires sqlite_path", DriverSQLite)
		}
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}

	return nil
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "production" || env == "prod"
}
