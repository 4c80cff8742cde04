package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for Portfolio Viewer
type Config struct {
	Environment string            `toml:"environment"`
	Server      ServerConfig      `toml:"server"`
	Quotes      QuotesConfig      `toml:"quotes"`
	Performance PerformanceConfig `toml:"performance"`
	Logging     LoggingConfig     `toml:"logging"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// QuotesConfig holds quote source configuration.
// Provider selects the implementation: "synthetic" (default) or "yahoo".
type QuotesConfig struct {
	Provider  string `toml:"provider"`
	BaseURL   string `toml:"base_url"`
	Refresh   string `toml:"refresh"`
	Timeout   string `toml:"timeout"`
	RateLimit int    `toml:"rate_limit"`
	Seed      int64  `toml:"seed"` // synthetic generator seed; 0 means time-based
}

// GetRefresh parses and returns the quote refresh interval
func (c *QuotesConfig) GetRefresh() time.Duration {
	d, err := time.ParseDuration(c.Refresh)
	if err != nil {
		return 60 * time.Second
	}
	return d
}

// GetTimeout parses and returns the HTTP timeout duration
func (c *QuotesConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 10 * time.Second
	}
	return d
}

// PerformanceConfig holds portfolio performance history configuration
type PerformanceConfig struct {
	Refresh   string  `toml:"refresh"`
	BaseValue float64 `toml:"base_value"`
	Days      int     `toml:"days"`
	Seed      int64   `toml:"seed"` // series generator seed; 0 means time-based
}

// GetRefresh parses and returns the history regeneration interval
func (c *PerformanceConfig) GetRefresh() time.Duration {
	d, err := time.ParseDuration(c.Refresh)
	if err != nil {
		return 5 * time.Minute
	}
	return d
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `toml:"level"`
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Quotes: QuotesConfig{
			Provider:  "synthetic",
			BaseURL:   "https://query1.finance.yahoo.com",
			Refresh:   "60s",
			Timeout:   "10s",
			RateLimit: 5,
		},
		Performance: PerformanceConfig{
			Refresh:   "5m",
			BaseValue: 280000,
			Days:      30,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from files with environment overrides
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	// Load and merge each config file in order (later files override earlier)
	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue // Skip missing files
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
	validateProvider(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("PORTFOLIO_ENV"); env != "" {
		config.Environment = env
	}

	if host := os.Getenv("PORTFOLIO_HOST"); host != "" {
		config.Server.Host = host
	}

	if port := os.Getenv("PORTFOLIO_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}

	if level := os.Getenv("PORTFOLIO_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	if provider := os.Getenv("PORTFOLIO_QUOTE_PROVIDER"); provider != "" {
		config.Quotes.Provider = provider
	}

	if seed := os.Getenv("PORTFOLIO_QUOTE_SEED"); seed != "" {
		if s, err := strconv.ParseInt(seed, 10, 64); err == nil {
			config.Quotes.Seed = s
		}
	}
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "production" || env == "prod"
}

// validateProvider ensures the quote provider is a known value, defaulting to synthetic.
func validateProvider(config *Config) {
	p := strings.ToLower(strings.TrimSpace(config.Quotes.Provider))
	if p != "synthetic" && p != "yahoo" {
		p = "synthetic"
	}
	config.Quotes.Provider = p
}
