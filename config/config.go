// Package config loads service settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/coolduebtn/stock-rating-checker/consensus"
)

// Config holds application configuration
type Config struct {
	Port           int
	DatabasePath   string
	AutoMigrate    bool
	LogLevel       string
	DevMode        bool
	SecureHeaders  bool
	EmptyConsensus string // "no_data" or "buy"
	Version        string

	RateLimitEnabled   bool
	RateLimitPerMinute int

	// EmptyPolicy is EmptyConsensus parsed by Validate.
	EmptyPolicy consensus.EmptyPolicy
}

// Load reads configuration from environment variables, after applying a
// .env file when one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:           getEnvAsInt("PORT", 8090),
		DatabasePath:   getEnv("DATABASE_PATH", "ratings.db"),
		AutoMigrate:    getEnvAsBool("DB_AUTO_MIGRATE", false),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		DevMode:        getEnvAsBool("DEV_MODE", false),
		SecureHeaders:  getEnvAsBool("SECURE_HEADERS", false),
		EmptyConsensus: getEnv("EMPTY_CONSENSUS", "no_data"),
		Version:        getEnv("APP_VERSION", "1.0.0"),

		RateLimitEnabled:   getEnvAsBool("RATE_LIMIT_ENABLED", false),
		RateLimitPerMinute: getEnvAsInt("RATE_LIMIT_PER_MINUTE", 10),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}
	if c.DatabasePath == "" {
		return fmt.Errorf("DATABASE_PATH is required")
	}
	if c.RateLimitEnabled && c.RateLimitPerMinute <= 0 {
		return fmt.Errorf("invalid RATE_LIMIT_PER_MINUTE %d", c.RateLimitPerMinute)
	}
	policy, err := consensus.ParseEmptyPolicy(c.EmptyConsensus)
	if err != nil {
		return fmt.Errorf("invalid EMPTY_CONSENSUS: %w", err)
	}
	c.EmptyPolicy = policy
	return nil
}

// RateLimit is the per-client lookup limit, or zero when disabled.
func (c *Config) RateLimit() int {
	if !c.RateLimitEnabled {
		return 0
	}
	return c.RateLimitPerMinute
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
