package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coolduebtn/stock-rating-checker/consensus"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"PORT", "DATABASE_PATH", "DB_AUTO_MIGRATE", "LOG_LEVEL", "DEV_MODE",
		"SECURE_HEADERS", "EMPTY_CONSENSUS", "APP_VERSION",
		"RATE_LIMIT_ENABLED", "RATE_LIMIT_PER_MINUTE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8090, cfg.Port)
	assert.Equal(t, "ratings.db", cfg.DatabasePath)
	assert.False(t, cfg.AutoMigrate)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.SecureHeaders)
	assert.Equal(t, "1.0.0", cfg.Version)
	assert.Equal(t, ":8090", cfg.Addr())
	assert.Equal(t, consensus.EmptyNoData, cfg.EmptyPolicy)
	assert.False(t, cfg.RateLimitEnabled)
	assert.Equal(t, 10, cfg.RateLimitPerMinute)
	assert.Zero(t, cfg.RateLimit())
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "5001")
	t.Setenv("DATABASE_PATH", "/tmp/scraper.db")
	t.Setenv("DB_AUTO_MIGRATE", "true")
	t.Setenv("SECURE_HEADERS", "True")
	t.Setenv("EMPTY_CONSENSUS", "buy")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5001, cfg.Port)
	assert.Equal(t, "/tmp/scraper.db", cfg.DatabasePath)
	assert.True(t, cfg.AutoMigrate)
	assert.True(t, cfg.SecureHeaders)
	assert.Equal(t, consensus.EmptyBuy, cfg.EmptyPolicy)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "not-a-port")
	t.Setenv("DEV_MODE", "maybe")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8090, cfg.Port)
	assert.False(t, cfg.DevMode)
}

func TestLoad_RejectsUnknownEmptyPolicy(t *testing.T) {
	clearEnv(t)
	t.Setenv("EMPTY_CONSENSUS", "hold")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate_Port(t *testing.T) {
	cfg := &Config{Port: 70000, DatabasePath: "x.db"}
	assert.Error(t, cfg.Validate())
}

func TestLoad_RateLimit(t *testing.T) {
	clearEnv(t)
	t.Setenv("RATE_LIMIT_ENABLED", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.RateLimit())

	t.Setenv("RATE_LIMIT_PER_MINUTE", "30")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.RateLimit())

	t.Setenv("RATE_LIMIT_PER_MINUTE", "0")
	_, err = Load()
	assert.Error(t, err)
}
