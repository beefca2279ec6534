package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"PORT", "IS_PRODUCTION", "LOG_LEVEL", "PGSQL_URL", "ENABLE_DB_CHECK", "STORE_DRIVER",
	"MIGRATIONS_PATH", "FISCAL_API_BASE_URL", "FISCAL_API_TIMEOUT", "FISCAL_API_PAGE_SIZE",
	"RATE_LIMIT", "CORS_ALLOWED_ORIGINS", "AUTH_ENABLED", "JWT_SECRET",
}

// clearEnv blanks every key so host settings do not leak into the tests.
// viper treats an empty variable as unset and falls back to the default.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.IsProduction)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, StoreDriverMemory, cfg.StoreDriver)
	assert.Equal(t, "migrations", cfg.MigrationsPath)
	assert.Contains(t, cfg.FiscalAPIBaseURL, "api.fiscaldata.treasury.gov")
	assert.Equal(t, 10*time.Second, cfg.FiscalAPITimeout)
	assert.Equal(t, 1000, cfg.FiscalAPIPageSize)
	assert.Equal(t, "100-M", cfg.RateLimit)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.AuthEnabled)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("IS_PRODUCTION", "true")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("PGSQL_URL", "postgres://u:p@localhost:5432/purchases")
	t.Setenv("FISCAL_API_TIMEOUT", "3s")
	t.Setenv("FISCAL_API_PAGE_SIZE", "250")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("AUTH_ENABLED", "true")
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsProduction)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	assert.Equal(t, StoreDriverPostgres, cfg.StoreDriver)
	assert.Equal(t, 3*time.Second, cfg.FiscalAPITimeout)
	assert.Equal(t, 250, cfg.FiscalAPIPageSize)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.True(t, cfg.AuthEnabled)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
}

func TestLoadConfig_ExplicitMemoryDriverWithDatabaseURL(t *testing.T) {
	clearEnv(t)
	t.Setenv("PGSQL_URL", "postgres://u:p@localhost:5432/purchases")
	t.Setenv("STORE_DRIVER", "memory")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, StoreDriverMemory, cfg.StoreDriver)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"postgres without url", map[string]string{"STORE_DRIVER": "postgres"}},
		{"unknown driver", map[string]string{"STORE_DRIVER": "redis"}},
		{"auth without secret", map[string]string{"AUTH_ENABLED": "true"}},
		{"bad log level", map[string]string{"LOG_LEVEL": "chatty"}},
		{"non numeric port", map[string]string{"PORT": "http"}},
		{"bad base url", map[string]string{"FISCAL_API_BASE_URL": "not a url"}},
		{"page size too large", map[string]string{"FISCAL_API_PAGE_SIZE": "20000"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			cfg, err := LoadConfig()
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestMigrationsURL(t *testing.T) {
	assert.Equal(t, "file://migrations", (&Config{MigrationsPath: "migrations"}).MigrationsURL())
	assert.Equal(t, "file:///srv/migrations", (&Config{MigrationsPath: "file:///srv/migrations"}).MigrationsURL())
}

func TestSlogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, (&Config{LogLevel: "info"}).SlogLevel())
	assert.Equal(t, slog.LevelWarn, (&Config{LogLevel: "warn"}).SlogLevel())
	assert.Equal(t, slog.LevelError, (&Config{LogLevel: "error"}).SlogLevel())
}
