package config

import (
	"fmt"
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

// Config holds application configuration.
type Config struct {
	Port          string `validate:"required,numeric"`
	IsProduction  bool
	LogLevel      string `validate:"oneof=debug info warn error"`
	DatabaseURL   string `validate:"required_if=StoreDriver postgres"`
	EnableDBCheck bool

	// StoreDriver selects where transactions are kept.
	StoreDriver    string `validate:"oneof=postgres memory"`
	MigrationsPath string `validate:"required_if=StoreDriver postgres"`

	FiscalAPIBaseURL  string        `validate:"required,url"`
	FiscalAPITimeout  time.Duration `validate:"gt=0"`
	FiscalAPIPageSize int           `validate:"min=1,max=10000"`

	RateLimit          string `validate:"required"` // ulule/limiter format, e.g. "100-M"
	CORSAllowedOrigins []string

	AuthEnabled bool
	JWTSecret   string `validate:"required_if=AuthEnabled true"`
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("STORE_DRIVER", "")
	v.SetDefault("MIGRATIONS_PATH", "migrations")
	v.SetDefault("FISCAL_API_BASE_URL", "https://api.fiscaldata.treasury.gov/services/api/fiscal_service/v1/accounting/od/rates_of_exchange")
	v.SetDefault("FISCAL_API_TIMEOUT", "10s")
	v.SetDefault("FISCAL_API_PAGE_SIZE", 1000)
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("AUTH_ENABLED", false)
	v.SetDefault("JWT_SECRET", "")

	v.AutomaticEnv()

	cfg := &Config{
		Port:              v.GetString("PORT"),
		IsProduction:      v.GetBool("IS_PRODUCTION"),
		LogLevel:          strings.ToLower(v.GetString("LOG_LEVEL")),
		DatabaseURL:       v.GetString("PGSQL_URL"),
		EnableDBCheck:     v.GetBool("ENABLE_DB_CHECK"),
		StoreDriver:       strings.ToLower(v.GetString("STORE_DRIVER")),
		MigrationsPath:    v.GetString("MIGRATIONS_PATH"),
		FiscalAPIBaseURL:  v.GetString("FISCAL_API_BASE_URL"),
		FiscalAPITimeout:  v.GetDuration("FISCAL_API_TIMEOUT"),
		FiscalAPIPageSize: v.GetInt("FISCAL_API_PAGE_SIZE"),
		RateLimit:         v.GetString("RATE_LIMIT"),
		AuthEnabled:       v.GetBool("AUTH_ENABLED"),
		JWTSecret:         v.GetString("JWT_SECRET"),
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	if cfg.StoreDriver == "" {
		if cfg.DatabaseURL != "" {
			cfg.StoreDriver = StoreDriverPostgres
		} else {
			cfg.StoreDriver = StoreDriverMemory
			log.Println("Warning: PGSQL_URL environment variable not set. Transactions are kept in memory.")
		}
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// SlogLevel maps LogLevel onto a slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// MigrationsURL returns MigrationsPath as a file:// source URL for golang-migrate.
func (c *Config) MigrationsURL() string {
	if strings.Contains(c.MigrationsPath, "://") {
		return c.MigrationsPath
	}
	return "file://" + c.MigrationsPath
}
