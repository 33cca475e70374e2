package config

import (
	"fmt"
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	MigrationsPath string
	DBMaxConns     int32

	// RateLimit uses the ulule limiter format, e.g. "100-M" for 100 requests per minute.
	// An empty value disables rate limiting.
	RateLimit          string
	CORSAllowedOrigins []string

	LogLevel        slog.Level
	ShutdownTimeout time.Duration
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", true)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")
}

func fromViper(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	cfg := &Config{
		DatabaseURL:    v.GetString("PGSQL_URL"),
		Port:           v.GetString("PORT"),
		IsProduction:   v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:  v.GetBool("ENABLE_DB_CHECK"),
		MigrationsPath: v.GetString("MIGRATIONS_PATH"),
		DBMaxConns:     v.GetInt32("DB_MAX_CONNS"),
		RateLimit:      strings.TrimSpace(v.GetString("RATE_LIMIT")),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString("LOG_LEVEL"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	shutdownStr := v.GetString("SHUTDOWN_TIMEOUT")
	shutdown, err := time.ParseDuration(shutdownStr)
	if err != nil || shutdown <= 0 {
		shutdown = 10 * time.Second
		log.Printf("Warning: Invalid value for SHUTDOWN_TIMEOUT ('%s'). Defaulting to %s.\n", shutdownStr, shutdown)
	}
	cfg.ShutdownTimeout = shutdown

	return cfg, nil
}

// AllowsAllOrigins reports whether CORS is open to every origin.
func (c *Config) AllowsAllOrigins() bool {
	return len(c.CORSAllowedOrigins) == 0 || (len(c.CORSAllowedOrigins) == 1 && c.CORSAllowedOrigins[0] == "*")
}
