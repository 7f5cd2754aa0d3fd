package config

import (
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL      string
	Port             string
	IsProduction     bool
	EnableDBCheck    bool
	RunMigrations    bool
	MigrationsPath   string
	CacheTTL         time.Duration
	BatchConcurrency int
	BatchMaxItems    int
	DefaultCurrency  string
	LogLevel         slog.Level
	RateLimit        string   // limiter format, e.g. "120-M"
	CORSOrigins      []string // empty allows any origin
	JWTSecret        string   // empty disables authentication
}

// AuthEnabled reports whether /api/v1 requires a bearer token.
func (c *Config) AuthEnabled() bool { return c.JWTSecret != "" }

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("RUN_MIGRATIONS", true)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("CACHE_TTL_MS", 30000)
	v.SetDefault("BATCH_CONCURRENCY", 5)
	v.SetDefault("BATCH_MAX_ITEMS", 100)
	v.SetDefault("DEFAULT_CURRENCY", "USD")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("RATE_LIMIT", "120-M")
	v.SetDefault("CORS_ORIGINS", "")
	v.SetDefault("JWT_SECRET", "")

	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:     v.GetString("PGSQL_URL"),
		Port:            v.GetString("PORT"),
		IsProduction:    v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:   v.GetBool("ENABLE_DB_CHECK"),
		RunMigrations:   v.GetBool("RUN_MIGRATIONS"),
		MigrationsPath:  v.GetString("MIGRATIONS_PATH"),
		DefaultCurrency: strings.ToUpper(strings.TrimSpace(v.GetString("DEFAULT_CURRENCY"))),
		RateLimit:       v.GetString("RATE_LIMIT"),
		JWTSecret:       v.GetString("JWT_SECRET"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	ttlMs := v.GetInt("CACHE_TTL_MS")
	if ttlMs < 0 {
		log.Printf("Warning: Invalid value for CACHE_TTL_MS (%d). Defaulting to 30000.\n", ttlMs)
		ttlMs = 30000
	}
	cfg.CacheTTL = time.Duration(ttlMs) * time.Millisecond

	cfg.BatchConcurrency = v.GetInt("BATCH_CONCURRENCY")
	if cfg.BatchConcurrency <= 0 {
		log.Printf("Warning: Invalid value for BATCH_CONCURRENCY (%d). Defaulting to 5.\n", cfg.BatchConcurrency)
		cfg.BatchConcurrency = 5
	}
	cfg.BatchMaxItems = v.GetInt("BATCH_MAX_ITEMS")
	if cfg.BatchMaxItems <= 0 {
		log.Printf("Warning: Invalid value for BATCH_MAX_ITEMS (%d). Defaulting to 100.\n", cfg.BatchMaxItems)
		cfg.BatchMaxItems = 100
	}
	if len(cfg.DefaultCurrency) != 3 {
		log.Printf("Warning: Invalid value for DEFAULT_CURRENCY ('%s'). Defaulting to USD.\n", cfg.DefaultCurrency)
		cfg.DefaultCurrency = "USD"
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString("LOG_LEVEL"))); err != nil {
		log.Printf("Warning: Invalid value for LOG_LEVEL ('%s'). Defaulting to info.\n", v.GetString("LOG_LEVEL"))
		cfg.LogLevel = slog.LevelInfo
	}

	for _, origin := range strings.Split(v.GetString("CORS_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, origin)
		}
	}

	return cfg, nil
}
