package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Addr is the address the HTTP server listens on.
	Addr string

	// DBPath is the location of the bolt database file.
	DBPath string

	// UserAPIURL is the base URL /api/user is read from when rendering the
	// navigation. Empty means the session is resolved in process.
	UserAPIURL string

	Fetch   FetchConfig
	Logging LoggingConfig
}

// FetchConfig configures the session data layer.
type FetchConfig struct {
	Timeout          time.Duration
	DedupingInterval time.Duration
}

// LoggingConfig holds logging-related configuration
type LoggingConfig struct {
	Level  string
	Format string // json, console
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env files (fails silently if files don't exist)
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	timeout, err := durationEnv("FETCH_TIMEOUT", 2*time.Second)
	if err != nil {
		return nil, err
	}
	deduping, err := durationEnv("DEDUPING_INTERVAL", 2*time.Second)
	if err != nil {
		return nil, err
	}

	return &Config{
		Addr:       stringEnv("ADDR", ":8080"),
		DBPath:     stringEnv("DB_PATH", "bolt.db"),
		UserAPIURL: os.Getenv("USER_API_URL"),
		Fetch: FetchConfig{
			Timeout:          timeout,
			DedupingInterval: deduping,
		},
		Logging: LoggingConfig{
			Level:  stringEnv("LOG_LEVEL", "info"),
			Format: stringEnv("LOG_FORMAT", "json"),
		},
	}, nil
}

func stringEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return duration, nil
}
