// Package config loads service settings from the environment and .env files.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every setting the server reads at startup
type Config struct {
	Port             string
	GinMode          string
	DatabaseURL      string
	DataPath         string
	JWTSecret        string
	APIMasterSecret  string
	AdminUsername    string
	AdminPassword    string
	LogLevel         string
	LogDir           string
	CallsignCacheTTL time.Duration
}

// EnvPaths are tried in order; the first existing file is loaded.
var EnvPaths = []string{".env", "../.env", "../../.env"}

// LoadDotEnv loads the first .env file found in EnvPaths. Variables already
// set in the process environment win. A missing file is not an error.
func LoadDotEnv() error {
	for _, p := range EnvPaths {
		if _, err := os.Stat(p); err == nil {
			if err := godotenv.Load(p); err != nil {
				return fmt.Errorf("load %s: %w", p, err)
			}
			return nil
		}
	}
	return nil
}

// Load reads .env and the process environment into a Config
func Load() (Config, error) {
	if err := LoadDotEnv(); err != nil {
		return Config{}, err
	}
	return FromEnv()
}

// FromEnv reads the process environment only
func FromEnv() (Config, error) {
	cfg := Config{
		Port:            getenv("PORT", "8000"),
		GinMode:         os.Getenv("GIN_MODE"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		DataPath:        getenv("DATA_PATH", "flight_assigner.db"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		APIMasterSecret: os.Getenv("API_MASTER_SECRET"),
		AdminUsername:   getenv("ADMIN_USERNAME", "admin"),
		AdminPassword:   getenv("ADMIN_PASSWORD", "admin123"),
		LogLevel:        strings.ToLower(getenv("LOG_LEVEL", "info")),
		LogDir:          os.Getenv("LOG_DIR"),
	}

	ttl, err := time.ParseDuration(getenv("CALLSIGN_CACHE_TTL", "5m"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid CALLSIGN_CACHE_TTL: %w", err)
	}
	if ttl <= 0 {
		return Config{}, fmt.Errorf("CALLSIGN_CACHE_TTL must be positive, got %s", ttl)
	}
	cfg.CallsignCacheTTL = ttl

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return Config{}, fmt.Errorf("invalid LOG_LEVEL %q", cfg.LogLevel)
	}

	return cfg, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
