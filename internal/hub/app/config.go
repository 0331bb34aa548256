package app

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	JWTSecret string // Required: shared secret for signing bearer tokens
	Issuer    string // Optional: issuer claim for tokens (default: community-hub)

	DatabaseFile   string   // Optional: path to SQLite database file (default: ./hub.db)
	PepperFile     string   // Optional: path to file containing pepper for password hashing (default: ./pepper)
	AllowedOrigins []string // Optional: cross-origin callers permitted to hit the API

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 5000)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	// A local .env is a dev convenience; absence is not an error.
	_ = godotenv.Load()

	return Config{
		JWTSecret:           os.Getenv("HUB_JWT_SECRET"),
		Issuer:              getEnvOrDefault("HUB_ISSUER", "community-hub"),
		DatabaseFile:        getEnvOrDefault("HUB_DATABASE_FILE", "hub.db"),
		PepperFile:          getEnvOrDefault("HUB_PEPPER_FILE", "pepper"),
		AllowedOrigins:      splitList(os.Getenv("HUB_ALLOWED_ORIGINS")),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 5000),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}
