package app

import (
	"errors"
	"os"
	"strconv"
	"time"
)

type Config struct {
	DatabaseURL   string // Required: sqlite connection string
	SessionSecret string // Required: secret for signing session tokens
	Port          int    // Required: HTTP listening port

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

// LoadConfig reads configuration from the environment. The storage
// connection string, signing secret and listening port are required; a
// missing one is a startup error the caller must treat as fatal.
func LoadConfig() (Config, error) {
	cfg := Config{
		DatabaseURL:         os.Getenv("CREWLOG_DATABASE_URL"),
		SessionSecret:       os.Getenv("CREWLOG_SESSION_SECRET"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("CREWLOG_DATABASE_URL is required")
	}
	if cfg.SessionSecret == "" {
		return Config{}, errors.New("CREWLOG_SESSION_SECRET is required")
	}

	portStr := os.Getenv("PORT")
	if portStr == "" {
		return Config{}, errors.New("PORT is required")
	}
	port, err := strconv.Atoi(portStr)
	if err != nil || port <= 0 {
		return Config{}, errors.New("PORT must be a positive integer")
	}
	cfg.Port = port

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
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
