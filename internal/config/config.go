// Package config loads and validates application configuration from
// environment variables, with .env file support for development.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Development fallbacks for the credential pair and session secret.
// Running with any of these in production is a misconfiguration; main logs a
// warning when they are in effect.
const (
	DefaultAdminUser     = "admin"
	DefaultAdminPass     = "admin123"
	DefaultSessionSecret = "dev-secret-key"
)

// Config holds all configuration values for the server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of origins allowed to call the /api routes.
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// AdminUser and AdminPass are the single credential pair that gates the
	// site. AdminPassHash, when set, is a bcrypt hash checked instead of
	// AdminPass.
	AdminUser     string
	AdminPass     string
	AdminPassHash string

	// SessionSecret signs the session cookie. SessionTTL bounds how long a
	// login stays valid; defaults to 12h.
	SessionSecret string
	SessionTTL    time.Duration
}

// Load reads configuration from the environment (and a .env file, if one
// exists) and returns a Config. Returns an error listing any required
// variables that are not set.
func Load() (Config, error) {
	// .env is a development convenience; absence is not an error.
	_ = godotenv.Load()

	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		CORSOrigins:   splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		AdminUser:     getEnv("ADMIN_USER", DefaultAdminUser),
		AdminPass:     getEnv("ADMIN_PASS", DefaultAdminPass),
		AdminPassHash: os.Getenv("ADMIN_PASS_HASH"),
		SessionSecret: getEnv("SESSION_SECRET", DefaultSessionSecret),
	}

	ttl, err := time.ParseDuration(getEnv("SESSION_TTL", "12h"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}
	cfg.SessionTTL = ttl

	var missing []string

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
