package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Port   string
	APIKey string

	DBHost string
	DBPort string
	DBName string
	DBUser string
	DBPass string

	// DBMaxOpenConns is the maximum number of open connections to the database (default 25).
	DBMaxOpenConns int
	// DBMaxIdleConns is the maximum number of idle connections (default 5).
	DBMaxIdleConns int

	JWTSecret string

	// JWTExpireMinutes is the access token lifetime in minutes (default 30). Set via JWT_EXPIRE_MINUTES.
	JWTExpireMinutes int

	// Env is "dev" (default) or "prod". When "prod", JWT_SECRET and API_KEY must not be the defaults.
	Env string

	// LogFormat is "text" (default) or "json" for structured logging.
	LogFormat string

	// TLSCertFile and TLSKeyFile enable HTTPS when both are set.
	// When empty, the API listens with plain HTTP.
	TLSCertFile string
	TLSKeyFile  string

	// CORSAllowedOrigins is a list of origins allowed for CORS.
	// Set via CORS_ALLOWED_ORIGINS (comma-separated). When empty, no CORS headers are sent (same-origin only).
	CORSAllowedOrigins []string

	// RateLimitPerMinute is the per-IP request budget (default 120). 0 disables limiting.
	RateLimitPerMinute int
	// RateLimitBurst is the per-IP burst size (default 30).
	RateLimitBurst int

	// RetentionDays deletes completed tasks older than this many days via a
	// nightly sweep. 0 (default) disables the sweep entirely.
	RetentionDays int
}

const (
	defaultJWTSecret = "dev-secret-change-me"
	defaultAPIKey    = "dev-api-key"
)

func Load() Config {
	return Config{
		Port:   getEnv("PORT", "8080"),
		APIKey: getEnv("API_KEY", defaultAPIKey),

		DBHost: getEnv("DB_HOST", "localhost"),
		DBPort: getEnv("DB_PORT", "5432"),
		DBName: getEnv("DB_NAME", "taskdeck"),
		DBUser: getEnv("DB_USER", "taskdeck"),
		DBPass: getEnv("DB_PASS", "taskdeck"),

		DBMaxOpenConns: getEnvInt("DB_MAX_OPEN_CONNS", 25),
		DBMaxIdleConns: getEnvInt("DB_MAX_IDLE_CONNS", 5),

		JWTSecret:        getEnv("JWT_SECRET", defaultJWTSecret),
		JWTExpireMinutes: getEnvInt("JWT_EXPIRE_MINUTES", 30),

		Env: getEnv("ENV", "dev"),

		LogFormat: getEnv("LOG_FORMAT", "text"),

		TLSCertFile: getEnv("TLS_CERT_FILE", ""),
		TLSKeyFile:  getEnv("TLS_KEY_FILE", ""),

		CORSAllowedOrigins: parseCORSOrigins(getEnv("CORS_ALLOWED_ORIGINS", "")),

		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 120),
		RateLimitBurst:     getEnvInt("RATE_LIMIT_BURST", 30),

		RetentionDays: getEnvInt("RETENTION_DAYS", 0),
	}
}

// Validate rejects configurations that must not reach production: the default
// signing secret or API key with ENV=prod.
func (c Config) Validate() error {
	if c.Env != "prod" {
		return nil
	}
	if c.JWTSecret == defaultJWTSecret {
		return fmt.Errorf("JWT_SECRET must be set in prod")
	}
	if c.APIKey == defaultAPIKey {
		return fmt.Errorf("API_KEY must be set in prod")
	}
	return nil
}

// parseCORSOrigins splits a comma-separated list of origins and trims spaces. Empty strings are omitted.
func parseCORSOrigins(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if o := strings.TrimSpace(p); o != "" {
			out = append(out, o)
		}
	}
	return out
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return fallback
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
