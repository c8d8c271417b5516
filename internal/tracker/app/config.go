package app

import (
	"errors"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jobtrack/jobtrack/pkg/httpx"
)

type Config struct {
	JWTSecret     string        // Required: HMAC key for session token signing
	JWTExpiration time.Duration // Optional: session token lifetime (default: 24h)

	CookieName     string        // Optional: session cookie name (default: jt_session)
	CookieSecure   bool          // Optional: mark the session cookie Secure (default: false)
	CookieSameSite http.SameSite // Optional: SameSite policy (lax, strict, none) (default: lax)
	CookiePath     string        // Optional: cookie path (default: /)
	CookieDomain   string        // Optional: cookie domain (default: host-only)

	DatabaseFile        string        // Optional: path to SQLite database file (default: ./jobtrack.db)
	PepperFile          string        // Optional: path to file containing pepper for password hashing (default: ./pepper)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

var ErrMissingJWTSecret = errors.New("JOBTRACK_JWT_SECRET must be set")

func LoadConfig() (Config, error) {
	cfg := Config{
		JWTSecret:           os.Getenv("JOBTRACK_JWT_SECRET"),
		JWTExpiration:       getEnvMillisOrDefault("JOBTRACK_JWT_EXPIRATION_MS", 24*time.Hour),
		CookieName:          getEnvOrDefault("JOBTRACK_COOKIE_NAME", "jt_session"),
		CookieSecure:        getEnvBoolOrDefault("JOBTRACK_COOKIE_SECURE", false),
		CookieSameSite:      httpx.ParseSameSite(getEnvOrDefault("JOBTRACK_COOKIE_SAMESITE", "lax")),
		CookiePath:          getEnvOrDefault("JOBTRACK_COOKIE_PATH", "/"),
		CookieDomain:        os.Getenv("JOBTRACK_COOKIE_DOMAIN"),
		DatabaseFile:        getEnvOrDefault("JOBTRACK_DATABASE_FILE", "jobtrack.db"),
		PepperFile:          getEnvOrDefault("JOBTRACK_PEPPER_FILE", "pepper"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	if strings.TrimSpace(cfg.JWTSecret) == "" {
		return cfg, ErrMissingJWTSecret
	}

	return cfg, nil
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

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if boolValue, err := strconv.ParseBool(value); err == nil {
		return boolValue
	}

	return defaultValue
}

// getEnvMillisOrDefault reads an integer number of milliseconds.
func getEnvMillisOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if ms, err := strconv.ParseInt(value, 10, 64); err == nil && ms > 0 {
		return time.Duration(ms) * time.Millisecond
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g. "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer seconds
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
