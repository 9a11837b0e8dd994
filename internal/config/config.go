// Package config loads application configuration from environment
// variables. A .env file, when present, is applied by main before Load runs.
package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

// Config holds the core runtime settings. Optional subsystems (cache, rate
// limiting, Redis, events, jobs) have their own loaders.
type Config struct {
	Env            string // "dev" or "prod"; prod switches logs to JSON
	Port           string // HTTP port to listen on
	LogLevel       string // debug, info, warn, error
	DBUser         string
	DBPass         string // may be empty
	DBHost         string
	DBPort         string
	DBName         string
	DBMigrate      bool // apply embedded migrations at startup
	JWTSecret      string        // HMAC key for access tokens
	AccessTTLMin   int           // access token lifetime in minutes
	RefreshTTLDays int           // refresh token lifetime in days
	BcryptCost     int           // bcrypt cost for new passwords
	ContextIdleTTL time.Duration // idle auth contexts are released after this
	CookieSecure   bool          // set the Secure flag on auth cookies
}

// Load reads the core settings. Missing required variables stop the process.
func Load() Config {
	return Config{
		Env:            envStr("APP_ENV", "dev"),
		Port:           envStr("APP_PORT", "8080"),
		LogLevel:       envStr("LOG_LEVEL", "info"),
		DBUser:         must("DB_USER"),
		DBPass:         os.Getenv("DB_PASS"),
		DBHost:         must("DB_HOST"),
		DBPort:         envStr("DB_PORT", "3306"),
		DBName:         must("DB_NAME"),
		DBMigrate:      envBool("DB_MIGRATE", false),
		JWTSecret:      must("JWT_SECRET"),
		AccessTTLMin:   mustInt("ACCESS_TOKEN_TTL_MIN"),
		RefreshTTLDays: mustInt("REFRESH_TOKEN_TTL_DAYS"),
		BcryptCost:     envInt("BCRYPT_COST", 12),
		ContextIdleTTL: envDur("AUTH_CONTEXT_IDLE_TTL", 24*time.Hour),
		CookieSecure:   envBool("COOKIE_SECURE", false),
	}
}

// IsProd reports whether the service runs in production mode.
func (c Config) IsProd() bool { return c.Env == "prod" || c.Env == "production" }

// must returns a required variable or exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

func mustInt(key string) int {
	s := must(key)
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}

func envStr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func envBool(k string, d bool) bool {
	switch os.Getenv(k) {
	case "1", "true", "TRUE", "True", "yes", "YES", "on", "ON":
		return true
	case "0", "false", "FALSE", "False", "no", "NO", "off", "OFF":
		return false
	}
	return d
}

func envInt(k string, d int) int {
	if n, err := strconv.Atoi(os.Getenv(k)); err == nil {
		return n
	}
	return d
}

func envDur(k string, d time.Duration) time.Duration {
	if dur, err := time.ParseDuration(os.Getenv(k)); err == nil {
		return dur
	}
	return d
}
