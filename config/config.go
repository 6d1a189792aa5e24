// Package config loads runtime settings from the environment.
// File: config/config.go
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

const minSecretLength = 32

// Config holds every runtime setting. Zero values are filled by validate.
type Config struct {
	AppEnv              string
	HTTPAddr            string
	ApplicationURL      string
	DatabaseURL         string
	SessionSecret       string
	SecureCookies       bool
	AllowedOrigins      []string
	DefaultLocale       string
	CacheDBPath         string
	SettingsRefreshSpec string
	CountdownInterval   time.Duration
	MaxTeamSize         int
	EmailDomain         string
	CertificateBaseURL  string
	MetricsEnabled      bool
	TracingEnabled      bool
	RunMigrations       bool
	LogDir              string
}

// IsProduction reports whether APP_ENV is "production".
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Load reads .env (optional) and the environment, then validates.
func Load() (*Config, error) {
	// .env is optional when variables come from the environment (Docker, CI).
	_ = godotenv.Load()

	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from an arbitrary lookup function.
func FromLookup(lookup func(string) (string, bool)) (*Config, error) {
	get := func(key, def string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return def
	}

	cfg := &Config{
		AppEnv:              get("APP_ENV", "development"),
		HTTPAddr:            get("HTTP_ADDR", ":8080"),
		ApplicationURL:      get("APPLICATION_URL", "http://localhost:8080"),
		DatabaseURL:         get("DATABASE_URL", ""),
		SessionSecret:       get("SESSION_SECRET", ""),
		AllowedOrigins:      splitList(get("ALLOWED_ORIGINS", "")),
		DefaultLocale:       get("DEFAULT_LOCALE", "es"),
		CacheDBPath:         get("CACHE_DB_PATH", "data/cache.db"),
		SettingsRefreshSpec: get("SETTINGS_REFRESH_SPEC", "@every 30s"),
		EmailDomain:         get("EMAIL_DOMAIN", "espe.edu.ec"),
		CertificateBaseURL:  get("CERTIFICATE_BASE_URL", "https://certificados-automaticos-club-de-software.onrender.com/certificado"),
		LogDir:              get("LOG_DIR", "./logs"),
	}

	var err error
	if cfg.SecureCookies, err = parseBool("SECURE_COOKIES", get("SECURE_COOKIES", "false")); err != nil {
		return nil, err
	}
	if cfg.MetricsEnabled, err = parseBool("METRICS_ENABLED", get("METRICS_ENABLED", "false")); err != nil {
		return nil, err
	}
	if cfg.TracingEnabled, err = parseBool("TRACING_ENABLED", get("TRACING_ENABLED", "false")); err != nil {
		return nil, err
	}
	if cfg.RunMigrations, err = parseBool("RUN_MIGRATIONS", get("RUN_MIGRATIONS", "true")); err != nil {
		return nil, err
	}
	if cfg.CountdownInterval, err = time.ParseDuration(get("COUNTDOWN_INTERVAL", "1s")); err != nil {
		return nil, fmt.Errorf("config: COUNTDOWN_INTERVAL is invalid: %w", err)
	}
	if cfg.MaxTeamSize, err = strconv.Atoi(get("MAX_TEAM_SIZE", "4")); err != nil {
		return nil, fmt.Errorf("config: MAX_TEAM_SIZE must be an integer: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate applies the business rules on the loaded configuration.
func (c *Config) validate() error {
	if c.DatabaseURL == "" {
		c.DatabaseURL = "postgres://localhost:5432/ctf?sslmode=disable"
	}
	parsed, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return fmt.Errorf("config: DATABASE_URL is invalid (%q): %w", c.DatabaseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: DATABASE_URL is invalid (%q): missing scheme or host", c.DatabaseURL)
	}

	if c.IsProduction() && len(c.SessionSecret) < minSecretLength {
		return fmt.Errorf("config: SESSION_SECRET must be at least %d bytes in production", minSecretLength)
	}
	if c.SessionSecret == "" {
		c.SessionSecret = "development-only-session-secret!!"
	}

	if c.CountdownInterval <= 0 {
		return fmt.Errorf("config: COUNTDOWN_INTERVAL must be positive")
	}
	if c.MaxTeamSize < 1 {
		return fmt.Errorf("config: MAX_TEAM_SIZE must be at least 1")
	}
	if _, err := cron.ParseStandard(c.SettingsRefreshSpec); err != nil {
		return fmt.Errorf("config: SETTINGS_REFRESH_SPEC is invalid: %w", err)
	}
	if c.CertificateBaseURL != "" {
		if _, err := url.Parse(c.CertificateBaseURL); err != nil {
			return fmt.Errorf("config: CERTIFICATE_BASE_URL is invalid: %w", err)
		}
	}
	return nil
}

func parseBool(key, v string) (bool, error) {
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("config: %s must be a boolean: %w", key, err)
	}
	return b, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
