// Package config loads application settings from environment variables
// with sensible development defaults.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvDevelopment marks a local, interactive environment: templates are
// re-read from source on every request and a built-in session secret is
// tolerated.
const EnvDevelopment = "development"

// devSessionSecret keeps local runs friction-free. Non-development
// environments must provide their own secret.
const devSessionSecret = "taskboard-dev-secret-do-not-use-in-prod"

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Session   SessionConfig
	Templates TemplatesConfig
	Database  DatabaseConfig
	Sentry    SentryConfig
}

// ServerConfig contains process-level settings. The bind address is
// always all interfaces; only the port is configurable.
type ServerConfig struct {
	Port        int    `validate:"required,gt=0,lt=65536"`
	Environment string `validate:"required"`
	LogLevel    string `validate:"required,oneof=debug info warn error"`
	StaticDir   string `validate:"required"`
}

// SessionConfig configures the anonymous session cookie.
type SessionConfig struct {
	Secret       string `validate:"required,min=32"`
	CookieName   string `validate:"required"`
	CookieSecure bool
}

// TemplatesConfig configures the template renderer.
type TemplatesConfig struct {
	Dir   string `validate:"required"`
	Cache bool
}

// DatabaseConfig selects the task store backend. An empty URL selects
// the in-memory store.
type DatabaseConfig struct {
	URL string
}

// SentryConfig configures optional error reporting.
type SentryConfig struct {
	DSN string
}

// Addr returns the listen address (all interfaces).
func (c ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// IsDevelopment reports whether the process runs in development mode.
func (c ServerConfig) IsDevelopment() bool {
	return c.Environment == EnvDevelopment
}

// Load reads configuration from the environment, applies defaults, and
// validates the result.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", 8080)
	v.SetDefault("ENVIRONMENT", EnvDevelopment)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("STATIC_DIR", "static")
	v.SetDefault("TEMPLATES_DIR", "templates")
	v.SetDefault("SESSION_COOKIE_NAME", "taskboard_session")
	v.SetDefault("SESSION_SECURE", false)
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("SENTRY_DSN", "")

	env := v.GetString("ENVIRONMENT")

	// Development re-reads templates on every request so edits show up
	// without a restart; everywhere else compiled templates are cached.
	v.SetDefault("TEMPLATE_CACHE", env != EnvDevelopment)

	secret := v.GetString("SESSION_SECRET")
	if secret == "" && env == EnvDevelopment {
		secret = devSessionSecret
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:        v.GetInt("PORT"),
			Environment: env,
			LogLevel:    v.GetString("LOG_LEVEL"),
			StaticDir:   v.GetString("STATIC_DIR"),
		},
		Session: SessionConfig{
			Secret:       secret,
			CookieName:   v.GetString("SESSION_COOKIE_NAME"),
			CookieSecure: v.GetBool("SESSION_SECURE"),
		},
		Templates: TemplatesConfig{
			Dir:   v.GetString("TEMPLATES_DIR"),
			Cache: v.GetBool("TEMPLATE_CACHE"),
		},
		Database: DatabaseConfig{
			URL: v.GetString("DATABASE_URL"),
		},
		Sentry: SentryConfig{
			DSN: v.GetString("SENTRY_DSN"),
		},
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}

	return cfg, nil
}
