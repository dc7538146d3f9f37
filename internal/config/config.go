package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"nordweb/internal/domain"
)

const defaultDatabaseURL = "postgres://localhost:5432/nordweb?sslmode=disable"

type Config struct {
	HTTPAddr            string        `env:"HTTP_ADDR" envDefault:":8080"`
	DatabaseURL         string        `env:"DATABASE_URL"`
	RunMigrations       bool          `env:"MIGRATIONS" envDefault:"true"`
	AdminToken          string        `env:"ADMIN_TOKEN"`
	TranslationCacheTTL time.Duration `env:"TRANSLATION_CACHE_TTL" envDefault:"5m"`
	CompareIdleTTL      time.Duration `env:"COMPARE_IDLE_TTL" envDefault:"24h"`
	MTEndpoint          string        `env:"MT_ENDPOINT"`
	MTAPIKey            string        `env:"MT_API_KEY"`
	LogLevel            string        `env:"LOG_LEVEL" envDefault:"info"`
	DefaultLang         string        `env:"DEFAULT_LANG" envDefault:"en"`
	ShutdownTimeout     time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// DefaultLanguage is DefaultLang after validation.
	DefaultLanguage domain.Language
}

// Load reads .env (optional), parses the environment and validates the result.
func Load() (*Config, error) {
	// .env is optional when variables come from the environment (Docker, CI, etc.).
	_ = godotenv.Load()
	return parse(env.Options{})
}

// LoadFromMap parses cfg from vars only, ignoring the process environment.
func LoadFromMap(vars map[string]string) (*Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("config: parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate applies the rules that env tags cannot express.
func (c *Config) validate() error {
	if strings.TrimSpace(c.AdminToken) == "" {
		return fmt.Errorf("config: ADMIN_TOKEN is required and cannot be empty")
	}

	if strings.TrimSpace(c.DatabaseURL) == "" {
		// Handy default for local development.
		c.DatabaseURL = defaultDatabaseURL
	}
	parsed, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return fmt.Errorf("config: invalid DATABASE_URL (%q): %w", c.DatabaseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: invalid DATABASE_URL (%q): missing scheme or host", c.DatabaseURL)
	}

	if c.MTEndpoint != "" {
		u, err := url.Parse(c.MTEndpoint)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("config: MT_ENDPOINT must be an http(s) URL, got %q", c.MTEndpoint)
		}
	}

	lang, err := domain.ParseLanguage(c.DefaultLang)
	if err != nil {
		return fmt.Errorf("config: DEFAULT_LANG %q is not supported", c.DefaultLang)
	}
	c.DefaultLanguage = lang

	if c.TranslationCacheTTL <= 0 {
		return fmt.Errorf("config: TRANSLATION_CACHE_TTL must be positive")
	}
	return nil
}
