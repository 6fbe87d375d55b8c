package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all application configuration, read from the environment
// (and a .env file when present).
type Config struct {
	Port            string        `env:"PORT" envDefault:"8080"`
	BaseURL         string        `env:"BASE_URL" envDefault:"https://mk-portfolio-eight-tau.vercel.app"`
	GinMode         string        `env:"GIN_MODE" envDefault:"debug"`
	DBPath          string        `env:"DB_PATH" envDefault:"portfolio.db"`
	TrackingEnabled bool          `env:"TRACKING_ENABLED" envDefault:"true"`
	Retention       time.Duration `env:"VISITOR_RETENTION" envDefault:"8760h"`
	CleanupSchedule string        `env:"CLEANUP_SCHEDULE" envDefault:"@daily"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	AllowedOrigins  []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	Admin           AdminConfig
}

// AdminConfig configures the analytics dashboard login.
type AdminConfig struct {
	Username       string  `env:"ADMIN_USERNAME"`
	Password       string  `env:"ADMIN_PASSWORD"`
	LoginRateLimit float64 `env:"ADMIN_LOGIN_RATE" envDefault:"0.2"`
	LoginBurst     int     `env:"ADMIN_LOGIN_BURST" envDefault:"5"`
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.applyDevDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default credentials are only filled in outside release mode.
func (c *Config) applyDevDefaults() {
	if c.GinMode == "release" {
		return
	}
	if c.Admin.Username == "" {
		c.Admin.Username = "admin"
		log.Println("WARNING: Using default admin username. Set ADMIN_USERNAME environment variable.")
	}
	if c.Admin.Password == "" {
		c.Admin.Password = "admin123"
		log.Println("WARNING: Using default admin password. Set ADMIN_PASSWORD environment variable.")
	}
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Port) == "" {
		return fmt.Errorf("PORT is required")
	}
	if !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		return fmt.Errorf("BASE_URL must be an absolute http(s) URL, got %q", c.BaseURL)
	}
	if c.Retention <= 0 {
		return fmt.Errorf("VISITOR_RETENTION must be positive")
	}
	return nil
}

// Addr is the listen address.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// AdminEnabled reports whether dashboard credentials are configured.
func (c *Config) AdminEnabled() bool {
	return c.Admin.Username != "" && c.Admin.Password != ""
}
