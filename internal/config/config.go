package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"golang.org/x/text/language"
)

// Config holds all service configuration loaded from environment variables.
type Config struct {
	Port            int           `env:"PORT" envDefault:"8080"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"json"`
	ReferenceDir    string        `env:"REFERENCE_DIR"`
	HubURL          string        `env:"HUB_URL" envDefault:"https://newcool-informada.vercel.app"`
	SiteLanguage    string        `env:"SITE_LANGUAGE" envDefault:"es-CL"`
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load reads configuration from environment variables with defaults.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges that struct tags cannot express.
func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config: PORT %d out of range", c.Port)
	}
	if _, err := language.Parse(c.SiteLanguage); err != nil {
		return fmt.Errorf("config: SITE_LANGUAGE %q: %w", c.SiteLanguage, err)
	}
	return nil
}

// Language returns the parsed site language tag.
func (c Config) Language() language.Tag {
	tag, err := language.Parse(c.SiteLanguage)
	if err != nil {
		return language.Spanish
	}
	return tag
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
