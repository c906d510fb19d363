package config

import (
	"fmt"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	ServerAddr     string   `env:"SERVER_ADDR" envDefault:"0.0.0.0:8080"`
	DatabaseDSN    string   `env:"DATABASE_DSN" envDefault:"host=localhost user=postgres password=postgres dbname=postgres sslmode=disable"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// NewConfig builds the configuration from environment variables, falling
// back to the declared defaults.
func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}

	if cfg.ServerAddr == "" {
		return nil, fmt.Errorf("server address cannot be empty")
	}
	if cfg.DatabaseDSN == "" {
		return nil, fmt.Errorf("database DSN cannot be empty")
	}

	return cfg, nil
}
