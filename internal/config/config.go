package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds application configuration
type Config struct {
	Port      string `env:"PORT" envDefault:"3000"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	JWTSecret string `env:"JWT_SECRET" envDefault:"mysecretkey123"`
	DBConn    string `env:"DB_CONN"` // empty selects the built-in user set
}

// New loads configuration from environment variables
func New() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}
