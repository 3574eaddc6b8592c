package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds everything the process reads from the environment.
type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	DatabaseDSN string `env:"DB_DSN"`
	JWTSecret   string `env:"JWT_SECRET" envDefault:"dev-insecure-secret-change"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads a local .env file if present (never overwriting variables that
// are already set) and then parses the environment into a Config.
func Load() (*Config, error) {
	_ = godotenv.Load()
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate reports configuration this process cannot start without.
func (c *Config) Validate() error {
	if c.DatabaseDSN == "" {
		return fmt.Errorf("DB_DSN is not set; a Postgres DSN is required")
	}
	return nil
}
