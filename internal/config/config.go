// Package config provides application configuration management.
// Configuration is loaded from environment variables following 12-factor principles.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

// Config holds all application configuration.
// All fields are populated from environment variables.
type Config struct {
	// Capacity hint for the user store. Not an enforced limit.
	StoreCapacity int `env:"STORE_CAPACITY" envDefault:"100"`

	// Number of workers for the counter demo.
	CounterWorkers int `env:"COUNTER_WORKERS" envDefault:"10"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
}

// Load parses environment variables and returns a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.StoreCapacity < 0 {
		return nil, fmt.Errorf("STORE_CAPACITY must not be negative, got %d", cfg.StoreCapacity)
	}
	if cfg.CounterWorkers < 0 {
		return nil, fmt.Errorf("COUNTER_WORKERS must not be negative, got %d", cfg.CounterWorkers)
	}

	return cfg, nil
}
