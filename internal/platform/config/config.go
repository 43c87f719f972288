// Copyright (c) 2026 OtakuHaven. All rights reserved.
// Author: dev@otakuhaven.app

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values. A local .env file is
loaded first (if present) to keep development setups out of the shell profile.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (storage, services) via constructors.
  - Zero Hidden State: No global variables are used to store config.

This ensures the application is Twelve-Factor compliant by storing config in the env.
*/
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/otakuhaven/otakuhaven/internal/platform/constants"
)

// # Storage Drivers

// Supported values for the STORAGE_DRIVER setting.
const (
	DriverMemory = "memory"
	DriverFile   = "file"
	DriverRedis  = "redis"
)

// # Configuration Schema

// Config holds all runtime configuration for the OtakuHaven application.
type Config struct {

	// Runtime settings
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Debug       bool   `env:"DEBUG"       envDefault:"false"`

	// Key-Value storage medium.
	// "memory" keeps state for the lifetime of the process (tests, demos),
	// "file"   persists a single JSON document on disk,
	// "redis"  delegates to a Redis instance addressed by REDIS_URL.
	StorageDriver string `env:"STORAGE_DRIVER" envDefault:"file"`
	StoragePath   string `env:"STORAGE_PATH"   envDefault:"./data/otakuhaven.json"`
	RedisURL      string `env:"REDIS_URL"`

	// AuthLatency is the artificial suspension applied to login/register,
	// standing in for a future remote account backend round-trip.
	AuthLatency time.Duration `env:"AUTH_LATENCY" envDefault:"1s"`

	// Remote catalog metadata API
	CatalogBaseURL string `env:"CATALOG_BASE_URL"`
	CatalogAPIKey  string `env:"CATALOG_API_KEY"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Best effort: a missing .env file is not an error.
	_ = godotenv.Load()

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if cfg.CatalogBaseURL == "" {
		cfg.CatalogBaseURL = constants.CatalogBaseURL
	}

	switch cfg.StorageDriver {
	case DriverMemory, DriverFile, DriverRedis:
	default:
		return nil, fmt.Errorf("config: unknown STORAGE_DRIVER %q", cfg.StorageDriver)
	}

	if cfg.StorageDriver == DriverRedis && cfg.RedisURL == "" {
		return nil, fmt.Errorf("config: REDIS_URL is required when STORAGE_DRIVER=redis")
	}

	return cfg, nil
}

// IsDevelopment reports whether the application is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the application is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
