// Copyright (c) 2026 Planora. All rights reserved.
// Author: dev@planora.app

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (remote client, caches) via constructors.
  - Zero Hidden State: No global variables are used to store config.

This ensures the application is Twelve-Factor compliant by storing config in the env.
*/
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/planora/api/internal/platform/constants"
)

// # Configuration Schema

// Config holds all runtime configuration for the Planora API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Hosted data service (row-level REST contract)
	RemoteURL    string `env:"REMOTE_URL"`
	RemoteAPIKey string `env:"REMOTE_API_KEY"`

	// RefreshInterval controls background snapshot refetching.
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL" envDefault:"5m"`

	// DemoMode serves the built-in seed dataset instead of the remote service.
	DemoMode bool `env:"DEMO_MODE" envDefault:"false"`

	// Snapshot warm cache (Redis, optional — empty disables it)
	RedisURL string `env:"REDIS_URL"`

	// JWTSecret is the identity provider's shared HMAC secret for verifying
	// bearer tokens. Empty disables authentication (development only).
	JWTSecret string `env:"JWT_SECRET"`

	// Cross-Origin Resource Sharing
	ExtraOrigins string `env:"EXTRA_ORIGINS"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	// The remote service is the only data source outside demo mode.
	if !cfg.DemoMode && cfg.RemoteURL == "" {
		return nil, fmt.Errorf("config: REMOTE_URL is required unless DEMO_MODE=true")
	}

	// Guard against REFRESH_INTERVAL=0 disabling the background loop entirely.
	if cfg.RefreshInterval <= 0 {
		cfg.RefreshInterval = constants.DefaultRefreshInterval
	}

	return cfg, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
