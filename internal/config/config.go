// Package config provides configuration loading and validation for the service.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the runtime configuration for the visibility insights service.
// Values are read from environment variables; see Load for the variable names.
type Config struct {
	Port        int
	DatabaseURL string
	APIKey      string // Gemini API key

	// DashboardPasswordHash is the bcrypt hash of the shared dashboard password.
	DashboardPasswordHash string

	JWT *JWTConfig
}

// Load builds a Config from environment variables.
// Required: DATABASE_URL, GEMINI_API_KEY, DASHBOARD_PASSWORD_HASH, JWT_SECRET.
// Optional: PORT (default 8080), JWT_EXPIRATION_HOURS (default 24).
func Load() (*Config, error) {
	cfg := &Config{
		Port:                  8080,
		DatabaseURL:           os.Getenv("DATABASE_URL"),
		APIKey:                os.Getenv("GEMINI_API_KEY"),
		DashboardPasswordHash: os.Getenv("DASHBOARD_PASSWORD_HASH"),
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %v", err)
		}
		cfg.Port = port
	}

	jwtCfg, err := NewJWTConfig()
	if err != nil {
		return nil, err
	}
	cfg.JWT = jwtCfg

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required but not set")
	}
	if c.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required but not set")
	}
	if c.DashboardPasswordHash == "" {
		return fmt.Errorf("DASHBOARD_PASSWORD_HASH is required but not set")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.Port)
	}
	return nil
}
