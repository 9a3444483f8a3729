// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	DBPath     string `env:"PORTFOLIO_DB_PATH" envDefault:"./data/portfolio.db"`
	ServerHost string `env:"PORTFOLIO_SERVER_HOST" envDefault:"localhost"`
	ServerPort int    `env:"PORTFOLIO_SERVER_PORT" envDefault:"5000"`
	Env        string `env:"PORTFOLIO_ENV" envDefault:"development"`
	LogLevel   string `env:"PORTFOLIO_LOG_LEVEL" envDefault:"info"`
	UploadsDir string `env:"PORTFOLIO_UPLOADS_DIR" envDefault:"./uploads"`

	// AdminPassword sets the bootstrap admin password on first start.
	// When empty a random password is generated and logged once.
	AdminPassword string `env:"PORTFOLIO_ADMIN_PASSWORD"`
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}
