// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.DBPath != "./data/portfolio.db" {
		t.Errorf("DBPath = %q, want %q", cfg.DBPath, "./data/portfolio.db")
	}
	if cfg.ServerPort != 5000 {
		t.Errorf("ServerPort = %d, want 5000", cfg.ServerPort)
	}
	if cfg.Env != "development" {
		t.Errorf("Env = %q, want %q", cfg.Env, "development")
	}
	if !cfg.IsDevelopment() {
		t.Error("IsDevelopment() = false, want true")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORTFOLIO_SERVER_PORT", "8080")
	t.Setenv("PORTFOLIO_ENV", "production")
	t.Setenv("PORTFOLIO_UPLOADS_DIR", "/srv/uploads")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.ServerPort != 8080 {
		t.Errorf("ServerPort = %d, want 8080", cfg.ServerPort)
	}
	if cfg.IsDevelopment() {
		t.Error("IsDevelopment() = true, want false in production")
	}
	if cfg.UploadsDir != "/srv/uploads" {
		t.Errorf("UploadsDir = %q, want %q", cfg.UploadsDir, "/srv/uploads")
	}
}

func TestServerAddr(t *testing.T) {
	cfg := Config{ServerHost: "0.0.0.0", ServerPort: 8080}
	if got := cfg.ServerAddr(); got != "0.0.0.0:8080" {
		t.Errorf("ServerAddr() = %q, want %q", got, "0.0.0.0:8080")
	}
}
