// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/base64"
	"fmt"
	"log/slog"
	"time"

	"github.com/olegiv/portfolio-go/internal/auth"
	"github.com/olegiv/portfolio-go/internal/model"
)

// DefaultAdminUsername is the bootstrap admin account name.
const DefaultAdminUsername = "admin"

// Seed creates initial data in the database. When no admin user exists one is
// created with adminPassword, or with a random password (logged once) when
// adminPassword is empty. A fixed default password is deliberately not used.
func Seed(ctx context.Context, db *sql.DB, adminPassword string) error {
	queries := New(db)

	_, err := queries.GetUserByUsername(ctx, DefaultAdminUsername)
	if err == nil {
		slog.Info("admin user already exists, skipping seed")
		return nil
	}
	if err != sql.ErrNoRows {
		return fmt.Errorf("checking for admin user: %w", err)
	}

	generated := false
	if adminPassword == "" {
		adminPassword, err = generatePassword()
		if err != nil {
			return fmt.Errorf("generating admin password: %w", err)
		}
		generated = true
	}

	passwordHash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	user, err := queries.CreateUser(ctx, CreateUserParams{
		Username:     DefaultAdminUsername,
		PasswordHash: passwordHash,
		Role:         model.RoleAdmin,
		CreatedAt:    time.Now(),
	})
	if err != nil {
		return fmt.Errorf("creating admin user: %w", err)
	}

	if generated {
		// Logged once at first boot; rotate it after logging in.
		slog.Info("created admin user with generated password",
			"id", user.ID,
			"username", user.Username,
			"password", adminPassword,
		)
	} else {
		slog.Info("created admin user",
			"id", user.ID,
			"username", user.Username,
		)
	}

	return nil
}

// generatePassword returns a random URL-safe password.
func generatePassword() (string, error) {
	buf := make([]byte, 18)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
