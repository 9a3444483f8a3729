// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines shared domain constants used across the store,
// service, and handler layers.
package model

// User roles.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)
