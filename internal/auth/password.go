// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package auth provides password hashing and verification utilities
// using the scrypt algorithm for secure credential storage.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/scrypt"
)

// Scrypt parameters (OWASP recommended: N=2^15, r=8, p=1)
const (
	ScryptN       = 32768
	ScryptR       = 8
	ScryptP       = 1
	ScryptKeyLen  = 64
	ScryptSaltLen = 16
)

// HashPassword creates a scrypt hash of the password.
// Returns the encoded hash in format: hex(key).hex(salt)
func HashPassword(password string) (string, error) {
	salt := make([]byte, ScryptSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}

	key, err := scrypt.Key([]byte(password), salt, ScryptN, ScryptR, ScryptP, ScryptKeyLen)
	if err != nil {
		return "", fmt.Errorf("deriving key: %w", err)
	}

	return hex.EncodeToString(key) + "." + hex.EncodeToString(salt), nil
}

// CheckPassword verifies a password against an encoded scrypt hash.
// Uses constant-time comparison to prevent timing attacks.
func CheckPassword(password, encodedHash string) (bool, error) {
	keyHex, saltHex, ok := strings.Cut(encodedHash, ".")
	if !ok {
		return false, fmt.Errorf("invalid hash format")
	}

	expectedKey, err := hex.DecodeString(keyHex)
	if err != nil {
		return false, fmt.Errorf("decoding hash: %w", err)
	}

	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return false, fmt.Errorf("decoding salt: %w", err)
	}

	key, err := scrypt.Key([]byte(password), salt, ScryptN, ScryptR, ScryptP, len(expectedKey))
	if err != nil {
		return false, fmt.Errorf("deriving key: %w", err)
	}

	return subtle.ConstantTimeCompare(key, expectedKey) == 1, nil
}
