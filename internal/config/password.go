// Package config provides password hashing and verification for the shared
// dashboard password.
package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes the shared dashboard password using bcrypt.
// Used by the hash-password CLI command to produce DASHBOARD_PASSWORD_HASH.
func HashPassword(pw string) (string, error) {
	if pw == "" {
		return "", fmt.Errorf("password cannot be empty")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hash), nil
}

// VerifyPassword verifies a password attempt against the stored bcrypt hash.
func VerifyPassword(pw, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(pw)) == nil
}
