package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost/insights_test")
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("DASHBOARD_PASSWORD_HASH", "$2a$12$fakehashfakehashfakehash")
	t.Setenv("JWT_SECRET", "test-secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 24, cfg.JWT.ExpirationHours)
	assert.Equal(t, "test-key", cfg.APIKey)
}

func TestLoad_PortOverride(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "9000")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Port)
}

func TestLoad_MissingRequiredVariables(t *testing.T) {
	tests := []string{"DATABASE_URL", "GEMINI_API_KEY", "DASHBOARD_PASSWORD_HASH", "JWT_SECRET"}

	for _, missing := range tests {
		t.Run(missing, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(missing, "")

			_, err := Load()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), missing)
		})
	}
}

func TestLoad_InvalidPort(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "not-a-number")

	_, err := Load()
	assert.Error(t, err)
}

func TestNewJWTConfig_Validation(t *testing.T) {
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("JWT_EXPIRATION_HOURS", "0")
	_, err := NewJWTConfig()
	assert.Error(t, err)

	t.Setenv("JWT_EXPIRATION_HOURS", "12")
	cfg, err := NewJWTConfig()
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.ExpirationHours)
}
