package server

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/visiblehq/visibility-insights/internal/config"
)

func testJWTService() *JWTService {
	return NewJWTService(&config.JWTConfig{
		Secret:          "test-secret-for-sessions",
		ExpirationHours: 24,
	})
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := testJWTService()

	token, expiresAt, err := svc.GenerateToken()
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), expiresAt, time.Minute)

	sessionID, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, sessionID)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	token, _, err := testJWTService().GenerateToken()
	require.NoError(t, err)

	other := NewJWTService(&config.JWTConfig{Secret: "different-secret", ExpirationHours: 24})
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsEmptyAndGarbageTokens(t *testing.T) {
	svc := testJWTService()

	_, err := svc.ValidateToken("")
	assert.Error(t, err)

	_, err = svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}
