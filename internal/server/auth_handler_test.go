package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/visiblehq/visibility-insights/internal/config"
	"github.com/visiblehq/visibility-insights/internal/server/middleware"
	"github.com/visiblehq/visibility-insights/internal/types"
)

func testAuthHandler(t *testing.T) *AuthHandler {
	t.Helper()
	hash, err := config.HashPassword("letmein")
	require.NoError(t, err)
	return NewAuthHandler(hash, testJWTService())
}

func TestLogin_CorrectPasswordIssuesSession(t *testing.T) {
	handler := testAuthHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"password":"letmein"}`))
	rec := httptest.NewRecorder()
	handler.Login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp types.LoginResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.NotEmpty(t, resp.Token)
	assert.NotEmpty(t, resp.ExpiresAt)

	// Token must validate and come back as a cookie too.
	_, err := testJWTService().ValidateToken(resp.Token)
	assert.NoError(t, err)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, middleware.SessionCookieName, cookies[0].Name)
	assert.Equal(t, resp.Token, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestLogin_WrongPasswordRejected(t *testing.T) {
	handler := testAuthHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"password":"guess"}`))
	rec := httptest.NewRecorder()
	handler.Login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Result().Cookies())
}

func TestLogin_MissingPasswordRejected(t *testing.T) {
	handler := testAuthHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	handler.Login(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_InvalidBodyRejected(t *testing.T) {
	handler := testAuthHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader("not json"))
	rec := httptest.NewRecorder()
	handler.Login(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
