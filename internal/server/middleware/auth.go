// Package middleware provides HTTP middleware for session authentication.
package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// ContextKey is a typed key for context values to avoid collisions.
type ContextKey string

// sessionIDKey is the context key for storing the authenticated session ID.
const sessionIDKey ContextKey = "sessionID"

// SessionCookieName is the cookie the dashboard stores its token in.
const SessionCookieName = "vi_session"

// TokenValidator validates session tokens. Kept as an interface so the
// middleware works with any token service implementation.
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, error)
}

// Auth creates middleware that validates the session token from either the
// Authorization header or the session cookie and adds the session ID to the
// request context.
func Auth(tokens TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := extractToken(r)
			if tokenString == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			sessionID, err := tokens.ValidateToken(tokenString)
			if err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), sessionIDKey, sessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractToken reads a bearer token from the Authorization header, falling
// back to the session cookie.
func extractToken(r *http.Request) string {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		// Handle case-insensitive "Bearer" prefix
		parts := strings.Fields(authHeader)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}

	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		return cookie.Value
	}
	return ""
}

// GetSessionID extracts the authenticated session ID from the context.
func GetSessionID(ctx context.Context) (uuid.UUID, error) {
	sessionID, ok := ctx.Value(sessionIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, fmt.Errorf("session ID not found in request context")
	}
	return sessionID, nil
}

// Authenticated reports whether the context carries a validated session.
func Authenticated(ctx context.Context) bool {
	_, err := GetSessionID(ctx)
	return err == nil
}
