package server

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/visiblehq/visibility-insights/internal/config"
	"github.com/visiblehq/visibility-insights/internal/server/middleware"
	"github.com/visiblehq/visibility-insights/internal/types"
)

// AuthHandler handles dashboard login against the shared password.
type AuthHandler struct {
	passwordHash string
	jwtService   *JWTService
}

// NewAuthHandler creates an auth handler.
func NewAuthHandler(passwordHash string, jwtService *JWTService) *AuthHandler {
	return &AuthHandler{
		passwordHash: passwordHash,
		jwtService:   jwtService,
	}
}

// Login verifies the shared dashboard password and issues a session token,
// returned both in the response body and as a cookie.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		errorResponse(w, http.StatusBadRequest, "password is required")
		return
	}

	if !config.VerifyPassword(req.Password, h.passwordHash) {
		log.Printf("login rejected from %s", r.RemoteAddr)
		errorResponse(w, http.StatusUnauthorized, "invalid password")
		return
	}

	token, expiresAt, err := h.jwtService.GenerateToken()
	if err != nil {
		errorResponse(w, http.StatusInternalServerError, "failed to create session")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	jsonResponse(w, http.StatusOK, types.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.UTC().Format(time.RFC3339),
	})
}
