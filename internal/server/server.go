package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/visiblehq/visibility-insights/internal/analysis"
	"github.com/visiblehq/visibility-insights/internal/config"
	"github.com/visiblehq/visibility-insights/internal/db"
	"github.com/visiblehq/visibility-insights/internal/llm"
	"github.com/visiblehq/visibility-insights/internal/server/middleware"
	"github.com/visiblehq/visibility-insights/internal/sitecheck"
)

// Server represents the HTTP server.
type Server struct {
	httpServer   *http.Server
	db           *db.DB
	gateway      llm.Client
	orchestrator *analysis.Orchestrator
	checker      *sitecheck.Checker
	jwtService   *JWTService
	authHandler  *AuthHandler
}

// sessionAuthorizer implements analysis.Authorizer from the validated session
// the auth middleware put on the request context.
type sessionAuthorizer struct{}

func (sessionAuthorizer) Authenticated(ctx context.Context) bool {
	return middleware.Authenticated(ctx)
}

// New creates a new server instance, connecting to the database and the
// text-generation gateway.
func New(ctx context.Context, cfg *config.Config) (*Server, error) {
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.Bootstrap(ctx); err != nil {
		database.Close()
		return nil, err
	}

	gateway, err := llm.NewGeminiClient(ctx, llm.DefaultConfig(), cfg.APIKey)
	if err != nil {
		database.Close()
		return nil, err
	}

	s := &Server{
		db:      database,
		gateway: gateway,
		checker: sitecheck.NewChecker(),
	}
	s.orchestrator = analysis.New(gateway, database, sessionAuthorizer{}, nil)
	s.jwtService = NewJWTService(cfg.JWT)
	s.authHandler = NewAuthHandler(cfg.DashboardPasswordHash, s.jwtService)

	// Setup router
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /auth/login", s.authHandler.Login)

	// Everything behind the shared-password gate
	authed := http.NewServeMux()
	authed.HandleFunc("POST /analyses", s.handleCreateAnalysis)
	authed.HandleFunc("GET /analyses", s.handleListAnalyses)
	authed.HandleFunc("GET /analyses/{id}", s.handleGetAnalysis)
	authed.HandleFunc("GET /analyses/{id}/export.md", s.handleExportMarkdown)
	authed.HandleFunc("GET /analyses/{id}/export.html", s.handleExportHTML)
	authed.HandleFunc("POST /analyses/{analysis_id}/briefs/{brief_id}/select", s.handleSelectBrief)
	authed.HandleFunc("POST /technical-data", s.handleTechnicalData)
	authed.HandleFunc("POST /sitecheck", s.handleSitecheck)
	mux.Handle("/", middleware.Auth(s.jwtService)(authed))

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // pipeline runs block the request
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if err := s.gateway.Close(); err != nil {
		log.Printf("Error closing gateway: %v", err)
	}
	s.db.Close()
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response.
func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response.
func errorResponse(w http.ResponseWriter, status int, message string) {
	jsonResponse(w, status, map[string]string{"error": message})
}
