package server

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/visiblehq/visibility-insights/internal/analysis"
	"github.com/visiblehq/visibility-insights/internal/db"
	"github.com/visiblehq/visibility-insights/internal/export"
	"github.com/visiblehq/visibility-insights/internal/llm"
	"github.com/visiblehq/visibility-insights/internal/types"
	"github.com/visiblehq/visibility-insights/internal/upload"
)

// AnalysisDetail is the dashboard view of one analysis: the row, its briefs,
// and the narrative rendered as HTML.
type AnalysisDetail struct {
	Analysis      *types.Analysis `json:"analysis"`
	Briefs        []types.Brief   `json:"briefs"`
	NarrativeHTML string          `json:"narrative_html,omitempty"`
}

// SitecheckRequest is the request body for /sitecheck.
type SitecheckRequest struct {
	URL string `json:"url"`
}

// handleCreateAnalysis runs the full pipeline for one request. The pipeline is
// a single request-scoped unit of work; all calls are awaited sequentially.
func (s *Server) handleCreateAnalysis(w http.ResponseWriter, r *http.Request) {
	var req types.AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	result, err := s.orchestrator.Run(r.Context(), &req)
	if err != nil {
		s.pipelineError(w, err)
		return
	}

	jsonResponse(w, http.StatusCreated, result)
}

// handleListAnalyses returns analyses newest first for the dashboard list.
func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	analyses, err := s.db.ListAnalyses(r.Context(), 0)
	if err != nil {
		errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if analyses == nil {
		analyses = []types.Analysis{}
	}
	jsonResponse(w, http.StatusOK, analyses)
}

// handleGetAnalysis returns one analysis with its briefs and rendered narrative.
func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	detail, ok := s.loadDetail(w, r, id)
	if !ok {
		return
	}

	if detail.Analysis.Narrative != "" {
		html, err := export.HTML(detail.Analysis.Narrative)
		if err != nil {
			log.Printf("narrative rendering failed for %s: %v", id, err)
		} else {
			detail.NarrativeHTML = html
		}
	}

	jsonResponse(w, http.StatusOK, detail)
}

// handleExportMarkdown returns the analysis report as a markdown document.
func (s *Server) handleExportMarkdown(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	detail, ok := s.loadDetail(w, r, id)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, export.Markdown(detail.Analysis, detail.Briefs))
}

// handleExportHTML returns the analysis report rendered as HTML.
func (s *Server) handleExportHTML(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	detail, ok := s.loadDetail(w, r, id)
	if !ok {
		return
	}

	html, err := export.HTML(export.Markdown(detail.Analysis, detail.Briefs))
	if err != nil {
		errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, html)
}

// handleSelectBrief marks a brief selected for export ordering.
func (s *Server) handleSelectBrief(w http.ResponseWriter, r *http.Request) {
	briefID, ok := pathUUID(w, r, "brief_id")
	if !ok {
		return
	}

	var req struct {
		Selected *bool `json:"selected"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	selected := true
	if req.Selected != nil {
		selected = *req.Selected
	}

	if err := s.db.SetBriefSelected(r.Context(), briefID, selected); err != nil {
		if db.IsNotFound(err) {
			errorResponse(w, http.StatusNotFound, "brief not found")
			return
		}
		errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	jsonResponse(w, http.StatusOK, map[string]any{"id": briefID, "selected": selected})
}

// handleTechnicalData parses and validates an uploaded technical-data JSON
// document and echoes the decoded signals back.
func (s *Server) handleTechnicalData(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "failed to read upload: "+err.Error())
		return
	}

	data, err := upload.ParseTechnicalData(raw)
	if err != nil {
		var ve *upload.ValidationError
		if errors.As(err, &ve) {
			errorResponse(w, http.StatusUnprocessableEntity, ve.Error())
			return
		}
		errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	jsonResponse(w, http.StatusOK, data)
}

// handleSitecheck probes a customer site and returns derived signals.
func (s *Server) handleSitecheck(w http.ResponseWriter, r *http.Request) {
	var req SitecheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.URL == "" {
		errorResponse(w, http.StatusBadRequest, "url is required")
		return
	}

	result, err := s.checker.Check(r.Context(), req.URL)
	if err != nil {
		errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	jsonResponse(w, http.StatusOK, result)
}

// loadDetail fetches an analysis and its briefs, writing the error response
// itself on failure.
func (s *Server) loadDetail(w http.ResponseWriter, r *http.Request, id uuid.UUID) (*AnalysisDetail, bool) {
	a, err := s.db.GetAnalysis(r.Context(), id)
	if err != nil {
		if db.IsNotFound(err) {
			errorResponse(w, http.StatusNotFound, "analysis not found")
			return nil, false
		}
		errorResponse(w, http.StatusInternalServerError, err.Error())
		return nil, false
	}

	briefList, err := s.db.GetBriefs(r.Context(), id)
	if err != nil {
		errorResponse(w, http.StatusInternalServerError, err.Error())
		return nil, false
	}
	if briefList == nil {
		briefList = []types.Brief{}
	}

	return &AnalysisDetail{Analysis: a, Briefs: briefList}, true
}

// pipelineError maps the pipeline error taxonomy onto HTTP statuses. The
// caller sees a single descriptive message; per-category recoveries never
// reach here.
func (s *Server) pipelineError(w http.ResponseWriter, err error) {
	var (
		authErr   *analysis.AuthorizationError
		validErr  *analysis.ValidationError
		configErr *llm.ConfigurationError
		genErr    *llm.GenerationError
	)

	switch {
	case errors.As(err, &authErr):
		errorResponse(w, http.StatusUnauthorized, err.Error())
	case errors.As(err, &validErr):
		errorResponse(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &configErr):
		errorResponse(w, http.StatusInternalServerError, err.Error())
	case errors.As(err, &genErr):
		errorResponse(w, http.StatusBadGateway, err.Error())
	default:
		errorResponse(w, http.StatusInternalServerError, err.Error())
	}
}

// pathUUID parses a UUID path parameter, writing the error response on failure.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	idStr := r.PathValue(name)
	if idStr == "" {
		errorResponse(w, http.StatusBadRequest, name+" is required")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid "+name+": "+idStr)
		return uuid.Nil, false
	}
	return id, true
}
