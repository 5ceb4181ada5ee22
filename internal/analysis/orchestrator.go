// Package analysis orchestrates the visibility-analysis pipeline: prompt
// assembly, narrative generation, per-category brief generation, scoring,
// selection, and persistence.
package analysis

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/visiblehq/visibility-insights/internal/briefs"
	"github.com/visiblehq/visibility-insights/internal/llm"
	"github.com/visiblehq/visibility-insights/internal/prompt"
	"github.com/visiblehq/visibility-insights/internal/types"
)

// Placeholders substituted for replies that carry no textual content. Callers
// handle the degenerate case explicitly instead of treating it as an error.
const (
	narrativeFallback = "Analysis failed"
	briefsFallback    = "[]"
)

// Store is the persistence contract the orchestrator depends on. Operations
// are assumed atomic enough that partial writes are not the orchestrator's
// concern; it calls them in order and propagates failures.
type Store interface {
	CreateAnalysis(ctx context.Context, a *types.Analysis) (uuid.UUID, error)
	SaveNarrative(ctx context.Context, id uuid.UUID, narrative string) error
	InsertBriefs(ctx context.Context, analysisID uuid.UUID, briefs []types.Brief) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
}

// Authorizer answers whether the calling context is authenticated. Injected so
// the orchestrator can be tested without session plumbing.
type Authorizer interface {
	Authenticated(ctx context.Context) bool
}

// Orchestrator sequences the analysis pipeline.
type Orchestrator struct {
	gateway   llm.Client
	store     Store
	auth      Authorizer
	extractor briefs.Extractor
}

// New creates an orchestrator. A nil extractor defaults to the bracket
// extractor.
func New(gateway llm.Client, store Store, auth Authorizer, extractor briefs.Extractor) *Orchestrator {
	if extractor == nil {
		extractor = briefs.BracketExtractor{}
	}
	return &Orchestrator{
		gateway:   gateway,
		store:     store,
		auth:      auth,
		extractor: extractor,
	}
}

// Run executes the full pipeline for one analysis request.
//
// Lifecycle: the analysis row is created in processing status and flipped to
// completed only after briefs are persisted. Fatal failures (authorization,
// validation, the shared narrative call, storage) abort the run and may leave
// the row in processing. Per-category failures reduce that category's
// contribution to zero candidates and the run continues.
func (o *Orchestrator) Run(ctx context.Context, req *types.AnalysisRequest) (*types.AnalysisResult, error) {
	if !o.auth.Authenticated(ctx) {
		return nil, &AuthorizationError{}
	}

	if err := o.normalize(req); err != nil {
		return nil, err
	}

	promptText := prompt.Build(req.Template, prompt.Context{
		CustomerName:      req.CustomerName,
		Competitors:       req.Competitors,
		VisibilityScore:   req.VisibilityScore,
		Topics:            req.Topics,
		TechnicalData:     req.TechnicalData,
		TechnicalFindings: req.TechnicalFindings,
	})

	analysisID, err := o.store.CreateAnalysis(ctx, &types.Analysis{
		CustomerName:      req.CustomerName,
		VisibilityScore:   req.VisibilityScore,
		Competitors:       req.Competitors,
		Topics:            req.Topics,
		TechnicalFindings: req.TechnicalFindings,
		TechnicalData:     req.TechnicalData,
		Prompt:            promptText,
		Categories:        req.Categories,
		BriefCount:        req.BriefCount,
	})
	if err != nil {
		return nil, err
	}

	// One shared competitive-analysis call first; without it no category can
	// proceed meaningfully, so a failure here is fatal for the run.
	narrative, err := o.gateway.Generate(ctx, promptText, llm.NarrativeMaxTokens)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(narrative) == "" {
		narrative = narrativeFallback
	}

	if err := o.store.SaveNarrative(ctx, analysisID, narrative); err != nil {
		return nil, err
	}

	// One brief-generation call per category, in the order supplied.
	var pool []briefs.Scored
	for _, category := range req.Categories {
		candidates := o.generateCandidates(ctx, category, narrative)
		for _, c := range candidates {
			pool = append(pool, briefs.Score(c, category))
		}
	}

	selected := briefs.SelectTop(pool, req.BriefCount)
	persisted := make([]types.Brief, len(selected))
	for i, s := range selected {
		b := s.ToBrief(i)
		b.AnalysisID = analysisID
		persisted[i] = b
	}

	if err := o.store.InsertBriefs(ctx, analysisID, persisted); err != nil {
		return nil, err
	}
	if err := o.store.UpdateStatus(ctx, analysisID, types.StatusCompleted); err != nil {
		return nil, err
	}

	return &types.AnalysisResult{
		AnalysisID: analysisID,
		BriefCount: len(persisted),
		Summary: fmt.Sprintf("Generated %d briefs across %d categories for %s",
			len(persisted), len(req.Categories), req.CustomerName),
	}, nil
}

// generateCandidates runs one per-category brief call and extracts candidates.
// Generation and parse failures are recovered locally: the category
// contributes zero candidates and processing continues.
func (o *Orchestrator) generateCandidates(ctx context.Context, category, narrative string) []briefs.Candidate {
	text, err := o.gateway.GenerateJSON(ctx, prompt.ForBriefs(category, narrative), llm.BriefsMaxTokens)
	if err != nil {
		log.Printf("brief generation failed for category %q: %v", category, err)
		return nil
	}
	if strings.TrimSpace(text) == "" {
		text = briefsFallback
	}

	candidates, err := o.extractor.ExtractCandidates(text)
	if err != nil {
		log.Printf("discarding unparseable response for category %q: %v", category, err)
		return nil
	}
	return candidates
}

// normalize validates the request and fills defaults: brief count 15 when
// unset (accepted range 1-30), all nine categories when none supplied.
func (o *Orchestrator) normalize(req *types.AnalysisRequest) error {
	if err := req.Validate(); err != nil {
		return &ValidationError{Message: "invalid analysis request", Cause: err}
	}

	if req.BriefCount == 0 {
		req.BriefCount = types.DefaultBriefCount
	}
	if len(req.Categories) == 0 {
		req.Categories = types.AllCategories()
	}
	for _, c := range req.Categories {
		if !types.IsValidCategory(c) {
			return &ValidationError{Message: fmt.Sprintf("unknown category %q", c)}
		}
	}
	return nil
}
