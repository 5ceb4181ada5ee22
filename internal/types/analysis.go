// Package types provides type definitions for structured data used throughout
// the visibility insights system.
package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Analysis lifecycle status values.
const (
	// StatusProcessing is the initial status, set when the analysis row is created.
	StatusProcessing = "processing"
	// StatusCompleted is set once after generation and brief persistence succeed.
	StatusCompleted = "completed"
)

// TechnicalData holds the structured technical signals for a customer site.
// Boolean signals render as "Yes"/"No" in the prompt's technical-context block.
type TechnicalData struct {
	CrawlerAccessible     bool   `json:"crawler_accessible"`
	StructuredDataPresent bool   `json:"structured_data_present"`
	ResponseLatency       string `json:"response_latency,omitempty"`
	WikipediaPresent      bool   `json:"wikipedia_present"`
	NewsSentiment         string `json:"news_sentiment,omitempty"`
	ReviewsPresent        bool   `json:"reviews_present"`
	SocialMediaActive     bool   `json:"social_media_active"`
}

// Analysis is a customer-scoped unit of work producing a visibility narrative
// and a ranked brief list. Created in processing status; mutated once to
// completed after generation finishes; never mutated again by this flow.
type Analysis struct {
	ID                uuid.UUID     `json:"id"`
	CustomerName      string        `json:"customer_name"`
	VisibilityScore   int           `json:"visibility_score"`
	Competitors       []string      `json:"competitors"`
	Topics            []string      `json:"topics"`
	TechnicalFindings string        `json:"technical_findings,omitempty"`
	TechnicalData     TechnicalData `json:"technical_data"`
	Prompt            string        `json:"prompt,omitempty"`
	Narrative         string        `json:"narrative,omitempty"`
	Categories        []string      `json:"categories"`
	BriefCount        int           `json:"brief_count"`
	Status            string        `json:"status"`
	CreatedAt         time.Time     `json:"created_at"`
	CompletedAt       *time.Time    `json:"completed_at,omitempty"`
}

// AnalysisRequest is the caller-facing input for creating an analysis.
type AnalysisRequest struct {
	CustomerName      string        `json:"customer_name" validate:"required,min=1"`
	VisibilityScore   int           `json:"visibility_score" validate:"gte=0,lte=100"`
	Competitors       []string      `json:"competitors,omitempty"`
	Topics            []string      `json:"topics,omitempty"`
	Categories        []string      `json:"categories,omitempty"`
	BriefCount        int           `json:"brief_count,omitempty" validate:"gte=0,lte=30"`
	Template          string        `json:"template,omitempty"`
	TechnicalFindings string        `json:"technical_findings,omitempty"`
	TechnicalData     TechnicalData `json:"technical_data"`
}

// DefaultBriefCount is used when the caller does not request a count.
const DefaultBriefCount = 15

// Validate validates the AnalysisRequest using the validator.
func (r *AnalysisRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// AnalysisResult is the orchestrator's public success result.
type AnalysisResult struct {
	AnalysisID uuid.UUID `json:"analysis_id"`
	BriefCount int       `json:"brief_count"`
	Summary    string    `json:"summary"`
}
