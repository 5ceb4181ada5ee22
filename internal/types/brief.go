package types

import (
	"time"

	"github.com/google/uuid"
)

// Brief is one actionable recommendation with effort/impact scores and
// implementation steps. Persisted once after selection and immutable in this
// flow, except for the Selected flag used for export ordering.
type Brief struct {
	ID                  uuid.UUID `json:"id"`
	AnalysisID          uuid.UUID `json:"analysis_id"`
	Category            string    `json:"category"`
	Title               string    `json:"title"`
	Description         string    `json:"description"`
	WhyItMatters        string    `json:"why_it_matters"`
	ImplementationSteps []string  `json:"implementation_steps"`
	Effort              int       `json:"effort"`
	Impact              int       `json:"impact"`
	CompositeScore      int       `json:"composite_score"`
	Keywords            []string  `json:"keywords"`
	Timeline            string    `json:"timeline"`
	Selected            bool      `json:"selected"`
	Position            int       `json:"position"`
	CreatedAt           time.Time `json:"created_at"`
}
