// Package briefs provides candidate extraction from model output and the
// effort/impact scoring and selection of briefs.
package briefs

import "github.com/visiblehq/visibility-insights/internal/types"

// Candidate is an unpersisted brief proposal returned by the generation step,
// prior to selection. Missing fields pass through as zero values; only effort
// and impact matter for scoring.
type Candidate struct {
	Title               string   `json:"title"`
	Description         string   `json:"description"`
	WhyItMatters        string   `json:"why_it_matters"`
	ImplementationSteps []string `json:"implementation_steps"`
	Effort              int      `json:"effort"`
	Impact              int      `json:"impact"`
	Keywords            []string `json:"keywords"`
	Timeline            string   `json:"timeline"`
}

// Scored is a candidate with its category and composite score attached.
type Scored struct {
	Candidate
	Category       string
	CompositeScore int
}

// ToBrief converts a selected candidate into the persisted brief form.
// Position records the selection order for the stable-ordering invariant.
func (s Scored) ToBrief(position int) types.Brief {
	return types.Brief{
		Category:            s.Category,
		Title:               s.Title,
		Description:         s.Description,
		WhyItMatters:        s.WhyItMatters,
		ImplementationSteps: s.ImplementationSteps,
		Effort:              s.Effort,
		Impact:              s.Impact,
		CompositeScore:      s.CompositeScore,
		Keywords:            s.Keywords,
		Timeline:            s.Timeline,
		Position:            position,
	}
}
