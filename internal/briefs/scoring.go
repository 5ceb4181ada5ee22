package briefs

import "math"

// CompositeScore computes the fixed effort/impact ranking value:
//
//	round(((impact*2 - effort) / 10) * 100)
//
// High impact is rewarded, high effort penalized. The formula can go negative
// (effort=10, impact=1 yields -80); negative-scoring briefs stay eligible for
// selection.
func CompositeScore(effort, impact int) int {
	return int(math.Round(float64(impact*2-effort) / 10.0 * 100.0))
}

// Score attaches the category and composite score to a candidate.
func Score(c Candidate, category string) Scored {
	return Scored{
		Candidate:      c,
		Category:       category,
		CompositeScore: CompositeScore(c.Effort, c.Impact),
	}
}
