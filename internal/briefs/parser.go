package briefs

import (
	"encoding/json"
	"strings"
)

// Extractor pulls candidate briefs out of free-form model text. Kept behind an
// interface so the extraction strategy can be swapped without touching the
// orchestrator.
type Extractor interface {
	ExtractCandidates(text string) ([]Candidate, error)
}

// BracketExtractor extracts the substring from the first '[' to the last ']'
// and parses it as a JSON array.
type BracketExtractor struct{}

// ExtractCandidates scans text for the first substring beginning with '[' and
// ending with the last ']' and parses it as JSON. No such substring is the
// expected degenerate case when the model declines or formats unexpectedly and
// yields an empty result, not an error. A bracketed substring that fails to
// parse yields a MalformedResponseError.
func (BracketExtractor) ExtractCandidates(text string) ([]Candidate, error) {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start < 0 || end < start {
		return nil, nil
	}

	raw := text[start : end+1]

	var candidates []Candidate
	if err := json.Unmarshal([]byte(raw), &candidates); err != nil {
		return nil, &MalformedResponseError{Message: "response is not a valid JSON array", Cause: err}
	}

	return candidates, nil
}
