package briefs

import "fmt"

// MalformedResponseError indicates a brief-generation reply whose content
// cannot be parsed as the expected structure. The orchestrator recovers it
// locally: that category contributes zero candidates and the run continues.
type MalformedResponseError struct {
	Message string
	Cause   error
}

func (e *MalformedResponseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("malformed response: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("malformed response: %s", e.Message)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Cause
}
