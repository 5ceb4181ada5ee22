package analysis

import "fmt"

// AuthorizationError indicates the caller is not authenticated. Raised before
// any work is done.
type AuthorizationError struct{}

func (e *AuthorizationError) Error() string {
	return "authorization error: caller is not authenticated"
}

// ValidationError indicates missing or out-of-range request input. Raised
// before any external call.
type ValidationError struct {
	Message string
	Cause   error
}

func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("validation error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}
