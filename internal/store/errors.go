package store

import "fmt"

// GenerationError reports a failed content generation request. The document is left unchanged.
type GenerationError struct {
	TargetID string
	Message  string
	Cause    error
}

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("generation for %s failed: %s: %v", e.TargetID, e.Message, e.Cause)
	}
	return fmt.Sprintf("generation for %s failed: %s", e.TargetID, e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}
