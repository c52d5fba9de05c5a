// Package rendering projects a resume onto an HTML tree for each catalog template
// and serializes it as a standalone document.
package rendering

import "fmt"

// StyleError represents a missing or unreadable template stylesheet
type StyleError struct {
	TemplateID string
	Message    string
	Cause      error
}

func (e *StyleError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("style error for %s: %s: %v", e.TemplateID, e.Message, e.Cause)
	}
	return fmt.Sprintf("style error for %s: %s", e.TemplateID, e.Message)
}

func (e *StyleError) Unwrap() error {
	return e.Cause
}

// RenderError represents a general rendering failure
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
