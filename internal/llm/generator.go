// Package llm provides the content generation gateway consumed by the document store.
// The gateway is a black box: it receives a free-text prompt plus the current resume
// and returns plain text, possibly after observable latency, possibly failing.
package llm

import (
	"context"

	"github.com/jonathan/resume-builder/internal/types"
)

// Generator produces text for a resume field from a free-text prompt
type Generator interface {
	// Generate returns plain text for the prompt. The resume is context only and must not be mutated.
	Generate(ctx context.Context, prompt string, resume types.Resume) (string, error)
}

// GeneratorFunc adapts an ordinary function to the Generator interface
type GeneratorFunc func(ctx context.Context, prompt string, resume types.Resume) (string, error)

// Generate calls f(ctx, prompt, resume)
func (f GeneratorFunc) Generate(ctx context.Context, prompt string, resume types.Resume) (string, error) {
	return f(ctx, prompt, resume)
}
