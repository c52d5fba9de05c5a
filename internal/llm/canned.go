package llm

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/jonathan/resume-builder/internal/prompts"
	"github.com/jonathan/resume-builder/internal/types"
)

// DefaultDelay is the simulated round-trip latency of the canned generator
const DefaultDelay = 1500 * time.Millisecond

// CannedGenerator simulates a generation backend by picking a stock response
// from the embedded corpus after a fixed delay
type CannedGenerator struct {
	delay time.Duration
	pick  func(n int) int
}

// CannedOption configures a CannedGenerator
type CannedOption func(*CannedGenerator)

// WithDelay overrides the simulated latency. Zero disables the wait.
func WithDelay(d time.Duration) CannedOption {
	return func(g *CannedGenerator) {
		if d >= 0 {
			g.delay = d
		}
	}
}

// WithPicker replaces the random index source. pick receives the bucket size
// and must return an index in [0, n).
func WithPicker(pick func(n int) int) CannedOption {
	return func(g *CannedGenerator) {
		if pick != nil {
			g.pick = pick
		}
	}
}

// NewCannedGenerator creates a canned generator with the default delay
func NewCannedGenerator(opts ...CannedOption) *CannedGenerator {
	g := &CannedGenerator{
		delay: DefaultDelay,
		pick:  rand.IntN,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Delay returns the configured simulated latency
func (g *CannedGenerator) Delay() time.Duration {
	return g.delay
}

// Generate implements Generator
func (g *CannedGenerator) Generate(ctx context.Context, prompt string, _ types.Resume) (string, error) {
	if g.delay > 0 {
		timer := time.NewTimer(g.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-timer.C:
		}
	}

	bucket := BucketFor(prompt)
	responses, err := prompts.Responses(bucket)
	if err != nil {
		return "", fmt.Errorf("failed to load canned responses: %w", err)
	}

	idx := g.pick(len(responses))
	if idx < 0 || idx >= len(responses) {
		idx = 0
	}
	return responses[idx], nil
}

// BucketFor classifies a prompt into a response bucket by keyword.
// The first match wins in the order experience/work, education/school, skill; anything else is a summary.
func BucketFor(prompt string) string {
	p := strings.ToLower(prompt)
	switch {
	case strings.Contains(p, "experience") || strings.Contains(p, "work"):
		return prompts.BucketExperience
	case strings.Contains(p, "education") || strings.Contains(p, "school"):
		return prompts.BucketEducation
	case strings.Contains(p, "skill"):
		return prompts.BucketSkills
	default:
		return prompts.BucketSummary
	}
}
