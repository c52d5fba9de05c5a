package store

import (
	"github.com/jonathan/resume-builder/internal/ids"
	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/observability"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
)

// Option configures a Store
type Option func(*Store)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithGenerator sets the content generation gateway. The default is a CannedGenerator.
func WithGenerator(g llm.Generator) Option {
	return func(s *Store) {
		if g != nil {
			s.gen = g
		}
	}
}

// WithIDs sets the identifier generator used for new sections, items and links
func WithIDs(g *ids.Generator) Option {
	return func(s *Store) {
		if g != nil {
			s.ids = g
		}
	}
}

// WithMetrics records store activity on m
func WithMetrics(m *observability.Metrics) Option {
	return func(s *Store) {
		s.metrics = m
	}
}

// WithSerializedGeneration queues generation requests so at most one reaches the gateway at a time
func WithSerializedGeneration() Option {
	return func(s *Store) {
		s.genSem = semaphore.NewWeighted(1)
	}
}
