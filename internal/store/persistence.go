package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jonathan/resume-builder/internal/catalog"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
	"go.uber.org/zap"
)

// Persisted keys
const (
	KeyResume   = "resume"
	KeyTemplate = "selectedTemplate"
)

// DecodeResume parses a persisted resume, rejecting documents that do not match the resume schema
func DecodeResume(data []byte) (types.Resume, error) {
	if err := schemas.ValidateResume(data); err != nil {
		return types.Resume{}, err
	}
	var r types.Resume
	if err := json.Unmarshal(data, &r); err != nil {
		return types.Resume{}, fmt.Errorf("failed to decode resume: %w", err)
	}
	return r, nil
}

// restore loads both persisted keys, falling back to defaults for anything missing or unreadable
func (s *Store) restore(ctx context.Context) {
	s.resume = types.DefaultResume()
	s.templateID = catalog.Default().ID

	raw, ok, err := s.kv.Get(ctx, KeyResume)
	switch {
	case err != nil:
		s.logger.Warn("failed to read persisted resume, using default", zap.Error(err))
	case !ok:
		s.logger.Debug("no persisted resume, using default")
	default:
		r, err := DecodeResume([]byte(raw))
		if err != nil {
			s.logger.Warn("persisted resume is unreadable, using default", zap.Error(err))
			break
		}
		s.resume = r
	}

	id, ok, err := s.kv.Get(ctx, KeyTemplate)
	switch {
	case err != nil:
		s.logger.Warn("failed to read persisted template, using default", zap.Error(err))
	case !ok:
		s.logger.Debug("no persisted template, using default")
	default:
		if _, known := catalog.Find(id); known {
			s.templateID = id
		} else {
			s.logger.Warn("persisted template is unknown, using default", zap.String("template", id))
		}
	}
}

// persistLocked mirrors the full document and template id to the persisted store.
// Write failures are logged and counted, never returned. Caller must hold s.mu.
func (s *Store) persistLocked(ctx context.Context) {
	data, err := json.Marshal(s.resume)
	if err != nil {
		s.logger.Error("failed to encode resume", zap.Error(err))
		s.metrics.PersistFailed(KeyResume)
		return
	}
	if err := s.kv.Set(ctx, KeyResume, string(data)); err != nil {
		s.logger.Warn("failed to persist resume", zap.Error(err))
		s.metrics.PersistFailed(KeyResume)
	}
	if err := s.kv.Set(ctx, KeyTemplate, s.templateID); err != nil {
		s.logger.Warn("failed to persist template", zap.Error(err))
		s.metrics.PersistFailed(KeyTemplate)
	}
}

// clearLocked removes both persisted keys. Caller must hold s.mu.
func (s *Store) clearLocked(ctx context.Context) {
	for _, key := range []string{KeyResume, KeyTemplate} {
		if err := s.kv.Delete(ctx, key); err != nil {
			s.logger.Warn("failed to delete persisted key", zap.String("key", key), zap.Error(err))
			s.metrics.PersistFailed(key)
		}
	}
}
