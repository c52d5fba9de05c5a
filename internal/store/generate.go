package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/types"
	"go.uber.org/zap"
)

// GenerateContent asks the gateway for text and writes it into the target field.
// targetID is types.PersonalInfoID for the summary, otherwise a section id whose first
// item receives the text. A blank prompt returns nil without touching any state.
//
// The store lock is not held while the gateway runs; the result is applied to the
// document as it stands when the gateway returns. On failure the document is unchanged
// and a *GenerationError is returned.
func (s *Store) GenerateContent(ctx context.Context, targetID, prompt string) error {
	if strings.TrimSpace(prompt) == "" {
		s.metrics.GenerationSkipped()
		s.logger.Debug("ignoring blank generation prompt", zap.String("target", targetID))
		return nil
	}

	s.mu.Lock()
	s.generating++
	s.mu.Unlock()
	s.metrics.GenerationStarted()

	start := time.Now()
	outcome := observability.OutcomeFailure
	defer func() {
		s.mu.Lock()
		s.generating--
		s.mu.Unlock()
		s.metrics.GenerationDone(outcome, time.Since(start))
	}()

	if s.genSem != nil {
		if err := s.genSem.Acquire(ctx, 1); err != nil {
			return &GenerationError{TargetID: targetID, Message: "cancelled while queued", Cause: err}
		}
		defer s.genSem.Release(1)
	}

	snapshot := s.Resume()
	text, err := s.callGateway(ctx, prompt, snapshot)
	if err != nil {
		s.logger.Warn("content generation failed",
			zap.String("target", targetID),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return &GenerationError{TargetID: targetID, Message: "gateway error", Cause: err}
	}

	outcome = observability.OutcomeSuccess
	s.applyGenerated(context.WithoutCancel(ctx), targetID, llm.CleanText(text))
	return nil
}

func (s *Store) callGateway(ctx context.Context, prompt string, snapshot types.Resume) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("gateway panic: %v", r)
		}
	}()
	return s.gen.Generate(ctx, prompt, snapshot)
}

// applyGenerated writes text into the summary or into item 0 of the target section
func (s *Store) applyGenerated(ctx context.Context, targetID, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if targetID == types.PersonalInfoID {
		s.resume.PersonalInfo.Summary = text
		s.committedLocked(ctx, "generate")
		return
	}

	idx := s.resume.FindSection(targetID)
	if idx < 0 {
		s.logger.Debug("generation target no longer exists", zap.String("target", targetID))
		return
	}
	section := s.resume.Sections[idx]
	if len(section.Items) == 0 {
		s.logger.Debug("generation target has no items", zap.String("target", targetID))
		return
	}

	first, ok := types.WithDescription(section.Items[0], text)
	if !ok {
		s.logger.Debug("generation target has no description field",
			zap.String("target", targetID),
			zap.String("type", string(section.Type)))
		return
	}

	items := append([]types.SectionItem{first}, section.Items[1:]...)
	section.Items = items
	s.resume.Sections[idx] = section
	s.committedLocked(ctx, "generate")
}
