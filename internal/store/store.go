// Package store owns the canonical resume document and the selected template.
// Every mutation is applied atomically under one lock and mirrored to a persisted
// key-value store before the call returns.
package store

import (
	"context"
	"sync"

	"github.com/jonathan/resume-builder/internal/catalog"
	"github.com/jonathan/resume-builder/internal/editor"
	"github.com/jonathan/resume-builder/internal/ids"
	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/storage"
	"github.com/jonathan/resume-builder/internal/types"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
)

// Store is the document store. It is safe for concurrent use.
type Store struct {
	mu         sync.Mutex
	resume     types.Resume
	templateID string
	generating int

	kv      storage.KV
	logger  *zap.Logger
	gen     llm.Generator
	ids     *ids.Generator
	metrics *observability.Metrics
	genSem  *semaphore.Weighted
}

// New creates a store backed by kv and restores the persisted document and template.
// A nil kv keeps state in memory only.
func New(ctx context.Context, kv storage.KV, opts ...Option) *Store {
	if kv == nil {
		kv = storage.NewMemory()
	}
	s := &Store{
		kv:     kv,
		logger: zap.NewNop(),
		ids:    ids.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.gen == nil {
		s.gen = llm.NewCannedGenerator()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.restore(ctx)
	s.persistLocked(ctx)

	s.logger.Debug("store ready",
		zap.Int("sections", len(s.resume.Sections)),
		zap.String("template", s.templateID))
	return s
}

// Resume returns a deep copy of the current document
func (s *Store) Resume() types.Resume {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resume.Clone()
}

// SelectedTemplate returns the selected catalog entry
func (s *Store) SelectedTemplate() types.Template {
	s.mu.Lock()
	id := s.templateID
	s.mu.Unlock()

	if t, ok := catalog.Find(id); ok {
		return t
	}
	return catalog.Default()
}

// IsGenerating reports whether any generation request is pending
func (s *Store) IsGenerating() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generating > 0
}

// UpdatePersonalInfo shallow-merges u into the personal info. Values are stored as given.
func (s *Store) UpdatePersonalInfo(ctx context.Context, u types.PersonalInfoUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resume.PersonalInfo = u.Apply(s.resume.PersonalInfo)
	s.committedLocked(ctx, "update_personal_info")
}

// AddLink appends a blank link to the personal info and returns it
func (s *Store) AddLink(ctx context.Context) types.Link {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.newIDLocked("link")
	s.resume.PersonalInfo.Links = editor.AddLink(s.resume.PersonalInfo.Links, id)
	s.committedLocked(ctx, "add_link")
	return types.Link{ID: id}
}

// UpdateLink sets one field of a link. Unknown ids and fields are no-ops.
func (s *Store) UpdateLink(ctx context.Context, id string, field editor.LinkField, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resume.PersonalInfo.Links = editor.UpdateLink(s.resume.PersonalInfo.Links, id, field, value)
	s.committedLocked(ctx, "update_link")
}

// RemoveLink deletes a link. Unknown ids are no-ops.
func (s *Store) RemoveLink(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resume.PersonalInfo.Links = editor.RemoveLink(s.resume.PersonalInfo.Links, id)
	s.committedLocked(ctx, "remove_link")
}

// AddSection appends a new section of type t with its default title.
// Experience, education and project sections start with one blank item.
// Unknown types become custom sections.
func (s *Store) AddSection(ctx context.Context, t types.SectionType) types.Section {
	if !t.Valid() {
		t = types.SectionCustom
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	section := types.Section{
		ID:    s.newIDLocked(string(t)),
		Type:  t,
		Title: types.DefaultSectionTitle(t),
		Items: []types.SectionItem{},
	}
	if types.SeedsItem(t) {
		section.Items = append(section.Items, types.NewItem(t, s.newIDLocked(types.ItemIDPrefix(t))))
	}

	s.resume.Sections = append(s.resume.Sections, section)
	s.committedLocked(ctx, "add_section")
	return section.Clone()
}

// UpdateSection merges u into the section with the given id. Unknown ids are no-ops.
// A replacement item list holding a variant that does not match the section type
// returns *types.ItemTypeError and leaves the document unchanged.
func (s *Store) UpdateSection(ctx context.Context, id string, u types.SectionUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.resume.FindSection(id)
	if idx < 0 {
		return nil
	}
	return s.updateSectionLocked(ctx, idx, u, "update_section")
}

// RemoveSection deletes the section with the given id. Remaining sections keep their order.
func (s *Store) RemoveSection(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.resume.FindSection(id)
	if idx < 0 {
		return
	}
	s.resume.Sections = append(s.resume.Sections[:idx:idx], s.resume.Sections[idx+1:]...)
	s.committedLocked(ctx, "remove_section")
}

// AddItem appends a blank item of the section's variant. ok is false for unknown sections.
func (s *Store) AddItem(ctx context.Context, sectionID string) (item types.SectionItem, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.resume.FindSection(sectionID)
	if idx < 0 {
		return nil, false
	}
	section := s.resume.Sections[idx]
	items := editor.AddItem(section, s.newIDLocked(types.ItemIDPrefix(section.Type)))
	if err := s.updateSectionLocked(ctx, idx, types.SectionUpdate{Items: types.ItemsPtr(items)}, "add_item"); err != nil {
		return nil, false
	}
	return types.CloneItem(items[len(items)-1]), true
}

// UpdateItem sets one JSON-named field of an item. Unknown sections and items are no-ops.
// Fields the item's variant does not have return *types.FieldError.
func (s *Store) UpdateItem(ctx context.Context, sectionID, itemID, field string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.resume.FindSection(sectionID)
	if idx < 0 {
		return nil
	}
	items, err := editor.UpdateItem(s.resume.Sections[idx], itemID, field, value)
	if err != nil {
		return err
	}
	return s.updateSectionLocked(ctx, idx, types.SectionUpdate{Items: types.ItemsPtr(items)}, "update_item")
}

// RemoveItem deletes an item. Unknown sections and items are no-ops.
func (s *Store) RemoveItem(ctx context.Context, sectionID, itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.resume.FindSection(sectionID)
	if idx < 0 || s.resume.Sections[idx].FindItem(itemID) < 0 {
		return
	}
	items := editor.RemoveItem(s.resume.Sections[idx], itemID)
	_ = s.updateSectionLocked(ctx, idx, types.SectionUpdate{Items: types.ItemsPtr(items)}, "remove_item")
}

// SelectTemplate switches the selected template. Unknown ids leave the selection unchanged
// and report false.
func (s *Store) SelectTemplate(ctx context.Context, id string) bool {
	if _, ok := catalog.Find(id); !ok {
		s.logger.Debug("ignoring unknown template", zap.String("template", id))
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.templateID = id
	s.committedLocked(ctx, "select_template")
	return true
}

// Reset replaces the document and template with the defaults and overwrites the persisted snapshot
func (s *Store) Reset(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clearLocked(ctx)
	s.resume = types.DefaultResume()
	s.templateID = catalog.Default().ID
	s.committedLocked(ctx, "reset")
}

func (s *Store) updateSectionLocked(ctx context.Context, idx int, u types.SectionUpdate, op string) error {
	section := s.resume.Sections[idx]
	if u.Items != nil {
		for _, item := range *u.Items {
			if err := types.CheckItem(section, item); err != nil {
				s.logger.Debug("rejecting section update", zap.String("section", section.ID), zap.Error(err))
				return err
			}
		}
	}
	s.resume.Sections[idx] = u.Apply(section)
	s.committedLocked(ctx, op)
	return nil
}

// newIDLocked returns an id no link, section or item in the document already uses.
// Restored documents may carry ids minted by a clock ahead of ours. Caller must hold s.mu.
func (s *Store) newIDLocked(prefix string) string {
	for {
		id := s.ids.New(prefix)
		if !s.resume.HasID(id) {
			return id
		}
		s.logger.Debug("skipping id already in use", zap.String("id", id))
	}
}

// committedLocked persists and records a completed mutation. Caller must hold s.mu.
func (s *Store) committedLocked(ctx context.Context, op string) {
	s.persistLocked(ctx)
	s.metrics.Mutation(op)
	s.logger.Debug("mutation applied", zap.String("op", op))
}
