package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/resume-builder/internal/editor"
	"github.com/jonathan/resume-builder/internal/types"
)

// AddSectionRequest represents the request body for POST /resume/sections
type AddSectionRequest struct {
	Type string `json:"type"`
}

// UpdateSectionRequest represents the request body for PATCH /resume/sections/{id}.
// Items are decoded against the section's type once the section is known.
type UpdateSectionRequest struct {
	Title *string            `json:"title,omitempty"`
	Items *[]json.RawMessage `json:"items,omitempty"`
}

// UpdateFieldRequest sets one named field of an item or link
type UpdateFieldRequest struct {
	Field string `json:"field"`
	Value any    `json:"value"`
}

func (s *Server) handleGetResume(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.store.Resume())
}

func (s *Server) handleUpdatePersonalInfo(w http.ResponseWriter, r *http.Request) {
	var u types.PersonalInfoUpdate
	if err := decodeBody(r, &u); err != nil {
		s.errResponse(w, err)
		return
	}
	s.store.UpdatePersonalInfo(r.Context(), u)
	s.jsonResponse(w, http.StatusOK, s.store.Resume().PersonalInfo)
}

func (s *Server) handleAddLink(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusCreated, s.store.AddLink(r.Context()))
}

func (s *Server) handleUpdateLink(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !s.hasLink(id) {
		s.errResponse(w, &ErrNotFound{Kind: "link", ID: id})
		return
	}

	var req UpdateFieldRequest
	if err := decodeBody(r, &req); err != nil {
		s.errResponse(w, err)
		return
	}
	field := editor.LinkField(req.Field)
	if field != editor.LinkLabel && field != editor.LinkURL {
		s.errResponse(w, &ErrValidation{Field: "field", Message: "must be label or url"})
		return
	}
	value, ok := req.Value.(string)
	if !ok {
		s.errResponse(w, &ErrValidation{Field: "value", Message: "must be a string"})
		return
	}

	s.store.UpdateLink(r.Context(), id, field, value)
	s.jsonResponse(w, http.StatusOK, s.store.Resume().PersonalInfo.Links)
}

func (s *Server) handleRemoveLink(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !s.hasLink(id) {
		s.errResponse(w, &ErrNotFound{Kind: "link", ID: id})
		return
	}
	s.store.RemoveLink(r.Context(), id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAddSection(w http.ResponseWriter, r *http.Request) {
	var req AddSectionRequest
	if err := decodeBody(r, &req); err != nil {
		s.errResponse(w, err)
		return
	}
	t, ok := types.ParseSectionType(req.Type)
	if !ok {
		s.errResponse(w, &types.SectionTypeError{Type: req.Type})
		return
	}
	s.jsonResponse(w, http.StatusCreated, s.store.AddSection(r.Context(), t))
}

func (s *Server) handleUpdateSection(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	section, ok := s.findSection(id)
	if !ok {
		s.errResponse(w, &ErrNotFound{Kind: "section", ID: id})
		return
	}

	var req UpdateSectionRequest
	if err := decodeBody(r, &req); err != nil {
		s.errResponse(w, err)
		return
	}

	u := types.SectionUpdate{Title: req.Title}
	if req.Items != nil {
		items, err := types.DecodeItems(section.Type, *req.Items)
		if err != nil {
			s.errResponse(w, err)
			return
		}
		u.Items = &items
	}

	if err := s.store.UpdateSection(r.Context(), id, u); err != nil {
		s.errResponse(w, err)
		return
	}
	updated, _ := s.findSection(id)
	s.jsonResponse(w, http.StatusOK, updated)
}

func (s *Server) handleRemoveSection(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, ok := s.findSection(id); !ok {
		s.errResponse(w, &ErrNotFound{Kind: "section", ID: id})
		return
	}
	s.store.RemoveSection(r.Context(), id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAddItem(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	item, ok := s.store.AddItem(r.Context(), id)
	if !ok {
		s.errResponse(w, &ErrNotFound{Kind: "section", ID: id})
		return
	}
	s.jsonResponse(w, http.StatusCreated, item)
}

func (s *Server) handleUpdateItem(w http.ResponseWriter, r *http.Request) {
	sectionID, itemID := r.PathValue("id"), r.PathValue("item_id")
	if err := s.checkItem(sectionID, itemID); err != nil {
		s.errResponse(w, err)
		return
	}

	var req UpdateFieldRequest
	if err := decodeBody(r, &req); err != nil {
		s.errResponse(w, err)
		return
	}
	if req.Field == "" {
		s.errResponse(w, &ErrValidation{Field: "field", Message: "is required"})
		return
	}

	if err := s.store.UpdateItem(r.Context(), sectionID, itemID, req.Field, req.Value); err != nil {
		s.errResponse(w, err)
		return
	}

	section, _ := s.findSection(sectionID)
	idx := section.FindItem(itemID)
	if idx < 0 {
		s.errResponse(w, &ErrNotFound{Kind: "item", ID: itemID})
		return
	}
	s.jsonResponse(w, http.StatusOK, section.Items[idx])
}

func (s *Server) handleRemoveItem(w http.ResponseWriter, r *http.Request) {
	sectionID, itemID := r.PathValue("id"), r.PathValue("item_id")
	if err := s.checkItem(sectionID, itemID); err != nil {
		s.errResponse(w, err)
		return
	}
	s.store.RemoveItem(r.Context(), sectionID, itemID)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.store.Reset(r.Context())
	s.jsonResponse(w, http.StatusOK, s.store.Resume())
}

func (s *Server) findSection(id string) (types.Section, bool) {
	resume := s.store.Resume()
	idx := resume.FindSection(id)
	if idx < 0 {
		return types.Section{}, false
	}
	return resume.Sections[idx], true
}

func (s *Server) checkItem(sectionID, itemID string) error {
	section, ok := s.findSection(sectionID)
	if !ok {
		return &ErrNotFound{Kind: "section", ID: sectionID}
	}
	if section.FindItem(itemID) < 0 {
		return &ErrNotFound{Kind: "item", ID: itemID}
	}
	return nil
}

func (s *Server) hasLink(id string) bool {
	for _, l := range s.store.Resume().PersonalInfo.Links {
		if l.ID == id {
			return true
		}
	}
	return false
}
