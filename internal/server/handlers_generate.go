package server

import (
	"net/http"
	"strings"

	"github.com/jonathan/resume-builder/internal/prompts"
	"github.com/jonathan/resume-builder/internal/types"
	"go.uber.org/zap"
)

// GenerateRequest represents the request body for /generate
type GenerateRequest struct {
	Target string `json:"target"`
	Prompt string `json:"prompt"`
}

func (s *Server) decodeGenerate(r *http.Request) (GenerateRequest, error) {
	var req GenerateRequest
	if err := decodeBody(r, &req); err != nil {
		return req, err
	}
	if req.Target == "" {
		return req, &ErrValidation{Field: "target", Message: "is required"}
	}
	if req.Target != types.PersonalInfoID {
		if _, ok := s.findSection(req.Target); !ok {
			return req, &ErrNotFound{Kind: "section", ID: req.Target}
		}
	}
	return req, nil
}

// handleGenerate blocks until generation finishes and returns the updated document
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeGenerate(r)
	if err != nil {
		s.errResponse(w, err)
		return
	}
	if err := s.store.GenerateContent(r.Context(), req.Target, req.Prompt); err != nil {
		s.errResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, s.store.Resume())
}

// handleGenerateStream reports progress as server-sent events: pending, then complete or error
func (s *Server) handleGenerateStream(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeGenerate(r)
	if err != nil {
		s.errResponse(w, err)
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	if strings.TrimSpace(req.Prompt) != "" {
		if err := sse.WritePending(req.Target); err != nil {
			s.logger.Debug("client went away", zap.Error(err))
			return
		}
	}

	if err := s.store.GenerateContent(r.Context(), req.Target, req.Prompt); err != nil {
		sse.WriteError(err.Error())
		return
	}
	sse.WriteComplete(req.Target, s.store.Resume())
}

// handleHint returns the placeholder prompt for a target kind
func (s *Server) handleHint(w http.ResponseWriter, r *http.Request) {
	kind := r.PathValue("kind")
	s.jsonResponse(w, http.StatusOK, map[string]string{"kind": kind, "hint": prompts.Hint(kind)})
}
