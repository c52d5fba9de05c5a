package server

import (
	"net/http"
	"strconv"

	"github.com/jonathan/resume-builder/internal/catalog"
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
)

// TemplatesResponse represents the response for GET /templates
type TemplatesResponse struct {
	Templates []types.Template `json:"templates"`
	Selected  string           `json:"selected"`
}

// SelectTemplateRequest represents the request body for PUT /template
type SelectTemplateRequest struct {
	ID string `json:"id"`
}

// ExportRequest represents the request body for POST /export. Empty fields use
// the configured format and the selected template.
type ExportRequest struct {
	Format   string `json:"format,omitempty"`
	Template string `json:"template,omitempty"`
}

// ExportResponse represents the response for POST /export
type ExportResponse struct {
	Path     string `json:"path"`
	Format   string `json:"format"`
	Template string `json:"template"`
}

func (s *Server) handleListTemplates(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, TemplatesResponse{
		Templates: catalog.List(),
		Selected:  s.store.SelectedTemplate().ID,
	})
}

func (s *Server) handleSelectTemplate(w http.ResponseWriter, r *http.Request) {
	var req SelectTemplateRequest
	if err := decodeBody(r, &req); err != nil {
		s.errResponse(w, err)
		return
	}
	if !s.store.SelectTemplate(r.Context(), req.ID) {
		s.errResponse(w, &ErrValidation{Field: "id", Message: "unknown template " + req.ID})
		return
	}
	s.jsonResponse(w, http.StatusOK, s.store.SelectedTemplate())
}

// handlePreview renders the document as a standalone HTML page.
// ?template= previews another template without changing the selection.
// ?fragment=true returns only the resume markup, without the page shell and stylesheet.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	templateID := query.Get("template")
	if templateID == "" {
		templateID = s.store.SelectedTemplate().ID
	}

	render := rendering.RenderHTML
	if fragment, _ := strconv.ParseBool(query.Get("fragment")); fragment {
		render = rendering.RenderFragment
	}

	p := rendering.For(templateID)
	page, err := render(p, s.store.Resume())
	if err != nil {
		s.errResponse(w, err)
		return
	}
	s.metrics.Rendered(p.TemplateID())

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(page)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	var req ExportRequest
	if r.ContentLength != 0 {
		if err := decodeBody(r, &req); err != nil {
			s.errResponse(w, err)
			return
		}
	}
	if req.Format == "" {
		req.Format = s.cfg.ExportFormat
	}
	if req.Template == "" {
		req.Template = s.store.SelectedTemplate().ID
	}

	exp, err := export.New(req.Format, s.cfg.ExportDir, s.cfg.ChromePath)
	if err != nil {
		s.errResponse(w, &ErrValidation{Field: "format", Message: err.Error()})
		return
	}

	path := export.NewDispatcher(exp, s.logger, s.metrics).Dispatch(r.Context(), s.store.Resume(), req.Template)
	if path == "" {
		s.errorResponse(w, http.StatusInternalServerError, "export failed")
		return
	}
	s.jsonResponse(w, http.StatusOK, ExportResponse{
		Path:     path,
		Format:   exp.Format(),
		Template: rendering.For(req.Template).TemplateID(),
	})
}
