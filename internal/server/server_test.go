package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/jonathan/resume-builder/internal/catalog"
	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/store"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type testServer struct {
	*Server
	handler http.Handler
	logs    *observer.ObservedLogs
}

func newTestServer(t *testing.T, gen llm.Generator) *testServer {
	t.Helper()
	if gen == nil {
		gen = llm.GeneratorFunc(func(context.Context, string, types.Resume) (string, error) {
			return "Generated text.", nil
		})
	}
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)
	metrics := observability.NewMetrics()
	st := store.New(context.Background(), nil, store.WithGenerator(gen), store.WithLogger(logger), store.WithMetrics(metrics))

	s := New(Config{ExportDir: t.TempDir()}, st, logger, metrics)
	return &testServer{Server: s, handler: s.Handler(), logs: logs}
}

func (ts *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	w := httptest.NewRecorder()
	ts.handler.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t, nil)

	w := s.do(t, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode[map[string]string](t, w)["status"])
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}

func TestRequestID_ReusesValidHeader(t *testing.T) {
	s := newTestServer(t, nil)
	const id = "4f0c8d1e-9b1a-4c7e-8a54-2f6d3c1b0a99"

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, id)
	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)
	assert.Equal(t, id, w.Header().Get(RequestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "not-a-uuid")
	w = httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)
	assert.NotEqual(t, "not-a-uuid", w.Header().Get(RequestIDHeader))

	entries := s.logs.FilterMessage("request completed").All()
	require.Len(t, entries, 2)
	assert.Equal(t, id, entries[0].ContextMap()["request_id"])
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t, nil)

	w := s.do(t, http.MethodOptions, "/resume", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "PATCH")
}

func TestGetResume(t *testing.T) {
	s := newTestServer(t, nil)

	w := s.do(t, http.MethodGet, "/resume", nil)

	require.Equal(t, http.StatusOK, w.Code)
	got := decode[types.Resume](t, w)
	assert.Equal(t, types.DefaultResume().Sections[0].ID, got.Sections[0].ID)
	assert.Len(t, got.Sections, 3)
}

func TestUpdatePersonalInfo(t *testing.T) {
	s := newTestServer(t, nil)

	w := s.do(t, http.MethodPatch, "/resume/personal-info", map[string]string{"firstName": "Ada", "title": "Analyst"})
	require.Equal(t, http.StatusOK, w.Code)

	info := decode[types.PersonalInfo](t, w)
	assert.Equal(t, "Ada", info.FirstName)
	assert.Equal(t, "Analyst", info.Title)
	assert.Equal(t, types.PersonalInfoID, info.ID)

	w = s.do(t, http.MethodPatch, "/resume/personal-info", "{bad")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLinks(t *testing.T) {
	s := newTestServer(t, nil)

	w := s.do(t, http.MethodPost, "/resume/links", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	link := decode[types.Link](t, w)
	require.NotEmpty(t, link.ID)

	w = s.do(t, http.MethodPatch, "/resume/links/"+link.ID, UpdateFieldRequest{Field: "url", Value: "https://example.com"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://example.com", s.store.Resume().PersonalInfo.Links[0].URL)

	w = s.do(t, http.MethodPatch, "/resume/links/"+link.ID, UpdateFieldRequest{Field: "id", Value: "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPatch, "/resume/links/"+link.ID, UpdateFieldRequest{Field: "label", Value: 7})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPatch, "/resume/links/missing", UpdateFieldRequest{Field: "url", Value: "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(t, http.MethodDelete, "/resume/links/"+link.ID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, s.store.Resume().PersonalInfo.Links)
}

func TestAddSection(t *testing.T) {
	s := newTestServer(t, nil)

	w := s.do(t, http.MethodPost, "/resume/sections", AddSectionRequest{Type: "projects"})
	require.Equal(t, http.StatusCreated, w.Code)

	section := decode[types.Section](t, w)
	assert.Equal(t, types.SectionProjects, section.Type)
	assert.Equal(t, "Projects", section.Title)
	require.Len(t, section.Items, 1)
	assert.IsType(t, &types.ProjectItem{}, section.Items[0])

	w = s.do(t, http.MethodPost, "/resume/sections", AddSectionRequest{Type: "hobbies"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Len(t, s.store.Resume().Sections, 4)
}

func TestUpdateSection(t *testing.T) {
	s := newTestServer(t, nil)

	w := s.do(t, http.MethodPatch, "/resume/sections/skills-1", map[string]any{
		"title": "Tooling",
		"items": []map[string]any{{"id": "skill-a", "name": "Go", "level": 5}},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	section := decode[types.Section](t, w)
	assert.Equal(t, "Tooling", section.Title)
	require.Len(t, section.Items, 1)
	assert.Equal(t, 5, section.Items[0].(*types.SkillItem).Level)

	w = s.do(t, http.MethodPatch, "/resume/sections/skills-1", map[string]any{
		"items": []map[string]any{{"id": "x", "position": "Engineer"}},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "Go", s.store.Resume().Sections[2].Items[0].(*types.SkillItem).Name)

	w = s.do(t, http.MethodPatch, "/resume/sections/nope", map[string]any{"title": "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRemoveSection(t *testing.T) {
	s := newTestServer(t, nil)

	w := s.do(t, http.MethodDelete, "/resume/sections/education-1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	r := s.store.Resume()
	assert.Equal(t, -1, r.FindSection("education-1"))

	w = s.do(t, http.MethodDelete, "/resume/sections/education-1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestItems(t *testing.T) {
	s := newTestServer(t, nil)

	w := s.do(t, http.MethodPost, "/resume/sections/skills-1/items", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var item types.SkillItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
	require.NotEmpty(t, item.ID)

	path := fmt.Sprintf("/resume/sections/skills-1/items/%s", item.ID)

	w = s.do(t, http.MethodPatch, path, UpdateFieldRequest{Field: "name", Value: "Go"})
	require.Equal(t, http.StatusOK, w.Code)
	w = s.do(t, http.MethodPatch, path, UpdateFieldRequest{Field: "level", Value: "4"})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
	assert.Equal(t, types.SkillItem{ID: item.ID, Name: "Go", Level: 4}, item)

	w = s.do(t, http.MethodPatch, path, UpdateFieldRequest{Field: "company", Value: "Acme"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = s.do(t, http.MethodPatch, path, UpdateFieldRequest{Value: "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPatch, "/resume/sections/skills-1/items/missing", UpdateFieldRequest{Field: "name", Value: "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(t, http.MethodPost, "/resume/sections/missing/items", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(t, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, s.store.Resume().Sections[2].Items)
}

func TestTemplates(t *testing.T) {
	s := newTestServer(t, nil)

	w := s.do(t, http.MethodGet, "/templates", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[TemplatesResponse](t, w)
	assert.Len(t, list.Templates, len(catalog.List()))
	assert.Equal(t, catalog.Modern, list.Selected)

	w = s.do(t, http.MethodPut, "/template", SelectTemplateRequest{ID: catalog.Creative})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, catalog.Creative, decode[types.Template](t, w).ID)

	w = s.do(t, http.MethodPut, "/template", SelectTemplateRequest{ID: "retro"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, catalog.Creative, s.store.SelectedTemplate().ID)
}

func TestPreview(t *testing.T) {
	s := newTestServer(t, nil)
	s.store.SelectTemplate(context.Background(), catalog.Professional)

	w := s.do(t, http.MethodGet, "/preview", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), `data-template="professional"`)

	w = s.do(t, http.MethodGet, "/preview?template=minimal", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `data-template="minimal"`)
	assert.Equal(t, catalog.Professional, s.store.SelectedTemplate().ID, "preview does not change the selection")

	kinds, err := rendering.OutlineHTML(w.Body.Bytes())
	require.NoError(t, err)
	assert.Equal(t, []string{"experience", "education", "skills"}, kinds)
}

func TestPreview_Fragment(t *testing.T) {
	s := newTestServer(t, nil)

	w := s.do(t, http.MethodGet, "/preview?template=minimal&fragment=true", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")

	body := w.Body.String()
	assert.True(t, strings.HasPrefix(body, `<div class="resume resume-minimal">`), body)
	assert.NotContains(t, body, "<!DOCTYPE html>")
	assert.NotContains(t, body, "<style>")

	w = s.do(t, http.MethodGet, "/preview?fragment=false", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Body.String(), "<!DOCTYPE html>"))
}

func TestExport(t *testing.T) {
	s := newTestServer(t, nil)

	w := s.do(t, http.MethodPost, "/export", ExportRequest{Template: catalog.Minimal})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decode[ExportResponse](t, w)
	assert.Equal(t, "html", resp.Format)
	assert.Equal(t, catalog.Minimal, resp.Template)
	data, err := os.ReadFile(resp.Path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "resume-minimal")

	w = s.do(t, http.MethodPost, "/export", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, catalog.Modern, decode[ExportResponse](t, w).Template)

	w = s.do(t, http.MethodPost, "/export", ExportRequest{Format: "docx"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReset(t *testing.T) {
	s := newTestServer(t, nil)
	ctx := context.Background()
	s.store.AddSection(ctx, types.SectionCustom)
	s.store.SelectTemplate(ctx, catalog.Minimal)

	w := s.do(t, http.MethodPost, "/reset", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[types.Resume](t, w).Sections, 3)
	assert.Equal(t, catalog.Modern, s.store.SelectedTemplate().ID)
}

func TestGenerate(t *testing.T) {
	s := newTestServer(t, nil)

	w := s.do(t, http.MethodPost, "/generate", GenerateRequest{Target: types.PersonalInfoID, Prompt: "summary"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Generated text.", decode[types.Resume](t, w).PersonalInfo.Summary)

	w = s.do(t, http.MethodPost, "/generate", GenerateRequest{Target: "experience-1", Prompt: "experience"})
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[types.Resume](t, w)
	assert.Equal(t, "Generated text.", got.Sections[0].Items[0].(*types.ExperienceItem).Description)

	w = s.do(t, http.MethodPost, "/generate", GenerateRequest{Prompt: "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPost, "/generate", GenerateRequest{Target: "nope", Prompt: "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGenerate_GatewayFailure(t *testing.T) {
	s := newTestServer(t, llm.GeneratorFunc(func(context.Context, string, types.Resume) (string, error) {
		return "", errors.New("quota exceeded")
	}))

	w := s.do(t, http.MethodPost, "/generate", GenerateRequest{Target: types.PersonalInfoID, Prompt: "x"})
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, decode[map[string]string](t, w)["error"], "quota exceeded")
	assert.Empty(t, s.store.Resume().PersonalInfo.Summary)
}

func TestGenerateStream(t *testing.T) {
	s := newTestServer(t, nil)

	w := s.do(t, http.MethodPost, "/generate/stream", GenerateRequest{Target: types.PersonalInfoID, Prompt: "summary"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))

	body := w.Body.String()
	pending := strings.Index(body, "event: pending")
	complete := strings.Index(body, "event: complete")
	require.GreaterOrEqual(t, pending, 0, body)
	assert.Greater(t, complete, pending)
	assert.Contains(t, body, "Generated text.")
}

func TestGenerateStream_Error(t *testing.T) {
	s := newTestServer(t, llm.GeneratorFunc(func(context.Context, string, types.Resume) (string, error) {
		return "", errors.New("offline")
	}))

	w := s.do(t, http.MethodPost, "/generate/stream", GenerateRequest{Target: types.PersonalInfoID, Prompt: "x"})
	assert.Contains(t, w.Body.String(), "event: error")
	assert.Contains(t, w.Body.String(), "offline")
}

func TestStatus(t *testing.T) {
	s := newTestServer(t, nil)

	w := s.do(t, http.MethodGet, "/status", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, StatusResponse{Generating: false, Template: catalog.Modern}, decode[StatusResponse](t, w))
}

func TestHint(t *testing.T) {
	s := newTestServer(t, nil)

	w := s.do(t, http.MethodGet, "/hints/experience", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, decode[map[string]string](t, w)["hint"])
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t, nil)
	s.do(t, http.MethodPost, "/resume/sections", AddSectionRequest{Type: "custom"})

	w := s.do(t, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `resume_builder_store_mutations_total{op="add_section"} 1`)
}

func TestRecoverMiddleware(t *testing.T) {
	s := newTestServer(t, nil)
	h := s.withRecover(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, 1, s.logs.FilterMessage("handler panic").Len())
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{&ErrNotFound{Kind: "section", ID: "x"}, http.StatusNotFound},
		{&ErrValidation{Field: "f", Message: "m"}, http.StatusBadRequest},
		{&types.SectionTypeError{Type: "x"}, http.StatusBadRequest},
		{&types.ItemTypeError{SectionID: "s"}, http.StatusUnprocessableEntity},
		{fmt.Errorf("wrapped: %w", &types.FieldError{Field: "f"}), http.StatusUnprocessableEntity},
		{&store.GenerationError{TargetID: "t"}, http.StatusBadGateway},
		{errors.New("other"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HTTPStatus(tt.err), tt.err.Error())
	}
}
