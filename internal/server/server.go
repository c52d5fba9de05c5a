// Package server provides the HTTP REST API for the resume builder.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/store"
	"go.uber.org/zap"
)

// RequestIDHeader carries the per-request id on responses
const RequestIDHeader = "X-Request-ID"

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	store      *store.Store
	logger     *zap.Logger
	metrics    *observability.Metrics
	cfg        Config
}

// Config holds server configuration
type Config struct {
	Port         int
	ExportDir    string
	ExportFormat string
	ChromePath   string
}

// New creates a new server instance around st
func New(cfg Config, st *store.Store, logger *zap.Logger, metrics *observability.Metrics) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.ExportFormat == "" {
		cfg.ExportFormat = export.FormatHTML
	}

	s := &Server{
		store:   st,
		logger:  logger,
		metrics: metrics,
		cfg:     cfg,
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // PDF export can take a while
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Handler returns the routed handler with middleware applied
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /status", s.handleStatus)

	// Document
	mux.HandleFunc("GET /resume", s.handleGetResume)
	mux.HandleFunc("PATCH /resume/personal-info", s.handleUpdatePersonalInfo)
	mux.HandleFunc("POST /resume/links", s.handleAddLink)
	mux.HandleFunc("PATCH /resume/links/{id}", s.handleUpdateLink)
	mux.HandleFunc("DELETE /resume/links/{id}", s.handleRemoveLink)
	mux.HandleFunc("POST /resume/sections", s.handleAddSection)
	mux.HandleFunc("PATCH /resume/sections/{id}", s.handleUpdateSection)
	mux.HandleFunc("DELETE /resume/sections/{id}", s.handleRemoveSection)
	mux.HandleFunc("POST /resume/sections/{id}/items", s.handleAddItem)
	mux.HandleFunc("PATCH /resume/sections/{id}/items/{item_id}", s.handleUpdateItem)
	mux.HandleFunc("DELETE /resume/sections/{id}/items/{item_id}", s.handleRemoveItem)
	mux.HandleFunc("POST /reset", s.handleReset)

	// Templates and output
	mux.HandleFunc("GET /templates", s.handleListTemplates)
	mux.HandleFunc("PUT /template", s.handleSelectTemplate)
	mux.HandleFunc("GET /preview", s.handlePreview)
	mux.HandleFunc("POST /export", s.handleExport)

	// Generation
	mux.HandleFunc("POST /generate", s.handleGenerate)
	mux.HandleFunc("POST /generate/stream", s.handleGenerateStream)
	mux.HandleFunc("GET /hints/{kind}", s.handleHint)

	mux.Handle("GET /metrics", s.metrics.Handler())

	return s.withRequestID(s.withLogging(s.withRecover(s.withCORS(mux))))
}

// Start listens until ctx is cancelled, then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	s.logger.Info("server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

type requestIDKey struct{}

// withRequestID tags each request with a uuid, reusing the caller's id when present
func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))
	})
}

func requestID(r *http.Request) string {
	id, _ := r.Context().Value(requestIDKey{}).(string)
	return id
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("request completed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.String("request_id", requestID(r)),
			zap.Duration("elapsed", time.Since(start)))
	})
}

// withRecover turns handler panics into 500 responses
func (s *Server) withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if p := recover(); p != nil {
				s.logger.Error("handler panic",
					zap.Any("panic", p),
					zap.String("path", r.URL.Path),
					zap.String("request_id", requestID(r)))
				s.errorResponse(w, http.StatusInternalServerError, "internal error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// StatusResponse represents the response for /status
type StatusResponse struct {
	Generating bool   `json:"generating"`
	Template   string `json:"template"`
}

// handleStatus reports the pending generation flag and the selected template
func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, StatusResponse{
		Generating: s.store.IsGenerating(),
		Template:   s.store.SelectedTemplate().ID,
	})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Warn("error encoding JSON response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// errResponse maps err onto a status with HTTPStatus
func (s *Server) errResponse(w http.ResponseWriter, err error) {
	s.errorResponse(w, HTTPStatus(err), err.Error())
}

// decodeBody decodes a JSON request body into v
func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return &ErrValidation{Field: "body", Message: "invalid request body: " + err.Error()}
	}
	return nil
}
