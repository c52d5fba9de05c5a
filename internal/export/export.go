// Package export writes a rendered resume to disk as HTML or PDF.
// Dispatcher is the fire-and-forget boundary used by the front ends: export
// failures are logged and counted there, never returned to the caller.
package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/types"
	"go.uber.org/zap"
)

// Supported formats
const (
	FormatHTML = "html"
	FormatPDF  = "pdf"
)

// Exporter writes a resume rendered with a template and returns the written path
type Exporter interface {
	Format() string
	Export(ctx context.Context, r types.Resume, templateID string) (string, error)
}

// New returns the exporter for format, writing into dir
func New(format, dir, chromePath string) (Exporter, error) {
	switch format {
	case FormatHTML, "":
		return NewHTMLExporter(dir), nil
	case FormatPDF:
		return NewPDFExporter(dir, NewChromePrinter(chromePath)), nil
	default:
		return nil, fmt.Errorf("unknown export format: %s", format)
	}
}

// fileName builds resume-<template>-<timestamp>.<ext>
func fileName(templateID, ext string, at time.Time) string {
	return fmt.Sprintf("resume-%s-%s.%s", templateID, at.Format("20060102-150405"), ext)
}

// writeFile writes data via a temp file and rename so readers never see a partial export
func writeFile(dir, name string, data []byte) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".export-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("failed to write export: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to close export: %w", err)
	}

	path := filepath.Join(dir, name)
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("failed to move export into place: %w", err)
	}
	return path, nil
}

// Dispatcher runs exports without surfacing their errors
type Dispatcher struct {
	exporter Exporter
	logger   *zap.Logger
	metrics  *observability.Metrics
}

// NewDispatcher wraps exp. A nil logger discards output; nil metrics record nothing.
func NewDispatcher(exp Exporter, logger *zap.Logger, metrics *observability.Metrics) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{exporter: exp, logger: logger, metrics: metrics}
}

// Dispatch exports r and returns the written path, or "" when the export failed
func (d *Dispatcher) Dispatch(ctx context.Context, r types.Resume, templateID string) string {
	start := time.Now()
	path, err := d.exporter.Export(ctx, r, templateID)
	d.metrics.Exported(d.exporter.Format(), err)
	if err != nil {
		d.logger.Warn("export failed",
			zap.String("format", d.exporter.Format()),
			zap.String("template", templateID),
			zap.Error(err))
		return ""
	}
	d.logger.Info("export written",
		zap.String("format", d.exporter.Format()),
		zap.String("template", templateID),
		zap.String("path", path),
		zap.Duration("elapsed", time.Since(start)))
	return path
}
