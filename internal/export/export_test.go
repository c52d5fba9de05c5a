package export

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jonathan/resume-builder/internal/catalog"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type fakePrinter struct {
	got []byte
	err error
}

func (f *fakePrinter) PrintPDF(_ context.Context, page []byte) ([]byte, error) {
	f.got = page
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-1.7 fake"), nil
}

func fixedNow() time.Time {
	return time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
}

func TestHTMLExporter(t *testing.T) {
	dir := t.TempDir()
	exp := NewHTMLExporter(dir)
	exp.now = fixedNow

	path, err := exp.Export(context.Background(), types.DefaultResume(), catalog.Minimal)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "resume-minimal-20240506-070809.html"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "<!DOCTYPE html>"))
	assert.Contains(t, string(data), "resume-minimal")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestHTMLExporter_UnknownTemplateUsesDefault(t *testing.T) {
	exp := NewHTMLExporter(t.TempDir())
	path, err := exp.Export(context.Background(), types.DefaultResume(), "retro")
	require.NoError(t, err)
	assert.Contains(t, filepath.Base(path), "resume-"+catalog.Default().ID+"-")
}

func TestPDFExporter(t *testing.T) {
	dir := t.TempDir()
	printer := &fakePrinter{}
	exp := NewPDFExporter(dir, printer)
	exp.now = fixedNow

	path, err := exp.Export(context.Background(), types.DefaultResume(), catalog.Creative)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "resume-creative-20240506-070809.pdf"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.7 fake", string(data))

	kinds, err := rendering.OutlineHTML(printer.got)
	require.NoError(t, err)
	assert.Equal(t, []string{"experience", "education", "skills"}, kinds)
}

func TestPDFExporter_PrintFailure(t *testing.T) {
	dir := t.TempDir()
	exp := NewPDFExporter(dir, &fakePrinter{err: errors.New("chrome not found")})

	_, err := exp.Export(context.Background(), types.DefaultResume(), catalog.Modern)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chrome not found")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestNew(t *testing.T) {
	exp, err := New(FormatHTML, t.TempDir(), "")
	require.NoError(t, err)
	assert.Equal(t, FormatHTML, exp.Format())

	exp, err = New("", t.TempDir(), "")
	require.NoError(t, err)
	assert.Equal(t, FormatHTML, exp.Format())

	exp, err = New(FormatPDF, t.TempDir(), "/usr/bin/chromium")
	require.NoError(t, err)
	assert.Equal(t, FormatPDF, exp.Format())

	_, err = New("docx", t.TempDir(), "")
	assert.ErrorContains(t, err, "unknown export format")
}

func TestDispatcher_SwallowsErrors(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	metrics := observability.NewMetrics()
	d := NewDispatcher(NewPDFExporter(t.TempDir(), &fakePrinter{err: errors.New("boom")}), zap.New(core), metrics)

	var path string
	assert.NotPanics(t, func() {
		path = d.Dispatch(context.Background(), types.DefaultResume(), catalog.Modern)
	})
	assert.Empty(t, path)
	assert.Equal(t, 1, logs.FilterMessage("export failed").Len())

	count, err := testutil.GatherAndCount(metrics.Registry(), "resume_builder_export_exports_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestDispatcher_Success(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	d := NewDispatcher(NewHTMLExporter(t.TempDir()), zap.New(core), nil)

	path := d.Dispatch(context.Background(), types.DefaultResume(), catalog.Modern)
	assert.FileExists(t, path)

	entries := logs.FilterMessage("export written").All()
	require.Len(t, entries, 1)
	assert.Equal(t, path, entries[0].ContextMap()["path"])
}
