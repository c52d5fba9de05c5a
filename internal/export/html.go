package export

import (
	"context"
	"time"

	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
)

// HTMLExporter writes a standalone HTML page
type HTMLExporter struct {
	dir string
	now func() time.Time
}

// NewHTMLExporter creates an exporter writing into dir
func NewHTMLExporter(dir string) *HTMLExporter {
	return &HTMLExporter{dir: dir, now: time.Now}
}

// Format implements Exporter
func (e *HTMLExporter) Format() string { return FormatHTML }

// Export implements Exporter
func (e *HTMLExporter) Export(ctx context.Context, r types.Resume, templateID string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	p := rendering.For(templateID)
	page, err := rendering.RenderHTML(p, r)
	if err != nil {
		return "", err
	}
	return writeFile(e.dir, fileName(p.TemplateID(), FormatHTML, e.now()), page)
}
