package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
)

// DefaultPrintTimeout bounds one headless Chrome print
const DefaultPrintTimeout = 60 * time.Second

// A4 paper size in inches
const (
	paperWidthIn  = 8.27
	paperHeightIn = 11.69
)

// PDFPrinter converts an HTML page into PDF bytes
type PDFPrinter interface {
	PrintPDF(ctx context.Context, page []byte) ([]byte, error)
}

// PDFExporter renders HTML and prints it to PDF
type PDFExporter struct {
	dir     string
	printer PDFPrinter
	now     func() time.Time
}

// NewPDFExporter creates an exporter writing into dir
func NewPDFExporter(dir string, printer PDFPrinter) *PDFExporter {
	return &PDFExporter{dir: dir, printer: printer, now: time.Now}
}

// Format implements Exporter
func (e *PDFExporter) Format() string { return FormatPDF }

// Export implements Exporter
func (e *PDFExporter) Export(ctx context.Context, r types.Resume, templateID string) (string, error) {
	p := rendering.For(templateID)
	html, err := rendering.RenderHTML(p, r)
	if err != nil {
		return "", err
	}
	pdf, err := e.printer.PrintPDF(ctx, html)
	if err != nil {
		return "", fmt.Errorf("failed to print PDF: %w", err)
	}
	return writeFile(e.dir, fileName(p.TemplateID(), FormatPDF, e.now()), pdf)
}

// ChromePrinter prints through a headless Chrome started per call
type ChromePrinter struct {
	execPath string
	timeout  time.Duration
}

// NewChromePrinter uses the Chrome binary at execPath, or chromedp's lookup when empty
func NewChromePrinter(execPath string) *ChromePrinter {
	return &ChromePrinter{execPath: execPath, timeout: DefaultPrintTimeout}
}

// PrintPDF implements PDFPrinter
func (c *ChromePrinter) PrintPDF(ctx context.Context, html []byte) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if c.execPath != "" {
		opts = append(opts, chromedp.ExecPath(c.execPath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	cctx, cancelCtx := chromedp.NewContext(allocCtx)
	defer cancelCtx()

	runCtx, cancelRun := context.WithTimeout(cctx, c.timeout)
	defer cancelRun()

	tmpDir, err := os.MkdirTemp("", "resume-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, html, 0o644); err != nil {
		return nil, err
	}

	var pdfBuf []byte
	err = chromedp.Run(runCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().WithPrintBackground(true).
				WithPaperWidth(paperWidthIn).
				WithPaperHeight(paperHeightIn).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuf, nil
}
