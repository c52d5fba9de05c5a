package rendering

import (
	"bytes"
	"context"
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/jonathan/resume-builder/internal/types"
	"golang.org/x/net/html"
	"golang.org/x/sync/errgroup"
)

// Outline lists the data-section kinds of a rendered tree in document order
func Outline(root *html.Node) []string {
	var kinds []string
	goquery.NewDocumentFromNode(root).Find("[data-section]").Each(func(_ int, s *goquery.Selection) {
		kind, _ := s.Attr("data-section")
		kinds = append(kinds, kind)
	})
	return kinds
}

// OutlineHTML parses a rendered page and lists its data-section kinds in document order
func OutlineHTML(page []byte) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return nil, &RenderError{Message: "failed to parse page", Cause: err}
	}
	return Outline(doc.Nodes[0]), nil
}

// RenderAll renders the resume with every catalog template concurrently.
// The result maps template id to a standalone HTML page.
func RenderAll(ctx context.Context, r types.Resume) (map[string][]byte, error) {
	all := All()
	pages := make([][]byte, len(all))

	g, ctx := errgroup.WithContext(ctx)
	for i, p := range all {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			page, err := RenderHTML(p, r)
			if err != nil {
				return fmt.Errorf("template %s: %w", p.TemplateID(), err)
			}
			pages[i] = page
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string][]byte, len(all))
	for i, p := range all {
		out[p.TemplateID()] = pages[i]
	}
	return out, nil
}
