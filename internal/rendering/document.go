package rendering

import (
	"bytes"
	"embed"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

//go:embed styles/*.css
var styleFiles embed.FS

// Stylesheet returns the base stylesheet followed by the template's own rules
func Stylesheet(templateID string) (string, error) {
	base, err := styleFiles.ReadFile("styles/base.css")
	if err != nil {
		return "", &StyleError{TemplateID: templateID, Message: "base stylesheet missing", Cause: err}
	}
	own, err := styleFiles.ReadFile("styles/" + templateID + ".css")
	if err != nil {
		return "", &StyleError{TemplateID: templateID, Message: "template stylesheet missing", Cause: err}
	}
	return string(base) + "\n" + string(own), nil
}

// Document wraps a projected tree into a complete HTML document node
func Document(p Projector, r types.Resume) (*html.Node, error) {
	css, err := Stylesheet(p.TemplateID())
	if err != nil {
		return nil, err
	}

	title := "Resume"
	if name := strings.TrimSpace(r.PersonalInfo.FullName()); name != "" {
		title = name + " - Resume"
	}

	charset := el(atom.Meta, "")
	attr(charset, "charset", "utf-8")
	viewport := el(atom.Meta, "")
	attr(viewport, "name", "viewport")
	attr(viewport, "content", "width=device-width, initial-scale=1")

	root := el(atom.Html, "",
		el(atom.Head, "",
			charset,
			viewport,
			el(atom.Title, "", txt(title)),
			el(atom.Style, "", txt(css))),
		el(atom.Body, "", p.Render(r)))
	attr(root, "lang", "en")
	attr(root, "data-template", p.TemplateID())

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	doc.AppendChild(root)
	return doc, nil
}

// RenderHTML renders the resume with p into a standalone HTML page
func RenderHTML(p Projector, r types.Resume) ([]byte, error) {
	doc, err := Document(p, r)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		return nil, &RenderError{Message: "failed to serialize document", Cause: err}
	}
	return buf.Bytes(), nil
}

// RenderFragment serializes only the projected tree, for embedding into another page
func RenderFragment(p Projector, r types.Resume) ([]byte, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, p.Render(r)); err != nil {
		return nil, &RenderError{Message: "failed to serialize fragment", Cause: err}
	}
	return buf.Bytes(), nil
}
