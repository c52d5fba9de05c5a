package rendering

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/catalog"
	"github.com/jonathan/resume-builder/internal/types"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// minimal is a compact single column. Skills are one comma-separated line.
type minimal struct{}

func (minimal) TemplateID() string { return catalog.Minimal }

func (m minimal) Render(r types.Resume) *html.Node {
	v := buildView(r)

	line := el(atom.Div, "contacts")
	for _, c := range v.Contacts {
		line.AppendChild(el(atom.Span, "contact contact-"+c.Kind, txt(c.Value)))
	}
	for _, l := range v.Links {
		line.AppendChild(anchor("link", l.URL, l.Label))
	}

	root := el(atom.Div, "resume resume-minimal",
		el(atom.Header, "header",
			textEl(atom.H1, "name", v.Name),
			textEl(atom.P, "title", v.Title),
			line))

	if v.Summary != "" {
		root.AppendChild(block(SummaryKind, "", "block",
			el(atom.H2, "block-title", txt("Summary")),
			el(atom.P, "summary", txt(v.Summary))))
	}

	for _, g := range v.Groups {
		for _, s := range g.Sections {
			root.AppendChild(m.section(s))
		}
	}
	return root
}

func (m minimal) section(s sectionView) *html.Node {
	b := block(string(s.Kind), s.ID, "block", textEl(atom.H2, "block-title", s.Title))

	if s.Kind == types.SectionSkills {
		if s.Empty() {
			b.AppendChild(el(atom.P, "empty", txt(EmptySkillsMessage)))
			return b
		}
		p := el(atom.P, "skills")
		for i, e := range s.Entries {
			if i > 0 {
				p.AppendChild(txt(", "))
			}
			p.AppendChild(el(atom.Span, "skill", txt(e.Heading)))
			if e.Level > 0 {
				p.AppendChild(el(atom.Span, "level", txt(" "+strings.Repeat("•", e.Level))))
			}
		}
		b.AppendChild(p)
		return b
	}

	for _, e := range s.Entries {
		b.AppendChild(m.entry(e))
	}
	return b
}

func (minimal) entry(e entry) *html.Node {
	n := el(atom.Div, "entry")
	attr(n, "data-item", e.ID)

	heading := e.Heading
	if org := e.orgLine(); org != "" {
		if heading != "" {
			heading += " · "
		}
		heading += org
	}
	if heading != "" || e.Dates != "" {
		n.AppendChild(el(atom.Div, "entry-head", nonNil(
			textEl(atom.Span, "heading", heading),
			textEl(atom.Span, "dates", e.Dates),
		)...))
	}
	if e.Body != "" {
		n.AppendChild(el(atom.P, "body", txt(e.Body)))
	}
	if e.Link != "" || len(e.Tags) > 0 {
		meta := el(atom.P, "meta")
		if len(e.Tags) > 0 {
			meta.AppendChild(txt(joinTags(e.Tags)))
		}
		if e.Link != "" {
			if len(e.Tags) > 0 {
				meta.AppendChild(txt(" · "))
			}
			meta.AppendChild(anchor("project-link", e.Link, DisplayURL(e.Link)))
		}
		n.AppendChild(meta)
	}
	return n
}

func joinTags(tags []string) string {
	return strings.Join(tags, ", ")
}
