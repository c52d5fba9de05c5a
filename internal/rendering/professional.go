package rendering

import (
	"fmt"

	"github.com/jonathan/resume-builder/internal/catalog"
	"github.com/jonathan/resume-builder/internal/types"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// professional is a centred, serif layout with numeric skill levels
type professional struct{}

func (professional) TemplateID() string { return catalog.Professional }

func (p professional) Render(r types.Resume) *html.Node {
	v := buildView(r)
	root := el(atom.Div, "resume resume-professional", p.header(v))

	if v.Summary != "" {
		root.AppendChild(block(SummaryKind, "", "block",
			el(atom.H2, "block-title", txt("Professional Summary")),
			el(atom.P, "summary", txt(v.Summary))))
	}

	for _, g := range v.Groups {
		for _, s := range g.Sections {
			root.AppendChild(p.section(s))
		}
	}
	return root
}

func (professional) header(v view) *html.Node {
	h := el(atom.Header, "header centered",
		textEl(atom.H1, "name", v.Name),
		textEl(atom.H2, "title", v.Title))

	if len(v.Contacts) > 0 {
		contacts := el(atom.Div, "contacts")
		for _, c := range v.Contacts {
			contacts.AppendChild(el(atom.Span, "contact contact-"+c.Kind, txt(c.Value)))
		}
		h.AppendChild(contacts)
	}
	if len(v.Links) > 0 {
		links := el(atom.Div, "links")
		for _, l := range v.Links {
			links.AppendChild(anchor("link", l.URL, l.Label))
		}
		h.AppendChild(links)
	}
	return h
}

func (p professional) section(s sectionView) *html.Node {
	b := block(string(s.Kind), s.ID, "block", textEl(atom.H2, "block-title", s.Title))

	if s.Kind == types.SectionSkills {
		if s.Empty() {
			b.AppendChild(el(atom.P, "empty", txt(EmptySkillsMessage)))
			return b
		}
		list := el(atom.Ul, "skills")
		for _, e := range s.Entries {
			li := el(atom.Li, "skill", txt(e.Heading))
			if e.Level > 0 {
				li.AppendChild(el(atom.Span, "level", txt(fmt.Sprintf(" %d/%d", e.Level, MaxSkillLevel))))
			}
			list.AppendChild(li)
		}
		b.AppendChild(list)
		return b
	}

	for _, e := range s.Entries {
		b.AppendChild(p.entry(e))
	}
	return b
}

func (professional) entry(e entry) *html.Node {
	n := el(atom.Div, "entry")
	attr(n, "data-item", e.ID)

	if e.Heading != "" || e.Dates != "" {
		n.AppendChild(el(atom.Div, "entry-head", nonNil(
			textEl(atom.H3, "heading", e.Heading),
			textEl(atom.Span, "dates", e.Dates),
		)...))
	}
	if org := e.orgLine(); org != "" {
		n.AppendChild(el(atom.P, "org", el(atom.Em, "", txt(org))))
	}
	if e.Link != "" {
		n.AppendChild(el(atom.P, "project-link", anchor("", e.Link, DisplayURL(e.Link))))
	}
	if e.Body != "" {
		n.AppendChild(el(atom.P, "body", txt(e.Body)))
	}
	if len(e.Tags) > 0 {
		n.AppendChild(el(atom.P, "tags", el(atom.Strong, "", txt("Technologies: ")), txt(joinTags(e.Tags))))
	}
	return n
}
