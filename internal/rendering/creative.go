package rendering

import (
	"fmt"

	"github.com/jonathan/resume-builder/internal/catalog"
	"github.com/jonathan/resume-builder/internal/types"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// creative is a two-column grid. Blocks stay in canonical order in the tree;
// the stylesheet moves summary, skills and education into the side column.
type creative struct{}

func (creative) TemplateID() string { return catalog.Creative }

func (c creative) Render(r types.Resume) *html.Node {
	v := buildView(r)
	columns := el(atom.Div, "columns")

	if v.Summary != "" {
		columns.AppendChild(block(SummaryKind, "", "block side",
			el(atom.H2, "block-title", txt("About Me")),
			el(atom.P, "summary", txt(v.Summary))))
	}

	for _, g := range v.Groups {
		for _, s := range g.Sections {
			columns.AppendChild(c.section(s))
		}
	}

	return el(atom.Div, "resume resume-creative",
		el(atom.Div, "accent"),
		c.header(v),
		columns)
}

func (creative) header(v view) *html.Node {
	h := el(atom.Header, "header",
		textEl(atom.H1, "name", v.Name),
		textEl(atom.H2, "title", v.Title))

	if len(v.Contacts) > 0 {
		contacts := el(atom.Div, "contacts")
		for _, c := range v.Contacts {
			contacts.AppendChild(el(atom.Div, "contact contact-"+c.Kind,
				el(atom.Span, "dot dot-"+c.Kind),
				txt(c.Value)))
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

func (c creative) section(s sectionView) *html.Node {
	column := "main"
	switch s.Kind {
	case types.SectionSkills, types.SectionEducation:
		column = "side"
	}
	b := block(string(s.Kind), s.ID, "block "+column, textEl(atom.H2, "block-title", s.Title))

	if s.Kind == types.SectionSkills {
		if s.Empty() {
			b.AppendChild(el(atom.P, "empty", txt(EmptySkillsMessage)))
			return b
		}
		for _, e := range s.Entries {
			row := el(atom.Div, "skill", el(atom.Div, "skill-name", txt(e.Heading)))
			if e.Level > 0 {
				fill := el(atom.Div, "level-fill")
				attr(fill, "style", fmt.Sprintf("width: %d%%", e.Level*100/MaxSkillLevel))
				row.AppendChild(el(atom.Div, "level-bar", fill))
			}
			b.AppendChild(row)
		}
		return b
	}

	for _, e := range s.Entries {
		b.AppendChild(c.entry(e))
	}
	return b
}

func (creative) entry(e entry) *html.Node {
	n := el(atom.Div, "entry timeline", nonNil(
		textEl(atom.H3, "heading", e.Heading),
		textEl(atom.P, "org", e.orgLine()),
		textEl(atom.P, "dates", e.Dates),
		textEl(atom.P, "body", e.Body),
	)...)
	attr(n, "data-item", e.ID)

	if e.Link != "" {
		n.AppendChild(anchor("project-link", e.Link, "View Project"))
	}
	if len(e.Tags) > 0 {
		tags := el(atom.Div, "tags")
		for _, t := range e.Tags {
			tags.AppendChild(el(atom.Span, "tag", txt(t)))
		}
		n.AppendChild(tags)
	}
	return n
}
