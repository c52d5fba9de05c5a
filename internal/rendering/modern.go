package rendering

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/catalog"
	"github.com/jonathan/resume-builder/internal/types"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// modern is a single column with labelled contacts and dot skill levels
type modern struct{}

func (modern) TemplateID() string { return catalog.Modern }

var contactLabels = map[string]string{
	"email":    "Email",
	"phone":    "Phone",
	"location": "Location",
}

func (m modern) Render(r types.Resume) *html.Node {
	v := buildView(r)
	root := el(atom.Div, "resume resume-modern", m.header(v))

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

func (modern) header(v view) *html.Node {
	contacts := el(atom.Div, "contacts")
	for _, c := range v.Contacts {
		contacts.AppendChild(el(atom.Div, "contact contact-"+c.Kind,
			el(atom.Span, "label", txt(contactLabels[c.Kind]+":")),
			txt(" "+c.Value)))
	}
	for _, l := range v.Links {
		contacts.AppendChild(el(atom.Div, "contact contact-link",
			el(atom.Span, "label", txt(l.Label+":")),
			txt(" "),
			anchor("link", l.URL, l.Display)))
	}

	return el(atom.Header, "header",
		textEl(atom.H1, "name", v.Name),
		textEl(atom.H2, "title", v.Title),
		contacts)
}

func (m modern) section(s sectionView) *html.Node {
	b := block(string(s.Kind), s.ID, "block", textEl(atom.H2, "block-title", s.Title))

	if s.Kind == types.SectionSkills {
		if s.Empty() {
			b.AppendChild(el(atom.P, "empty", txt(EmptySkillsMessage)))
			return b
		}
		chips := el(atom.Div, "skills")
		for _, e := range s.Entries {
			chip := el(atom.Span, "skill", txt(e.Heading))
			if e.Level > 0 {
				chip.AppendChild(el(atom.Span, "level", txt(strings.Repeat("●", e.Level))))
			}
			chips.AppendChild(chip)
		}
		b.AppendChild(chips)
		return b
	}

	list := el(atom.Div, "entries")
	for _, e := range s.Entries {
		list.AppendChild(m.entry(e))
	}
	b.AppendChild(list)
	return b
}

func (modern) entry(e entry) *html.Node {
	head := el(atom.Div, "entry-head", nonNil(
		textEl(atom.H3, "heading", e.Heading),
		textEl(atom.Span, "dates", e.Dates),
	)...)
	if e.Link != "" {
		head.AppendChild(anchor("project-link", e.Link, "Link"))
	}

	var tags *html.Node
	if len(e.Tags) > 0 {
		tags = el(atom.Div, "tags")
		for _, t := range e.Tags {
			tags.AppendChild(el(atom.Span, "tag", txt(t)))
		}
	}

	n := el(atom.Div, "entry",
		textEl(atom.P, "org", e.orgLine()),
		textEl(atom.P, "body", e.Body),
		tags)
	if head.FirstChild != nil {
		n.InsertBefore(head, n.FirstChild)
	}
	return attr(n, "data-item", e.ID)
}
