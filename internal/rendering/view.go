package rendering

import (
	"regexp"
	"strings"
	"time"

	"github.com/jonathan/resume-builder/internal/types"
)

// SummaryKind tags the summary block. Section blocks use their section type.
const SummaryKind = "summary"

// PresentLabel replaces the end date of a current position
const PresentLabel = "Present"

// EmptySkillsMessage is shown for a skills section without items
const EmptySkillsMessage = "No skills added yet"

// MaxSkillLevel is the top of the skill level scale
const MaxSkillLevel = 5

// dateLayouts are tried in order by FormatDate
var dateLayouts = []string{
	"2006-01-02",
	"2006-01",
	time.RFC3339,
	"January 2006",
	"Jan 2006",
	"2006",
	"01/02/2006",
}

// FormatDate renders a parseable date as "Jan 2006". Empty and unparseable input is returned unchanged.
func FormatDate(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return s
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.Format("Jan 2006")
		}
	}
	return s
}

// DateRange joins formatted start and end dates. A current position always ends in "Present".
// Missing halves are dropped rather than rendered as a dangling separator.
func DateRange(start, end string, current bool) string {
	s := strings.TrimSpace(FormatDate(start))
	e := strings.TrimSpace(FormatDate(end))
	if current {
		e = PresentLabel
	}
	switch {
	case s == "" && e == "":
		return ""
	case s == "":
		return e
	case e == "":
		return s
	default:
		return s + " – " + e
	}
}

var schemePrefix = regexp.MustCompile(`^https?://(www\.)?`)

// DisplayURL strips the scheme and a leading www. for display
func DisplayURL(u string) string {
	return schemePrefix.ReplaceAllString(u, "")
}

// ClampLevel maps a stored level onto 1..MaxSkillLevel. Zero and negative levels mean unset.
func ClampLevel(level int) int {
	switch {
	case level <= 0:
		return 0
	case level > MaxSkillLevel:
		return MaxSkillLevel
	default:
		return level
	}
}

// view is the template-independent content every projector styles
type view struct {
	Name     string
	Title    string
	Contacts []contact
	Links    []linkView
	Summary  string
	Groups   []group
}

type contact struct {
	Kind  string
	Value string
}

type linkView struct {
	Label   string
	URL     string
	Display string
}

// group holds every section of one type, in document order
type group struct {
	Kind     types.SectionType
	Sections []sectionView
}

type sectionView struct {
	ID      string
	Title   string
	Kind    types.SectionType
	Entries []entry
}

// entry is one rendered item. Unused fields stay empty and are never emitted.
type entry struct {
	ID       string
	Heading  string
	Org      string
	Location string
	Dates    string
	Body     string
	Link     string
	Tags     []string
	Level    int
}

// Empty reports whether a skills section must show the empty-state message
func (s sectionView) Empty() bool {
	return len(s.Entries) == 0
}

// buildView applies the shared content rules: canonical group order, date formatting,
// Present for current positions, link display text and level clamping.
func buildView(r types.Resume) view {
	info := r.PersonalInfo
	v := view{
		Name:    strings.TrimSpace(info.FullName()),
		Title:   info.Title,
		Summary: strings.TrimSpace(info.Summary),
	}

	for _, c := range []contact{{"email", info.Email}, {"phone", info.Phone}, {"location", info.Location}} {
		if strings.TrimSpace(c.Value) != "" {
			v.Contacts = append(v.Contacts, c)
		}
	}

	for _, l := range info.Links {
		if strings.TrimSpace(l.URL) == "" && strings.TrimSpace(l.Label) == "" {
			continue
		}
		lv := linkView{Label: l.Label, URL: l.URL, Display: DisplayURL(l.URL)}
		if strings.TrimSpace(lv.Label) == "" {
			lv.Label = lv.Display
		}
		v.Links = append(v.Links, lv)
	}

	for _, kind := range types.SectionTypes {
		g := group{Kind: kind}
		for _, s := range r.Sections {
			if s.Type != kind {
				continue
			}
			sv := sectionView{ID: s.ID, Title: s.Title, Kind: s.Type}
			for _, item := range s.Items {
				sv.Entries = append(sv.Entries, buildEntry(item))
			}
			g.Sections = append(g.Sections, sv)
		}
		if len(g.Sections) > 0 {
			v.Groups = append(v.Groups, g)
		}
	}
	return v
}

func buildEntry(item types.SectionItem) entry {
	switch it := item.(type) {
	case *types.ExperienceItem:
		return entry{
			ID:       it.ID,
			Heading:  it.Position,
			Org:      it.Company,
			Location: it.Location,
			Dates:    DateRange(it.StartDate, it.EndDate, it.Current),
			Body:     it.Description,
		}
	case *types.EducationItem:
		return entry{
			ID:       it.ID,
			Heading:  it.Degree,
			Org:      it.School,
			Location: it.Location,
			Dates:    DateRange(it.StartDate, it.EndDate, false),
			Body:     it.Description,
		}
	case *types.SkillItem:
		return entry{ID: it.ID, Heading: it.Name, Level: ClampLevel(it.Level)}
	case *types.ProjectItem:
		var tags []string
		for _, tech := range it.Technologies {
			if strings.TrimSpace(tech) != "" {
				tags = append(tags, tech)
			}
		}
		return entry{ID: it.ID, Heading: it.Name, Body: it.Description, Link: strings.TrimSpace(it.Link), Tags: tags}
	case *types.CustomItem:
		return entry{ID: it.ID, Heading: it.Title, Body: it.Content}
	}
	return entry{}
}

// orgLine joins organisation and location as "Acme, Berlin"
func (e entry) orgLine() string {
	switch {
	case e.Org == "":
		return e.Location
	case e.Location == "":
		return e.Org
	default:
		return e.Org + ", " + e.Location
	}
}
