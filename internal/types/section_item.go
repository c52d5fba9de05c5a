package types

import (
	"slices"
	"strings"
)

// SectionType selects which item variant a section holds. It is fixed at creation.
type SectionType string

// Section types in canonical presentation order
const (
	SectionExperience SectionType = "experience"
	SectionEducation  SectionType = "education"
	SectionSkills     SectionType = "skills"
	SectionProjects   SectionType = "projects"
	SectionCustom     SectionType = "custom"
)

// SectionTypes lists every section type in canonical presentation order
var SectionTypes = []SectionType{
	SectionExperience,
	SectionEducation,
	SectionSkills,
	SectionProjects,
	SectionCustom,
}

// Valid reports whether t is one of the known section types
func (t SectionType) Valid() bool {
	for _, known := range SectionTypes {
		if t == known {
			return true
		}
	}
	return false
}

// ParseSectionType normalizes s and reports whether it names a known section type
func ParseSectionType(s string) (SectionType, bool) {
	t := SectionType(strings.ToLower(strings.TrimSpace(s)))
	return t, t.Valid()
}

// SectionItem is the closed union of item variants. The owning section's Type selects
// the variant; items carry no tag of their own on the wire.
type SectionItem interface {
	ItemID() string
	SectionType() SectionType
	sectionItem()
}

// ExperienceItem is a position held. When Current is set the end date is shown as "Present".
type ExperienceItem struct {
	ID          string `json:"id"`
	Position    string `json:"position"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

// EducationItem is a degree or course of study
type EducationItem struct {
	ID          string `json:"id"`
	Degree      string `json:"degree"`
	School      string `json:"school"`
	Location    string `json:"location"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

// SkillItem is a named skill with an optional 1..5 proficiency level (0 means unset)
type SkillItem struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Level int    `json:"level,omitempty"`
}

// ProjectItem is a project with an optional link and an ordered technology list
type ProjectItem struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Link         string   `json:"link,omitempty"`
	Technologies []string `json:"technologies"`
}

// CustomItem is free-form content with an optional title
type CustomItem struct {
	ID      string `json:"id"`
	Title   string `json:"title,omitempty"`
	Content string `json:"content"`
}

func (i *ExperienceItem) ItemID() string { return i.ID }
func (i *EducationItem) ItemID() string  { return i.ID }
func (i *SkillItem) ItemID() string      { return i.ID }
func (i *ProjectItem) ItemID() string    { return i.ID }
func (i *CustomItem) ItemID() string     { return i.ID }

func (*ExperienceItem) SectionType() SectionType { return SectionExperience }
func (*EducationItem) SectionType() SectionType  { return SectionEducation }
func (*SkillItem) SectionType() SectionType      { return SectionSkills }
func (*ProjectItem) SectionType() SectionType    { return SectionProjects }
func (*CustomItem) SectionType() SectionType     { return SectionCustom }

func (*ExperienceItem) sectionItem() {}
func (*EducationItem) sectionItem()  {}
func (*SkillItem) sectionItem()      {}
func (*ProjectItem) sectionItem()    {}
func (*CustomItem) sectionItem()     {}

// NewItem returns a blank item of the variant selected by t. Unknown types produce a CustomItem.
// New skill items start at level 3, matching the editor's default slider position.
func NewItem(t SectionType, id string) SectionItem {
	switch t {
	case SectionExperience:
		return &ExperienceItem{ID: id}
	case SectionEducation:
		return &EducationItem{ID: id}
	case SectionSkills:
		return &SkillItem{ID: id, Level: 3}
	case SectionProjects:
		return &ProjectItem{ID: id, Technologies: []string{}}
	default:
		return &CustomItem{ID: id}
	}
}

// NewItemFor allocates an empty value of the variant for t, used as a decode target
func NewItemFor(t SectionType) (SectionItem, bool) {
	switch t {
	case SectionExperience:
		return &ExperienceItem{}, true
	case SectionEducation:
		return &EducationItem{}, true
	case SectionSkills:
		return &SkillItem{}, true
	case SectionProjects:
		return &ProjectItem{}, true
	case SectionCustom:
		return &CustomItem{}, true
	}
	return nil, false
}

// ItemIDPrefix is the id prefix used for new items of each section type
func ItemIDPrefix(t SectionType) string {
	switch t {
	case SectionExperience:
		return "exp-item"
	case SectionEducation:
		return "edu-item"
	case SectionSkills:
		return "skill-item"
	case SectionProjects:
		return "proj-item"
	default:
		return "custom-item"
	}
}

// CloneItem deep copies an item
func CloneItem(item SectionItem) SectionItem {
	switch it := item.(type) {
	case *ExperienceItem:
		c := *it
		return &c
	case *EducationItem:
		c := *it
		return &c
	case *SkillItem:
		c := *it
		return &c
	case *ProjectItem:
		c := *it
		c.Technologies = slices.Clone(it.Technologies)
		return &c
	case *CustomItem:
		c := *it
		return &c
	}
	return item
}

// WithDescription returns a copy of item with its description-equivalent field set to text.
// Skill items have no such field; ok is false and the item is returned unchanged.
func WithDescription(item SectionItem, text string) (out SectionItem, ok bool) {
	switch it := CloneItem(item).(type) {
	case *ExperienceItem:
		it.Description = text
		return it, true
	case *EducationItem:
		it.Description = text
		return it, true
	case *ProjectItem:
		it.Description = text
		return it, true
	case *CustomItem:
		it.Content = text
		return it, true
	}
	return item, false
}
