// Package types provides type definitions for the resume document model used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "slices"

// PersonalInfoID is the fixed id of the single PersonalInfo record in every document.
// It doubles as the generation target that selects the summary field.
const PersonalInfoID = "personal-info"

// Resume is the document root: exactly one PersonalInfo and an ordered list of sections
type Resume struct {
	PersonalInfo PersonalInfo `json:"personalInfo"`
	Sections     []Section    `json:"sections"`
}

// PersonalInfo holds the contact header and the summary paragraph
type PersonalInfo struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	Title     string `json:"title"`
	Summary   string `json:"summary"`
	Links     []Link `json:"links"`
}

// Link is a free-form labelled URL attached to PersonalInfo
type Link struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Section is a titled group of items that all share the variant selected by Type
type Section struct {
	ID    string        `json:"id"`
	Type  SectionType   `json:"type"`
	Title string        `json:"title"`
	Items []SectionItem `json:"items"`
}

// FindSection returns the index of the section with the given id, or -1
func (r *Resume) FindSection(id string) int {
	for i := range r.Sections {
		if r.Sections[i].ID == id {
			return i
		}
	}
	return -1
}

// FindItem returns the index of the item with the given id, or -1
func (s *Section) FindItem(id string) int {
	for i, item := range s.Items {
		if item.ItemID() == id {
			return i
		}
	}
	return -1
}

// HasID reports whether any link, section or item in the document uses id
func (r Resume) HasID(id string) bool {
	if id == r.PersonalInfo.ID {
		return true
	}
	for _, l := range r.PersonalInfo.Links {
		if l.ID == id {
			return true
		}
	}
	for _, s := range r.Sections {
		if s.ID == id || s.FindItem(id) >= 0 {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the document. Items are cloned through their variant.
func (r Resume) Clone() Resume {
	out := Resume{PersonalInfo: r.PersonalInfo.Clone()}
	if r.Sections != nil {
		out.Sections = make([]Section, len(r.Sections))
		for i, s := range r.Sections {
			out.Sections[i] = s.Clone()
		}
	}
	return out
}

// Clone returns a deep copy of the personal info, including its links
func (p PersonalInfo) Clone() PersonalInfo {
	p.Links = slices.Clone(p.Links)
	return p
}

// Clone returns a deep copy of the section
func (s Section) Clone() Section {
	if s.Items != nil {
		items := make([]SectionItem, len(s.Items))
		for i, item := range s.Items {
			items[i] = CloneItem(item)
		}
		s.Items = items
	}
	return s
}

// FullName joins first and last name with a single space, omitting empty parts
func (p PersonalInfo) FullName() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	default:
		return p.FirstName + " " + p.LastName
	}
}
