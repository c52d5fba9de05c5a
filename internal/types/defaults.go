package types

// DefaultResume returns the seeded starting document: blank personal info, an experience
// and an education section each holding one blank item, and an empty skills section.
func DefaultResume() Resume {
	return Resume{
		PersonalInfo: PersonalInfo{
			ID:    PersonalInfoID,
			Links: []Link{},
		},
		Sections: []Section{
			{
				ID:    "experience-1",
				Type:  SectionExperience,
				Title: DefaultSectionTitle(SectionExperience),
				Items: []SectionItem{&ExperienceItem{ID: "exp-item-1"}},
			},
			{
				ID:    "education-1",
				Type:  SectionEducation,
				Title: DefaultSectionTitle(SectionEducation),
				Items: []SectionItem{&EducationItem{ID: "edu-item-1"}},
			},
			{
				ID:    "skills-1",
				Type:  SectionSkills,
				Title: DefaultSectionTitle(SectionSkills),
				Items: []SectionItem{},
			},
		},
	}
}

// DefaultSectionTitle is the title given to a newly added section of type t
func DefaultSectionTitle(t SectionType) string {
	switch t {
	case SectionExperience:
		return "Work Experience"
	case SectionEducation:
		return "Education"
	case SectionSkills:
		return "Skills"
	case SectionProjects:
		return "Projects"
	default:
		return "Custom Section"
	}
}

// SeedsItem reports whether a new section of type t starts with one blank item
func SeedsItem(t SectionType) bool {
	switch t {
	case SectionExperience, SectionEducation, SectionProjects:
		return true
	}
	return false
}
