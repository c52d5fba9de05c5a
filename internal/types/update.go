package types

// PersonalInfoUpdate is a partial PersonalInfo. Nil fields keep their prior value,
// allowing "not provided" to be told apart from "set to empty".
type PersonalInfoUpdate struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Location  *string `json:"location,omitempty"`
	Title     *string `json:"title,omitempty"`
	Summary   *string `json:"summary,omitempty"`
	Links     *[]Link `json:"links,omitempty"`
}

// Apply shallow-merges u into p. The id is never touched.
func (u PersonalInfoUpdate) Apply(p PersonalInfo) PersonalInfo {
	setString(&p.FirstName, u.FirstName)
	setString(&p.LastName, u.LastName)
	setString(&p.Email, u.Email)
	setString(&p.Phone, u.Phone)
	setString(&p.Location, u.Location)
	setString(&p.Title, u.Title)
	setString(&p.Summary, u.Summary)
	if u.Links != nil {
		p.Links = append([]Link(nil), (*u.Links)...)
		if p.Links == nil {
			p.Links = []Link{}
		}
	}
	return p
}

// IsEmpty reports whether the update carries no fields
func (u PersonalInfoUpdate) IsEmpty() bool {
	return u == PersonalInfoUpdate{}
}

// SectionUpdate is a partial Section. There is no Type field: a section's type is immutable.
type SectionUpdate struct {
	Title *string        `json:"title,omitempty"`
	Items *[]SectionItem `json:"-"`
}

// Apply shallow-merges u into s. Item variants are not checked here.
func (u SectionUpdate) Apply(s Section) Section {
	setString(&s.Title, u.Title)
	if u.Items != nil {
		s.Items = append([]SectionItem(nil), (*u.Items)...)
		if s.Items == nil {
			s.Items = []SectionItem{}
		}
	}
	return s
}

// StringPtr returns a pointer to s, for building partial updates
func StringPtr(s string) *string {
	return &s
}

// ItemsPtr returns a pointer to items, for building partial updates
func ItemsPtr(items []SectionItem) *[]SectionItem {
	return &items
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
