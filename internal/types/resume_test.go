package types

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResume() Resume {
	return Resume{
		PersonalInfo: PersonalInfo{
			ID:        PersonalInfoID,
			FirstName: "Ada",
			LastName:  "Lovelace",
			Email:     "ada@example.com",
			Phone:     "+44 20 0000 0000",
			Location:  "London",
			Title:     "Analyst",
			Summary:   "Wrote the first published algorithm.",
			Links: []Link{
				{ID: "link-1", Label: "Site", URL: "https://www.example.com"},
			},
		},
		Sections: []Section{
			{ID: "experience-1", Type: SectionExperience, Title: "Work", Items: []SectionItem{
				&ExperienceItem{ID: "exp-1", Position: "Analyst", Company: "Babbage & Co", StartDate: "1842-01", Current: true, EndDate: "1843-01", Description: "Notes"},
			}},
			{ID: "education-1", Type: SectionEducation, Title: "Education", Items: []SectionItem{
				&EducationItem{ID: "edu-1", Degree: "Mathematics", School: "Home", StartDate: "1830", EndDate: "1835"},
			}},
			{ID: "skills-1", Type: SectionSkills, Title: "Skills", Items: []SectionItem{
				&SkillItem{ID: "skill-1", Name: "Mathematics", Level: 5},
				&SkillItem{ID: "skill-2", Name: "Poetry"},
			}},
			{ID: "projects-1", Type: SectionProjects, Title: "Projects", Items: []SectionItem{
				&ProjectItem{ID: "proj-1", Name: "Note G", Description: "Bernoulli numbers", Link: "https://example.com/g", Technologies: []string{"Analytical Engine"}},
				&ProjectItem{ID: "proj-2", Name: "Untitled", Technologies: []string{}},
			}},
			{ID: "custom-1", Type: SectionCustom, Title: "Other", Items: []SectionItem{
				&CustomItem{ID: "custom-1a", Title: "Languages", Content: "English, French"},
				&CustomItem{ID: "custom-1b", Content: "No title"},
			}},
			{ID: "skills-2", Type: SectionSkills, Title: "Empty", Items: nil},
		},
	}
}

func TestResume_RoundTrip(t *testing.T) {
	for name, r := range map[string]Resume{
		"sample":  sampleResume(),
		"default": DefaultResume(),
	} {
		t.Run(name, func(t *testing.T) {
			data, err := json.Marshal(r)
			require.NoError(t, err)

			var decoded Resume
			require.NoError(t, json.Unmarshal(data, &decoded))

			if diff := cmp.Diff(r, decoded); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResume_JSONFieldNames(t *testing.T) {
	data, err := json.Marshal(sampleResume())
	require.NoError(t, err)
	s := string(data)

	assert.Contains(t, s, `"personalInfo":{"id":"personal-info","firstName":"Ada","lastName":"Lovelace"`)
	assert.Contains(t, s, `"startDate":"1842-01"`)
	assert.Contains(t, s, `"current":true`)
	assert.Contains(t, s, `{"id":"skill-2","name":"Poetry"}`)
	assert.Contains(t, s, `{"id":"custom-1b","content":"No title"}`)
	assert.NotContains(t, s, `"type":"personalInfo"`)
}

func TestSection_UnmarshalSelectsVariantFromType(t *testing.T) {
	raw := `{"id":"s","type":"projects","title":"P","items":[{"id":"p1","name":"X","description":"","technologies":["Go"]}]}`

	var s Section
	require.NoError(t, json.Unmarshal([]byte(raw), &s))
	require.Len(t, s.Items, 1)

	p, ok := s.Items[0].(*ProjectItem)
	require.True(t, ok, "item should decode as ProjectItem")
	assert.Equal(t, []string{"Go"}, p.Technologies)
}

func TestSection_UnmarshalUnknownType(t *testing.T) {
	var s Section
	err := json.Unmarshal([]byte(`{"id":"s","type":"hobbies","title":"H","items":[]}`), &s)
	require.Error(t, err)

	var typeErr *SectionTypeError
	assert.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "hobbies", typeErr.Type)
}

func TestSection_MarshalRejectsMismatchedItem(t *testing.T) {
	s := Section{ID: "skills-1", Type: SectionSkills, Items: []SectionItem{&ExperienceItem{ID: "exp-1"}}}

	_, err := json.Marshal(s)
	require.Error(t, err)

	var itemErr *ItemTypeError
	require.ErrorAs(t, err, &itemErr)
	assert.Equal(t, SectionExperience, itemErr.ItemType)
}

func TestResume_CloneIsIndependent(t *testing.T) {
	r := sampleResume()
	c := r.Clone()

	c.PersonalInfo.Links[0].Label = "changed"
	c.Sections[0].Items[0].(*ExperienceItem).Company = "changed"
	c.Sections[3].Items[0].(*ProjectItem).Technologies[0] = "changed"

	assert.Equal(t, "Site", r.PersonalInfo.Links[0].Label)
	assert.Equal(t, "Babbage & Co", r.Sections[0].Items[0].(*ExperienceItem).Company)
	assert.Equal(t, "Analytical Engine", r.Sections[3].Items[0].(*ProjectItem).Technologies[0])
}

func TestClone_KeepsEmptySlices(t *testing.T) {
	r := Resume{
		PersonalInfo: PersonalInfo{ID: PersonalInfoID, Links: []Link{}},
		Sections: []Section{{
			ID:    "p",
			Type:  SectionProjects,
			Items: []SectionItem{&ProjectItem{ID: "a", Technologies: []string{}}},
		}},
	}

	c := r.Clone()
	assert.NotNil(t, c.PersonalInfo.Links)
	assert.NotNil(t, c.Sections[0].Items[0].(*ProjectItem).Technologies)

	data, err := json.Marshal(c)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"links":[]`)
	assert.Contains(t, string(data), `"technologies":[]`)
	assert.NotContains(t, string(data), "null")

	assert.Nil(t, PersonalInfo{}.Clone().Links, "nil stays nil")
}

func TestDefaultResume(t *testing.T) {
	r := DefaultResume()

	assert.Equal(t, PersonalInfoID, r.PersonalInfo.ID)
	require.Len(t, r.Sections, 3)
	assert.Equal(t, []SectionType{SectionExperience, SectionEducation, SectionSkills},
		[]SectionType{r.Sections[0].Type, r.Sections[1].Type, r.Sections[2].Type})
	assert.Len(t, r.Sections[0].Items, 1)
	assert.Len(t, r.Sections[1].Items, 1)
	assert.Empty(t, r.Sections[2].Items)
}

func TestNewItem_BlankShapes(t *testing.T) {
	exp, ok := NewItem(SectionExperience, "e").(*ExperienceItem)
	require.True(t, ok)
	assert.Equal(t, ExperienceItem{ID: "e"}, *exp)

	skill, ok := NewItem(SectionSkills, "s").(*SkillItem)
	require.True(t, ok)
	assert.Equal(t, 3, skill.Level)

	proj, ok := NewItem(SectionProjects, "p").(*ProjectItem)
	require.True(t, ok)
	assert.NotNil(t, proj.Technologies)

	_, ok = NewItem(SectionType("unknown"), "c").(*CustomItem)
	assert.True(t, ok)
}

func TestParseSectionType(t *testing.T) {
	st, ok := ParseSectionType(" Skills ")
	assert.True(t, ok)
	assert.Equal(t, SectionSkills, st)

	_, ok = ParseSectionType("awards")
	assert.False(t, ok)
}

func TestFullName(t *testing.T) {
	assert.Equal(t, "Ada Lovelace", PersonalInfo{FirstName: "Ada", LastName: "Lovelace"}.FullName())
	assert.Equal(t, "Ada", PersonalInfo{FirstName: "Ada"}.FullName())
	assert.Equal(t, "Lovelace", PersonalInfo{LastName: "Lovelace"}.FullName())
	assert.Equal(t, "", PersonalInfo{}.FullName())
}

func TestDecodeItems(t *testing.T) {
	raw := []json.RawMessage{
		json.RawMessage(`{"id":"skill-1","name":"Go","level":4}`),
		json.RawMessage(`{"id":"skill-2","name":"SQL"}`),
	}
	items, err := DecodeItems(SectionSkills, raw)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Go", items[0].(*SkillItem).Name)
	assert.Equal(t, "skill-2", items[1].ItemID())

	empty, err := DecodeItems(SectionCustom, nil)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestDecodeItems_RejectsForeignShape(t *testing.T) {
	_, err := DecodeItems(SectionExperience, []json.RawMessage{json.RawMessage(`{"id":"x","name":"Go","level":3}`)})
	require.Error(t, err)

	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "items.0", fieldErr.Field)

	_, err = DecodeItems(SectionType("hobbies"), nil)
	var typeErr *SectionTypeError
	assert.ErrorAs(t, err, &typeErr)
}
