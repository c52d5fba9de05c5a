package editor

import (
	"github.com/jonathan/resume-builder/internal/types"
)

// LinkField names an editable Link field
type LinkField string

// Editable link fields
const (
	LinkLabel LinkField = "label"
	LinkURL   LinkField = "url"
)

// AddLink returns links with a blank link appended
func AddLink(links []types.Link, id string) []types.Link {
	out := make([]types.Link, len(links), len(links)+1)
	copy(out, links)
	return append(out, types.Link{ID: id})
}

// UpdateLink returns links with one field of the matching link replaced.
// Unknown ids and fields return an unchanged copy.
func UpdateLink(links []types.Link, id string, field LinkField, value string) []types.Link {
	out := make([]types.Link, len(links))
	copy(out, links)
	for i := range out {
		if out[i].ID != id {
			continue
		}
		switch field {
		case LinkLabel:
			out[i].Label = value
		case LinkURL:
			out[i].URL = value
		}
	}
	return out
}

// RemoveLink returns links without the matching link
func RemoveLink(links []types.Link, id string) []types.Link {
	out := make([]types.Link, 0, len(links))
	for _, l := range links {
		if l.ID != id {
			out = append(out, l)
		}
	}
	return out
}
