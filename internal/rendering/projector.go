package rendering

import (
	"github.com/jonathan/resume-builder/internal/catalog"
	"github.com/jonathan/resume-builder/internal/types"
	"golang.org/x/net/html"
)

// Projector maps a resume to a visual tree for one template.
// Render is pure: it reads only its argument and never fails.
type Projector interface {
	TemplateID() string
	Render(r types.Resume) *html.Node
}

var projectors = map[string]Projector{
	catalog.Modern:       modern{},
	catalog.Professional: professional{},
	catalog.Creative:     creative{},
	catalog.Minimal:      minimal{},
}

// Lookup returns the projector for a template id
func Lookup(id string) (Projector, bool) {
	p, ok := projectors[id]
	return p, ok
}

// For returns the projector for a template id, falling back to the default template's projector
func For(id string) Projector {
	if p, ok := projectors[id]; ok {
		return p
	}
	return projectors[catalog.Default().ID]
}

// All returns one projector per catalog template, in catalog order
func All() []Projector {
	templates := catalog.List()
	out := make([]Projector, 0, len(templates))
	for _, t := range templates {
		out = append(out, For(t.ID))
	}
	return out
}
