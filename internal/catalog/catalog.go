// Package catalog holds the static, ordered registry of visual templates.
package catalog

import "github.com/jonathan/resume-builder/internal/types"

// Template ids
const (
	Modern       = "modern"
	Professional = "professional"
	Creative     = "creative"
	Minimal      = "minimal"
)

var templates = []types.Template{
	{
		ID:          Modern,
		Name:        "Modern",
		Thumbnail:   "https://images.pexels.com/photos/7125420/pexels-photo-7125420.jpeg?auto=compress&cs=tinysrgb&w=100&h=150&dpr=1",
		Description: "Clean and minimal design with a focus on readability and modern aesthetics.",
	},
	{
		ID:          Professional,
		Name:        "Professional",
		Thumbnail:   "https://images.pexels.com/photos/7125589/pexels-photo-7125589.jpeg?auto=compress&cs=tinysrgb&w=100&h=150&dpr=1",
		Description: "Traditional layout with a professional appearance suitable for corporate roles.",
	},
	{
		ID:          Creative,
		Name:        "Creative",
		Thumbnail:   "https://images.pexels.com/photos/7125556/pexels-photo-7125556.jpeg?auto=compress&cs=tinysrgb&w=100&h=150&dpr=1",
		Description: "Bold design with creative elements for roles in design, marketing, or arts.",
	},
	{
		ID:          Minimal,
		Name:        "Minimal",
		Thumbnail:   "https://images.pexels.com/photos/7125596/pexels-photo-7125596.jpeg?auto=compress&cs=tinysrgb&w=100&h=150&dpr=1",
		Description: "Ultra-minimalist design focused on content with subtle styling.",
	},
}

// List returns the templates in catalog order. The slice is a copy.
func List() []types.Template {
	return append([]types.Template(nil), templates...)
}

// Find looks up a template by id
func Find(id string) (types.Template, bool) {
	for _, t := range templates {
		if t.ID == id {
			return t, true
		}
	}
	return types.Template{}, false
}

// Default returns the first catalog entry
func Default() types.Template {
	return templates[0]
}
