// Package editor builds replacement item and link lists for the document store's
// partial updates. Every function returns a fresh list and leaves its input untouched.
package editor

import (
	"github.com/jonathan/resume-builder/internal/types"
)

// AddItem returns the section's items with a blank item of the section's variant appended
func AddItem(section types.Section, id string) []types.SectionItem {
	items := cloneItems(section.Items)
	return append(items, types.NewItem(section.Type, id))
}

// UpdateItem returns the section's items with one field of the matching item replaced.
// An unknown itemID returns an unchanged copy and a nil error.
func UpdateItem(section types.Section, itemID, field string, value any) ([]types.SectionItem, error) {
	items := cloneItems(section.Items)
	idx := section.FindItem(itemID)
	if idx < 0 {
		return items, nil
	}

	updated, err := types.SetItemField(items[idx], field, value)
	if err != nil {
		return nil, err
	}
	items[idx] = updated
	return items, nil
}

// RemoveItem returns the section's items without the matching item, preserving order
func RemoveItem(section types.Section, itemID string) []types.SectionItem {
	items := make([]types.SectionItem, 0, len(section.Items))
	for _, item := range section.Items {
		if item.ItemID() != itemID {
			items = append(items, types.CloneItem(item))
		}
	}
	return items
}

func cloneItems(items []types.SectionItem) []types.SectionItem {
	out := make([]types.SectionItem, len(items), len(items)+1)
	for i, item := range items {
		out[i] = types.CloneItem(item)
	}
	return out
}
