package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type sectionWire struct {
	ID    string            `json:"id"`
	Type  SectionType       `json:"type"`
	Title string            `json:"title"`
	Items []json.RawMessage `json:"items"`
}

// MarshalJSON encodes the section, refusing items whose variant does not match Type
func (s Section) MarshalJSON() ([]byte, error) {
	for _, item := range s.Items {
		if err := CheckItem(s, item); err != nil {
			return nil, err
		}
	}
	return json.Marshal(struct {
		ID    string        `json:"id"`
		Type  SectionType   `json:"type"`
		Title string        `json:"title"`
		Items []SectionItem `json:"items"`
	}{s.ID, s.Type, s.Title, s.Items})
}

// UnmarshalJSON decodes the section, selecting the item variant from the type field
func (s *Section) UnmarshalJSON(data []byte) error {
	var wire sectionWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	if !wire.Type.Valid() {
		return &SectionTypeError{SectionID: wire.ID, Type: string(wire.Type)}
	}

	var items []SectionItem
	if wire.Items != nil {
		items = make([]SectionItem, 0, len(wire.Items))
		for i, raw := range wire.Items {
			item, _ := NewItemFor(wire.Type)
			if err := json.Unmarshal(raw, item); err != nil {
				return fmt.Errorf("section %s item %d: %w", wire.ID, i, err)
			}
			items = append(items, item)
		}
	}

	*s = Section{ID: wire.ID, Type: wire.Type, Title: wire.Title, Items: items}
	return nil
}

// CheckItem reports an *ItemTypeError when item does not belong in section s
func CheckItem(s Section, item SectionItem) error {
	if item == nil {
		return &ItemTypeError{SectionID: s.ID, SectionType: s.Type}
	}
	if item.SectionType() != s.Type {
		return &ItemTypeError{
			SectionID:   s.ID,
			SectionType: s.Type,
			ItemID:      item.ItemID(),
			ItemType:    item.SectionType(),
		}
	}
	return nil
}

// DecodeItems strictly decodes raw items as variant t. Fields the variant does not have
// are rejected, so an item shaped for another section type fails instead of decoding blank.
func DecodeItems(t SectionType, raw []json.RawMessage) ([]SectionItem, error) {
	if !t.Valid() {
		return nil, &SectionTypeError{Type: string(t)}
	}
	items := make([]SectionItem, 0, len(raw))
	for i, r := range raw {
		item, _ := NewItemFor(t)
		dec := json.NewDecoder(bytes.NewReader(r))
		dec.DisallowUnknownFields()
		if err := dec.Decode(item); err != nil {
			return nil, &FieldError{Field: fmt.Sprintf("items.%d", i), Message: "does not match section type " + string(t), Cause: err}
		}
		items = append(items, item)
	}
	return items, nil
}
