package types

import "fmt"

// ItemTypeError indicates an item whose variant does not match its section's type
type ItemTypeError struct {
	SectionID   string
	SectionType SectionType
	ItemID      string
	ItemType    SectionType
}

func (e *ItemTypeError) Error() string {
	if e.ItemType == "" {
		return fmt.Sprintf("section %s (%s): nil item", e.SectionID, e.SectionType)
	}
	return fmt.Sprintf("section %s (%s): item %s is a %s item", e.SectionID, e.SectionType, e.ItemID, e.ItemType)
}

// SectionTypeError indicates a section whose type is not one of the known variants
type SectionTypeError struct {
	SectionID string
	Type      string
}

func (e *SectionTypeError) Error() string {
	return fmt.Sprintf("section %s: unknown type %q", e.SectionID, e.Type)
}

// FieldError indicates a field assignment that the item variant cannot accept
type FieldError struct {
	Field   string
	Message string
	Cause   error
}

func (e *FieldError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("field %s: %s: %v", e.Field, e.Message, e.Cause)
	}
	return fmt.Sprintf("field %s: %s", e.Field, e.Message)
}

func (e *FieldError) Unwrap() error {
	return e.Cause
}
