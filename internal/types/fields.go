package types

import (
	"bytes"
	"encoding/json"
	"strings"
)

// SetItemField returns a copy of item with the JSON-named field set to value.
// String values aimed at non-string fields are coerced: JSON literals first ("true", "4"),
// then a comma-separated list for string slices ("Go, SQL").
func SetItemField(item SectionItem, field string, value any) (SectionItem, error) {
	if item == nil {
		return nil, &FieldError{Field: field, Message: "nil item"}
	}
	if field == "id" {
		return nil, &FieldError{Field: field, Message: "id is immutable"}
	}

	raw, err := json.Marshal(item)
	if err != nil {
		return nil, &FieldError{Field: field, Message: "failed to encode item", Cause: err}
	}
	fields := map[string]any{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, &FieldError{Field: field, Message: "failed to decode item", Cause: err}
	}

	fields[field] = value
	out, err := decodeItemFields(item.SectionType(), fields)
	if err == nil {
		return out, nil
	}

	if s, isString := value.(string); isString {
		fields[field] = coerceString(s)
		if out, retryErr := decodeItemFields(item.SectionType(), fields); retryErr == nil {
			return out, nil
		}
	}
	return nil, &FieldError{Field: field, Message: "cannot assign value", Cause: err}
}

func decodeItemFields(t SectionType, fields map[string]any) (SectionItem, error) {
	data, err := json.Marshal(fields)
	if err != nil {
		return nil, err
	}
	item, ok := NewItemFor(t)
	if !ok {
		return nil, &SectionTypeError{Type: string(t)}
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(item); err != nil {
		return nil, err
	}
	return item, nil
}

func coerceString(s string) any {
	var literal any
	if err := json.Unmarshal([]byte(s), &literal); err == nil {
		return literal
	}
	parts := []string{}
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}
