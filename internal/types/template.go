package types

// Template is an immutable catalog entry describing one visual layout.
// Documents reference templates by ID only.
type Template struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Thumbnail   string `json:"thumbnail"`
	Description string `json:"description"`
}
