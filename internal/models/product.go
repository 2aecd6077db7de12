package models

// Product is a static catalog entry. The catalog is hardcoded and immutable
// at runtime; products are never persisted.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Variant     string   `json:"variant"`
	Color       string   `json:"color"`
	Features    []string `json:"features"`
	Description string   `json:"description"`
}
