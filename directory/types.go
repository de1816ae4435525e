package directory

import "github.com/google/uuid"

// Author is a display record for a post author. Posts reference authors by
// slug only; resolving the slug to this record is the UI layer's concern.
type Author struct {
	ID     uuid.UUID `json:"id"`
	Slug   string    `json:"slug"`
	Name   string    `json:"name"`
	Bio    string    `json:"bio,omitempty"`
	Avatar string    `json:"avatar,omitempty"`
	Role   string    `json:"role,omitempty"`
}

// Category is a display record for a post category.
type Category struct {
	ID          uuid.UUID `json:"id"`
	Slug        string    `json:"slug"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Color       string    `json:"color,omitempty"`
}

type authorEntry struct {
	Name   string `json:"name"`
	Bio    string `json:"bio"`
	Avatar string `json:"avatar"`
	Role   string `json:"role"`
}

type categoryEntry struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
}
