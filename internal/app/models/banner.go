package models

// Banner represents a banner image displayed on the public site.
type Banner struct {
	ID        int64  `json:"id" db:"id"`
	Name      string `json:"name" db:"name"`
	Position  int    `json:"position" db:"position"`
	ImageURL  string `json:"image_url" db:"image_url"`
	IsVisible bool   `json:"is_visible" db:"is_visible"`
	Audit
}
