package models

// GalleryItem represents a photo in the public gallery. Position drives
// display ordering; uniqueness of positions is not enforced.
type GalleryItem struct {
	ID        int64  `json:"id" db:"id"`
	Name      string `json:"name" db:"name"`
	Position  int    `json:"position" db:"position"`
	ImageURL  string `json:"image_url" db:"image_url"`
	IsVisible bool   `json:"is_visible" db:"is_visible"`
	Audit
}
