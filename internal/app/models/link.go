package models

// ImportantLink represents an external link with its logo shown on the
// public site.
type ImportantLink struct {
	ID        int64  `json:"id" db:"id"`
	LogoName  string `json:"logo_name" db:"logo_name"`
	LogoURL   string `json:"logo_url" db:"logo_url"`
	LinkURL   string `json:"link_url" db:"link_url"`
	Position  int    `json:"position" db:"position"`
	IsVisible bool   `json:"is_visible" db:"is_visible"`
	Audit
}
