package models

// Notification represents a notice shown to site visitors. A notification
// carries either a target URL or an uploaded file reachable by URL; when
// both are submitted the uploaded file wins.
type Notification struct {
	ID      int64  `json:"id" db:"id"`
	Message string `json:"message" db:"message"`
	URL     string `json:"url,omitempty" db:"url"`
	FileURL string `json:"file_url,omitempty" db:"file_url"`
	Audit
}
