package models

import (
	"encoding/json"
	"fmt"
)

// MaxFacultyDocuments caps the number of documents a faculty record may carry.
const MaxFacultyDocuments = 10

// Document is one title/url pair in a faculty member's document list.
type Document struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Documents is the serialized document list stored in a single column.
type Documents []Document

// ParseDocuments parses the JSON-encoded document list, rejecting malformed
// input rather than letting a decode error surface downstream. An empty
// string parses to an empty list.
func ParseDocuments(raw string) (Documents, error) {
	if raw == "" {
		return Documents{}, nil
	}
	var docs Documents
	if err := json.Unmarshal([]byte(raw), &docs); err != nil {
		return nil, fmt.Errorf("malformed document list: %w", err)
	}
	return docs, nil
}

// Encode returns the JSON encoding stored in the database column.
func (d Documents) Encode() (string, error) {
	if d == nil {
		d = Documents{}
	}
	b, err := json.Marshal(d)
	if err != nil {
		return "", fmt.Errorf("failed to encode document list: %w", err)
	}
	return string(b), nil
}

// Faculty represents a faculty member profile managed by the back office.
type Faculty struct {
	ID            int64     `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	Qualification string    `json:"qualification" db:"qualification"`
	Designation   string    `json:"designation" db:"designation"`
	PhotoURL      string    `json:"photo_url,omitempty" db:"photo_url"`
	Documents     Documents `json:"documents" db:"documents"`
	MonthlySalary float64   `json:"monthly_salary" db:"monthly_salary"`
	YearlyLeave   int       `json:"yearly_leave" db:"yearly_leave"`
	IsVisible     bool      `json:"is_visible" db:"is_visible"`
	Audit
}
