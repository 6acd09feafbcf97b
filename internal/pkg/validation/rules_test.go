package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidURL(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"https", "https://example.edu/page", true},
		{"http", "http://example.edu", true},
		{"no scheme", "example.edu", false},
		{"ftp scheme", "ftp://example.edu", false},
		{"whitespace in body", "https://example.edu/a b", false},
		{"empty", "", false},
		{"scheme only", "https://", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidURL(tt.value))
		})
	}
}

func TestIsValidLooseURL(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"bare domain", "example.edu", true},
		{"subdomain path", "library.example.edu/catalog", true},
		{"with scheme", "https://example.edu", true},
		{"ip with port", "192.168.1.10:8080", true},
		{"ip with path", "10.0.0.1/status", true},
		{"plain word", "localhost", false},
		{"spaces", "not a url", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidLooseURL(tt.value))
		})
	}
}

func TestWithinLength(t *testing.T) {
	assert.True(t, WithinLength("hello", 5))
	assert.False(t, WithinLength(strings.Repeat("a", 6), 5))
	assert.False(t, WithinLength("", 5))
	assert.False(t, WithinLength("   ", 5), "whitespace-only counts as empty")
	assert.True(t, WithinLength("  ok  ", 2), "surrounding whitespace is trimmed before measuring")
}
