package validation

import (
	"regexp"
	"strings"
)

// Field length limits carried over from the editor screens. Lengths are
// checked at submit time, not masked on input.
const (
	MaxNotificationMessageLength = 180
	MaxGalleryNameLength         = 100
	MaxBannerNameLength          = 100
	MaxLinkNameLength            = 180
	MaxLinkURLLength             = 180
	MaxFacultyNameLength         = 100
)

// Validation rule patterns
var (
	// URLPattern requires an explicit http(s) scheme and a non-whitespace body.
	URLPattern = `^https?://\S+$`

	// LooseURLPattern accepts a protocol-optional domain, IP, or path, the
	// relaxed form used for link targets.
	LooseURLPattern = `^(https?://)?(([\w-]+\.)+[\w-]{2,}|(\d{1,3}\.){3}\d{1,3})(:\d+)?(/\S*)?$`
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	URL      *regexp.Regexp
	LooseURL *regexp.Regexp
}{
	URL:      regexp.MustCompile(URLPattern),
	LooseURL: regexp.MustCompile(LooseURLPattern),
}

// IsValidURL checks a URL against the strict http(s) pattern.
func IsValidURL(value string) bool {
	return CompiledPatterns.URL.MatchString(value)
}

// IsValidLooseURL checks a URL against the relaxed protocol-optional pattern.
func IsValidLooseURL(value string) bool {
	return CompiledPatterns.LooseURL.MatchString(value)
}

// WithinLength reports whether the trimmed value is non-empty and does not
// exceed max characters.
func WithinLength(value string, max int) bool {
	v := strings.TrimSpace(value)
	return v != "" && len(v) <= max
}
