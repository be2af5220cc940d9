package utils

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy     *bluemonday.Policy
	strictPolicyOnce sync.Once
)

// maxSanitizeRounds bounds how many layers of entity escaping are peeled.
const maxSanitizeRounds = 4

// SanitizeText strips all HTML from user-provided free text and trims the
// surrounding whitespace. Entities are decoded so the stored value reads as
// typed, and the decoded text is sanitized again until it is stable, so
// escaped markup never comes back as live tags. Input that keeps unfolding
// past maxSanitizeRounds is returned in its escaped form.
func SanitizeText(s string) string {
	strictPolicyOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})

	current := s
	for range maxSanitizeRounds {
		escaped := strictPolicy.Sanitize(current)
		decoded := html.UnescapeString(escaped)
		if decoded == current {
			return strings.TrimSpace(decoded)
		}
		current = decoded
	}

	return strings.TrimSpace(strictPolicy.Sanitize(current))
}

// SanitizeTextPtr applies SanitizeText to a non-nil pointer value.
func SanitizeTextPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := SanitizeText(*s)
	return &v
}
