package service

import (
	"regexp"
	"strings"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// CanonicalSlug lowercases and trims a proposed slug. It does not attempt
// to repair disallowed characters; a slug that still fails validation
// after canonicalization is rejected.
func CanonicalSlug(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}

// ValidateSlug checks the shape of a human-readable identifier: lowercase
// alphanumerics and hyphens, at least two characters. True uniqueness is
// enforced by the store and surfaced separately as a duplicate-slug error.
func ValidateSlug(field, slug string) error {
	if len(slug) < 2 {
		return ValidationError{Field: field, Message: "must be at least 2 characters"}
	}
	if !slugPattern.MatchString(slug) {
		return ValidationError{Field: field, Message: "must contain only lowercase letters, digits and hyphens"}
	}
	return nil
}

// SlugFromName derives a slug candidate from a display name: lowercase,
// spaces collapsed to hyphens, everything else outside [a-z0-9-] dropped.
func SlugFromName(name string) string {
	lowered := strings.ToLower(strings.TrimSpace(name))
	var b strings.Builder
	lastHyphen := false
	for _, r := range lowered {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case r == ' ' || r == '-' || r == '_':
			if !lastHyphen && b.Len() > 0 {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
