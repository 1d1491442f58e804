package utils

import (
	"regexp"
	"strings"
)

var (
	slugStripRe  = regexp.MustCompile(`[^\w\s-]`)
	slugSpaceRe  = regexp.MustCompile(`\s+`)
	slugHyphenRe = regexp.MustCompile(`-+`)
)

// Slugify derives a URL-safe identifier from a title: lowercase, strip
// characters outside word/space/hyphen, collapse whitespace runs to a
// single hyphen, collapse repeated hyphens and trim the edges.
// The transform is deterministic and idempotent.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = slugStripRe.ReplaceAllString(s, "")
	s = slugSpaceRe.ReplaceAllString(s, "-")
	s = slugHyphenRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
