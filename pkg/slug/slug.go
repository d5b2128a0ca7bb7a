// Package slug derives URL-friendly identifiers from product names.
package slug

import (
	"regexp"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Make lowercases name, replaces every non-alphanumeric run with a single
// hyphen, and trims hyphens from both ends.
//
//	Make("Modern Lounge Chair") == "modern-lounge-chair"
func Make(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = nonAlnum.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
