// Package location: match_utils contains pure text containment helpers.
package location

import "strings"

func normalizeLocation(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// containsEither reports whether either normalized string contains the other.
func containsEither(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}
