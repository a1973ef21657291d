package profile

import "strings"

// FuzzyMatch reports whether a and b contain one another, ignoring case.
// Empty strings never match.
func FuzzyMatch(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// MatchAttributes returns the profile attributes (in profile order) that
// fuzzy-match at least one of targets. Each profile attribute appears once.
func MatchAttributes(targets, profileAttrs []string) []string {
	var matched []string
	for _, p := range profileAttrs {
		for _, t := range targets {
			if FuzzyMatch(t, p) {
				matched = append(matched, p)
				break
			}
		}
	}
	return matched
}
