package profile

import "strings"

// InferAttributes returns the learner attributes an activity exercises,
// judged from its name alone. Every category whose keywords appear in the
// name contributes its attributes; names matching nothing get
// FallbackAttributes.
func InferAttributes(activityName string) []string {
	name := strings.ToLower(activityName)
	var attrs []string
	seen := make(map[string]bool)
	for _, cat := range ActivityCategories {
		if !containsAny(name, cat.Keywords) {
			continue
		}
		for _, a := range cat.Attributes {
			if !seen[a] {
				seen[a] = true
				attrs = append(attrs, a)
			}
		}
	}
	if len(attrs) == 0 {
		return append([]string(nil), FallbackAttributes...)
	}
	return attrs
}

// InferCategories returns the names of the categories whose keywords appear
// in activityName, in table order.
func InferCategories(activityName string) []string {
	name := strings.ToLower(activityName)
	var cats []string
	for _, cat := range ActivityCategories {
		if containsAny(name, cat.Keywords) {
			cats = append(cats, cat.Name)
		}
	}
	return cats
}

// CoveredAttributes unions the inferred attributes of every activity name.
func CoveredAttributes(activityNames []string) map[string]bool {
	covered := make(map[string]bool)
	for _, n := range activityNames {
		for _, a := range InferAttributes(n) {
			covered[a] = true
		}
	}
	return covered
}
