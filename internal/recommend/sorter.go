package recommend

import "sort"

// CanonicalSort orders scored activities deterministically:
// 1. Score: higher first
// 2. Catalog insertion order: earlier first
func CanonicalSort(scored []ScoredActivity) {
	sort.SliceStable(scored, func(i, j int) bool {
		a, b := scored[i], scored[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		return a.Index < b.Index
	})
}

// sortByFeasibility orders by overall feasibility, then catalog order.
func sortByFeasibility(scored []ScoredActivity) {
	sort.SliceStable(scored, func(i, j int) bool {
		a, b := scored[i], scored[j]
		if a.Feasibility.Overall != b.Feasibility.Overall {
			return a.Feasibility.Overall > b.Feasibility.Overall
		}
		return a.Index < b.Index
	})
}
