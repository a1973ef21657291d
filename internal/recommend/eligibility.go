package recommend

import (
	"github.com/alexanderramin/sprout/internal/catalog"
	"github.com/alexanderramin/sprout/internal/domain"
)

// FilterEligible keeps age-appropriate candidates whose overall feasibility
// reaches opts.MinFeasibility. When fewer than opts.EligibleFloor pass, the
// pool becomes the EligibleFloor most feasible age-appropriate candidates.
// The age predicate is never relaxed. Results carry feasibility but no
// relevance score yet, in catalog order.
func FilterEligible(
	candidates []catalog.ActivityCandidate,
	age int,
	fctx FeasibilityContext,
	opts SelectorOptions,
) []ScoredActivity {
	var ageOK, passing []ScoredActivity
	for i, c := range candidates {
		if !c.AgeAppropriate(age) {
			continue
		}
		sa := ScoredActivity{
			Candidate:   c,
			Index:       i,
			Feasibility: ScoreFeasibility(c, fctx),
		}
		ageOK = append(ageOK, sa)
		if sa.Feasibility.Overall >= opts.MinFeasibility {
			passing = append(passing, sa)
		}
	}

	if len(passing) >= opts.EligibleFloor {
		return passing
	}

	sortByFeasibility(ageOK)
	if len(ageOK) > opts.EligibleFloor {
		ageOK = ageOK[:opts.EligibleFloor]
	}
	return ageOK
}

// ScorePool applies ScoreActivity to every pool entry and sorts canonically.
func ScorePool(pool []ScoredActivity, p domain.LearnerProfile) []ScoredActivity {
	scored := make([]ScoredActivity, len(pool))
	for i, sa := range pool {
		sa.Score, sa.Reasons = ScoreActivity(sa.Candidate, p)
		scored[i] = sa
	}
	CanonicalSort(scored)
	return scored
}
