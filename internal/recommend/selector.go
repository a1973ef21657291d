package recommend

import (
	"github.com/alexanderramin/sprout/internal/catalog"
	"github.com/alexanderramin/sprout/internal/domain"
	"github.com/alexanderramin/sprout/internal/profile"
)

// SelectorOptions tunes the diverse selector.
type SelectorOptions struct {
	MinFeasibility   float64
	EligibleFloor    int
	MinSelected      int
	MaxSelected      int
	TopWeak          int
	StrengthSlots    int
	StrengthMinScore float64
}

// DefaultSelectorOptions returns the standard selector tuning.
func DefaultSelectorOptions() SelectorOptions {
	return SelectorOptions{
		MinFeasibility:   30,
		EligibleFloor:    15,
		MinSelected:      3,
		MaxSelected:      5,
		TopWeak:          3,
		StrengthSlots:    2,
		StrengthMinScore: 40,
	}
}

// SelectionRequest bundles everything the selector reads.
type SelectionRequest struct {
	Profile     domain.LearnerProfile
	Age         int
	Feasibility FeasibilityContext
	Candidates  []catalog.ActivityCandidate
	Options     SelectorOptions
}

// Selection is one chosen activity. RecommendationType and
// TargetedAttributes are fixed by the pass that chose it.
type Selection struct {
	Activity           ScoredActivity
	RecommendationType domain.RecommendationType
	TargetedAttributes []string
	Pass               string
}

// Pass is one named step of the selector.
type Pass struct {
	Name string
	Run  func(st *SelectionState)
}

// Passes run in order over a shared SelectionState.
var Passes = []Pass{
	{Name: "physical-guarantee", Run: physicalGuaranteePass},
	{Name: "weakness-coverage", Run: weaknessCoveragePass},
	{Name: "strength-reinforcement", Run: strengthReinforcementPass},
	{Name: "fill-to-minimum", Run: fillToMinimumPass},
}

// Select picks a small, diversified set of activities. It returns an empty
// slice (not nil) when no age-appropriate candidate exists. Identical
// requests always produce identical results.
func Select(req SelectionRequest) []Selection {
	opts := req.Options
	if opts == (SelectorOptions{}) {
		opts = DefaultSelectorOptions()
	}

	pool := FilterEligible(req.Candidates, req.Age, req.Feasibility, opts)
	st := NewSelectionState(ScorePool(pool, req.Profile), req.Profile, opts)
	for _, p := range Passes {
		st.pass = p.Name
		p.Run(st)
	}
	return st.Result()
}

// SelectionState is the mutable state the passes share. Pool is the
// score-sorted arena; selections refer to it by index.
type SelectionState struct {
	Pool    []ScoredActivity
	Profile domain.LearnerProfile
	Options SelectorOptions

	picks          []pick
	taken          map[int]bool
	usedCategories map[string]bool
	addressedWeak  map[string]bool
	indoorCount    float64
	outdoorCount   float64
	pass           string
}

type pick struct {
	idx      int
	recType  domain.RecommendationType
	targeted []string
	pass     string
}

// NewSelectionState creates an empty selection over a score-sorted pool.
func NewSelectionState(pool []ScoredActivity, p domain.LearnerProfile, opts SelectorOptions) *SelectionState {
	return &SelectionState{
		Pool:           pool,
		Profile:        p,
		Options:        opts,
		taken:          make(map[int]bool),
		usedCategories: make(map[string]bool),
		addressedWeak:  make(map[string]bool),
	}
}

// Len returns the number of selected activities.
func (st *SelectionState) Len() int { return len(st.picks) }

// Full reports whether the maximum selection size has been reached.
func (st *SelectionState) Full() bool { return len(st.picks) >= st.Options.MaxSelected }

// Balance returns the indoor and outdoor counters. A "both" activity adds
// half to each.
func (st *SelectionState) Balance() (indoor, outdoor float64) {
	return st.indoorCount, st.outdoorCount
}

// Addressed reports whether a weak attribute is already covered.
func (st *SelectionState) Addressed(attr string) bool { return st.addressedWeak[attr] }

func (st *SelectionState) add(idx int, recType domain.RecommendationType, targeted []string) {
	if targeted == nil {
		targeted = []string{}
	}
	st.picks = append(st.picks, pick{idx: idx, recType: recType, targeted: targeted, pass: st.pass})
	st.taken[idx] = true

	c := st.Pool[idx].Candidate
	st.usedCategories[c.Category] = true
	switch c.Type {
	case domain.ActivityIndoor:
		st.indoorCount++
	case domain.ActivityOutdoor:
		st.outdoorCount++
	case domain.ActivityBoth:
		st.indoorCount += 0.5
		st.outdoorCount += 0.5
	}
}

// Result returns the selections in pick order, truncated to MaxSelected.
func (st *SelectionState) Result() []Selection {
	out := make([]Selection, 0, len(st.picks))
	for _, p := range st.picks {
		if len(out) >= st.Options.MaxSelected {
			break
		}
		out = append(out, Selection{
			Activity:           st.Pool[p.idx],
			RecommendationType: p.recType,
			TargetedAttributes: p.targeted,
			Pass:               p.pass,
		})
	}
	return out
}

// deepensImbalance reports whether adding c would skip a needed side once
// two or more activities are selected.
func (st *SelectionState) deepensImbalance(c catalog.ActivityCandidate) bool {
	if len(st.picks) < 2 {
		return false
	}
	if st.outdoorCount < 1 && c.Type == domain.ActivityIndoor {
		return true
	}
	if st.indoorCount < 1 && c.Type == domain.ActivityOutdoor {
		return true
	}
	return false
}

// correctsImbalance reports whether c moves the indoor/outdoor split toward even.
func (st *SelectionState) correctsImbalance(c catalog.ActivityCandidate) bool {
	switch {
	case st.indoorCount > st.outdoorCount:
		return c.Type == domain.ActivityOutdoor
	case st.outdoorCount > st.indoorCount:
		return c.Type == domain.ActivityIndoor
	}
	return false
}

func (st *SelectionState) novelWeakMatches(c catalog.ActivityCandidate, topWeak []string) []string {
	var novel []string
	for _, attr := range profile.MatchAttributes(c.TargetAttributes, topWeak) {
		if !st.addressedWeak[attr] {
			novel = append(novel, attr)
		}
	}
	return novel
}

func (st *SelectionState) markAddressed(attrs []string) {
	for _, a := range attrs {
		st.addressedWeak[a] = true
	}
}

// physicalGuaranteePass selects the best-scoring physical activity.
func physicalGuaranteePass(st *SelectionState) {
	if st.Full() {
		return
	}
	for i, sa := range st.Pool {
		if st.taken[i] || !catalog.IsPhysical(sa.Candidate.Category) {
			continue
		}
		matched := profile.MatchAttributes(sa.Candidate.TargetAttributes, st.Profile.WeakAttributes)
		if len(matched) > 0 {
			st.add(i, domain.RecommendImprovement, matched)
			st.markAddressed(matched)
		} else {
			st.add(i, domain.RecommendAgeBased, nil)
		}
		return
	}
}

// weaknessCoveragePass adds activities that cover top weak attributes not
// yet addressed. Candidates that would deepen an indoor/outdoor imbalance
// are deferred and reconsidered after the main scan.
func weaknessCoveragePass(st *SelectionState) {
	topWeak := st.Profile.TopWeak(st.Options.TopWeak)
	if len(topWeak) == 0 {
		return
	}

	var deferred []int
	for i, sa := range st.Pool {
		if st.Full() {
			return
		}
		if st.taken[i] {
			continue
		}
		novel := st.novelWeakMatches(sa.Candidate, topWeak)
		if len(novel) == 0 {
			continue
		}
		if st.deepensImbalance(sa.Candidate) {
			deferred = append(deferred, i)
			continue
		}
		st.add(i, domain.RecommendImprovement, novel)
		st.markAddressed(novel)
	}

	for _, i := range deferred {
		if st.Full() {
			return
		}
		novel := st.novelWeakMatches(st.Pool[i].Candidate, topWeak)
		if len(novel) == 0 {
			continue
		}
		st.add(i, domain.RecommendImprovement, novel)
		st.markAddressed(novel)
	}
}

// strengthReinforcementPass adds up to StrengthSlots activities that match a
// strong attribute and score at least StrengthMinScore.
func strengthReinforcementPass(st *SelectionState) {
	if len(st.Profile.StrongAttributes) == 0 {
		return
	}
	added := 0
	for i, sa := range st.Pool {
		if added >= st.Options.StrengthSlots || st.Full() {
			return
		}
		if st.taken[i] || sa.Score < st.Options.StrengthMinScore {
			continue
		}
		matched := profile.MatchAttributes(sa.Candidate.TargetAttributes, st.Profile.StrongAttributes)
		if len(matched) == 0 {
			continue
		}
		st.add(i, domain.RecommendStrength, matched)
		added++
	}
}

// fillToMinimumPass tops the selection up to MinSelected, preferring
// activities that even out indoor/outdoor or bring a new category.
func fillToMinimumPass(st *SelectionState) {
	for st.Len() < st.Options.MinSelected {
		best, fallback := -1, -1
		for i, sa := range st.Pool {
			if st.taken[i] {
				continue
			}
			if fallback < 0 {
				fallback = i
			}
			if st.correctsImbalance(sa.Candidate) || !st.usedCategories[sa.Candidate.Category] {
				best = i
				break
			}
		}
		if best < 0 {
			best = fallback
		}
		if best < 0 {
			return
		}
		st.add(best, domain.RecommendAgeBased, nil)
	}
}
