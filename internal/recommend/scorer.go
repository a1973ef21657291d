package recommend

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/sprout/internal/catalog"
	"github.com/alexanderramin/sprout/internal/domain"
	"github.com/alexanderramin/sprout/internal/profile"
)

type ReasonCode string

const (
	ReasonWeakMatch     ReasonCode = "WEAK_MATCH"
	ReasonStrengthMatch ReasonCode = "STRENGTH_MATCH"
	ReasonBase          ReasonCode = "BASE"
	ReasonPriority      ReasonCode = "PRIORITY_BONUS"
)

// Score weights.
const (
	weakMatchPoints     = 60.0
	strengthMatchPoints = 30.0
	basePoints          = 10.0
)

type Reason struct {
	Code        ReasonCode
	Message     string
	WeightDelta float64
}

// ScoredActivity is a candidate with its relevance and feasibility scores.
// Index is the candidate's catalog insertion position.
type ScoredActivity struct {
	Candidate   catalog.ActivityCandidate
	Index       int
	Score       float64
	Feasibility FeasibilityScore
	Reasons     []Reason
}

// ScoreActivity scores a candidate against the learner profile: 60 per
// distinct weak-attribute match, 30 per distinct strong-attribute match,
// a flat 10, and 20/10/0 for HIGH/MEDIUM/LOW priority.
func ScoreActivity(c catalog.ActivityCandidate, p domain.LearnerProfile) (float64, []Reason) {
	var score float64
	var reasons []Reason
	factors := []func(catalog.ActivityCandidate, domain.LearnerProfile) (float64, *Reason){
		scoreWeakMatches,
		scoreStrengthMatches,
		scoreBase,
		scorePriority,
	}
	for _, f := range factors {
		delta, reason := f(c, p)
		score += delta
		if reason != nil {
			reasons = append(reasons, *reason)
		}
	}
	return score, reasons
}

func scoreWeakMatches(c catalog.ActivityCandidate, p domain.LearnerProfile) (float64, *Reason) {
	matched := profile.MatchAttributes(c.TargetAttributes, p.WeakAttributes)
	if len(matched) == 0 {
		return 0, nil
	}
	delta := weakMatchPoints * float64(len(matched))
	return delta, &Reason{
		Code:        ReasonWeakMatch,
		Message:     fmt.Sprintf("Builds %s", strings.Join(matched, ", ")),
		WeightDelta: delta,
	}
}

func scoreStrengthMatches(c catalog.ActivityCandidate, p domain.LearnerProfile) (float64, *Reason) {
	matched := profile.MatchAttributes(c.TargetAttributes, p.StrongAttributes)
	if len(matched) == 0 {
		return 0, nil
	}
	delta := strengthMatchPoints * float64(len(matched))
	return delta, &Reason{
		Code:        ReasonStrengthMatch,
		Message:     fmt.Sprintf("Reinforces %s", strings.Join(matched, ", ")),
		WeightDelta: delta,
	}
}

func scoreBase(catalog.ActivityCandidate, domain.LearnerProfile) (float64, *Reason) {
	return basePoints, &Reason{Code: ReasonBase, Message: "Catalog activity", WeightDelta: basePoints}
}

func scorePriority(c catalog.ActivityCandidate, _ domain.LearnerProfile) (float64, *Reason) {
	var delta float64
	switch c.Priority {
	case domain.PriorityHigh:
		delta = 20
	case domain.PriorityMedium:
		delta = 10
	default:
		return 0, nil
	}
	return delta, &Reason{
		Code:        ReasonPriority,
		Message:     fmt.Sprintf("%s priority activity", c.Priority),
		WeightDelta: delta,
	}
}
