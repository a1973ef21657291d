// Package guidance produces the advice that sits around a recommendation
// set: a verdict on each activity the child already does, and home actions
// for parents. Both share the keyword tables in package profile so an
// activity name always maps to the same attributes.
package guidance

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/sprout/internal/domain"
	"github.com/alexanderramin/sprout/internal/profile"
)

const (
	baseAlignment    = 30
	weakMatchBonus   = 25
	strongMatchBonus = 15

	continueThreshold   = 60
	reconsiderThreshold = 30

	maxAlternatives    = 3
	maxNamedAttributes = 3
)

// Evaluation is the verdict on one current activity.
type Evaluation struct {
	ActivityName       string         `json:"activityName"`
	InferredAttributes []string       `json:"inferredAttributes"`
	AlignmentScore     int            `json:"alignmentScore"`
	Verdict            domain.Verdict `json:"verdict"`
	Reasoning          string         `json:"reasoning"`
	Alternatives       []string       `json:"alternatives,omitempty"`
}

// Suggestions maps a weak attribute to activities that build it. Used as
// the alternatives list when an activity is not pulling its weight.
var Suggestions = map[string][]string{
	domain.AttrInquirer:      {"Science discovery club", "Robotics workshop", "Nature exploration"},
	domain.AttrKnowledgeable: {"Chess club", "Library reading programme", "Museum workshops"},
	domain.AttrThinker:       {"Chess club", "Coding for kids", "Lego engineering"},
	domain.AttrCommunicator:  {"Drama class", "Public speaking club", "Language club"},
	domain.AttrPrincipled:    {"Scouts", "Team sports", "Community volunteering"},
	domain.AttrOpenMinded:    {"Language club", "World music class", "Cultural exchange programme"},
	domain.AttrCaring:        {"Community volunteering", "Animal care club", "Buddy reading programme"},
	domain.AttrRiskTaker:     {"Rock climbing", "Drama class", "Swimming lessons"},
	domain.AttrBalanced:      {"Kids yoga", "Swimming lessons", "Gardening club"},
	domain.AttrReflective:    {"Kids yoga", "Journaling club", "Art studio"},
}

// EvaluateCurrent scores each current activity against the profile. The
// result has one entry per name, in input order.
func EvaluateCurrent(activityNames []string, p domain.LearnerProfile) []Evaluation {
	out := make([]Evaluation, 0, len(activityNames))
	for _, name := range activityNames {
		out = append(out, evaluateOne(name, p))
	}
	return out
}

func evaluateOne(name string, p domain.LearnerProfile) Evaluation {
	inferred := profile.InferAttributes(name)
	weak := profile.MatchAttributes(inferred, p.WeakAttributes)
	strong := profile.MatchAttributes(inferred, p.StrongAttributes)

	score := Alignment(len(weak), len(strong))
	verdict := VerdictFor(score)

	ev := Evaluation{
		ActivityName:       name,
		InferredAttributes: inferred,
		AlignmentScore:     score,
		Verdict:            verdict,
		Reasoning:          reasoning(verdict, weak, strong),
	}
	if verdict != domain.VerdictContinue {
		ev.Alternatives = alternatives(name, p.WeakAttributes)
	}
	return ev
}

// Alignment converts distinct match counts into a score in [0,100].
func Alignment(weakMatches, strongMatches int) int {
	v := baseAlignment + weakMatchBonus*weakMatches + strongMatchBonus*strongMatches
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// VerdictFor maps an alignment score onto a verdict tier.
func VerdictFor(score int) domain.Verdict {
	switch {
	case score >= continueThreshold:
		return domain.VerdictContinue
	case score >= reconsiderThreshold:
		return domain.VerdictReconsider
	default:
		return domain.VerdictStop
	}
}

func reasoning(v domain.Verdict, weak, strong []string) string {
	matched := append(append([]string(nil), weak...), strong...)
	if len(matched) > maxNamedAttributes {
		matched = matched[:maxNamedAttributes]
	}
	named := strings.Join(matched, ", ")

	switch v {
	case domain.VerdictContinue:
		if len(weak) > 0 {
			return fmt.Sprintf("Good fit: builds %s, which the latest report flags for development.", named)
		}
		return fmt.Sprintf("Good fit: reinforces %s.", named)
	case domain.VerdictReconsider:
		if named != "" {
			return fmt.Sprintf("Partial fit: touches %s but misses the areas the report flags for development.", named)
		}
		return "Partial fit: does not target any attribute the latest report highlights."
	default:
		return "Weak fit: does not support the attributes the latest report highlights."
	}
}

func alternatives(current string, weak []string) []string {
	var out []string
	seen := map[string]bool{strings.ToLower(strings.TrimSpace(current)): true}
	for _, attr := range weak {
		for _, s := range Suggestions[domain.NormalizeAttribute(attr)] {
			key := strings.ToLower(s)
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, s)
			if len(out) == maxAlternatives {
				return out
			}
		}
	}
	return out
}
