package guidance

import (
	"fmt"
	"sort"

	"github.com/alexanderramin/sprout/internal/domain"
	"github.com/alexanderramin/sprout/internal/profile"
)

const (
	maxParentActions  = 5
	weakActionSlots   = 3
	strongActionSlots = 2

	earlyLiteracyMaxAge  = 5
	readingWritingMaxAge = 10
)

// HomeActivity is one thing a parent can do at home.
type HomeActivity struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Frequency   string   `json:"frequency"`
	Duration    string   `json:"duration"`
	Tips        []string `json:"tips"`
}

// ParentAction groups home activities around one target area.
type ParentAction struct {
	TargetArea       string          `json:"targetArea"`
	Priority         domain.Priority `json:"priority"`
	Title            string          `json:"title"`
	Activities       []HomeActivity  `json:"activities"`
	ExpectedOutcome  string          `json:"expectedOutcome"`
	TimeToSeeResults string          `json:"timeToSeeResults"`
}

// ActionRequest is the input to GenerateParentActions.
type ActionRequest struct {
	Profile           domain.LearnerProfile
	Age               int
	CurrentActivities []string
}

// GenerateParentActions builds at most five home actions, sorted by
// priority. Attributes already exercised by a current activity get no
// action.
func GenerateParentActions(req ActionRequest) []ParentAction {
	covered := profile.CoveredAttributes(req.CurrentActivities)
	actions := make([]ParentAction, 0, maxParentActions)

	for _, attr := range uncovered(req.Profile.WeakAttributes, covered, weakActionSlots) {
		tpl, ok := ImprovementTemplates[attr]
		if !ok {
			continue
		}
		actions = append(actions, tpl.clone())
	}

	for _, attr := range uncovered(req.Profile.StrongAttributes, covered, strongActionSlots) {
		actions = append(actions, maintenanceAction(attr))
	}

	if len(actions) < maxParentActions {
		if a, ok := foundationAction(req.Age); ok {
			actions = append(actions, a)
		}
	}

	sort.SliceStable(actions, func(i, j int) bool {
		return actions[i].Priority.Rank() > actions[j].Priority.Rank()
	})
	if len(actions) > maxParentActions {
		actions = actions[:maxParentActions]
	}
	return actions
}

// uncovered returns up to n attributes from list, in order, that are not in
// covered.
func uncovered(list []string, covered map[string]bool, n int) []string {
	var out []string
	for _, a := range list {
		attr := domain.NormalizeAttribute(a)
		if covered[attr] {
			continue
		}
		out = append(out, attr)
		if len(out) == n {
			break
		}
	}
	return out
}

func maintenanceAction(attr string) ParentAction {
	return ParentAction{
		TargetArea: attr,
		Priority:   domain.PriorityLow,
		Title:      fmt.Sprintf("Keep building on being %s", attr),
		Activities: []HomeActivity{{
			Name:        "Strength spotlight",
			Description: fmt.Sprintf("Notice and name moments when your child is %s, and give them a chance to lead with it.", attr),
			Frequency:   "Weekly",
			Duration:    "10 minutes",
			Tips: []string{
				"Praise the effort, not the label",
				"Let them teach a sibling or parent something",
			},
		}},
		ExpectedOutcome:  fmt.Sprintf("Your child stays confident and motivated as a %s learner.", attr),
		TimeToSeeResults: "Ongoing",
	}
}

func foundationAction(age int) (ParentAction, bool) {
	switch {
	case age <= earlyLiteracyMaxAge:
		return earlyLiteracyAction.clone(), true
	case age <= readingWritingMaxAge:
		return readingWritingAction.clone(), true
	default:
		return ParentAction{}, false
	}
}

func (a ParentAction) clone() ParentAction {
	acts := make([]HomeActivity, len(a.Activities))
	for i, h := range a.Activities {
		h.Tips = append([]string(nil), h.Tips...)
		acts[i] = h
	}
	a.Activities = acts
	return a
}
