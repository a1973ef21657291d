// Package contract defines the records returned to callers. JSON field
// names are part of the public contract and must not change.
package contract

import (
	"time"

	"github.com/alexanderramin/sprout/internal/domain"
	"github.com/alexanderramin/sprout/internal/guidance"
	"github.com/alexanderramin/sprout/internal/places"
	"github.com/alexanderramin/sprout/internal/recommend"
	"github.com/alexanderramin/sprout/internal/region"
)

type FeasibilityScore = recommend.FeasibilityScore

type Venue = places.Venue

type CurrentActivityEvaluation = guidance.Evaluation

type ParentAction = guidance.ParentAction

type HomeActivity = guidance.HomeActivity

// Recommendation is one selected activity.
type Recommendation struct {
	ID                 string                    `json:"id"`
	Name               string                    `json:"name"`
	Category           string                    `json:"category"`
	Priority           domain.Priority           `json:"priority"`
	TargetAttributes   []string                  `json:"targetAttributes"`
	RecommendationType domain.RecommendationType `json:"recommendationType"`
	TargetedAttributes []string                  `json:"targetedAttributes"`
	Venues             []Venue                   `json:"venues,omitempty"`
	EstimatedCost      string                    `json:"estimatedCost"`
	FeasibilityScore   FeasibilityScore          `json:"feasibilityScore"`

	Description  string              `json:"description,omitempty"`
	Benefits     []string            `json:"benefits,omitempty"`
	ActivityType domain.ActivityType `json:"activityType"`
	HomeBased    bool                `json:"homeBased"`

	CostMinUSD float64 `json:"-"`
	CostMaxUSD float64 `json:"-"`
}

// NewRecommendation maps a selector pick onto the output record. The cost
// is shown in US dollars until venue enrichment localises it.
func NewRecommendation(sel recommend.Selection) Recommendation {
	c := sel.Activity.Candidate
	return Recommendation{
		ID:                 c.ID,
		Name:               c.Name,
		Category:           c.Category,
		Priority:           c.Priority,
		TargetAttributes:   append([]string{}, c.TargetAttributes...),
		RecommendationType: sel.RecommendationType,
		TargetedAttributes: append([]string{}, sel.TargetedAttributes...),
		EstimatedCost:      region.DefaultCurrencies.ConvertRange(c.CostMinUSD, c.CostMaxUSD, region.DefaultCountry),
		FeasibilityScore:   sel.Activity.Feasibility,
		Description:        c.Description,
		Benefits:           append([]string(nil), c.Benefits...),
		ActivityType:       c.Type,
		HomeBased:          c.HomeBased,
		CostMinUSD:         c.CostMinUSD,
		CostMaxUSD:         c.CostMaxUSD,
	}
}

// NewRecommendations maps a whole selection, keeping order.
func NewRecommendations(sels []recommend.Selection) []Recommendation {
	out := make([]Recommendation, 0, len(sels))
	for _, s := range sels {
		out = append(out, NewRecommendation(s))
	}
	return out
}

// Location describes where venue lookups were anchored.
type Location struct {
	Latitude    float64            `json:"latitude"`
	Longitude   float64            `json:"longitude"`
	Country     string             `json:"country"`
	ClimateZone domain.ClimateZone `json:"climateZone,omitempty"`
	IsCoastal   bool               `json:"isCoastal"`
}

// RecommendationRequest is the input to the recommendation pipeline.
// Nil pointers mean "not supplied".
type RecommendationRequest struct {
	StudentID   string
	Budget      *float64
	Flexibility domain.BudgetFlexibility
	ClimateZone domain.ClimateZone
	IsCoastal   *bool
	Latitude    *float64
	Longitude   *float64
	Address     string
	Now         *time.Time
}

// RecommendationResponse is the full result for one student.
type RecommendationResponse struct {
	GeneratedAt                time.Time                   `json:"generatedAt"`
	StudentID                  string                      `json:"studentId"`
	StudentName                string                      `json:"studentName"`
	Grade                      string                      `json:"grade"`
	Age                        int                         `json:"age"`
	Profile                    domain.LearnerProfile       `json:"profile"`
	Recommendations            []Recommendation            `json:"recommendations"`
	CurrentActivityEvaluations []CurrentActivityEvaluation `json:"currentActivityEvaluations"`
	ParentActions              []ParentAction              `json:"parentActions"`
	Location                   *Location                   `json:"location,omitempty"`
	CostApproximate            bool                        `json:"costApproximate"`
	Warnings                   []string                    `json:"warnings,omitempty"`
}
