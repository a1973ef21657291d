// Package catalog holds the static, read-only set of candidate activities.
package catalog

import "github.com/alexanderramin/sprout/internal/domain"

// Category names used by the catalog.
const (
	CategorySports      = "sports"
	CategoryAquatics    = "aquatics"
	CategoryGymnastics  = "gymnastics"
	CategoryMartialArts = "martial-arts"
	CategoryAdventure   = "outdoor-adventure"
	CategoryDance       = "dance"
	CategoryMusic       = "music"
	CategoryVisualArts  = "visual-arts"
	CategoryDrama       = "drama"
	CategoryLanguage    = "language"
	CategoryLiteracy    = "literacy"
	CategorySTEM        = "stem"
	CategorySocial      = "social"
	CategoryMindfulness = "mindfulness"
)

var physicalCategories = map[string]bool{
	CategorySports:      true,
	CategoryAquatics:    true,
	CategoryGymnastics:  true,
	CategoryMartialArts: true,
	CategoryAdventure:   true,
}

// IsPhysical reports whether category counts as physical/sports activity.
func IsPhysical(category string) bool {
	return physicalCategories[category]
}

// ActivityCandidate is one immutable catalog entry. Costs are monthly, in USD.
type ActivityCandidate struct {
	ID               string
	Name             string
	Category         string
	TargetAttributes []string
	Priority         domain.Priority
	Type             domain.ActivityType
	CostMinUSD       float64
	CostMaxUSD       float64
	MinAge           int
	MaxAge           int
	Climates         []domain.ClimateZone // empty means any climate
	RequiresCoastal  bool
	HomeBased        bool
	Description      string
	Benefits         []string
}

// AverageCost returns the midpoint of the cost range.
func (a ActivityCandidate) AverageCost() float64 {
	return (a.CostMinUSD + a.CostMaxUSD) / 2
}

// AgeAppropriate reports whether age falls within the inclusive age range.
// A zero MaxAge means no upper bound.
func (a ActivityCandidate) AgeAppropriate(age int) bool {
	if age < a.MinAge {
		return false
	}
	return a.MaxAge == 0 || age <= a.MaxAge
}

// SuitsClimate reports whether zone is in the preference list. An empty
// list accepts every zone.
func (a ActivityCandidate) SuitsClimate(zone domain.ClimateZone) bool {
	if len(a.Climates) == 0 {
		return true
	}
	for _, z := range a.Climates {
		if z == zone {
			return true
		}
	}
	return false
}
