package recommend

import (
	"math"

	"github.com/alexanderramin/sprout/internal/catalog"
	"github.com/alexanderramin/sprout/internal/domain"
)

// FeasibilityContext is the optional budget and location context of a request.
type FeasibilityContext struct {
	Budget      *float64 // monthly, USD; nil means no budget limit
	Flexibility domain.BudgetFlexibility
	ClimateZone domain.ClimateZone // empty means unknown
	IsCoastal   *bool              // nil is treated as not coastal
}

// FeasibilityScore grades how practical a candidate is for the family.
// Every field lies in [0,100].
type FeasibilityScore struct {
	BudgetMatch  float64 `json:"budgetMatch"`
	ClimateMatch float64 `json:"climateMatch"`
	Overall      float64 `json:"overall"`
}

// ScoreFeasibility scores one candidate against budget and climate context.
func ScoreFeasibility(c catalog.ActivityCandidate, ctx FeasibilityContext) FeasibilityScore {
	budget := clampScore(budgetMatch(c.AverageCost(), ctx.Budget, ctx.Flexibility))
	climate := clampScore(climateMatch(c, ctx))
	return FeasibilityScore{
		BudgetMatch:  budget,
		ClimateMatch: climate,
		Overall:      clampScore((budget + climate) / 2),
	}
}

func budgetMatch(avg float64, budget *float64, flex domain.BudgetFlexibility) float64 {
	if budget == nil || avg <= *budget {
		return 100
	}
	if *budget <= 0 {
		// Nothing to spend: any positive cost drops straight to the floor.
		return flexibilityFloor(flex)
	}

	overage := (avg - *budget) / *budget
	switch flex {
	case domain.FlexStrict:
		return maxf(0, 100-200*overage)
	case domain.FlexFlexible:
		return maxf(50, 100-50*overage)
	default:
		return maxf(20, 100-100*overage)
	}
}

func flexibilityFloor(flex domain.BudgetFlexibility) float64 {
	switch flex {
	case domain.FlexStrict:
		return 0
	case domain.FlexFlexible:
		return 50
	default:
		return 20
	}
}

// climateMatch applies the coastal check after the climate-preference check;
// the coastal result replaces, not adds to, the earlier one.
func climateMatch(c catalog.ActivityCandidate, ctx FeasibilityContext) float64 {
	score := 100.0
	if ctx.ClimateZone != "" && !c.SuitsClimate(ctx.ClimateZone) {
		score = 40
	}
	if c.RequiresCoastal && (ctx.IsCoastal == nil || !*ctx.IsCoastal) {
		score = 20
	}
	return score
}

func clampScore(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
