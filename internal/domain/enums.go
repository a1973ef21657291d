package domain

type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

// Rank returns a sort rank (higher = more important).
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

type ActivityType string

const (
	ActivityIndoor  ActivityType = "indoor"
	ActivityOutdoor ActivityType = "outdoor"
	ActivityBoth    ActivityType = "both"
)

type RecommendationType string

const (
	RecommendImprovement RecommendationType = "improvement"
	RecommendStrength    RecommendationType = "strength"
	RecommendAgeBased    RecommendationType = "age-based"
)

type Verdict string

const (
	VerdictContinue   Verdict = "continue"
	VerdictReconsider Verdict = "reconsider"
	VerdictStop       Verdict = "stop"
)

type BudgetFlexibility string

const (
	FlexStrict   BudgetFlexibility = "strict"
	FlexModerate BudgetFlexibility = "moderate"
	FlexFlexible BudgetFlexibility = "flexible"
)

// ValidFlexibility is the canonical set of accepted budget flexibility strings.
var ValidFlexibility = map[string]bool{
	"strict": true, "moderate": true, "flexible": true,
}

type ClimateZone string

const (
	ClimateTropical    ClimateZone = "tropical"
	ClimateSubtropical ClimateZone = "subtropical"
	ClimateTemperate   ClimateZone = "temperate"
	ClimateCold        ClimateZone = "cold"
	ClimateArid        ClimateZone = "arid"
)

// ValidClimateZones is the canonical set of accepted climate zone strings.
var ValidClimateZones = map[string]bool{
	"tropical": true, "subtropical": true, "temperate": true,
	"cold": true, "arid": true,
}
