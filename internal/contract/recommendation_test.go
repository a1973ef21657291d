package contract

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/sprout/internal/catalog"
	"github.com/alexanderramin/sprout/internal/domain"
	"github.com/alexanderramin/sprout/internal/recommend"
)

func TestNewRecommendation_MapsSelection(t *testing.T) {
	swim, ok := catalog.ByID("swimming")
	require.True(t, ok)

	rec := NewRecommendation(recommend.Selection{
		Activity: recommend.ScoredActivity{
			Candidate:   swim,
			Feasibility: recommend.FeasibilityScore{BudgetMatch: 100, ClimateMatch: 100, Overall: 100},
		},
		RecommendationType: domain.RecommendImprovement,
		TargetedAttributes: []string{domain.AttrRiskTaker},
	})

	assert.Equal(t, "swimming", rec.ID)
	assert.Equal(t, domain.RecommendImprovement, rec.RecommendationType)
	assert.Equal(t, []string{domain.AttrRiskTaker}, rec.TargetedAttributes)
	assert.Equal(t, swim.TargetAttributes, rec.TargetAttributes)
	assert.Contains(t, rec.EstimatedCost, "$")
	assert.Equal(t, swim.CostMinUSD, rec.CostMinUSD)
}

func TestRecommendation_JSONFieldNames(t *testing.T) {
	rec := Recommendation{
		ID:                 "chess",
		TargetAttributes:   []string{"thinker"},
		RecommendationType: domain.RecommendAgeBased,
		TargetedAttributes: []string{},
		EstimatedCost:      "$40 - $80/month",
		CostMinUSD:         40,
	}

	raw, err := json.Marshal(rec)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))
	for _, key := range []string{
		"id", "name", "category", "priority", "targetAttributes",
		"recommendationType", "targetedAttributes", "estimatedCost", "feasibilityScore",
	} {
		assert.Contains(t, fields, key)
	}
	assert.NotContains(t, fields, "venues")
	assert.NotContains(t, fields, "CostMinUSD")

	score := fields["feasibilityScore"].(map[string]any)
	assert.Contains(t, score, "budgetMatch")
	assert.Contains(t, score, "climateMatch")
	assert.Contains(t, score, "overall")
	assert.Equal(t, []any{}, fields["targetedAttributes"])
}
