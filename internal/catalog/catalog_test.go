package catalog

import (
	"testing"

	"github.com/alexanderramin/sprout/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_EntriesWellFormed(t *testing.T) {
	seen := make(map[string]bool)
	for _, a := range All() {
		require.NotEmpty(t, a.ID)
		assert.False(t, seen[a.ID], "duplicate id %s", a.ID)
		seen[a.ID] = true

		assert.NotEmpty(t, a.Name, a.ID)
		assert.NotEmpty(t, a.TargetAttributes, a.ID)
		assert.LessOrEqual(t, a.CostMinUSD, a.CostMaxUSD, a.ID)
		assert.LessOrEqual(t, a.MinAge, a.MaxAge, a.ID)
		assert.Contains(t, []domain.Priority{domain.PriorityHigh, domain.PriorityMedium, domain.PriorityLow}, a.Priority, a.ID)
		assert.Contains(t, []domain.ActivityType{domain.ActivityIndoor, domain.ActivityOutdoor, domain.ActivityBoth}, a.Type, a.ID)
		for _, attr := range a.TargetAttributes {
			_, ok := domain.CanonicalAttribute(attr)
			assert.True(t, ok, "%s targets unknown attribute %q", a.ID, attr)
		}
	}
}

func TestCatalog_EnoughCandidatesForEveryAge(t *testing.T) {
	for age := 4; age <= 15; age++ {
		n := 0
		physical := false
		for _, a := range All() {
			if a.AgeAppropriate(age) {
				n++
				physical = physical || IsPhysical(a.Category)
			}
		}
		assert.GreaterOrEqual(t, n, 15, "age %d", age)
		assert.True(t, physical, "age %d has no physical activity", age)
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	a := All()
	a[0].Name = "changed"
	assert.NotEqual(t, "changed", All()[0].Name)
}

func TestActivityCandidate_Helpers(t *testing.T) {
	a, ok := ByID("ice-skating")
	require.True(t, ok)
	assert.Equal(t, 110.0, a.AverageCost())
	assert.True(t, a.SuitsClimate(domain.ClimateCold))
	assert.False(t, a.SuitsClimate(domain.ClimateTropical))
	assert.True(t, a.AgeAppropriate(4))
	assert.False(t, a.AgeAppropriate(3))

	swim, ok := ByID("swimming")
	require.True(t, ok)
	assert.True(t, swim.SuitsClimate(domain.ClimateArid))

	_, ok = ByID("missing")
	assert.False(t, ok)
}
