package guidance

import (
	"math/rand"
	"testing"

	"github.com/alexanderramin/sprout/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func targetAreas(actions []ParentAction) []string {
	out := make([]string, len(actions))
	for i, a := range actions {
		out[i] = a.TargetArea
	}
	return out
}

func TestGenerateParentActions_WeakStrongAndFoundation(t *testing.T) {
	actions := GenerateParentActions(ActionRequest{
		Profile: domain.LearnerProfile{
			WeakAttributes:   []string{domain.AttrRiskTaker, domain.AttrCommunicator, domain.AttrThinker, domain.AttrInquirer},
			StrongAttributes: []string{domain.AttrCaring},
		},
		Age: 7,
	})

	assert.Equal(t, []string{
		domain.AttrRiskTaker, domain.AttrCommunicator, domain.AttrThinker,
		"reading-writing", domain.AttrCaring,
	}, targetAreas(actions))
	assert.Equal(t, domain.PriorityLow, actions[4].Priority)
}

func TestGenerateParentActions_SkipsCoveredAndUnauthored(t *testing.T) {
	actions := GenerateParentActions(ActionRequest{
		Profile: domain.LearnerProfile{
			WeakAttributes:   []string{domain.AttrRiskTaker, domain.AttrKnowledgeable, domain.AttrOpenMinded, domain.AttrReflective},
			StrongAttributes: []string{domain.AttrBalanced, domain.AttrCommunicator, domain.AttrThinker},
		},
		Age:               4,
		CurrentActivities: []string{"Swimming lessons"},
	})

	assert.Equal(t, []string{
		domain.AttrOpenMinded, domain.AttrReflective, "early-literacy",
		domain.AttrCommunicator, domain.AttrThinker,
	}, targetAreas(actions))
}

func TestGenerateParentActions_OlderChildWithEmptyProfile(t *testing.T) {
	actions := GenerateParentActions(ActionRequest{Age: 12})
	assert.NotNil(t, actions)
	assert.Empty(t, actions)
}

func TestGenerateParentActions_ReturnsCopies(t *testing.T) {
	req := ActionRequest{Profile: domain.LearnerProfile{WeakAttributes: []string{domain.AttrCaring}}, Age: 12}

	first := GenerateParentActions(req)
	require.Len(t, first, 1)
	first[0].Activities[0].Tips[0] = "changed"

	second := GenerateParentActions(req)
	assert.NotEqual(t, "changed", second[0].Activities[0].Tips[0])
}

func TestGenerateParentActions_BoundedAndSorted(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	current := []string{"Swimming lessons", "Piano", "Chess club", "Scouts", "Kids yoga", "Robotics"}

	for i := 0; i < 300; i++ {
		perm := rng.Perm(len(domain.CanonicalAttributes))
		split := rng.Intn(len(perm) + 1)
		var p domain.LearnerProfile
		for j, idx := range perm {
			if j < split {
				p.WeakAttributes = append(p.WeakAttributes, domain.CanonicalAttributes[idx])
			} else {
				p.StrongAttributes = append(p.StrongAttributes, domain.CanonicalAttributes[idx])
			}
		}
		var acts []string
		for _, c := range current {
			if rng.Intn(3) == 0 {
				acts = append(acts, c)
			}
		}

		actions := GenerateParentActions(ActionRequest{Profile: p, Age: 3 + rng.Intn(12), CurrentActivities: acts})

		require.LessOrEqual(t, len(actions), 5)
		for j := 1; j < len(actions); j++ {
			assert.GreaterOrEqual(t, actions[j-1].Priority.Rank(), actions[j].Priority.Rank())
		}
	}
}
