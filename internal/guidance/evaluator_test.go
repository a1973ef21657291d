package guidance

import (
	"math/rand"
	"testing"

	"github.com/alexanderramin/sprout/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateCurrent_SwimmingWithOpenMindedWeakness(t *testing.T) {
	p := domain.LearnerProfile{WeakAttributes: []string{domain.AttrOpenMinded}}

	evals := EvaluateCurrent([]string{"Swimming lessons"}, p)
	require.Len(t, evals, 1)
	ev := evals[0]

	assert.Equal(t, "Swimming lessons", ev.ActivityName)
	assert.Equal(t, []string{domain.AttrRiskTaker, domain.AttrBalanced, domain.AttrPrincipled}, ev.InferredAttributes)
	assert.Equal(t, 30, ev.AlignmentScore)
	assert.Equal(t, domain.VerdictReconsider, ev.Verdict)
	require.NotEmpty(t, ev.Alternatives)
	for _, alt := range ev.Alternatives {
		assert.Contains(t, Suggestions[domain.AttrOpenMinded], alt)
	}
}

func TestEvaluateCurrent_ContinueNamesMatchedAttributes(t *testing.T) {
	p := domain.LearnerProfile{
		WeakAttributes:   []string{domain.AttrCommunicator, domain.AttrRiskTaker},
		StrongAttributes: []string{domain.AttrReflective},
	}

	ev := EvaluateCurrent([]string{"Drama class"}, p)[0]

	assert.Equal(t, 95, ev.AlignmentScore)
	assert.Equal(t, domain.VerdictContinue, ev.Verdict)
	assert.Empty(t, ev.Alternatives)
	assert.Contains(t, ev.Reasoning, domain.AttrCommunicator)
	assert.Contains(t, ev.Reasoning, domain.AttrRiskTaker)
}

func TestEvaluateCurrent_AlternativesDeduplicatedAndCapped(t *testing.T) {
	p := domain.LearnerProfile{WeakAttributes: []string{domain.AttrBalanced, domain.AttrReflective}}

	ev := EvaluateCurrent([]string{"Swimming lessons"}, p)[0]

	assert.Equal(t, 55, ev.AlignmentScore)
	assert.Equal(t, domain.VerdictReconsider, ev.Verdict)
	assert.Equal(t, []string{"Kids yoga", "Gardening club", "Journaling club"}, ev.Alternatives)
}

func TestEvaluateCurrent_UnknownActivityUsesFallback(t *testing.T) {
	ev := EvaluateCurrent([]string{"Piano"}, domain.LearnerProfile{})[0]
	assert.Equal(t, domain.VerdictReconsider, ev.Verdict)

	ev = EvaluateCurrent([]string{"Abseiling"}, domain.LearnerProfile{})[0]
	assert.Equal(t, []string{domain.AttrBalanced, domain.AttrKnowledgeable}, ev.InferredAttributes)
}

func TestEvaluateCurrent_EmptyInput(t *testing.T) {
	evals := EvaluateCurrent(nil, domain.LearnerProfile{})
	assert.NotNil(t, evals)
	assert.Empty(t, evals)
}

func TestVerdictFor_Tiers(t *testing.T) {
	assert.Equal(t, domain.VerdictContinue, VerdictFor(60))
	assert.Equal(t, domain.VerdictContinue, VerdictFor(100))
	assert.Equal(t, domain.VerdictReconsider, VerdictFor(59))
	assert.Equal(t, domain.VerdictReconsider, VerdictFor(30))
	assert.Equal(t, domain.VerdictStop, VerdictFor(29))
	assert.Equal(t, domain.VerdictStop, VerdictFor(0))
}

func TestAlignment_MonotonicAndClamped(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		w := rng.Intn(11)
		s := rng.Intn(11)
		a := Alignment(w, s)

		assert.GreaterOrEqual(t, a, 0)
		assert.LessOrEqual(t, a, 100)
		assert.GreaterOrEqual(t, Alignment(w+1, s), a, "weak=%d strong=%d", w, s)
		assert.GreaterOrEqual(t, Alignment(w, s+1), a, "weak=%d strong=%d", w, s)
	}
}
