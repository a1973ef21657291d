package profile

import (
	"math/rand"
	"testing"

	"github.com/alexanderramin/sprout/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze_ClassifiesByEvidenceKeywords(t *testing.T) {
	report := &domain.Report{
		LearnerProfileAttributes: []domain.ProfileAttribute{
			{Attribute: "Communicator", Evidence: "Consistently shares ideas with excellent clarity."},
			{Attribute: "Risk-taker", Evidence: "Is developing confidence to try new things."},
			{Attribute: "Thinker", Evidence: "Strong reasoning but sometimes rushes."},
			{Attribute: "Caring", Evidence: ""},
		},
	}

	got := Analyze(report)

	assert.Equal(t, []string{"communicator"}, got.StrongAttributes)
	assert.Equal(t, []string{"risk-taker", "thinker", "caring"}, got.WeakAttributes)
}

func TestAnalyze_SummaryAddsMissingAttributes(t *testing.T) {
	report := &domain.Report{
		LearnerProfileAttributes: []domain.ProfileAttribute{
			{Attribute: "Inquirer", Evidence: "Asks excellent questions."},
		},
		Summary: &domain.ReportSummary{
			AreasNeedingAttention: []string{"Becoming more of a risk taker on the playground", "Being open minded with peers"},
			KeyStrengths:          []string{"A natural Inquirer and a caring friend"},
		},
	}

	got := Analyze(report)

	assert.Equal(t, []string{"risk-taker", "open-minded"}, got.WeakAttributes)
	assert.Equal(t, []string{"inquirer", "caring"}, got.StrongAttributes)
}

func TestAnalyze_DuplicateAttributeKeepsFirstClassification(t *testing.T) {
	report := &domain.Report{
		LearnerProfileAttributes: []domain.ProfileAttribute{
			{Attribute: "Balanced", Evidence: "Needs reminders to rest."},
			{Attribute: "balanced", Evidence: "Excellent at managing time."},
		},
		Summary: &domain.ReportSummary{KeyStrengths: []string{"Balanced"}},
	}

	got := Analyze(report)

	assert.Equal(t, []string{"balanced"}, got.WeakAttributes)
	assert.Empty(t, got.StrongAttributes)
}

func TestAnalyze_EmptyReport(t *testing.T) {
	got := Analyze(&domain.Report{})
	assert.Empty(t, got.WeakAttributes)
	assert.Empty(t, got.StrongAttributes)

	got = Analyze(nil)
	assert.NotNil(t, got.WeakAttributes)
	assert.NotNil(t, got.StrongAttributes)
}

// TestAnalyze_StrengthXorWeak checks that no attribute lands in both lists
// regardless of how evidence and summary text combine.
func TestAnalyze_StrengthXorWeak(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	evidence := []string{
		"excellent work", "developing steadily", "strong but sometimes unsure",
		"", "consistently kind", "struggles with turn taking", "very good effort",
	}

	for trial := 0; trial < 200; trial++ {
		report := &domain.Report{Summary: &domain.ReportSummary{}}
		for i := 0; i < rng.Intn(12); i++ {
			attr := domain.CanonicalAttributes[rng.Intn(len(domain.CanonicalAttributes))]
			report.LearnerProfileAttributes = append(report.LearnerProfileAttributes, domain.ProfileAttribute{
				Attribute: attr,
				Evidence:  evidence[rng.Intn(len(evidence))],
			})
		}
		for i := 0; i < rng.Intn(3); i++ {
			report.Summary.AreasNeedingAttention = append(report.Summary.AreasNeedingAttention,
				domain.CanonicalAttributes[rng.Intn(len(domain.CanonicalAttributes))])
			report.Summary.KeyStrengths = append(report.Summary.KeyStrengths,
				domain.CanonicalAttributes[rng.Intn(len(domain.CanonicalAttributes))])
		}

		got := Analyze(report)
		weak := make(map[string]bool)
		for _, w := range got.WeakAttributes {
			require.False(t, weak[w], "trial %d: duplicate weak %q", trial, w)
			weak[w] = true
		}
		strong := make(map[string]bool)
		for _, s := range got.StrongAttributes {
			require.False(t, strong[s], "trial %d: duplicate strong %q", trial, s)
			strong[s] = true
			assert.False(t, weak[s], "trial %d: %q classified both weak and strong", trial, s)
		}
	}
}

func TestIsStrengthEvidence(t *testing.T) {
	assert.True(t, IsStrengthEvidence("Shows EXCELLENT focus"))
	assert.False(t, IsStrengthEvidence("Excellent ideas but not yet sharing them"))
	assert.False(t, IsStrengthEvidence("Participates in class"))
	assert.False(t, IsStrengthEvidence("Not confident when presenting"))
}
