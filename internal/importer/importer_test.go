package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleReport = `{
  "studentName": "Mia",
  "grade": "EYP 3",
  "term": "Term 2",
  "learnerProfileAttributes": [
    {"attribute": "Risk-taker", "evidence": "Still developing confidence to try new things"},
    {"attribute": "Caring", "evidence": "Consistently shows kindness"}
  ],
  "summary": {
    "areasNeedingAttention": ["Being a communicator in group settings", "  "],
    "keyStrengths": ["Caring towards peers"]
  }
}`

func validMinimal() *ReportImport {
	return &ReportImport{
		Grade: "Grade 4",
		LearnerProfileAttributes: []AttributeImport{
			{Attribute: "thinker", Evidence: "Needs support"},
		},
	}
}

func TestParseReport(t *testing.T) {
	schema, err := ParseReport(strings.NewReader(sampleReport))
	require.NoError(t, err)

	assert.Equal(t, "Mia", schema.StudentName)
	assert.Equal(t, "EYP 3", schema.Grade)
	require.Len(t, schema.LearnerProfileAttributes, 2)
	assert.Equal(t, "Risk-taker", schema.LearnerProfileAttributes[0].Attribute)
	require.NotNil(t, schema.Summary)
	assert.Len(t, schema.Summary.AreasNeedingAttention, 2)
}

func TestParseReport_Malformed(t *testing.T) {
	_, err := ParseReport(strings.NewReader(`{"grade": `))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing report")
}

func TestLoadReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleReport), 0o644))

	schema, err := LoadReport(path)
	require.NoError(t, err)
	assert.Equal(t, "Term 2", schema.Term)

	_, err = LoadReport(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestValidateReport_ValidMinimal(t *testing.T) {
	assert.Empty(t, ValidateReport(validMinimal()))
}

func TestValidateReport_SummaryOnly(t *testing.T) {
	schema := &ReportImport{
		Grade:   "Grade 2",
		Summary: &SummaryImport{KeyStrengths: []string{"A natural inquirer"}},
	}
	assert.Empty(t, ValidateReport(schema))
}

func TestValidateReport_UnknownAttributeAccepted(t *testing.T) {
	schema := validMinimal()
	schema.LearnerProfileAttributes = append(schema.LearnerProfileAttributes,
		AttributeImport{Attribute: "resilient", Evidence: "Developing"})
	assert.Empty(t, ValidateReport(schema))
}

func TestValidateReport_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ReportImport)
		want   string
	}{
		{"missing grade", func(s *ReportImport) { s.Grade = "  " }, "grade is required"},
		{"empty report", func(s *ReportImport) { s.LearnerProfileAttributes = nil }, "neither"},
		{"blank attribute", func(s *ReportImport) {
			s.LearnerProfileAttributes[0].Attribute = ""
		}, "learnerProfileAttributes[0].attribute is required"},
		{"duplicate attribute", func(s *ReportImport) {
			s.LearnerProfileAttributes = append(s.LearnerProfileAttributes,
				AttributeImport{Attribute: "Thinker", Evidence: "Excellent"})
		}, "duplicate attribute"},
		{"duplicate spelling variant", func(s *ReportImport) {
			s.LearnerProfileAttributes = []AttributeImport{
				{Attribute: "risk-taker"}, {Attribute: "Risk taker"},
			}
		}, "duplicate attribute"},
		{"long evidence", func(s *ReportImport) {
			s.LearnerProfileAttributes[0].Evidence = strings.Repeat("x", maxEvidenceLen+1)
		}, "exceeds"},
		{"blank summary line", func(s *ReportImport) {
			s.Summary = &SummaryImport{KeyStrengths: []string{""}}
		}, "summary.keyStrengths[0] is empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schema := validMinimal()
			tt.mutate(schema)
			errs := ValidateReport(schema)
			require.NotEmpty(t, errs)
			var found bool
			for _, err := range errs {
				if strings.Contains(err.Error(), tt.want) {
					found = true
				}
			}
			assert.True(t, found, "expected an error containing %q, got %v", tt.want, errs)
		})
	}
}

func TestValidateReport_CollectsAllErrors(t *testing.T) {
	schema := &ReportImport{
		LearnerProfileAttributes: []AttributeImport{{Attribute: ""}, {Attribute: " "}},
	}
	assert.Len(t, ValidateReport(schema), 3)
}

func TestConvert(t *testing.T) {
	schema, err := ParseReport(strings.NewReader(sampleReport))
	require.NoError(t, err)

	report := Convert(schema, "student-1", "mia-term2.json")

	assert.NotEmpty(t, report.ID)
	assert.Equal(t, "student-1", report.StudentID)
	assert.Equal(t, "EYP 3", report.Grade)
	assert.Equal(t, "Term 2", report.Term)
	assert.Equal(t, "mia-term2.json", report.SourceFile)
	assert.False(t, report.CreatedAt.IsZero())
	require.Len(t, report.LearnerProfileAttributes, 2)
	assert.Equal(t, "Caring", report.LearnerProfileAttributes[1].Attribute)
	require.NotNil(t, report.Summary)
	assert.Equal(t, []string{"Being a communicator in group settings"}, report.Summary.AreasNeedingAttention)
	assert.Equal(t, []string{"Caring towards peers"}, report.Summary.KeyStrengths)
}

func TestConvert_NoSummary(t *testing.T) {
	report := Convert(validMinimal(), "s", "")
	assert.Nil(t, report.Summary)
	assert.Len(t, report.LearnerProfileAttributes, 1)
}
