package importer

import (
	"strings"
	"time"

	"github.com/alexanderramin/sprout/internal/domain"
	"github.com/google/uuid"
)

// Convert transforms a validated ReportImport into a domain report ready
// for persistence. Call ValidateReport first; Convert assumes the import is valid.
func Convert(schema *ReportImport, studentID, sourceFile string) *domain.Report {
	report := &domain.Report{
		ID:                       uuid.New().String(),
		StudentID:                studentID,
		Grade:                    strings.TrimSpace(schema.Grade),
		Term:                     strings.TrimSpace(schema.Term),
		LearnerProfileAttributes: make([]domain.ProfileAttribute, 0, len(schema.LearnerProfileAttributes)),
		SourceFile:               sourceFile,
		CreatedAt:                time.Now().UTC(),
	}

	for _, a := range schema.LearnerProfileAttributes {
		report.LearnerProfileAttributes = append(report.LearnerProfileAttributes, domain.ProfileAttribute{
			Attribute: strings.TrimSpace(a.Attribute),
			Evidence:  strings.TrimSpace(a.Evidence),
		})
	}

	if schema.Summary != nil {
		report.Summary = &domain.ReportSummary{
			AreasNeedingAttention: nonEmpty(schema.Summary.AreasNeedingAttention),
			KeyStrengths:          nonEmpty(schema.Summary.KeyStrengths),
		}
	}

	return report
}

func nonEmpty(list []string) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
