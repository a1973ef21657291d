package importer

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/sprout/internal/domain"
)

const maxEvidenceLen = 2000

// ValidateReport checks the import for errors before conversion.
// Returns a slice of all validation errors found.
//
// Attribute names outside the ten canonical ones are accepted: the
// analyzer keeps them and the selector simply finds no activity for them.
func ValidateReport(schema *ReportImport) []error {
	var errs []error

	if strings.TrimSpace(schema.Grade) == "" {
		errs = append(errs, fmt.Errorf("grade is required"))
	}
	if len(schema.LearnerProfileAttributes) == 0 && schema.Summary == nil {
		errs = append(errs, fmt.Errorf("report has neither learnerProfileAttributes nor summary"))
	}

	seen := make(map[string]int)
	for i, a := range schema.LearnerProfileAttributes {
		field := fmt.Sprintf("learnerProfileAttributes[%d]", i)
		name := strings.TrimSpace(a.Attribute)
		if name == "" {
			errs = append(errs, fmt.Errorf("%s.attribute is required", field))
			continue
		}
		key := domain.SquashAttribute(name)
		if prev, dup := seen[key]; dup {
			errs = append(errs, fmt.Errorf("%s: duplicate attribute %q (first at index %d)", field, name, prev))
		} else {
			seen[key] = i
		}
		if len(a.Evidence) > maxEvidenceLen {
			errs = append(errs, fmt.Errorf("%s.evidence exceeds %d characters", field, maxEvidenceLen))
		}
	}

	if s := schema.Summary; s != nil {
		for i, text := range s.AreasNeedingAttention {
			if strings.TrimSpace(text) == "" {
				errs = append(errs, fmt.Errorf("summary.areasNeedingAttention[%d] is empty", i))
			}
		}
		for i, text := range s.KeyStrengths {
			if strings.TrimSpace(text) == "" {
				errs = append(errs, fmt.Errorf("summary.keyStrengths[%d] is empty", i))
			}
		}
	}

	return errs
}
