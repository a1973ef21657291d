package importer

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
)

// ReportImport is the top-level JSON structure of a parsed school report.
// Extraction from the PDF (OCR, AI parsing) happens upstream; this is the
// shape it hands over.
type ReportImport struct {
	StudentName              string            `json:"studentName,omitempty"`
	Grade                    string            `json:"grade"`
	Term                     string            `json:"term,omitempty"`
	LearnerProfileAttributes []AttributeImport `json:"learnerProfileAttributes"`
	Summary                  *SummaryImport    `json:"summary,omitempty"`
}

// AttributeImport is one learner-profile line of the report.
type AttributeImport struct {
	Attribute string `json:"attribute"`
	Evidence  string `json:"evidence"`
}

// SummaryImport holds the free-text summary lists from the report.
type SummaryImport struct {
	AreasNeedingAttention []string `json:"areasNeedingAttention,omitempty"`
	KeyStrengths          []string `json:"keyStrengths,omitempty"`
}

// ParseReport decodes a report import document from r.
func ParseReport(r io.Reader) (*ReportImport, error) {
	var schema ReportImport
	if err := json.NewDecoder(r).Decode(&schema); err != nil {
		return nil, fmt.Errorf("parsing report: %w", err)
	}
	return &schema, nil
}

// LoadReport reads and parses a report import JSON file.
func LoadReport(path string) (*ReportImport, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseReport(f)
}
