package domain

import "time"

// ProfileAttribute is one learner-profile line from a school report.
type ProfileAttribute struct {
	Attribute string `json:"attribute"`
	Evidence  string `json:"evidence"`
}

// ReportSummary carries the free-text summary lists of a parsed report.
type ReportSummary struct {
	AreasNeedingAttention []string `json:"areasNeedingAttention"`
	KeyStrengths          []string `json:"keyStrengths"`
}

// Report is a parsed school report. Parsing itself (OCR, AI extraction)
// happens upstream; this is the read-only view the engine consumes.
type Report struct {
	ID                       string             `json:"id"`
	StudentID                string             `json:"studentId"`
	Grade                    string             `json:"grade"`
	Term                     string             `json:"term,omitempty"`
	LearnerProfileAttributes []ProfileAttribute `json:"learnerProfileAttributes"`
	Summary                  *ReportSummary     `json:"summary,omitempty"`
	SourceFile               string             `json:"sourceFile,omitempty"`
	CreatedAt                time.Time          `json:"createdAt"`
}
