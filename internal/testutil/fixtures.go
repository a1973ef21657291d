package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/sprout/internal/domain"
)

type StudentOption func(*domain.Student)

func WithHomeAddress(addr string) StudentOption {
	return func(s *domain.Student) {
		s.HomeAddress = addr
	}
}

func WithMonthlyBudget(b float64) StudentOption {
	return func(s *domain.Student) {
		s.MonthlyBudget = &b
	}
}

func NewTestStudent(name, grade string, opts ...StudentOption) *domain.Student {
	now := time.Now().UTC().Truncate(time.Second)
	s := &domain.Student{
		ID:        uuid.New().String(),
		Name:      name,
		Grade:     grade,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

type ReportOption func(*domain.Report)

// WithAttribute appends a learner-profile line.
func WithAttribute(attr, evidence string) ReportOption {
	return func(r *domain.Report) {
		r.LearnerProfileAttributes = append(r.LearnerProfileAttributes, domain.ProfileAttribute{
			Attribute: attr,
			Evidence:  evidence,
		})
	}
}

func WithSummary(areasNeedingAttention, keyStrengths []string) ReportOption {
	return func(r *domain.Report) {
		r.Summary = &domain.ReportSummary{
			AreasNeedingAttention: areasNeedingAttention,
			KeyStrengths:          keyStrengths,
		}
	}
}

func WithTerm(term string) ReportOption {
	return func(r *domain.Report) {
		r.Term = term
	}
}

func WithCreatedAt(t time.Time) ReportOption {
	return func(r *domain.Report) {
		r.CreatedAt = t
	}
}

func NewTestReport(studentID, grade string, opts ...ReportOption) *domain.Report {
	r := &domain.Report{
		ID:        uuid.New().String(),
		StudentID: studentID,
		Grade:     grade,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

func NewTestActivity(studentID, name string) *domain.CurrentActivity {
	return &domain.CurrentActivity{
		ID:        uuid.New().String(),
		StudentID: studentID,
		Name:      name,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
}
