package domain

import (
	"fmt"
	"strings"
	"time"
)

type Student struct {
	ID    string
	Name  string
	Grade string
	// HomeAddress and MonthlyBudget are defaults for recommendation
	// requests that omit a location or budget.
	HomeAddress   string
	MonthlyBudget *float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Validate checks the fields required before a student is stored.
func (s *Student) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("student name is required")
	}
	if strings.TrimSpace(s.Grade) == "" {
		return fmt.Errorf("student grade is required (e.g. \"EYP 3\" or \"Grade 4\")")
	}
	return nil
}

// Age returns the approximate age derived from the student's grade.
func (s *Student) Age() int {
	return AgeFromGrade(s.Grade)
}

// DisplayID truncates ID to 8 characters for display.
func (s *Student) DisplayID() string {
	if len(s.ID) >= 8 {
		return s.ID[:8]
	}
	return s.ID
}

// CurrentActivity is an activity the child already attends, recorded by name only.
type CurrentActivity struct {
	ID        string
	StudentID string
	Name      string
	CreatedAt time.Time
}
