package repository

import (
	"context"

	"github.com/alexanderramin/sprout/internal/domain"
)

type StudentRepo interface {
	Create(ctx context.Context, s *domain.Student) error
	GetByID(ctx context.Context, id string) (*domain.Student, error)
	// GetByIDPrefix resolves a short display ID.
	GetByIDPrefix(ctx context.Context, prefix string) (*domain.Student, error)
	List(ctx context.Context) ([]*domain.Student, error)
	Update(ctx context.Context, s *domain.Student) error
	Delete(ctx context.Context, id string) error
}

type ReportRepo interface {
	Create(ctx context.Context, r *domain.Report) error
	GetByID(ctx context.Context, id string) (*domain.Report, error)
	// Latest returns the most recently imported report for a student.
	Latest(ctx context.Context, studentID string) (*domain.Report, error)
	ListByStudent(ctx context.Context, studentID string) ([]*domain.Report, error)
	Delete(ctx context.Context, id string) error
}

type CurrentActivityRepo interface {
	Create(ctx context.Context, a *domain.CurrentActivity) error
	ListByStudent(ctx context.Context, studentID string) ([]*domain.CurrentActivity, error)
	Delete(ctx context.Context, id string) error
	DeleteByName(ctx context.Context, studentID, name string) error
}
