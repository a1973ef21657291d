package service

import (
	"context"
	"io"

	"github.com/alexanderramin/sprout/internal/contract"
	"github.com/alexanderramin/sprout/internal/domain"
)

// Student references accepted by the services below are either a full ID
// or a unique ID prefix such as the 8-character display ID.

type StudentService interface {
	// Create stores the student and any initial current activities in one transaction.
	Create(ctx context.Context, s *domain.Student, activities []string) error
	Get(ctx context.Context, ref string) (*domain.Student, error)
	List(ctx context.Context) ([]*domain.Student, error)
	Update(ctx context.Context, s *domain.Student) error
	Delete(ctx context.Context, ref string) error
}

type ReportService interface {
	Import(ctx context.Context, studentRef string, r io.Reader, sourceFile string) (*domain.Report, error)
	ImportFile(ctx context.Context, studentRef, path string) (*domain.Report, error)
	Latest(ctx context.Context, studentRef string) (*domain.Report, error)
	List(ctx context.Context, studentRef string) ([]*domain.Report, error)
}

type ActivityService interface {
	Add(ctx context.Context, studentRef, name string) (*domain.CurrentActivity, error)
	List(ctx context.Context, studentRef string) ([]*domain.CurrentActivity, error)
	Remove(ctx context.Context, studentRef, name string) error
}

type RecommendationService interface {
	Recommend(ctx context.Context, req contract.RecommendationRequest) (*contract.RecommendationResponse, error)
	Evaluate(ctx context.Context, studentRef string) ([]contract.CurrentActivityEvaluation, error)
	ParentActions(ctx context.Context, studentRef string) ([]contract.ParentAction, error)
}
