package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/sprout/internal/domain"
	"github.com/alexanderramin/sprout/internal/repository"
	"github.com/google/uuid"
)

type activityService struct {
	students   repository.StudentRepo
	activities repository.CurrentActivityRepo
}

func NewActivityService(students repository.StudentRepo, activities repository.CurrentActivityRepo) ActivityService {
	return &activityService{students: students, activities: activities}
}

func (s *activityService) Add(ctx context.Context, studentRef, name string) (*domain.CurrentActivity, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: activity name is required", ErrInvalidRequest)
	}
	student, err := resolveStudent(ctx, s.students, studentRef)
	if err != nil {
		return nil, err
	}

	a := &domain.CurrentActivity{
		ID:        uuid.New().String(),
		StudentID: student.ID,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.activities.Create(ctx, a); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("%w: %q", ErrActivityExists, name)
		}
		return nil, err
	}
	return a, nil
}

func (s *activityService) List(ctx context.Context, studentRef string) ([]*domain.CurrentActivity, error) {
	student, err := resolveStudent(ctx, s.students, studentRef)
	if err != nil {
		return nil, err
	}
	return s.activities.ListByStudent(ctx, student.ID)
}

func (s *activityService) Remove(ctx context.Context, studentRef, name string) error {
	student, err := resolveStudent(ctx, s.students, studentRef)
	if err != nil {
		return err
	}
	if err := s.activities.DeleteByName(ctx, student.ID, strings.TrimSpace(name)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: %q", ErrActivityNotFound, name)
		}
		return err
	}
	return nil
}
