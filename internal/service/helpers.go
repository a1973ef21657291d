package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/alexanderramin/sprout/internal/domain"
	"github.com/alexanderramin/sprout/internal/repository"
)

// resolveStudent looks a student up by full ID first, then by unique prefix.
func resolveStudent(ctx context.Context, students repository.StudentRepo, ref string) (*domain.Student, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, fmt.Errorf("%w: student reference is required", ErrInvalidRequest)
	}

	s, err := students.GetByID(ctx, ref)
	if err == nil {
		return s, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("loading student: %w", err)
	}

	s, err = students.GetByIDPrefix(ctx, ref)
	switch {
	case err == nil:
		return s, nil
	case errors.Is(err, repository.ErrNotFound):
		return nil, fmt.Errorf("%w: %q", ErrStudentNotFound, ref)
	case errors.Is(err, repository.ErrAmbiguous):
		return nil, fmt.Errorf("%w: %q", ErrStudentAmbiguous, ref)
	default:
		return nil, fmt.Errorf("loading student: %w", err)
	}
}

func activityNames(list []*domain.CurrentActivity) []string {
	names := make([]string, 0, len(list))
	for _, a := range list {
		names = append(names, a.Name)
	}
	return names
}

// finite rejects NaN and infinities, which flag parsing accepts.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
