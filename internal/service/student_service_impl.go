package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/sprout/internal/db"
	"github.com/alexanderramin/sprout/internal/domain"
	"github.com/alexanderramin/sprout/internal/repository"
	"github.com/google/uuid"
)

type studentService struct {
	students repository.StudentRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewStudentService(students repository.StudentRepo, uow db.UnitOfWork, observers ...UseCaseObserver) StudentService {
	return &studentService{students: students, uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *studentService) Create(ctx context.Context, st *domain.Student, activities []string) (err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"activity_count": len(activities)}
	defer observe(ctx, s.observer, "create-student", startedAt, fields, &err)

	if err := st.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	if st.MonthlyBudget != nil && (!finite(*st.MonthlyBudget) || *st.MonthlyBudget < 0) {
		return fmt.Errorf("%w: monthly budget must be a non-negative number", ErrInvalidRequest)
	}
	if st.ID == "" {
		st.ID = uuid.New().String()
	}
	st.Name = strings.TrimSpace(st.Name)
	st.Grade = strings.TrimSpace(st.Grade)
	st.CreatedAt = startedAt
	st.UpdatedAt = startedAt
	fields["student_id"] = st.DisplayID()

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txStudents := repository.NewSQLiteStudentRepo(tx)
		txActivities := repository.NewSQLiteCurrentActivityRepo(tx)

		if err := txStudents.Create(ctx, st); err != nil {
			return err
		}
		seen := make(map[string]bool, len(activities))
		for _, name := range activities {
			name = strings.TrimSpace(name)
			key := strings.ToLower(name)
			if name == "" || seen[key] {
				continue
			}
			seen[key] = true
			a := &domain.CurrentActivity{
				ID:        uuid.New().String(),
				StudentID: st.ID,
				Name:      name,
				CreatedAt: startedAt,
			}
			if err := txActivities.Create(ctx, a); err != nil {
				return fmt.Errorf("recording activity %q: %w", name, err)
			}
		}
		return nil
	})
}

func (s *studentService) Get(ctx context.Context, ref string) (*domain.Student, error) {
	return resolveStudent(ctx, s.students, ref)
}

func (s *studentService) List(ctx context.Context) ([]*domain.Student, error) {
	return s.students.List(ctx)
}

func (s *studentService) Update(ctx context.Context, st *domain.Student) error {
	if err := st.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	if st.MonthlyBudget != nil && (!finite(*st.MonthlyBudget) || *st.MonthlyBudget < 0) {
		return fmt.Errorf("%w: monthly budget must be a non-negative number", ErrInvalidRequest)
	}
	st.UpdatedAt = time.Now().UTC()
	if err := s.students.Update(ctx, st); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: %q", ErrStudentNotFound, st.ID)
		}
		return err
	}
	return nil
}

// Delete removes the student; reports and current activities go with it.
func (s *studentService) Delete(ctx context.Context, ref string) (err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"ref": ref}
	defer observe(ctx, s.observer, "delete-student", startedAt, fields, &err)

	st, err := resolveStudent(ctx, s.students, ref)
	if err != nil {
		return err
	}
	return s.students.Delete(ctx, st.ID)
}
