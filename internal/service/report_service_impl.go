package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/alexanderramin/sprout/internal/db"
	"github.com/alexanderramin/sprout/internal/domain"
	"github.com/alexanderramin/sprout/internal/importer"
	"github.com/alexanderramin/sprout/internal/repository"
)

type reportService struct {
	students repository.StudentRepo
	reports  repository.ReportRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewReportService(
	students repository.StudentRepo,
	reports repository.ReportRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) ReportService {
	return &reportService{
		students: students,
		reports:  reports,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *reportService) ImportFile(ctx context.Context, studentRef, path string) (*domain.Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening report file: %w", err)
	}
	defer f.Close()
	return s.Import(ctx, studentRef, f, filepath.Base(path))
}

// Import stores a parsed report. The student's grade follows the report's,
// and both writes share one transaction.
func (s *reportService) Import(ctx context.Context, studentRef string, r io.Reader, sourceFile string) (report *domain.Report, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"source_file": sourceFile}
	defer observe(ctx, s.observer, "import-report", startedAt, fields, &err)

	schema, err := importer.ParseReport(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidReport, err)
	}
	if errs := importer.ValidateReport(schema); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	student, err := resolveStudent(ctx, s.students, studentRef)
	if err != nil {
		return nil, err
	}
	fields["student_id"] = student.DisplayID()

	report = importer.Convert(schema, student.ID, sourceFile)
	fields["attribute_count"] = len(report.LearnerProfileAttributes)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txReports := repository.NewSQLiteReportRepo(tx)
		txStudents := repository.NewSQLiteStudentRepo(tx)

		if err := txReports.Create(ctx, report); err != nil {
			return fmt.Errorf("storing report: %w", err)
		}
		if student.Grade != report.Grade {
			student.Grade = report.Grade
			student.UpdatedAt = startedAt
			if err := txStudents.Update(ctx, student); err != nil {
				return fmt.Errorf("updating student grade: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

func (s *reportService) Latest(ctx context.Context, studentRef string) (*domain.Report, error) {
	student, err := resolveStudent(ctx, s.students, studentRef)
	if err != nil {
		return nil, err
	}
	return latestReport(ctx, s.reports, student)
}

func (s *reportService) List(ctx context.Context, studentRef string) ([]*domain.Report, error) {
	student, err := resolveStudent(ctx, s.students, studentRef)
	if err != nil {
		return nil, err
	}
	return s.reports.ListByStudent(ctx, student.ID)
}

func latestReport(ctx context.Context, reports repository.ReportRepo, student *domain.Student) (*domain.Report, error) {
	report, err := reports.Latest(ctx, student.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNoReport, student.Name)
		}
		return nil, fmt.Errorf("loading latest report: %w", err)
	}
	return report, nil
}
