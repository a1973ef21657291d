package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/sprout/internal/db"
	"github.com/alexanderramin/sprout/internal/domain"
)

// SQLiteStudentRepo implements StudentRepo using a SQLite database.
type SQLiteStudentRepo struct {
	db db.DBTX
}

func NewSQLiteStudentRepo(conn db.DBTX) *SQLiteStudentRepo {
	return &SQLiteStudentRepo{db: conn}
}

const studentColumns = `id, name, grade, home_address, monthly_budget, created_at, updated_at`

func (r *SQLiteStudentRepo) Create(ctx context.Context, s *domain.Student) error {
	query := `INSERT INTO students (` + studentColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.Name,
		s.Grade,
		s.HomeAddress,
		nullableFloat(s.MonthlyBudget),
		formatTime(s.CreatedAt),
		formatTime(s.UpdatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("student %s: %w", s.ID, ErrDuplicate)
		}
		return fmt.Errorf("inserting student: %w", err)
	}
	return nil
}

func (r *SQLiteStudentRepo) GetByID(ctx context.Context, id string) (*domain.Student, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+studentColumns+` FROM students WHERE id = ?`, id)
	return scanStudent(row)
}

func (r *SQLiteStudentRepo) GetByIDPrefix(ctx context.Context, prefix string) (*domain.Student, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+studentColumns+` FROM students WHERE id LIKE ? || '%' ORDER BY id LIMIT 2`, prefix)
	if err != nil {
		return nil, fmt.Errorf("finding student by prefix: %w", err)
	}
	defer rows.Close()
	students, err := scanStudents(rows)
	if err != nil {
		return nil, err
	}
	switch len(students) {
	case 0:
		return nil, fmt.Errorf("student %q: %w", prefix, ErrNotFound)
	case 1:
		return students[0], nil
	default:
		return nil, fmt.Errorf("student %q: %w", prefix, ErrAmbiguous)
	}
}

func (r *SQLiteStudentRepo) List(ctx context.Context) ([]*domain.Student, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+studentColumns+` FROM students ORDER BY name COLLATE NOCASE, created_at`)
	if err != nil {
		return nil, fmt.Errorf("listing students: %w", err)
	}
	defer rows.Close()
	return scanStudents(rows)
}

func (r *SQLiteStudentRepo) Update(ctx context.Context, s *domain.Student) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE students SET name = ?, grade = ?, home_address = ?, monthly_budget = ?, updated_at = ? WHERE id = ?`,
		s.Name, s.Grade, s.HomeAddress, nullableFloat(s.MonthlyBudget), formatTime(s.UpdatedAt), s.ID)
	if err != nil {
		return fmt.Errorf("updating student: %w", err)
	}
	return expectOneRow(res, "student")
}

func (r *SQLiteStudentRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM students WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting student: %w", err)
	}
	return expectOneRow(res, "student")
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanStudentRow(sc rowScanner) (*domain.Student, error) {
	var s domain.Student
	var budget sql.NullFloat64
	var createdAt, updatedAt string
	if err := sc.Scan(&s.ID, &s.Name, &s.Grade, &s.HomeAddress, &budget, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	s.MonthlyBudget = floatPtr(budget)
	s.CreatedAt = parseTime(createdAt)
	s.UpdatedAt = parseTime(updatedAt)
	return &s, nil
}

func scanStudent(row *sql.Row) (*domain.Student, error) {
	s, err := scanStudentRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("student: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning student: %w", err)
	}
	return s, nil
}

func scanStudents(rows *sql.Rows) ([]*domain.Student, error) {
	var out []*domain.Student
	for rows.Next() {
		s, err := scanStudentRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning student: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func expectOneRow(res sql.Result, what string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking %s rows affected: %w", what, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return nil
}
