package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/sprout/internal/db"
	"github.com/alexanderramin/sprout/internal/domain"
)

// SQLiteCurrentActivityRepo implements CurrentActivityRepo. Names are unique
// per student, ignoring case.
type SQLiteCurrentActivityRepo struct {
	db db.DBTX
}

func NewSQLiteCurrentActivityRepo(conn db.DBTX) *SQLiteCurrentActivityRepo {
	return &SQLiteCurrentActivityRepo{db: conn}
}

func (r *SQLiteCurrentActivityRepo) Create(ctx context.Context, a *domain.CurrentActivity) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO current_activities (id, student_id, name, created_at) VALUES (?, ?, ?, ?)`,
		a.ID, a.StudentID, a.Name, formatTime(a.CreatedAt))
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("activity %q: %w", a.Name, ErrDuplicate)
		}
		return fmt.Errorf("inserting current activity: %w", err)
	}
	return nil
}

func (r *SQLiteCurrentActivityRepo) ListByStudent(ctx context.Context, studentID string) ([]*domain.CurrentActivity, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, student_id, name, created_at FROM current_activities
		WHERE student_id = ? ORDER BY created_at, rowid`, studentID)
	if err != nil {
		return nil, fmt.Errorf("listing current activities: %w", err)
	}
	defer rows.Close()

	var out []*domain.CurrentActivity
	for rows.Next() {
		var a domain.CurrentActivity
		var createdAt string
		if err := rows.Scan(&a.ID, &a.StudentID, &a.Name, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning current activity: %w", err)
		}
		a.CreatedAt = parseTime(createdAt)
		out = append(out, &a)
	}
	return out, rows.Err()
}

func (r *SQLiteCurrentActivityRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM current_activities WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting current activity: %w", err)
	}
	return expectOneRow(res, "current activity")
}

func (r *SQLiteCurrentActivityRepo) DeleteByName(ctx context.Context, studentID, name string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM current_activities WHERE student_id = ? AND name = ? COLLATE NOCASE`, studentID, name)
	if err != nil {
		return fmt.Errorf("deleting current activity: %w", err)
	}
	return expectOneRow(res, "current activity")
}
