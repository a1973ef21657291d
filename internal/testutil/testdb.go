package testutil

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/alexanderramin/sprout/internal/db"
	"github.com/alexanderramin/sprout/internal/domain"
)

// NewTestDB creates an in-memory sprout database with the schema applied.
// The database is closed when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// NewTestUoW creates a UnitOfWork backed by the given test database.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}

// InsertStudent writes a bare student row through conn, bypassing the
// repositories. Tests below the repository layer use it to get a valid
// parent row for reports and activities.
func InsertStudent(ctx context.Context, conn db.DBTX, s *domain.Student) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := conn.ExecContext(ctx,
		`INSERT INTO students (id, name, grade, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		s.ID, s.Name, s.Grade, now, now)
	return err
}

// CountRows returns the number of rows in a sprout table for one student.
// Pass an empty studentID to count the whole table.
func CountRows(t *testing.T, conn db.DBTX, table, studentID string) int {
	t.Helper()
	query := "SELECT COUNT(*) FROM " + table
	var args []any
	if studentID != "" {
		col := "student_id"
		if table == "students" {
			col = "id"
		}
		query += " WHERE " + col + " = ?"
		args = append(args, studentID)
	}
	var n int
	if err := conn.QueryRowContext(context.Background(), query, args...).Scan(&n); err != nil {
		t.Fatalf("counting %s: %v", table, err)
	}
	return n
}
