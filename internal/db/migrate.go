package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema statements. Statements are idempotent so the
// whole list is replayed on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN has no IF NOT EXISTS.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS students (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		grade      TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS reports (
		id              TEXT PRIMARY KEY,
		student_id      TEXT NOT NULL REFERENCES students(id) ON DELETE CASCADE,
		grade           TEXT NOT NULL DEFAULT '',
		term            TEXT NOT NULL DEFAULT '',
		attributes_json TEXT NOT NULL DEFAULT '[]',
		summary_json    TEXT,
		created_at      TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_reports_student ON reports(student_id, created_at)`,

	`CREATE TABLE IF NOT EXISTS current_activities (
		id         TEXT PRIMARY KEY,
		student_id TEXT NOT NULL REFERENCES students(id) ON DELETE CASCADE,
		name       TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_current_activities_student ON current_activities(student_id)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_current_activities_name
		ON current_activities(student_id, name COLLATE NOCASE)`,

	// Imported reports remember the file they came from.
	`ALTER TABLE reports ADD COLUMN source_file TEXT NOT NULL DEFAULT ''`,

	// Per-student default location and budget, used when a request omits them.
	`ALTER TABLE students ADD COLUMN home_address TEXT NOT NULL DEFAULT ''`,
	`ALTER TABLE students ADD COLUMN monthly_budget REAL`,
}
