package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A database created before source_file and the student defaults existed
// keeps its rows and gains the new columns with their defaults.
func TestMigrate_UpgradeFromFirstSchema(t *testing.T) {
	db, err := sql.Open("sqlite", MemoryPath)
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	legacy := []string{
		`CREATE TABLE students (
			id TEXT PRIMARY KEY, name TEXT NOT NULL, grade TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL, updated_at TEXT NOT NULL
		)`,
		`CREATE TABLE reports (
			id TEXT PRIMARY KEY,
			student_id TEXT NOT NULL REFERENCES students(id) ON DELETE CASCADE,
			grade TEXT NOT NULL DEFAULT '', term TEXT NOT NULL DEFAULT '',
			attributes_json TEXT NOT NULL DEFAULT '[]', summary_json TEXT,
			created_at TEXT NOT NULL
		)`,
		`INSERT INTO students (id, name, grade, created_at, updated_at) VALUES ('s1', 'Mia', 'Grade 2', 'now', 'now')`,
		`INSERT INTO reports (id, student_id, created_at) VALUES ('r1', 's1', 'now')`,
	}
	for _, stmt := range legacy {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}

	require.NoError(t, Migrate(db))

	var source string
	require.NoError(t, db.QueryRow(`SELECT source_file FROM reports WHERE id = 'r1'`).Scan(&source))
	assert.Equal(t, "", source)

	var addr string
	var budget sql.NullFloat64
	require.NoError(t, db.QueryRow(`SELECT home_address, monthly_budget FROM students WHERE id = 's1'`).Scan(&addr, &budget))
	assert.Equal(t, "", addr)
	assert.False(t, budget.Valid)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE name = 'current_activities'`).Scan(&n))
	assert.Equal(t, 1, n)
}
