package db_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/alexanderramin/sprout/internal/db"
	"github.com/alexanderramin/sprout/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestUoW(t *testing.T) (*sql.DB, *db.SQLiteUnitOfWork) {
	t.Helper()
	database := testutil.NewTestDB(t)
	return database, db.NewSQLiteUnitOfWork(database)
}

func insertActivity(ctx context.Context, tx db.DBTX, id, studentID, name string) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO current_activities (id, student_id, name, created_at) VALUES (?, ?, ?, 'now')`,
		id, studentID, name)
	return err
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	database, uow := openTestUoW(t)
	s := testutil.NewTestStudent("Mia", "Grade 3")

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := testutil.InsertStudent(ctx, tx, s); err != nil {
			return err
		}
		return insertActivity(ctx, tx, "a1", s.ID, "Swimming")
	})
	require.NoError(t, err)

	assert.Equal(t, 1, testutil.CountRows(t, database, "students", s.ID))
	assert.Equal(t, 1, testutil.CountRows(t, database, "current_activities", s.ID))
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	database, uow := openTestUoW(t)
	s := testutil.NewTestStudent("Mia", "Grade 3")

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := testutil.InsertStudent(ctx, tx, s); err != nil {
			return err
		}
		return fmt.Errorf("deliberate failure")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deliberate failure")

	assert.Zero(t, testutil.CountRows(t, database, "students", s.ID), "student should not exist after rollback")
}

// A constraint violation half-way through leaves none of the earlier writes.
func TestWithinTx_RollbackOnDuplicateActivity(t *testing.T) {
	database, uow := openTestUoW(t)
	s := testutil.NewTestStudent("Mia", "Grade 3")

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := testutil.InsertStudent(ctx, tx, s); err != nil {
			return err
		}
		if err := insertActivity(ctx, tx, "a1", s.ID, "Piano"); err != nil {
			return err
		}
		return insertActivity(ctx, tx, "a2", s.ID, "PIANO")
	})
	require.Error(t, err)

	assert.Zero(t, testutil.CountRows(t, database, "students", ""))
	assert.Zero(t, testutil.CountRows(t, database, "current_activities", ""))
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	database, uow := openTestUoW(t)
	s := testutil.NewTestStudent("Mia", "Grade 3")

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = testutil.InsertStudent(ctx, tx, s)
			panic("boom")
		})
	})

	assert.Zero(t, testutil.CountRows(t, database, "students", s.ID), "student should not exist after panic rollback")
}
