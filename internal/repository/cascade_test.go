package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/sprout/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCascadeDelete_StudentToReports verifies that deleting a student cascades to their reports.
func TestCascadeDelete_StudentToReports(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	students := NewSQLiteStudentRepo(db)
	reports := NewSQLiteReportRepo(db)

	s := testutil.NewTestStudent("Mia", "Grade 3")
	require.NoError(t, students.Create(ctx, s))
	rep := testutil.NewTestReport(s.ID, "Grade 3", testutil.WithAttribute("Caring", "Kind"))
	require.NoError(t, reports.Create(ctx, rep))

	require.NoError(t, students.Delete(ctx, s.ID))

	_, err := reports.GetByID(ctx, rep.ID)
	assert.ErrorIs(t, err, ErrNotFound, "report should be cascade-deleted with the student")
}

// TestCascadeDelete_StudentToActivities verifies students -> current_activities cascade.
func TestCascadeDelete_StudentToActivities(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	students := NewSQLiteStudentRepo(db)
	activities := NewSQLiteCurrentActivityRepo(db)

	s := testutil.NewTestStudent("Mia", "Grade 3")
	require.NoError(t, students.Create(ctx, s))
	require.NoError(t, activities.Create(ctx, testutil.NewTestActivity(s.ID, "Swimming")))
	require.NoError(t, activities.Create(ctx, testutil.NewTestActivity(s.ID, "Piano")))

	require.NoError(t, students.Delete(ctx, s.ID))

	left, err := activities.ListByStudent(ctx, s.ID)
	require.NoError(t, err)
	assert.Empty(t, left)
}

// TestCascadeDelete_LeavesOtherStudents verifies the cascade is scoped to one student.
func TestCascadeDelete_LeavesOtherStudents(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	students := NewSQLiteStudentRepo(db)
	reports := NewSQLiteReportRepo(db)
	activities := NewSQLiteCurrentActivityRepo(db)

	gone := testutil.NewTestStudent("Mia", "Grade 3")
	kept := testutil.NewTestStudent("Leo", "EYP 3")
	require.NoError(t, students.Create(ctx, gone))
	require.NoError(t, students.Create(ctx, kept))
	require.NoError(t, reports.Create(ctx, testutil.NewTestReport(gone.ID, "Grade 3")))
	keptReport := testutil.NewTestReport(kept.ID, "EYP 3")
	require.NoError(t, reports.Create(ctx, keptReport))
	require.NoError(t, activities.Create(ctx, testutil.NewTestActivity(kept.ID, "Drama")))

	require.NoError(t, students.Delete(ctx, gone.ID))

	got, err := reports.Latest(ctx, kept.ID)
	require.NoError(t, err)
	assert.Equal(t, keptReport.ID, got.ID)

	acts, err := activities.ListByStudent(ctx, kept.ID)
	require.NoError(t, err)
	assert.Len(t, acts, 1)
}
