package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/sprout/internal/domain"
	"github.com/alexanderramin/sprout/internal/testutil"
)

func reportTestSetup(t *testing.T) (*SQLiteReportRepo, string) {
	t.Helper()
	db := testutil.NewTestDB(t)
	s := testutil.NewTestStudent("Mia", "Grade 2")
	require.NoError(t, NewSQLiteStudentRepo(db).Create(context.Background(), s))
	return NewSQLiteReportRepo(db), s.ID
}

func TestReportRepo_RoundTripsAttributesAndSummary(t *testing.T) {
	repo, studentID := reportTestSetup(t)
	ctx := context.Background()

	rep := testutil.NewTestReport(studentID, "Grade 2",
		testutil.WithTerm("Term 1"),
		testutil.WithAttribute("Risk-taker", "Needs encouragement to try new things"),
		testutil.WithAttribute("Communicator", "Speaks confidently"),
		testutil.WithSummary([]string{"thinker"}, []string{"caring"}),
	)
	rep.SourceFile = "term1.json"
	require.NoError(t, repo.Create(ctx, rep))

	got, err := repo.GetByID(ctx, rep.ID)
	require.NoError(t, err)
	assert.Equal(t, rep.LearnerProfileAttributes, got.LearnerProfileAttributes)
	require.NotNil(t, got.Summary)
	assert.Equal(t, []string{"thinker"}, got.Summary.AreasNeedingAttention)
	assert.Equal(t, []string{"caring"}, got.Summary.KeyStrengths)
	assert.Equal(t, "Term 1", got.Term)
	assert.Equal(t, "term1.json", got.SourceFile)
}

func TestReportRepo_NoSummaryStaysNil(t *testing.T) {
	repo, studentID := reportTestSetup(t)
	ctx := context.Background()

	rep := testutil.NewTestReport(studentID, "Grade 2")
	require.NoError(t, repo.Create(ctx, rep))

	got, err := repo.GetByID(ctx, rep.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Summary)
	assert.Empty(t, got.LearnerProfileAttributes)
}

func TestReportRepo_LatestAndList(t *testing.T) {
	repo, studentID := reportTestSetup(t)
	ctx := context.Background()

	base := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	older := testutil.NewTestReport(studentID, "Grade 1", testutil.WithCreatedAt(base))
	newer := testutil.NewTestReport(studentID, "Grade 2", testutil.WithCreatedAt(base.AddDate(0, 6, 0)))
	require.NoError(t, repo.Create(ctx, newer))
	require.NoError(t, repo.Create(ctx, older))

	latest, err := repo.Latest(ctx, studentID)
	require.NoError(t, err)
	assert.Equal(t, newer.ID, latest.ID)

	list, err := repo.ListByStudent(ctx, studentID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer.ID, list[0].ID)
	assert.Equal(t, older.ID, list[1].ID)
}

func TestReportRepo_LatestNotFound(t *testing.T) {
	repo, studentID := reportTestSetup(t)

	_, err := repo.Latest(context.Background(), studentID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReportRepo_RejectsUnknownStudent(t *testing.T) {
	repo, _ := reportTestSetup(t)

	err := repo.Create(context.Background(), testutil.NewTestReport("missing", "Grade 1",
		testutil.WithAttribute(domain.AttrCaring, "")))
	assert.Error(t, err)
}
