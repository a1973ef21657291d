package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/sprout/internal/testutil"
)

func activityTestSetup(t *testing.T) (*SQLiteCurrentActivityRepo, string) {
	t.Helper()
	db := testutil.NewTestDB(t)
	s := testutil.NewTestStudent("Mia", "Grade 2")
	require.NoError(t, NewSQLiteStudentRepo(db).Create(context.Background(), s))
	return NewSQLiteCurrentActivityRepo(db), s.ID
}

func TestCurrentActivityRepo_CreateListDelete(t *testing.T) {
	repo, studentID := activityTestSetup(t)
	ctx := context.Background()

	swim := testutil.NewTestActivity(studentID, "Swimming lessons")
	piano := testutil.NewTestActivity(studentID, "Piano")
	require.NoError(t, repo.Create(ctx, swim))
	require.NoError(t, repo.Create(ctx, piano))

	list, err := repo.ListByStudent(ctx, studentID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Swimming lessons", list[0].Name)
	assert.Equal(t, "Piano", list[1].Name)

	require.NoError(t, repo.Delete(ctx, swim.ID))
	require.NoError(t, repo.DeleteByName(ctx, studentID, "PIANO"))

	list, err = repo.ListByStudent(ctx, studentID)
	require.NoError(t, err)
	assert.Empty(t, list)

	assert.ErrorIs(t, repo.DeleteByName(ctx, studentID, "Piano"), ErrNotFound)
}

func TestCurrentActivityRepo_DuplicateName(t *testing.T) {
	repo, studentID := activityTestSetup(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestActivity(studentID, "Chess club")))
	err := repo.Create(ctx, testutil.NewTestActivity(studentID, "chess CLUB"))
	assert.ErrorIs(t, err, ErrDuplicate)
}
