package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/sprout/internal/testutil"
)

func TestStudentRepo_CreateAndGetByID(t *testing.T) {
	repo := NewSQLiteStudentRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	s := testutil.NewTestStudent("Mia", "EYP 3", testutil.WithMonthlyBudget(150), testutil.WithHomeAddress("1 Orchard Rd"))
	require.NoError(t, repo.Create(ctx, s))

	got, err := repo.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, s.Name, got.Name)
	assert.Equal(t, "EYP 3", got.Grade)
	assert.Equal(t, "1 Orchard Rd", got.HomeAddress)
	require.NotNil(t, got.MonthlyBudget)
	assert.Equal(t, 150.0, *got.MonthlyBudget)
	assert.True(t, s.CreatedAt.Equal(got.CreatedAt))
}

func TestStudentRepo_GetByID_NotFound(t *testing.T) {
	repo := NewSQLiteStudentRepo(testutil.NewTestDB(t))

	_, err := repo.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStudentRepo_GetByIDPrefix(t *testing.T) {
	repo := NewSQLiteStudentRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	a := testutil.NewTestStudent("Ava", "Grade 1")
	a.ID = "abc11111-0000"
	b := testutil.NewTestStudent("Ben", "Grade 2")
	b.ID = "abc22222-0000"
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	got, err := repo.GetByIDPrefix(ctx, "abc1")
	require.NoError(t, err)
	assert.Equal(t, "Ava", got.Name)

	_, err = repo.GetByIDPrefix(ctx, "abc")
	assert.ErrorIs(t, err, ErrAmbiguous)

	_, err = repo.GetByIDPrefix(ctx, "zzz")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStudentRepo_ListSortedByName(t *testing.T) {
	repo := NewSQLiteStudentRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	for _, name := range []string{"zoe", "Adam", "maya"} {
		require.NoError(t, repo.Create(ctx, testutil.NewTestStudent(name, "Grade 3")))
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Adam", list[0].Name)
	assert.Equal(t, "maya", list[1].Name)
	assert.Equal(t, "zoe", list[2].Name)
}

func TestStudentRepo_UpdateAndDelete(t *testing.T) {
	repo := NewSQLiteStudentRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	s := testutil.NewTestStudent("Mia", "Grade 1")
	require.NoError(t, repo.Create(ctx, s))

	s.Grade = "Grade 2"
	s.MonthlyBudget = nil
	require.NoError(t, repo.Update(ctx, s))
	got, err := repo.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "Grade 2", got.Grade)
	assert.Nil(t, got.MonthlyBudget)

	require.NoError(t, repo.Delete(ctx, s.ID))
	assert.ErrorIs(t, repo.Delete(ctx, s.ID), ErrNotFound)

	ghost := testutil.NewTestStudent("Ghost", "Grade 1")
	assert.ErrorIs(t, repo.Update(ctx, ghost), ErrNotFound)
}
