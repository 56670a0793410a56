package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/lessonlog/internal/domain"
	"github.com/alexanderramin/lessonlog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsRepo_Get_DefaultSeededSettings(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSettingsRepo(db)

	s, err := repo.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, s.CurrentWeek)
	assert.Empty(t, s.WeekStartDate)
	assert.Empty(t, s.ActiveTeacher)
	assert.Empty(t, s.Subjects)
	assert.Empty(t, s.Classes)
}

func TestSettingsRepo_Upsert_UpdatesSettings(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSettingsRepo(db)
	ctx := context.Background()

	updated := &domain.Settings{
		CurrentWeek:   7,
		WeekStartDate: "2024-10-14",
		ActiveTeacher: testutil.DefaultTeacher,
		Subjects:      []string{"Toán", "Tin học"},
		Classes:       []string{"6A", "6B"},
	}
	require.NoError(t, repo.Upsert(ctx, updated))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestSettingsRepo_Get_NotFoundWhenDefaultDeleted(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSettingsRepo(db)

	_, err := db.Exec(`DELETE FROM settings WHERE id = 'default'`)
	require.NoError(t, err)

	_, err = repo.Get(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestWeekStateRepo_GetSet(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteWeekStateRepo(db)
	ctx := context.Background()

	state, err := repo.Get(ctx, "Lan", 3)
	require.NoError(t, err)
	assert.Equal(t, domain.WeekEmpty, state, "unrecorded weeks are empty")

	require.NoError(t, repo.Set(ctx, "Lan", 3, domain.WeekGenerated))
	require.NoError(t, repo.Set(ctx, " LAN ", 3, domain.WeekEdited))
	require.NoError(t, repo.Set(ctx, "Lan", 4, domain.WeekGenerated))
	require.NoError(t, repo.Set(ctx, "Hùng", 3, domain.WeekGenerated))

	state, err = repo.Get(ctx, "lan", 3)
	require.NoError(t, err)
	assert.Equal(t, domain.WeekEdited, state)

	state, err = repo.Get(ctx, "Lan", 4)
	require.NoError(t, err)
	assert.Equal(t, domain.WeekGenerated, state)

	state, err = repo.Get(ctx, "Hùng", 3)
	require.NoError(t, err)
	assert.Equal(t, domain.WeekGenerated, state, "states are kept per teacher")

	assert.Error(t, repo.Set(ctx, "Lan", 5, "archived"))
}
