package repositories_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/jaronheard/soonlist-turbo-sub000/internal/repositories"
)

func TestUserRepositoryLookupAndGoal(t *testing.T) {
	resetDatabase(t)
	ctx := context.Background()
	repo := repositories.NewUserRepository(testPool, stdLogger)

	user := seedUser(t, "  grace  ")
	require.Equal(t, "grace", user.Username)
	require.Nil(t, user.WeeklyGoal)

	require.NoError(t, repo.UpdateWeeklyGoal(ctx, nil, user.ID, int32Ptr(7)))
	got, err := repo.GetByUsername(ctx, nil, "grace")
	require.NoError(t, err)
	require.Equal(t, int32(7), *got.WeeklyGoal)

	require.ErrorIs(t, repo.UpdateWeeklyGoal(ctx, nil, uuid.New(), nil), repositories.ErrUserNotFound)

	_, err = repo.GetByUsername(ctx, nil, "nobody")
	require.ErrorIs(t, err, repositories.ErrUserNotFound)

	deleted, err := repo.Delete(ctx, nil, user.ID)
	require.NoError(t, err)
	require.True(t, deleted)
	_, err = repo.Get(ctx, nil, user.ID)
	require.ErrorIs(t, err, repositories.ErrUserNotFound)
}
