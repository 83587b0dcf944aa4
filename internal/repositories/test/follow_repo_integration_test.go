package repositories_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/jaronheard/soonlist-turbo-sub000/internal/models/po"
	"github.com/jaronheard/soonlist-turbo-sub000/internal/repositories"
)

func TestFollowRepositoryEventFollows(t *testing.T) {
	resetDatabase(t)
	ctx := context.Background()
	repo := repositories.NewFollowRepository(testPool, stdLogger)

	owner := seedUser(t, "owner")
	viewer := seedUser(t, "viewer")
	event := seedEvent(t, owner.ID, po.VisibilityPublic)

	first := time.Now().UTC().Truncate(time.Microsecond)
	inserted, err := repo.FollowEvent(ctx, nil, viewer.ID, event.ID, first)
	require.NoError(t, err)
	require.True(t, inserted)

	inserted, err = repo.FollowEvent(ctx, nil, viewer.ID, event.ID, first.Add(time.Minute))
	require.NoError(t, err)
	require.False(t, inserted)

	follow, err := repo.GetEventFollow(ctx, nil, viewer.ID, event.ID)
	require.NoError(t, err)
	require.True(t, first.Equal(follow.CreatedAt))

	page, err := repo.ListEventFollowsPage(ctx, nil, uuid.Nil, uuid.Nil, 10)
	require.NoError(t, err)
	require.Len(t, page, 1)
	require.Equal(t, owner.ID, page[0].EventOwnerID)

	removed, err := repo.UnfollowEvent(ctx, nil, viewer.ID, event.ID)
	require.NoError(t, err)
	require.True(t, first.Equal(removed.CreatedAt))

	_, err = repo.UnfollowEvent(ctx, nil, viewer.ID, event.ID)
	require.ErrorIs(t, err, repositories.ErrEventFollowNotFound)
}

func TestFollowRepositoryHasFollowReason(t *testing.T) {
	resetDatabase(t)
	ctx := context.Background()
	follows := repositories.NewFollowRepository(testPool, stdLogger)
	lists := repositories.NewListRepository(testPool, stdLogger)

	owner := seedUser(t, "owner")
	viewer := seedUser(t, "viewer")
	event := seedEvent(t, owner.ID, po.VisibilityPublic)
	now := time.Now().UTC()

	has, err := follows.HasFollowReason(ctx, nil, viewer.ID, event.ID)
	require.NoError(t, err)
	require.False(t, has)

	list, err := lists.Create(ctx, nil, repositories.CreateListInput{ID: uuid.New(), OwnerID: owner.ID, Name: "weekend", CreatedAt: now})
	require.NoError(t, err)
	_, err = lists.AddMembership(ctx, nil, list.ID, event.ID, now)
	require.NoError(t, err)
	_, err = lists.Follow(ctx, nil, viewer.ID, list.ID, now)
	require.NoError(t, err)

	has, err = follows.HasFollowReason(ctx, nil, viewer.ID, event.ID)
	require.NoError(t, err)
	require.True(t, has)

	followers, err := lists.ListFollowerIDsByEvent(ctx, nil, event.ID)
	require.NoError(t, err)
	require.Equal(t, []uuid.UUID{viewer.ID}, followers)

	_, err = lists.Unfollow(ctx, nil, viewer.ID, list.ID)
	require.NoError(t, err)
	_, err = follows.FollowUser(ctx, nil, viewer.ID, owner.ID, now)
	require.NoError(t, err)

	has, err = follows.HasFollowReason(ctx, nil, viewer.ID, event.ID)
	require.NoError(t, err)
	require.True(t, has)

	require.NoError(t, follows.DeleteUserFollowsByUser(ctx, nil, owner.ID))
	has, err = follows.HasFollowReason(ctx, nil, viewer.ID, event.ID)
	require.NoError(t, err)
	require.False(t, has)
}
