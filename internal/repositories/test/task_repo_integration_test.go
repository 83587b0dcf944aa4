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

func TestTaskRepositoryClaimLifecycle(t *testing.T) {
	resetDatabase(t)
	ctx := context.Background()
	repo := repositories.NewTaskRepository(testPool, stdLogger)

	now := time.Now().UTC().Truncate(time.Microsecond)
	due := po.Task{ID: uuid.New(), Name: "feed.event_upserted", Payload: []byte(`{"eventId":"x"}`), RunAfter: now, CreatedAt: now}
	later := po.Task{ID: uuid.New(), Name: "feed.backfill_batch", RunAfter: now.Add(time.Minute), CreatedAt: now}
	require.NoError(t, repo.Insert(ctx, nil, due))
	require.NoError(t, repo.Insert(ctx, nil, later))

	claimed, err := repo.ClaimDue(ctx, now, 30*time.Second, 10)
	require.NoError(t, err)
	require.Len(t, claimed, 1)
	require.Equal(t, due.ID, claimed[0].ID)
	require.Equal(t, int32(1), claimed[0].Attempts)
	require.NotNil(t, claimed[0].LockedUntil)

	// 租约未过期时不会被再次领取
	claimed, err = repo.ClaimDue(ctx, now.Add(time.Second), 30*time.Second, 10)
	require.NoError(t, err)
	require.Empty(t, claimed)

	require.NoError(t, repo.Retry(ctx, due.ID, now.Add(2*time.Second), "boom"))
	claimed, err = repo.ClaimDue(ctx, now.Add(2*time.Second), 30*time.Second, 10)
	require.NoError(t, err)
	require.Len(t, claimed, 1)
	require.Equal(t, int32(2), claimed[0].Attempts)
	require.Equal(t, "boom", *claimed[0].LastError)

	require.NoError(t, repo.Complete(ctx, due.ID, now.Add(3*time.Second)))
	task, err := repo.Get(ctx, due.ID)
	require.NoError(t, err)
	require.Equal(t, po.TaskStatusDone, task.Status)
	require.NotNil(t, task.ProcessedAt)

	require.NoError(t, repo.Kill(ctx, later.ID, "bad payload", now))
	task, err = repo.Get(ctx, later.ID)
	require.NoError(t, err)
	require.Equal(t, po.TaskStatusDead, task.Status)

	claimed, err = repo.ClaimDue(ctx, now.Add(time.Hour), 30*time.Second, 10)
	require.NoError(t, err)
	require.Empty(t, claimed)

	_, err = repo.Get(ctx, uuid.New())
	require.ErrorIs(t, err, repositories.ErrTaskNotFound)
}
