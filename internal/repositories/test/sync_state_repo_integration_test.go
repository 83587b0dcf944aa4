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

func TestSyncStateRepositoryAdvanceIsConditional(t *testing.T) {
	resetDatabase(t)
	ctx := context.Background()
	repo := repositories.NewSyncStateRepository(testPool, stdLogger)

	_, err := repo.Get(ctx, nil, "events_by_creator")
	require.ErrorIs(t, err, repositories.ErrSyncStateNotFound)

	now := time.Now().UTC()
	runID := uuid.New()
	state, err := repo.Start(ctx, nil, "events_by_creator", runID, po.SyncModeRebuild, now)
	require.NoError(t, err)
	require.Equal(t, po.SyncStatusRunning, state.Status)
	require.Equal(t, po.SyncModeRebuild, state.Mode)
	require.Empty(t, state.Cursor)

	advanced, err := repo.Advance(ctx, nil, repositories.AdvanceSyncStateInput{
		PipelineKey:    "events_by_creator",
		RunID:          runID,
		ExpectedCursor: "",
		Cursor:         "c1",
		LastNamespace:  "events_by_creator:u1",
		Processed:      100,
		Status:         po.SyncStatusRunning,
		UpdatedAt:      now,
	})
	require.NoError(t, err)
	require.True(t, advanced)

	// 重复投递的同一批次不再匹配 expected cursor
	advanced, err = repo.Advance(ctx, nil, repositories.AdvanceSyncStateInput{
		PipelineKey:    "events_by_creator",
		RunID:          runID,
		ExpectedCursor: "",
		Cursor:         "c1",
		Processed:      200,
		Status:         po.SyncStatusRunning,
		UpdatedAt:      now,
	})
	require.NoError(t, err)
	require.False(t, advanced)

	ok, err := repo.SetStatus(ctx, nil, "events_by_creator", uuid.New(), po.SyncStatusHalted, now)
	require.NoError(t, err)
	require.False(t, ok)
	ok, err = repo.SetStatus(ctx, nil, "events_by_creator", runID, po.SyncStatusHalted, now)
	require.NoError(t, err)
	require.True(t, ok)

	state, err = repo.Get(ctx, nil, "events_by_creator")
	require.NoError(t, err)
	require.Equal(t, po.SyncStatusHalted, state.Status)
	require.Equal(t, "c1", state.Cursor)
	require.Equal(t, int64(100), state.Processed)

	restarted, err := repo.Start(ctx, nil, "events_by_creator", uuid.New(), po.SyncModeRefresh, now)
	require.NoError(t, err)
	require.NotEqual(t, runID, restarted.RunID)
	require.Empty(t, restarted.Cursor)
	require.Zero(t, restarted.Processed)
	require.Equal(t, po.SyncModeRefresh, restarted.Mode)

	_, err = repo.Start(ctx, nil, "feed_entries", uuid.New(), po.SyncModeRebuild, now)
	require.NoError(t, err)
	states, err := repo.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, states, 2)
	require.Equal(t, "events_by_creator", states[0].PipelineKey)
	require.Equal(t, po.SyncModeRefresh, states[0].Mode)
	require.Equal(t, "feed_entries", states[1].PipelineKey)
}
