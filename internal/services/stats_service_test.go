package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jaronheard/soonlist-turbo-sub000/internal/models/po"
	"github.com/jaronheard/soonlist-turbo-sub000/internal/repositories"
	"github.com/jaronheard/soonlist-turbo-sub000/internal/services"
)

func TestStatsService_WeeklyWindowAndUpcoming(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	alice := h.createUser(t, "alice")
	h.createEvent(t, alice.ID, po.VisibilityPublic)
	h.createEvent(t, alice.ID, po.VisibilityPrivate)

	stats, err := h.stats.GetUserStats(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, alice.ID.String(), stats.UserID)
	require.Equal(t, 2, stats.CapturesThisWeek)
	require.Equal(t, 2, stats.UpcomingEvents)
	require.Equal(t, 2, stats.AllTimeEvents)
	require.EqualValues(t, 5, stats.WeeklyGoal)
	require.False(t, stats.GoalReached())

	h.clock.Advance(8 * 24 * time.Hour)
	h.createEvent(t, alice.ID, po.VisibilityPublic)
	_, err = h.backfill.StartRun(ctx, services.PipelineFeedEntries)
	require.NoError(t, err)
	h.drain(t)

	stats, err = h.stats.GetUserStats(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, 1, stats.CapturesThisWeek)
	require.Equal(t, 1, stats.UpcomingEvents)
	require.Equal(t, 3, stats.AllTimeEvents)
}

func TestStatsService_SelfFollowCountedOnce(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	alice := h.createUser(t, "alice")
	bob := h.createUser(t, "bob")
	event := h.createEvent(t, alice.ID, po.VisibilityPublic)

	require.NoError(t, h.capture.FollowEvent(ctx, alice.ID, event.ID))
	require.NoError(t, h.capture.FollowEvent(ctx, bob.ID, event.ID))
	h.drain(t)

	stats, err := h.stats.GetUserStats(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, 1, stats.AllTimeEvents)

	stats, err = h.stats.GetUserStats(ctx, "bob")
	require.NoError(t, err)
	require.Equal(t, 1, stats.AllTimeEvents)
	require.Equal(t, 0, stats.CapturesThisWeek)
	require.Equal(t, 1, stats.UpcomingEvents)
}

func TestStatsService_WeeklyGoal(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	goal := int32(1)
	carol, err := h.capture.CreateUser(ctx, services.CreateUserInput{Username: "carol", WeeklyGoal: &goal})
	require.NoError(t, err)
	h.createEvent(t, carol.ID, po.VisibilityPublic)

	stats, err := h.stats.GetUserStats(ctx, " carol ")
	require.NoError(t, err)
	require.EqualValues(t, 1, stats.WeeklyGoal)
	require.True(t, stats.GoalReached())
}

func TestStatsService_UnknownUser(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	_, err := h.stats.GetUserStats(ctx, "nobody")
	require.ErrorIs(t, err, repositories.ErrUserNotFound)

	_, err = h.stats.GetUserStats(ctx, "")
	require.ErrorIs(t, err, services.ErrInvalidArgument)
}

func TestStatsService_WeeklyGoalUpdateVisibleImmediately(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	alice := h.createUser(t, "alice")

	stats, err := h.stats.GetUserStats(ctx, "alice")
	require.NoError(t, err)
	require.EqualValues(t, 5, stats.WeeklyGoal)

	goal := int32(9)
	require.NoError(t, h.capture.UpdateWeeklyGoal(ctx, alice.ID, &goal))
	stats, err = h.stats.GetUserStats(ctx, "alice")
	require.NoError(t, err)
	require.EqualValues(t, 9, stats.WeeklyGoal)

	require.NoError(t, h.capture.UpdateWeeklyGoal(ctx, alice.ID, nil))
	stats, err = h.stats.GetUserStats(ctx, "alice")
	require.NoError(t, err)
	require.EqualValues(t, 5, stats.WeeklyGoal)
}

func TestStatsService_RecreatedUsernameResolvesToNewUser(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	first := h.createUser(t, "alice")
	h.createEvent(t, first.ID, po.VisibilityPublic)
	h.drain(t)

	stats, err := h.stats.GetUserStats(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, first.ID.String(), stats.UserID)

	require.NoError(t, h.capture.DeleteUser(ctx, first.ID))
	h.drain(t)
	_, err = h.stats.GetUserStats(ctx, "alice")
	require.ErrorIs(t, err, repositories.ErrUserNotFound)

	second := h.createUser(t, "alice")
	h.createEvent(t, second.ID, po.VisibilityPublic)
	h.drain(t)

	stats, err = h.stats.GetUserStats(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, second.ID.String(), stats.UserID)
	require.Equal(t, 1, stats.CapturesThisWeek)
	require.Equal(t, 1, stats.AllTimeEvents)
}

func TestStatsService_DeletedUserEvictedWhileCached(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	first := h.createUser(t, "alice")

	_, err := h.stats.GetUserStats(ctx, "alice")
	require.NoError(t, err)
	require.NoError(t, h.capture.DeleteUser(ctx, first.ID))
	second := h.createUser(t, "alice")
	h.createEvent(t, second.ID, po.VisibilityPublic)
	h.drain(t)

	stats, err := h.stats.GetUserStats(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, second.ID.String(), stats.UserID)
	require.Equal(t, 1, stats.CapturesThisWeek)
}
