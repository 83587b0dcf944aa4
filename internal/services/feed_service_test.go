package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/jaronheard/soonlist-turbo-sub000/internal/models/po"
	"github.com/jaronheard/soonlist-turbo-sub000/internal/services"
)

func TestFeedService_PaginatesByStartTime(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	alice := h.createUser(t, "alice")
	now := h.clock.Now()

	var want []string
	for i := 5; i > 0; i-- {
		event, err := h.capture.CreateEvent(ctx, services.CreateEventInput{
			OwnerID:   alice.ID,
			StartTime: now.Add(time.Duration(i) * time.Hour),
			EndTime:   now.Add(time.Duration(i)*time.Hour + 30*time.Minute),
		})
		require.NoError(t, err)
		want = append([]string{event.ID.String()}, want...)
	}
	h.drain(t)

	var got []string
	cursor := ""
	pages := 0
	for {
		resp, err := h.feeds.GetFeed(ctx, services.GetFeedInput{UserID: alice.ID.String(), Limit: 2, Cursor: cursor})
		require.NoError(t, err)
		require.LessOrEqual(t, len(resp.Items), 2)
		for _, item := range resp.Items {
			require.Equal(t, po.UserFeedID(alice.ID), item.FeedID)
			got = append(got, item.EventID)
		}
		pages++
		if resp.NextCursor == "" {
			break
		}
		cursor = resp.NextCursor
	}
	require.Equal(t, want, got)
	require.Equal(t, 3, pages)

	resp, err := h.feeds.GetFeed(ctx, services.GetFeedInput{FeedID: po.DiscoverFeedID})
	require.NoError(t, err)
	require.Len(t, resp.Items, 5)
	require.Empty(t, resp.NextCursor)
	require.Equal(t, h.clock.Now(), resp.GeneratedAt)
}

func TestFeedService_UpcomingOnly(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	alice := h.createUser(t, "alice")
	now := h.clock.Now()
	_, err := h.capture.CreateEvent(ctx, services.CreateEventInput{OwnerID: alice.ID, StartTime: now, EndTime: now.Add(time.Hour)})
	require.NoError(t, err)
	upcoming := h.createEvent(t, alice.ID, po.VisibilityPublic)

	h.clock.Advance(2 * time.Hour)
	_, err = h.backfill.StartRun(ctx, services.PipelineFeedEntries)
	require.NoError(t, err)
	h.drain(t)

	resp, err := h.feeds.GetFeed(ctx, services.GetFeedInput{UserID: alice.ID.String(), UpcomingOnly: true})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	require.Equal(t, upcoming.ID.String(), resp.Items[0].EventID)
	require.False(t, resp.Items[0].HasEnded)

	resp, err = h.feeds.GetFeed(ctx, services.GetFeedInput{UserID: alice.ID.String()})
	require.NoError(t, err)
	require.Len(t, resp.Items, 2)
	require.True(t, resp.Items[0].HasEnded)
}

func TestFeedService_RejectsBadInput(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	_, err := h.feeds.GetFeed(ctx, services.GetFeedInput{UserID: "not-a-uuid"})
	require.ErrorIs(t, err, services.ErrInvalidArgument)

	_, err = h.feeds.GetFeed(ctx, services.GetFeedInput{FeedID: "trending"})
	require.ErrorIs(t, err, services.ErrInvalidArgument)

	_, err = h.feeds.GetFeed(ctx, services.GetFeedInput{UserID: uuid.NewString(), Cursor: "%%%"})
	require.ErrorIs(t, err, services.ErrInvalidArgument)

	viewer := uuid.New()
	resp, err := h.feeds.GetFeed(ctx, services.GetFeedInput{UserID: viewer.String(), FeedID: po.UserFeedID(viewer), Limit: 1000})
	require.NoError(t, err)
	require.Empty(t, resp.Items)
}

func TestFeedService_UserFeedReadableOnlyByOwner(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	alice := h.createUser(t, "alice")
	bob := h.createUser(t, "bob")
	private := h.createEvent(t, alice.ID, po.VisibilityPrivate)
	h.drain(t)

	_, err := h.feeds.GetFeed(ctx, services.GetFeedInput{UserID: bob.ID.String(), FeedID: po.UserFeedID(alice.ID)})
	require.ErrorIs(t, err, services.ErrPermissionDenied)

	_, err = h.feeds.GetFeed(ctx, services.GetFeedInput{FeedID: po.UserFeedID(alice.ID)})
	require.ErrorIs(t, err, services.ErrInvalidArgument)

	resp, err := h.feeds.GetFeed(ctx, services.GetFeedInput{UserID: alice.ID.String(), FeedID: po.UserFeedID(alice.ID)})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	require.Equal(t, private.ID.String(), resp.Items[0].EventID)

	resp, err = h.feeds.GetFeed(ctx, services.GetFeedInput{UserID: bob.ID.String(), FeedID: po.DiscoverFeedID})
	require.NoError(t, err)
	require.Empty(t, resp.Items)
}
