package services_test

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/jaronheard/soonlist-turbo-sub000/internal/aggregate"
	"github.com/jaronheard/soonlist-turbo-sub000/internal/models/po"
	"github.com/jaronheard/soonlist-turbo-sub000/internal/services"
)

func (h *harness) setVisibility(t *testing.T, event *po.Event, visibility po.Visibility) {
	t.Helper()
	_, err := h.capture.UpdateEvent(context.Background(), services.UpdateEventInput{
		ActorID:    event.OwnerID,
		EventID:    event.ID,
		Visibility: visibility,
		StartTime:  event.StartTime,
		EndTime:    event.EndTime,
	})
	require.NoError(t, err)
	h.drain(t)
}

// expectedInFeed 直接从主库推导 user_<userID> 是否应包含事件。
func (h *harness) expectedInFeed(userID uuid.UUID, event po.Event) bool {
	if event.OwnerID == userID {
		return true
	}
	if event.Visibility != po.VisibilityPublic {
		return false
	}
	ok, _ := followStore{h.world}.HasFollowReason(context.Background(), nil, userID, event.ID)
	return ok
}

// requireConsistent 校验 Feed 成员关系、关注计数与索引镜像全部和主库一致。
func (h *harness) requireConsistent(t *testing.T) {
	t.Helper()
	h.world.mu.Lock()
	users := make([]uuid.UUID, 0, len(h.world.users))
	for id := range h.world.users {
		users = append(users, id)
	}
	events := make([]po.Event, 0, len(h.world.events))
	for _, e := range h.world.events {
		events = append(events, e)
	}
	follows := map[uuid.UUID]int{}
	for key := range h.world.eventFollows {
		if event, ok := h.world.events[key.b]; ok && event.OwnerID != key.a {
			follows[key.a]++
		}
	}
	h.world.mu.Unlock()

	for _, event := range events {
		require.Equal(t, event.Visibility == po.VisibilityPublic, h.hasEntry(po.DiscoverFeedID, event.ID),
			"discover membership of %s", event.ID)
		for _, userID := range users {
			require.Equal(t, h.expectedInFeed(userID, event), h.hasEntry(po.UserFeedID(userID), event.ID),
				"user %s event %s", userID, event.ID)
		}
	}
	for _, userID := range users {
		require.Equal(t, follows[userID], h.index.Count(aggregate.EventFollowsByUserNamespace(userID)), "follows of %s", userID)
	}
	h.requireIndexMatchesRows(t)
}

type snapshot struct {
	entries map[entryKey]po.FeedEntry
	items   map[string][]aggregate.Item
}

func (h *harness) snapshot() snapshot {
	h.world.mu.Lock()
	entries := make(map[entryKey]po.FeedEntry, len(h.world.entries))
	for k, v := range h.world.entries {
		entries[k] = v
	}
	h.world.mu.Unlock()
	items := map[string][]aggregate.Item{}
	for _, ns := range h.index.Namespaces() {
		if got := h.index.Items(ns); len(got) > 0 {
			items[ns] = got
		}
	}
	return snapshot{entries: entries, items: items}
}

func TestFeedMaterializer_FanoutReachesEveryFollowerFeed(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	alice := h.createUser(t, "alice")
	bob := h.createUser(t, "bob")
	carol := h.createUser(t, "carol")
	dave := h.createUser(t, "dave")
	erin := h.createUser(t, "erin")

	event := h.createEvent(t, alice.ID, po.VisibilityPublic)
	require.Equal(t, []string{po.DiscoverFeedID, po.UserFeedID(alice.ID)}, h.feedsOf(event.ID))

	list, err := h.capture.CreateList(ctx, alice.ID, "weekend")
	require.NoError(t, err)
	require.NoError(t, h.capture.AddEventToList(ctx, alice.ID, list.ID, event.ID))
	require.NoError(t, h.capture.FollowEvent(ctx, bob.ID, event.ID))
	require.NoError(t, h.capture.FollowList(ctx, carol.ID, list.ID))
	require.NoError(t, h.capture.FollowUser(ctx, dave.ID, alice.ID))
	h.drain(t)

	want := []string{
		po.DiscoverFeedID,
		po.UserFeedID(alice.ID),
		po.UserFeedID(bob.ID),
		po.UserFeedID(carol.ID),
		po.UserFeedID(dave.ID),
	}
	require.ElementsMatch(t, want, h.feedsOf(event.ID))
	require.False(t, h.hasEntry(po.UserFeedID(erin.ID), event.ID))
	h.requireConsistent(t)

	h.setVisibility(t, event, po.VisibilityPrivate)
	require.Equal(t, []string{po.UserFeedID(alice.ID)}, h.feedsOf(event.ID))
	require.Equal(t, 0, h.index.Count(aggregate.FeedNamespace(po.DiscoverFeedID)))
	h.requireConsistent(t)

	h.setVisibility(t, event, po.VisibilityPublic)
	require.ElementsMatch(t, want, h.feedsOf(event.ID))
	h.requireConsistent(t)
}

func TestFeedMaterializer_ListReasonKeepsEntryAfterUnfollow(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	alice := h.createUser(t, "alice")
	bob := h.createUser(t, "bob")
	event := h.createEvent(t, alice.ID, po.VisibilityPublic)

	list, err := h.capture.CreateList(ctx, alice.ID, "shows")
	require.NoError(t, err)
	require.NoError(t, h.capture.AddEventToList(ctx, alice.ID, list.ID, event.ID))
	require.NoError(t, h.capture.FollowList(ctx, bob.ID, list.ID))
	require.NoError(t, h.capture.FollowEvent(ctx, bob.ID, event.ID))
	h.drain(t)
	require.True(t, h.hasEntry(po.UserFeedID(bob.ID), event.ID))

	require.NoError(t, h.capture.UnfollowEvent(ctx, bob.ID, event.ID))
	h.drain(t)
	require.True(t, h.hasEntry(po.UserFeedID(bob.ID), event.ID), "list follow still gives a reason")
	require.Equal(t, 0, h.index.Count(aggregate.EventFollowsByUserNamespace(bob.ID)))

	require.NoError(t, h.capture.UnfollowList(ctx, bob.ID, list.ID))
	h.drain(t)
	require.False(t, h.hasEntry(po.UserFeedID(bob.ID), event.ID))
	h.requireConsistent(t)
}

func TestFeedMaterializer_DeleteListReconcilesFollowers(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	alice := h.createUser(t, "alice")
	bob := h.createUser(t, "bob")
	event := h.createEvent(t, alice.ID, po.VisibilityPublic)

	list, err := h.capture.CreateList(ctx, alice.ID, "picks")
	require.NoError(t, err)
	require.NoError(t, h.capture.AddEventToList(ctx, alice.ID, list.ID, event.ID))
	require.NoError(t, h.capture.FollowList(ctx, bob.ID, list.ID))
	h.drain(t)
	require.True(t, h.hasEntry(po.UserFeedID(bob.ID), event.ID))

	require.ErrorIs(t, h.capture.DeleteList(ctx, bob.ID, list.ID), services.ErrPermissionDenied)
	require.NoError(t, h.capture.DeleteList(ctx, alice.ID, list.ID))
	h.drain(t)
	require.False(t, h.hasEntry(po.UserFeedID(bob.ID), event.ID))
	h.requireConsistent(t)
}

func TestFeedMaterializer_PrivateEventStaysInCreatorFeed(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	alice := h.createUser(t, "alice")
	bob := h.createUser(t, "bob")
	event := h.createEvent(t, alice.ID, po.VisibilityPrivate)
	require.Equal(t, []string{po.UserFeedID(alice.ID)}, h.feedsOf(event.ID))

	require.NoError(t, h.capture.FollowEvent(ctx, bob.ID, event.ID))
	h.drain(t)
	require.False(t, h.hasEntry(po.UserFeedID(bob.ID), event.ID))

	require.NoError(t, h.materializer.AddEventToUserFeed(ctx, bob.ID, event.ID))
	require.False(t, h.hasEntry(po.UserFeedID(bob.ID), event.ID))

	require.NoError(t, h.materializer.AddEventToUserFeed(ctx, alice.ID, event.ID))
	require.Equal(t, []string{po.UserFeedID(alice.ID)}, h.feedsOf(event.ID))
	h.requireConsistent(t)
}

func TestFeedMaterializer_EndedEventMovesSortKey(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	alice := h.createUser(t, "alice")
	now := h.clock.Now()
	event, err := h.capture.CreateEvent(ctx, services.CreateEventInput{
		OwnerID:   alice.ID,
		StartTime: now,
		EndTime:   now.Add(time.Hour),
	})
	require.NoError(t, err)
	h.drain(t)

	feed := aggregate.FeedNamespace(po.UserFeedID(alice.ID))
	require.Equal(t, 1, h.index.CountRange(feed, aggregate.SortKeyUpcoming, aggregate.SortKeyUpcoming))

	h.clock.Advance(2 * time.Hour)
	require.NoError(t, h.materializer.UpdateEventInFeeds(ctx, services.UpdateEventInFeedsInput{
		EventID:    event.ID,
		UserID:     alice.ID,
		Visibility: event.Visibility,
		StartTime:  event.StartTime,
		EndTime:    event.EndTime,
	}))

	require.Equal(t, 0, h.index.CountRange(feed, aggregate.SortKeyUpcoming, aggregate.SortKeyUpcoming))
	require.Equal(t, 1, h.index.CountRange(feed, aggregate.SortKeyEnded, aggregate.SortKeyEnded))
	require.Equal(t, 1, h.index.Count(feed))
	entry, err := entryStore{h.world}.Get(ctx, nil, po.DiscoverFeedID, event.ID)
	require.NoError(t, err)
	require.True(t, entry.HasEnded)
	require.Equal(t, baseTime, entry.AddedAt)
	h.requireConsistent(t)
}

func TestFeedMaterializer_UpdateEventInFeedsValidatesInput(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	err := h.materializer.UpdateEventInFeeds(ctx, services.UpdateEventInFeedsInput{UserID: uuid.New(), Visibility: po.VisibilityPublic})
	require.ErrorIs(t, err, services.ErrInvalidArgument)

	err = h.materializer.UpdateEventInFeeds(ctx, services.UpdateEventInFeedsInput{EventID: uuid.New(), UserID: uuid.New(), Visibility: "friends"})
	require.ErrorIs(t, err, services.ErrInvalidArgument)
}

func TestFeedMaterializer_MissingEventIsSkipped(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	ghost := uuid.New()

	require.NoError(t, h.materializer.HandleEventUpserted(ctx, services.EventUpsertedArgs{EventID: ghost}))
	require.NoError(t, h.materializer.AddEventToUserFeed(ctx, uuid.New(), ghost))
	require.NoError(t, h.materializer.HandleEventFollowed(ctx, services.EventFollowedArgs{UserID: uuid.New(), EventID: ghost}))
	require.Empty(t, h.feedsOf(ghost))
	require.Empty(t, h.index.Namespaces())
}

func TestFeedMaterializer_RemoveEventFromFeeds(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	alice := h.createUser(t, "alice")
	bob := h.createUser(t, "bob")
	event := h.createEvent(t, alice.ID, po.VisibilityPublic)
	require.NoError(t, h.capture.FollowEvent(ctx, bob.ID, event.ID))
	h.drain(t)
	require.Len(t, h.feedsOf(event.ID), 3)

	require.NoError(t, h.materializer.RemoveEventFromFeeds(ctx, event.ID, true))
	require.Equal(t, []string{po.UserFeedID(alice.ID)}, h.feedsOf(event.ID))
	h.requireIndexMatchesRows(t)

	require.NoError(t, h.materializer.RemoveEventFromFeeds(ctx, event.ID, false))
	require.Empty(t, h.feedsOf(event.ID))
	require.Equal(t, 0, h.index.Count(aggregate.FeedNamespace(po.UserFeedID(alice.ID))))
	require.Equal(t, 0, h.index.Count(aggregate.FeedNamespace(po.UserFeedID(bob.ID))))
}

func TestFeedMaterializer_DeleteEventClearsMirrors(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	alice := h.createUser(t, "alice")
	bob := h.createUser(t, "bob")
	event := h.createEvent(t, alice.ID, po.VisibilityPublic)
	require.NoError(t, h.capture.FollowEvent(ctx, bob.ID, event.ID))
	h.drain(t)
	require.Equal(t, 1, h.index.Count(aggregate.EventsByCreatorNamespace(alice.ID)))
	require.Equal(t, 1, h.index.Count(aggregate.EventFollowsByUserNamespace(bob.ID)))

	require.ErrorIs(t, h.capture.DeleteEvent(ctx, bob.ID, event.ID), services.ErrPermissionDenied)
	require.NoError(t, h.capture.DeleteEvent(ctx, alice.ID, event.ID))
	h.drain(t)

	require.Empty(t, h.feedsOf(event.ID))
	require.Equal(t, 0, h.index.Count(aggregate.EventsByCreatorNamespace(alice.ID)))
	require.Equal(t, 0, h.index.Count(aggregate.EventFollowsByUserNamespace(bob.ID)))
	h.requireConsistent(t)
}

// TestFeedMaterializer_RandomChangesMatchReasons 随机执行关注、列表与可见性变更，
// 每个任务投递两次，结束后 Feed 与计数必须与主库推导一致。
func TestFeedMaterializer_RandomChangesMatchReasons(t *testing.T) {
	h := newHarness(t)
	h.replay = true
	ctx := context.Background()
	rng := rand.New(rand.NewSource(7))

	users := make([]*po.User, 0, 4)
	for _, name := range []string{"ann", "ben", "cat", "dan"} {
		users = append(users, h.createUser(t, name))
	}
	var events []*po.Event
	for _, user := range users {
		for i := 0; i < 2; i++ {
			visibility := po.VisibilityPublic
			if rng.Intn(3) == 0 {
				visibility = po.VisibilityPrivate
			}
			events = append(events, h.createEvent(t, user.ID, visibility))
		}
	}
	list, err := h.capture.CreateList(ctx, users[0].ID, "mix")
	require.NoError(t, err)

	for step := 0; step < 200; step++ {
		user := users[rng.Intn(len(users))]
		other := users[rng.Intn(len(users))]
		event := events[rng.Intn(len(events))]
		h.clock.Advance(time.Minute)

		switch rng.Intn(9) {
		case 0:
			require.NoError(t, h.capture.FollowEvent(ctx, user.ID, event.ID))
		case 1:
			require.NoError(t, h.capture.UnfollowEvent(ctx, user.ID, event.ID))
		case 2:
			require.NoError(t, h.capture.FollowList(ctx, user.ID, list.ID))
		case 3:
			require.NoError(t, h.capture.UnfollowList(ctx, user.ID, list.ID))
		case 4:
			require.NoError(t, h.capture.AddEventToList(ctx, users[0].ID, list.ID, event.ID))
		case 5:
			require.NoError(t, h.capture.RemoveEventFromList(ctx, users[0].ID, list.ID, event.ID))
		case 6:
			if user.ID != other.ID {
				require.NoError(t, h.capture.FollowUser(ctx, user.ID, other.ID))
			}
		case 7:
			require.NoError(t, h.capture.UnfollowUser(ctx, user.ID, other.ID))
		case 8:
			current, err := eventStore{h.world}.Get(ctx, nil, event.ID)
			require.NoError(t, err)
			next := po.VisibilityPublic
			if current.Visibility == po.VisibilityPublic {
				next = po.VisibilityPrivate
			}
			h.setVisibility(t, current, next)
		}
		h.drain(t)
	}
	h.requireConsistent(t)
}

func TestFeedMaterializer_ReplayingTasksIsIdempotent(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	alice := h.createUser(t, "alice")
	bob := h.createUser(t, "bob")
	carol := h.createUser(t, "carol")
	first := h.createEvent(t, alice.ID, po.VisibilityPublic)
	second := h.createEvent(t, bob.ID, po.VisibilityPublic)

	require.NoError(t, h.capture.FollowEvent(ctx, bob.ID, first.ID))
	require.NoError(t, h.capture.FollowEvent(ctx, carol.ID, first.ID))
	require.NoError(t, h.capture.FollowUser(ctx, carol.ID, bob.ID))
	h.drain(t)
	require.NoError(t, h.capture.UnfollowEvent(ctx, carol.ID, first.ID))
	h.setVisibility(t, second, po.VisibilityPrivate)
	require.NoError(t, h.capture.UnfollowEvent(ctx, bob.ID, first.ID))
	require.NoError(t, h.capture.FollowEvent(ctx, bob.ID, first.ID))
	h.drain(t)
	h.requireConsistent(t)

	before := h.snapshot()
	h.queue.mu.Lock()
	history := append([]scheduledTask(nil), h.queue.scheduled...)
	h.queue.mu.Unlock()
	for _, task := range history {
		require.NoError(t, h.dispatch(ctx, task), "replay %s", task.name)
	}
	require.Equal(t, before, h.snapshot())
	h.requireConsistent(t)
}
