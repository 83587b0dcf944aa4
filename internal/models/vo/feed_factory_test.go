package vo

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/jaronheard/soonlist-turbo-sub000/internal/models/po"
)

func TestFeedItemFromEntry(t *testing.T) {
	now := time.Now().UTC()
	eventID := uuid.New()
	entry := &po.FeedEntry{
		FeedID:         po.DiscoverFeedID,
		EventID:        eventID,
		EventStartTime: now.Add(time.Hour),
		EventEndTime:   now.Add(2 * time.Hour),
		AddedAt:        now,
		HasEnded:       false,
	}

	item := FeedItemFromEntry(entry)

	require.Equal(t, po.DiscoverFeedID, item.FeedID)
	require.Equal(t, eventID.String(), item.EventID)
	require.True(t, item.StartTime.Equal(entry.EventStartTime))
	require.True(t, item.EndTime.Equal(entry.EventEndTime))
	require.True(t, item.AddedAt.Equal(now))
	require.False(t, item.HasEnded)
}

func TestFeedItemFromEntry_NilRecord(t *testing.T) {
	item := FeedItemFromEntry(nil)
	require.Equal(t, "", item.EventID)
	require.Equal(t, "", item.FeedID)
}

func TestFeedItemsFromEntries_SkipsNil(t *testing.T) {
	entries := []*po.FeedEntry{
		{FeedID: "discover", EventID: uuid.New()},
		nil,
		{FeedID: "discover", EventID: uuid.New()},
	}
	items := FeedItemsFromEntries(entries)
	require.Len(t, items, 2)
	require.Equal(t, entries[2].EventID.String(), items[1].EventID)
}

func TestUserStats_GoalReached(t *testing.T) {
	var nilStats *UserStats
	require.False(t, nilStats.GoalReached())

	stats := &UserStats{CapturesThisWeek: 4, WeeklyGoal: 5}
	require.False(t, stats.GoalReached())
	stats.CapturesThisWeek = 5
	require.True(t, stats.GoalReached())

	noGoal := &UserStats{CapturesThisWeek: 3}
	require.False(t, noGoal.GoalReached())
}
