package po

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestNewFeedEntry_PopulatesFields(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	eventID := uuid.New()
	start := now.Add(time.Hour)
	end := now.Add(2 * time.Hour)

	entry := NewFeedEntry(FeedEntryParams{
		FeedID:    " discover ",
		EventID:   eventID,
		StartTime: start,
		EndTime:   end,
		Now:       now,
	})

	require.Equal(t, DiscoverFeedID, entry.FeedID)
	require.Equal(t, eventID, entry.EventID)
	require.True(t, start.Equal(entry.EventStartTime))
	require.True(t, end.Equal(entry.EventEndTime))
	require.Equal(t, now, entry.AddedAt)
	require.False(t, entry.HasEnded)
}

func TestNewFeedEntry_EndedEvent(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	entry := NewFeedEntry(FeedEntryParams{
		FeedID:    "discover",
		EventID:   uuid.New(),
		StartTime: now.Add(-2 * time.Hour),
		EndTime:   now.Add(-time.Hour),
		Now:       now,
	})
	require.True(t, entry.HasEnded)

	// End time equal to now is not yet ended.
	entry = NewFeedEntry(FeedEntryParams{FeedID: "discover", EventID: uuid.New(), EndTime: now, Now: now})
	require.False(t, entry.HasEnded)
}

func TestFeedEntry_RefreshedKeepsAddedAt(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	entry := NewFeedEntry(FeedEntryParams{
		FeedID:  "discover",
		EventID: uuid.New(),
		EndTime: now.Add(time.Hour),
		Now:     now,
	})

	later := now.Add(2 * time.Hour)
	refreshed := entry.Refreshed(later)
	require.True(t, refreshed.HasEnded)
	require.Equal(t, entry.AddedAt, refreshed.AddedAt)
	require.Equal(t, later, refreshed.UpdatedAt)
	require.False(t, entry.SameSnapshot(refreshed))

	unchanged := entry.Refreshed(now.Add(time.Minute))
	require.True(t, entry.SameSnapshot(unchanged))
	require.Equal(t, entry.UpdatedAt, unchanged.UpdatedAt)
}

func TestUserFeedID_RoundTrip(t *testing.T) {
	userID := uuid.New()
	feedID := UserFeedID(userID)
	require.Equal(t, "user_"+userID.String(), feedID)

	parsed, ok := ParseUserFeedID(feedID)
	require.True(t, ok)
	require.Equal(t, userID, parsed)

	_, ok = ParseUserFeedID(DiscoverFeedID)
	require.False(t, ok)
	_, ok = ParseUserFeedID("user_not-a-uuid")
	require.False(t, ok)
}
