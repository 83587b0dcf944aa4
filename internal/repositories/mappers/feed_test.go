package mappers_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/require"

	"github.com/jaronheard/soonlist-turbo-sub000/internal/models/po"
	"github.com/jaronheard/soonlist-turbo-sub000/internal/repositories/feeddb"
	"github.com/jaronheard/soonlist-turbo-sub000/internal/repositories/mappers"
)

func TestUserFromRowKeepsNullGoal(t *testing.T) {
	row := feeddb.FeedUser{ID: uuid.New(), Username: "ada"}
	user := mappers.UserFromRow(row)
	require.Nil(t, user.WeeklyGoal)
	require.True(t, user.CreatedAt.IsZero())

	row.WeeklyGoal = pgtype.Int4{Int32: 3, Valid: true}
	require.Equal(t, int32(3), *mappers.UserFromRow(row).WeeklyGoal)
}

func TestTaskFromRow(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	row := feeddb.FeedTask{
		ID:        uuid.New(),
		Name:      "feed.event_upserted",
		Payload:   []byte(`{}`),
		Status:    "pending",
		RunAfter:  pgtype.Timestamptz{Time: now, Valid: true},
		Attempts:  2,
		LastError: pgtype.Text{String: "boom", Valid: true},
		CreatedAt: pgtype.Timestamptz{Time: now, Valid: true},
	}
	task := mappers.TaskFromRow(row)
	require.Equal(t, po.TaskStatusPending, task.Status)
	require.Equal(t, now, task.RunAfter)
	require.Nil(t, task.LockedUntil)
	require.Equal(t, "boom", *task.LastError)
}

func TestToPgTimestamptz(t *testing.T) {
	require.False(t, mappers.ToPgTimestamptz(time.Time{}).Valid)
	local := time.Date(2025, 1, 1, 8, 0, 0, 0, time.FixedZone("x", 3600))
	ts := mappers.ToPgTimestamptz(local)
	require.True(t, ts.Valid)
	require.Equal(t, time.UTC, ts.Time.Location())
	require.True(t, local.Equal(ts.Time))
	require.Equal(t, pgtype.NegativeInfinity, mappers.NegativeInfinity().InfinityModifier)
}
