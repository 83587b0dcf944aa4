// Package mappers 提供数据库行与领域模型之间的转换工具。
package mappers

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/jaronheard/soonlist-turbo-sub000/internal/models/po"
	feeddb "github.com/jaronheard/soonlist-turbo-sub000/internal/repositories/feeddb"
)

// UserFromRow 将 sqlc 结构转换为领域对象。
func UserFromRow(row feeddb.FeedUser) *po.User {
	return &po.User{
		ID:         row.ID,
		Username:   row.Username,
		WeeklyGoal: int4Ptr(row.WeeklyGoal),
		CreatedAt:  mustTimestamp(row.CreatedAt),
	}
}

// EventFromRow 转换事件。
func EventFromRow(row feeddb.FeedEvent) *po.Event {
	return &po.Event{
		ID:         row.ID,
		OwnerID:    row.OwnerID,
		Visibility: po.Visibility(row.Visibility),
		StartTime:  mustTimestamp(row.StartTime),
		EndTime:    mustTimestamp(row.EndTime),
		CreatedAt:  mustTimestamp(row.CreatedAt),
		UpdatedAt:  mustTimestamp(row.UpdatedAt),
	}
}

// ListFromRow 转换列表。
func ListFromRow(row feeddb.FeedList) *po.List {
	return &po.List{
		ID:        row.ID,
		OwnerID:   row.OwnerID,
		Name:      row.Name,
		CreatedAt: mustTimestamp(row.CreatedAt),
	}
}

// CommentFromRow 转换评论。
func CommentFromRow(row feeddb.FeedComment) *po.Comment {
	return &po.Comment{
		ID:        row.ID,
		EventID:   row.EventID,
		UserID:    row.UserID,
		Body:      row.Body,
		CreatedAt: mustTimestamp(row.CreatedAt),
	}
}

// EventFollowFromRow 转换事件关注。
func EventFollowFromRow(row feeddb.FeedEventFollow) po.EventFollow {
	return po.EventFollow{
		UserID:    row.UserID,
		EventID:   row.EventID,
		CreatedAt: mustTimestamp(row.CreatedAt),
	}
}

// EventFollowPageRowToPO 转换回填分页读取的关注记录。
func EventFollowPageRowToPO(row feeddb.ListEventFollowsPageRow) po.EventFollowRow {
	return po.EventFollowRow{
		EventFollow: po.EventFollow{
			UserID:    row.UserID,
			EventID:   row.EventID,
			CreatedAt: mustTimestamp(row.CreatedAt),
		},
		EventOwnerID: row.EventOwnerID,
	}
}

// FeedEntryFromRow 转换 Feed 条目。
func FeedEntryFromRow(row feeddb.FeedFeedEntry) *po.FeedEntry {
	return &po.FeedEntry{
		FeedID:         row.FeedID,
		EventID:        row.EventID,
		EventStartTime: mustTimestamp(row.EventStartTime),
		EventEndTime:   mustTimestamp(row.EventEndTime),
		AddedAt:        mustTimestamp(row.AddedAt),
		HasEnded:       row.HasEnded,
		UpdatedAt:      mustTimestamp(row.UpdatedAt),
	}
}

// SyncStateFromRow 转换回填游标状态。
func SyncStateFromRow(row feeddb.FeedSyncState) *po.SyncState {
	return &po.SyncState{
		PipelineKey:   row.PipelineKey,
		RunID:         row.RunID,
		Cursor:        row.Cursor,
		Status:        po.SyncStatus(row.Status),
		Mode:          po.SyncMode(row.Mode),
		LastNamespace: row.LastNamespace,
		Processed:     row.Processed,
		UpdatedAt:     mustTimestamp(row.UpdatedAt),
	}
}

// TaskFromRow 转换任务。
func TaskFromRow(row feeddb.FeedTask) *po.Task {
	return &po.Task{
		ID:          row.ID,
		Name:        row.Name,
		Payload:     row.Payload,
		Status:      po.TaskStatus(row.Status),
		RunAfter:    mustTimestamp(row.RunAfter),
		Attempts:    row.Attempts,
		LockedUntil: timestampPtr(row.LockedUntil),
		ProcessedAt: timestampPtr(row.ProcessedAt),
		LastError:   textPtr(row.LastError),
		CreatedAt:   mustTimestamp(row.CreatedAt),
	}
}

// ToPgInt4 将 *int32 转换为 pgtype.Int4。
func ToPgInt4(value *int32) pgtype.Int4 {
	if value == nil {
		return pgtype.Int4{}
	}
	return pgtype.Int4{Int32: *value, Valid: true}
}

// ToPgText 将 *string 转换为 pgtype.Text。
func ToPgText(value *string) pgtype.Text {
	if value == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *value, Valid: true}
}

// ToPgTimestamptz 将 time.Time 转换为 pgtype.Timestamptz，零值视为 NULL。
func ToPgTimestamptz(value time.Time) pgtype.Timestamptz {
	if value.IsZero() {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: value.UTC(), Valid: true}
}

// ToPgTimestamptzPtr 将 *time.Time 转换为 pgtype.Timestamptz。
func ToPgTimestamptzPtr(value *time.Time) pgtype.Timestamptz {
	if value == nil {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: value.UTC(), Valid: true}
}

// NegativeInfinity 返回 -infinity 时间戳，用作分页起点。
func NegativeInfinity() pgtype.Timestamptz {
	return pgtype.Timestamptz{InfinityModifier: pgtype.NegativeInfinity, Valid: true}
}

func int4Ptr(value pgtype.Int4) *int32 {
	if !value.Valid {
		return nil
	}
	return &value.Int32
}

func textPtr(value pgtype.Text) *string {
	if !value.Valid {
		return nil
	}
	return &value.String
}

func timestampPtr(value pgtype.Timestamptz) *time.Time {
	if !value.Valid {
		return nil
	}
	t := value.Time.UTC()
	return &t
}

func mustTimestamp(value pgtype.Timestamptz) time.Time {
	if !value.Valid {
		return time.Time{}
	}
	return value.Time.UTC()
}
