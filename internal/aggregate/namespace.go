package aggregate

import (
	"time"

	"github.com/google/uuid"
)

const (
	eventsByCreatorPrefix    = "events_by_creator:"
	eventFollowsByUserPrefix = "event_follows_by_user:"
	feedPrefix               = "feed:"
)

// EventsByCreatorNamespace 是“某用户创建的事件（按创建时间）”的命名空间。
func EventsByCreatorNamespace(userID uuid.UUID) string {
	return eventsByCreatorPrefix + userID.String()
}

// EventFollowsByUserNamespace 是“某用户关注的事件（按关注时间）”的命名空间。
func EventFollowsByUserNamespace(userID uuid.UUID) string {
	return eventFollowsByUserPrefix + userID.String()
}

// FeedNamespace 是某个 Feed 按结束标记排序的命名空间。
func FeedNamespace(feedID string) string {
	return feedPrefix + feedID
}

const (
	// SortKeyUpcoming 是 Feed 命名空间中未结束事件的 sortKey。
	SortKeyUpcoming int64 = 0
	// SortKeyEnded 是 Feed 命名空间中已结束事件的 sortKey。
	SortKeyEnded int64 = 1
)

// EndedSortKey 将结束标记映射为 Feed 命名空间的 sortKey。
func EndedSortKey(hasEnded bool) int64 {
	if hasEnded {
		return SortKeyEnded
	}
	return SortKeyUpcoming
}

// TimeSortKey 将时间映射为毫秒级 sortKey。
func TimeSortKey(t time.Time) int64 {
	return t.UnixMilli()
}
