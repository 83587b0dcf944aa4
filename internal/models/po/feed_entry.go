package po

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DiscoverFeedID 是全局公开 Feed 的标识。
const DiscoverFeedID = "discover"

const userFeedPrefix = "user_"

// UserFeedID 返回某个用户个人 Feed 的标识。
func UserFeedID(userID uuid.UUID) string {
	return userFeedPrefix + userID.String()
}

// ParseUserFeedID 解析 user_<id> 形式的 Feed 标识。
func ParseUserFeedID(feedID string) (uuid.UUID, bool) {
	raw, ok := strings.CutPrefix(feedID, userFeedPrefix)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// FeedEntry 表示 feed.feed_entries 记录。HasEnded 是写入时物化的快照。
type FeedEntry struct {
	FeedID         string
	EventID        uuid.UUID
	EventStartTime time.Time
	EventEndTime   time.Time
	AddedAt        time.Time
	HasEnded       bool
	UpdatedAt      time.Time
}

// SameSnapshot 比较两条记录的时间与结束标记是否一致（忽略 AddedAt/UpdatedAt）。
func (e FeedEntry) SameSnapshot(other FeedEntry) bool {
	return e.FeedID == other.FeedID &&
		e.EventID == other.EventID &&
		e.EventStartTime.Equal(other.EventStartTime) &&
		e.EventEndTime.Equal(other.EventEndTime) &&
		e.HasEnded == other.HasEnded
}

// DeriveHasEnded 根据结束时间与当前时间计算结束标记。
func DeriveHasEnded(endTime, now time.Time) bool {
	return endTime.Before(now)
}
