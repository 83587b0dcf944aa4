package po

import (
	"time"

	"github.com/google/uuid"
)

// EventFollow 表示 (user, event) 关注关系，同一对最多一条。
type EventFollow struct {
	UserID    uuid.UUID
	EventID   uuid.UUID
	CreatedAt time.Time
}

// EventFollowRow 是回填分页读取的关注记录，附带事件所有者以识别自关注。
type EventFollowRow struct {
	EventFollow
	EventOwnerID uuid.UUID
}

// ListFollow 表示 (user, list) 关注关系。
type ListFollow struct {
	UserID    uuid.UUID
	ListID    uuid.UUID
	CreatedAt time.Time
}

// UserFollow 表示 (follower, following) 关注关系。
type UserFollow struct {
	FollowerID  uuid.UUID
	FollowingID uuid.UUID
	CreatedAt   time.Time
}

// ListMembership 表示事件与列表的关联。
type ListMembership struct {
	ListID    uuid.UUID
	EventID   uuid.UUID
	CreatedAt time.Time
}
