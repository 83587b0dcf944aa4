// Package po 定义 Feed 索引服务的数据持久化结构体。
package po

import (
	"time"

	"github.com/google/uuid"
)

// Visibility 描述事件的可见范围。
type Visibility string

const (
	// VisibilityPublic 表示事件对 discover 与关注者可见。
	VisibilityPublic Visibility = "public"
	// VisibilityPrivate 表示事件仅出现在创建者自己的 Feed 中。
	VisibilityPrivate Visibility = "private"
)

// Valid 判断可见性取值是否合法。
func (v Visibility) Valid() bool {
	return v == VisibilityPublic || v == VisibilityPrivate
}

// User 表示 feed.users 记录。
type User struct {
	ID         uuid.UUID
	Username   string
	WeeklyGoal *int32
	CreatedAt  time.Time
}

// Event 表示主库中的事件快照，本服务只读取其时间与可见性。
type Event struct {
	ID         uuid.UUID
	OwnerID    uuid.UUID
	Visibility Visibility
	StartTime  time.Time
	EndTime    time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsPublic 报告事件是否公开。
func (e *Event) IsPublic() bool {
	return e != nil && e.Visibility == VisibilityPublic
}

// List 表示用户创建的事件列表。
type List struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Name      string
	CreatedAt time.Time
}

// Comment 表示事件下的评论，仅在级联删除时被触及。
type Comment struct {
	ID        uuid.UUID
	EventID   uuid.UUID
	UserID    uuid.UUID
	Body      string
	CreatedAt time.Time
}
