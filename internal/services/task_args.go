package services

import (
	"time"

	"github.com/google/uuid"
)

// 后台任务名称。任务参数以 JSON 持久化在 feed.tasks.payload 中。
const (
	TaskEventUpserted         = "feed.event_upserted"
	TaskEventDeleted          = "feed.event_deleted"
	TaskEventFollowed         = "feed.event_followed"
	TaskEventUnfollowed       = "feed.event_unfollowed"
	TaskListFollowChanged     = "feed.list_follow_changed"
	TaskListMembershipChanged = "feed.list_membership_changed"
	TaskUserFollowChanged     = "feed.user_follow_changed"
	TaskBackfillBatch         = "backfill.batch"
)

// EventUpsertedArgs 是事件创建或更新后的扇出参数。
type EventUpsertedArgs struct {
	EventID uuid.UUID `json:"event_id"`
}

// FollowerRef 记录删除前的关注者及其关注时间，用于移除关注镜像。
type FollowerRef struct {
	UserID     uuid.UUID `json:"user_id"`
	FollowedAt time.Time `json:"followed_at"`
}

// EventDeletedArgs 携带已删除事件的快照，主库中已无法再读取。
type EventDeletedArgs struct {
	EventID   uuid.UUID     `json:"event_id"`
	OwnerID   uuid.UUID     `json:"owner_id"`
	CreatedAt time.Time     `json:"created_at"`
	Followers []FollowerRef `json:"followers,omitempty"`
}

// EventFollowedArgs 是事件被关注后的扇出参数。
type EventFollowedArgs struct {
	UserID  uuid.UUID `json:"user_id"`
	EventID uuid.UUID `json:"event_id"`
}

// EventUnfollowedArgs 是取消关注后的扇出参数，FollowedAt 用于定位关注镜像。
type EventUnfollowedArgs struct {
	UserID     uuid.UUID `json:"user_id"`
	EventID    uuid.UUID `json:"event_id"`
	FollowedAt time.Time `json:"followed_at"`
}

// ListFollowChangedArgs 覆盖关注与取消关注列表。EventIDs 是变更时刻列表内的事件，
// 列表随后被删除时仍能据此对账。
type ListFollowChangedArgs struct {
	UserID   uuid.UUID   `json:"user_id"`
	ListID   uuid.UUID   `json:"list_id"`
	EventIDs []uuid.UUID `json:"event_ids,omitempty"`
}

// ListMembershipChangedArgs 覆盖事件加入与移出列表。
type ListMembershipChangedArgs struct {
	ListID  uuid.UUID `json:"list_id"`
	EventID uuid.UUID `json:"event_id"`
}

// UserFollowChangedArgs 覆盖关注与取消关注用户。
type UserFollowChangedArgs struct {
	FollowerID  uuid.UUID `json:"follower_id"`
	FollowingID uuid.UUID `json:"following_id"`
}

// BackfillBatchArgs 标识某次回填运行中的一个批次。
type BackfillBatchArgs struct {
	Pipeline string    `json:"pipeline"`
	RunID    uuid.UUID `json:"run_id"`
	Cursor   string    `json:"cursor"`
}
