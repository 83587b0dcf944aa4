package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jaronheard/soonlist-turbo-sub000/internal/aggregate"
	"github.com/jaronheard/soonlist-turbo-sub000/internal/models/po"
	"github.com/jaronheard/soonlist-turbo-sub000/internal/models/vo"
	"github.com/jaronheard/soonlist-turbo-sub000/internal/repositories"
	"github.com/jaronheard/soonlist-turbo-sub000/internal/txmanager"
)

// FeedServiceInterface 抽象 Feed 获取用例，便于测试替换。
type FeedServiceInterface interface {
	GetFeed(ctx context.Context, input GetFeedInput) (*vo.FeedResponse, error)
}

// StatsServiceInterface 抽象用户统计用例。
type StatsServiceInterface interface {
	GetUserStats(ctx context.Context, username string) (*vo.UserStats, error)
}

// FeedFanoutInterface 是对外暴露的扇出操作。
type FeedFanoutInterface interface {
	UpdateEventInFeeds(ctx context.Context, input UpdateEventInFeedsInput) error
	AddEventToUserFeed(ctx context.Context, userID, eventID uuid.UUID) error
	RemoveEventFromFeeds(ctx context.Context, eventID uuid.UUID, keepCreatorFeed bool) error
}

// BackfillInterface 是对外暴露的回填与修复操作。
type BackfillInterface interface {
	InitializeAllAggregates(ctx context.Context) ([]*po.SyncState, error)
	StartRun(ctx context.Context, pipeline string) (*po.SyncState, error)
	RefreshRun(ctx context.Context, pipeline string) (*po.SyncState, error)
	ResumeRun(ctx context.Context, pipeline string) (*po.SyncState, error)
	ListRuns(ctx context.Context) ([]*po.SyncState, error)
	RepairUser(ctx context.Context, userID uuid.UUID) ([]NamespaceRepair, error)
}

// UserCache 缓存按用户名解析的用户，用户记录变更后需要逐出。
type UserCache interface {
	ForgetUser(userID uuid.UUID)
}

// Scheduler 是持久化任务队列的入队端。
type Scheduler interface {
	ScheduleAfter(ctx context.Context, delay time.Duration, name string, args any) error
}

// AggregateIndex 是聚合索引的可注入视图。
type AggregateIndex interface {
	Insert(ctx context.Context, item aggregate.Item) (bool, error)
	ReplaceOrInsert(ctx context.Context, old, replacement aggregate.Item) error
	Delete(ctx context.Context, item aggregate.Item) error
	DeleteIfExists(ctx context.Context, item aggregate.Item) (bool, error)
	Count(namespace string) int
	CountRange(namespace string, lower, upper int64) int
	Clear(ctx context.Context, namespace string) error
}

// UserStore 读写 feed.users。
type UserStore interface {
	Create(ctx context.Context, sess txmanager.Session, input repositories.CreateUserInput) (*po.User, error)
	Get(ctx context.Context, sess txmanager.Session, id uuid.UUID) (*po.User, error)
	GetByUsername(ctx context.Context, sess txmanager.Session, username string) (*po.User, error)
	UpdateWeeklyGoal(ctx context.Context, sess txmanager.Session, id uuid.UUID, goal *int32) error
	Delete(ctx context.Context, sess txmanager.Session, id uuid.UUID) (bool, error)
}

// EventStore 读写 feed.events。
type EventStore interface {
	Create(ctx context.Context, sess txmanager.Session, input repositories.CreateEventInput) (*po.Event, error)
	Update(ctx context.Context, sess txmanager.Session, input repositories.UpdateEventInput) (*po.Event, error)
	Get(ctx context.Context, sess txmanager.Session, id uuid.UUID) (*po.Event, error)
	Delete(ctx context.Context, sess txmanager.Session, id uuid.UUID) (bool, error)
	ListByOwner(ctx context.Context, sess txmanager.Session, ownerID uuid.UUID) ([]*po.Event, error)
	ListByList(ctx context.Context, sess txmanager.Session, listID uuid.UUID) ([]*po.Event, error)
	ListPage(ctx context.Context, sess txmanager.Session, afterOwnerID, afterID uuid.UUID, limit int) ([]*po.Event, error)
}

// ListStore 读写列表、列表成员与列表关注。
type ListStore interface {
	Create(ctx context.Context, sess txmanager.Session, input repositories.CreateListInput) (*po.List, error)
	Get(ctx context.Context, sess txmanager.Session, id uuid.UUID) (*po.List, error)
	Delete(ctx context.Context, sess txmanager.Session, id uuid.UUID) (bool, error)
	ListByOwner(ctx context.Context, sess txmanager.Session, ownerID uuid.UUID) ([]*po.List, error)
	AddMembership(ctx context.Context, sess txmanager.Session, listID, eventID uuid.UUID, at time.Time) (bool, error)
	RemoveMembership(ctx context.Context, sess txmanager.Session, listID, eventID uuid.UUID) (bool, error)
	DeleteMembershipsByList(ctx context.Context, sess txmanager.Session, listID uuid.UUID) error
	DeleteMembershipsByEvent(ctx context.Context, sess txmanager.Session, eventID uuid.UUID) error
	DeleteMembershipsByOwner(ctx context.Context, sess txmanager.Session, ownerID uuid.UUID) (int64, error)
	Follow(ctx context.Context, sess txmanager.Session, userID, listID uuid.UUID, at time.Time) (bool, error)
	Unfollow(ctx context.Context, sess txmanager.Session, userID, listID uuid.UUID) (bool, error)
	ListFollowerIDs(ctx context.Context, sess txmanager.Session, listID uuid.UUID) ([]uuid.UUID, error)
	ListFollowerIDsByEvent(ctx context.Context, sess txmanager.Session, eventID uuid.UUID) ([]uuid.UUID, error)
	DeleteFollowsByUser(ctx context.Context, sess txmanager.Session, userID uuid.UUID) error
	DeleteFollowsByList(ctx context.Context, sess txmanager.Session, listID uuid.UUID) error
}

// FollowStore 读写事件关注与用户关注。
type FollowStore interface {
	FollowEvent(ctx context.Context, sess txmanager.Session, userID, eventID uuid.UUID, at time.Time) (bool, error)
	GetEventFollow(ctx context.Context, sess txmanager.Session, userID, eventID uuid.UUID) (*po.EventFollow, error)
	UnfollowEvent(ctx context.Context, sess txmanager.Session, userID, eventID uuid.UUID) (*po.EventFollow, error)
	ListEventFollowers(ctx context.Context, sess txmanager.Session, eventID uuid.UUID) ([]po.EventFollow, error)
	ListEventFollowsByUser(ctx context.Context, sess txmanager.Session, userID uuid.UUID) ([]po.EventFollow, error)
	DeleteEventFollowsByUser(ctx context.Context, sess txmanager.Session, userID uuid.UUID) error
	DeleteEventFollowsByEvent(ctx context.Context, sess txmanager.Session, eventID uuid.UUID) error
	ListEventFollowsPage(ctx context.Context, sess txmanager.Session, afterUserID, afterEventID uuid.UUID, limit int) ([]po.EventFollowRow, error)
	FollowUser(ctx context.Context, sess txmanager.Session, followerID, followingID uuid.UUID, at time.Time) (bool, error)
	UnfollowUser(ctx context.Context, sess txmanager.Session, followerID, followingID uuid.UUID) (bool, error)
	ListUserFollowerIDs(ctx context.Context, sess txmanager.Session, followingID uuid.UUID) ([]uuid.UUID, error)
	DeleteUserFollowsByUser(ctx context.Context, sess txmanager.Session, userID uuid.UUID) error
	HasFollowReason(ctx context.Context, sess txmanager.Session, userID, eventID uuid.UUID) (bool, error)
}

// CommentStore 读写 feed.comments。
type CommentStore interface {
	Create(ctx context.Context, sess txmanager.Session, input repositories.CreateCommentInput) (*po.Comment, error)
	DeleteByUser(ctx context.Context, sess txmanager.Session, userID uuid.UUID) (int64, error)
	DeleteByEvent(ctx context.Context, sess txmanager.Session, eventID uuid.UUID) (int64, error)
}

// FeedEntryStore 读写 feed.feed_entries。
type FeedEntryStore interface {
	Get(ctx context.Context, sess txmanager.Session, feedID string, eventID uuid.UUID) (*po.FeedEntry, error)
	Insert(ctx context.Context, sess txmanager.Session, entry po.FeedEntry) error
	UpdateSnapshot(ctx context.Context, sess txmanager.Session, entry po.FeedEntry) error
	Delete(ctx context.Context, sess txmanager.Session, feedID string, eventID uuid.UUID) (bool, error)
	ListByEvent(ctx context.Context, sess txmanager.Session, eventID uuid.UUID) ([]*po.FeedEntry, error)
	ListByFeed(ctx context.Context, sess txmanager.Session, feedID string) ([]*po.FeedEntry, error)
	DeleteByFeed(ctx context.Context, sess txmanager.Session, feedID string) (int64, error)
	ListPage(ctx context.Context, sess txmanager.Session, afterFeedID string, afterEventID uuid.UUID, limit int) ([]*po.FeedEntry, error)
	ListTimeline(ctx context.Context, sess txmanager.Session, query repositories.TimelineQuery) ([]*po.FeedEntry, error)
}

// SyncStateStore 读写回填管线状态。
type SyncStateStore interface {
	Get(ctx context.Context, sess txmanager.Session, pipelineKey string) (*po.SyncState, error)
	Start(ctx context.Context, sess txmanager.Session, pipelineKey string, runID uuid.UUID, mode po.SyncMode, now time.Time) (*po.SyncState, error)
	Advance(ctx context.Context, sess txmanager.Session, input repositories.AdvanceSyncStateInput) (bool, error)
	SetStatus(ctx context.Context, sess txmanager.Session, pipelineKey string, runID uuid.UUID, status po.SyncStatus, now time.Time) (bool, error)
	List(ctx context.Context, sess txmanager.Session) ([]*po.SyncState, error)
}
