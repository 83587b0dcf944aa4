package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/juju/clock"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jaronheard/soonlist-turbo-sub000/internal/aggregate"
	"github.com/jaronheard/soonlist-turbo-sub000/internal/metrics"
	"github.com/jaronheard/soonlist-turbo-sub000/internal/models/po"
	"github.com/jaronheard/soonlist-turbo-sub000/internal/repositories"
)

const tracerName = "github.com/jaronheard/soonlist-turbo-sub000/internal/services"

// UpdateEventInFeedsInput 描述一次事件快照扇出。
type UpdateEventInFeedsInput struct {
	EventID    uuid.UUID
	UserID     uuid.UUID
	Visibility po.Visibility
	StartTime  time.Time
	EndTime    time.Time
}

// FeedMaterializer 把一次主库变更翻译为 Feed 条目与聚合索引的幂等写集合。
//
// 每次写入先查 (feedId, eventId)，再决定插入、修补或跳过；索引先于行写入，
// 因此任务重试时两者总能收敛到一致。
type FeedMaterializer struct {
	events  EventStore
	lists   ListStore
	follows FollowStore
	entries FeedEntryStore
	index   AggregateIndex
	clock   clock.Clock
	tracer  trace.Tracer
	log     *log.Helper
}

// NewFeedMaterializer 构造 FeedMaterializer。
func NewFeedMaterializer(
	events EventStore,
	lists ListStore,
	follows FollowStore,
	entries FeedEntryStore,
	index AggregateIndex,
	clk clock.Clock,
	logger log.Logger,
) *FeedMaterializer {
	return &FeedMaterializer{
		events:  events,
		lists:   lists,
		follows: follows,
		entries: entries,
		index:   index,
		clock:   clk,
		tracer:  otel.Tracer(tracerName),
		log:     log.NewHelper(logger),
	}
}

// UpdateEventInFeeds 按给定快照把事件写入所有应出现的 Feed，并移除不再应出现的条目。
func (m *FeedMaterializer) UpdateEventInFeeds(ctx context.Context, input UpdateEventInFeedsInput) (err error) {
	ctx, span := m.startSpan(ctx, "UpdateEventInFeeds", attribute.String("event.id", input.EventID.String()))
	defer func() { endSpan(span, err) }()

	if input.EventID == uuid.Nil || input.UserID == uuid.Nil {
		return fmt.Errorf("%w: event id and user id are required", ErrInvalidArgument)
	}
	if !input.Visibility.Valid() {
		return fmt.Errorf("%w: visibility %q", ErrInvalidArgument, input.Visibility)
	}
	return m.fanout(ctx, &po.Event{
		ID:         input.EventID,
		OwnerID:    input.UserID,
		Visibility: input.Visibility,
		StartTime:  input.StartTime,
		EndTime:    input.EndTime,
	})
}

// AddEventToUserFeed 把事件写入 user_<userID>。私密事件只会进入创建者自己的 Feed。
func (m *FeedMaterializer) AddEventToUserFeed(ctx context.Context, userID, eventID uuid.UUID) (err error) {
	ctx, span := m.startSpan(ctx, "AddEventToUserFeed",
		attribute.String("event.id", eventID.String()),
		attribute.String("user.id", userID.String()))
	defer func() { endSpan(span, err) }()

	event, err := m.loadEvent(ctx, eventID, "add_to_user_feed")
	if err != nil || event == nil {
		return err
	}
	if event.OwnerID != userID && !event.IsPublic() {
		metrics.FanoutSkips.WithLabelValues("add_to_user_feed", "private").Inc()
		m.log.WithContext(ctx).Infow("msg", "private event not added to follower feed", "event_id", eventID, "user_id", userID)
		return nil
	}
	_, err = m.upsertEntry(ctx, po.UserFeedID(userID), event)
	return err
}

// RemoveEventFromFeeds 删除事件在各 Feed 中的条目；keepCreatorFeed 为 true 时保留创建者 Feed。
func (m *FeedMaterializer) RemoveEventFromFeeds(ctx context.Context, eventID uuid.UUID, keepCreatorFeed bool) (err error) {
	ctx, span := m.startSpan(ctx, "RemoveEventFromFeeds",
		attribute.String("event.id", eventID.String()),
		attribute.Bool("keep_creator_feed", keepCreatorFeed))
	defer func() { endSpan(span, err) }()

	keep := ""
	if keepCreatorFeed {
		event, getErr := m.loadEvent(ctx, eventID, "remove_from_feeds")
		if getErr != nil {
			return getErr
		}
		if event != nil {
			keep = po.UserFeedID(event.OwnerID)
		}
	}
	return m.pruneFeeds(ctx, eventID, func(feedID string) bool { return keep != "" && feedID == keep })
}

// HandleEventUpserted 处理事件创建或更新：镜像创建者计数并扇出。
func (m *FeedMaterializer) HandleEventUpserted(ctx context.Context, args EventUpsertedArgs) (err error) {
	ctx, span := m.startSpan(ctx, "SyncEvent", attribute.String("event.id", args.EventID.String()))
	defer func() { endSpan(span, err) }()

	event, err := m.loadEvent(ctx, args.EventID, TaskEventUpserted)
	if err != nil || event == nil {
		return err
	}
	if _, err := m.index.Insert(ctx, creatorItem(event.OwnerID, event.ID, event.CreatedAt)); err != nil {
		return fmt.Errorf("index creator event: %w", err)
	}
	return m.fanout(ctx, event)
}

// HandleEventDeleted 移除已删除事件的全部条目与镜像。
func (m *FeedMaterializer) HandleEventDeleted(ctx context.Context, args EventDeletedArgs) (err error) {
	ctx, span := m.startSpan(ctx, "HandleEventDeleted", attribute.String("event.id", args.EventID.String()))
	defer func() { endSpan(span, err) }()

	if err := m.pruneFeeds(ctx, args.EventID, func(string) bool { return false }); err != nil {
		return err
	}
	if err := m.index.Delete(ctx, creatorItem(args.OwnerID, args.EventID, args.CreatedAt)); err != nil {
		return fmt.Errorf("unindex creator event: %w", err)
	}
	for _, follower := range args.Followers {
		if err := m.index.Delete(ctx, followItem(follower.UserID, args.EventID, follower.FollowedAt)); err != nil {
			return fmt.Errorf("unindex event follow: %w", err)
		}
	}
	return nil
}

// HandleEventFollowed 镜像关注关系并把事件写入关注者 Feed。
func (m *FeedMaterializer) HandleEventFollowed(ctx context.Context, args EventFollowedArgs) (err error) {
	ctx, span := m.startSpan(ctx, "HandleEventFollowed",
		attribute.String("event.id", args.EventID.String()),
		attribute.String("user.id", args.UserID.String()))
	defer func() { endSpan(span, err) }()

	event, err := m.loadEvent(ctx, args.EventID, TaskEventFollowed)
	if err != nil || event == nil {
		return err
	}
	follow, err := m.follows.GetEventFollow(ctx, nil, args.UserID, args.EventID)
	switch {
	case errors.Is(err, repositories.ErrEventFollowNotFound):
		// 任务执行前已取消关注。
		metrics.FanoutSkips.WithLabelValues(TaskEventFollowed, "follow_gone").Inc()
		return m.reconcileUserFeed(ctx, args.UserID, event)
	case err != nil:
		return fmt.Errorf("get event follow: %w", err)
	}
	if follow.UserID == event.OwnerID {
		metrics.FanoutSkips.WithLabelValues(TaskEventFollowed, "self_follow").Inc()
	} else if _, err := m.index.Insert(ctx, followItem(follow.UserID, follow.EventID, follow.CreatedAt)); err != nil {
		return fmt.Errorf("index event follow: %w", err)
	}
	return m.reconcileUserFeed(ctx, args.UserID, event)
}

// HandleEventUnfollowed 移除关注镜像；Feed 条目仅在没有其它理由时删除。
func (m *FeedMaterializer) HandleEventUnfollowed(ctx context.Context, args EventUnfollowedArgs) (err error) {
	ctx, span := m.startSpan(ctx, "HandleEventUnfollowed",
		attribute.String("event.id", args.EventID.String()),
		attribute.String("user.id", args.UserID.String()))
	defer func() { endSpan(span, err) }()

	item := followItem(args.UserID, args.EventID, args.FollowedAt)
	current, err := m.follows.GetEventFollow(ctx, nil, args.UserID, args.EventID)
	switch {
	case errors.Is(err, repositories.ErrEventFollowNotFound):
		if err := m.index.Delete(ctx, item); err != nil {
			return fmt.Errorf("unindex event follow: %w", err)
		}
	case err != nil:
		return fmt.Errorf("get event follow: %w", err)
	case followItem(current.UserID, current.EventID, current.CreatedAt) != item:
		// 重新关注后旧的取消关注才到达，只移除旧时间戳对应的条目。
		if err := m.index.Delete(ctx, item); err != nil {
			return fmt.Errorf("unindex event follow: %w", err)
		}
	default:
		metrics.FanoutSkips.WithLabelValues(TaskEventUnfollowed, "follow_restored").Inc()
	}
	return m.reconcileByID(ctx, args.UserID, args.EventID)
}

// HandleListFollowChanged 对列表内每个事件重新判定关注者 Feed 的成员关系。
func (m *FeedMaterializer) HandleListFollowChanged(ctx context.Context, args ListFollowChangedArgs) (err error) {
	ctx, span := m.startSpan(ctx, "HandleListFollowChanged",
		attribute.String("list.id", args.ListID.String()),
		attribute.String("user.id", args.UserID.String()))
	defer func() { endSpan(span, err) }()

	events, err := m.events.ListByList(ctx, nil, args.ListID)
	if err != nil {
		return fmt.Errorf("list events by list: %w", err)
	}
	seen := make(map[uuid.UUID]struct{}, len(events)+len(args.EventIDs))
	for _, event := range events {
		seen[event.ID] = struct{}{}
		if err := m.reconcileUserFeed(ctx, args.UserID, event); err != nil {
			return err
		}
	}
	for _, eventID := range args.EventIDs {
		if _, ok := seen[eventID]; ok {
			continue
		}
		seen[eventID] = struct{}{}
		if err := m.reconcileByID(ctx, args.UserID, eventID); err != nil {
			return err
		}
	}
	return nil
}

// HandleListMembershipChanged 对列表的每个关注者重新判定事件的成员关系。
func (m *FeedMaterializer) HandleListMembershipChanged(ctx context.Context, args ListMembershipChangedArgs) (err error) {
	ctx, span := m.startSpan(ctx, "HandleListMembershipChanged",
		attribute.String("list.id", args.ListID.String()),
		attribute.String("event.id", args.EventID.String()))
	defer func() { endSpan(span, err) }()

	event, err := m.loadEvent(ctx, args.EventID, TaskListMembershipChanged)
	if err != nil || event == nil {
		return err
	}
	followers, err := m.lists.ListFollowerIDs(ctx, nil, args.ListID)
	if err != nil {
		return fmt.Errorf("list list followers: %w", err)
	}
	for _, followerID := range followers {
		if err := m.reconcileUserFeed(ctx, followerID, event); err != nil {
			return err
		}
	}
	return nil
}

// HandleUserFollowChanged 对被关注用户的每个事件重新判定关注者 Feed 的成员关系。
func (m *FeedMaterializer) HandleUserFollowChanged(ctx context.Context, args UserFollowChangedArgs) (err error) {
	ctx, span := m.startSpan(ctx, "HandleUserFollowChanged",
		attribute.String("follower.id", args.FollowerID.String()),
		attribute.String("following.id", args.FollowingID.String()))
	defer func() { endSpan(span, err) }()

	events, err := m.events.ListByOwner(ctx, nil, args.FollowingID)
	if err != nil {
		return fmt.Errorf("list events by owner: %w", err)
	}
	for _, event := range events {
		if err := m.reconcileUserFeed(ctx, args.FollowerID, event); err != nil {
			return err
		}
	}
	return nil
}

// PurgeUser 清空用户自己的 Feed 与三个用户级命名空间，供用户删除级联调用。
func (m *FeedMaterializer) PurgeUser(ctx context.Context, userID uuid.UUID) (err error) {
	ctx, span := m.startSpan(ctx, "PurgeUser", attribute.String("user.id", userID.String()))
	defer func() { endSpan(span, err) }()

	feedID := po.UserFeedID(userID)
	namespaces := []string{
		aggregate.FeedNamespace(feedID),
		aggregate.EventsByCreatorNamespace(userID),
		aggregate.EventFollowsByUserNamespace(userID),
	}
	for _, ns := range namespaces {
		if err := m.index.Clear(ctx, ns); err != nil {
			return fmt.Errorf("clear namespace %s: %w", ns, err)
		}
	}
	removed, err := m.entries.DeleteByFeed(ctx, nil, feedID)
	if err != nil {
		return fmt.Errorf("delete feed entries: %w", err)
	}
	metrics.FeedWrites.WithLabelValues("delete").Add(float64(removed))
	return nil
}

// fanout 依次写入创建者 Feed、discover 与关注者 Feed，然后移除多余条目。
func (m *FeedMaterializer) fanout(ctx context.Context, event *po.Event) error {
	creatorFeed := po.UserFeedID(event.OwnerID)
	if _, err := m.upsertEntry(ctx, creatorFeed, event); err != nil {
		return err
	}
	if !event.IsPublic() {
		return m.pruneFeeds(ctx, event.ID, func(feedID string) bool { return feedID == creatorFeed })
	}

	desired := map[string]struct{}{creatorFeed: {}, po.DiscoverFeedID: {}}
	if _, err := m.upsertEntry(ctx, po.DiscoverFeedID, event); err != nil {
		return err
	}
	followers, err := m.followerIDs(ctx, event)
	if err != nil {
		return err
	}
	for _, followerID := range followers {
		feedID := po.UserFeedID(followerID)
		desired[feedID] = struct{}{}
		if _, err := m.upsertEntry(ctx, feedID, event); err != nil {
			return err
		}
	}
	return m.pruneFeeds(ctx, event.ID, func(feedID string) bool {
		_, ok := desired[feedID]
		return ok
	})
}

// followerIDs 汇总事件关注、列表关注与用户关注三类关注者，去重并排除创建者。
func (m *FeedMaterializer) followerIDs(ctx context.Context, event *po.Event) ([]uuid.UUID, error) {
	seen := map[uuid.UUID]struct{}{event.OwnerID: {}}
	var out []uuid.UUID
	add := func(id uuid.UUID) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	follows, err := m.follows.ListEventFollowers(ctx, nil, event.ID)
	if err != nil {
		return nil, fmt.Errorf("list event followers: %w", err)
	}
	for _, follow := range follows {
		add(follow.UserID)
	}
	listFollowers, err := m.lists.ListFollowerIDsByEvent(ctx, nil, event.ID)
	if err != nil {
		return nil, fmt.Errorf("list list followers by event: %w", err)
	}
	for _, id := range listFollowers {
		add(id)
	}
	userFollowers, err := m.follows.ListUserFollowerIDs(ctx, nil, event.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("list user followers: %w", err)
	}
	for _, id := range userFollowers {
		add(id)
	}
	return out, nil
}

// reconcileUserFeed 重新推导 user_<userID> 是否应包含事件：创建者恒保留，
// 公开事件仅在仍存在事件、列表或用户关注时保留。
func (m *FeedMaterializer) reconcileUserFeed(ctx context.Context, userID uuid.UUID, event *po.Event) error {
	feedID := po.UserFeedID(userID)
	keep := event.OwnerID == userID
	if !keep && event.IsPublic() {
		reason, err := m.follows.HasFollowReason(ctx, nil, userID, event.ID)
		if err != nil {
			return fmt.Errorf("check follow reason: %w", err)
		}
		keep = reason
	}
	if keep {
		_, err := m.upsertEntry(ctx, feedID, event)
		return err
	}
	_, err := m.removeFromFeed(ctx, feedID, event.ID)
	return err
}

func (m *FeedMaterializer) reconcileByID(ctx context.Context, userID, eventID uuid.UUID) error {
	event, err := m.events.Get(ctx, nil, eventID)
	switch {
	case errors.Is(err, repositories.ErrEventNotFound):
		_, err = m.removeFromFeed(ctx, po.UserFeedID(userID), eventID)
		return err
	case err != nil:
		return fmt.Errorf("get event: %w", err)
	}
	return m.reconcileUserFeed(ctx, userID, event)
}

// upsertEntry 写入或修补一条 Feed 条目，返回是否发生了行写入。
func (m *FeedMaterializer) upsertEntry(ctx context.Context, feedID string, event *po.Event) (bool, error) {
	desired := po.NewFeedEntry(po.FeedEntryParams{
		FeedID:    feedID,
		EventID:   event.ID,
		StartTime: event.StartTime,
		EndTime:   event.EndTime,
		Now:       m.clock.Now(),
	})
	item := feedItem(feedID, event.ID, desired.HasEnded)

	existing, err := m.entries.Get(ctx, nil, feedID, event.ID)
	switch {
	case errors.Is(err, repositories.ErrFeedEntryNotFound):
		if _, err := m.index.Insert(ctx, item); err != nil {
			return false, fmt.Errorf("index feed entry: %w", err)
		}
		if err := m.entries.Insert(ctx, nil, desired); err != nil {
			if errors.Is(err, repositories.ErrDuplicateFeedEntry) {
				metrics.FeedWrites.WithLabelValues("insert_race").Inc()
				return false, nil
			}
			return false, fmt.Errorf("insert feed entry: %w", err)
		}
		metrics.FeedWrites.WithLabelValues("insert").Inc()
		return true, nil
	case err != nil:
		return false, fmt.Errorf("get feed entry: %w", err)
	}

	patched := *existing
	patched.EventStartTime = desired.EventStartTime
	patched.EventEndTime = desired.EventEndTime
	patched.HasEnded = desired.HasEnded
	if existing.SameSnapshot(patched) {
		metrics.FeedWrites.WithLabelValues("noop").Inc()
		return false, nil
	}
	patched.UpdatedAt = desired.UpdatedAt

	old := feedItem(feedID, event.ID, existing.HasEnded)
	if err := m.index.ReplaceOrInsert(ctx, old, item); err != nil {
		return false, fmt.Errorf("reindex feed entry: %w", err)
	}
	if err := m.entries.UpdateSnapshot(ctx, nil, patched); err != nil {
		if errors.Is(err, repositories.ErrFeedEntryNotFound) {
			// 行已被并发删除，撤销刚写入的索引条目。
			if _, delErr := m.index.DeleteIfExists(ctx, item); delErr != nil {
				return false, fmt.Errorf("unindex feed entry: %w", delErr)
			}
			return false, nil
		}
		return false, fmt.Errorf("update feed entry: %w", err)
	}
	metrics.FeedWrites.WithLabelValues("patch").Inc()
	return true, nil
}

func (m *FeedMaterializer) removeFromFeed(ctx context.Context, feedID string, eventID uuid.UUID) (bool, error) {
	existing, err := m.entries.Get(ctx, nil, feedID, eventID)
	switch {
	case errors.Is(err, repositories.ErrFeedEntryNotFound):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("get feed entry: %w", err)
	}
	return m.removeEntry(ctx, existing)
}

func (m *FeedMaterializer) removeEntry(ctx context.Context, entry *po.FeedEntry) (bool, error) {
	if _, err := m.index.DeleteIfExists(ctx, feedItem(entry.FeedID, entry.EventID, entry.HasEnded)); err != nil {
		return false, fmt.Errorf("unindex feed entry: %w", err)
	}
	deleted, err := m.entries.Delete(ctx, nil, entry.FeedID, entry.EventID)
	if err != nil {
		return false, fmt.Errorf("delete feed entry: %w", err)
	}
	if deleted {
		metrics.FeedWrites.WithLabelValues("delete").Inc()
	}
	return deleted, nil
}

// pruneFeeds 删除事件在 keep 之外所有 Feed 中的条目。
func (m *FeedMaterializer) pruneFeeds(ctx context.Context, eventID uuid.UUID, keep func(feedID string) bool) error {
	entries, err := m.entries.ListByEvent(ctx, nil, eventID)
	if err != nil {
		return fmt.Errorf("list feed entries by event: %w", err)
	}
	for _, entry := range entries {
		if keep(entry.FeedID) {
			continue
		}
		if _, err := m.removeEntry(ctx, entry); err != nil {
			return err
		}
	}
	return nil
}

// loadEvent 读取事件；不存在时记录跳过并返回 (nil, nil)。
func (m *FeedMaterializer) loadEvent(ctx context.Context, eventID uuid.UUID, trigger string) (*po.Event, error) {
	event, err := m.events.Get(ctx, nil, eventID)
	switch {
	case errors.Is(err, repositories.ErrEventNotFound):
		metrics.FanoutSkips.WithLabelValues(trigger, "event_not_found").Inc()
		m.log.WithContext(ctx).Infow("msg", "event not found, skip fan-out", "event_id", eventID, "trigger", trigger)
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

func (m *FeedMaterializer) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return m.tracer.Start(ctx, "FeedMaterializer."+name, trace.WithAttributes(attrs...))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func creatorItem(ownerID, eventID uuid.UUID, createdAt time.Time) aggregate.Item {
	return aggregate.Item{
		Namespace: aggregate.EventsByCreatorNamespace(ownerID),
		SortKey:   aggregate.TimeSortKey(createdAt),
		ItemID:    eventID.String(),
	}
}

func followItem(userID, eventID uuid.UUID, followedAt time.Time) aggregate.Item {
	return aggregate.Item{
		Namespace: aggregate.EventFollowsByUserNamespace(userID),
		SortKey:   aggregate.TimeSortKey(followedAt),
		ItemID:    eventID.String(),
	}
}

func feedItem(feedID string, eventID uuid.UUID, hasEnded bool) aggregate.Item {
	return aggregate.Item{
		Namespace: aggregate.FeedNamespace(feedID),
		SortKey:   aggregate.EndedSortKey(hasEnded),
		ItemID:    eventID.String(),
	}
}
