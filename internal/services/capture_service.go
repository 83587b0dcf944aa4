package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/juju/clock"

	"github.com/jaronheard/soonlist-turbo-sub000/internal/metrics"
	"github.com/jaronheard/soonlist-turbo-sub000/internal/models/po"
	"github.com/jaronheard/soonlist-turbo-sub000/internal/repositories"
	"github.com/jaronheard/soonlist-turbo-sub000/internal/txmanager"
)

// CreateUserInput 描述新用户。
type CreateUserInput struct {
	Username   string
	WeeklyGoal *int32
}

// CreateEventInput 描述新事件；Visibility 为空时按公开处理。
type CreateEventInput struct {
	OwnerID    uuid.UUID
	Visibility po.Visibility
	StartTime  time.Time
	EndTime    time.Time
}

// UpdateEventInput 描述事件更新，ActorID 必须是事件所有者。
type UpdateEventInput struct {
	ActorID    uuid.UUID
	EventID    uuid.UUID
	Visibility po.Visibility
	StartTime  time.Time
	EndTime    time.Time
}

// CaptureService 执行主库写入并入队扇出任务。入队失败只记录日志，不影响主写入结果。
type CaptureService struct {
	users     UserStore
	events    EventStore
	lists     ListStore
	follows   FollowStore
	comments  CommentStore
	entries   FeedEntryStore
	txManager txmanager.Manager
	scheduler Scheduler
	purger    userPurger
	userCache UserCache
	clock     clock.Clock
	log       *log.Helper
}

type userPurger interface {
	PurgeUser(ctx context.Context, userID uuid.UUID) error
}

// NewCaptureService 构造 CaptureService。
func NewCaptureService(
	users UserStore,
	events EventStore,
	lists ListStore,
	follows FollowStore,
	comments CommentStore,
	entries FeedEntryStore,
	txManager txmanager.Manager,
	scheduler Scheduler,
	materializer *FeedMaterializer,
	userCache UserCache,
	clk clock.Clock,
	logger log.Logger,
) *CaptureService {
	return &CaptureService{
		users:     users,
		events:    events,
		lists:     lists,
		follows:   follows,
		comments:  comments,
		entries:   entries,
		txManager: txManager,
		scheduler: scheduler,
		purger:    materializer,
		userCache: userCache,
		clock:     clk,
		log:       log.NewHelper(logger),
	}
}

// CreateUser 写入用户。
func (s *CaptureService) CreateUser(ctx context.Context, input CreateUserInput) (*po.User, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", ErrInvalidArgument)
	}
	if input.WeeklyGoal != nil && *input.WeeklyGoal < 0 {
		return nil, fmt.Errorf("%w: weekly goal must not be negative", ErrInvalidArgument)
	}
	user, err := s.users.Create(ctx, nil, repositories.CreateUserInput{
		ID:         uuid.New(),
		Username:   username,
		WeeklyGoal: input.WeeklyGoal,
		CreatedAt:  s.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// UpdateWeeklyGoal 更新周目标；goal 为 nil 时回落到默认值。
func (s *CaptureService) UpdateWeeklyGoal(ctx context.Context, userID uuid.UUID, goal *int32) error {
	if goal != nil && *goal < 0 {
		return fmt.Errorf("%w: weekly goal must not be negative", ErrInvalidArgument)
	}
	if err := s.users.UpdateWeeklyGoal(ctx, nil, userID, goal); err != nil {
		return fmt.Errorf("update weekly goal: %w", err)
	}
	s.forgetUser(userID)
	return nil
}

// CreateEvent 写入事件并入队扇出。
func (s *CaptureService) CreateEvent(ctx context.Context, input CreateEventInput) (*po.Event, error) {
	visibility := input.Visibility
	if visibility == "" {
		visibility = po.VisibilityPublic
	}
	if err := validateEventWindow(visibility, input.StartTime, input.EndTime); err != nil {
		return nil, err
	}
	if _, err := s.users.Get(ctx, nil, input.OwnerID); err != nil {
		return nil, fmt.Errorf("get owner: %w", err)
	}
	event, err := s.events.Create(ctx, nil, repositories.CreateEventInput{
		ID:         uuid.New(),
		OwnerID:    input.OwnerID,
		Visibility: visibility,
		StartTime:  input.StartTime,
		EndTime:    input.EndTime,
		CreatedAt:  s.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	s.enqueue(ctx, TaskEventUpserted, EventUpsertedArgs{EventID: event.ID})
	return event, nil
}

// UpdateEvent 更新事件的时间与可见性并入队扇出。
func (s *CaptureService) UpdateEvent(ctx context.Context, input UpdateEventInput) (*po.Event, error) {
	if err := validateEventWindow(input.Visibility, input.StartTime, input.EndTime); err != nil {
		return nil, err
	}
	current, err := s.events.Get(ctx, nil, input.EventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if current.OwnerID != input.ActorID {
		return nil, ErrPermissionDenied
	}
	event, err := s.events.Update(ctx, nil, repositories.UpdateEventInput{
		ID:         input.EventID,
		Visibility: input.Visibility,
		StartTime:  input.StartTime,
		EndTime:    input.EndTime,
		UpdatedAt:  s.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}
	s.enqueue(ctx, TaskEventUpserted, EventUpsertedArgs{EventID: event.ID})
	return event, nil
}

// DeleteEvent 删除事件及其评论、关注与列表关联，然后入队扇出清理。
func (s *CaptureService) DeleteEvent(ctx context.Context, actorID, eventID uuid.UUID) error {
	var deleted *EventDeletedArgs
	err := s.txManager.WithinTx(ctx, txmanager.TxOptions{}, func(txCtx context.Context, sess txmanager.Session) error {
		event, err := s.events.Get(txCtx, sess, eventID)
		if err != nil {
			return fmt.Errorf("get event: %w", err)
		}
		if event.OwnerID != actorID {
			return ErrPermissionDenied
		}
		args, err := s.deleteEventTx(txCtx, sess, event)
		if err != nil {
			return err
		}
		deleted = args
		return nil
	})
	if err != nil {
		return err
	}
	s.enqueue(ctx, TaskEventDeleted, *deleted)
	return nil
}

func (s *CaptureService) deleteEventTx(ctx context.Context, sess txmanager.Session, event *po.Event) (*EventDeletedArgs, error) {
	follows, err := s.follows.ListEventFollowers(ctx, sess, event.ID)
	if err != nil {
		return nil, fmt.Errorf("list event followers: %w", err)
	}
	if _, err := s.comments.DeleteByEvent(ctx, sess, event.ID); err != nil {
		return nil, fmt.Errorf("delete comments: %w", err)
	}
	if err := s.follows.DeleteEventFollowsByEvent(ctx, sess, event.ID); err != nil {
		return nil, fmt.Errorf("delete event follows: %w", err)
	}
	if err := s.lists.DeleteMembershipsByEvent(ctx, sess, event.ID); err != nil {
		return nil, fmt.Errorf("delete list memberships: %w", err)
	}
	if _, err := s.events.Delete(ctx, sess, event.ID); err != nil {
		return nil, fmt.Errorf("delete event: %w", err)
	}
	args := &EventDeletedArgs{
		EventID:   event.ID,
		OwnerID:   event.OwnerID,
		CreatedAt: event.CreatedAt,
		Followers: make([]FollowerRef, 0, len(follows)),
	}
	for _, follow := range follows {
		args.Followers = append(args.Followers, FollowerRef{UserID: follow.UserID, FollowedAt: follow.CreatedAt})
	}
	return args, nil
}

// FollowEvent 记录事件关注。重复关注是 no-op，但仍会入队以便收敛。
func (s *CaptureService) FollowEvent(ctx context.Context, userID, eventID uuid.UUID) error {
	if _, err := s.events.Get(ctx, nil, eventID); err != nil {
		return fmt.Errorf("get event: %w", err)
	}
	if _, err := s.follows.FollowEvent(ctx, nil, userID, eventID, s.now()); err != nil {
		return fmt.Errorf("follow event: %w", err)
	}
	s.enqueue(ctx, TaskEventFollowed, EventFollowedArgs{UserID: userID, EventID: eventID})
	return nil
}

// UnfollowEvent 删除事件关注；关注不存在时是 no-op。
func (s *CaptureService) UnfollowEvent(ctx context.Context, userID, eventID uuid.UUID) error {
	follow, err := s.follows.UnfollowEvent(ctx, nil, userID, eventID)
	switch {
	case errors.Is(err, repositories.ErrEventFollowNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("unfollow event: %w", err)
	}
	s.enqueue(ctx, TaskEventUnfollowed, EventUnfollowedArgs{
		UserID:     userID,
		EventID:    eventID,
		FollowedAt: follow.CreatedAt,
	})
	return nil
}

// CreateList 创建列表。
func (s *CaptureService) CreateList(ctx context.Context, ownerID uuid.UUID, name string) (*po.List, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: list name is required", ErrInvalidArgument)
	}
	list, err := s.lists.Create(ctx, nil, repositories.CreateListInput{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Name:      name,
		CreatedAt: s.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("create list: %w", err)
	}
	return list, nil
}

// DeleteList 删除列表，并为每个关注者入队对账。
func (s *CaptureService) DeleteList(ctx context.Context, actorID, listID uuid.UUID) error {
	var changes []ListFollowChangedArgs
	err := s.txManager.WithinTx(ctx, txmanager.TxOptions{}, func(txCtx context.Context, sess txmanager.Session) error {
		list, err := s.lists.Get(txCtx, sess, listID)
		if err != nil {
			return fmt.Errorf("get list: %w", err)
		}
		if list.OwnerID != actorID {
			return ErrPermissionDenied
		}
		changes, err = s.deleteListTx(txCtx, sess, list.ID)
		return err
	})
	if err != nil {
		return err
	}
	for _, change := range changes {
		s.enqueue(ctx, TaskListFollowChanged, change)
	}
	return nil
}

func (s *CaptureService) deleteListTx(ctx context.Context, sess txmanager.Session, listID uuid.UUID) ([]ListFollowChangedArgs, error) {
	changes, err := s.listFollowChanges(ctx, sess, listID)
	if err != nil {
		return nil, err
	}
	if err := s.lists.DeleteFollowsByList(ctx, sess, listID); err != nil {
		return nil, fmt.Errorf("delete list follows: %w", err)
	}
	if err := s.lists.DeleteMembershipsByList(ctx, sess, listID); err != nil {
		return nil, fmt.Errorf("delete list memberships: %w", err)
	}
	if _, err := s.lists.Delete(ctx, sess, listID); err != nil {
		return nil, fmt.Errorf("delete list: %w", err)
	}
	return changes, nil
}

// listFollowChanges 捕获列表当前的关注者与事件，删除后据此对账。
func (s *CaptureService) listFollowChanges(ctx context.Context, sess txmanager.Session, listID uuid.UUID) ([]ListFollowChangedArgs, error) {
	followers, err := s.lists.ListFollowerIDs(ctx, sess, listID)
	if err != nil {
		return nil, fmt.Errorf("list list followers: %w", err)
	}
	if len(followers) == 0 {
		return nil, nil
	}
	events, err := s.events.ListByList(ctx, sess, listID)
	if err != nil {
		return nil, fmt.Errorf("list events by list: %w", err)
	}
	eventIDs := make([]uuid.UUID, 0, len(events))
	for _, event := range events {
		eventIDs = append(eventIDs, event.ID)
	}
	changes := make([]ListFollowChangedArgs, 0, len(followers))
	for _, followerID := range followers {
		changes = append(changes, ListFollowChangedArgs{UserID: followerID, ListID: listID, EventIDs: eventIDs})
	}
	return changes, nil
}

// AddEventToList 把事件加入列表，只有列表所有者可以操作。
func (s *CaptureService) AddEventToList(ctx context.Context, actorID, listID, eventID uuid.UUID) error {
	if err := s.authorizeList(ctx, actorID, listID); err != nil {
		return err
	}
	if _, err := s.events.Get(ctx, nil, eventID); err != nil {
		return fmt.Errorf("get event: %w", err)
	}
	if _, err := s.lists.AddMembership(ctx, nil, listID, eventID, s.now()); err != nil {
		return fmt.Errorf("add list membership: %w", err)
	}
	s.enqueue(ctx, TaskListMembershipChanged, ListMembershipChangedArgs{ListID: listID, EventID: eventID})
	return nil
}

// RemoveEventFromList 把事件移出列表。
func (s *CaptureService) RemoveEventFromList(ctx context.Context, actorID, listID, eventID uuid.UUID) error {
	if err := s.authorizeList(ctx, actorID, listID); err != nil {
		return err
	}
	removed, err := s.lists.RemoveMembership(ctx, nil, listID, eventID)
	if err != nil {
		return fmt.Errorf("remove list membership: %w", err)
	}
	if removed {
		s.enqueue(ctx, TaskListMembershipChanged, ListMembershipChangedArgs{ListID: listID, EventID: eventID})
	}
	return nil
}

// FollowList 关注列表。
func (s *CaptureService) FollowList(ctx context.Context, userID, listID uuid.UUID) error {
	if _, err := s.lists.Get(ctx, nil, listID); err != nil {
		return fmt.Errorf("get list: %w", err)
	}
	if _, err := s.lists.Follow(ctx, nil, userID, listID, s.now()); err != nil {
		return fmt.Errorf("follow list: %w", err)
	}
	s.enqueue(ctx, TaskListFollowChanged, ListFollowChangedArgs{UserID: userID, ListID: listID})
	return nil
}

// UnfollowList 取消关注列表，并带上此刻列表内的事件供对账。
func (s *CaptureService) UnfollowList(ctx context.Context, userID, listID uuid.UUID) error {
	removed, err := s.lists.Unfollow(ctx, nil, userID, listID)
	if err != nil {
		return fmt.Errorf("unfollow list: %w", err)
	}
	if !removed {
		return nil
	}
	events, err := s.events.ListByList(ctx, nil, listID)
	if err != nil {
		return fmt.Errorf("list events by list: %w", err)
	}
	eventIDs := make([]uuid.UUID, 0, len(events))
	for _, event := range events {
		eventIDs = append(eventIDs, event.ID)
	}
	s.enqueue(ctx, TaskListFollowChanged, ListFollowChangedArgs{UserID: userID, ListID: listID, EventIDs: eventIDs})
	return nil
}

// FollowUser 关注用户，不允许关注自己。
func (s *CaptureService) FollowUser(ctx context.Context, followerID, followingID uuid.UUID) error {
	if followerID == followingID {
		return fmt.Errorf("%w: cannot follow yourself", ErrInvalidArgument)
	}
	if _, err := s.users.Get(ctx, nil, followingID); err != nil {
		return fmt.Errorf("get user: %w", err)
	}
	if _, err := s.follows.FollowUser(ctx, nil, followerID, followingID, s.now()); err != nil {
		return fmt.Errorf("follow user: %w", err)
	}
	s.enqueue(ctx, TaskUserFollowChanged, UserFollowChangedArgs{FollowerID: followerID, FollowingID: followingID})
	return nil
}

// UnfollowUser 取消关注用户。
func (s *CaptureService) UnfollowUser(ctx context.Context, followerID, followingID uuid.UUID) error {
	removed, err := s.follows.UnfollowUser(ctx, nil, followerID, followingID)
	if err != nil {
		return fmt.Errorf("unfollow user: %w", err)
	}
	if removed {
		s.enqueue(ctx, TaskUserFollowChanged, UserFollowChangedArgs{FollowerID: followerID, FollowingID: followingID})
	}
	return nil
}

// AddComment 写入评论。评论不参与扇出。
func (s *CaptureService) AddComment(ctx context.Context, userID, eventID uuid.UUID, body string) (*po.Comment, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, fmt.Errorf("%w: comment body is required", ErrInvalidArgument)
	}
	if _, err := s.events.Get(ctx, nil, eventID); err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	comment, err := s.comments.Create(ctx, nil, repositories.CreateCommentInput{
		ID:        uuid.New(),
		EventID:   eventID,
		UserID:    userID,
		Body:      body,
		CreatedAt: s.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return comment, nil
}

// DeleteUser 按依赖顺序级联删除用户：评论、事件关注、列表关注、用户关注、列表成员、
// 自有事件与列表、user_<id> Feed 条目，最后是用户记录。扇出清理在提交后入队。
func (s *CaptureService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	var (
		deletedEvents []EventDeletedArgs
		listChanges   []ListFollowChangedArgs
	)
	err := s.txManager.WithinTx(ctx, txmanager.TxOptions{}, func(txCtx context.Context, sess txmanager.Session) error {
		if _, err := s.users.Get(txCtx, sess, userID); err != nil {
			return fmt.Errorf("get user: %w", err)
		}
		if _, err := s.comments.DeleteByUser(txCtx, sess, userID); err != nil {
			return fmt.Errorf("delete comments: %w", err)
		}
		if err := s.follows.DeleteEventFollowsByUser(txCtx, sess, userID); err != nil {
			return fmt.Errorf("delete event follows: %w", err)
		}
		if err := s.lists.DeleteFollowsByUser(txCtx, sess, userID); err != nil {
			return fmt.Errorf("delete list follows: %w", err)
		}
		if err := s.follows.DeleteUserFollowsByUser(txCtx, sess, userID); err != nil {
			return fmt.Errorf("delete user follows: %w", err)
		}

		ownedLists, err := s.lists.ListByOwner(txCtx, sess, userID)
		if err != nil {
			return fmt.Errorf("list owned lists: %w", err)
		}
		for _, list := range ownedLists {
			changes, err := s.listFollowChanges(txCtx, sess, list.ID)
			if err != nil {
				return err
			}
			listChanges = append(listChanges, changes...)
		}
		if _, err := s.lists.DeleteMembershipsByOwner(txCtx, sess, userID); err != nil {
			return fmt.Errorf("delete list memberships: %w", err)
		}

		ownedEvents, err := s.events.ListByOwner(txCtx, sess, userID)
		if err != nil {
			return fmt.Errorf("list owned events: %w", err)
		}
		for _, event := range ownedEvents {
			args, err := s.deleteEventTx(txCtx, sess, event)
			if err != nil {
				return err
			}
			deletedEvents = append(deletedEvents, *args)
		}
		for _, list := range ownedLists {
			if _, err := s.deleteListTx(txCtx, sess, list.ID); err != nil {
				return err
			}
		}

		if _, err := s.entries.DeleteByFeed(txCtx, sess, po.UserFeedID(userID)); err != nil {
			return fmt.Errorf("delete user feed entries: %w", err)
		}
		if _, err := s.users.Delete(txCtx, sess, userID); err != nil {
			return fmt.Errorf("delete user: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.forgetUser(userID)

	if err := s.purger.PurgeUser(ctx, userID); err != nil {
		s.log.WithContext(ctx).Errorw("msg", "purge user aggregates failed", "user_id", userID, "error", err)
	}
	for _, args := range deletedEvents {
		s.enqueue(ctx, TaskEventDeleted, args)
	}
	for _, change := range listChanges {
		s.enqueue(ctx, TaskListFollowChanged, change)
	}
	return nil
}

func (s *CaptureService) authorizeList(ctx context.Context, actorID, listID uuid.UUID) error {
	list, err := s.lists.Get(ctx, nil, listID)
	if err != nil {
		return fmt.Errorf("get list: %w", err)
	}
	if list.OwnerID != actorID {
		return ErrPermissionDenied
	}
	return nil
}

// enqueue 入队扇出任务；失败只记录日志与指标。
func (s *CaptureService) enqueue(ctx context.Context, name string, args any) {
	if err := s.scheduler.ScheduleAfter(ctx, 0, name, args); err != nil {
		metrics.SchedulingFailures.WithLabelValues(name).Inc()
		s.log.WithContext(ctx).Errorw("msg", "schedule fan-out failed", "task", name,
			"error", fmt.Errorf("%w: %v", ErrSchedulingFailed, err))
	}
}

func (s *CaptureService) forgetUser(userID uuid.UUID) {
	if s.userCache != nil {
		s.userCache.ForgetUser(userID)
	}
}

func (s *CaptureService) now() time.Time {
	return s.clock.Now().UTC()
}

func validateEventWindow(visibility po.Visibility, start, end time.Time) error {
	if !visibility.Valid() {
		return fmt.Errorf("%w: visibility %q", ErrInvalidArgument, visibility)
	}
	if start.IsZero() || end.IsZero() {
		return fmt.Errorf("%w: start and end time are required", ErrInvalidArgument)
	}
	if end.Before(start) {
		return fmt.Errorf("%w: end time before start time", ErrInvalidArgument)
	}
	return nil
}
