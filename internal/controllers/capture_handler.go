package controllers

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/protobuf/types/known/timestamppb"

	feedindexv1 "github.com/jaronheard/soonlist-turbo-sub000/api/feedindex/v1"
	"github.com/jaronheard/soonlist-turbo-sub000/internal/models/po"
	"github.com/jaronheard/soonlist-turbo-sub000/internal/services"
)

// CaptureServiceAPI 定义主库写入能力，由 services.CaptureService 实现。
type CaptureServiceAPI interface {
	CreateUser(ctx context.Context, input services.CreateUserInput) (*po.User, error)
	UpdateWeeklyGoal(ctx context.Context, userID uuid.UUID, goal *int32) error
	DeleteUser(ctx context.Context, userID uuid.UUID) error
	CreateEvent(ctx context.Context, input services.CreateEventInput) (*po.Event, error)
	UpdateEvent(ctx context.Context, input services.UpdateEventInput) (*po.Event, error)
	DeleteEvent(ctx context.Context, actorID, eventID uuid.UUID) error
	FollowEvent(ctx context.Context, userID, eventID uuid.UUID) error
	UnfollowEvent(ctx context.Context, userID, eventID uuid.UUID) error
	CreateList(ctx context.Context, ownerID uuid.UUID, name string) (*po.List, error)
	DeleteList(ctx context.Context, actorID, listID uuid.UUID) error
	AddEventToList(ctx context.Context, actorID, listID, eventID uuid.UUID) error
	RemoveEventFromList(ctx context.Context, actorID, listID, eventID uuid.UUID) error
	FollowList(ctx context.Context, userID, listID uuid.UUID) error
	UnfollowList(ctx context.Context, userID, listID uuid.UUID) error
	FollowUser(ctx context.Context, followerID, followingID uuid.UUID) error
	UnfollowUser(ctx context.Context, followerID, followingID uuid.UUID) error
	AddComment(ctx context.Context, userID, eventID uuid.UUID, body string) (*po.Comment, error)
}

// CreateUser 注册用户，返回服务端分配的 id。调用方无需携带用户信息。
func (h *FeedHandler) CreateUser(ctx context.Context, req *feedindexv1.CreateUserRequest) (*feedindexv1.CreateUserResponse, error) {
	timeoutCtx, cancel := h.WithTimeout(ctx, HandlerTypeCommand)
	defer cancel()

	user, err := h.capture.CreateUser(timeoutCtx, services.CreateUserInput{
		Username:   strings.TrimSpace(req.GetUsername()),
		WeeklyGoal: optionalInt32(req.GetWeeklyGoal()),
	})
	if err != nil {
		return nil, h.toStatus(ctx, "create user", err)
	}
	return &feedindexv1.CreateUserResponse{User: toProtoUser(user)}, nil
}

// UpdateWeeklyGoal 修改调用者的周目标；weekly_goal 未设置时恢复默认值。
func (h *FeedHandler) UpdateWeeklyGoal(ctx context.Context, req *feedindexv1.UpdateWeeklyGoalRequest) (*feedindexv1.UpdateWeeklyGoalResponse, error) {
	actor, err := h.actor(ctx)
	if err != nil {
		return nil, err
	}
	goal := optionalInt32(req.GetWeeklyGoal())
	err = h.command(ctx, "update weekly goal", func(ctx context.Context) error {
		return h.capture.UpdateWeeklyGoal(ctx, actor, goal)
	})
	if err != nil {
		return nil, err
	}
	return &feedindexv1.UpdateWeeklyGoalResponse{}, nil
}

// DeleteUser 删除调用者及其拥有的全部数据。
func (h *FeedHandler) DeleteUser(ctx context.Context, _ *feedindexv1.DeleteUserRequest) (*feedindexv1.DeleteUserResponse, error) {
	actor, err := h.actor(ctx)
	if err != nil {
		return nil, err
	}
	err = h.command(ctx, "delete user", func(ctx context.Context) error {
		return h.capture.DeleteUser(ctx, actor)
	})
	if err != nil {
		return nil, err
	}
	return &feedindexv1.DeleteUserResponse{}, nil
}

// CreateEvent 以调用者为所有者创建事件。
func (h *FeedHandler) CreateEvent(ctx context.Context, req *feedindexv1.CreateEventRequest) (*feedindexv1.CreateEventResponse, error) {
	actor, err := h.actor(ctx)
	if err != nil {
		return nil, err
	}
	start, end, err := eventWindow(req.GetStartTime(), req.GetEndTime())
	if err != nil {
		return nil, err
	}

	timeoutCtx, cancel := h.WithTimeout(ctx, HandlerTypeCommand)
	defer cancel()

	event, err := h.capture.CreateEvent(timeoutCtx, services.CreateEventInput{
		OwnerID:    actor,
		Visibility: parseVisibility(req.GetVisibility()),
		StartTime:  start,
		EndTime:    end,
	})
	if err != nil {
		return nil, h.toStatus(ctx, "create event", err)
	}
	return &feedindexv1.CreateEventResponse{Event: toProtoEvent(event)}, nil
}

// UpdateEvent 修改事件的时间与可见性，只有所有者可以调用。
func (h *FeedHandler) UpdateEvent(ctx context.Context, req *feedindexv1.UpdateEventRequest) (*feedindexv1.UpdateEventResponse, error) {
	actor, err := h.actor(ctx)
	if err != nil {
		return nil, err
	}
	eventID, err := parseID("event_id", req.GetEventId())
	if err != nil {
		return nil, err
	}
	start, end, err := eventWindow(req.GetStartTime(), req.GetEndTime())
	if err != nil {
		return nil, err
	}

	timeoutCtx, cancel := h.WithTimeout(ctx, HandlerTypeCommand)
	defer cancel()

	event, err := h.capture.UpdateEvent(timeoutCtx, services.UpdateEventInput{
		ActorID:    actor,
		EventID:    eventID,
		Visibility: parseVisibility(req.GetVisibility()),
		StartTime:  start,
		EndTime:    end,
	})
	if err != nil {
		return nil, h.toStatus(ctx, "update event", err)
	}
	return &feedindexv1.UpdateEventResponse{Event: toProtoEvent(event)}, nil
}

// DeleteEvent 删除调用者拥有的事件。
func (h *FeedHandler) DeleteEvent(ctx context.Context, req *feedindexv1.DeleteEventRequest) (*feedindexv1.DeleteEventResponse, error) {
	if err := h.actorCommand(ctx, "event_id", req.GetEventId(), "delete event", h.capture.DeleteEvent); err != nil {
		return nil, err
	}
	return &feedindexv1.DeleteEventResponse{}, nil
}

// FollowEvent 关注事件。
func (h *FeedHandler) FollowEvent(ctx context.Context, req *feedindexv1.FollowEventRequest) (*feedindexv1.FollowEventResponse, error) {
	if err := h.actorCommand(ctx, "event_id", req.GetEventId(), "follow event", h.capture.FollowEvent); err != nil {
		return nil, err
	}
	return &feedindexv1.FollowEventResponse{}, nil
}

// UnfollowEvent 取消关注事件。
func (h *FeedHandler) UnfollowEvent(ctx context.Context, req *feedindexv1.UnfollowEventRequest) (*feedindexv1.UnfollowEventResponse, error) {
	if err := h.actorCommand(ctx, "event_id", req.GetEventId(), "unfollow event", h.capture.UnfollowEvent); err != nil {
		return nil, err
	}
	return &feedindexv1.UnfollowEventResponse{}, nil
}

// CreateList 以调用者为所有者创建列表。
func (h *FeedHandler) CreateList(ctx context.Context, req *feedindexv1.CreateListRequest) (*feedindexv1.CreateListResponse, error) {
	actor, err := h.actor(ctx)
	if err != nil {
		return nil, err
	}

	timeoutCtx, cancel := h.WithTimeout(ctx, HandlerTypeCommand)
	defer cancel()

	list, err := h.capture.CreateList(timeoutCtx, actor, strings.TrimSpace(req.GetName()))
	if err != nil {
		return nil, h.toStatus(ctx, "create list", err)
	}
	return &feedindexv1.CreateListResponse{List: toProtoList(list)}, nil
}

// DeleteList 删除调用者拥有的列表。
func (h *FeedHandler) DeleteList(ctx context.Context, req *feedindexv1.DeleteListRequest) (*feedindexv1.DeleteListResponse, error) {
	if err := h.actorCommand(ctx, "list_id", req.GetListId(), "delete list", h.capture.DeleteList); err != nil {
		return nil, err
	}
	return &feedindexv1.DeleteListResponse{}, nil
}

// AddEventToList 把事件加入调用者拥有的列表。
func (h *FeedHandler) AddEventToList(ctx context.Context, req *feedindexv1.AddEventToListRequest) (*feedindexv1.AddEventToListResponse, error) {
	if err := h.membershipCommand(ctx, req.GetListId(), req.GetEventId(), "add event to list", h.capture.AddEventToList); err != nil {
		return nil, err
	}
	return &feedindexv1.AddEventToListResponse{}, nil
}

// RemoveEventFromList 把事件移出调用者拥有的列表。
func (h *FeedHandler) RemoveEventFromList(ctx context.Context, req *feedindexv1.RemoveEventFromListRequest) (*feedindexv1.RemoveEventFromListResponse, error) {
	if err := h.membershipCommand(ctx, req.GetListId(), req.GetEventId(), "remove event from list", h.capture.RemoveEventFromList); err != nil {
		return nil, err
	}
	return &feedindexv1.RemoveEventFromListResponse{}, nil
}

// FollowList 关注列表。
func (h *FeedHandler) FollowList(ctx context.Context, req *feedindexv1.FollowListRequest) (*feedindexv1.FollowListResponse, error) {
	if err := h.actorCommand(ctx, "list_id", req.GetListId(), "follow list", h.capture.FollowList); err != nil {
		return nil, err
	}
	return &feedindexv1.FollowListResponse{}, nil
}

// UnfollowList 取消关注列表。
func (h *FeedHandler) UnfollowList(ctx context.Context, req *feedindexv1.UnfollowListRequest) (*feedindexv1.UnfollowListResponse, error) {
	if err := h.actorCommand(ctx, "list_id", req.GetListId(), "unfollow list", h.capture.UnfollowList); err != nil {
		return nil, err
	}
	return &feedindexv1.UnfollowListResponse{}, nil
}

// FollowUser 关注用户。
func (h *FeedHandler) FollowUser(ctx context.Context, req *feedindexv1.FollowUserRequest) (*feedindexv1.FollowUserResponse, error) {
	if err := h.actorCommand(ctx, "user_id", req.GetUserId(), "follow user", h.capture.FollowUser); err != nil {
		return nil, err
	}
	return &feedindexv1.FollowUserResponse{}, nil
}

// UnfollowUser 取消关注用户。
func (h *FeedHandler) UnfollowUser(ctx context.Context, req *feedindexv1.UnfollowUserRequest) (*feedindexv1.UnfollowUserResponse, error) {
	if err := h.actorCommand(ctx, "user_id", req.GetUserId(), "unfollow user", h.capture.UnfollowUser); err != nil {
		return nil, err
	}
	return &feedindexv1.UnfollowUserResponse{}, nil
}

// AddComment 以调用者身份评论事件。
func (h *FeedHandler) AddComment(ctx context.Context, req *feedindexv1.AddCommentRequest) (*feedindexv1.AddCommentResponse, error) {
	actor, err := h.actor(ctx)
	if err != nil {
		return nil, err
	}
	eventID, err := parseID("event_id", req.GetEventId())
	if err != nil {
		return nil, err
	}

	timeoutCtx, cancel := h.WithTimeout(ctx, HandlerTypeCommand)
	defer cancel()

	comment, err := h.capture.AddComment(timeoutCtx, actor, eventID, strings.TrimSpace(req.GetBody()))
	if err != nil {
		return nil, h.toStatus(ctx, "add comment", err)
	}
	return &feedindexv1.AddCommentResponse{Comment: toProtoComment(comment)}, nil
}

func (h *FeedHandler) command(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	timeoutCtx, cancel := h.WithTimeout(ctx, HandlerTypeCommand)
	defer cancel()

	if err := fn(timeoutCtx); err != nil {
		return h.toStatus(ctx, op, err)
	}
	return nil
}

// actorCommand 处理只携带单个目标 id 的调用者命令。
func (h *FeedHandler) actorCommand(
	ctx context.Context,
	key, rawID, op string,
	fn func(ctx context.Context, actorID, targetID uuid.UUID) error,
) error {
	actor, err := h.actor(ctx)
	if err != nil {
		return err
	}
	target, err := parseID(key, rawID)
	if err != nil {
		return err
	}
	return h.command(ctx, op, func(ctx context.Context) error {
		return fn(ctx, actor, target)
	})
}

func (h *FeedHandler) membershipCommand(
	ctx context.Context,
	rawListID, rawEventID, op string,
	fn func(ctx context.Context, actorID, listID, eventID uuid.UUID) error,
) error {
	actor, err := h.actor(ctx)
	if err != nil {
		return err
	}
	listID, err := parseID("list_id", rawListID)
	if err != nil {
		return err
	}
	eventID, err := parseID("event_id", rawEventID)
	if err != nil {
		return err
	}
	return h.command(ctx, op, func(ctx context.Context) error {
		return fn(ctx, actor, listID, eventID)
	})
}

func eventWindow(startTS, endTS *timestamppb.Timestamp) (time.Time, time.Time, error) {
	start, err := parseTime("start_time", startTS)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := parseTime("end_time", endTS)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}
