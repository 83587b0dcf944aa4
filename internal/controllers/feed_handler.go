package controllers

import (
	"context"
	"errors"
	"strings"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	feedindexv1 "github.com/jaronheard/soonlist-turbo-sub000/api/feedindex/v1"
	"github.com/jaronheard/soonlist-turbo-sub000/internal/models/po"
	"github.com/jaronheard/soonlist-turbo-sub000/internal/repositories"
	"github.com/jaronheard/soonlist-turbo-sub000/internal/services"
)

var _ feedindexv1.FeedIndexServiceServer = (*FeedHandler)(nil)

// FeedHandler 实现 FeedIndexService gRPC 接口。
type FeedHandler struct {
	feedindexv1.UnimplementedFeedIndexServiceServer
	*BaseHandler
	feeds    services.FeedServiceInterface
	stats    services.StatsServiceInterface
	fanout   services.FeedFanoutInterface
	backfill services.BackfillInterface
	capture  CaptureServiceAPI
	log      *log.Helper
}

// NewFeedHandler 构造 FeedHandler。
func NewFeedHandler(
	feeds services.FeedServiceInterface,
	stats services.StatsServiceInterface,
	fanout services.FeedFanoutInterface,
	backfill services.BackfillInterface,
	capture CaptureServiceAPI,
	base *BaseHandler,
	logger log.Logger,
) *FeedHandler {
	if base == nil {
		base = NewBaseHandler(HandlerTimeouts{})
	}
	return &FeedHandler{
		BaseHandler: base,
		feeds:       feeds,
		stats:       stats,
		fanout:      fanout,
		backfill:    backfill,
		capture:     capture,
		log:         log.NewHelper(logger),
	}
}

// GetFeed 按开始时间分页返回 Feed。discover 之外的 Feed 需要调用者身份，
// 未指定 feed_id 时读取调用者自己的 Feed。
func (h *FeedHandler) GetFeed(ctx context.Context, req *feedindexv1.GetFeedRequest) (*feedindexv1.GetFeedResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is nil")
	}

	input := services.GetFeedInput{
		FeedID:       strings.TrimSpace(req.GetFeedId()),
		Limit:        int(req.GetLimit()),
		Cursor:       strings.TrimSpace(req.GetCursor()),
		UpcomingOnly: req.GetUpcomingOnly(),
	}
	if input.FeedID != po.DiscoverFeedID {
		actor, err := h.actor(ctx)
		if err != nil {
			return nil, err
		}
		input.UserID = actor.String()
	}

	timeoutCtx, cancel := h.WithTimeout(ctx, HandlerTypeQuery)
	defer cancel()

	res, err := h.feeds.GetFeed(timeoutCtx, input)
	if err != nil {
		return nil, h.toStatus(ctx, "get feed", err)
	}
	return toProtoFeedResponse(res), nil
}

// GetUserStats 返回用户的本周创建数、即将开始的事件数与累计事件数。
func (h *FeedHandler) GetUserStats(ctx context.Context, req *feedindexv1.GetUserStatsRequest) (*feedindexv1.GetUserStatsResponse, error) {
	username := strings.TrimSpace(req.GetUsername())
	if username == "" {
		return nil, invalidField("username", "is required")
	}

	timeoutCtx, cancel := h.WithTimeout(ctx, HandlerTypeQuery)
	defer cancel()

	stats, err := h.stats.GetUserStats(timeoutCtx, username)
	if err != nil {
		return nil, h.toStatus(ctx, "get user stats", err)
	}
	return &feedindexv1.GetUserStatsResponse{Stats: toProtoUserStats(stats)}, nil
}

// UpdateEventInFeeds 按请求携带的事件快照重新扇出。
func (h *FeedHandler) UpdateEventInFeeds(ctx context.Context, req *feedindexv1.UpdateEventInFeedsRequest) (*feedindexv1.UpdateEventInFeedsResponse, error) {
	eventID, err := parseID("event_id", req.GetEventId())
	if err != nil {
		return nil, err
	}
	userID, err := parseID("user_id", req.GetUserId())
	if err != nil {
		return nil, err
	}
	start, err := parseTime("start_time", req.GetStartTime())
	if err != nil {
		return nil, err
	}
	end, err := parseTime("end_time", req.GetEndTime())
	if err != nil {
		return nil, err
	}

	timeoutCtx, cancel := h.WithTimeout(ctx, HandlerTypeCommand)
	defer cancel()

	err = h.fanout.UpdateEventInFeeds(timeoutCtx, services.UpdateEventInFeedsInput{
		EventID:    eventID,
		UserID:     userID,
		Visibility: parseVisibility(req.GetVisibility()),
		StartTime:  start,
		EndTime:    end,
	})
	if err != nil {
		return nil, h.toStatus(ctx, "update event in feeds", err)
	}
	return &feedindexv1.UpdateEventInFeedsResponse{}, nil
}

// AddEventToUserFeed 把事件写入单个用户的 Feed。
func (h *FeedHandler) AddEventToUserFeed(ctx context.Context, req *feedindexv1.AddEventToUserFeedRequest) (*feedindexv1.AddEventToUserFeedResponse, error) {
	userID, err := parseID("user_id", req.GetUserId())
	if err != nil {
		return nil, err
	}
	eventID, err := parseID("event_id", req.GetEventId())
	if err != nil {
		return nil, err
	}

	timeoutCtx, cancel := h.WithTimeout(ctx, HandlerTypeCommand)
	defer cancel()

	if err := h.fanout.AddEventToUserFeed(timeoutCtx, userID, eventID); err != nil {
		return nil, h.toStatus(ctx, "add event to user feed", err)
	}
	return &feedindexv1.AddEventToUserFeedResponse{}, nil
}

// RemoveEventFromFeeds 从全部 Feed 中移除事件，可选保留创建者 Feed。
func (h *FeedHandler) RemoveEventFromFeeds(ctx context.Context, req *feedindexv1.RemoveEventFromFeedsRequest) (*feedindexv1.RemoveEventFromFeedsResponse, error) {
	eventID, err := parseID("event_id", req.GetEventId())
	if err != nil {
		return nil, err
	}

	timeoutCtx, cancel := h.WithTimeout(ctx, HandlerTypeCommand)
	defer cancel()

	if err := h.fanout.RemoveEventFromFeeds(timeoutCtx, eventID, req.GetKeepCreatorFeed()); err != nil {
		return nil, h.toStatus(ctx, "remove event from feeds", err)
	}
	return &feedindexv1.RemoveEventFromFeedsResponse{}, nil
}

// InitializeAllAggregates 以 rebuild 模式启动全部回填管线。
func (h *FeedHandler) InitializeAllAggregates(ctx context.Context, _ *feedindexv1.InitializeAllAggregatesRequest) (*feedindexv1.InitializeAllAggregatesResponse, error) {
	timeoutCtx, cancel := h.WithTimeout(ctx, HandlerTypeCommand)
	defer cancel()

	states, err := h.backfill.InitializeAllAggregates(timeoutCtx)
	if err != nil {
		return nil, h.toStatus(ctx, "initialize aggregates", err)
	}
	return &feedindexv1.InitializeAllAggregatesResponse{Runs: toProtoSyncStates(states)}, nil
}

// StartBackfill 以新的 run_id 重新启动单个管线；refresh 时原地覆盖而不清空命名空间。
func (h *FeedHandler) StartBackfill(ctx context.Context, req *feedindexv1.StartBackfillRequest) (*feedindexv1.StartBackfillResponse, error) {
	op, run := "start backfill", h.backfill.StartRun
	if req.GetRefresh() {
		op, run = "refresh backfill", h.backfill.RefreshRun
	}
	state, err := h.runPipeline(ctx, req.GetPipeline(), op, run)
	if err != nil {
		return nil, err
	}
	return &feedindexv1.StartBackfillResponse{Run: state}, nil
}

// ResumeBackfill 从持久化游标继续被挂起的管线，沿用原运行的模式。
func (h *FeedHandler) ResumeBackfill(ctx context.Context, req *feedindexv1.ResumeBackfillRequest) (*feedindexv1.ResumeBackfillResponse, error) {
	state, err := h.runPipeline(ctx, req.GetPipeline(), "resume backfill", h.backfill.ResumeRun)
	if err != nil {
		return nil, err
	}
	return &feedindexv1.ResumeBackfillResponse{Run: state}, nil
}

// ListBackfillRuns 返回每个管线最近一次运行的进度。
func (h *FeedHandler) ListBackfillRuns(ctx context.Context, _ *feedindexv1.ListBackfillRunsRequest) (*feedindexv1.ListBackfillRunsResponse, error) {
	timeoutCtx, cancel := h.WithTimeout(ctx, HandlerTypeQuery)
	defer cancel()

	states, err := h.backfill.ListRuns(timeoutCtx)
	if err != nil {
		return nil, h.toStatus(ctx, "list backfill runs", err)
	}
	return &feedindexv1.ListBackfillRunsResponse{Runs: toProtoSyncStates(states)}, nil
}

// RepairUserAggregates 从主库重建单个用户的聚合命名空间。
func (h *FeedHandler) RepairUserAggregates(ctx context.Context, req *feedindexv1.RepairUserAggregatesRequest) (*feedindexv1.RepairUserAggregatesResponse, error) {
	userID, err := parseID("user_id", req.GetUserId())
	if err != nil {
		return nil, err
	}

	timeoutCtx, cancel := h.WithTimeout(ctx, HandlerTypeCommand)
	defer cancel()

	repairs, err := h.backfill.RepairUser(timeoutCtx, userID)
	if err != nil {
		return nil, h.toStatus(ctx, "repair user aggregates", err)
	}
	return &feedindexv1.RepairUserAggregatesResponse{Repairs: toProtoRepairs(repairs)}, nil
}

func (h *FeedHandler) runPipeline(
	ctx context.Context,
	pipeline, op string,
	run func(ctx context.Context, pipeline string) (*po.SyncState, error),
) (*feedindexv1.SyncState, error) {
	pipeline = strings.TrimSpace(pipeline)
	if pipeline == "" {
		return nil, invalidField("pipeline", "is required")
	}

	timeoutCtx, cancel := h.WithTimeout(ctx, HandlerTypeCommand)
	defer cancel()

	state, err := run(timeoutCtx, pipeline)
	if err != nil {
		return nil, h.toStatus(ctx, op, err)
	}
	return toProtoSyncState(state), nil
}

// actor 返回网关认证的调用者。
func (h *FeedHandler) actor(ctx context.Context) (uuid.UUID, error) {
	meta := h.ExtractMetadata(ctx)
	if meta.InvalidUserInfo || meta.UserID == "" {
		return uuid.Nil, status.Error(codes.Unauthenticated, "invalid user info")
	}
	id, err := uuid.Parse(meta.UserID)
	if err != nil {
		return uuid.Nil, status.Error(codes.Unauthenticated, "invalid user info")
	}
	return id, nil
}

// toStatus 把业务错误映射为 gRPC 状态码；未识别的错误记录日志并返回 Internal。
func (h *FeedHandler) toStatus(ctx context.Context, op string, err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, describe(op, err))
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, describe(op, err))
	case errors.Is(err, repositories.ErrUserNotFound),
		errors.Is(err, repositories.ErrEventNotFound),
		errors.Is(err, repositories.ErrListNotFound),
		errors.Is(err, repositories.ErrSyncStateNotFound):
		return status.Error(codes.NotFound, describe(op, err))
	case errors.Is(err, services.ErrInvalidArgument),
		errors.Is(err, services.ErrUnknownPipeline):
		return status.Error(codes.InvalidArgument, describe(op, err))
	case errors.Is(err, services.ErrPermissionDenied):
		return status.Error(codes.PermissionDenied, describe(op, err))
	case errors.Is(err, services.ErrSchedulingFailed):
		return status.Error(codes.Unavailable, describe(op, err))
	default:
		h.log.WithContext(ctx).Errorw("msg", op+" failed", "error", err)
		return status.Errorf(codes.Internal, "%s: %v", op, err)
	}
}
