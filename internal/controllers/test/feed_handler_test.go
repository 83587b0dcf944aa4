package controllers_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	feedindexv1 "github.com/jaronheard/soonlist-turbo-sub000/api/feedindex/v1"
	controllers "github.com/jaronheard/soonlist-turbo-sub000/internal/controllers"
	"github.com/jaronheard/soonlist-turbo-sub000/internal/models/po"
	"github.com/jaronheard/soonlist-turbo-sub000/internal/models/vo"
	"github.com/jaronheard/soonlist-turbo-sub000/internal/repositories"
	"github.com/jaronheard/soonlist-turbo-sub000/internal/services"
)

type stubFeedService struct {
	response *vo.FeedResponse
	err      error
	input    services.GetFeedInput
}

func (s *stubFeedService) GetFeed(_ context.Context, input services.GetFeedInput) (*vo.FeedResponse, error) {
	s.input = input
	return s.response, s.err
}

type stubStatsService struct {
	stats    *vo.UserStats
	err      error
	username string
}

func (s *stubStatsService) GetUserStats(_ context.Context, username string) (*vo.UserStats, error) {
	s.username = username
	return s.stats, s.err
}

type stubFanout struct {
	update  services.UpdateEventInFeedsInput
	removed uuid.UUID
	keep    bool
	err     error
}

func (s *stubFanout) UpdateEventInFeeds(_ context.Context, input services.UpdateEventInFeedsInput) error {
	s.update = input
	return s.err
}

func (s *stubFanout) AddEventToUserFeed(context.Context, uuid.UUID, uuid.UUID) error {
	return s.err
}

func (s *stubFanout) RemoveEventFromFeeds(_ context.Context, eventID uuid.UUID, keep bool) error {
	s.removed, s.keep = eventID, keep
	return s.err
}

type stubBackfill struct {
	state    *po.SyncState
	repairs  []services.NamespaceRepair
	repaired uuid.UUID
	err      error
}

func (s *stubBackfill) InitializeAllAggregates(context.Context) ([]*po.SyncState, error) {
	return []*po.SyncState{s.state}, s.err
}

func (s *stubBackfill) run(pipeline string, mode po.SyncMode) (*po.SyncState, error) {
	if s.err != nil {
		return nil, s.err
	}
	state := *s.state
	state.PipelineKey = pipeline
	state.Mode = mode
	return &state, nil
}

func (s *stubBackfill) StartRun(_ context.Context, pipeline string) (*po.SyncState, error) {
	return s.run(pipeline, po.SyncModeRebuild)
}

func (s *stubBackfill) RefreshRun(_ context.Context, pipeline string) (*po.SyncState, error) {
	return s.run(pipeline, po.SyncModeRefresh)
}

func (s *stubBackfill) ResumeRun(_ context.Context, pipeline string) (*po.SyncState, error) {
	return s.run(pipeline, s.state.Mode)
}

func (s *stubBackfill) ListRuns(context.Context) ([]*po.SyncState, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []*po.SyncState{s.state, nil}, nil
}

func (s *stubBackfill) RepairUser(_ context.Context, userID uuid.UUID) ([]services.NamespaceRepair, error) {
	s.repaired = userID
	return s.repairs, s.err
}

// stubCapture 记录最近一次调用的参数。
type stubCapture struct {
	calls  []string
	actor  uuid.UUID
	target uuid.UUID
	goal   *int32
	err    error
}

func (s *stubCapture) record(name string, actor, target uuid.UUID) error {
	s.calls = append(s.calls, name)
	s.actor, s.target = actor, target
	return s.err
}

func (s *stubCapture) CreateUser(_ context.Context, input services.CreateUserInput) (*po.User, error) {
	s.goal = input.WeeklyGoal
	if err := s.record("CreateUser", uuid.Nil, uuid.Nil); err != nil {
		return nil, err
	}
	return &po.User{ID: uuid.New(), Username: input.Username, WeeklyGoal: input.WeeklyGoal}, nil
}

func (s *stubCapture) UpdateWeeklyGoal(_ context.Context, userID uuid.UUID, goal *int32) error {
	s.goal = goal
	return s.record("UpdateWeeklyGoal", userID, uuid.Nil)
}

func (s *stubCapture) DeleteUser(_ context.Context, userID uuid.UUID) error {
	return s.record("DeleteUser", userID, uuid.Nil)
}

func (s *stubCapture) CreateEvent(_ context.Context, input services.CreateEventInput) (*po.Event, error) {
	if err := s.record("CreateEvent", input.OwnerID, uuid.Nil); err != nil {
		return nil, err
	}
	return &po.Event{ID: uuid.New(), OwnerID: input.OwnerID, Visibility: input.Visibility, StartTime: input.StartTime, EndTime: input.EndTime}, nil
}

func (s *stubCapture) UpdateEvent(_ context.Context, input services.UpdateEventInput) (*po.Event, error) {
	if err := s.record("UpdateEvent", input.ActorID, input.EventID); err != nil {
		return nil, err
	}
	return &po.Event{ID: input.EventID, OwnerID: input.ActorID, Visibility: input.Visibility}, nil
}

func (s *stubCapture) DeleteEvent(_ context.Context, actorID, eventID uuid.UUID) error {
	return s.record("DeleteEvent", actorID, eventID)
}

func (s *stubCapture) FollowEvent(_ context.Context, userID, eventID uuid.UUID) error {
	return s.record("FollowEvent", userID, eventID)
}

func (s *stubCapture) UnfollowEvent(_ context.Context, userID, eventID uuid.UUID) error {
	return s.record("UnfollowEvent", userID, eventID)
}

func (s *stubCapture) CreateList(_ context.Context, ownerID uuid.UUID, name string) (*po.List, error) {
	if err := s.record("CreateList", ownerID, uuid.Nil); err != nil {
		return nil, err
	}
	return &po.List{ID: uuid.New(), OwnerID: ownerID, Name: name}, nil
}

func (s *stubCapture) DeleteList(_ context.Context, actorID, listID uuid.UUID) error {
	return s.record("DeleteList", actorID, listID)
}

func (s *stubCapture) AddEventToList(_ context.Context, actorID, listID, _ uuid.UUID) error {
	return s.record("AddEventToList", actorID, listID)
}

func (s *stubCapture) RemoveEventFromList(_ context.Context, actorID, listID, _ uuid.UUID) error {
	return s.record("RemoveEventFromList", actorID, listID)
}

func (s *stubCapture) FollowList(_ context.Context, userID, listID uuid.UUID) error {
	return s.record("FollowList", userID, listID)
}

func (s *stubCapture) UnfollowList(_ context.Context, userID, listID uuid.UUID) error {
	return s.record("UnfollowList", userID, listID)
}

func (s *stubCapture) FollowUser(_ context.Context, followerID, followingID uuid.UUID) error {
	return s.record("FollowUser", followerID, followingID)
}

func (s *stubCapture) UnfollowUser(_ context.Context, followerID, followingID uuid.UUID) error {
	return s.record("UnfollowUser", followerID, followingID)
}

func (s *stubCapture) AddComment(_ context.Context, userID, eventID uuid.UUID, body string) (*po.Comment, error) {
	if err := s.record("AddComment", userID, eventID); err != nil {
		return nil, err
	}
	return &po.Comment{ID: uuid.New(), EventID: eventID, UserID: userID, Body: body}, nil
}

type fixture struct {
	feeds    *stubFeedService
	stats    *stubStatsService
	fanout   *stubFanout
	backfill *stubBackfill
	capture  *stubCapture
	handler  *controllers.FeedHandler
}

func newFixture() *fixture {
	f := &fixture{
		feeds:    &stubFeedService{},
		stats:    &stubStatsService{},
		fanout:   &stubFanout{},
		backfill: &stubBackfill{state: &po.SyncState{RunID: uuid.New(), Status: po.SyncStatusRunning, Mode: po.SyncModeRebuild}},
		capture:  &stubCapture{},
	}
	f.handler = controllers.NewFeedHandler(f.feeds, f.stats, f.fanout, f.backfill, f.capture,
		controllers.NewBaseHandler(controllers.HandlerTimeouts{}), log.NewStdLogger(io.Discard))
	return f
}

func asUser(t *testing.T, userID string) context.Context {
	t.Helper()
	return metadata.NewIncomingContext(context.Background(),
		metadata.Pairs("x-apigateway-api-userinfo", encodeUserInfo(t, map[string]any{"sub": userID})))
}

func requireCode(t *testing.T, err error, code codes.Code) {
	t.Helper()
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok, "not a status error: %v", err)
	require.Equal(t, code, st.Code(), st.Message())
}

func TestFeedHandler_GetFeed_Success(t *testing.T) {
	f := newFixture()
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	f.feeds.response = &vo.FeedResponse{
		Items:       []vo.FeedItem{{FeedID: "user_x", EventID: "e1", StartTime: now, EndTime: now.Add(time.Hour)}},
		NextCursor:  "next",
		GeneratedAt: now,
	}
	userID := uuid.NewString()

	resp, err := f.handler.GetFeed(asUser(t, userID), &feedindexv1.GetFeedRequest{Limit: 5, UpcomingOnly: true})
	require.NoError(t, err)
	require.Equal(t, userID, f.feeds.input.UserID)
	require.Equal(t, 5, f.feeds.input.Limit)
	require.True(t, f.feeds.input.UpcomingOnly)

	require.Equal(t, "next", resp.GetNextCursor())
	require.True(t, resp.GetGeneratedAt().AsTime().Equal(now))
	require.Len(t, resp.GetItems(), 1)
	item := resp.GetItems()[0]
	require.Equal(t, "e1", item.GetEventId())
	require.True(t, item.GetEndTime().AsTime().Equal(now.Add(time.Hour)))
	require.Nil(t, item.GetAddedAt())
}

func TestFeedHandler_GetFeed_NilRequest(t *testing.T) {
	f := newFixture()
	_, err := f.handler.GetFeed(asUser(t, uuid.NewString()), nil)
	requireCode(t, err, codes.InvalidArgument)
}

func TestFeedHandler_GetFeed_DiscoverWithoutUser(t *testing.T) {
	f := newFixture()
	f.feeds.response = &vo.FeedResponse{}

	_, err := f.handler.GetFeed(context.Background(), &feedindexv1.GetFeedRequest{FeedId: po.DiscoverFeedID, Cursor: "abc"})
	require.NoError(t, err)
	require.Equal(t, po.DiscoverFeedID, f.feeds.input.FeedID)
	require.Equal(t, "abc", f.feeds.input.Cursor)
	require.Empty(t, f.feeds.input.UserID)
}

func TestFeedHandler_GetFeed_PersonalFeedNeedsCaller(t *testing.T) {
	f := newFixture()
	owner, other := uuid.New(), uuid.New()
	feedID := po.UserFeedID(owner)

	_, err := f.handler.GetFeed(context.Background(), &feedindexv1.GetFeedRequest{FeedId: feedID})
	requireCode(t, err, codes.Unauthenticated)

	f.feeds.err = fmt.Errorf("%w: feed %q belongs to another user", services.ErrPermissionDenied, feedID)
	_, err = f.handler.GetFeed(asUser(t, other.String()), &feedindexv1.GetFeedRequest{FeedId: feedID})
	requireCode(t, err, codes.PermissionDenied)
	require.Equal(t, other.String(), f.feeds.input.UserID)
	require.Equal(t, feedID, f.feeds.input.FeedID)
}

func TestFeedHandler_GetFeed_InvalidMetadata(t *testing.T) {
	f := newFixture()

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("x-apigateway-api-userinfo", "invalid-base64!"))
	_, err := f.handler.GetFeed(ctx, &feedindexv1.GetFeedRequest{Limit: 1})
	requireCode(t, err, codes.Unauthenticated)

	ctx = metadata.NewIncomingContext(context.Background(), metadata.Pairs("x-apigateway-api-userinfo", encodeUserInfo(t, map[string]any{})))
	_, err = f.handler.GetFeed(ctx, &feedindexv1.GetFeedRequest{Limit: 1})
	requireCode(t, err, codes.Unauthenticated)

	_, err = f.handler.GetFeed(asUser(t, "not-a-uuid"), &feedindexv1.GetFeedRequest{Limit: 1})
	requireCode(t, err, codes.Unauthenticated)
}

func TestFeedHandler_GetUserStats(t *testing.T) {
	f := newFixture()
	f.stats.stats = &vo.UserStats{UserID: "u1", Username: "alice", CapturesThisWeek: 3, WeeklyGoal: 3, UpcomingEvents: 2, AllTimeEvents: 7}

	resp, err := f.handler.GetUserStats(context.Background(), &feedindexv1.GetUserStatsRequest{Username: " alice "})
	require.NoError(t, err)
	require.Equal(t, "alice", f.stats.username)
	stats := resp.GetStats()
	require.EqualValues(t, 3, stats.GetCapturesThisWeek())
	require.EqualValues(t, 7, stats.GetAllTimeEvents())
	require.EqualValues(t, 2, stats.GetUpcomingEvents())
	require.True(t, stats.GetGoalReached())

	_, err = f.handler.GetUserStats(context.Background(), &feedindexv1.GetUserStatsRequest{})
	requireCode(t, err, codes.InvalidArgument)

	f.stats.err = fmt.Errorf("get user by username: %w", repositories.ErrUserNotFound)
	_, err = f.handler.GetUserStats(context.Background(), &feedindexv1.GetUserStatsRequest{Username: "ghost"})
	requireCode(t, err, codes.NotFound)
}

func TestFeedHandler_UpdateEventInFeeds(t *testing.T) {
	f := newFixture()
	eventID, userID := uuid.New(), uuid.New()
	start := time.Date(2026, 3, 3, 10, 0, 0, 0, time.UTC)
	offset := time.FixedZone("UTC+2", 2*60*60)

	_, err := f.handler.UpdateEventInFeeds(context.Background(), &feedindexv1.UpdateEventInFeedsRequest{
		EventId:    eventID.String(),
		UserId:     userID.String(),
		Visibility: "PUBLIC",
		StartTime:  timestamppb.New(start),
		EndTime:    timestamppb.New(time.Date(2026, 3, 3, 12, 0, 0, 0, offset)),
	})
	require.NoError(t, err)
	require.Equal(t, eventID, f.fanout.update.EventID)
	require.Equal(t, userID, f.fanout.update.UserID)
	require.Equal(t, po.VisibilityPublic, f.fanout.update.Visibility)
	require.Equal(t, start, f.fanout.update.StartTime)
	require.Equal(t, start, f.fanout.update.EndTime)

	_, err = f.handler.UpdateEventInFeeds(context.Background(), &feedindexv1.UpdateEventInFeedsRequest{EventId: "nope"})
	requireCode(t, err, codes.InvalidArgument)

	_, err = f.handler.UpdateEventInFeeds(context.Background(), &feedindexv1.UpdateEventInFeedsRequest{
		EventId:   eventID.String(),
		UserId:    userID.String(),
		StartTime: &timestamppb.Timestamp{Seconds: 1, Nanos: -1},
	})
	requireCode(t, err, codes.InvalidArgument)

	f.fanout.err = fmt.Errorf("%w: start time must not be after end time", services.ErrInvalidArgument)
	_, err = f.handler.UpdateEventInFeeds(context.Background(), &feedindexv1.UpdateEventInFeedsRequest{
		EventId: eventID.String(),
		UserId:  userID.String(),
	})
	requireCode(t, err, codes.InvalidArgument)
}

func TestFeedHandler_RemoveEventFromFeeds(t *testing.T) {
	f := newFixture()
	eventID := uuid.New()

	_, err := f.handler.RemoveEventFromFeeds(context.Background(), &feedindexv1.RemoveEventFromFeedsRequest{
		EventId:         eventID.String(),
		KeepCreatorFeed: true,
	})
	require.NoError(t, err)
	require.Equal(t, eventID, f.fanout.removed)
	require.True(t, f.fanout.keep)
}

func TestFeedHandler_Backfill(t *testing.T) {
	f := newFixture()

	started, err := f.handler.StartBackfill(context.Background(), &feedindexv1.StartBackfillRequest{Pipeline: services.PipelineFeedEntries})
	require.NoError(t, err)
	require.Equal(t, services.PipelineFeedEntries, started.GetRun().GetPipeline())
	require.Equal(t, string(po.SyncModeRebuild), started.GetRun().GetMode())

	refreshed, err := f.handler.StartBackfill(context.Background(), &feedindexv1.StartBackfillRequest{Pipeline: services.PipelineFeedEntries, Refresh: true})
	require.NoError(t, err)
	require.Equal(t, string(po.SyncModeRefresh), refreshed.GetRun().GetMode())

	initialized, err := f.handler.InitializeAllAggregates(context.Background(), &feedindexv1.InitializeAllAggregatesRequest{})
	require.NoError(t, err)
	require.Len(t, initialized.GetRuns(), 1)

	listed, err := f.handler.ListBackfillRuns(context.Background(), &feedindexv1.ListBackfillRunsRequest{})
	require.NoError(t, err)
	require.Len(t, listed.GetRuns(), 1)
	require.Equal(t, f.backfill.state.RunID.String(), listed.GetRuns()[0].GetRunId())

	_, err = f.handler.ResumeBackfill(context.Background(), &feedindexv1.ResumeBackfillRequest{})
	requireCode(t, err, codes.InvalidArgument)

	f.backfill.err = fmt.Errorf("%w: %q", services.ErrUnknownPipeline, "venues")
	_, err = f.handler.StartBackfill(context.Background(), &feedindexv1.StartBackfillRequest{Pipeline: "venues"})
	requireCode(t, err, codes.InvalidArgument)

	f.backfill.err = repositories.ErrSyncStateNotFound
	_, err = f.handler.ResumeBackfill(context.Background(), &feedindexv1.ResumeBackfillRequest{Pipeline: services.PipelineEventFollows})
	requireCode(t, err, codes.NotFound)

	f.backfill.err = fmt.Errorf("first batch: %w", services.ErrSchedulingFailed)
	_, err = f.handler.StartBackfill(context.Background(), &feedindexv1.StartBackfillRequest{Pipeline: services.PipelineEventFollows})
	requireCode(t, err, codes.Unavailable)
}

func TestFeedHandler_RepairUserAggregates(t *testing.T) {
	f := newFixture()
	userID := uuid.New()
	f.backfill.repairs = []services.NamespaceRepair{{Namespace: "created:" + userID.String(), Before: 0, After: 3}}

	resp, err := f.handler.RepairUserAggregates(context.Background(), &feedindexv1.RepairUserAggregatesRequest{UserId: userID.String()})
	require.NoError(t, err)
	require.Equal(t, userID, f.backfill.repaired)
	require.Len(t, resp.GetRepairs(), 1)
	require.EqualValues(t, 3, resp.GetRepairs()[0].GetAfter())

	_, err = f.handler.RepairUserAggregates(context.Background(), &feedindexv1.RepairUserAggregatesRequest{})
	requireCode(t, err, codes.InvalidArgument)

	f.backfill.err = fmt.Errorf("get user: %w", repositories.ErrUserNotFound)
	_, err = f.handler.RepairUserAggregates(context.Background(), &feedindexv1.RepairUserAggregatesRequest{UserId: uuid.NewString()})
	requireCode(t, err, codes.NotFound)
}

func TestFeedHandler_CaptureCommandsUseCaller(t *testing.T) {
	f := newFixture()
	actor, target := uuid.New(), uuid.New()
	ctx := asUser(t, actor.String())

	_, err := f.handler.FollowEvent(ctx, &feedindexv1.FollowEventRequest{EventId: target.String()})
	require.NoError(t, err)
	require.Equal(t, actor, f.capture.actor)
	require.Equal(t, target, f.capture.target)

	_, err = f.handler.FollowUser(ctx, &feedindexv1.FollowUserRequest{UserId: target.String()})
	require.NoError(t, err)

	_, err = f.handler.AddEventToList(ctx, &feedindexv1.AddEventToListRequest{ListId: target.String(), EventId: uuid.NewString()})
	require.NoError(t, err)

	start := time.Date(2026, 3, 3, 10, 0, 0, 0, time.UTC)
	resp, err := f.handler.CreateEvent(ctx, &feedindexv1.CreateEventRequest{
		Visibility: "private",
		StartTime:  timestamppb.New(start),
		EndTime:    timestamppb.New(start.Add(2 * time.Hour)),
	})
	require.NoError(t, err)
	require.Equal(t, actor.String(), resp.GetEvent().GetOwnerId())
	require.Equal(t, "private", resp.GetEvent().GetVisibility())
	require.True(t, resp.GetEvent().GetStartTime().AsTime().Equal(start))

	_, err = f.handler.UpdateWeeklyGoal(ctx, &feedindexv1.UpdateWeeklyGoalRequest{})
	require.NoError(t, err)
	require.Nil(t, f.capture.goal)

	_, err = f.handler.UpdateWeeklyGoal(ctx, &feedindexv1.UpdateWeeklyGoalRequest{WeeklyGoal: wrapperspb.Int32(4)})
	require.NoError(t, err)
	require.EqualValues(t, 4, *f.capture.goal)

	require.Equal(t, []string{"FollowEvent", "FollowUser", "AddEventToList", "CreateEvent", "UpdateWeeklyGoal", "UpdateWeeklyGoal"}, f.capture.calls)

	_, err = f.handler.DeleteEvent(context.Background(), &feedindexv1.DeleteEventRequest{EventId: target.String()})
	requireCode(t, err, codes.Unauthenticated)

	_, err = f.handler.UnfollowList(ctx, &feedindexv1.UnfollowListRequest{ListId: "list-1"})
	requireCode(t, err, codes.InvalidArgument)
}

func TestFeedHandler_CreateUserNeedsNoCaller(t *testing.T) {
	f := newFixture()

	resp, err := f.handler.CreateUser(context.Background(), &feedindexv1.CreateUserRequest{Username: "alice", WeeklyGoal: wrapperspb.Int32(2)})
	require.NoError(t, err)
	require.Equal(t, "alice", resp.GetUser().GetUsername())
	require.EqualValues(t, 2, resp.GetUser().GetWeeklyGoal().GetValue())

	resp, err = f.handler.CreateUser(context.Background(), &feedindexv1.CreateUserRequest{Username: "bob"})
	require.NoError(t, err)
	require.Nil(t, f.capture.goal)
	require.Nil(t, resp.GetUser().GetWeeklyGoal())
}

func TestFeedHandler_ErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code codes.Code
	}{
		{name: "permission", err: services.ErrPermissionDenied, code: codes.PermissionDenied},
		{name: "missing event", err: fmt.Errorf("get event: %w", repositories.ErrEventNotFound), code: codes.NotFound},
		{name: "missing list", err: repositories.ErrListNotFound, code: codes.NotFound},
		{name: "invalid", err: fmt.Errorf("%w: list name is required", services.ErrInvalidArgument), code: codes.InvalidArgument},
		{name: "deadline", err: context.DeadlineExceeded, code: codes.DeadlineExceeded},
		{name: "unknown", err: errors.New("connection reset"), code: codes.Internal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture()
			f.capture.err = tc.err
			_, err := f.handler.DeleteList(asUser(t, uuid.NewString()), &feedindexv1.DeleteListRequest{ListId: uuid.NewString()})
			requireCode(t, err, tc.code)
		})
	}
}

func TestFeedHandler_ImplementsEveryRPC(t *testing.T) {
	f := newFixture()
	decode := func(any) error { return nil }
	for _, method := range feedindexv1.FeedIndexService_ServiceDesc.Methods {
		t.Run(method.MethodName, func(t *testing.T) {
			_, err := method.Handler(f.handler, context.Background(), decode, nil)
			require.NotEqual(t, codes.Unimplemented, status.Code(err), method.MethodName)
		})
	}
}

func encodeUserInfo(t *testing.T, claims map[string]any) string {
	t.Helper()
	payload, err := json.Marshal(claims)
	require.NoError(t, err)
	return base64.RawURLEncoding.EncodeToString(payload)
}
