package controllers

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	feedindexv1 "github.com/jaronheard/soonlist-turbo-sub000/api/feedindex/v1"
	"github.com/jaronheard/soonlist-turbo-sub000/internal/models/po"
	"github.com/jaronheard/soonlist-turbo-sub000/internal/models/vo"
	"github.com/jaronheard/soonlist-turbo-sub000/internal/services"
)

func invalidField(key, reason string) error {
	return status.Errorf(codes.InvalidArgument, "%s: %s", key, reason)
}

func parseID(key, raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, invalidField(key, "is required")
	}
	parsed, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, invalidField(key, "must be a UUID")
	}
	return parsed, nil
}

// parseTime 对缺失的时间戳返回零值，由业务层判定是否必填。
func parseTime(key string, ts *timestamppb.Timestamp) (time.Time, error) {
	if ts == nil {
		return time.Time{}, nil
	}
	if err := ts.CheckValid(); err != nil {
		return time.Time{}, invalidField(key, "must be a valid timestamp")
	}
	return ts.AsTime().UTC(), nil
}

func parseVisibility(raw string) po.Visibility {
	return po.Visibility(strings.ToLower(strings.TrimSpace(raw)))
}

// optionalInt32 对未设置的包装值返回 nil。
func optionalInt32(v *wrapperspb.Int32Value) *int32 {
	if v == nil {
		return nil
	}
	value := v.GetValue()
	return &value
}

func toTimestamp(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t.UTC())
}

func toProtoFeedResponse(res *vo.FeedResponse) *feedindexv1.GetFeedResponse {
	if res == nil {
		return &feedindexv1.GetFeedResponse{}
	}
	resp := &feedindexv1.GetFeedResponse{
		NextCursor:  res.NextCursor,
		GeneratedAt: toTimestamp(res.GeneratedAt),
	}
	resp.Items = make([]*feedindexv1.FeedItem, 0, len(res.Items))
	for _, item := range res.Items {
		resp.Items = append(resp.Items, &feedindexv1.FeedItem{
			FeedId:    item.FeedID,
			EventId:   item.EventID,
			StartTime: toTimestamp(item.StartTime),
			EndTime:   toTimestamp(item.EndTime),
			HasEnded:  item.HasEnded,
			AddedAt:   toTimestamp(item.AddedAt),
		})
	}
	return resp
}

func toProtoUserStats(stats *vo.UserStats) *feedindexv1.UserStats {
	return &feedindexv1.UserStats{
		UserId:           stats.UserID,
		Username:         stats.Username,
		CapturesThisWeek: int32(stats.CapturesThisWeek),
		WeeklyGoal:       stats.WeeklyGoal,
		GoalReached:      stats.GoalReached(),
		UpcomingEvents:   int32(stats.UpcomingEvents),
		AllTimeEvents:    int32(stats.AllTimeEvents),
	}
}

func toProtoSyncState(state *po.SyncState) *feedindexv1.SyncState {
	if state == nil {
		return nil
	}
	return &feedindexv1.SyncState{
		Pipeline:      state.PipelineKey,
		RunId:         state.RunID.String(),
		Cursor:        state.Cursor,
		Status:        string(state.Status),
		Mode:          string(state.Mode),
		LastNamespace: state.LastNamespace,
		Processed:     state.Processed,
		UpdatedAt:     toTimestamp(state.UpdatedAt),
	}
}

func toProtoSyncStates(states []*po.SyncState) []*feedindexv1.SyncState {
	out := make([]*feedindexv1.SyncState, 0, len(states))
	for _, state := range states {
		if state == nil {
			continue
		}
		out = append(out, toProtoSyncState(state))
	}
	return out
}

func toProtoRepairs(repairs []services.NamespaceRepair) []*feedindexv1.NamespaceRepair {
	out := make([]*feedindexv1.NamespaceRepair, 0, len(repairs))
	for _, repair := range repairs {
		out = append(out, &feedindexv1.NamespaceRepair{
			Namespace: repair.Namespace,
			Before:    int32(repair.Before),
			After:     int32(repair.After),
		})
	}
	return out
}

func toProtoUser(user *po.User) *feedindexv1.User {
	out := &feedindexv1.User{
		Id:        user.ID.String(),
		Username:  user.Username,
		CreatedAt: toTimestamp(user.CreatedAt),
	}
	if user.WeeklyGoal != nil {
		out.WeeklyGoal = wrapperspb.Int32(*user.WeeklyGoal)
	}
	return out
}

func toProtoEvent(event *po.Event) *feedindexv1.Event {
	return &feedindexv1.Event{
		Id:         event.ID.String(),
		OwnerId:    event.OwnerID.String(),
		Visibility: string(event.Visibility),
		StartTime:  toTimestamp(event.StartTime),
		EndTime:    toTimestamp(event.EndTime),
		CreatedAt:  toTimestamp(event.CreatedAt),
		UpdatedAt:  toTimestamp(event.UpdatedAt),
	}
}

func toProtoList(list *po.List) *feedindexv1.List {
	return &feedindexv1.List{
		Id:        list.ID.String(),
		OwnerId:   list.OwnerID.String(),
		Name:      list.Name,
		CreatedAt: toTimestamp(list.CreatedAt),
	}
}

func toProtoComment(comment *po.Comment) *feedindexv1.Comment {
	return &feedindexv1.Comment{
		Id:        comment.ID.String(),
		EventId:   comment.EventID.String(),
		UserId:    comment.UserID.String(),
		Body:      comment.Body,
		CreatedAt: toTimestamp(comment.CreatedAt),
	}
}

func describe(op string, err error) string {
	return fmt.Sprintf("%s: %v", op, err)
}
