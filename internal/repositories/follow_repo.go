package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jaronheard/soonlist-turbo-sub000/internal/models/po"
	"github.com/jaronheard/soonlist-turbo-sub000/internal/repositories/feeddb"
	"github.com/jaronheard/soonlist-turbo-sub000/internal/repositories/mappers"
	"github.com/jaronheard/soonlist-turbo-sub000/internal/txmanager"
)

// FollowRepository 管理 feed.event_follows 与 feed.user_follows。
type FollowRepository struct {
	db      *pgxpool.Pool
	queries *feeddb.Queries
	log     *log.Helper
}

// NewFollowRepository 构造 FollowRepository。
func NewFollowRepository(db *pgxpool.Pool, logger log.Logger) *FollowRepository {
	return &FollowRepository{
		db:      db,
		queries: feeddb.New(db),
		log:     log.NewHelper(logger),
	}
}

// FollowEvent 记录事件关注；已关注时返回 false 且保留原始 created_at。
func (r *FollowRepository) FollowEvent(ctx context.Context, sess txmanager.Session, userID, eventID uuid.UUID, at time.Time) (bool, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	affected, err := queries.InsertEventFollow(ctx, feeddb.InsertEventFollowParams{
		UserID:    userID,
		EventID:   eventID,
		CreatedAt: mappers.ToPgTimestamptz(at),
	})
	if err != nil {
		r.log.WithContext(ctx).Errorw("msg", "insert event follow failed", "user_id", userID, "event_id", eventID, "error", err)
		return false, fmt.Errorf("insert event follow: %w", err)
	}
	return affected > 0, nil
}

// GetEventFollow 返回关注记录。
func (r *FollowRepository) GetEventFollow(ctx context.Context, sess txmanager.Session, userID, eventID uuid.UUID) (*po.EventFollow, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	row, err := queries.GetEventFollow(ctx, feeddb.GetEventFollowParams{UserID: userID, EventID: eventID})
	if err != nil {
		return nil, fmt.Errorf("get event follow: %w", notFound(err, ErrEventFollowNotFound))
	}
	follow := mappers.EventFollowFromRow(row)
	return &follow, nil
}

// UnfollowEvent 删除关注并返回被删除的记录。
func (r *FollowRepository) UnfollowEvent(ctx context.Context, sess txmanager.Session, userID, eventID uuid.UUID) (*po.EventFollow, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	row, err := queries.DeleteEventFollow(ctx, feeddb.DeleteEventFollowParams{UserID: userID, EventID: eventID})
	if err != nil {
		return nil, fmt.Errorf("delete event follow: %w", notFound(err, ErrEventFollowNotFound))
	}
	follow := mappers.EventFollowFromRow(row)
	return &follow, nil
}

// ListEventFollowers 返回关注某事件的全部记录。
func (r *FollowRepository) ListEventFollowers(ctx context.Context, sess txmanager.Session, eventID uuid.UUID) ([]po.EventFollow, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	rows, err := queries.ListEventFollowers(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list event followers: %w", err)
	}
	return eventFollowsFromRows(rows), nil
}

// ListEventFollowsByUser 返回用户关注的全部事件。
func (r *FollowRepository) ListEventFollowsByUser(ctx context.Context, sess txmanager.Session, userID uuid.UUID) ([]po.EventFollow, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	rows, err := queries.ListEventFollowsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list event follows by user: %w", err)
	}
	return eventFollowsFromRows(rows), nil
}

// DeleteEventFollowsByUser 删除用户的全部事件关注。
func (r *FollowRepository) DeleteEventFollowsByUser(ctx context.Context, sess txmanager.Session, userID uuid.UUID) error {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	if err := queries.DeleteEventFollowsByUser(ctx, userID); err != nil {
		return fmt.Errorf("delete event follows by user: %w", err)
	}
	return nil
}

// DeleteEventFollowsByEvent 删除事件的全部关注。
func (r *FollowRepository) DeleteEventFollowsByEvent(ctx context.Context, sess txmanager.Session, eventID uuid.UUID) error {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	if err := queries.DeleteEventFollowsByEvent(ctx, eventID); err != nil {
		return fmt.Errorf("delete event follows by event: %w", err)
	}
	return nil
}

// ListEventFollowsPage 按 (user_id, event_id) 顺序分页读取关注记录。
func (r *FollowRepository) ListEventFollowsPage(ctx context.Context, sess txmanager.Session, afterUserID, afterEventID uuid.UUID, limit int) ([]po.EventFollowRow, error) {
	if limit <= 0 {
		return nil, nil
	}
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	rows, err := queries.ListEventFollowsPage(ctx, feeddb.ListEventFollowsPageParams{
		AfterUserID:  afterUserID,
		AfterEventID: afterEventID,
		PageSize:     int32(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("list event follows page: %w", err)
	}
	result := make([]po.EventFollowRow, 0, len(rows))
	for _, row := range rows {
		result = append(result, mappers.EventFollowPageRowToPO(row))
	}
	return result, nil
}

// FollowUser 记录用户关注；已关注时返回 false。
func (r *FollowRepository) FollowUser(ctx context.Context, sess txmanager.Session, followerID, followingID uuid.UUID, at time.Time) (bool, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	affected, err := queries.InsertUserFollow(ctx, feeddb.InsertUserFollowParams{
		FollowerID:  followerID,
		FollowingID: followingID,
		CreatedAt:   mappers.ToPgTimestamptz(at),
	})
	if err != nil {
		return false, fmt.Errorf("insert user follow: %w", err)
	}
	return affected > 0, nil
}

// UnfollowUser 取消用户关注；未关注时返回 false。
func (r *FollowRepository) UnfollowUser(ctx context.Context, sess txmanager.Session, followerID, followingID uuid.UUID) (bool, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	affected, err := queries.DeleteUserFollow(ctx, feeddb.DeleteUserFollowParams{FollowerID: followerID, FollowingID: followingID})
	if err != nil {
		return false, fmt.Errorf("delete user follow: %w", err)
	}
	return affected > 0, nil
}

// ListUserFollowerIDs 返回关注某用户的全部用户。
func (r *FollowRepository) ListUserFollowerIDs(ctx context.Context, sess txmanager.Session, followingID uuid.UUID) ([]uuid.UUID, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	ids, err := queries.ListUserFollowerIDs(ctx, followingID)
	if err != nil {
		return nil, fmt.Errorf("list user followers: %w", err)
	}
	return ids, nil
}

// DeleteUserFollowsByUser 删除用户两个方向上的全部用户关注。
func (r *FollowRepository) DeleteUserFollowsByUser(ctx context.Context, sess txmanager.Session, userID uuid.UUID) error {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	if err := queries.DeleteUserFollowsByUser(ctx, userID); err != nil {
		return fmt.Errorf("delete user follows by user: %w", err)
	}
	return nil
}

// HasFollowReason 判断用户是否仍通过事件、列表或创建者关注而与事件相关。
func (r *FollowRepository) HasFollowReason(ctx context.Context, sess txmanager.Session, userID, eventID uuid.UUID) (bool, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	ok, err := queries.HasFollowReason(ctx, feeddb.HasFollowReasonParams{UserID: userID, EventID: eventID})
	if err != nil {
		return false, fmt.Errorf("check follow reason: %w", err)
	}
	return ok, nil
}

func eventFollowsFromRows(rows []feeddb.FeedEventFollow) []po.EventFollow {
	result := make([]po.EventFollow, 0, len(rows))
	for _, row := range rows {
		result = append(result, mappers.EventFollowFromRow(row))
	}
	return result
}
