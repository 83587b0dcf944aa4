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

// ListRepository 管理 feed.lists、feed.list_memberships 与 feed.list_follows。
type ListRepository struct {
	db      *pgxpool.Pool
	queries *feeddb.Queries
	log     *log.Helper
}

// NewListRepository 构造 ListRepository。
func NewListRepository(db *pgxpool.Pool, logger log.Logger) *ListRepository {
	return &ListRepository{
		db:      db,
		queries: feeddb.New(db),
		log:     log.NewHelper(logger),
	}
}

// CreateListInput 描述新建列表的参数。
type CreateListInput struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Name      string
	CreatedAt time.Time
}

// Create 写入列表。
func (r *ListRepository) Create(ctx context.Context, sess txmanager.Session, input CreateListInput) (*po.List, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	row, err := queries.InsertList(ctx, feeddb.InsertListParams{
		ID:        input.ID,
		OwnerID:   input.OwnerID,
		Name:      input.Name,
		CreatedAt: mappers.ToPgTimestamptz(input.CreatedAt),
	})
	if err != nil {
		r.log.WithContext(ctx).Errorw("msg", "insert list failed", "list_id", input.ID, "error", err)
		return nil, fmt.Errorf("insert list: %w", err)
	}
	return mappers.ListFromRow(row), nil
}

// Get 返回单个列表。
func (r *ListRepository) Get(ctx context.Context, sess txmanager.Session, id uuid.UUID) (*po.List, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	row, err := queries.GetList(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get list: %w", notFound(err, ErrListNotFound))
	}
	return mappers.ListFromRow(row), nil
}

// Delete 删除列表。调用方需先清理成员与关注。
func (r *ListRepository) Delete(ctx context.Context, sess txmanager.Session, id uuid.UUID) (bool, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	affected, err := queries.DeleteList(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete list: %w", err)
	}
	return affected > 0, nil
}

// ListByOwner 返回某用户拥有的列表。
func (r *ListRepository) ListByOwner(ctx context.Context, sess txmanager.Session, ownerID uuid.UUID) ([]*po.List, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	rows, err := queries.ListListsByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list lists by owner: %w", err)
	}
	result := make([]*po.List, 0, len(rows))
	for _, row := range rows {
		result = append(result, mappers.ListFromRow(row))
	}
	return result, nil
}

// AddMembership 将事件加入列表；已存在时返回 false。
func (r *ListRepository) AddMembership(ctx context.Context, sess txmanager.Session, listID, eventID uuid.UUID, at time.Time) (bool, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	affected, err := queries.InsertListMembership(ctx, feeddb.InsertListMembershipParams{
		ListID:    listID,
		EventID:   eventID,
		CreatedAt: mappers.ToPgTimestamptz(at),
	})
	if err != nil {
		return false, fmt.Errorf("insert list membership: %w", err)
	}
	return affected > 0, nil
}

// RemoveMembership 将事件移出列表；不存在时返回 false。
func (r *ListRepository) RemoveMembership(ctx context.Context, sess txmanager.Session, listID, eventID uuid.UUID) (bool, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	affected, err := queries.DeleteListMembership(ctx, feeddb.DeleteListMembershipParams{ListID: listID, EventID: eventID})
	if err != nil {
		return false, fmt.Errorf("delete list membership: %w", err)
	}
	return affected > 0, nil
}

// DeleteMembershipsByList 清空列表成员。
func (r *ListRepository) DeleteMembershipsByList(ctx context.Context, sess txmanager.Session, listID uuid.UUID) error {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	if err := queries.DeleteListMembershipsByList(ctx, listID); err != nil {
		return fmt.Errorf("delete list memberships by list: %w", err)
	}
	return nil
}

// DeleteMembershipsByEvent 将事件移出所有列表。
func (r *ListRepository) DeleteMembershipsByEvent(ctx context.Context, sess txmanager.Session, eventID uuid.UUID) error {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	if err := queries.DeleteListMembershipsByEvent(ctx, eventID); err != nil {
		return fmt.Errorf("delete list memberships by event: %w", err)
	}
	return nil
}

// DeleteMembershipsByOwner 删除用户所拥有的列表与事件上的全部成员关系。
func (r *ListRepository) DeleteMembershipsByOwner(ctx context.Context, sess txmanager.Session, ownerID uuid.UUID) (int64, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	affected, err := queries.DeleteListMembershipsByOwner(ctx, ownerID)
	if err != nil {
		return 0, fmt.Errorf("delete list memberships by owner: %w", err)
	}
	return affected, nil
}

// Follow 记录用户关注列表；已关注时返回 false。
func (r *ListRepository) Follow(ctx context.Context, sess txmanager.Session, userID, listID uuid.UUID, at time.Time) (bool, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	affected, err := queries.InsertListFollow(ctx, feeddb.InsertListFollowParams{
		UserID:    userID,
		ListID:    listID,
		CreatedAt: mappers.ToPgTimestamptz(at),
	})
	if err != nil {
		return false, fmt.Errorf("insert list follow: %w", err)
	}
	return affected > 0, nil
}

// Unfollow 取消关注；未关注时返回 false。
func (r *ListRepository) Unfollow(ctx context.Context, sess txmanager.Session, userID, listID uuid.UUID) (bool, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	affected, err := queries.DeleteListFollow(ctx, feeddb.DeleteListFollowParams{UserID: userID, ListID: listID})
	if err != nil {
		return false, fmt.Errorf("delete list follow: %w", err)
	}
	return affected > 0, nil
}

// ListFollowerIDs 返回关注某列表的用户。
func (r *ListRepository) ListFollowerIDs(ctx context.Context, sess txmanager.Session, listID uuid.UUID) ([]uuid.UUID, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	ids, err := queries.ListListFollowerIDs(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("list list followers: %w", err)
	}
	return ids, nil
}

// ListFollowerIDsByEvent 返回关注了任一包含该事件的列表的用户（去重）。
func (r *ListRepository) ListFollowerIDsByEvent(ctx context.Context, sess txmanager.Session, eventID uuid.UUID) ([]uuid.UUID, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	ids, err := queries.ListListFollowerIDsByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list list followers by event: %w", err)
	}
	return ids, nil
}

// DeleteFollowsByUser 删除用户的全部列表关注。
func (r *ListRepository) DeleteFollowsByUser(ctx context.Context, sess txmanager.Session, userID uuid.UUID) error {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	if err := queries.DeleteListFollowsByUser(ctx, userID); err != nil {
		return fmt.Errorf("delete list follows by user: %w", err)
	}
	return nil
}

// DeleteFollowsByList 删除列表的全部关注者。
func (r *ListRepository) DeleteFollowsByList(ctx context.Context, sess txmanager.Session, listID uuid.UUID) error {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	if err := queries.DeleteListFollowsByList(ctx, listID); err != nil {
		return fmt.Errorf("delete list follows by list: %w", err)
	}
	return nil
}
