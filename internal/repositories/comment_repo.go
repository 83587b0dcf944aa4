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

// CommentRepository 管理 feed.comments。
type CommentRepository struct {
	db      *pgxpool.Pool
	queries *feeddb.Queries
	log     *log.Helper
}

// NewCommentRepository 构造 CommentRepository。
func NewCommentRepository(db *pgxpool.Pool, logger log.Logger) *CommentRepository {
	return &CommentRepository{
		db:      db,
		queries: feeddb.New(db),
		log:     log.NewHelper(logger),
	}
}

// CreateCommentInput 描述评论写入参数。
type CreateCommentInput struct {
	ID        uuid.UUID
	EventID   uuid.UUID
	UserID    uuid.UUID
	Body      string
	CreatedAt time.Time
}

// Create 写入评论。
func (r *CommentRepository) Create(ctx context.Context, sess txmanager.Session, input CreateCommentInput) (*po.Comment, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	row, err := queries.InsertComment(ctx, feeddb.InsertCommentParams{
		ID:        input.ID,
		EventID:   input.EventID,
		UserID:    input.UserID,
		Body:      input.Body,
		CreatedAt: mappers.ToPgTimestamptz(input.CreatedAt),
	})
	if err != nil {
		return nil, fmt.Errorf("insert comment: %w", err)
	}
	return mappers.CommentFromRow(row), nil
}

// DeleteByUser 删除用户发表的全部评论。
func (r *CommentRepository) DeleteByUser(ctx context.Context, sess txmanager.Session, userID uuid.UUID) (int64, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	affected, err := queries.DeleteCommentsByUser(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("delete comments by user: %w", err)
	}
	return affected, nil
}

// DeleteByEvent 删除事件下的全部评论。
func (r *CommentRepository) DeleteByEvent(ctx context.Context, sess txmanager.Session, eventID uuid.UUID) (int64, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	affected, err := queries.DeleteCommentsByEvent(ctx, eventID)
	if err != nil {
		return 0, fmt.Errorf("delete comments by event: %w", err)
	}
	return affected, nil
}
