package repositories

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jaronheard/soonlist-turbo-sub000/internal/models/po"
	"github.com/jaronheard/soonlist-turbo-sub000/internal/repositories/feeddb"
	"github.com/jaronheard/soonlist-turbo-sub000/internal/repositories/mappers"
	"github.com/jaronheard/soonlist-turbo-sub000/internal/txmanager"
)

// UserRepository 管理 feed.users。
type UserRepository struct {
	db      *pgxpool.Pool
	queries *feeddb.Queries
	log     *log.Helper
}

// NewUserRepository 构造 UserRepository。
func NewUserRepository(db *pgxpool.Pool, logger log.Logger) *UserRepository {
	return &UserRepository{
		db:      db,
		queries: feeddb.New(db),
		log:     log.NewHelper(logger),
	}
}

// CreateUserInput 描述新建用户的参数。
type CreateUserInput struct {
	ID         uuid.UUID
	Username   string
	WeeklyGoal *int32
	CreatedAt  time.Time
}

// Create 写入用户。
func (r *UserRepository) Create(ctx context.Context, sess txmanager.Session, input CreateUserInput) (*po.User, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	row, err := queries.InsertUser(ctx, feeddb.InsertUserParams{
		ID:         input.ID,
		Username:   strings.TrimSpace(input.Username),
		WeeklyGoal: mappers.ToPgInt4(input.WeeklyGoal),
		CreatedAt:  mappers.ToPgTimestamptz(input.CreatedAt),
	})
	if err != nil {
		r.log.WithContext(ctx).Errorw("msg", "insert user failed", "user_id", input.ID, "error", err)
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return mappers.UserFromRow(row), nil
}

// Get 按 id 读取用户。
func (r *UserRepository) Get(ctx context.Context, sess txmanager.Session, id uuid.UUID) (*po.User, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	row, err := queries.GetUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", notFound(err, ErrUserNotFound))
	}
	return mappers.UserFromRow(row), nil
}

// GetByUsername 按用户名读取用户。
func (r *UserRepository) GetByUsername(ctx context.Context, sess txmanager.Session, username string) (*po.User, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	row, err := queries.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("get user by username: %w", notFound(err, ErrUserNotFound))
	}
	return mappers.UserFromRow(row), nil
}

// UpdateWeeklyGoal 设置每周目标；goal 为 nil 表示回落到默认值。
func (r *UserRepository) UpdateWeeklyGoal(ctx context.Context, sess txmanager.Session, id uuid.UUID, goal *int32) error {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	affected, err := queries.UpdateUserWeeklyGoal(ctx, feeddb.UpdateUserWeeklyGoalParams{
		ID:         id,
		WeeklyGoal: mappers.ToPgInt4(goal),
	})
	if err != nil {
		return fmt.Errorf("update weekly goal: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update weekly goal: %w", ErrUserNotFound)
	}
	return nil
}

// Delete 删除用户记录。
func (r *UserRepository) Delete(ctx context.Context, sess txmanager.Session, id uuid.UUID) (bool, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	affected, err := queries.DeleteUser(ctx, id)
	if err != nil {
		r.log.WithContext(ctx).Errorw("msg", "delete user failed", "user_id", id, "error", err)
		return false, fmt.Errorf("delete user: %w", err)
	}
	return affected > 0, nil
}
