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

// TaskRepository 管理 feed.tasks 持久化任务队列。
type TaskRepository struct {
	db      *pgxpool.Pool
	queries *feeddb.Queries
	log     *log.Helper
}

// NewTaskRepository 构造 TaskRepository。
func NewTaskRepository(db *pgxpool.Pool, logger log.Logger) *TaskRepository {
	return &TaskRepository{
		db:      db,
		queries: feeddb.New(db),
		log:     log.NewHelper(logger),
	}
}

// Insert 写入待执行任务。
func (r *TaskRepository) Insert(ctx context.Context, sess txmanager.Session, task po.Task) error {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	payload := task.Payload
	if len(payload) == 0 {
		payload = []byte("{}")
	}
	if err := queries.InsertTask(ctx, feeddb.InsertTaskParams{
		ID:        task.ID,
		Name:      task.Name,
		Payload:   payload,
		RunAfter:  mappers.ToPgTimestamptz(task.RunAfter),
		CreatedAt: mappers.ToPgTimestamptz(task.CreatedAt),
	}); err != nil {
		r.log.WithContext(ctx).Errorw("msg", "insert task failed", "task", task.Name, "task_id", task.ID, "error", err)
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

// ClaimDue 领取至多 limit 个到期任务并加租约，attempts 在领取时递增。
func (r *TaskRepository) ClaimDue(ctx context.Context, now time.Time, lease time.Duration, limit int) ([]*po.Task, error) {
	if limit <= 0 {
		return nil, nil
	}
	rows, err := r.queries.ClaimDueTasks(ctx, feeddb.ClaimDueTasksParams{
		Now:       mappers.ToPgTimestamptz(now),
		MaxTasks:  int32(limit),
		LockUntil: mappers.ToPgTimestamptz(now.Add(lease)),
	})
	if err != nil {
		return nil, fmt.Errorf("claim due tasks: %w", err)
	}
	result := make([]*po.Task, 0, len(rows))
	for _, row := range rows {
		result = append(result, mappers.TaskFromRow(row))
	}
	return result, nil
}

// Complete 标记任务成功。
func (r *TaskRepository) Complete(ctx context.Context, id uuid.UUID, processedAt time.Time) error {
	if _, err := r.queries.CompleteTask(ctx, feeddb.CompleteTaskParams{
		ID:          id,
		ProcessedAt: mappers.ToPgTimestamptz(processedAt),
	}); err != nil {
		return fmt.Errorf("complete task: %w", err)
	}
	return nil
}

// Retry 记录错误并推迟到 runAfter 再次执行。
func (r *TaskRepository) Retry(ctx context.Context, id uuid.UUID, runAfter time.Time, lastError string) error {
	if _, err := r.queries.RetryTask(ctx, feeddb.RetryTaskParams{
		ID:        id,
		RunAfter:  mappers.ToPgTimestamptz(runAfter),
		LastError: mappers.ToPgText(&lastError),
	}); err != nil {
		return fmt.Errorf("retry task: %w", err)
	}
	return nil
}

// Kill 将任务移入死信状态。
func (r *TaskRepository) Kill(ctx context.Context, id uuid.UUID, lastError string, at time.Time) error {
	if _, err := r.queries.KillTask(ctx, feeddb.KillTaskParams{
		ID:          id,
		LastError:   mappers.ToPgText(&lastError),
		ProcessedAt: mappers.ToPgTimestamptz(at),
	}); err != nil {
		return fmt.Errorf("kill task: %w", err)
	}
	return nil
}

// Get 返回指定任务。
func (r *TaskRepository) Get(ctx context.Context, id uuid.UUID) (*po.Task, error) {
	row, err := r.queries.GetTask(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", notFound(err, ErrTaskNotFound))
	}
	return mappers.TaskFromRow(row), nil
}
