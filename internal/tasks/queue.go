// Package tasks 实现基于 feed.tasks 表的持久化任务队列：入队端、名称到处理器的分发、
// 轮询消费者以及定时刷新触发器。
package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/juju/clock"

	"github.com/jaronheard/soonlist-turbo-sub000/internal/models/po"
	"github.com/jaronheard/soonlist-turbo-sub000/internal/txmanager"
)

// TaskStore 是任务表的读写能力，由 repositories.TaskRepository 实现。
type TaskStore interface {
	Insert(ctx context.Context, sess txmanager.Session, task po.Task) error
	ClaimDue(ctx context.Context, now time.Time, lease time.Duration, limit int) ([]*po.Task, error)
	Complete(ctx context.Context, id uuid.UUID, processedAt time.Time) error
	Retry(ctx context.Context, id uuid.UUID, runAfter time.Time, lastError string) error
	Kill(ctx context.Context, id uuid.UUID, lastError string, at time.Time) error
}

// Queue 是 services.Scheduler 的持久化实现。
type Queue struct {
	store TaskStore
	clock clock.Clock
	log   *log.Helper
}

// NewQueue 构造 Queue。
func NewQueue(store TaskStore, clk clock.Clock, logger log.Logger) *Queue {
	return &Queue{
		store: store,
		clock: clk,
		log:   log.NewHelper(logger),
	}
}

// ScheduleAfter 以 JSON 序列化 args，并在 delay 之后可被消费。
func (q *Queue) ScheduleAfter(ctx context.Context, delay time.Duration, name string, args any) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("schedule task: empty name")
	}
	if delay < 0 {
		delay = 0
	}
	payload, err := json.Marshal(args)
	if err != nil {
		return fmt.Errorf("marshal task payload: %w", err)
	}
	now := q.clock.Now().UTC()
	task := po.Task{
		ID:        uuid.New(),
		Name:      name,
		Payload:   payload,
		Status:    po.TaskStatusPending,
		RunAfter:  now.Add(delay),
		CreatedAt: now,
	}
	if err := q.store.Insert(ctx, nil, task); err != nil {
		q.log.WithContext(ctx).Errorw("msg", "enqueue task failed", "task", name, "error", err)
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}
