package tasks

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/transport"
	"github.com/juju/clock"
	"github.com/robfig/cron/v3"

	"github.com/jaronheard/soonlist-turbo-sub000/internal/conf"
	"github.com/jaronheard/soonlist-turbo-sub000/internal/models/po"
	"github.com/jaronheard/soonlist-turbo-sub000/internal/services"
)

var _ transport.Server = (*Runner)(nil)

// Backfiller 是 Runner 需要的回填能力，由 services.BackfillRunner 实现。
type Backfiller interface {
	InitializeAllAggregates(ctx context.Context) ([]*po.SyncState, error)
	RefreshRun(ctx context.Context, pipeline string) (*po.SyncState, error)
}

// IndexState 报告聚合索引是否有持久化镜像，由 aggregate.Index 实现。
type IndexState interface {
	Durable() bool
}

// Runner 把任务消费者与定时刷新挂到 kratos 应用生命周期上。
// 索引没有持久化镜像时，启动后立即发起全部回填管线。
type Runner struct {
	config   ConsumerConfig
	backfill Backfiller
	index    IndexState
	spec     string
	log      *log.Helper

	mu       sync.Mutex
	consumer *Consumer
	cron     *cron.Cron
}

// NewRunner 构造 Runner。
func NewRunner(
	store TaskStore,
	dispatcher *Dispatcher,
	backfill Backfiller,
	index IndexState,
	clk clock.Clock,
	cfg *conf.Bootstrap,
	logger log.Logger,
) *Runner {
	return &Runner{
		config: ConsumerConfig{
			Store:        store,
			Dispatcher:   dispatcher,
			Clock:        clk,
			Logger:       logger,
			PollInterval: cfg.Tasks.PollInterval,
			LeaseTTL:     cfg.Tasks.LeaseTTL,
			MaxAttempts:  cfg.Tasks.MaxAttempts,
			RetryBackoff: cfg.Tasks.RetryBackoff,
			ClaimLimit:   cfg.Tasks.ClaimLimit,
		},
		backfill: backfill,
		index:    index,
		spec:     cfg.Refresh.Cron,
		log:      log.NewHelper(logger),
	}
}

// Start 启动消费者与定时刷新，并阻塞直到消费者退出。
func (r *Runner) Start(ctx context.Context) error {
	consumer, err := NewConsumer(r.config)
	if err != nil {
		return fmt.Errorf("start task consumer: %w", err)
	}

	var scheduler *cron.Cron
	if r.spec != "" {
		scheduler = cron.New()
		if _, err := scheduler.AddFunc(r.spec, func() { r.refresh(context.WithoutCancel(ctx)) }); err != nil {
			consumer.Kill()
			_ = consumer.Wait()
			return fmt.Errorf("parse refresh schedule %q: %w", r.spec, err)
		}
		scheduler.Start()
	}

	r.mu.Lock()
	r.consumer = consumer
	r.cron = scheduler
	r.mu.Unlock()
	r.log.WithContext(ctx).Infow("msg", "task runner started", "refresh", r.spec)
	if r.index != nil && !r.index.Durable() {
		r.rebuild(ctx)
	}

	done := make(chan error, 1)
	go func() { done <- consumer.Wait() }()
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		if scheduler != nil {
			scheduler.Stop()
		}
		consumer.Kill()
		return <-done
	}
}

// Stop 停止定时刷新，等待进行中的刷新与任务结束。
func (r *Runner) Stop(ctx context.Context) error {
	r.mu.Lock()
	consumer, scheduler := r.consumer, r.cron
	r.mu.Unlock()

	if scheduler != nil {
		select {
		case <-scheduler.Stop().Done():
		case <-ctx.Done():
		}
	}
	if consumer == nil {
		return nil
	}
	consumer.Kill()
	if err := consumer.Wait(); err != nil {
		return fmt.Errorf("stop task consumer: %w", err)
	}
	r.log.WithContext(ctx).Info("task runner stopped")
	return nil
}

// refresh 以原地刷新模式运行 feed_entries 管线，重新推导 hasEnded，不清空命名空间。
func (r *Runner) refresh(ctx context.Context) {
	state, err := r.backfill.RefreshRun(ctx, services.PipelineFeedEntries)
	if err != nil {
		r.log.WithContext(ctx).Errorw("msg", "scheduled refresh failed", "error", err)
		return
	}
	r.log.WithContext(ctx).Infow("msg", "scheduled refresh started", "run_id", state.RunID)
}

// rebuild 为只驻留内存的索引发起全部回填管线；失败的管线可通过 ResumeBackfill 继续。
func (r *Runner) rebuild(ctx context.Context) {
	states, err := r.backfill.InitializeAllAggregates(ctx)
	if err != nil {
		r.log.WithContext(ctx).Errorw("msg", "initial aggregate rebuild failed", "error", err)
	}
	r.log.WithContext(ctx).Infow("msg", "initial aggregate rebuild started", "pipelines", len(states))
}
