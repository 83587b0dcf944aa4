package tasks

import (
	"context"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/juju/clock"
	"github.com/juju/errors"
	"github.com/juju/worker/v4/catacomb"

	"github.com/jaronheard/soonlist-turbo-sub000/internal/metrics"
	"github.com/jaronheard/soonlist-turbo-sub000/internal/models/po"
)

const maxRetryDelay = 10 * time.Minute

// ConsumerConfig 定义消费者的依赖与轮询参数。
type ConsumerConfig struct {
	Store        TaskStore
	Dispatcher   *Dispatcher
	Clock        clock.Clock
	Logger       log.Logger
	PollInterval time.Duration
	LeaseTTL     time.Duration
	MaxAttempts  int32
	RetryBackoff time.Duration
	ClaimLimit   int32
}

// Validate 在配置无法驱动消费者时返回错误。
func (config ConsumerConfig) Validate() error {
	if config.Store == nil {
		return errors.NotValidf("nil Store")
	}
	if config.Dispatcher == nil {
		return errors.NotValidf("nil Dispatcher")
	}
	if config.Clock == nil {
		return errors.NotValidf("nil Clock")
	}
	if config.Logger == nil {
		return errors.NotValidf("nil Logger")
	}
	if config.PollInterval <= 0 {
		return errors.NotValidf("non-positive PollInterval")
	}
	if config.LeaseTTL <= 0 {
		return errors.NotValidf("non-positive LeaseTTL")
	}
	if config.MaxAttempts <= 0 {
		return errors.NotValidf("non-positive MaxAttempts")
	}
	if config.RetryBackoff <= 0 {
		return errors.NotValidf("non-positive RetryBackoff")
	}
	if config.ClaimLimit <= 0 {
		return errors.NotValidf("non-positive ClaimLimit")
	}
	return nil
}

// Consumer 轮询 feed.tasks，领取到期任务并分发。它实现 worker.Worker。
type Consumer struct {
	catacomb catacomb.Catacomb
	config   ConsumerConfig
	log      *log.Helper
}

// NewConsumer 校验配置并启动消费者。
func NewConsumer(config ConsumerConfig) (*Consumer, error) {
	if err := config.Validate(); err != nil {
		return nil, errors.Trace(err)
	}
	c := &Consumer{
		config: config,
		log:    log.NewHelper(config.Logger),
	}
	if err := catacomb.Invoke(catacomb.Plan{
		Name: "feed-task-consumer",
		Site: &c.catacomb,
		Work: c.loop,
	}); err != nil {
		return nil, errors.Trace(err)
	}
	return c, nil
}

// Kill 是 worker.Worker 的一部分。
func (c *Consumer) Kill() {
	c.catacomb.Kill(nil)
}

// Wait 是 worker.Worker 的一部分。
func (c *Consumer) Wait() error {
	return c.catacomb.Wait()
}

func (c *Consumer) loop() error {
	ctx := c.catacomb.Context(context.Background())
	for {
		delay := c.config.PollInterval
		claimed, err := ProcessDue(ctx, c.config)
		switch {
		case err != nil:
			c.log.WithContext(ctx).Errorw("msg", "claim due tasks failed", "error", err)
		case claimed >= int(c.config.ClaimLimit):
			// 队列仍有积压，立即再领一批。
			delay = 0
		}
		select {
		case <-c.catacomb.Dying():
			return c.catacomb.ErrDying()
		case <-c.config.Clock.After(delay):
		}
	}
}

// ProcessDue 领取并执行一批到期任务，返回领取数量。
func ProcessDue(ctx context.Context, config ConsumerConfig) (int, error) {
	now := config.Clock.Now().UTC()
	tasks, err := config.Store.ClaimDue(ctx, now, config.LeaseTTL, int(config.ClaimLimit))
	if err != nil {
		return 0, errors.Annotate(err, "claiming due tasks")
	}
	helper := log.NewHelper(config.Logger)
	for _, task := range tasks {
		if ctx.Err() != nil {
			// 剩余任务的租约过期后会被重新领取。
			return len(tasks), nil
		}
		process(ctx, config, helper, task)
	}
	return len(tasks), nil
}

func process(ctx context.Context, config ConsumerConfig, helper *log.Helper, task *po.Task) {
	started := config.Clock.Now()
	err := config.Dispatcher.Dispatch(ctx, task)
	finished := config.Clock.Now().UTC()
	metrics.TaskDuration.WithLabelValues(task.Name).Observe(finished.Sub(started).Seconds())

	if err == nil {
		metrics.TaskResults.WithLabelValues(task.Name, "ok").Inc()
		if completeErr := config.Store.Complete(ctx, task.ID, finished); completeErr != nil {
			helper.WithContext(ctx).Errorw("msg", "complete task failed", "task", task.Name, "task_id", task.ID, "error", completeErr)
		}
		return
	}

	if IsPermanent(err) || task.Attempts >= config.MaxAttempts {
		metrics.TaskResults.WithLabelValues(task.Name, "dead").Inc()
		helper.WithContext(ctx).Errorw("msg", "task dead-lettered", "task", task.Name, "task_id", task.ID,
			"attempts", task.Attempts, "error", err)
		if killErr := config.Store.Kill(ctx, task.ID, err.Error(), finished); killErr != nil {
			helper.WithContext(ctx).Errorw("msg", "kill task failed", "task", task.Name, "task_id", task.ID, "error", killErr)
		}
		return
	}

	metrics.TaskResults.WithLabelValues(task.Name, "retry").Inc()
	runAfter := finished.Add(RetryDelay(config.RetryBackoff, task.Attempts))
	helper.WithContext(ctx).Infow("msg", "task failed, retrying", "task", task.Name, "task_id", task.ID,
		"attempts", task.Attempts, "run_after", runAfter, "error", err)
	if retryErr := config.Store.Retry(ctx, task.ID, runAfter, err.Error()); retryErr != nil {
		helper.WithContext(ctx).Errorw("msg", "retry task failed", "task", task.Name, "task_id", task.ID, "error", retryErr)
	}
}

// RetryDelay 返回第 attempts 次失败后的退避时长：base·2^(attempts-1)，上限 10 分钟。
func RetryDelay(base time.Duration, attempts int32) time.Duration {
	if attempts < 1 {
		attempts = 1
	}
	delay := base
	for i := int32(1); i < attempts; i++ {
		delay *= 2
		if delay >= maxRetryDelay {
			return maxRetryDelay
		}
	}
	if delay > maxRetryDelay {
		return maxRetryDelay
	}
	return delay
}
