package tasks

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jaronheard/soonlist-turbo-sub000/internal/models/po"
	"github.com/jaronheard/soonlist-turbo-sub000/internal/services"
)

// Handler 处理一条任务的原始载荷。
type Handler func(ctx context.Context, payload []byte) error

// JSONHandler 把载荷解码为 T 后交给 fn；载荷无法解码时标记为不可重试。
func JSONHandler[T any](fn func(ctx context.Context, args T) error) Handler {
	return func(ctx context.Context, payload []byte) error {
		var args T
		if err := json.Unmarshal(payload, &args); err != nil {
			return Permanent(fmt.Errorf("decode task payload: %w", err))
		}
		return fn(ctx, args)
	}
}

// FanoutHandlers 是扇出任务的处理方，由 services.FeedMaterializer 实现。
type FanoutHandlers interface {
	HandleEventUpserted(ctx context.Context, args services.EventUpsertedArgs) error
	HandleEventDeleted(ctx context.Context, args services.EventDeletedArgs) error
	HandleEventFollowed(ctx context.Context, args services.EventFollowedArgs) error
	HandleEventUnfollowed(ctx context.Context, args services.EventUnfollowedArgs) error
	HandleListFollowChanged(ctx context.Context, args services.ListFollowChangedArgs) error
	HandleListMembershipChanged(ctx context.Context, args services.ListMembershipChangedArgs) error
	HandleUserFollowChanged(ctx context.Context, args services.UserFollowChangedArgs) error
}

// BatchHandler 是回填批次的处理方，由 services.BackfillRunner 实现。
type BatchHandler interface {
	RunBatch(ctx context.Context, args services.BackfillBatchArgs) error
}

// Dispatcher 按任务名路由到处理器。
type Dispatcher struct {
	handlers map[string]Handler
}

// NewDispatcher 注册全部扇出与回填任务。
func NewDispatcher(fanout FanoutHandlers, batches BatchHandler) *Dispatcher {
	d := &Dispatcher{handlers: make(map[string]Handler)}
	d.Register(services.TaskEventUpserted, JSONHandler(fanout.HandleEventUpserted))
	d.Register(services.TaskEventDeleted, JSONHandler(fanout.HandleEventDeleted))
	d.Register(services.TaskEventFollowed, JSONHandler(fanout.HandleEventFollowed))
	d.Register(services.TaskEventUnfollowed, JSONHandler(fanout.HandleEventUnfollowed))
	d.Register(services.TaskListFollowChanged, JSONHandler(fanout.HandleListFollowChanged))
	d.Register(services.TaskListMembershipChanged, JSONHandler(fanout.HandleListMembershipChanged))
	d.Register(services.TaskUserFollowChanged, JSONHandler(fanout.HandleUserFollowChanged))
	d.Register(services.TaskBackfillBatch, JSONHandler(batches.RunBatch))
	return d
}

// Register 注册或覆盖一个任务处理器。
func (d *Dispatcher) Register(name string, handler Handler) {
	d.handlers[name] = handler
}

// Dispatch 执行任务；未注册的任务名不可重试。
func (d *Dispatcher) Dispatch(ctx context.Context, task *po.Task) error {
	handler, ok := d.handlers[task.Name]
	if !ok {
		return Permanent(fmt.Errorf("%w: %q", ErrUnknownTask, task.Name))
	}
	return handler(ctx, task.Payload)
}
