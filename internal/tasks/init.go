package tasks

import (
	"github.com/google/wire"

	"github.com/jaronheard/soonlist-turbo-sub000/internal/aggregate"
	"github.com/jaronheard/soonlist-turbo-sub000/internal/repositories"
	"github.com/jaronheard/soonlist-turbo-sub000/internal/services"
)

// ProviderSet 汇总任务队列相关构造函数。
var ProviderSet = wire.NewSet(
	NewQueue,
	NewDispatcher,
	NewRunner,
	wire.Bind(new(TaskStore), new(*repositories.TaskRepository)),
	wire.Bind(new(services.Scheduler), new(*Queue)),
	wire.Bind(new(FanoutHandlers), new(*services.FeedMaterializer)),
	wire.Bind(new(BatchHandler), new(*services.BackfillRunner)),
	wire.Bind(new(Backfiller), new(*services.BackfillRunner)),
	wire.Bind(new(IndexState), new(*aggregate.Index)),
)
