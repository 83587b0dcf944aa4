package services

import (
	"github.com/google/wire"

	"github.com/jaronheard/soonlist-turbo-sub000/internal/aggregate"
	"github.com/jaronheard/soonlist-turbo-sub000/internal/repositories"
)

// ProviderSet 汇总用例构造函数与仓储接口绑定。
var ProviderSet = wire.NewSet(
	NewFeedMaterializer,
	NewCaptureService,
	NewBackfillRunner,
	NewStatsService,
	NewFeedService,
	wire.Bind(new(UserStore), new(*repositories.UserRepository)),
	wire.Bind(new(EventStore), new(*repositories.EventRepository)),
	wire.Bind(new(ListStore), new(*repositories.ListRepository)),
	wire.Bind(new(FollowStore), new(*repositories.FollowRepository)),
	wire.Bind(new(CommentStore), new(*repositories.CommentRepository)),
	wire.Bind(new(FeedEntryStore), new(*repositories.FeedEntryRepository)),
	wire.Bind(new(SyncStateStore), new(*repositories.SyncStateRepository)),
	wire.Bind(new(AggregateIndex), new(*aggregate.Index)),
	wire.Bind(new(FeedServiceInterface), new(*FeedService)),
	wire.Bind(new(StatsServiceInterface), new(*StatsService)),
	wire.Bind(new(UserCache), new(*StatsService)),
	wire.Bind(new(FeedFanoutInterface), new(*FeedMaterializer)),
	wire.Bind(new(BackfillInterface), new(*BackfillRunner)),
)
