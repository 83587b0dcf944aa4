package server

import (
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jaronheard/soonlist-turbo-sub000/internal/txmanager"
)

// ProviderSet 汇总传输层与基础设施构造函数。
var ProviderSet = wire.NewSet(
	NewGRPCServer,
	NewHTTPServer,
	NewMetricsRegistry,
	NewAggregateIndex,
	ProvideClock,
	txmanager.NewManager,
	wire.Bind(new(txmanager.Manager), new(*txmanager.PgxManager)),
	wire.Bind(new(Pinger), new(*pgxpool.Pool)),
)
