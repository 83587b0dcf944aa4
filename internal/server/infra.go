package server

import (
	"context"
	"fmt"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/juju/clock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/jaronheard/soonlist-turbo-sub000/internal/aggregate"
	"github.com/jaronheard/soonlist-turbo-sub000/internal/conf"
	"github.com/jaronheard/soonlist-turbo-sub000/internal/metrics"
)

// ProvideClock 返回墙钟。测试通过注入 testclock 替换。
func ProvideClock() clock.Clock {
	return clock.WallClock
}

// NewMetricsRegistry 构造包含运行时与业务指标的注册表。
func NewMetricsRegistry() (*prometheus.Registry, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	if err := metrics.Register(registry); err != nil {
		return nil, fmt.Errorf("register metrics: %w", err)
	}
	return registry, nil
}

// NewAggregateIndex 打开聚合索引。配置了 AggregateDir 时使用 pebble 镜像并在启动时加载，
// 否则索引只驻留内存，需要通过回填重建。
func NewAggregateIndex(cfg *conf.Bootstrap, logger log.Logger) (*aggregate.Index, func(), error) {
	helper := log.NewHelper(logger)
	var persister aggregate.Persister
	if cfg.Data.AggregateDir != "" {
		store, err := aggregate.OpenPebbleStore(cfg.Data.AggregateDir, nil)
		if err != nil {
			return nil, nil, fmt.Errorf("open aggregate store: %w", err)
		}
		persister = store
	}
	index := aggregate.NewIndex(persister, logger)
	if err := index.Open(context.Background()); err != nil {
		_ = index.Close()
		return nil, nil, err
	}
	if persister == nil {
		helper.Warn("aggregate index is memory-only, pipelines will rebuild it on start")
	}
	cleanup := func() {
		if err := index.Close(); err != nil {
			helper.Errorw("msg", "close aggregate index failed", "error", err)
		}
	}
	return index, cleanup, nil
}
