// Package metrics 汇总 Feed 索引服务的 Prometheus 指标。
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

var AggregateOps = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: "feedindex",
	Subsystem: "aggregate",
	Name:      "ops_total",
}, []string{"op"})

var FeedWrites = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: "feedindex",
	Subsystem: "materializer",
	Name:      "feed_writes_total",
}, []string{"op"})

var FanoutSkips = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: "feedindex",
	Subsystem: "materializer",
	Name:      "skips_total",
}, []string{"trigger", "reason"})

var SchedulingFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: "feedindex",
	Subsystem: "scheduler",
	Name:      "failures_total",
}, []string{"task"})

var BackfillBatches = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: "feedindex",
	Subsystem: "backfill",
	Name:      "batches_total",
}, []string{"pipeline", "result"})

var BackfillRecords = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: "feedindex",
	Subsystem: "backfill",
	Name:      "records_total",
}, []string{"pipeline"})

var TaskResults = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: "feedindex",
	Subsystem: "tasks",
	Name:      "results_total",
}, []string{"task", "result"})

var TaskDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "feedindex",
	Subsystem: "tasks",
	Name:      "duration_seconds",
	Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10},
}, []string{"task"})

// Collectors 返回全部指标，便于统一注册。
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		AggregateOps,
		FeedWrites,
		FanoutSkips,
		SchedulingFailures,
		BackfillBatches,
		BackfillRecords,
		TaskResults,
		TaskDuration,
	}
}

// Register 注册全部指标；重复注册被忽略。
func Register(reg prometheus.Registerer) error {
	for _, c := range Collectors() {
		if err := reg.Register(c); err != nil {
			var already prometheus.AlreadyRegisteredError
			if errors.As(err, &already) {
				continue
			}
			return err
		}
	}
	return nil
}
