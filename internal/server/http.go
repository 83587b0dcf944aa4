package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	khttp "github.com/go-kratos/kratos/v2/transport/http"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jaronheard/soonlist-turbo-sub000/internal/conf"
)

const healthTimeout = 2 * time.Second

// Pinger 检查主库连通性，由 *pgxpool.Pool 实现。
type Pinger interface {
	Ping(ctx context.Context) error
}

// NewHTTPServer 构造只暴露 /metrics 与 /healthz 的 HTTP 服务。
func NewHTTPServer(cfg *conf.Bootstrap, registry *prometheus.Registry, db Pinger, logger log.Logger) *khttp.Server {
	var opts []khttp.ServerOption
	if cfg.Server.HTTPAddr != "" {
		opts = append(opts, khttp.Address(cfg.Server.HTTPAddr))
	}
	srv := khttp.NewServer(opts...)
	srv.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	srv.HandleFunc("/healthz", HealthHandler(db, logger))
	return srv
}

// HealthHandler 在主库可达时返回 200，否则返回 503。
func HealthHandler(db Pinger, logger log.Logger) http.HandlerFunc {
	helper := log.NewHelper(logger)
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			helper.WithContext(ctx).Warnw("msg", "health check failed", "error", err)
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	}
}
