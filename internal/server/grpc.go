// Package server 组装对外暴露的 gRPC 与 HTTP 服务以及进程级基础设施。
package server

import (
	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware/logging"
	"github.com/go-kratos/kratos/v2/middleware/recovery"
	"github.com/go-kratos/kratos/v2/middleware/tracing"
	kgrpc "github.com/go-kratos/kratos/v2/transport/grpc"

	feedindexv1 "github.com/jaronheard/soonlist-turbo-sub000/api/feedindex/v1"
	"github.com/jaronheard/soonlist-turbo-sub000/internal/conf"
)

// NewGRPCServer 构造 gRPC 服务并注册 FeedIndexService。kratos 默认同时注册健康检查服务。
func NewGRPCServer(cfg *conf.Bootstrap, handler feedindexv1.FeedIndexServiceServer, logger log.Logger) *kgrpc.Server {
	opts := []kgrpc.ServerOption{
		kgrpc.Middleware(
			recovery.Recovery(),
			tracing.Server(),
			logging.Server(logger),
		),
	}
	if cfg.Server.GRPCAddr != "" {
		opts = append(opts, kgrpc.Address(cfg.Server.GRPCAddr))
	}
	srv := kgrpc.NewServer(opts...)
	feedindexv1.RegisterFeedIndexServiceServer(srv, handler)
	return srv
}
