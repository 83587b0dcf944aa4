// Command grpc 启动 Feed 索引服务：gRPC 接口、/metrics 与 /healthz、任务消费者及定时刷新。
package main

import (
	"fmt"
	"os"

	"github.com/go-kratos/kratos/v2"
	"github.com/go-kratos/kratos/v2/log"
	kgrpc "github.com/go-kratos/kratos/v2/transport/grpc"
	khttp "github.com/go-kratos/kratos/v2/transport/http"

	"github.com/jaronheard/soonlist-turbo-sub000/internal/conf"
	"github.com/jaronheard/soonlist-turbo-sub000/internal/tasks"
)

// Version 由构建参数注入。
var Version = "dev"

func newApp(cfg *conf.Bootstrap, logger log.Logger, gs *kgrpc.Server, hs *khttp.Server, runner *tasks.Runner) *kratos.App {
	return kratos.New(
		kratos.Name(cfg.ServiceID),
		kratos.Version(Version),
		kratos.Logger(logger),
		kratos.Server(gs, hs, runner),
	)
}

func main() {
	cfg, err := conf.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	hostname, _ := os.Hostname()
	logger := log.With(log.NewStdLogger(os.Stdout),
		"ts", log.DefaultTimestamp,
		"caller", log.DefaultCaller,
		"service.id", hostname,
		"service.name", cfg.ServiceID,
		"service.version", Version,
	)

	app, cleanup, err := wireApp(cfg, logger)
	if err != nil {
		log.NewHelper(logger).Errorw("msg", "init app failed", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	if err := app.Run(); err != nil {
		log.NewHelper(logger).Errorw("msg", "app exited", "error", err)
		cleanup()
		os.Exit(1)
	}
}
