// Package conf 定义服务启动配置，全部来自环境变量。
package conf

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/robfig/cron/v3"
)

// Bootstrap 是进程级配置根。
type Bootstrap struct {
	Server    Server   `envPrefix:"FEED_"`
	Data      Data     `envPrefix:"FEED_"`
	Backfill  Backfill `envPrefix:"FEED_BACKFILL_"`
	Tasks     Tasks    `envPrefix:"FEED_TASK_"`
	Stats     Stats    `envPrefix:"FEED_"`
	Refresh   Refresh  `envPrefix:"FEED_REFRESH_"`
	Handlers  Handlers `envPrefix:"FEED_HANDLER_"`
	ServiceID string   `env:"FEED_SERVICE_NAME" envDefault:"feed-index"`
}

// Server 描述对外监听地址。
type Server struct {
	GRPCAddr string `env:"GRPC_ADDR" envDefault:"0.0.0.0:9000"`
	HTTPAddr string `env:"HTTP_ADDR" envDefault:"0.0.0.0:8000"`
}

// Data 描述主存储与索引镜像位置。
type Data struct {
	DatabaseURL  string `env:"DATABASE_URL"`
	MaxConns     int32  `env:"DATABASE_MAX_CONNS" envDefault:"10"`
	AggregateDir string `env:"AGGREGATE_DIR"`
}

// Backfill 控制回填批次。
type Backfill struct {
	BatchSize  int           `env:"BATCH_SIZE" envDefault:"100"`
	BatchDelay time.Duration `env:"BATCH_DELAY" envDefault:"0s"`
}

// Tasks 控制任务队列消费者。
type Tasks struct {
	PollInterval time.Duration `env:"POLL_INTERVAL" envDefault:"1s"`
	LeaseTTL     time.Duration `env:"LEASE_TTL" envDefault:"30s"`
	MaxAttempts  int32         `env:"MAX_ATTEMPTS" envDefault:"8"`
	RetryBackoff time.Duration `env:"RETRY_BACKOFF" envDefault:"2s"`
	ClaimLimit   int32         `env:"CLAIM_LIMIT" envDefault:"16"`
}

// Stats 控制统计查询。
type Stats struct {
	DefaultWeeklyGoal int32         `env:"DEFAULT_WEEKLY_GOAL" envDefault:"5"`
	CacheSize         int           `env:"STATS_CACHE_SIZE" envDefault:"1024"`
	CacheTTL          time.Duration `env:"STATS_CACHE_TTL" envDefault:"10m"`
}

// Refresh 控制 feed_entries 周期性重算；Cron 为空时关闭。
type Refresh struct {
	Cron string `env:"CRON" envDefault:"@every 1h"`
}

// Handlers 控制 gRPC Handler 超时。
type Handlers struct {
	QueryTimeout   time.Duration `env:"QUERY_TIMEOUT" envDefault:"3s"`
	CommandTimeout time.Duration `env:"COMMAND_TIMEOUT" envDefault:"10s"`
}

// Load 从进程环境变量读取配置并校验。
func Load() (*Bootstrap, error) {
	return parse(env.Options{})
}

// LoadFrom 从给定的变量表读取配置，供测试使用。
func LoadFrom(environ map[string]string) (*Bootstrap, error) {
	return parse(env.Options{Environment: environ})
}

func parse(opts env.Options) (*Bootstrap, error) {
	var cfg Bootstrap
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate 检查配置取值。
func (c *Bootstrap) Validate() error {
	var errs []error
	if c.Data.DatabaseURL == "" {
		errs = append(errs, errors.New("FEED_DATABASE_URL is required"))
	}
	if c.Backfill.BatchSize <= 0 {
		errs = append(errs, fmt.Errorf("FEED_BACKFILL_BATCH_SIZE must be positive, got %d", c.Backfill.BatchSize))
	}
	if c.Backfill.BatchDelay < 0 {
		errs = append(errs, errors.New("FEED_BACKFILL_BATCH_DELAY must not be negative"))
	}
	if c.Tasks.PollInterval <= 0 {
		errs = append(errs, errors.New("FEED_TASK_POLL_INTERVAL must be positive"))
	}
	if c.Tasks.LeaseTTL <= 0 {
		errs = append(errs, errors.New("FEED_TASK_LEASE_TTL must be positive"))
	}
	if c.Tasks.MaxAttempts <= 0 {
		errs = append(errs, errors.New("FEED_TASK_MAX_ATTEMPTS must be positive"))
	}
	if c.Stats.DefaultWeeklyGoal < 0 {
		errs = append(errs, errors.New("FEED_DEFAULT_WEEKLY_GOAL must not be negative"))
	}
	if c.Stats.CacheSize <= 0 {
		errs = append(errs, errors.New("FEED_STATS_CACHE_SIZE must be positive"))
	}
	if c.Refresh.Cron != "" {
		if _, err := cron.ParseStandard(c.Refresh.Cron); err != nil {
			errs = append(errs, fmt.Errorf("FEED_REFRESH_CRON: %w", err))
		}
	}
	return errors.Join(errs...)
}
