// Package repositories 封装 feed schema 的数据访问，所有方法都可在外部事务中执行。
package repositories

import (
	"context"
	"fmt"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jaronheard/soonlist-turbo-sub000/internal/conf"
)

// ProviderSet 汇总仓储构造函数。
var ProviderSet = wire.NewSet(
	NewPgxPool,
	NewUserRepository,
	NewEventRepository,
	NewListRepository,
	NewFollowRepository,
	NewCommentRepository,
	NewFeedEntryRepository,
	NewSyncStateRepository,
	NewTaskRepository,
)

// NewPgxPool 根据配置建立连接池。
func NewPgxPool(cfg *conf.Bootstrap, logger log.Logger) (*pgxpool.Pool, func(), error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.Data.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("parse database url: %w", err)
	}
	if cfg.Data.MaxConns > 0 {
		poolCfg.MaxConns = cfg.Data.MaxConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("create pgx pool: %w", err)
	}
	helper := log.NewHelper(logger)
	cleanup := func() {
		helper.Info("closing pgx pool")
		pool.Close()
	}
	return pool, cleanup, nil
}
