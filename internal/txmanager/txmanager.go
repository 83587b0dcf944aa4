// Package txmanager 封装 pgx 事务，仓储通过 Session 复用同一事务。
package txmanager

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Session 表示一次进行中的事务。
type Session interface {
	Tx() pgx.Tx
	Context() context.Context
}

// TxOptions 控制事务隔离级别与只读属性。
type TxOptions struct {
	IsoLevel pgx.TxIsoLevel
	ReadOnly bool
}

// Manager 负责开启、提交与回滚事务。
type Manager interface {
	WithinTx(ctx context.Context, opts TxOptions, fn func(ctx context.Context, sess Session) error) error
}

type session struct {
	ctx context.Context
	tx  pgx.Tx
}

func (s *session) Tx() pgx.Tx               { return s.tx }
func (s *session) Context() context.Context { return s.ctx }

// PgxManager 是基于 pgxpool 的 Manager 实现。
type PgxManager struct {
	pool *pgxpool.Pool
	log  *log.Helper
}

// NewManager 构造 PgxManager。
func NewManager(pool *pgxpool.Pool, logger log.Logger) *PgxManager {
	return &PgxManager{pool: pool, log: log.NewHelper(logger)}
}

// WithinTx 在事务内执行 fn；fn 返回错误或 panic 时回滚。
func (m *PgxManager) WithinTx(ctx context.Context, opts TxOptions, fn func(ctx context.Context, sess Session) error) (err error) {
	accessMode := pgx.ReadWrite
	if opts.ReadOnly {
		accessMode = pgx.ReadOnly
	}
	tx, err := m.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: opts.IsoLevel, AccessMode: accessMode})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
		if err == nil {
			return
		}
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			m.log.WithContext(ctx).Errorw("msg", "rollback tx failed", "error", rbErr)
		}
	}()

	if err = fn(ctx, &session{ctx: ctx, tx: tx}); err != nil {
		return err
	}
	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

var _ Manager = (*PgxManager)(nil)
