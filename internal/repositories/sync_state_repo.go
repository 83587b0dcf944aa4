package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jaronheard/soonlist-turbo-sub000/internal/models/po"
	"github.com/jaronheard/soonlist-turbo-sub000/internal/repositories/feeddb"
	"github.com/jaronheard/soonlist-turbo-sub000/internal/repositories/mappers"
	"github.com/jaronheard/soonlist-turbo-sub000/internal/txmanager"
)

// SyncStateRepository 持久化回填管线的游标。
type SyncStateRepository struct {
	db      *pgxpool.Pool
	queries *feeddb.Queries
	log     *log.Helper
}

// NewSyncStateRepository 构造 SyncStateRepository。
func NewSyncStateRepository(db *pgxpool.Pool, logger log.Logger) *SyncStateRepository {
	return &SyncStateRepository{
		db:      db,
		queries: feeddb.New(db),
		log:     log.NewHelper(logger),
	}
}

// Get 返回管线状态。
func (r *SyncStateRepository) Get(ctx context.Context, sess txmanager.Session, pipelineKey string) (*po.SyncState, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	row, err := queries.GetSyncState(ctx, pipelineKey)
	if err != nil {
		return nil, fmt.Errorf("get sync state: %w", notFound(err, ErrSyncStateNotFound))
	}
	return mappers.SyncStateFromRow(row), nil
}

// Start 以新的 runID 与运行模式重置管线，游标清空、状态为 running。
func (r *SyncStateRepository) Start(ctx context.Context, sess txmanager.Session, pipelineKey string, runID uuid.UUID, mode po.SyncMode, now time.Time) (*po.SyncState, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	row, err := queries.StartSyncRun(ctx, feeddb.StartSyncRunParams{
		PipelineKey: pipelineKey,
		RunID:       runID,
		Mode:        string(mode),
		UpdatedAt:   mappers.ToPgTimestamptz(now),
	})
	if err != nil {
		r.log.WithContext(ctx).Errorw("msg", "start sync run failed", "pipeline", pipelineKey, "error", err)
		return nil, fmt.Errorf("start sync run: %w", err)
	}
	return mappers.SyncStateFromRow(row), nil
}

// AdvanceSyncStateInput 描述一次批次完成后的游标推进。
type AdvanceSyncStateInput struct {
	PipelineKey    string
	RunID          uuid.UUID
	ExpectedCursor string
	Cursor         string
	LastNamespace  string
	Processed      int64
	Status         po.SyncStatus
	UpdatedAt      time.Time
}

// Advance 以 (run_id, cursor) 为条件推进游标；条件不满足时返回 false，说明批次已过期。
func (r *SyncStateRepository) Advance(ctx context.Context, sess txmanager.Session, input AdvanceSyncStateInput) (bool, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	affected, err := queries.AdvanceSyncRun(ctx, feeddb.AdvanceSyncRunParams{
		Cursor:         input.Cursor,
		LastNamespace:  input.LastNamespace,
		Processed:      input.Processed,
		Status:         string(input.Status),
		UpdatedAt:      mappers.ToPgTimestamptz(input.UpdatedAt),
		PipelineKey:    input.PipelineKey,
		RunID:          input.RunID,
		ExpectedCursor: input.ExpectedCursor,
	})
	if err != nil {
		return false, fmt.Errorf("advance sync run: %w", err)
	}
	return affected > 0, nil
}

// SetStatus 修改指定运行的状态；runID 不匹配时返回 false。
func (r *SyncStateRepository) SetStatus(ctx context.Context, sess txmanager.Session, pipelineKey string, runID uuid.UUID, status po.SyncStatus, now time.Time) (bool, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	affected, err := queries.SetSyncStatus(ctx, feeddb.SetSyncStatusParams{
		PipelineKey: pipelineKey,
		RunID:       runID,
		Status:      string(status),
		UpdatedAt:   mappers.ToPgTimestamptz(now),
	})
	if err != nil {
		return false, fmt.Errorf("set sync status: %w", err)
	}
	return affected > 0, nil
}

// List 返回全部管线状态。
func (r *SyncStateRepository) List(ctx context.Context, sess txmanager.Session) ([]*po.SyncState, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	rows, err := queries.ListSyncStates(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sync states: %w", err)
	}
	result := make([]*po.SyncState, 0, len(rows))
	for _, row := range rows {
		result = append(result, mappers.SyncStateFromRow(row))
	}
	return result, nil
}
