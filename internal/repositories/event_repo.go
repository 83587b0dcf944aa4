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

// EventRepository 维护 feed.events，是扇出与回填的数据来源。
type EventRepository struct {
	db      *pgxpool.Pool
	queries *feeddb.Queries
	log     *log.Helper
}

// NewEventRepository 构造仓储实例。
func NewEventRepository(db *pgxpool.Pool, logger log.Logger) *EventRepository {
	return &EventRepository{
		db:      db,
		queries: feeddb.New(db),
		log:     log.NewHelper(logger),
	}
}

// CreateEventInput 描述事件写入参数。
type CreateEventInput struct {
	ID         uuid.UUID
	OwnerID    uuid.UUID
	Visibility po.Visibility
	StartTime  time.Time
	EndTime    time.Time
	CreatedAt  time.Time
}

// UpdateEventInput 描述事件更新参数。
type UpdateEventInput struct {
	ID         uuid.UUID
	Visibility po.Visibility
	StartTime  time.Time
	EndTime    time.Time
	UpdatedAt  time.Time
}

// Create 写入事件。
func (r *EventRepository) Create(ctx context.Context, sess txmanager.Session, input CreateEventInput) (*po.Event, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	row, err := queries.InsertEvent(ctx, feeddb.InsertEventParams{
		ID:         input.ID,
		OwnerID:    input.OwnerID,
		Visibility: string(input.Visibility),
		StartTime:  mappers.ToPgTimestamptz(input.StartTime),
		EndTime:    mappers.ToPgTimestamptz(input.EndTime),
		CreatedAt:  mappers.ToPgTimestamptz(input.CreatedAt),
	})
	if err != nil {
		r.log.WithContext(ctx).Errorw("msg", "insert event failed", "event_id", input.ID, "error", err)
		return nil, fmt.Errorf("insert event: %w", err)
	}
	return mappers.EventFromRow(row), nil
}

// Update 更新事件的可见性与时间。
func (r *EventRepository) Update(ctx context.Context, sess txmanager.Session, input UpdateEventInput) (*po.Event, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	row, err := queries.UpdateEvent(ctx, feeddb.UpdateEventParams{
		ID:         input.ID,
		Visibility: string(input.Visibility),
		StartTime:  mappers.ToPgTimestamptz(input.StartTime),
		EndTime:    mappers.ToPgTimestamptz(input.EndTime),
		UpdatedAt:  mappers.ToPgTimestamptz(input.UpdatedAt),
	})
	if err != nil {
		return nil, fmt.Errorf("update event: %w", notFound(err, ErrEventNotFound))
	}
	return mappers.EventFromRow(row), nil
}

// Get 返回单个事件。
func (r *EventRepository) Get(ctx context.Context, sess txmanager.Session, id uuid.UUID) (*po.Event, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	row, err := queries.GetEvent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", notFound(err, ErrEventNotFound))
	}
	return mappers.EventFromRow(row), nil
}

// Delete 删除事件，返回是否确实删除。
func (r *EventRepository) Delete(ctx context.Context, sess txmanager.Session, id uuid.UUID) (bool, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	affected, err := queries.DeleteEvent(ctx, id)
	if err != nil {
		r.log.WithContext(ctx).Errorw("msg", "delete event failed", "event_id", id, "error", err)
		return false, fmt.Errorf("delete event: %w", err)
	}
	return affected > 0, nil
}

// ListByOwner 返回某用户创建的全部事件。
func (r *EventRepository) ListByOwner(ctx context.Context, sess txmanager.Session, ownerID uuid.UUID) ([]*po.Event, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	rows, err := queries.ListEventsByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list events by owner: %w", err)
	}
	return eventsFromRows(rows), nil
}

// ListByList 返回列表中的全部事件。
func (r *EventRepository) ListByList(ctx context.Context, sess txmanager.Session, listID uuid.UUID) ([]*po.Event, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	rows, err := queries.ListEventsByList(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("list events by list: %w", err)
	}
	return eventsFromRows(rows), nil
}

// ListPage 按 (owner_id, id) 顺序读取 after 之后的至多 limit 条事件，同一创建者的事件在页间连续。
func (r *EventRepository) ListPage(ctx context.Context, sess txmanager.Session, afterOwnerID, afterID uuid.UUID, limit int) ([]*po.Event, error) {
	if limit <= 0 {
		return nil, nil
	}
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	rows, err := queries.ListEventsPage(ctx, feeddb.ListEventsPageParams{
		AfterOwnerID: afterOwnerID,
		AfterID:      afterID,
		PageSize:     int32(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("list events page: %w", err)
	}
	return eventsFromRows(rows), nil
}

func eventsFromRows(rows []feeddb.FeedEvent) []*po.Event {
	result := make([]*po.Event, 0, len(rows))
	for _, row := range rows {
		result = append(result, mappers.EventFromRow(row))
	}
	return result
}
