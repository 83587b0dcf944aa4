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

// FeedEntryRepository 维护 feed.feed_entries 反范式视图。
type FeedEntryRepository struct {
	db      *pgxpool.Pool
	queries *feeddb.Queries
	log     *log.Helper
}

// NewFeedEntryRepository 构造仓储实例。
func NewFeedEntryRepository(db *pgxpool.Pool, logger log.Logger) *FeedEntryRepository {
	return &FeedEntryRepository{
		db:      db,
		queries: feeddb.New(db),
		log:     log.NewHelper(logger),
	}
}

// Get 按 (feed_id, event_id) 读取条目。
func (r *FeedEntryRepository) Get(ctx context.Context, sess txmanager.Session, feedID string, eventID uuid.UUID) (*po.FeedEntry, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	row, err := queries.GetFeedEntry(ctx, feeddb.GetFeedEntryParams{FeedID: feedID, EventID: eventID})
	if err != nil {
		return nil, fmt.Errorf("get feed entry: %w", notFound(err, ErrFeedEntryNotFound))
	}
	return mappers.FeedEntryFromRow(row), nil
}

// Insert 写入条目；主键冲突返回 ErrDuplicateFeedEntry。
func (r *FeedEntryRepository) Insert(ctx context.Context, sess txmanager.Session, entry po.FeedEntry) error {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	affected, err := queries.InsertFeedEntry(ctx, feeddb.InsertFeedEntryParams{
		FeedID:         entry.FeedID,
		EventID:        entry.EventID,
		EventStartTime: mappers.ToPgTimestamptz(entry.EventStartTime),
		EventEndTime:   mappers.ToPgTimestamptz(entry.EventEndTime),
		AddedAt:        mappers.ToPgTimestamptz(entry.AddedAt),
		HasEnded:       entry.HasEnded,
		UpdatedAt:      mappers.ToPgTimestamptz(entry.UpdatedAt),
	})
	if err != nil {
		r.log.WithContext(ctx).Errorw("msg", "insert feed entry failed", "feed_id", entry.FeedID, "event_id", entry.EventID, "error", err)
		return fmt.Errorf("insert feed entry: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("insert feed entry: %w", ErrDuplicateFeedEntry)
	}
	return nil
}

// UpdateSnapshot 覆盖条目的时间与结束标记，AddedAt 保持不变。
func (r *FeedEntryRepository) UpdateSnapshot(ctx context.Context, sess txmanager.Session, entry po.FeedEntry) error {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	affected, err := queries.UpdateFeedEntrySnapshot(ctx, feeddb.UpdateFeedEntrySnapshotParams{
		FeedID:         entry.FeedID,
		EventID:        entry.EventID,
		EventStartTime: mappers.ToPgTimestamptz(entry.EventStartTime),
		EventEndTime:   mappers.ToPgTimestamptz(entry.EventEndTime),
		HasEnded:       entry.HasEnded,
		UpdatedAt:      mappers.ToPgTimestamptz(entry.UpdatedAt),
	})
	if err != nil {
		return fmt.Errorf("update feed entry: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update feed entry: %w", ErrFeedEntryNotFound)
	}
	return nil
}

// Delete 删除条目，返回是否确实删除。
func (r *FeedEntryRepository) Delete(ctx context.Context, sess txmanager.Session, feedID string, eventID uuid.UUID) (bool, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	affected, err := queries.DeleteFeedEntry(ctx, feeddb.DeleteFeedEntryParams{FeedID: feedID, EventID: eventID})
	if err != nil {
		return false, fmt.Errorf("delete feed entry: %w", err)
	}
	return affected > 0, nil
}

// ListByEvent 返回包含某事件的全部条目。
func (r *FeedEntryRepository) ListByEvent(ctx context.Context, sess txmanager.Session, eventID uuid.UUID) ([]*po.FeedEntry, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	rows, err := queries.ListFeedEntriesByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list feed entries by event: %w", err)
	}
	return feedEntriesFromRows(rows), nil
}

// ListByFeed 返回某个 Feed 的全部条目。
func (r *FeedEntryRepository) ListByFeed(ctx context.Context, sess txmanager.Session, feedID string) ([]*po.FeedEntry, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	rows, err := queries.ListFeedEntriesByFeed(ctx, feedID)
	if err != nil {
		return nil, fmt.Errorf("list feed entries by feed: %w", err)
	}
	return feedEntriesFromRows(rows), nil
}

// DeleteByFeed 删除某个 Feed 的全部条目。
func (r *FeedEntryRepository) DeleteByFeed(ctx context.Context, sess txmanager.Session, feedID string) (int64, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	affected, err := queries.DeleteFeedEntriesByFeed(ctx, feedID)
	if err != nil {
		return 0, fmt.Errorf("delete feed entries by feed: %w", err)
	}
	return affected, nil
}

// ListPage 按 (feed_id, event_id) 顺序分页读取条目。
func (r *FeedEntryRepository) ListPage(ctx context.Context, sess txmanager.Session, afterFeedID string, afterEventID uuid.UUID, limit int) ([]*po.FeedEntry, error) {
	if limit <= 0 {
		return nil, nil
	}
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	rows, err := queries.ListFeedEntriesPage(ctx, feeddb.ListFeedEntriesPageParams{
		AfterFeedID:  afterFeedID,
		AfterEventID: afterEventID,
		PageSize:     int32(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("list feed entries page: %w", err)
	}
	return feedEntriesFromRows(rows), nil
}

// TimelineQuery 描述 Feed 时间线的分页参数；AfterStart 为 nil 表示第一页。
type TimelineQuery struct {
	FeedID       string
	AfterStart   *time.Time
	AfterEventID uuid.UUID
	UpcomingOnly bool
	Limit        int
}

// ListTimeline 按开始时间顺序读取 Feed。
func (r *FeedEntryRepository) ListTimeline(ctx context.Context, sess txmanager.Session, query TimelineQuery) ([]*po.FeedEntry, error) {
	if query.Limit <= 0 {
		return nil, nil
	}
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	after := mappers.NegativeInfinity()
	if query.AfterStart != nil {
		after = mappers.ToPgTimestamptzPtr(query.AfterStart)
	}
	rows, err := queries.ListFeedTimeline(ctx, feeddb.ListFeedTimelineParams{
		FeedID:       query.FeedID,
		AfterStart:   after,
		AfterEventID: query.AfterEventID,
		UpcomingOnly: query.UpcomingOnly,
		PageSize:     int32(query.Limit),
	})
	if err != nil {
		return nil, fmt.Errorf("list feed timeline: %w", err)
	}
	return feedEntriesFromRows(rows), nil
}

func feedEntriesFromRows(rows []feeddb.FeedFeedEntry) []*po.FeedEntry {
	result := make([]*po.FeedEntry, 0, len(rows))
	for _, row := range rows {
		result = append(result, mappers.FeedEntryFromRow(row))
	}
	return result
}
