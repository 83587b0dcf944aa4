package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/juju/clock"
	"github.com/puzpuzpuz/xsync/v3"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/jaronheard/soonlist-turbo-sub000/internal/aggregate"
	"github.com/jaronheard/soonlist-turbo-sub000/internal/conf"
	"github.com/jaronheard/soonlist-turbo-sub000/internal/metrics"
	"github.com/jaronheard/soonlist-turbo-sub000/internal/models/po"
	"github.com/jaronheard/soonlist-turbo-sub000/internal/repositories"
)

// 回填管线名称，同时作为 feed.sync_state 的主键。
const (
	PipelineEventsByCreator = "events_by_creator"
	PipelineEventFollows    = "event_follows"
	PipelineFeedEntries     = "feed_entries"
)

// Pipelines 按 InitializeAllAggregates 的启动顺序列出全部管线。
var Pipelines = []string{PipelineEventsByCreator, PipelineEventFollows, PipelineFeedEntries}

// backfillRecord 是一页中的一行：所属命名空间、行游标与写回动作。
type backfillRecord struct {
	namespace string
	cursor    keysetCursor
	apply     func(ctx context.Context) error
}

// backfillPipeline 按主键顺序分页读取，保证同一命名空间的行在分页间连续。
type backfillPipeline interface {
	page(ctx context.Context, after keysetCursor, limit int) ([]backfillRecord, error)
}

// NamespaceRepair 记录一次定点修复前后命名空间的计数。
type NamespaceRepair struct {
	Namespace string
	Before    int
	After     int
}

// runNamespaces 是某条管线当前运行已清空的命名空间。
type runNamespaces struct {
	runID uuid.UUID
	seen  *xsync.MapOf[string, struct{}]
}

// BackfillRunner 以持久化游标分批重建聚合索引。每次运行同一时刻只有一个批次在途。
type BackfillRunner struct {
	users      UserStore
	events     EventStore
	follows    FollowStore
	entries    FeedEntryStore
	states     SyncStateStore
	scheduler  Scheduler
	index      AggregateIndex
	clock      clock.Clock
	pipelines  map[string]backfillPipeline
	batchSize  int
	batchDelay time.Duration
	cleared    *xsync.MapOf[string, runNamespaces]
	tracer     trace.Tracer
	log        *log.Helper
}

// NewBackfillRunner 构造 BackfillRunner。
func NewBackfillRunner(
	users UserStore,
	events EventStore,
	follows FollowStore,
	entries FeedEntryStore,
	states SyncStateStore,
	scheduler Scheduler,
	index AggregateIndex,
	clk clock.Clock,
	cfg *conf.Bootstrap,
	logger log.Logger,
) *BackfillRunner {
	batchSize := 100
	var batchDelay time.Duration
	if cfg != nil {
		if cfg.Backfill.BatchSize > 0 {
			batchSize = cfg.Backfill.BatchSize
		}
		batchDelay = cfg.Backfill.BatchDelay
	}
	r := &BackfillRunner{
		users:      users,
		events:     events,
		follows:    follows,
		entries:    entries,
		states:     states,
		scheduler:  scheduler,
		index:      index,
		clock:      clk,
		batchSize:  batchSize,
		batchDelay: batchDelay,
		cleared:    xsync.NewMapOf[string, runNamespaces](),
		tracer:     otel.Tracer(tracerName),
		log:        log.NewHelper(logger),
	}
	r.pipelines = map[string]backfillPipeline{
		PipelineEventsByCreator: &eventsByCreatorPipeline{events: events, index: index},
		PipelineEventFollows:    &eventFollowsPipeline{follows: follows, index: index},
		PipelineFeedEntries:     &feedEntriesPipeline{entries: entries, index: index, clock: clk},
	}
	return r
}

// InitializeAllAggregates 依次启动全部管线；重复调用会以新的 runId 重新开始。
func (r *BackfillRunner) InitializeAllAggregates(ctx context.Context) ([]*po.SyncState, error) {
	states := make([]*po.SyncState, 0, len(Pipelines))
	var errs []error
	for _, pipeline := range Pipelines {
		state, err := r.StartRun(ctx, pipeline)
		if state != nil {
			states = append(states, state)
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("start %s: %w", pipeline, err))
		}
	}
	return states, errors.Join(errs...)
}

// StartRun 为管线开启新的重建运行并调度第一批。每个命名空间首次出现时先清空。
func (r *BackfillRunner) StartRun(ctx context.Context, pipeline string) (*po.SyncState, error) {
	return r.start(ctx, pipeline, po.SyncModeRebuild)
}

// RefreshRun 开启原地刷新运行：逐条 ReplaceOrInsert，不清空命名空间，运行期间计数保持完整。
// 定时的 hasEnded 刷新走这条路径。
func (r *BackfillRunner) RefreshRun(ctx context.Context, pipeline string) (*po.SyncState, error) {
	return r.start(ctx, pipeline, po.SyncModeRefresh)
}

func (r *BackfillRunner) start(ctx context.Context, pipeline string, mode po.SyncMode) (*po.SyncState, error) {
	if _, ok := r.pipelines[pipeline]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPipeline, pipeline)
	}
	state, err := r.states.Start(ctx, nil, pipeline, uuid.New(), mode, r.clock.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("start sync run: %w", err)
	}
	// 被取代的运行不会再推进，丢弃它的已清空集合。
	r.cleared.Delete(pipeline)
	r.log.WithContext(ctx).Infow("msg", "backfill run started", "pipeline", pipeline, "run_id", state.RunID, "mode", mode)
	return r.scheduleBatch(ctx, state, 0)
}

// ListRuns 返回全部管线的运行状态，按管线名排序。
func (r *BackfillRunner) ListRuns(ctx context.Context) ([]*po.SyncState, error) {
	states, err := r.states.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("list sync states: %w", err)
	}
	return states, nil
}

// ResumeRun 从持久化游标继续一次未完成的运行，常用于调度失败被挂起之后。
// 已完成的运行原样返回。
func (r *BackfillRunner) ResumeRun(ctx context.Context, pipeline string) (*po.SyncState, error) {
	if _, ok := r.pipelines[pipeline]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPipeline, pipeline)
	}
	state, err := r.states.Get(ctx, nil, pipeline)
	if err != nil {
		return nil, fmt.Errorf("get sync state: %w", err)
	}
	if state.Status == po.SyncStatusDone {
		return state, nil
	}
	if state.Status != po.SyncStatusRunning {
		if _, err := r.states.SetStatus(ctx, nil, pipeline, state.RunID, po.SyncStatusRunning, r.clock.Now().UTC()); err != nil {
			return nil, fmt.Errorf("resume sync run: %w", err)
		}
		state.Status = po.SyncStatusRunning
	}
	r.log.WithContext(ctx).Infow("msg", "backfill run resumed", "pipeline", pipeline, "run_id", state.RunID, "processed", state.Processed)
	return r.scheduleBatch(ctx, state, 0)
}

// RunBatch 执行一个批次。过期的重复投递直接跳过。
func (r *BackfillRunner) RunBatch(ctx context.Context, args BackfillBatchArgs) (err error) {
	ctx, span := r.tracer.Start(ctx, "BackfillRunner.RunBatch", trace.WithAttributes(
		attribute.String("pipeline", args.Pipeline),
		attribute.String("run.id", args.RunID.String())))
	defer func() { endSpan(span, err) }()

	pipeline, ok := r.pipelines[args.Pipeline]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPipeline, args.Pipeline)
	}
	state, err := r.states.Get(ctx, nil, args.Pipeline)
	switch {
	case errors.Is(err, repositories.ErrSyncStateNotFound):
		r.skipStale(ctx, args, "missing state")
		return nil
	case err != nil:
		return fmt.Errorf("get sync state: %w", err)
	}
	if state.RunID != args.RunID || state.Status != po.SyncStatusRunning || state.Cursor != args.Cursor {
		r.skipStale(ctx, args, "superseded")
		return nil
	}

	after, err := decodeCursor(args.Cursor)
	if err != nil {
		return err
	}
	records, err := pipeline.page(ctx, after, r.batchSize+1)
	if err != nil {
		metrics.BackfillBatches.WithLabelValues(args.Pipeline, "error").Inc()
		return fmt.Errorf("read backfill page: %w", err)
	}
	more := len(records) > r.batchSize
	if more {
		records = records[:r.batchSize]
	}

	var cleared *xsync.MapOf[string, struct{}]
	if state.Mode != po.SyncModeRefresh {
		cleared = r.clearedSet(state)
	}
	for _, record := range records {
		if cleared != nil {
			if _, seen := cleared.LoadOrStore(record.namespace, struct{}{}); !seen {
				if err := r.index.Clear(ctx, record.namespace); err != nil {
					cleared.Delete(record.namespace)
					return fmt.Errorf("clear namespace: %w", err)
				}
			}
		}
		if err := record.apply(ctx); err != nil {
			metrics.BackfillBatches.WithLabelValues(args.Pipeline, "error").Inc()
			return fmt.Errorf("apply backfill record: %w", err)
		}
	}
	metrics.BackfillRecords.WithLabelValues(args.Pipeline).Add(float64(len(records)))

	next := state.Cursor
	lastNamespace := state.LastNamespace
	if len(records) > 0 {
		last := records[len(records)-1]
		if next, err = encodeCursor(last.cursor); err != nil {
			return err
		}
		lastNamespace = last.namespace
	}
	status := po.SyncStatusDone
	if more {
		status = po.SyncStatusRunning
	}
	advanced, err := r.states.Advance(ctx, nil, repositories.AdvanceSyncStateInput{
		PipelineKey:    args.Pipeline,
		RunID:          args.RunID,
		ExpectedCursor: args.Cursor,
		Cursor:         next,
		LastNamespace:  lastNamespace,
		Processed:      state.Processed + int64(len(records)),
		Status:         status,
		UpdatedAt:      r.clock.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("advance sync state: %w", err)
	}
	if !advanced {
		r.skipStale(ctx, args, "cursor moved")
		return nil
	}
	metrics.BackfillBatches.WithLabelValues(args.Pipeline, "ok").Inc()

	if !more {
		r.forgetRun(args.Pipeline, args.RunID)
		r.log.WithContext(ctx).Infow("msg", "backfill run done", "pipeline", args.Pipeline, "run_id", args.RunID,
			"processed", state.Processed+int64(len(records)))
		return nil
	}
	state.Cursor = next
	state.LastNamespace = lastNamespace
	state.Processed += int64(len(records))
	_, err = r.scheduleBatch(ctx, state, r.batchDelay)
	if errors.Is(err, ErrSchedulingFailed) {
		// 运行已挂起在最后一个成功游标，等待 ResumeRun。
		return nil
	}
	return err
}

// scheduleBatch 调度 state.Cursor 之后的下一批；失败时把运行挂起。
func (r *BackfillRunner) scheduleBatch(ctx context.Context, state *po.SyncState, delay time.Duration) (*po.SyncState, error) {
	args := BackfillBatchArgs{Pipeline: state.PipelineKey, RunID: state.RunID, Cursor: state.Cursor}
	err := r.scheduler.ScheduleAfter(ctx, delay, TaskBackfillBatch, args)
	if err == nil {
		return state, nil
	}
	metrics.SchedulingFailures.WithLabelValues(TaskBackfillBatch).Inc()
	r.log.WithContext(ctx).Errorw("msg", "schedule backfill batch failed, halting run",
		"pipeline", state.PipelineKey, "run_id", state.RunID, "cursor", state.Cursor, "error", err)
	if _, haltErr := r.states.SetStatus(ctx, nil, state.PipelineKey, state.RunID, po.SyncStatusHalted, r.clock.Now().UTC()); haltErr != nil {
		return state, errors.Join(fmt.Errorf("%w: %v", ErrSchedulingFailed, err), fmt.Errorf("halt sync run: %w", haltErr))
	}
	state.Status = po.SyncStatusHalted
	return state, fmt.Errorf("%w: %v", ErrSchedulingFailed, err)
}

// clearedSet 返回本次运行已清空的命名空间集合，每条管线只保留当前运行的集合。
// 进程重启后以持久化的 lastNamespace 播种：该命名空间在崩溃前已被清空，
// 其之前的命名空间都已完整处理。
func (r *BackfillRunner) clearedSet(state *po.SyncState) *xsync.MapOf[string, struct{}] {
	run, _ := r.cleared.Compute(state.PipelineKey, func(old runNamespaces, loaded bool) (runNamespaces, bool) {
		if loaded && old.runID == state.RunID {
			return old, false
		}
		seen := xsync.NewMapOf[string, struct{}]()
		if state.LastNamespace != "" {
			seen.Store(state.LastNamespace, struct{}{})
		}
		return runNamespaces{runID: state.RunID, seen: seen}, false
	})
	return run.seen
}

func (r *BackfillRunner) forgetRun(pipeline string, runID uuid.UUID) {
	r.cleared.Compute(pipeline, func(old runNamespaces, loaded bool) (runNamespaces, bool) {
		return old, !loaded || old.runID == runID
	})
}

// RepairUser 按主库重建单个用户的创建、关注镜像与个人 Feed 三个命名空间，
// 用于发现计数漂移后的定点修复。自关注不写入关注镜像。
func (r *BackfillRunner) RepairUser(ctx context.Context, userID uuid.UUID) (repairs []NamespaceRepair, err error) {
	ctx, span := r.tracer.Start(ctx, "BackfillRunner.RepairUser", trace.WithAttributes(
		attribute.String("user.id", userID.String())))
	defer func() { endSpan(span, err) }()

	if _, err := r.users.Get(ctx, nil, userID); err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	events, err := r.events.ListByOwner(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("list owned events: %w", err)
	}
	follows, err := r.follows.ListEventFollowsByUser(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("list event follows: %w", err)
	}
	feedID := po.UserFeedID(userID)
	entries, err := r.entries.ListByFeed(ctx, nil, feedID)
	if err != nil {
		return nil, fmt.Errorf("list feed entries: %w", err)
	}

	owned := make(map[uuid.UUID]struct{}, len(events))
	created := make([]aggregate.Item, 0, len(events))
	for _, event := range events {
		owned[event.ID] = struct{}{}
		created = append(created, creatorItem(event.OwnerID, event.ID, event.CreatedAt))
	}
	followed := make([]aggregate.Item, 0, len(follows))
	for _, follow := range follows {
		if _, self := owned[follow.EventID]; self {
			continue
		}
		followed = append(followed, followItem(follow.UserID, follow.EventID, follow.CreatedAt))
	}
	feed := make([]aggregate.Item, 0, len(entries))
	for _, entry := range entries {
		feed = append(feed, feedItem(entry.FeedID, entry.EventID, entry.HasEnded))
	}

	plan := []struct {
		namespace string
		items     []aggregate.Item
	}{
		{aggregate.EventsByCreatorNamespace(userID), created},
		{aggregate.EventFollowsByUserNamespace(userID), followed},
		{aggregate.FeedNamespace(feedID), feed},
	}
	repairs = make([]NamespaceRepair, 0, len(plan))
	for _, step := range plan {
		before := r.index.Count(step.namespace)
		if err := r.index.Clear(ctx, step.namespace); err != nil {
			return repairs, fmt.Errorf("clear namespace: %w", err)
		}
		for _, item := range step.items {
			if err := r.index.ReplaceOrInsert(ctx, item, item); err != nil {
				return repairs, fmt.Errorf("repair namespace %s: %w", step.namespace, err)
			}
		}
		repairs = append(repairs, NamespaceRepair{Namespace: step.namespace, Before: before, After: r.index.Count(step.namespace)})
	}
	r.log.WithContext(ctx).Infow("msg", "user aggregates repaired", "user_id", userID, "repairs", repairs)
	return repairs, nil
}

func (r *BackfillRunner) skipStale(ctx context.Context, args BackfillBatchArgs, reason string) {
	metrics.BackfillBatches.WithLabelValues(args.Pipeline, "stale").Inc()
	r.log.WithContext(ctx).Infow("msg", "skip stale backfill batch", "pipeline", args.Pipeline,
		"run_id", args.RunID, "reason", reason)
}

type eventsByCreatorPipeline struct {
	events EventStore
	index  AggregateIndex
}

func (p *eventsByCreatorPipeline) page(ctx context.Context, after keysetCursor, limit int) ([]backfillRecord, error) {
	afterOwner, err := parseCursorID(after.Primary)
	if err != nil {
		return nil, err
	}
	afterID, err := parseCursorID(after.Secondary)
	if err != nil {
		return nil, err
	}
	events, err := p.events.ListPage(ctx, nil, afterOwner, afterID, limit)
	if err != nil {
		return nil, err
	}
	records := make([]backfillRecord, 0, len(events))
	for _, event := range events {
		item := creatorItem(event.OwnerID, event.ID, event.CreatedAt)
		records = append(records, backfillRecord{
			namespace: item.Namespace,
			cursor:    keysetCursor{Primary: event.OwnerID.String(), Secondary: event.ID.String()},
			apply: func(ctx context.Context) error {
				return p.index.ReplaceOrInsert(ctx, item, item)
			},
		})
	}
	return records, nil
}

type eventFollowsPipeline struct {
	follows FollowStore
	index   AggregateIndex
}

func (p *eventFollowsPipeline) page(ctx context.Context, after keysetCursor, limit int) ([]backfillRecord, error) {
	afterUser, err := parseCursorID(after.Primary)
	if err != nil {
		return nil, err
	}
	afterEvent, err := parseCursorID(after.Secondary)
	if err != nil {
		return nil, err
	}
	rows, err := p.follows.ListEventFollowsPage(ctx, nil, afterUser, afterEvent, limit)
	if err != nil {
		return nil, err
	}
	records := make([]backfillRecord, 0, len(rows))
	for _, row := range rows {
		item := followItem(row.UserID, row.EventID, row.CreatedAt)
		selfFollow := row.UserID == row.EventOwnerID
		records = append(records, backfillRecord{
			namespace: item.Namespace,
			cursor:    keysetCursor{Primary: row.UserID.String(), Secondary: row.EventID.String()},
			apply: func(ctx context.Context) error {
				if selfFollow {
					return nil
				}
				return p.index.ReplaceOrInsert(ctx, item, item)
			},
		})
	}
	return records, nil
}

type feedEntriesPipeline struct {
	entries FeedEntryStore
	index   AggregateIndex
	clock   clock.Clock
}

func (p *feedEntriesPipeline) page(ctx context.Context, after keysetCursor, limit int) ([]backfillRecord, error) {
	afterEvent, err := parseCursorID(after.Secondary)
	if err != nil {
		return nil, err
	}
	entries, err := p.entries.ListPage(ctx, nil, after.Primary, afterEvent, limit)
	if err != nil {
		return nil, err
	}
	records := make([]backfillRecord, 0, len(entries))
	for _, entry := range entries {
		records = append(records, backfillRecord{
			namespace: aggregate.FeedNamespace(entry.FeedID),
			cursor:    keysetCursor{Primary: entry.FeedID, Secondary: entry.EventID.String()},
			apply: func(ctx context.Context) error {
				return p.refresh(ctx, entry)
			},
		})
	}
	return records, nil
}

// refresh 重算 hasEnded，索引先于行修补。
func (p *feedEntriesPipeline) refresh(ctx context.Context, entry *po.FeedEntry) error {
	refreshed := entry.Refreshed(p.clock.Now())
	old := feedItem(entry.FeedID, entry.EventID, entry.HasEnded)
	item := feedItem(entry.FeedID, entry.EventID, refreshed.HasEnded)
	if err := p.index.ReplaceOrInsert(ctx, old, item); err != nil {
		return err
	}
	if refreshed.HasEnded == entry.HasEnded {
		return nil
	}
	err := p.entries.UpdateSnapshot(ctx, nil, refreshed)
	if errors.Is(err, repositories.ErrFeedEntryNotFound) {
		_, err = p.index.DeleteIfExists(ctx, item)
		return err
	}
	if err == nil {
		metrics.FeedWrites.WithLabelValues("refresh").Inc()
	}
	return err
}

func parseCursorID(raw string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: cursor id: %v", ErrInvalidArgument, err)
	}
	return id, nil
}
