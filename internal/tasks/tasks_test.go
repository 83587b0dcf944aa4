package tasks_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/juju/clock"
	"github.com/juju/clock/testclock"
	jujuerrors "github.com/juju/errors"
	"github.com/stretchr/testify/require"

	"github.com/jaronheard/soonlist-turbo-sub000/internal/conf"
	"github.com/jaronheard/soonlist-turbo-sub000/internal/models/po"
	"github.com/jaronheard/soonlist-turbo-sub000/internal/services"
	"github.com/jaronheard/soonlist-turbo-sub000/internal/tasks"
	"github.com/jaronheard/soonlist-turbo-sub000/internal/txmanager"
)

var stdLogger = log.NewStdLogger(io.Discard)

// memTaskStore 是 feed.tasks 的内存替身，领取语义与 SQL 一致。
type memTaskStore struct {
	mu    sync.Mutex
	tasks map[uuid.UUID]*po.Task
}

func newMemTaskStore() *memTaskStore {
	return &memTaskStore{tasks: map[uuid.UUID]*po.Task{}}
}

func (s *memTaskStore) Insert(_ context.Context, _ txmanager.Session, task po.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	task.Status = po.TaskStatusPending
	s.tasks[task.ID] = &task
	return nil
}

func (s *memTaskStore) ClaimDue(_ context.Context, now time.Time, lease time.Duration, limit int) ([]*po.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var due []*po.Task
	for _, task := range s.tasks {
		if task.Status != po.TaskStatusPending || task.RunAfter.After(now) {
			continue
		}
		if task.LockedUntil != nil && task.LockedUntil.After(now) {
			continue
		}
		due = append(due, task)
	}
	sort.Slice(due, func(i, j int) bool {
		if !due[i].RunAfter.Equal(due[j].RunAfter) {
			return due[i].RunAfter.Before(due[j].RunAfter)
		}
		return due[i].CreatedAt.Before(due[j].CreatedAt)
	})
	if len(due) > limit {
		due = due[:limit]
	}
	out := make([]*po.Task, 0, len(due))
	for _, task := range due {
		until := now.Add(lease)
		task.LockedUntil = &until
		task.Attempts++
		claimed := *task
		out = append(out, &claimed)
	}
	return out, nil
}

func (s *memTaskStore) Complete(_ context.Context, id uuid.UUID, processedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	task := s.tasks[id]
	task.Status = po.TaskStatusDone
	task.ProcessedAt = &processedAt
	task.LockedUntil = nil
	return nil
}

func (s *memTaskStore) Retry(_ context.Context, id uuid.UUID, runAfter time.Time, lastError string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	task := s.tasks[id]
	task.RunAfter = runAfter
	task.LastError = &lastError
	task.LockedUntil = nil
	return nil
}

func (s *memTaskStore) Kill(_ context.Context, id uuid.UUID, lastError string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	task := s.tasks[id]
	task.Status = po.TaskStatusDead
	task.LastError = &lastError
	task.ProcessedAt = &at
	task.LockedUntil = nil
	return nil
}

func (s *memTaskStore) only(t *testing.T) po.Task {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	require.Len(t, s.tasks, 1)
	for _, task := range s.tasks {
		return *task
	}
	return po.Task{}
}

// recordingHandlers 记录收到的任务，err 非 nil 时每次都返回它。
type recordingHandlers struct {
	mu          sync.Mutex
	upserted    []services.EventUpsertedArgs
	batches     []services.BackfillBatchArgs
	refreshed   []string
	initialized int
	err         error
}

func (r *recordingHandlers) HandleEventUpserted(_ context.Context, args services.EventUpsertedArgs) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.upserted = append(r.upserted, args)
	return r.err
}

func (r *recordingHandlers) HandleEventDeleted(context.Context, services.EventDeletedArgs) error {
	return r.err
}

func (r *recordingHandlers) HandleEventFollowed(context.Context, services.EventFollowedArgs) error {
	return r.err
}

func (r *recordingHandlers) HandleEventUnfollowed(context.Context, services.EventUnfollowedArgs) error {
	return r.err
}

func (r *recordingHandlers) HandleListFollowChanged(context.Context, services.ListFollowChangedArgs) error {
	return r.err
}

func (r *recordingHandlers) HandleListMembershipChanged(context.Context, services.ListMembershipChangedArgs) error {
	return r.err
}

func (r *recordingHandlers) HandleUserFollowChanged(context.Context, services.UserFollowChangedArgs) error {
	return r.err
}

func (r *recordingHandlers) RunBatch(_ context.Context, args services.BackfillBatchArgs) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.batches = append(r.batches, args)
	return r.err
}

func (r *recordingHandlers) InitializeAllAggregates(context.Context) ([]*po.SyncState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.initialized++
	return nil, r.err
}

func (r *recordingHandlers) RefreshRun(_ context.Context, pipeline string) (*po.SyncState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.refreshed = append(r.refreshed, pipeline)
	return &po.SyncState{PipelineKey: pipeline, RunID: uuid.New(), Status: po.SyncStatusRunning, Mode: po.SyncModeRefresh}, r.err
}

func (r *recordingHandlers) snapshot() (initialized int, refreshed []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.initialized, append([]string(nil), r.refreshed...)
}

type indexState bool

func (s indexState) Durable() bool { return bool(s) }

func (r *recordingHandlers) upsertedCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.upserted)
}

var baseTime = time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

func consumerConfig(store *memTaskStore, handlers *recordingHandlers, clk clock.Clock) tasks.ConsumerConfig {
	return tasks.ConsumerConfig{
		Store:        store,
		Dispatcher:   tasks.NewDispatcher(handlers, handlers),
		Clock:        clk,
		Logger:       stdLogger,
		PollInterval: 10 * time.Millisecond,
		LeaseTTL:     30 * time.Second,
		MaxAttempts:  3,
		RetryBackoff: 2 * time.Second,
		ClaimLimit:   8,
	}
}

func TestQueue_ScheduleAfterPersistsPayload(t *testing.T) {
	store := newMemTaskStore()
	clk := testclock.NewClock(baseTime)
	queue := tasks.NewQueue(store, clk, stdLogger)
	eventID := uuid.New()

	require.NoError(t, queue.ScheduleAfter(context.Background(), time.Minute, services.TaskEventUpserted, services.EventUpsertedArgs{EventID: eventID}))

	task := store.only(t)
	require.Equal(t, services.TaskEventUpserted, task.Name)
	require.Equal(t, baseTime.Add(time.Minute), task.RunAfter)
	var args services.EventUpsertedArgs
	require.NoError(t, json.Unmarshal(task.Payload, &args))
	require.Equal(t, eventID, args.EventID)

	require.Error(t, queue.ScheduleAfter(context.Background(), 0, " ", nil))
}

func TestDispatcher_RoutesAndRejects(t *testing.T) {
	handlers := &recordingHandlers{}
	dispatcher := tasks.NewDispatcher(handlers, handlers)
	ctx := context.Background()

	runID := uuid.New()
	payload, err := json.Marshal(services.BackfillBatchArgs{Pipeline: services.PipelineEventFollows, RunID: runID, Cursor: "abc"})
	require.NoError(t, err)
	require.NoError(t, dispatcher.Dispatch(ctx, &po.Task{Name: services.TaskBackfillBatch, Payload: payload}))
	require.Equal(t, []services.BackfillBatchArgs{{Pipeline: services.PipelineEventFollows, RunID: runID, Cursor: "abc"}}, handlers.batches)

	err = dispatcher.Dispatch(ctx, &po.Task{Name: "feed.venue_renamed", Payload: []byte(`{}`)})
	require.ErrorIs(t, err, tasks.ErrUnknownTask)
	require.True(t, tasks.IsPermanent(err))

	err = dispatcher.Dispatch(ctx, &po.Task{Name: services.TaskEventUpserted, Payload: []byte(`not json`)})
	require.True(t, tasks.IsPermanent(err))
	require.Zero(t, handlers.upsertedCount())

	handlers.err = errors.New("boom")
	err = dispatcher.Dispatch(ctx, &po.Task{Name: services.TaskEventUpserted, Payload: []byte(`{"event_id":"` + uuid.NewString() + `"}`)})
	require.EqualError(t, err, "boom")
	require.False(t, tasks.IsPermanent(err))
}

func TestProcessDue_CompletesTask(t *testing.T) {
	store := newMemTaskStore()
	handlers := &recordingHandlers{}
	clk := testclock.NewClock(baseTime)
	queue := tasks.NewQueue(store, clk, stdLogger)
	require.NoError(t, queue.ScheduleAfter(context.Background(), 0, services.TaskEventUpserted, services.EventUpsertedArgs{EventID: uuid.New()}))

	claimed, err := tasks.ProcessDue(context.Background(), consumerConfig(store, handlers, clk))
	require.NoError(t, err)
	require.Equal(t, 1, claimed)
	require.Equal(t, 1, handlers.upsertedCount())

	task := store.only(t)
	require.Equal(t, po.TaskStatusDone, task.Status)
	require.EqualValues(t, 1, task.Attempts)
}

func TestProcessDue_DelayedTaskWaits(t *testing.T) {
	store := newMemTaskStore()
	handlers := &recordingHandlers{}
	clk := testclock.NewClock(baseTime)
	queue := tasks.NewQueue(store, clk, stdLogger)
	require.NoError(t, queue.ScheduleAfter(context.Background(), time.Minute, services.TaskEventUpserted, services.EventUpsertedArgs{EventID: uuid.New()}))
	cfg := consumerConfig(store, handlers, clk)

	claimed, err := tasks.ProcessDue(context.Background(), cfg)
	require.NoError(t, err)
	require.Zero(t, claimed)

	clk.Advance(time.Minute)
	claimed, err = tasks.ProcessDue(context.Background(), cfg)
	require.NoError(t, err)
	require.Equal(t, 1, claimed)
}

func TestProcessDue_RetriesWithBackoffThenDies(t *testing.T) {
	store := newMemTaskStore()
	handlers := &recordingHandlers{err: errors.New("primary store unavailable")}
	clk := testclock.NewClock(baseTime)
	queue := tasks.NewQueue(store, clk, stdLogger)
	require.NoError(t, queue.ScheduleAfter(context.Background(), 0, services.TaskEventUpserted, services.EventUpsertedArgs{EventID: uuid.New()}))
	cfg := consumerConfig(store, handlers, clk)
	ctx := context.Background()

	_, err := tasks.ProcessDue(ctx, cfg)
	require.NoError(t, err)
	task := store.only(t)
	require.Equal(t, po.TaskStatusPending, task.Status)
	require.Equal(t, baseTime.Add(2*time.Second), task.RunAfter)
	require.Equal(t, "primary store unavailable", *task.LastError)

	clk.Advance(2 * time.Second)
	_, err = tasks.ProcessDue(ctx, cfg)
	require.NoError(t, err)
	task = store.only(t)
	require.Equal(t, clk.Now().Add(4*time.Second), task.RunAfter)

	clk.Advance(4 * time.Second)
	_, err = tasks.ProcessDue(ctx, cfg)
	require.NoError(t, err)
	task = store.only(t)
	require.Equal(t, po.TaskStatusDead, task.Status)
	require.EqualValues(t, 3, task.Attempts)
	require.Equal(t, 3, handlers.upsertedCount())
}

func TestProcessDue_PermanentErrorDiesImmediately(t *testing.T) {
	store := newMemTaskStore()
	handlers := &recordingHandlers{err: tasks.Permanent(errors.New("bad input"))}
	clk := testclock.NewClock(baseTime)
	require.NoError(t, store.Insert(context.Background(), nil, po.Task{
		ID:        uuid.New(),
		Name:      services.TaskBackfillBatch,
		Payload:   []byte(`{"pipeline":"feed_entries"}`),
		RunAfter:  baseTime,
		CreatedAt: baseTime,
	}))

	_, err := tasks.ProcessDue(context.Background(), consumerConfig(store, handlers, clk))
	require.NoError(t, err)
	task := store.only(t)
	require.Equal(t, po.TaskStatusDead, task.Status)
	require.EqualValues(t, 1, task.Attempts)
}

func TestRetryDelay(t *testing.T) {
	base := 2 * time.Second
	require.Equal(t, 2*time.Second, tasks.RetryDelay(base, 0))
	require.Equal(t, 2*time.Second, tasks.RetryDelay(base, 1))
	require.Equal(t, 4*time.Second, tasks.RetryDelay(base, 2))
	require.Equal(t, 16*time.Second, tasks.RetryDelay(base, 4))
	require.Equal(t, 10*time.Minute, tasks.RetryDelay(base, 30))
}

func TestConsumerConfig_Validate(t *testing.T) {
	cfg := consumerConfig(newMemTaskStore(), &recordingHandlers{}, clock.WallClock)
	require.NoError(t, cfg.Validate())

	broken := cfg
	broken.Store = nil
	require.ErrorIs(t, broken.Validate(), jujuerrors.NotValid)

	broken = cfg
	broken.MaxAttempts = 0
	require.ErrorIs(t, broken.Validate(), jujuerrors.NotValid)

	_, err := tasks.NewConsumer(broken)
	require.ErrorIs(t, err, jujuerrors.NotValid)
}

func TestConsumer_DrainsQueue(t *testing.T) {
	store := newMemTaskStore()
	handlers := &recordingHandlers{}
	queue := tasks.NewQueue(store, clock.WallClock, stdLogger)
	for i := 0; i < 20; i++ {
		require.NoError(t, queue.ScheduleAfter(context.Background(), 0, services.TaskEventUpserted, services.EventUpsertedArgs{EventID: uuid.New()}))
	}

	consumer, err := tasks.NewConsumer(consumerConfig(store, handlers, clock.WallClock))
	require.NoError(t, err)
	require.Eventually(t, func() bool { return handlers.upsertedCount() == 20 }, 5*time.Second, 10*time.Millisecond)

	consumer.Kill()
	require.NoError(t, consumer.Wait())
}

func TestRunner_StartStop(t *testing.T) {
	handlers := &recordingHandlers{}
	store := newMemTaskStore()
	cfg := &conf.Bootstrap{
		Tasks: conf.Tasks{
			PollInterval: 10 * time.Millisecond,
			LeaseTTL:     time.Second,
			MaxAttempts:  3,
			RetryBackoff: time.Second,
			ClaimLimit:   4,
		},
		Refresh: conf.Refresh{Cron: "@every 1h"},
	}
	runner := tasks.NewRunner(store, tasks.NewDispatcher(handlers, handlers), handlers, indexState(true), clock.WallClock, cfg, stdLogger)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- runner.Start(ctx) }()

	queue := tasks.NewQueue(store, clock.WallClock, stdLogger)
	require.NoError(t, queue.ScheduleAfter(ctx, 0, services.TaskEventUpserted, services.EventUpsertedArgs{EventID: uuid.New()}))
	require.Eventually(t, func() bool { return handlers.upsertedCount() == 1 }, 5*time.Second, 10*time.Millisecond)

	require.NoError(t, runner.Stop(context.Background()))
	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("runner did not stop")
	}
}

func TestRunner_InvalidSchedule(t *testing.T) {
	handlers := &recordingHandlers{}
	cfg := &conf.Bootstrap{
		Tasks:   conf.Tasks{PollInterval: time.Second, LeaseTTL: time.Second, MaxAttempts: 1, RetryBackoff: time.Second, ClaimLimit: 1},
		Refresh: conf.Refresh{Cron: "every now and then"},
	}
	runner := tasks.NewRunner(newMemTaskStore(), tasks.NewDispatcher(handlers, handlers), handlers, indexState(true), clock.WallClock, cfg, stdLogger)
	require.Error(t, runner.Start(context.Background()))
}

// startRunner 启动 runner 并返回停止函数。
func startRunner(t *testing.T, runner *tasks.Runner) func() {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- runner.Start(ctx) }()
	return func() {
		require.NoError(t, runner.Stop(context.Background()))
		cancel()
		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("runner did not stop")
		}
	}
}

func runnerConfig(cron string) *conf.Bootstrap {
	return &conf.Bootstrap{
		Tasks:   conf.Tasks{PollInterval: 10 * time.Millisecond, LeaseTTL: time.Second, MaxAttempts: 3, RetryBackoff: time.Second, ClaimLimit: 4},
		Refresh: conf.Refresh{Cron: cron},
	}
}

func TestRunner_RebuildsMemoryOnlyIndexOnStart(t *testing.T) {
	handlers := &recordingHandlers{}
	runner := tasks.NewRunner(newMemTaskStore(), tasks.NewDispatcher(handlers, handlers), handlers, indexState(false), clock.WallClock, runnerConfig(""), stdLogger)
	stop := startRunner(t, runner)
	require.Eventually(t, func() bool {
		initialized, _ := handlers.snapshot()
		return initialized == 1
	}, 5*time.Second, 10*time.Millisecond)
	stop()

	durable := &recordingHandlers{}
	runner = tasks.NewRunner(newMemTaskStore(), tasks.NewDispatcher(durable, durable), durable, indexState(true), clock.WallClock, runnerConfig(""), stdLogger)
	stop = startRunner(t, runner)
	stop()
	initialized, _ := durable.snapshot()
	require.Zero(t, initialized)
}

func TestRunner_ScheduledRefreshUsesRefreshMode(t *testing.T) {
	handlers := &recordingHandlers{}
	runner := tasks.NewRunner(newMemTaskStore(), tasks.NewDispatcher(handlers, handlers), handlers, indexState(true), clock.WallClock, runnerConfig("@every 1s"), stdLogger)
	stop := startRunner(t, runner)
	require.Eventually(t, func() bool {
		_, refreshed := handlers.snapshot()
		return len(refreshed) > 0
	}, 5*time.Second, 50*time.Millisecond)
	stop()

	initialized, refreshed := handlers.snapshot()
	require.Zero(t, initialized)
	for _, pipeline := range refreshed {
		require.Equal(t, services.PipelineFeedEntries, pipeline)
	}
}
