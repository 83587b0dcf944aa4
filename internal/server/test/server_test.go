package server_test

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	kgrpc "github.com/go-kratos/kratos/v2/transport/grpc"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	feedindexv1 "github.com/jaronheard/soonlist-turbo-sub000/api/feedindex/v1"
	"github.com/jaronheard/soonlist-turbo-sub000/internal/aggregate"
	"github.com/jaronheard/soonlist-turbo-sub000/internal/conf"
	"github.com/jaronheard/soonlist-turbo-sub000/internal/metrics"
	"github.com/jaronheard/soonlist-turbo-sub000/internal/server"
)

var stdLogger = log.NewStdLogger(io.Discard)

// statsOnlyServer 只实现 GetUserStats，其余方法返回 Unimplemented。
type statsOnlyServer struct {
	feedindexv1.UnimplementedFeedIndexServiceServer
}

func (statsOnlyServer) GetUserStats(_ context.Context, req *feedindexv1.GetUserStatsRequest) (*feedindexv1.GetUserStatsResponse, error) {
	if req.GetUsername() == "" {
		return nil, status.Error(codes.InvalidArgument, "username: is required")
	}
	return &feedindexv1.GetUserStatsResponse{
		Stats: &feedindexv1.UserStats{Username: req.GetUsername(), AllTimeEvents: 2},
	}, nil
}

func TestGRPCServer_ServesFeedIndex(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := server.NewGRPCServer(&conf.Bootstrap{}, statsOnlyServer{}, stdLogger)
	kgrpc.Listener(lis)(srv)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = srv.Start(ctx) }()
	defer func() { _ = srv.Stop(context.Background()) }()

	conn, err := grpc.NewClient(lis.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	callCtx, callCancel := context.WithTimeout(ctx, 5*time.Second)
	defer callCancel()

	client := feedindexv1.NewFeedIndexServiceClient(conn)
	resp, err := client.GetUserStats(callCtx, &feedindexv1.GetUserStatsRequest{Username: "alice"}, grpc.WaitForReady(true))
	require.NoError(t, err)
	require.Equal(t, "alice", resp.GetStats().GetUsername())
	require.EqualValues(t, 2, resp.GetStats().GetAllTimeEvents())

	_, err = client.GetUserStats(callCtx, &feedindexv1.GetUserStatsRequest{})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = client.ListBackfillRuns(callCtx, &feedindexv1.ListBackfillRunsRequest{})
	require.Equal(t, codes.Unimplemented, status.Code(err))

	health, err := healthpb.NewHealthClient(conn).Check(callCtx, &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	require.Equal(t, healthpb.HealthCheckResponse_SERVING, health.GetStatus())
}

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

func TestHealthHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	server.HealthHandler(fakePinger{}, stdLogger)(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", rec.Body.String())

	rec = httptest.NewRecorder()
	server.HealthHandler(fakePinger{err: errors.New("connection refused")}, stdLogger)(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHTTPServer_ExposesMetrics(t *testing.T) {
	registry, err := server.NewMetricsRegistry()
	require.NoError(t, err)
	metrics.TaskResults.WithLabelValues("feed.event_upserted", "ok").Inc()

	srv := server.NewHTTPServer(&conf.Bootstrap{}, registry, fakePinger{}, stdLogger)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, strings.Contains(rec.Body.String(), "feedindex_tasks_results_total"))
	require.True(t, strings.Contains(rec.Body.String(), "go_goroutines"))
}

func TestNewAggregateIndex_PersistsAcrossRestarts(t *testing.T) {
	ctx := context.Background()
	cfg := &conf.Bootstrap{Data: conf.Data{AggregateDir: t.TempDir()}}
	item := aggregate.Item{Namespace: "feed:discover", SortKey: 1, ItemID: "event-1"}

	index, cleanup, err := server.NewAggregateIndex(cfg, stdLogger)
	require.NoError(t, err)
	require.True(t, index.Durable())
	inserted, err := index.Insert(ctx, item)
	require.NoError(t, err)
	require.True(t, inserted)
	cleanup()

	reopened, cleanup, err := server.NewAggregateIndex(cfg, stdLogger)
	require.NoError(t, err)
	defer cleanup()
	require.Equal(t, 1, reopened.Count(item.Namespace))
	require.Equal(t, []aggregate.Item{item}, reopened.Items(item.Namespace))

	memory, memCleanup, err := server.NewAggregateIndex(&conf.Bootstrap{}, stdLogger)
	require.NoError(t, err)
	defer memCleanup()
	require.False(t, memory.Durable())
	require.Zero(t, memory.Count(item.Namespace))
}
