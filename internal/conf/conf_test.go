package conf_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jaronheard/soonlist-turbo-sub000/internal/conf"
)

func TestLoadFromDefaults(t *testing.T) {
	cfg, err := conf.LoadFrom(map[string]string{
		"FEED_DATABASE_URL": "postgres://localhost/feed",
	})
	require.NoError(t, err)
	require.Equal(t, "0.0.0.0:9000", cfg.Server.GRPCAddr)
	require.Equal(t, "0.0.0.0:8000", cfg.Server.HTTPAddr)
	require.Equal(t, 100, cfg.Backfill.BatchSize)
	require.Equal(t, time.Duration(0), cfg.Backfill.BatchDelay)
	require.Equal(t, int32(5), cfg.Stats.DefaultWeeklyGoal)
	require.Equal(t, int32(8), cfg.Tasks.MaxAttempts)
	require.Equal(t, "@every 1h", cfg.Refresh.Cron)
	require.Empty(t, cfg.Data.AggregateDir)
}

func TestLoadFromOverrides(t *testing.T) {
	cfg, err := conf.LoadFrom(map[string]string{
		"FEED_DATABASE_URL":         "postgres://localhost/feed",
		"FEED_AGGREGATE_DIR":        "/var/lib/feed/aggregate",
		"FEED_BACKFILL_BATCH_SIZE":  "250",
		"FEED_BACKFILL_BATCH_DELAY": "150ms",
		"FEED_TASK_POLL_INTERVAL":   "5s",
		"FEED_TASK_RETRY_BACKOFF":   "1m",
		"FEED_REFRESH_CRON":         "*/15 * * * *",
		"FEED_DEFAULT_WEEKLY_GOAL":  "3",
		"FEED_STATS_CACHE_SIZE":     "10",
	})
	require.NoError(t, err)
	require.Equal(t, "/var/lib/feed/aggregate", cfg.Data.AggregateDir)
	require.Equal(t, 250, cfg.Backfill.BatchSize)
	require.Equal(t, 150*time.Millisecond, cfg.Backfill.BatchDelay)
	require.Equal(t, 5*time.Second, cfg.Tasks.PollInterval)
	require.Equal(t, time.Minute, cfg.Tasks.RetryBackoff)
	require.Equal(t, int32(3), cfg.Stats.DefaultWeeklyGoal)
	require.Equal(t, 10, cfg.Stats.CacheSize)
}

func TestLoadFromRejectsInvalid(t *testing.T) {
	_, err := conf.LoadFrom(map[string]string{})
	require.ErrorContains(t, err, "FEED_DATABASE_URL is required")

	_, err = conf.LoadFrom(map[string]string{
		"FEED_DATABASE_URL":        "postgres://localhost/feed",
		"FEED_BACKFILL_BATCH_SIZE": "0",
		"FEED_REFRESH_CRON":        "not a cron",
	})
	require.ErrorContains(t, err, "FEED_BACKFILL_BATCH_SIZE")
	require.ErrorContains(t, err, "FEED_REFRESH_CRON")
}
