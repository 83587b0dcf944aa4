package repositories_test

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jaronheard/soonlist-turbo-sub000/internal/models/po"
	"github.com/jaronheard/soonlist-turbo-sub000/internal/repositories"
)

var (
	testPool      *pgxpool.Pool
	testContainer testcontainers.Container
	stdLogger     = log.NewStdLogger(io.Discard)
)

func TestMain(m *testing.M) {
	ctx := context.Background()
	if err := startPostgres(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "failed to start postgres container: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()

	if testPool != nil {
		testPool.Close()
	}
	if testContainer != nil {
		termCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = testContainer.Terminate(termCtx)
	}
	os.Exit(code)
}

func startPostgres(ctx context.Context) error {
	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_PASSWORD": "postgres",
			"POSTGRES_USER":     "postgres",
			"POSTGRES_DB":       "feed",
		},
		WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
			return fmt.Sprintf("postgres://postgres:postgres@%s:%s/feed?sslmode=disable&search_path=feed", host, port.Port())
		}).WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return err
	}
	testContainer = container

	host, err := container.Host(ctx)
	if err != nil {
		return err
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return err
	}

	dsn := fmt.Sprintf("postgres://postgres:postgres@%s:%s/feed?sslmode=disable&search_path=feed", host, port.Port())

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return err
	}
	testPool = pool

	return applyMigrations(ctx, pool)
}

func applyMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	migrationsDir := filepath.Join("..", "..", "..", "migrations")
	entries, err := filepath.Glob(filepath.Join(migrationsDir, "*.sql"))
	if err != nil {
		return err
	}
	sort.Strings(entries)

	for _, path := range entries {
		content, readErr := os.ReadFile(path)
		if readErr != nil {
			return readErr
		}
		if _, execErr := pool.Exec(ctx, string(content)); execErr != nil {
			return fmt.Errorf("apply migration %s: %w", filepath.Base(path), execErr)
		}
	}
	return nil
}

func resetDatabase(t *testing.T) {
	t.Helper()
	_, err := testPool.Exec(context.Background(), `
		TRUNCATE TABLE
			feed.tasks,
			feed.sync_state,
			feed.feed_entries,
			feed.list_memberships,
			feed.user_follows,
			feed.list_follows,
			feed.event_follows,
			feed.comments,
			feed.lists,
			feed.events,
			feed.users
	`)
	require.NoError(t, err)
}

func seedUser(t *testing.T, username string) *po.User {
	t.Helper()
	user, err := repositories.NewUserRepository(testPool, stdLogger).Create(context.Background(), nil, repositories.CreateUserInput{
		ID:        uuid.New(),
		Username:  username,
		CreatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)
	return user
}

func seedEvent(t *testing.T, ownerID uuid.UUID, visibility po.Visibility) *po.Event {
	t.Helper()
	now := time.Now().UTC().Truncate(time.Microsecond)
	event, err := repositories.NewEventRepository(testPool, stdLogger).Create(context.Background(), nil, repositories.CreateEventInput{
		ID:         uuid.New(),
		OwnerID:    ownerID,
		Visibility: visibility,
		StartTime:  now.Add(24 * time.Hour),
		EndTime:    now.Add(26 * time.Hour),
		CreatedAt:  now,
	})
	require.NoError(t, err)
	return event
}

func int32Ptr(value int32) *int32 {
	return &value
}
