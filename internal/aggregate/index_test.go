package aggregate_test

import (
	"context"
	"io"
	"sync"
	"testing"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/require"

	"github.com/jaronheard/soonlist-turbo-sub000/internal/aggregate"
)

func newMemoryIndex() *aggregate.Index {
	return aggregate.NewIndex(nil, log.NewStdLogger(io.Discard))
}

func TestIndexInsertIsIdempotent(t *testing.T) {
	ctx := context.Background()
	ix := newMemoryIndex()
	item := aggregate.Item{Namespace: "feed:discover", SortKey: 0, ItemID: "e1"}

	inserted, err := ix.Insert(ctx, item)
	require.NoError(t, err)
	require.True(t, inserted)

	inserted, err = ix.Insert(ctx, item)
	require.NoError(t, err)
	require.False(t, inserted)
	require.Equal(t, 1, ix.Count("feed:discover"))

	_, err = ix.Insert(ctx, aggregate.Item{ItemID: "e2"})
	require.ErrorIs(t, err, aggregate.ErrEmptyNamespace)
}

func TestIndexReplaceOrInsert(t *testing.T) {
	ctx := context.Background()
	ix := newMemoryIndex()
	ns := "feed:user_1"
	upcoming := aggregate.Item{Namespace: ns, SortKey: aggregate.SortKeyUpcoming, ItemID: "e1"}
	ended := aggregate.Item{Namespace: ns, SortKey: aggregate.SortKeyEnded, ItemID: "e1"}

	// old 不存在时等价于插入
	require.NoError(t, ix.ReplaceOrInsert(ctx, upcoming, upcoming))
	require.Equal(t, 1, ix.CountRange(ns, 0, 0))

	require.NoError(t, ix.ReplaceOrInsert(ctx, upcoming, ended))
	require.Equal(t, 0, ix.CountRange(ns, 0, 0))
	require.Equal(t, 1, ix.CountRange(ns, 1, 1))
	require.Equal(t, 1, ix.Count(ns))

	// 重放不会产生重复
	require.NoError(t, ix.ReplaceOrInsert(ctx, upcoming, ended))
	require.Equal(t, 1, ix.Count(ns))

	err := ix.ReplaceOrInsert(ctx, aggregate.Item{Namespace: "other", ItemID: "e1"}, ended)
	require.ErrorIs(t, err, aggregate.ErrNamespaceMismatch)
}

func TestIndexDeleteAndClear(t *testing.T) {
	ctx := context.Background()
	ix := newMemoryIndex()
	ns := "events_by_creator:u1"
	for i, id := range []string{"a", "b", "c"} {
		_, err := ix.Insert(ctx, aggregate.Item{Namespace: ns, SortKey: int64(i * 1000), ItemID: id})
		require.NoError(t, err)
	}
	_, err := ix.Insert(ctx, aggregate.Item{Namespace: "events_by_creator:u2", SortKey: 5, ItemID: "x"})
	require.NoError(t, err)

	require.Equal(t, 2, ix.CountRange(ns, 0, 1000))

	deleted, err := ix.DeleteIfExists(ctx, aggregate.Item{Namespace: ns, SortKey: 1000, ItemID: "b"})
	require.NoError(t, err)
	require.True(t, deleted)
	deleted, err = ix.DeleteIfExists(ctx, aggregate.Item{Namespace: ns, SortKey: 1000, ItemID: "b"})
	require.NoError(t, err)
	require.False(t, deleted)
	require.NoError(t, ix.Delete(ctx, aggregate.Item{Namespace: "missing", ItemID: "b"}))

	require.NoError(t, ix.Clear(ctx, ns))
	require.Equal(t, 0, ix.Count(ns))
	require.Equal(t, 1, ix.Count("events_by_creator:u2"))
	require.Nil(t, ix.Items("never-seen"))
}

func TestIndexConcurrentWritersAndReaders(t *testing.T) {
	ctx := context.Background()
	ix := newMemoryIndex()
	ns := "feed:discover"

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				id := string(rune('a'+w)) + string(rune('a'+i%26)) + string(rune('a'+i/26))
				old := aggregate.Item{Namespace: ns, SortKey: 0, ItemID: id}
				_, err := ix.Insert(ctx, old)
				require.NoError(t, err)
				require.NoError(t, ix.ReplaceOrInsert(ctx, old, aggregate.Item{Namespace: ns, SortKey: 1, ItemID: id}))
				// 读者永远看不到同一条目同时处于两个分区
				require.LessOrEqual(t, ix.Count(ns), 8*200)
			}
		}(w)
	}
	wg.Wait()
	require.Equal(t, 8*200, ix.Count(ns))
	require.Equal(t, 8*200, ix.CountRange(ns, 1, 1))
}
