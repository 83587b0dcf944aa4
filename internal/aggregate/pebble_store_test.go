package aggregate

import (
	"context"
	"io"
	"math"
	"testing"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/require"
)

func TestItemKeyRoundTripAndOrdering(t *testing.T) {
	items := []Item{
		{Namespace: "feed:user_1", SortKey: math.MinInt64, ItemID: "a"},
		{Namespace: "feed:user_1", SortKey: -1, ItemID: "a"},
		{Namespace: "feed:user_1", SortKey: 0, ItemID: "a"},
		{Namespace: "feed:user_1", SortKey: 0, ItemID: "b"},
		{Namespace: "feed:user_1", SortKey: math.MaxInt64, ItemID: ""},
	}
	var prev []byte
	for _, item := range items {
		raw := itemKey(item)
		parsed, err := parseItemKey(raw)
		require.NoError(t, err)
		require.Equal(t, item, parsed)
		if prev != nil {
			require.Negative(t, pebble.DefaultComparer.Compare(prev, raw))
		}
		prev = raw
	}

	_, err := parseItemKey([]byte("B"))
	require.ErrorIs(t, err, errMalformedKey)
}

func TestNamespacePrefixDoesNotOverlap(t *testing.T) {
	short := namespacePrefix("feed:user_1")
	long := itemKey(Item{Namespace: "feed:user_12", SortKey: 0, ItemID: "x"})
	end := prefixEnd(short)
	inRange := pebble.DefaultComparer.Compare(long, short) >= 0 && pebble.DefaultComparer.Compare(long, end) < 0
	require.False(t, inRange)
}

func TestPebbleStoreReloadsIndex(t *testing.T) {
	ctx := context.Background()
	fs := vfs.NewMem()
	logger := log.NewStdLogger(io.Discard)

	store, err := OpenPebbleStore("agg", &pebble.Options{FS: fs})
	require.NoError(t, err)
	ix := NewIndex(store, logger)
	require.NoError(t, ix.Open(ctx))

	_, err = ix.Insert(ctx, Item{Namespace: "events_by_creator:u1", SortKey: 10, ItemID: "e1"})
	require.NoError(t, err)
	_, err = ix.Insert(ctx, Item{Namespace: "events_by_creator:u1", SortKey: 20, ItemID: "e2"})
	require.NoError(t, err)
	require.NoError(t, ix.ReplaceOrInsert(ctx,
		Item{Namespace: "feed:discover", SortKey: 0, ItemID: "e1"},
		Item{Namespace: "feed:discover", SortKey: 1, ItemID: "e1"}))
	_, err = ix.Insert(ctx, Item{Namespace: "feed:user_u1", SortKey: 0, ItemID: "e1"})
	require.NoError(t, err)
	require.NoError(t, ix.Clear(ctx, "feed:user_u1"))
	require.NoError(t, ix.Close())

	store, err = OpenPebbleStore("agg", &pebble.Options{FS: fs})
	require.NoError(t, err)
	reopened := NewIndex(store, logger)
	require.NoError(t, reopened.Open(ctx))
	defer reopened.Close()

	require.Equal(t, 2, reopened.Count("events_by_creator:u1"))
	require.Equal(t, 1, reopened.CountRange("events_by_creator:u1", 15, 25))
	require.Equal(t, 1, reopened.CountRange("feed:discover", 1, 1))
	require.Equal(t, 0, reopened.Count("feed:user_u1"))
}
