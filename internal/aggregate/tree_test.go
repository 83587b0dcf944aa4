package aggregate

import (
	"fmt"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTreeCountRangeMatchesFullScan(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	var tr tree
	present := map[key]struct{}{}

	scan := func(lower, upper int64) int {
		count := 0
		for k := range present {
			if k.sort >= lower && k.sort <= upper {
				count++
			}
		}
		return count
	}

	for step := 0; step < 5000; step++ {
		k := key{sort: rng.Int64N(50) - 10, id: fmt.Sprintf("item-%d", rng.IntN(40))}
		if rng.IntN(3) == 0 {
			_, had := present[k]
			require.Equal(t, had, tr.remove(k))
			delete(present, k)
		} else {
			_, had := present[k]
			require.Equal(t, !had, tr.insert(k))
			present[k] = struct{}{}
		}
		require.Equal(t, len(present), tr.len())

		lower := rng.Int64N(60) - 15
		upper := lower + rng.Int64N(30) - 5
		require.Equal(t, scan(lower, upper), tr.countRange(lower, upper), "step %d range [%d,%d]", step, lower, upper)
	}
	require.Equal(t, len(present), tr.countRange(math.MinInt64, math.MaxInt64))
}

func TestTreeOrdersTiesByItemID(t *testing.T) {
	var tr tree
	tr.insert(key{sort: 1, id: "b"})
	tr.insert(key{sort: 0, id: "z"})
	tr.insert(key{sort: 1, id: "a"})

	var got []key
	tr.walk(func(k key) { got = append(got, k) })
	require.Equal(t, []key{{0, "z"}, {1, "a"}, {1, "b"}}, got)
	require.Equal(t, 1, tr.rank(key{sort: 1, id: "a"}))
	require.Equal(t, 2, tr.countRange(1, 1))
	require.Equal(t, 0, tr.countRange(2, 1))
}
