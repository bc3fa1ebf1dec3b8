package subset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/valvenet/activation"
	"github.com/katalvlaran/valvenet/distance"
	"github.com/katalvlaran/valvenet/explore"
	"github.com/katalvlaran/valvenet/subset"
	"github.com/katalvlaran/valvenet/valve/valvetest"
)

func TestReduce_KeepsMaximum(t *testing.T) {
	ab := activation.Set(0).With(0).With(1)
	c := activation.Set(0).With(2)

	tbl := subset.Reduce([]explore.Record{
		{Set: 0, Yield: 0},
		{Set: ab, Yield: 40},
		{Set: ab, Yield: 55}, // same set, other order
		{Set: c, Yield: 12},
		{Set: ab, Yield: 31},
	})

	assert.Equal(t, subset.Table{0: 0, ab: 55, c: 12}, tbl)
	assert.Equal(t, 55, tbl.Max())
}

func TestTable_Empty(t *testing.T) {
	tbl := subset.Reduce(nil)
	assert.Empty(t, tbl)
	assert.Equal(t, 0, tbl.Max())
	assert.Empty(t, tbl.Entries())
}

func TestTable_EntriesOrder(t *testing.T) {
	tbl := subset.Table{1: 10, 2: 30, 4: 10, 8: 0}
	assert.Equal(t, []subset.Entry{
		{Set: 2, Yield: 30},
		{Set: 1, Yield: 10},
		{Set: 4, Yield: 10},
		{Set: 8, Yield: 0},
	}, tbl.Entries())
}

// TestReduce_SampleProperties checks that every sequence yield is bounded by
// its set's value, that the value is attained, and that reduction is
// idempotent.
func TestReduce_SampleProperties(t *testing.T) {
	g := valvetest.SampleGraph(t)
	dm, err := distance.Compute(g, append(g.Valuable(), "AA"))
	require.NoError(t, err)
	res, err := explore.Explore(g, dm, "AA", 26, explore.WithMemo(false))
	require.NoError(t, err)

	tbl := subset.FromResult(res)
	require.Less(t, len(tbl), len(res.Records))
	require.Contains(t, tbl, activation.Set(0))

	attained := make(map[activation.Set]bool)
	for _, r := range res.Records {
		require.GreaterOrEqual(t, tbl[r.Set], r.Yield)
		if tbl[r.Set] == r.Yield {
			attained[r.Set] = true
		}
	}
	assert.Len(t, attained, len(tbl))
	assert.Equal(t, res.Max(), tbl.Max())

	again := make([]explore.Record, 0, len(tbl))
	for _, e := range tbl.Entries() {
		again = append(again, explore.Record{Set: e.Set, Yield: e.Yield})
	}
	assert.Equal(t, tbl, subset.Reduce(again))
}
