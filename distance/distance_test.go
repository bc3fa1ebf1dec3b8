package distance_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/valvenet/distance"
	"github.com/katalvlaran/valvenet/valve"
	"github.com/katalvlaran/valvenet/valve/valvetest"
)

func sampleTargets(g *valve.Graph) []string {
	return append(g.Valuable(), "AA")
}

func TestCompute_Errors(t *testing.T) {
	_, err := distance.Compute(nil, []string{"AA"})
	assert.ErrorIs(t, err, distance.ErrNilGraph)

	g := valvetest.SampleGraph(t)
	_, err = distance.Compute(g, []string{"AA", "ZZ"})
	assert.ErrorIs(t, err, distance.ErrTargetNotFound)
}

func TestCompute_Sample(t *testing.T) {
	g := valvetest.SampleGraph(t)
	dm, err := distance.Compute(g, sampleTargets(g))
	require.NoError(t, err)

	assert.Equal(t, []string{"AA", "BB", "CC", "DD", "EE", "HH", "JJ"}, dm.IDs())

	cases := []struct {
		a, b string
		want int
	}{
		{"AA", "AA", 0},
		{"AA", "DD", 1},
		{"AA", "BB", 1},
		{"AA", "JJ", 2},
		{"AA", "CC", 2},
		{"AA", "HH", 5},
		{"BB", "HH", 6},
		{"JJ", "HH", 7},
		{"EE", "CC", 2},
	}
	for _, tc := range cases {
		got, err := dm.Between(tc.a, tc.b)
		require.NoError(t, err)
		assert.Equalf(t, tc.want, got, "d(%s,%s)", tc.a, tc.b)
	}

	_, err = dm.Between("AA", "FF")
	assert.ErrorIs(t, err, distance.ErrTargetNotFound)
}

// TestCompute_Properties checks identity, symmetry and the triangle
// inequality on the sample and on random connected networks.
func TestCompute_Properties(t *testing.T) {
	graphs := []*valve.Graph{valvetest.SampleGraph(t)}
	for seed := int64(1); seed <= 5; seed++ {
		graphs = append(graphs, valvetest.Random(t, seed, 30, 12))
	}

	for _, g := range graphs {
		targets := g.Valuable()
		targets = append(targets, g.IDs()[0])
		dm, err := distance.Compute(g, targets)
		require.NoError(t, err)

		n := dm.Len()
		for a := 0; a < n; a++ {
			require.Equal(t, 0, dm.At(a, a))
			for b := 0; b < n; b++ {
				require.Equal(t, dm.At(a, b), dm.At(b, a), "symmetry %s %s", dm.IDs()[a], dm.IDs()[b])
				if a != b {
					require.Positive(t, dm.At(a, b))
				}
				for c := 0; c < n; c++ {
					require.LessOrEqual(t, dm.At(a, c), dm.At(a, b)+dm.At(b, c))
				}
			}
		}
	}
}

func TestCompute_DuplicateTargets(t *testing.T) {
	g := valvetest.SampleGraph(t)
	dm, err := distance.Compute(g, []string{"JJ", "AA", "JJ"})
	require.NoError(t, err)
	assert.Equal(t, 2, dm.Len())
	d, err := dm.Between("JJ", "AA")
	require.NoError(t, err)
	assert.Equal(t, 2, d)
}

func TestCompute_Unreachable(t *testing.T) {
	g := valve.NewGraph()
	require.NoError(t, g.AddValve("AA", 0, "BB"))
	require.NoError(t, g.AddValve("BB", 4, "AA"))
	require.NoError(t, g.AddValve("CC", 9, "DD"))
	require.NoError(t, g.AddValve("DD", 0, "CC"))

	_, err := distance.Compute(g, []string{"AA", "BB", "CC"})
	require.ErrorIs(t, err, distance.ErrUnreachable)
	assert.Contains(t, err.Error(), `"AA" to "CC"`)
}

func TestCompute_OneSidedTunnels(t *testing.T) {
	// AA → BB → CC is listed forward only.
	g := valve.NewGraph()
	require.NoError(t, g.AddValve("AA", 0, "BB"))
	require.NoError(t, g.AddValve("BB", 0, "CC"))
	require.NoError(t, g.AddValve("CC", 7))

	dm, err := distance.Compute(g, []string{"AA", "CC"})
	require.NoError(t, err)
	for _, pair := range [][2]string{{"AA", "CC"}, {"CC", "AA"}} {
		d, err := dm.Between(pair[0], pair[1])
		require.NoError(t, err)
		assert.Equal(t, 2, d, "%s -> %s", pair[0], pair[1])
	}
}

func TestCompute_Cancelled(t *testing.T) {
	g := valvetest.SampleGraph(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := distance.Compute(g, sampleTargets(g), distance.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
