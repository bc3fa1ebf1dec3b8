// Package valvetest provides valve networks shared by the tests of the
// optimizer packages.
package valvetest

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/valvenet/valve"
)

// Sample is the ten-valve example scan. With start AA the best single
// agent releases 1651 in 30 minutes; two agents release 1707 in 26.
const Sample = `Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
Valve BB has flow rate=13; tunnels lead to valves CC, AA
Valve CC has flow rate=2; tunnels lead to valves DD, BB
Valve DD has flow rate=20; tunnels lead to valves CC, AA, EE
Valve EE has flow rate=3; tunnels lead to valves FF, DD
Valve FF has flow rate=0; tunnels lead to valves EE, GG
Valve GG has flow rate=0; tunnels lead to valves FF, HH
Valve HH has flow rate=22; tunnel leads to valve GG
Valve II has flow rate=0; tunnels lead to valves AA, JJ
Valve JJ has flow rate=21; tunnel leads to valve II
`

// SampleGraph parses Sample, failing t on error.
func SampleGraph(tb testing.TB) *valve.Graph {
	tb.Helper()
	g, err := valve.ParseString(Sample)
	if err != nil {
		tb.Fatalf("parse sample: %v", err)
	}

	return g
}

// Line builds a corridor AA–V1–…–Vn where every Vi has the given rate.
func Line(tb testing.TB, n, rate int) *valve.Graph {
	tb.Helper()
	g := valve.NewGraph()
	const start = "AA"
	ids := []string{start}
	for i := 1; i <= n; i++ {
		ids = append(ids, fmt.Sprintf("V%d", i))
	}
	for i, id := range ids {
		var tunnels []string
		if i > 0 {
			tunnels = append(tunnels, ids[i-1])
		}
		if i+1 < len(ids) {
			tunnels = append(tunnels, ids[i+1])
		}
		r := rate
		if id == start {
			r = 0
		}
		if err := g.AddValve(id, r, tunnels...); err != nil {
			tb.Fatalf("add %s: %v", id, err)
		}
	}

	return g
}

// Random builds a connected network of n valves named N0…N(n-1), start N0
// with rate 0, and exactly valuable (≤ n-1) valves with rates in [1, 25]. A spanning tree
// guarantees connectivity; extra random tunnels are added in both
// directions. The same seed always yields the same graph.
func Random(tb testing.TB, seed int64, n, valuable int) *valve.Graph {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))

	adj := make([]map[int]bool, n)
	for i := range adj {
		adj[i] = make(map[int]bool)
	}
	link := func(a, b int) {
		if a != b {
			adj[a][b] = true
			adj[b][a] = true
		}
	}
	for i := 1; i < n; i++ {
		link(i, rng.Intn(i))
	}
	for k := 0; k < n/2; k++ {
		link(rng.Intn(n), rng.Intn(n))
	}

	rates := make([]int, n)
	for _, i := range rng.Perm(n - 1)[:valuable] {
		rates[i+1] = 1 + rng.Intn(25)
	}

	g := valve.NewGraph()
	for i := 0; i < n; i++ {
		tunnels := make([]string, 0, len(adj[i]))
		for j := 0; j < n; j++ {
			if adj[i][j] {
				tunnels = append(tunnels, fmt.Sprintf("N%d", j))
			}
		}
		if err := g.AddValve(fmt.Sprintf("N%d", i), rates[i], tunnels...); err != nil {
			tb.Fatalf("add N%d: %v", i, err)
		}
	}

	return g
}
