package explore_test

import (
	"testing"

	"github.com/katalvlaran/valvenet/distance"
	"github.com/katalvlaran/valvenet/explore"
	"github.com/katalvlaran/valvenet/valve/valvetest"
)

func benchmarkExplore(b *testing.B, opts ...explore.Option) {
	g := valvetest.Random(b, 11, 50, 15)
	dm, err := distance.Compute(g, append(g.Valuable(), "N0"))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = explore.Explore(g, dm, "N0", 26, opts...); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkExplore_Sequential expands every level on one goroutine.
func BenchmarkExplore_Sequential(b *testing.B) {
	benchmarkExplore(b, explore.WithWorkers(1))
}

// BenchmarkExplore_Parallel splits levels across GOMAXPROCS workers.
func BenchmarkExplore_Parallel(b *testing.B) {
	benchmarkExplore(b)
}

// BenchmarkExplore_Pruned adds branch-and-bound on top of the memo.
func BenchmarkExplore_Pruned(b *testing.B) {
	benchmarkExplore(b, explore.WithPruning(true))
}

// BenchmarkExplore_NoMemo keeps every opening order.
func BenchmarkExplore_NoMemo(b *testing.B) {
	benchmarkExplore(b, explore.WithMemo(false))
}
