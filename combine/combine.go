// Package combine splits the valves between two agents that act
// independently over the same time budget.
//
// Given the best yield per opened set (subset.Table), the best team plan is
// the pair of disjoint sets with the largest summed yield: each agent runs
// its own best order over its own set, and disjointness guarantees no valve
// is opened twice. The empty set (an idle agent, yield 0) is always a
// candidate, so the team never does worse than a single agent.
//
// Best scans entries in descending yield and stops as soon as no remaining
// pair can beat the incumbent. It returns exactly what the plain O(M²)
// scan (Exhaustive) returns, usually after inspecting a small prefix.
package combine

import (
	"github.com/katalvlaran/valvenet/activation"
	"github.com/katalvlaran/valvenet/subset"
)

// Pair is a split of opened valves between two agents.
type Pair struct {
	First  activation.Set
	Second activation.Set
	Yield  int
}

// entries returns t's rows in descending yield with the idle set present.
func entries(t subset.Table) []subset.Entry {
	es := t.Entries()
	if _, ok := t[0]; !ok {
		es = append(es, subset.Entry{})
	}

	return es
}

// Best returns the disjoint pair of distinct entries with the largest
// summed yield. With nothing to split it returns the idle/idle pair with
// yield 0.
//
// Complexity: O(M log M) to sort plus O(M²) worst case for the scan.
func Best(t subset.Table) Pair {
	es := entries(t)

	var best Pair
	for i := 0; i+1 < len(es); i++ {
		if es[i].Yield+es[i+1].Yield <= best.Yield {
			break
		}
		for j := i + 1; j < len(es); j++ {
			sum := es[i].Yield + es[j].Yield
			if sum <= best.Yield {
				break
			}
			if es[i].Set.Disjoint(es[j].Set) {
				best = Pair{First: es[i].Set, Second: es[j].Set, Yield: sum}
				break
			}
		}
	}

	return best
}

// Exhaustive compares every unordered pair of distinct entries and returns
// the largest disjoint sum.
// Complexity: O(M²).
func Exhaustive(t subset.Table) int {
	es := entries(t)

	best := 0
	for i := 0; i < len(es); i++ {
		for j := i + 1; j < len(es); j++ {
			if !es[i].Set.Disjoint(es[j].Set) {
				continue
			}
			if sum := es[i].Yield + es[j].Yield; sum > best {
				best = sum
			}
		}
	}

	return best
}
