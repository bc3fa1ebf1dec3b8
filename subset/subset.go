// Package subset collapses explored opening orders into the best yield per
// set of opened valves.
//
// Two agents working side by side only interfere through which valves they
// open, never through the order in which each opens its own. Reducing the
// explorer's records to set → max(yield) is therefore lossless for the
// two-agent split and typically shrinks the data by orders of magnitude.
//
// Reduction is idempotent: reducing a Table's own entries gives back the
// same Table.
package subset

import (
	"sort"

	"github.com/katalvlaran/valvenet/activation"
	"github.com/katalvlaran/valvenet/explore"
)

// Table maps a set of opened valves to the best yield recorded for it.
type Table map[activation.Set]int

// Entry is one row of a Table.
type Entry struct {
	Set   activation.Set
	Yield int
}

// Reduce groups records by opened set and keeps the maximum yield of each
// group.
// Complexity: O(len(records)).
func Reduce(records []explore.Record) Table {
	t := make(Table)
	for _, r := range records {
		t.Add(r.Set, r.Yield)
	}

	return t
}

// FromResult reduces every record of res.
func FromResult(res *explore.Result) Table {
	return Reduce(res.Records)
}

// Add records yield for s, keeping the larger value if s is present.
func (t Table) Add(s activation.Set, yield int) {
	if cur, ok := t[s]; !ok || yield > cur {
		t[s] = yield
	}
}

// Max returns the best yield over all sets, 0 for an empty Table.
func (t Table) Max() int {
	best := 0
	for _, y := range t {
		if y > best {
			best = y
		}
	}

	return best
}

// Entries returns the rows sorted by descending yield, ties by ascending set.
// Complexity: O(M log M).
func (t Table) Entries() []Entry {
	out := make([]Entry, 0, len(t))
	for s, y := range t {
		out = append(out, Entry{Set: s, Yield: y})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Yield != out[j].Yield {
			return out[i].Yield > out[j].Yield
		}
		return out[i].Set < out[j].Set
	})

	return out
}
