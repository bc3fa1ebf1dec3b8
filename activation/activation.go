// Package activation provides the canonical, order-independent key for a
// set of opened valves: a 64-bit mask with one bit per valuable valve.
//
// Only valves with a positive flow rate ever get opened, and realistic
// networks carry at most a few dozen of them, so a single machine word is
// enough. Index maps valve ids to bit positions in ascending id order so
// that the same network always produces the same bits.
package activation

import (
	"errors"
	"fmt"
	"math/bits"
	"sort"
)

// MaxValves is the number of distinct valves a Set can hold.
const MaxValves = 64

var (
	// ErrTooManyValves indicates more valuable valves than a Set can hold.
	ErrTooManyValves = errors.New("activation: too many valuable valves")

	// ErrUnknownValve indicates an id that is not part of the Index.
	ErrUnknownValve = errors.New("activation: valve not indexed")

	// ErrDuplicateValve indicates an id listed twice when building an Index.
	ErrDuplicateValve = errors.New("activation: duplicate valve")
)

// Set is an unordered set of opened valves, bit i standing for Index.ID(i).
// The zero value is the empty set.
type Set uint64

// Has reports whether bit is in s.
func (s Set) Has(bit int) bool { return s&(1<<uint(bit)) != 0 }

// With returns s ∪ {bit}.
func (s Set) With(bit int) Set { return s | 1<<uint(bit) }

// Without returns s \ {bit}.
func (s Set) Without(bit int) Set { return s &^ (1 << uint(bit)) }

// Len returns |s|.
func (s Set) Len() int { return bits.OnesCount64(uint64(s)) }

// Empty reports whether s has no members.
func (s Set) Empty() bool { return s == 0 }

// Disjoint reports whether s and o share no member.
func (s Set) Disjoint(o Set) bool { return s&o == 0 }

// Union returns s ∪ o.
func (s Set) Union(o Set) Set { return s | o }

// Bits returns the members of s in ascending order.
func (s Set) Bits() []int {
	out := make([]int, 0, s.Len())
	for m := uint64(s); m != 0; m &= m - 1 {
		out = append(out, bits.TrailingZeros64(m))
	}

	return out
}

// Index assigns bit positions to valve ids.
type Index struct {
	ids []string
	pos map[string]int
}

// NewIndex builds an Index over ids. The ids are sorted so the mapping does
// not depend on the caller's order.
//
// Errors: ErrTooManyValves, ErrDuplicateValve.
func NewIndex(ids []string) (*Index, error) {
	if len(ids) > MaxValves {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyValves, len(ids), MaxValves)
	}
	sorted := append([]string(nil), ids...)
	sort.Strings(sorted)

	x := &Index{ids: sorted, pos: make(map[string]int, len(sorted))}
	for i, id := range sorted {
		if _, dup := x.pos[id]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateValve, id)
		}
		x.pos[id] = i
	}

	return x, nil
}

// Len returns the number of indexed valves.
func (x *Index) Len() int { return len(x.ids) }

// Bit returns the bit position of id.
func (x *Index) Bit(id string) (int, bool) {
	b, ok := x.pos[id]
	return b, ok
}

// ID returns the valve id at bit.
func (x *Index) ID(bit int) string { return x.ids[bit] }

// Full returns the set of every indexed valve.
func (x *Index) Full() Set {
	if len(x.ids) == MaxValves {
		return ^Set(0)
	}

	return Set(1)<<uint(len(x.ids)) - 1
}

// SetOf builds the Set holding the given ids.
func (x *Index) SetOf(ids ...string) (Set, error) {
	var s Set
	for _, id := range ids {
		b, ok := x.pos[id]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrUnknownValve, id)
		}
		s = s.With(b)
	}

	return s, nil
}

// IDs returns the ids in s in ascending order.
func (x *Index) IDs(s Set) []string {
	out := make([]string, 0, s.Len())
	for _, b := range s.Bits() {
		out = append(out, x.ids[b])
	}

	return out
}
