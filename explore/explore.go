package explore

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/valvenet/activation"
	"github.com/katalvlaran/valvenet/distance"
	"github.com/katalvlaran/valvenet/valve"
)

const (
	// minChunk is the smallest slice of a level worth its own goroutine.
	minChunk = 256

	// checkEvery is the number of expansions between context checks.
	checkEvery = 4096
)

// engine holds the search data of one Explore call.
type engine struct {
	k      int // valuable valves; positions 0..k-1 are their bits
	n      int // k+1 positions; position k is the start valve
	budget int
	rate   []int // rate[bit]
	w      []int // dense distances w[u*n+v] over positions
	opts   Options

	states []State // arena, level by level
	memo   *cache
	best   int // best yield among merged states (pruning incumbent)
	stats  Stats
}

// chunkOut is the private output buffer of one worker.
type chunkOut struct {
	children []State
	pruned   int
}

// Explore runs the time-bounded search from start with the given budget and
// returns every recorded state together with its terminal yield.
//
// dm must cover start and every valuable valve of g (distance.Compute over
// g.Valuable() plus start does).
//
// Errors: ErrNilGraph, ErrNilDistanceMap, ErrOptionViolation,
// ErrStartNotFound, ErrBadBudget, ErrMissingDistance,
// activation.ErrTooManyValves, ctx.Err().
func Explore(g *valve.Graph, dm *distance.Map, start string, budget int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if dm == nil {
		return nil, ErrNilDistanceMap
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasValve(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, start)
	}
	if budget < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadBudget, budget)
	}

	idx, err := activation.NewIndex(g.Valuable())
	if err != nil {
		return nil, err
	}
	e, err := newEngine(g, dm, idx, start, budget, o)
	if err != nil {
		return nil, err
	}
	if err = e.run(); err != nil {
		return nil, err
	}

	return e.result(idx, start), nil
}

// newEngine prefetches rates and distances into dense buffers indexed by
// position so the hot loop never touches maps.
func newEngine(g *valve.Graph, dm *distance.Map, idx *activation.Index, start string, budget int, o Options) (*engine, error) {
	k := idx.Len()
	n := k + 1
	e := &engine{
		k:      k,
		n:      n,
		budget: budget,
		rate:   make([]int, k),
		w:      make([]int, n*n),
		opts:   o,
		memo:   newCache(),
	}

	pos := make([]int, n) // position → distance map index
	for b := 0; b < k; b++ {
		id := idx.ID(b)
		i, ok := dm.Index(id)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingDistance, id)
		}
		pos[b] = i
		rate, err := g.Rate(id)
		if err != nil {
			return nil, err
		}
		e.rate[b] = rate
	}
	i, ok := dm.Index(start)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingDistance, start)
	}
	pos[k] = i

	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			e.w[u*n+v] = dm.At(pos[u], pos[v])
		}
	}

	return e, nil
}

// run expands level after level until no state can move.
func (e *engine) run() error {
	e.states = append(e.states, State{At: e.k, Parent: -1})
	e.best = 0

	lo, hi := 0, 1
	for level := 0; lo < hi; level++ {
		if err := e.opts.Ctx.Err(); err != nil {
			return err
		}
		outs, err := e.expandLevel(lo, hi)
		if err != nil {
			return err
		}
		admitted := e.merge(outs)

		e.stats.Levels++
		e.stats.Expanded += hi - lo
		e.opts.OnLevel(level, hi-lo, admitted)
		lo, hi = hi, len(e.states)
	}

	return nil
}

// expandLevel fans the states in [lo, hi) out to the workers. The arena is
// only read until every worker has returned.
func (e *engine) expandLevel(lo, hi int) ([]chunkOut, error) {
	size := hi - lo
	chunks := min(e.opts.Workers, (size+minChunk-1)/minChunk)
	if chunks < 1 {
		chunks = 1
	}
	step := (size + chunks - 1) / chunks
	outs := make([]chunkOut, chunks)

	eg, ctx := errgroup.WithContext(e.opts.Ctx)
	for c := 0; c < chunks; c++ {
		from := min(lo+c*step, hi)
		to := min(from+step, hi)
		out := &outs[c]
		eg.Go(func() error {
			return e.expand(ctx, from, to, out)
		})
	}

	return outs, eg.Wait()
}

// expand generates the successors of states [from, to) into out.
func (e *engine) expand(ctx context.Context, from, to int, out *chunkOut) error {
	incumbent := e.best
	for i := from; i < to; i++ {
		if (i-from)%checkEvery == checkEvery-1 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		s := e.states[i]
		left := e.budget - s.Minutes
		row := e.w[s.At*e.n : s.At*e.n+e.k]
		for b, d := range row {
			if s.Set.Has(b) || d+1 > left {
				continue
			}
			cost := d + 1
			child := State{
				At:       b,
				Parent:   i,
				Minutes:  s.Minutes + cost,
				Set:      s.Set.With(b),
				Flow:     s.Flow + e.rate[b],
				Released: s.Released + cost*s.Flow,
			}
			if e.opts.Pruning && e.upperBound(child) <= incumbent {
				out.pruned++
				continue
			}
			out.children = append(out.children, child)
		}
	}

	return nil
}

// upperBound is an admissible bound on any descendant of s: each unopened
// valve is assumed to be opened straight from s's position, which by the
// triangle inequality is never later than any real route reaches it.
func (e *engine) upperBound(s State) int {
	ub := s.Yield(e.budget)
	left := e.budget - s.Minutes
	row := e.w[s.At*e.n : s.At*e.n+e.k]
	for b, d := range row {
		if s.Set.Has(b) {
			continue
		}
		if r := left - d - 1; r > 0 {
			ub += e.rate[b] * r
		}
	}

	return ub
}

// merge appends the workers' children to the arena in chunk order and
// returns how many became new states.
func (e *engine) merge(outs []chunkOut) int {
	if e.opts.Memo {
		e.memo.reset()
	}

	admitted := 0
	for c := range outs {
		e.stats.Pruned += outs[c].pruned
		for _, child := range outs[c].children {
			if e.opts.Memo {
				if j, ok := e.memo.lookup(child); ok {
					e.stats.MemoDropped++
					if child.Released > e.states[j].Released {
						e.states[j] = child
						e.raise(child)
					}
					continue
				}
				e.memo.store(child, len(e.states))
			}
			e.states = append(e.states, child)
			e.raise(child)
			admitted++
		}
	}

	return admitted
}

// raise lifts the incumbent to s's terminal yield if higher.
func (e *engine) raise(s State) {
	if y := s.Yield(e.budget); y > e.best {
		e.best = y
	}
}

func (e *engine) result(idx *activation.Index, start string) *Result {
	recs := make([]Record, len(e.states))
	for i, s := range e.states {
		recs[i] = Record{State: i, Set: s.Set, Yield: s.Yield(e.budget)}
	}

	return &Result{
		Index:   idx,
		Start:   start,
		Budget:  e.budget,
		States:  e.states,
		Records: recs,
		Stats:   e.stats,
	}
}
