package explore

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/katalvlaran/valvenet/activation"
)

// Sentinel errors for exploration.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("explore: graph is nil")

	// ErrNilDistanceMap is returned if a nil distance map is passed.
	ErrNilDistanceMap = errors.New("explore: distance map is nil")

	// ErrStartNotFound is returned when the start valve is not in the graph.
	ErrStartNotFound = errors.New("explore: start valve not found")

	// ErrBadBudget is returned for a negative time budget.
	ErrBadBudget = errors.New("explore: time budget must be non-negative")

	// ErrMissingDistance is returned when the distance map does not cover
	// the start valve or a valuable valve.
	ErrMissingDistance = errors.New("explore: distance map misses valve")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("explore: invalid option supplied")
)

// Option configures Explore via functional arguments. Invalid options are
// recorded and surfaced as ErrOptionViolation when Explore runs.
type Option func(*Options)

// Options holds the parameters of one exploration.
type Options struct {
	// Ctx allows abandoning the search; checked at every level join and
	// every 4096 expansions inside a worker.
	Ctx context.Context

	// Workers is the number of goroutines expanding a level.
	Workers int

	// Memo enables dropping same-level duplicates (see package doc).
	Memo bool

	// Pruning enables branch-and-bound. Only the maximum yield survives
	// pruning; per-set maxima do not, so leave it off when the records feed
	// a two-agent split.
	Pruning bool

	// OnLevel, if set, is called after each level is merged with the level
	// number, the number of states expanded and the number admitted.
	OnLevel func(level, expanded, admitted int)

	err error
}

// DefaultOptions returns Options with a background context, one worker per
// available CPU, memo on and pruning off.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Workers: runtime.GOMAXPROCS(0),
		Memo:    true,
		OnLevel: func(int, int, int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers sets the number of expansion goroutines.
//
//	n > 0:  use n workers
//	n == 0: one per available CPU
//	n < 0:  invalid → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			o.Workers = runtime.GOMAXPROCS(0)
		default:
			o.Workers = n
		}
	}
}

// WithMemo toggles same-level duplicate elimination.
func WithMemo(on bool) Option {
	return func(o *Options) { o.Memo = on }
}

// WithPruning toggles branch-and-bound.
func WithPruning(on bool) Option {
	return func(o *Options) { o.Pruning = on }
}

// WithOnLevel registers a callback run after each level join.
func WithOnLevel(fn func(level, expanded, admitted int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnLevel = fn
		}
	}
}

// State is one search node. States live in Result.States and never change
// once their level has been merged.
type State struct {
	// At is the agent's position: a valuable valve's bit, or Index.Len()
	// for the start valve.
	At int

	// Parent is the index of the predecessor state, -1 for the root.
	Parent int

	// Minutes is the time elapsed, including the minute spent opening At.
	Minutes int

	// Set holds the opened valves.
	Set activation.Set

	// Flow is the pressure released per minute by Set.
	Flow int

	// Released is the pressure released up to Minutes.
	Released int
}

// Yield returns the pressure released by the end of budget if the agent
// opens nothing more.
func (s State) Yield(budget int) int {
	return s.Released + (budget-s.Minutes)*s.Flow
}

// Record is the terminal outcome of one state.
type Record struct {
	State int
	Set   activation.Set
	Yield int
}

// Stats summarizes an exploration.
type Stats struct {
	Levels      int // levels expanded, the root level included
	Expanded    int // states whose successors were generated
	MemoDropped int // children discarded or replaced by the memo
	Pruned      int // children cut by the bound
}
