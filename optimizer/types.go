package optimizer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Sentinel errors for optimizer calls.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("optimizer: graph is nil")

	// ErrInvalidGraph is returned when the graph fails validation.
	ErrInvalidGraph = errors.New("optimizer: invalid valve graph")

	// ErrBadBudget is returned for a negative time budget.
	ErrBadBudget = errors.New("optimizer: time budget must be non-negative")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("optimizer: invalid option supplied")
)

// Option configures an optimizer call via functional arguments.
type Option func(*Options)

// Options holds the parameters of an optimizer call.
type Options struct {
	Ctx     context.Context
	Workers int
	Logger  *slog.Logger
	Pruning bool
	Memo    bool

	err error
}

// DefaultOptions returns Options with a background context, GOMAXPROCS
// workers, a discarding logger, pruning and memo on.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		Pruning: true,
		Memo:    true,
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

// WithWorkers sets the number of goroutines per search level; 0 means one
// per available CPU and negative values are rejected.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithLogger sets the logger receiving per-phase debug records.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithPruning toggles branch-and-bound in the single-agent search. The
// two-agent search never prunes: a set that loses alone may win in a pair.
func WithPruning(on bool) Option {
	return func(o *Options) { o.Pruning = on }
}

// WithMemo toggles same-level duplicate elimination.
func WithMemo(on bool) Option {
	return func(o *Options) { o.Memo = on }
}

// Plan is the best course of one agent.
type Plan struct {
	// Yield is the pressure released by the end of the budget.
	Yield int

	// Order lists the valves in opening order.
	Order []string

	// Minutes[i] is the minute at which Order[i] finished opening.
	Minutes []int
}

// DualPlan is the best split between two agents. Agents[0] carries the
// larger share; their Order sets are disjoint.
type DualPlan struct {
	Yield  int
	Agents [2]Plan
}
