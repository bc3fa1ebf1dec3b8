package distance

import (
	"context"
	"errors"
)

// Sentinel errors for distance computation.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("distance: graph is nil")

	// ErrTargetNotFound is returned when a target id is not a valve.
	ErrTargetNotFound = errors.New("distance: target valve not found")

	// ErrUnreachable is returned when a target cannot reach another target.
	ErrUnreachable = errors.New("distance: valve unreachable")
)

// Option configures Compute via functional arguments.
type Option func(*Options)

// Options holds the parameters of a distance computation.
type Options struct {
	// Ctx allows cancellation between and inside BFS runs.
	Ctx context.Context
}

// DefaultOptions returns Options with a background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}
