// Package optimizer is the public entry point of valvenet: given a valve
// network, a start valve and a time budget, it returns the most pressure
// one agent, or two agents working in parallel, can release.
//
// Pipeline
//
//	valve.Graph ──Validate──► distance.Compute ──► explore.Explore
//	                                                   │
//	                         one agent:  Result.Max ◄──┤
//	                         two agents: subset.FromResult ──► combine.Best
//
// The distance table and every search structure live for exactly one call;
// nothing is cached across calls and nothing is shared between goroutines
// except the read-only graph and distance table.
//
// Usage
//
//	g, err := valve.Parse(f)
//	...
//	solo, err := optimizer.ComputeSingleAgentMax(g, "AA", 30)
//	duo, err := optimizer.ComputeDualAgentMax(g, "AA", 26)
//
//	// with the opening orders:
//	plan, err := optimizer.DualAgentPlan(g, "AA", 26,
//		optimizer.WithLogger(logger),
//		optimizer.WithWorkers(4),
//	)
//
// Options
//
//   - WithContext(ctx)   abandon the search when ctx is done.
//   - WithWorkers(n)     goroutines per search level (0 = GOMAXPROCS).
//   - WithLogger(l)      slog logger for per-phase debug records; silent by default.
//   - WithPruning(bool)  branch-and-bound for the single-agent search (default on).
//   - WithMemo(bool)     same-level duplicate elimination (default on).
//
// Errors
//
//   - ErrNilGraph       graph pointer is nil.
//   - ErrInvalidGraph   the graph is not closed or lacks the start valve;
//     wraps valve.ErrDanglingTunnel or valve.ErrStartNotFound.
//   - ErrBadBudget      negative time budget.
//   - distance.ErrUnreachable, activation.ErrTooManyValves, ctx.Err() and
//     ErrOptionViolation pass through unchanged.
//
// A budget too short to open anything, or a network without valuable
// valves, is not an error: both entry points return 0.
package optimizer
