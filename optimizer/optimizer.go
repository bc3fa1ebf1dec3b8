package optimizer

import (
	"fmt"
	"time"

	"github.com/katalvlaran/valvenet/activation"
	"github.com/katalvlaran/valvenet/combine"
	"github.com/katalvlaran/valvenet/distance"
	"github.com/katalvlaran/valvenet/explore"
	"github.com/katalvlaran/valvenet/subset"
	"github.com/katalvlaran/valvenet/valve"
)

// ComputeSingleAgentMax returns the most pressure one agent starting at
// start can release within budget minutes.
func ComputeSingleAgentMax(g *valve.Graph, start string, budget int, opts ...Option) (int, error) {
	p, err := SingleAgentPlan(g, start, budget, opts...)
	if err != nil {
		return 0, err
	}

	return p.Yield, nil
}

// ComputeDualAgentMax returns the most pressure two agents, both starting
// at start and never opening the same valve, can release within budget
// minutes.
func ComputeDualAgentMax(g *valve.Graph, start string, budget int, opts ...Option) (int, error) {
	p, err := DualAgentPlan(g, start, budget, opts...)
	if err != nil {
		return 0, err
	}

	return p.Yield, nil
}

// SingleAgentPlan is ComputeSingleAgentMax with the opening order.
func SingleAgentPlan(g *valve.Graph, start string, budget int, opts ...Option) (Plan, error) {
	o, err := options(opts)
	if err != nil {
		return Plan{}, err
	}
	res, err := search(g, start, budget, o, o.Pruning)
	if err != nil {
		return Plan{}, err
	}

	best := res.Best()
	o.Logger.Debug("single agent done", "yield", best.Yield, "opened", best.Set.Len())

	return planOf(res, best), nil
}

// DualAgentPlan is ComputeDualAgentMax with both agents' opening orders.
func DualAgentPlan(g *valve.Graph, start string, budget int, opts ...Option) (DualPlan, error) {
	o, err := options(opts)
	if err != nil {
		return DualPlan{}, err
	}
	res, err := search(g, start, budget, o, false)
	if err != nil {
		return DualPlan{}, err
	}

	t0 := time.Now()
	tbl := subset.FromResult(res)
	o.Logger.Debug("records reduced", "records", len(res.Records), "sets", len(tbl), "elapsed", time.Since(t0))

	t0 = time.Now()
	pair := combine.Best(tbl)
	o.Logger.Debug("agents combined", "yield", pair.Yield, "elapsed", time.Since(t0))

	return DualPlan{
		Yield: pair.Yield,
		Agents: [2]Plan{
			planOf(res, bestFor(res, pair.First)),
			planOf(res, bestFor(res, pair.Second)),
		},
	}, nil
}

// options applies opts over the defaults.
func options(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// search validates the input, measures distances and explores.
func search(g *valve.Graph, start string, budget int, o Options, prune bool) (*explore.Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if err := g.Validate(start); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidGraph, err)
	}
	if budget < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadBudget, budget)
	}
	log := o.Logger.With("start", start, "budget", budget)

	t0 := time.Now()
	targets := append(g.Valuable(), start)
	dm, err := distance.Compute(g, targets, distance.WithContext(o.Ctx))
	if err != nil {
		return nil, err
	}
	log.Debug("distances computed", "valves", g.Len(), "targets", dm.Len(), "elapsed", time.Since(t0))

	t0 = time.Now()
	res, err := explore.Explore(g, dm, start, budget,
		explore.WithContext(o.Ctx),
		explore.WithWorkers(o.Workers),
		explore.WithMemo(o.Memo),
		explore.WithPruning(prune),
		explore.WithOnLevel(func(level, expanded, admitted int) {
			log.Debug("level merged", "level", level, "expanded", expanded, "admitted", admitted)
		}),
	)
	if err != nil {
		return nil, err
	}
	log.Debug("search done",
		"states", len(res.States),
		"levels", res.Stats.Levels,
		"memo_dropped", res.Stats.MemoDropped,
		"pruned", res.Stats.Pruned,
		"elapsed", time.Since(t0),
	)

	return res, nil
}

// bestFor returns the best record whose opened set is exactly s. The root
// record covers the empty set.
func bestFor(res *explore.Result, s activation.Set) explore.Record {
	best := res.Records[0]
	for _, rec := range res.Records {
		if rec.Set == s && (best.Set != s || rec.Yield > best.Yield) {
			best = rec
		}
	}

	return best
}

func planOf(res *explore.Result, rec explore.Record) Plan {
	return Plan{
		Yield:   rec.Yield,
		Order:   res.Sequence(rec),
		Minutes: res.Minutes(rec),
	}
}
