package valve

import (
	"fmt"
	"sort"
)

// AddValve inserts a valve with the given flow rate and tunnel targets.
// Tunnel targets do not need to exist yet; closure is checked by Validate.
//
// Errors: ErrEmptyValveID, ErrNegativeRate, ErrDuplicateValve.
// Complexity: O(len(tunnels)).
func (g *Graph) AddValve(id string, rate int, tunnels ...string) error {
	if id == "" {
		return ErrEmptyValveID
	}
	if rate < 0 {
		return fmt.Errorf("%w: %q has rate %d", ErrNegativeRate, id, rate)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.valves[id]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateValve, id)
	}
	g.valves[id] = &Valve{
		ID:      id,
		Rate:    rate,
		Tunnels: append([]string(nil), tunnels...),
	}

	return nil
}

// Valve returns the valve with the given id.
func (g *Graph) Valve(id string) (*Valve, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, ok := g.valves[id]
	return v, ok
}

// HasValve reports whether id is part of the graph.
func (g *Graph) HasValve(id string) bool {
	_, ok := g.Valve(id)
	return ok
}

// Len returns the number of valves.
func (g *Graph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.valves)
}

// Rate returns the flow rate of id, or ErrValveNotFound.
func (g *Graph) Rate(id string) (int, error) {
	v, ok := g.Valve(id)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrValveNotFound, id)
	}

	return v.Rate, nil
}

// Tunnels returns the tunnel targets of id in input order.
// The returned slice must not be modified.
func (g *Graph) Tunnels(id string) ([]string, error) {
	v, ok := g.Valve(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrValveNotFound, id)
	}

	return v.Tunnels, nil
}

// IDs returns all valve ids in ascending order.
// Complexity: O(V log V).
func (g *Graph) IDs() []string {
	return g.collect(func(*Valve) bool { return true })
}

// Valuable returns, in ascending order, the ids of valves with a positive
// flow rate. Only these valves are worth opening.
func (g *Graph) Valuable() []string {
	return g.collect(func(v *Valve) bool { return v.Rate > 0 })
}

func (g *Graph) collect(keep func(*Valve) bool) []string {
	g.mu.RLock()
	ids := make([]string, 0, len(g.valves))
	for id, v := range g.valves {
		if keep(v) {
			ids = append(ids, id)
		}
	}
	g.mu.RUnlock()

	sort.Strings(ids)
	return ids
}

// Validate checks that the graph is closed (every tunnel leads to a known
// valve) and that start exists. Valves are checked in id order, so the
// reported error is deterministic. A tunnel may be listed on one side only;
// distance walks every tunnel both ways.
//
// Errors: ErrStartNotFound, ErrDanglingTunnel.
// Complexity: O(V log V + E).
func (g *Graph) Validate(start string) error {
	if !g.HasValve(start) {
		return fmt.Errorf("%w: %q", ErrStartNotFound, start)
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.valves))
	for id := range g.valves {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		for _, to := range g.valves[id].Tunnels {
			if _, ok := g.valves[to]; !ok {
				return fmt.Errorf("%w: %q -> %q", ErrDanglingTunnel, id, to)
			}
		}
	}

	return nil
}
