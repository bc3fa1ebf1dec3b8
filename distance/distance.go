package distance

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/valvenet/valve"
)

// Map is a dense table of shortest distances between target valves.
// It is read-only after Compute returns and safe for concurrent reads.
type Map struct {
	ids   []string
	index map[string]int
	d     []int // d[i*n+j]
}

// Len returns the number of targets.
func (m *Map) Len() int { return len(m.ids) }

// IDs returns the target ids in index order (ascending). The returned slice
// must not be modified.
func (m *Map) IDs() []string { return m.ids }

// Index returns the position of id in the table.
func (m *Map) Index(id string) (int, bool) {
	i, ok := m.index[id]
	return i, ok
}

// At returns the distance between targets i and j.
func (m *Map) At(i, j int) int { return m.d[i*len(m.ids)+j] }

// Between returns the distance between two target ids.
func (m *Map) Between(a, b string) (int, error) {
	i, ok := m.index[a]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrTargetNotFound, a)
	}
	j, ok := m.index[b]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrTargetNotFound, b)
	}

	return m.At(i, j), nil
}

// queueItem pairs a valve id with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker holds the mutable state of one BFS run.
type walker struct {
	adj     map[string][]string
	ctx     context.Context
	queue   []queueItem
	visited map[string]bool
}

// Compute runs one BFS per target over g and returns the pairwise distance
// table among targets. Duplicate targets are collapsed. Tunnels are walked
// in both directions, so a tunnel listed on one side only still connects
// both valves and the table is symmetric.
//
// Errors: ErrNilGraph, ErrTargetNotFound, ErrUnreachable, ctx.Err().
// Complexity: O(T·(V+E)) time, O(T²+V) memory.
func Compute(g *valve.Graph, targets []string, opts ...Option) (*Map, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ids := dedupe(targets)
	for _, id := range ids {
		if !g.HasValve(id) {
			return nil, fmt.Errorf("%w: %q", ErrTargetNotFound, id)
		}
	}

	n := len(ids)
	m := &Map{
		ids:   ids,
		index: make(map[string]int, n),
		d:     make([]int, n*n),
	}
	for i, id := range ids {
		m.index[id] = i
	}

	w := &walker{
		adj:     undirected(g),
		ctx:     o.Ctx,
		visited: make(map[string]bool, g.Len()),
	}
	for i, src := range ids {
		if err := w.run(src, m, m.d[i*n:(i+1)*n]); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// undirected returns the adjacency of g with every tunnel added in both
// directions.
func undirected(g *valve.Graph) map[string][]string {
	adj := make(map[string][]string, g.Len())
	seen := make(map[[2]string]bool)
	link := func(a, b string) {
		if a == b || seen[[2]string{a, b}] {
			return
		}
		seen[[2]string{a, b}] = true
		adj[a] = append(adj[a], b)
	}
	for _, id := range g.IDs() {
		v, _ := g.Valve(id)
		for _, to := range v.Tunnels {
			link(id, to)
			link(to, id)
		}
	}

	return adj
}

// dedupe returns the distinct ids in ascending order.
func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// run performs a BFS from src and writes the depth of every target into row.
// It stops once all targets are found.
func (w *walker) run(src string, m *Map, row []int) error {
	clear(w.visited)
	w.queue = w.queue[:0]

	remaining := len(row)
	found := make([]bool, len(row))
	mark := func(id string, depth int) {
		if j, ok := m.index[id]; ok && !found[j] {
			found[j] = true
			row[j] = depth
			remaining--
		}
	}

	w.visited[src] = true
	mark(src, 0)
	w.queue = append(w.queue, queueItem{id: src})

	for head := 0; head < len(w.queue) && remaining > 0; head++ {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[head]
		for _, nbr := range w.adj[item.id] {
			if w.visited[nbr] {
				continue
			}
			w.visited[nbr] = true
			mark(nbr, item.depth+1)
			w.queue = append(w.queue, queueItem{id: nbr, depth: item.depth + 1})
		}
	}

	if remaining > 0 {
		for j, ok := range found {
			if !ok {
				return fmt.Errorf("%w: no path from %q to %q", ErrUnreachable, src, m.ids[j])
			}
		}
	}

	return nil
}
