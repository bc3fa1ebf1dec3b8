// Package distance computes shortest tunnel distances between the valves
// that matter to the pressure optimizer: every valuable valve plus the
// start valve.
//
// What
//
//   - One breadth-first search per target source over the full valve graph,
//     walking every tunnel in both directions.
//   - Each BFS marks a valve the first time it is reached (no revisits) and
//     stops as soon as every target has been discovered.
//   - The result is a dense Map over the targets: At(i, j) is the number of
//     tunnels on a shortest route from target i to target j.
//
// Why
//
//	The explorer only ever moves between valuable valves, so it needs a
//	complete distance table over a handful of nodes, not the full graph.
//	Unweighted BFS gives exact distances in O(V + E) per source.
//
// Invariants
//
//   - At(i, i) == 0.
//   - At(i, j) == At(j, i), even when a tunnel is listed on one side only.
//   - At(i, k) ≤ At(i, j) + At(j, k).
//
// Complexity (T = |targets|, V = |valves|, E = |tunnels|)
//
//   - Time:   O(T · (V + E))
//   - Memory: O(T² + V)
//
// Errors
//
//   - ErrNilGraph         graph pointer is nil.
//   - ErrTargetNotFound   a target is not a valve of the graph.
//   - ErrUnreachable      two targets lie in disconnected parts. This is a
//     configuration error: the optimizer cannot decide anything sound
//     without true reachability, so it is never defaulted to infinity.
//   - ctx.Err()           when the context passed WithContext is done.
//
// Usage
//
//	dm, err := distance.Compute(g, append(g.Valuable(), "AA"))
//	if err != nil {
//		return err
//	}
//	d, _ := dm.Between("AA", "JJ")
package distance
