// Package explore enumerates every way a single agent can open valves
// within a time budget and records, for each reached state, the pressure
// released if the agent stops there.
//
// What
//
//	A search state is (position, minutes elapsed, opened set, released so
//	far). From a state at valve v, for every unopened valuable valve w:
//
//	  cost = d(v, w) + 1            travel, then one minute to open w
//	  admit iff minutes + cost ≤ T
//	  released' = released + cost × flow(opened)
//
//	Valves already open keep releasing while the agent travels, which is
//	why travel time is charged at the current flow. Every state, whether or
//	not it can still move, contributes one terminal record:
//
//	  yield = released + (T − minutes) × flow(opened)
//
//	so "stop here" is always an option and the root (nothing opened,
//	yield 0) is always recorded.
//
// How
//
//   - States are value records in one flat arena; a state points at its
//     predecessor by index, so the opening order is reconstructed on demand
//     (Result.Sequence) instead of being copied into every state.
//   - Opened sets are activation.Set bitmasks.
//   - The search is level-synchronous: level k holds the states with k
//     valves open. Each level is cut into contiguous chunks expanded by
//     errgroup workers into private buffers; buffers are merged in chunk
//     order at the join, so the output never depends on the worker count.
//   - A per-invocation memo drops a state when another state of the same
//     level already sits at the same valve, with the same set, at the same
//     minute, having released at least as much (WithMemo).
//   - Optional branch-and-bound (WithPruning): a child is not spawned when
//     even opening every remaining valve straight from its position could
//     not beat the best yield recorded so far. The bound is admissible, so
//     the maximum never changes; only dominated states disappear.
//
// Complexity
//
//	Worst case O(k!) states for k valuable valves; the budget cuts most
//	branches long before every valve is open. Each expansion costs O(k)
//	(O(k) more with pruning for the bound).
//
// Errors
//
//   - ErrNilGraph, ErrNilDistanceMap   missing inputs.
//   - ErrStartNotFound                 start valve not in the graph.
//   - ErrBadBudget                     negative time budget.
//   - ErrMissingDistance               the map lacks the start or a valuable valve.
//   - ErrOptionViolation               invalid option.
//   - activation.ErrTooManyValves      more than 64 valuable valves.
//   - ctx.Err()                        cancellation via WithContext.
package explore
