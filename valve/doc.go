// Package valve defines the valve network consumed by the pressure optimizer:
// valves with a per-minute flow rate, connected by tunnels.
//
// What
//
//   - Valve: identifier, flow rate (≥ 0) and the ids of valves reachable
//     through one tunnel.
//
//   - Graph: id → Valve container with deterministic (sorted) iteration.
//
//   - Parse: reads the textual scan, one valve per line:
//
//     Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
//     Valve HH has flow rate=22; tunnel leads to valve GG
//
// Why
//
//	Every search in this module relies on shortest-path distances, and those
//	are only sound on a closed graph. Validate checks closure and the start
//	valve up front so that structural mistakes surface as configuration
//	errors before any search begins.
//
// Concurrency
//
//	A Graph is guarded by a sync.RWMutex. Once built it is treated as
//	read-only and may be shared freely across goroutines.
//
// Errors
//
//   - ErrEmptyValveID    valve id is the empty string.
//   - ErrNegativeRate    flow rate below zero.
//   - ErrDuplicateValve  the same id was added twice.
//   - ErrValveNotFound   lookup of a missing valve.
//   - ErrDanglingTunnel  a tunnel references a valve that does not exist.
//   - ErrStartNotFound   the start valve is not part of the graph.
//   - ErrMalformedLine   Parse could not read a line.
package valve
