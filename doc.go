// Package valvenet plans which valves to open, and in what order, to release
// the most pressure from a tunnel network within a fixed number of minutes.
//
// Every minute an agent either walks one tunnel or opens the valve it stands
// on; an open valve releases its flow rate every remaining minute. The
// module answers two questions: the best total for one agent, and the best
// total for two agents who start together and never open the same valve.
//
// Layout
//
//	valve/       — Valve, Graph, Validate and the text scan parser
//	activation/  — bitmask sets of opened valves and the id ↔ bit index
//	distance/    — BFS travel times between the start and valuable valves
//	explore/     — level-parallel state search with memo and branch-and-bound
//	subset/      — best yield per opened set
//	combine/     — best disjoint pair of sets for two agents
//	optimizer/   — public entry points, options, YAML config
//	cmd/valvenet — command line driver
//
// Quick start
//
//	g, _ := valve.Parse(os.Stdin)
//	solo, _ := optimizer.ComputeSingleAgentMax(g, "AA", 30)
//	duo, _ := optimizer.ComputeDualAgentMax(g, "AA", 26)
//
// Only valves with a positive rate take part in the search, at most 64 of
// them (see activation.MaxValves). Zero-rate valves are corridors.
package valvenet
