package valve

import (
	"errors"
	"sync"
)

// Sentinel errors for valve graph construction and validation.
var (
	// ErrEmptyValveID indicates that a valve was added with an empty id.
	ErrEmptyValveID = errors.New("valve: valve ID is empty")

	// ErrNegativeRate indicates a flow rate below zero.
	ErrNegativeRate = errors.New("valve: flow rate must be non-negative")

	// ErrDuplicateValve indicates that a valve id was added more than once.
	ErrDuplicateValve = errors.New("valve: duplicate valve")

	// ErrValveNotFound indicates a lookup of a valve that is not in the graph.
	ErrValveNotFound = errors.New("valve: valve not found")

	// ErrDanglingTunnel indicates a tunnel leading to a valve that does not exist.
	ErrDanglingTunnel = errors.New("valve: tunnel leads to unknown valve")

	// ErrStartNotFound indicates that the start valve is not part of the graph.
	ErrStartNotFound = errors.New("valve: start valve not found")

	// ErrMalformedLine indicates a scan line that does not describe a valve.
	ErrMalformedLine = errors.New("valve: malformed line")
)

// Valve is a node of the network.
//
// Rate is the pressure released per minute once the valve is open.
// Tunnels lists the ids of valves one minute away, in input order.
type Valve struct {
	ID      string
	Rate    int
	Tunnels []string
}

// Graph is the valve network.
//
// mu guards valves; a Graph is expected to be fully built before it is
// handed to the optimizer and never mutated afterwards.
type Graph struct {
	mu     sync.RWMutex
	valves map[string]*Valve
}

// NewGraph creates an empty Graph.
func NewGraph() *Graph {
	return &Graph{valves: make(map[string]*Valve)}
}
