package optimizer_test

import (
	"fmt"

	"github.com/katalvlaran/valvenet/optimizer"
	"github.com/katalvlaran/valvenet/valve"
	"github.com/katalvlaran/valvenet/valve/valvetest"
)

// ExampleComputeSingleAgentMax runs both entry points on the ten-valve scan.
func ExampleComputeSingleAgentMax() {
	g, err := valve.ParseString(valvetest.Sample)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	solo, _ := optimizer.ComputeSingleAgentMax(g, "AA", 30)
	duo, _ := optimizer.ComputeDualAgentMax(g, "AA", 26)
	fmt.Println(solo, duo)
	// Output:
	// 1651 1707
}

// ExampleDualAgentPlan prints how the two agents split the valves.
func ExampleDualAgentPlan() {
	g, _ := valve.ParseString(valvetest.Sample)

	p, err := optimizer.DualAgentPlan(g, "AA", 26, optimizer.WithWorkers(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i, a := range p.Agents {
		fmt.Printf("agent %d: %v at %v -> %d\n", i+1, a.Order, a.Minutes, a.Yield)
	}
	fmt.Println("total:", p.Yield)
	// Output:
	// agent 1: [DD HH EE] at [2 7 11] -> 943
	// agent 2: [JJ BB CC] at [3 7 9] -> 764
	// total: 1707
}
