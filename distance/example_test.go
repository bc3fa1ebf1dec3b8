package distance_test

import (
	"fmt"

	"github.com/katalvlaran/valvenet/distance"
	"github.com/katalvlaran/valvenet/valve"
)

// ExampleCompute measures a small corridor with a side branch:
//
//	AA───BB───CC
//	      │
//	      DD
func ExampleCompute() {
	g := valve.NewGraph()
	_ = g.AddValve("AA", 0, "BB")
	_ = g.AddValve("BB", 0, "AA", "CC", "DD")
	_ = g.AddValve("CC", 5, "BB")
	_ = g.AddValve("DD", 7, "BB")

	dm, err := distance.Compute(g, []string{"AA", "CC", "DD"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, a := range dm.IDs() {
		row := make([]int, 0, dm.Len())
		for _, b := range dm.IDs() {
			d, _ := dm.Between(a, b)
			row = append(row, d)
		}
		fmt.Println(a, row)
	}
	// Output:
	// AA [0 2 2]
	// CC [2 0 2]
	// DD [2 2 0]
}
