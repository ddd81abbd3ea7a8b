package trip_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/blizzard/gridgraph"
	"github.com/katalvlaran/blizzard/trip"
)

// ExamplePlanner_RoundTrip crosses the sample valley, returns, and crosses again.
func ExamplePlanner_RoundTrip() {
	g, _ := gridgraph.ParseString(`#.######
#>>.<^<#
#.<..<<#
#>v.><>#
#<^v^^>#
######.#`)
	p, _ := trip.New(g)

	rep, err := p.RoundTrip(context.Background(), 3, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i, leg := range rep.Legs {
		fmt.Printf("leg %d: %v -> %v, minutes %d..%d\n", i, leg.Start, leg.Goal, leg.Departure, leg.Arrival)
	}
	fmt.Println("total:", rep.Arrival)
	// Output:
	// leg 0: 1,0 -> 6,5, minutes 0..18
	// leg 1: 6,5 -> 1,0, minutes 18..41
	// leg 2: 1,0 -> 6,5, minutes 41..54
	// total: 54
}
