package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/kruskalview/matrix"
)

// ExampleToGraph shows the lower-triangle scan that assigns link ids.
func ExampleToGraph() {
	a := matrix.Adjacency{
		{-1, 1, 3},
		{1, -1, 2},
		{3, 2, -1},
	}
	g, err := matrix.ToGraph(a)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, l := range g.Links {
		fmt.Printf("link %d: %d-%d w=%g\n", l.ID, l.Source, l.Target, l.Weight)
	}
	// Output:
	// link 0: 1-0 w=1
	// link 1: 2-0 w=3
	// link 2: 2-1 w=2
}
