package core_test

import (
	"fmt"

	"github.com/katalvlaran/kruskalview/core"
)

// ExampleGraph_RemoveLastNode shows that removing the last node also drops
// every link touching it.
func ExampleGraph_RemoveLastNode() {
	g := core.NewGraph()
	g.AddNode(0, 0)
	g.AddNode(1, 0)
	g.AddNode(2, 0)
	g.AddLink(1, 0, 5)
	g.AddLink(2, 1, 3)
	g.AddLink(2, 0, 1)

	g.RemoveLastNode()

	fmt.Println("nodes:", g.NodeCount(), "links:", g.LinkCount())
	for _, l := range g.Links {
		fmt.Printf("link %d: %d-%d w=%g\n", l.ID, l.Source, l.Target, l.Weight)
	}
	// Output:
	// nodes: 2 links: 1
	// link 0: 1-0 w=5
}
