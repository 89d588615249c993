// File: methods_nodes.go
// Role: Node catalog operations (append, remove last, lookup).
// Determinism:
//   - Node ids are dense and follow insertion order.
//   - RemoveLastNode removes touching links while preserving the order of the rest.

package core

import "fmt"

// AddNode appends a node at presentation position (x, y).
// The new node's ID and ColorGroup equal the previous node count.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(x, y float64) *Node {
	id := len(g.Nodes)
	n := &Node{ID: id, ColorGroup: id, X: x, Y: y}
	g.Nodes = append(g.Nodes, n)
	g.revision++

	return n
}

// RemoveLastNode removes the node with the highest id together with every
// link that touches it. Returns ErrEmptyGraph when there is nothing to remove.
// Complexity: O(E).
func (g *Graph) RemoveLastNode() (*Node, error) {
	if len(g.Nodes) == 0 {
		return nil, fmt.Errorf("RemoveLastNode: %w", ErrEmptyGraph)
	}

	last := len(g.Nodes) - 1
	removed := g.Nodes[last]
	g.Nodes[last] = nil
	g.Nodes = g.Nodes[:last]

	// Filter links in place, keeping relative order.
	kept := g.Links[:0]
	for _, l := range g.Links {
		if l.Touches(removed.ID) {
			continue
		}
		kept = append(kept, l)
	}
	for i := len(kept); i < len(g.Links); i++ {
		g.Links[i] = nil
	}
	g.Links = kept
	g.revision++

	return removed, nil
}

// Node returns the node with the given id.
// Complexity: O(1) for a dense graph, O(V) otherwise.
func (g *Graph) Node(id int) (*Node, bool) {
	if id >= 0 && id < len(g.Nodes) && g.Nodes[id] != nil && g.Nodes[id].ID == id {
		return g.Nodes[id], true
	}
	for _, n := range g.Nodes {
		if n != nil && n.ID == id {
			return n, true
		}
	}

	return nil, false
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.Nodes) }

// Revision returns the topology revision. It changes whenever a node or a
// link is added or removed; status and colour updates do not touch it.
func (g *Graph) Revision() uint64 { return g.revision }
