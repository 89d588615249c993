// File: methods_clone.go
// Role: Cloning and resetting graph state.
// Determinism:
//   - Clone keeps node order, link order, link ids, the id counter and the revision.

package core

// Clone returns a deep copy of the Graph. Mutating the clone (including the
// statuses and colour groups an MST run writes) never affects g.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	clone := &Graph{
		Nodes:      make([]*Node, len(g.Nodes)),
		Links:      make([]*Link, len(g.Links)),
		nextLinkID: g.nextLinkID,
		revision:   g.revision,
	}
	for i, n := range g.Nodes {
		cp := *n
		clone.Nodes[i] = &cp
	}
	for i, l := range g.Links {
		cp := *l
		clone.Links[i] = &cp
	}

	return clone
}

// ResetState restores every node's ColorGroup to its ID and every link's
// Status to StatusNormal. Topology and revision are unchanged.
// Complexity: O(V + E)
func (g *Graph) ResetState() {
	for _, n := range g.Nodes {
		n.ColorGroup = n.ID
	}
	for _, l := range g.Links {
		l.Status = StatusNormal
	}
}
