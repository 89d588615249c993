// File: validate.go
// Role: Precondition checks run before an algorithm takes over a graph.

package core

import (
	"fmt"
	"math"
)

// Validate checks the invariants the MST engine and the patch applier rely on:
//   - node ids are dense, Nodes[i].ID == i, no nil entries;
//   - link ids are unique, endpoints exist and differ;
//   - weights are finite and non-negative.
//
// Every failure wraps ErrMalformedGraph together with the specific sentinel
// when one applies.
// Complexity: O(V + E)
func (g *Graph) Validate() error {
	for i, n := range g.Nodes {
		if n == nil {
			return fmt.Errorf("%w: node at index %d is nil", ErrMalformedGraph, i)
		}
		if n.ID != i {
			return fmt.Errorf("%w: node at index %d has id %d", ErrMalformedGraph, i, n.ID)
		}
	}

	n := len(g.Nodes)
	ids := make(map[int]struct{}, len(g.Links))
	for i, l := range g.Links {
		if l == nil {
			return fmt.Errorf("%w: link at index %d is nil", ErrMalformedGraph, i)
		}
		if _, dup := ids[l.ID]; dup {
			return fmt.Errorf("%w: link id %d: %w", ErrMalformedGraph, l.ID, ErrDuplicateLink)
		}
		ids[l.ID] = struct{}{}
		if l.Source < 0 || l.Source >= n || l.Target < 0 || l.Target >= n {
			return fmt.Errorf("%w: link %d (%d-%d): %w", ErrMalformedGraph, l.ID, l.Source, l.Target, ErrNodeNotFound)
		}
		if l.Source == l.Target {
			return fmt.Errorf("%w: link %d: %w", ErrMalformedGraph, l.ID, ErrSelfLoop)
		}
		if l.Weight < 0 || math.IsNaN(l.Weight) || math.IsInf(l.Weight, 0) {
			return fmt.Errorf("%w: link %d weight=%g: %w", ErrMalformedGraph, l.ID, l.Weight, ErrNegativeWeight)
		}
	}

	return nil
}
