// File: methods_links.go
// Role: Link catalog operations (add, reweight, lookup).
// Determinism:
//   - Link ids are assigned from a monotonic counter and never reused.

package core

import "fmt"

// AddLink connects source and target with an undirected link of the given
// weight. The link starts with StatusNormal.
//
// Errors:
//   - ErrNodeNotFound   if either endpoint is unknown.
//   - ErrSelfLoop       if source == target.
//   - ErrNegativeWeight if weight < 0.
//   - ErrDuplicateLink  if the unordered pair is already linked.
//
// Complexity: O(E) for the duplicate check.
func (g *Graph) AddLink(source, target int, weight float64) (*Link, error) {
	if _, ok := g.Node(source); !ok {
		return nil, fmt.Errorf("AddLink(%d, %d): source: %w", source, target, ErrNodeNotFound)
	}
	if _, ok := g.Node(target); !ok {
		return nil, fmt.Errorf("AddLink(%d, %d): target: %w", source, target, ErrNodeNotFound)
	}
	if source == target {
		return nil, fmt.Errorf("AddLink(%d, %d): %w", source, target, ErrSelfLoop)
	}
	if weight < 0 {
		return nil, fmt.Errorf("AddLink(%d, %d): weight=%g: %w", source, target, weight, ErrNegativeWeight)
	}
	if g.HasLink(source, target) {
		return nil, fmt.Errorf("AddLink(%d, %d): %w", source, target, ErrDuplicateLink)
	}

	l := &Link{ID: g.nextLinkID, Source: source, Target: target, Weight: weight, Status: StatusNormal}
	g.nextLinkID++
	g.Links = append(g.Links, l)
	g.revision++

	return l, nil
}

// SetWeight changes the weight of link id and bumps the revision, since
// the MST order depends on weights. Setting the current weight is a no-op.
//
// Errors:
//   - ErrLinkNotFound   if id is unknown.
//   - ErrNegativeWeight if weight < 0.
func (g *Graph) SetWeight(id int, weight float64) error {
	l, ok := g.Link(id)
	if !ok {
		return fmt.Errorf("SetWeight(%d): %w", id, ErrLinkNotFound)
	}
	if weight < 0 {
		return fmt.Errorf("SetWeight(%d): weight=%g: %w", id, weight, ErrNegativeWeight)
	}
	if l.Weight == weight {
		return nil
	}
	l.Weight = weight
	g.revision++

	return nil
}

// HasLink reports whether u and v are linked, in either direction.
func (g *Graph) HasLink(u, v int) bool {
	for _, l := range g.Links {
		if (l.Source == u && l.Target == v) || (l.Source == v && l.Target == u) {
			return true
		}
	}

	return false
}

// Link returns the link with the given id.
// Complexity: O(E).
func (g *Graph) Link(id int) (*Link, bool) {
	for _, l := range g.Links {
		if l.ID == id {
			return l, true
		}
	}

	return nil, false
}

// LinkCount returns the number of links.
func (g *Graph) LinkCount() int { return len(g.Links) }
