package history

import (
	"fmt"

	"github.com/katalvlaran/kruskalview/core"
)

// Apply overwrites every node's ColorGroup and every link's Status named in
// p. Ids are resolved before anything is written: if any entry references
// an id that g does not contain, Apply returns ErrUnknownNode or
// ErrUnknownLink and leaves g untouched.
//
// Apply is idempotent and does not depend on which patch was applied before.
// Complexity: O(V + E)
func Apply(g *core.Graph, p Patch) error {
	if g == nil {
		return ErrNilGraph
	}

	links := make(map[int]*core.Link, len(g.Links))
	for _, l := range g.Links {
		links[l.ID] = l
	}

	nodeTargets := make([]*core.Node, len(p.Nodes))
	for i, ns := range p.Nodes {
		n, ok := g.Node(ns.NodeID)
		if !ok {
			return fmt.Errorf("Apply(%q): node %d: %w", p.Message, ns.NodeID, ErrUnknownNode)
		}
		nodeTargets[i] = n
	}
	linkTargets := make([]*core.Link, len(p.Links))
	for i, ls := range p.Links {
		l, ok := links[ls.LinkID]
		if !ok {
			return fmt.Errorf("Apply(%q): link %d: %w", p.Message, ls.LinkID, ErrUnknownLink)
		}
		linkTargets[i] = l
	}

	for i, n := range nodeTargets {
		n.ColorGroup = p.Nodes[i].ColorGroup
	}
	for i, l := range linkTargets {
		l.Status = p.Links[i].Status
	}

	return nil
}

// Seek applies step k of h to g after checking that g still has the
// topology h was computed against. A mismatch returns ErrStaleHistory.
func Seek(g *core.Graph, h *History, k int) error {
	if g == nil {
		return ErrNilGraph
	}
	if h.Revision() != g.Revision() {
		return fmt.Errorf("Seek(%d): history rev %d, graph rev %d: %w",
			k, h.Revision(), g.Revision(), ErrStaleHistory)
	}
	p, err := h.At(k)
	if err != nil {
		return fmt.Errorf("Seek: %w", err)
	}

	return Apply(g, p)
}
