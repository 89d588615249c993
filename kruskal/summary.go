package kruskal

import "github.com/katalvlaran/kruskalview/core"

// Summary describes the spanning tree (or forest) a finished run left in
// the graph.
//
// Fields:
//
//	Links       - ids of accepted links, in acceptance order.
//	TotalWeight - sum of accepted link weights.
//	Components  - number of distinct colour groups after the run.
//	Spanning    - true when Links has |V|-1 entries (single tree).
//	Steps       - history length.
type Summary struct {
	Links       []int
	TotalWeight float64
	Components  int
	Spanning    bool
	Steps       int
}

// Summarize runs Kruskal on a clone of g, leaving g untouched, and reports
// the resulting tree. Acceptance order follows the history.
func Summarize(g *core.Graph, opts ...Option) (Summary, error) {
	work := g.Clone()
	h, err := Run(work, opts...)
	if err != nil {
		return Summary{}, err
	}

	s := Summary{Components: work.ColorGroups(), Steps: h.Len()}
	prev := make(map[int]core.Status, len(work.Links))
	for _, p := range h.Patches() {
		for _, ls := range p.Links {
			// A link turns normal only when accepted; record the transition.
			if ls.Status == core.StatusNormal && prev[ls.LinkID] == core.StatusActive {
				s.Links = append(s.Links, ls.LinkID)
			}
			prev[ls.LinkID] = ls.Status
		}
	}
	for _, id := range s.Links {
		if l, ok := work.Link(id); ok {
			s.TotalWeight += l.Weight
		}
	}
	s.Spanning = len(s.Links) == len(work.Nodes)-1

	return s, nil
}
