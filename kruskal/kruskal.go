package kruskal

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/katalvlaran/kruskalview/core"
	"github.com/katalvlaran/kruskalview/dsu"
	"github.com/katalvlaran/kruskalview/history"
)

// Run executes Kruskal's algorithm over g and returns the recorded history.
//
// Side effect: Run takes exclusive write access to g for the duration of the
// call. Link statuses and node colour groups are left at the values of the
// last recorded step. The order of g.Links is never changed. Clone the graph
// first if a pristine copy is needed.
//
// Error Conditions:
//   - ErrNilGraph     : g == nil.
//   - ErrInvalidGraph : g.Validate() failed (wrapped).
//
// Steps:
//  1. Stable sort a copy of the links by ascending weight; equal weights keep
//     their order in g.Links.
//  2. Mark every link inactive, reset colour groups to node ids, record "start".
//  3. For each sorted link, until |V|-1 links are accepted:
//     mark it active and record; then, if its endpoints are in different DSU
//     sets, union them, recolour every node to its representative, mark the
//     link normal and record an accept step; otherwise mark it inactive and
//     record a reject step.
//
// A disconnected graph exhausts its links and ends with a spanning forest.
//
// Complexity: O(E log E) sort + O(E·α(V)) union-find + O(V) recolour per
// accepted link + O(V + E) per recorded snapshot.
// History length: at most 1 + 2·E.
func Run(g *core.Graph, opts ...Option) (*history.History, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidGraph, err)
	}

	r := &runner{
		g:    g,
		msgs: o.Messages,
		log:  o.Logger,
		rec:  history.NewRecorder(g.Revision()),
	}
	if err := r.run(); err != nil {
		return nil, err
	}

	return r.rec.Done(), nil
}

// runner holds the mutable state of one run.
type runner struct {
	g        *core.Graph
	msgs     Messages
	log      *slog.Logger
	rec      *history.Recorder
	sets     *dsu.DSU
	accepted int
}

func (r *runner) run() error {
	sorted := make([]*core.Link, len(r.g.Links))
	copy(sorted, r.g.Links)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight < sorted[j].Weight
	})

	for _, l := range sorted {
		l.Status = core.StatusInactive
	}
	for _, n := range r.g.Nodes {
		n.ColorGroup = n.ID
	}
	r.record(r.msgs.Start)

	var err error
	if r.sets, err = dsu.New(len(r.g.Nodes)); err != nil {
		return err
	}

	target := len(r.g.Nodes) - 1
	for _, l := range sorted {
		if r.accepted >= target {
			break
		}
		if err = r.examine(l); err != nil {
			return fmt.Errorf("kruskal: link %d: %w", l.ID, err)
		}
	}

	return nil
}

// examine records the active step for l, then accepts or rejects it.
func (r *runner) examine(l *core.Link) error {
	l.Status = core.StatusActive
	r.record(r.msgs.Consider(l.Source, l.Target, l.Weight))

	same, err := r.sets.Same(l.Source, l.Target)
	if err != nil {
		return err
	}
	if same {
		l.Status = core.StatusInactive
		r.record(r.msgs.Reject)

		return nil
	}

	if err = r.sets.Union(l.Source, l.Target); err != nil {
		return err
	}
	// Full recolour: the absorbed component takes the new representative.
	for _, n := range r.g.Nodes {
		if n.ColorGroup, err = r.sets.Find(n.ID); err != nil {
			return err
		}
	}
	l.Status = core.StatusNormal
	r.accepted++
	r.record(r.msgs.Accept)

	return nil
}

func (r *runner) record(msg string) {
	step := r.rec.Record(r.g, msg)
	if r.log != nil {
		r.log.LogAttrs(context.Background(), slog.LevelDebug, "kruskal step",
			slog.Int("step", step),
			slog.Int("accepted", r.accepted),
			slog.String("msg", msg))
	}
}
