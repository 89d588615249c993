// Package kruskal runs Kruskal's minimum-spanning-tree algorithm over a
// core.Graph and records every step as a history.Patch, so that a player
// can replay the run forward, backward or at any position without running
// the algorithm again.
//
// What & Why
//
//   - Kruskal sorts all links by weight and walks them from lightest to
//     heaviest, accepting a link when its endpoints live in different
//     components (checked with package dsu) and skipping it otherwise.
//   - For visualization, each link produces two steps: the "considering"
//     snapshot while it is highlighted as active, and the accept/reject
//     snapshot. Step 0 ("start") shows every link inactive.
//   - Every patch is a full snapshot of node colour groups and link statuses,
//     so history.Apply of step k alone reproduces state k.
//
// Algorithm
//
//   - Run(g *core.Graph, opts ...Option) (*history.History, error)
//
//   - Strategy: stable sort by weight (equal weights keep insertion order),
//     union-find with path compression and union by rank, full recolour of
//     nodes to their DSU representative after every accepted link.
//
//   - Termination: as soon as |V|-1 links are accepted. Links after that
//     point are never examined and never appear as active in the history.
//
//   - Disconnected graphs: every link is examined; the result is a spanning
//     forest, visible as more than one colour group.
//
//   - Complexity: O(E log E + α(V)·E) for the algorithm, plus
//     O(steps·(V+E)) memory for the full-snapshot history.
//
// Side effects
//
//	Run writes Link.Status and Node.ColorGroup on the caller's graph and
//	leaves them at the final step. Clone the graph beforehand when the
//	original state matters; Summarize does that for you.
//
// Error Conditions
//
//	- ErrNilGraph     - graph is nil.
//	- ErrInvalidGraph - graph.Validate failed (dangling endpoint, self-loop,
//	                    duplicate link id, negative weight).
//
// Determinism
//
//	Run is a pure function of the graph's nodes, links and link order:
//	running twice over equal inputs yields identical histories.
//
// Messages
//
//	Step messages come from a Messages catalog: EnglishMessages (default)
//	or ChineseMessages, selected with WithMessages.
package kruskal
