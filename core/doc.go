// Package core is the data model of kruskalview: nodes, links and the
// caller-owned Graph that the MST history engine runs over.
//
// What & Why
//
//   - Node carries an insertion-order id (0..n-1, also its slice index) and
//     a ColorGroup that names the connected component it belongs to at the
//     current algorithm step.
//   - Link is an undirected weighted edge with a Status:
//     normal (untouched or accepted), active (being evaluated) or
//     inactive (rejected, or not reached yet).
//   - Graph keeps nodes in id order and links in insertion order. Link order
//     is meaningful: it is the tie-break order for equal weights.
//
// Editing
//
//	g := core.NewGraph()
//	g.AddNode(0, 0)             // id 0
//	g.AddNode(1, 0)             // id 1
//	g.AddLink(1, 0, 4)          // link 0
//	g.RemoveLastNode()          // drops node 1 and link 0
//
// Every topology change bumps Graph.Revision(). Histories remember the
// revision they were computed against; replaying one after the topology
// moved on is rejected by history.Seek.
//
// Views
//
//   - ColorGroups / Partition describe the colouring.
//   - Components counts connected components over non-inactive links (BFS).
//   - Validate checks ids, endpoints and weights before an algorithm runs.
//
// Concurrency
//
//	Graph is a plain single-goroutine structure. Algorithms take exclusive
//	write access to Link.Status and Node.ColorGroup for the duration of a call.
//	Use Clone to keep a pristine copy.
package core
