// Package kruskalview records and replays Kruskal's minimum spanning tree
// algorithm one step at a time.
//
// What is kruskalview?
//
//	An algorithm-history engine for teaching and visualisation:
//		• Graph model: nodes with colour groups, links with a display status
//		• DSU: disjoint-set union with path compression and union by rank
//		• MST history engine: Kruskal's algorithm as a list of full-state snapshots
//		• Patch applier: jump to any step in O(V + E), forwards or backwards
//
// Every snapshot ("patch") stores the colour group of each node and the
// status of each link, so seeking never replays earlier steps:
//
//	h, _ := kruskal.Run(g)          // g ends at the final state
//	_ = history.Seek(g, h, 3)       // g now shows step 3
//	_ = history.Seek(g, h, 0)       // back to "start"
//
// Packages:
//
//	core/      - Graph, Node, Link and the editing operations
//	dsu/       - disjoint-set union over 0..n-1
//	kruskal/   - Run, Summarize and the step message catalogs
//	history/   - Patch, History, Cursor, Apply/Seek and the JSON/YAML codec
//	matrix/    - adjacency matrix input, validation and conversion
//	builder/   - random connected graphs and the built-in presets
//	config/    - YAML settings file
//
// Quick ASCII example:
//
//	    0───1        weights: 0-1 = 1, 1-2 = 2, 0-2 = 3
//	     \ /         MST: {0-1, 1-2}, total weight 3
//	      2
//
// The kruskalview command (cmd/kruskalview) prints a history or plays it
// back in the terminal.
//
//	go install github.com/katalvlaran/kruskalview/cmd/kruskalview@latest
package kruskalview
