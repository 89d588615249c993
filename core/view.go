// File: view.go
// Role: Non-mutating read-only views over the current graph state.
// Concurrency:
//   - Pure reads; callers must not mutate the graph concurrently.

package core

// ColorGroups returns the number of distinct ColorGroup values.
// Complexity: O(V)
func (g *Graph) ColorGroups() int {
	seen := make(map[int]struct{}, len(g.Nodes))
	for _, n := range g.Nodes {
		seen[n.ColorGroup] = struct{}{}
	}

	return len(seen)
}

// Partition groups node ids by ColorGroup. Groups and their members are
// listed in ascending node id order of their first member.
// Complexity: O(V)
func (g *Graph) Partition() [][]int {
	index := make(map[int]int, len(g.Nodes))
	var out [][]int
	for _, n := range g.Nodes {
		i, ok := index[n.ColorGroup]
		if !ok {
			i = len(out)
			index[n.ColorGroup] = i
			out = append(out, nil)
		}
		out[i] = append(out[i], n.ID)
	}

	return out
}

// Components counts connected components formed by the links whose status
// is not StatusInactive. Once a run has finished, the ColorGroup partition
// must match these components exactly.
//
// Breadth-first search over an adjacency list built on the fly.
// Complexity: O(V + E)
func (g *Graph) Components() int {
	n := len(g.Nodes)
	adj := make(map[int][]int, n)
	for _, l := range g.Links {
		if l.Status == StatusInactive {
			continue
		}
		adj[l.Source] = append(adj[l.Source], l.Target)
		adj[l.Target] = append(adj[l.Target], l.Source)
	}

	visited := make(map[int]bool, n)
	queue := make([]int, 0, n)
	count := 0
	for _, start := range g.Nodes {
		if visited[start.ID] {
			continue
		}
		count++
		visited[start.ID] = true
		queue = append(queue[:0], start.ID)
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			for _, v := range adj[u] {
				if !visited[v] {
					visited[v] = true
					queue = append(queue, v)
				}
			}
		}
	}

	return count
}
