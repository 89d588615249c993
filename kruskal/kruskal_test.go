package kruskal_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/kruskalview/core"
	"github.com/katalvlaran/kruskalview/history"
	"github.com/katalvlaran/kruskalview/kruskal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// edge is a compact fixture row: endpoints and weight.
type edge struct {
	u, v int
	w    float64
}

// buildGraph creates n nodes and the given links in order.
func buildGraph(t testing.TB, n int, edges ...edge) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		g.AddNode(0, 0)
	}
	for _, e := range edges {
		_, err := g.AddLink(e.u, e.v, e.w)
		require.NoError(t, err)
	}

	return g
}

// buildRandomGraph creates a connected graph: a random spanning chain plus
// extra links with integer weights in [1, 10] (many ties on purpose).
func buildRandomGraph(t testing.TB, rng *rand.Rand, n, extra int) *core.Graph {
	t.Helper()
	g := buildGraph(t, n)
	perm := rng.Perm(n)
	for i := 1; i < n; i++ {
		_, err := g.AddLink(perm[i-1], perm[i], float64(1+rng.Intn(10)))
		require.NoError(t, err)
	}
	for added := 0; added < extra; {
		u, v := rng.Intn(n), rng.Intn(n)
		if u == v || g.HasLink(u, v) {
			continue
		}
		_, err := g.AddLink(u, v, float64(1+rng.Intn(10)))
		require.NoError(t, err)
		added++
	}

	return g
}

func linkStatus(t *testing.T, p history.Patch, id int) core.Status {
	t.Helper()
	for _, ls := range p.Links {
		if ls.LinkID == id {
			return ls.Status
		}
	}
	t.Fatalf("link %d missing from patch %q", id, p.Message)

	return 0
}

func colorPartition(t *testing.T, g *core.Graph, p history.Patch) [][]int {
	t.Helper()
	work := g.Clone()
	require.NoError(t, history.Apply(work, p))

	return work.Partition()
}

// TestRun_Triangle walks the three-node scenario step by step:
// 0-1 (1), 1-2 (2), 0-2 (3). The third link is never examined.
func TestRun_Triangle(t *testing.T) {
	g := buildGraph(t, 3, edge{0, 1, 1}, edge{1, 2, 2}, edge{0, 2, 3})
	base := g.Clone()

	h, err := kruskal.Run(g)
	require.NoError(t, err)
	require.Equal(t, 5, h.Len())

	assert.Equal(t, []string{
		"start",
		"considering edge between 0 and 1, weight 1",
		"accepted, no cycle",
		"considering edge between 1 and 2, weight 2",
		"accepted, no cycle",
	}, h.Messages())

	p := h.Patches()
	for id := 0; id < 3; id++ {
		assert.Equal(t, core.StatusInactive, linkStatus(t, p[0], id))
	}
	assert.Equal(t, [][]int{{0}, {1}, {2}}, colorPartition(t, base, p[0]))

	assert.Equal(t, core.StatusActive, linkStatus(t, p[1], 0))
	assert.Equal(t, core.StatusNormal, linkStatus(t, p[2], 0))
	assert.Equal(t, [][]int{{0, 1}, {2}}, colorPartition(t, base, p[2]))

	assert.Equal(t, core.StatusActive, linkStatus(t, p[3], 1))
	assert.Equal(t, core.StatusNormal, linkStatus(t, p[4], 1))
	assert.Equal(t, [][]int{{0, 1, 2}}, colorPartition(t, base, p[4]))

	// Link 0-2 was never examined: it keeps its step-0 value in every patch.
	for _, step := range p {
		assert.Equal(t, core.StatusInactive, linkStatus(t, step, 2))
	}

	// The caller's graph is left at the final step.
	assert.Equal(t, 1, g.ColorGroups())
	assert.Equal(t, core.StatusNormal, g.Links[0].Status)
	assert.Equal(t, core.StatusNormal, g.Links[1].Status)
	assert.Equal(t, core.StatusInactive, g.Links[2].Status)
}

// TestRun_Disconnected: 4 nodes, only 0-1. The forest has three groups.
func TestRun_Disconnected(t *testing.T) {
	g := buildGraph(t, 4, edge{0, 1, 1})

	h, err := kruskal.Run(g)
	require.NoError(t, err)
	assert.Equal(t, 3, h.Len())
	assert.Equal(t, 3, g.ColorGroups())
	assert.Equal(t, [][]int{{0, 1}, {2}, {3}}, g.Partition())

	s, err := kruskal.Summarize(buildGraph(t, 4, edge{0, 1, 1}))
	require.NoError(t, err)
	assert.False(t, s.Spanning)
	assert.Equal(t, []int{0}, s.Links)
	assert.Equal(t, 3, s.Components)
}

func TestRun_StopsAtSpanningTree(t *testing.T) {
	// The heavy diagonal comes first in input order but last by weight.
	g := buildGraph(t, 4,
		edge{0, 2, 9},
		edge{0, 1, 1},
		edge{1, 2, 1},
		edge{0, 3, 2},
		edge{2, 3, 2},
	)
	h, err := kruskal.Run(g)
	require.NoError(t, err)

	// start + 3 accepted links x 2 steps; the tree is complete after 0-3,
	// so 2-3 and 0-2 are never examined.
	assert.Equal(t, 7, h.Len())
	assert.Equal(t, core.StatusInactive, g.Links[0].Status)
	assert.Equal(t, core.StatusInactive, g.Links[4].Status)
	for _, p := range h.Patches() {
		assert.NotEqual(t, core.StatusActive, linkStatus(t, p, 4))
	}
}

func TestRun_Reject(t *testing.T) {
	// 0-1, 1-2, then 0-2 closes a cycle before 2-3 completes the tree.
	g := buildGraph(t, 4, edge{0, 1, 1}, edge{1, 2, 2}, edge{0, 2, 3}, edge{2, 3, 4})
	h, err := kruskal.Run(g)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"start",
		"considering edge between 0 and 1, weight 1",
		"accepted, no cycle",
		"considering edge between 1 and 2, weight 2",
		"accepted, no cycle",
		"considering edge between 0 and 2, weight 3",
		"cycle detected, edge skipped",
		"considering edge between 2 and 3, weight 4",
		"accepted, no cycle",
	}, h.Messages())
	assert.Equal(t, core.StatusInactive, g.Links[2].Status)
	assert.Equal(t, 1, g.ColorGroups())
}

func TestRun_EmptyAndSingle(t *testing.T) {
	g := buildGraph(t, 3)
	h, err := kruskal.Run(g)
	require.NoError(t, err)
	assert.Equal(t, 1, h.Len())
	assert.Equal(t, []string{"start"}, h.Messages())
	assert.Equal(t, 3, g.ColorGroups())

	h, err = kruskal.Run(buildGraph(t, 1))
	require.NoError(t, err)
	assert.Equal(t, 1, h.Len())

	h, err = kruskal.Run(core.NewGraph())
	require.NoError(t, err)
	assert.Equal(t, 1, h.Len())
}

func TestRun_InvalidInput(t *testing.T) {
	_, err := kruskal.Run(nil)
	assert.ErrorIs(t, err, kruskal.ErrNilGraph)

	g := buildGraph(t, 2, edge{0, 1, 1})
	g.Links[0].Target = 5
	_, err = kruskal.Run(g)
	assert.ErrorIs(t, err, kruskal.ErrInvalidGraph)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)

	g = buildGraph(t, 2, edge{0, 1, 1})
	g.Links[0].Weight = -3
	_, err = kruskal.Run(g)
	assert.ErrorIs(t, err, core.ErrNegativeWeight)
}

// TestRun_StableTieBreak checks that equal weights are examined in input order.
func TestRun_StableTieBreak(t *testing.T) {
	g := buildGraph(t, 5,
		edge{3, 4, 2},
		edge{0, 1, 2},
		edge{1, 2, 1},
		edge{2, 3, 2},
	)
	h, err := kruskal.Run(g)
	require.NoError(t, err)

	var order []int
	for _, p := range h.Patches() {
		for _, ls := range p.Links {
			if ls.Status == core.StatusActive {
				order = append(order, ls.LinkID)
			}
		}
	}
	assert.Equal(t, []int{2, 0, 1, 3}, order)

	// Input order untouched.
	for i, l := range g.Links {
		assert.Equal(t, i, l.ID)
	}
}

func TestRun_Deterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	g := buildRandomGraph(t, rng, 12, 20)

	h1, err := kruskal.Run(g.Clone())
	require.NoError(t, err)
	h2, err := kruskal.Run(g.Clone())
	require.NoError(t, err)

	if diff := cmp.Diff(h1.Patches(), h2.Patches()); diff != "" {
		t.Errorf("histories differ (-first +second):\n%s", diff)
	}
}

// TestRun_Properties checks the length bound, MST edge count and colouring
// invariant on many random graphs.
func TestRun_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for iter := 0; iter < 50; iter++ {
		n := 2 + rng.Intn(15)
		maxExtra := n*(n-1)/2 - (n - 1)
		g := buildRandomGraph(t, rng, n, rng.Intn(maxExtra+1))
		base := g.Clone()

		h, err := kruskal.Run(g)
		require.NoError(t, err)
		assert.LessOrEqual(t, h.Len(), 1+2*len(g.Links))

		normal := 0
		for _, l := range g.Links {
			if l.Status == core.StatusNormal {
				normal++
			}
		}
		assert.Equal(t, n-1, normal, "connected graph must yield |V|-1 tree links")
		assert.Equal(t, 1, g.ColorGroups())

		// After every decision step the colouring matches the components
		// formed by non-inactive links.
		for k := 0; k < h.Len(); k += 2 {
			p, err := h.At(k)
			require.NoError(t, err)
			work := base.Clone()
			require.NoError(t, history.Apply(work, p))
			assert.Equal(t, work.Components(), work.ColorGroups(), "step %d", k)
		}

		s, err := kruskal.Summarize(base)
		require.NoError(t, err)
		assert.True(t, s.Spanning)
		assert.Equal(t, bruteForceMSTWeight(base), s.TotalWeight)
	}
}

// bruteForceMSTWeight computes the MST weight with Prim's O(V²) scan, as an
// independent oracle.
func bruteForceMSTWeight(g *core.Graph) float64 {
	n := g.NodeCount()
	const inf = 1e18
	w := make([][]float64, n)
	for i := range w {
		w[i] = make([]float64, n)
		for j := range w[i] {
			w[i][j] = inf
		}
	}
	for _, l := range g.Links {
		if l.Weight < w[l.Source][l.Target] {
			w[l.Source][l.Target], w[l.Target][l.Source] = l.Weight, l.Weight
		}
	}
	in := make([]bool, n)
	dist := make([]float64, n)
	for i := range dist {
		dist[i] = inf
	}
	dist[0] = 0
	total := 0.0
	for step := 0; step < n; step++ {
		u := -1
		for v := 0; v < n; v++ {
			if !in[v] && (u == -1 || dist[v] < dist[u]) {
				u = v
			}
		}
		in[u] = true
		total += dist[u]
		for v := 0; v < n; v++ {
			if !in[v] && w[u][v] < dist[v] {
				dist[v] = w[u][v]
			}
		}
	}

	return total
}

func TestRun_ChineseMessages(t *testing.T) {
	g := buildGraph(t, 3, edge{0, 1, 1}, edge{1, 2, 2.5}, edge{0, 2, 2})
	h, err := kruskal.Run(g, kruskal.WithMessages(kruskal.ChineseMessages))
	require.NoError(t, err)
	assert.Equal(t, []string{
		"开始",
		"选择 0 到 1，权重为 1 的边",
		"不成环，加入到最小生成树",
		"选择 0 到 2，权重为 2 的边",
		"不成环，加入到最小生成树",
	}, h.Messages())

	m, ok := kruskal.MessagesFor("zh")
	assert.True(t, ok)
	assert.Equal(t, "开始", m.Start)
	_, ok = kruskal.MessagesFor("fr")
	assert.False(t, ok)

	assert.Panics(t, func() { kruskal.WithMessages(kruskal.Messages{}) })
}
