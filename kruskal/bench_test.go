package kruskal_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/kruskalview/kruskal"
)

// BenchmarkRun measures a full recorded run on 100 vertices and 400 links.
// Snapshot cost dominates: every step copies V + E states.
func BenchmarkRun(b *testing.B) {
	g := buildRandomGraph(b, rand.New(rand.NewSource(42)), 100, 301)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = kruskal.Run(g)
	}
}
