package dsu_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/kruskalview/dsu"
)

// BenchmarkUnionFind measures random unions followed by finds on 10k elements.
func BenchmarkUnionFind(b *testing.B) {
	const n = 10000
	rng := rand.New(rand.NewSource(1))
	pairs := make([][2]int, n)
	for i := range pairs {
		pairs[i] = [2]int{rng.Intn(n), rng.Intn(n)}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d, _ := dsu.New(n)
		for _, p := range pairs {
			_ = d.Union(p[0], p[1])
		}
		for x := 0; x < n; x++ {
			_, _ = d.Find(x)
		}
	}
}
