package builder_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/kruskalview/builder"
	"github.com/katalvlaran/kruskalview/kruskal"
	"github.com/katalvlaran/kruskalview/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomMatrix_ConnectedAndValid(t *testing.T) {
	for n := 1; n <= 12; n++ {
		a, err := builder.RandomMatrix(n, builder.WithSeed(int64(n)))
		require.NoError(t, err, "n=%d", n)
		require.NoError(t, matrix.Validate(a))
		require.Equal(t, n, a.Size())

		for i := 0; i < n; i++ {
			assert.Equal(t, matrix.NoEdge, a[i][i], "diagonal must stay empty")
			for j := 0; j < n; j++ {
				if a.Has(i, j) {
					assert.GreaterOrEqual(t, a[i][j], 1.0)
					assert.LessOrEqual(t, a[i][j], 10.0)
				}
			}
		}

		g, err := matrix.ToGraph(a)
		require.NoError(t, err)
		s, err := kruskal.Summarize(g)
		require.NoError(t, err)
		assert.True(t, s.Spanning, "n=%d must be connected", n)
		assert.Equal(t, 1, g.Components())

		maxEdges := n * (n - 1) / 2
		wantMin := n - 1
		if wantMin+1 <= maxEdges {
			wantMin++
		}
		assert.GreaterOrEqual(t, a.Edges(), wantMin, "n=%d", n)
		assert.LessOrEqual(t, a.Edges(), maxEdges)
	}
}

func TestRandomMatrix_Deterministic(t *testing.T) {
	a, err := builder.RandomMatrix(8, builder.WithSeed(42))
	require.NoError(t, err)
	b, err := builder.RandomMatrix(8, builder.WithSeed(42))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := builder.RandomMatrix(8, builder.WithRand(rand.New(rand.NewSource(42))))
	require.NoError(t, err)
	assert.Equal(t, a, c)
}

func TestRandomMatrix_Options(t *testing.T) {
	a, err := builder.RandomMatrix(6,
		builder.WithSeed(1),
		builder.WithWeightRange(4, 4),
		builder.WithExtraEdges(0, 0),
	)
	require.NoError(t, err)
	assert.Equal(t, 5, a.Edges(), "a bare spanning tree has n-1 links")
	for i := range a {
		for j := range a[i] {
			if a.Has(i, j) {
				assert.Equal(t, 4.0, a[i][j])
			}
		}
	}

	// More extra links than free pairs: the result is the complete graph.
	a, err = builder.RandomMatrix(5, builder.WithSeed(3), builder.WithExtraEdges(50, 50))
	require.NoError(t, err)
	assert.Equal(t, 10, a.Edges())
}

func TestRandomMatrix_Errors(t *testing.T) {
	_, err := builder.RandomMatrix(0)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightRange(5, 1) })
	assert.Panics(t, func() { builder.WithWeightRange(-1, 1) })
	assert.Panics(t, func() { builder.WithExtraEdges(-1, 0) })
}

func TestPresets(t *testing.T) {
	assert.Equal(t, []string{"decagon", "hexagon"}, builder.PresetNames())

	sizes := map[string]int{builder.PresetHexagon: 6, builder.PresetDecagon: 10}
	for name, n := range sizes {
		a, err := builder.Preset(name)
		require.NoError(t, err)
		assert.Equal(t, n, a.Size())
		require.NoError(t, matrix.Validate(a))

		g, err := matrix.ToGraph(a)
		require.NoError(t, err)
		s, err := kruskal.Summarize(g)
		require.NoError(t, err)
		assert.True(t, s.Spanning, name)
	}

	// Callers get a copy.
	a, _ := builder.Preset("HEXAGON")
	a[0][1] = 99
	b, _ := builder.Preset(builder.PresetHexagon)
	assert.Equal(t, 5.0, b[0][1])

	_, err := builder.Preset("octagon")
	assert.ErrorIs(t, err, builder.ErrUnknownPreset)
}
