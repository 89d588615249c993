package dsu_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/kruskalview/dsu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Singletons(t *testing.T) {
	d, err := dsu.New(5)
	require.NoError(t, err)
	assert.Equal(t, 5, d.Size())
	assert.Equal(t, 5, d.Sets())

	for i := 0; i < 5; i++ {
		r, err := d.Find(i)
		require.NoError(t, err)
		assert.Equal(t, i, r)
	}

	_, err = dsu.New(-1)
	assert.ErrorIs(t, err, dsu.ErrNegativeSize)
}

func TestUnion_MergesAndIsIdempotent(t *testing.T) {
	d, err := dsu.New(4)
	require.NoError(t, err)

	require.NoError(t, d.Union(0, 1))
	require.NoError(t, d.Union(2, 3))
	assert.Equal(t, 2, d.Sets())

	same, err := d.Same(0, 1)
	require.NoError(t, err)
	assert.True(t, same)
	same, err = d.Same(1, 2)
	require.NoError(t, err)
	assert.False(t, same)

	// Re-merging the same pair changes nothing.
	require.NoError(t, d.Union(1, 0))
	assert.Equal(t, 2, d.Sets())

	require.NoError(t, d.Union(0, 3))
	assert.Equal(t, 1, d.Sets())
	r0, _ := d.Find(0)
	for i := 1; i < 4; i++ {
		ri, err := d.Find(i)
		require.NoError(t, err)
		assert.Equal(t, r0, ri)
	}
}

func TestOutOfRange(t *testing.T) {
	d, err := dsu.New(3)
	require.NoError(t, err)

	_, err = d.Find(3)
	assert.ErrorIs(t, err, dsu.ErrOutOfRange)
	_, err = d.Find(-1)
	assert.ErrorIs(t, err, dsu.ErrOutOfRange)
	assert.ErrorIs(t, d.Union(0, 7), dsu.ErrOutOfRange)
	_, err = d.Same(9, 0)
	assert.ErrorIs(t, err, dsu.ErrOutOfRange)
	assert.Equal(t, 3, d.Sets())
}

// TestLongChain exercises path compression on a deep chain; the iterative
// Find must not depend on recursion depth.
func TestLongChain(t *testing.T) {
	const n = 200000
	d, err := dsu.New(n)
	require.NoError(t, err)
	for i := 1; i < n; i++ {
		require.NoError(t, d.Union(i-1, i))
	}
	assert.Equal(t, 1, d.Sets())

	r, err := d.Find(n - 1)
	require.NoError(t, err)
	r0, err := d.Find(0)
	require.NoError(t, err)
	assert.Equal(t, r0, r)
}

// TestAgainstNaive compares random unions with a naive labelling.
func TestAgainstNaive(t *testing.T) {
	const n = 64
	rng := rand.New(rand.NewSource(7))
	d, err := dsu.New(n)
	require.NoError(t, err)
	label := make([]int, n)
	for i := range label {
		label[i] = i
	}

	for step := 0; step < 200; step++ {
		x, y := rng.Intn(n), rng.Intn(n)
		require.NoError(t, d.Union(x, y))
		from, to := label[x], label[y]
		for i := range label {
			if label[i] == from {
				label[i] = to
			}
		}
	}

	groups := make(map[int]struct{})
	for i := 0; i < n; i++ {
		groups[label[i]] = struct{}{}
		for j := 0; j < n; j++ {
			same, err := d.Same(i, j)
			require.NoError(t, err)
			assert.Equal(t, label[i] == label[j], same, "pair %d,%d", i, j)
		}
	}
	assert.Equal(t, len(groups), d.Sets())
}
