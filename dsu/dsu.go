// Package dsu implements a disjoint-set union (union-find) structure over
// the fixed universe 0..size-1.
//
// Find uses iterative path compression and Union merges by rank, giving
// amortized near-constant time per operation. The structure only grows
// by merging; there is no deletion.
package dsu

import (
	"errors"
	"fmt"
)

// ErrOutOfRange indicates an element outside [0, size).
var ErrOutOfRange = errors.New("dsu: element out of range")

// ErrNegativeSize indicates a negative universe size passed to New.
var ErrNegativeSize = errors.New("dsu: negative size")

// DSU is a disjoint-set forest. The zero value is an empty universe.
// It is not safe for concurrent use.
type DSU struct {
	parent []int
	rank   []uint8
	sets   int
}

// New returns a DSU with size singleton sets.
// Complexity: O(size).
func New(size int) (*DSU, error) {
	if size < 0 {
		return nil, fmt.Errorf("New(%d): %w", size, ErrNegativeSize)
	}
	d := &DSU{
		parent: make([]int, size),
		rank:   make([]uint8, size),
		sets:   size,
	}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d, nil
}

// Size returns the number of elements in the universe.
func (d *DSU) Size() int { return len(d.parent) }

// Sets returns the current number of disjoint sets.
func (d *DSU) Sets() int { return d.sets }

// Find returns the representative of the set containing x. Every node on
// the path from x to the root is rewired to point directly at the root.
func (d *DSU) Find(x int) (int, error) {
	if x < 0 || x >= len(d.parent) {
		return 0, fmt.Errorf("Find(%d): size=%d: %w", x, len(d.parent), ErrOutOfRange)
	}

	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}
	// Second pass: compress.
	for x != root {
		x, d.parent[x] = d.parent[x], root
	}

	return root, nil
}

// Union merges the sets containing x and y. It is a no-op when they are
// already joined. Which root survives is unspecified.
func (d *DSU) Union(x, y int) error {
	rx, err := d.Find(x)
	if err != nil {
		return fmt.Errorf("Union(%d, %d): %w", x, y, err)
	}
	ry, err := d.Find(y)
	if err != nil {
		return fmt.Errorf("Union(%d, %d): %w", x, y, err)
	}
	if rx == ry {
		return nil
	}

	// Attach the shallower tree under the deeper one.
	switch {
	case d.rank[rx] < d.rank[ry]:
		d.parent[rx] = ry
	case d.rank[rx] > d.rank[ry]:
		d.parent[ry] = rx
	default:
		d.parent[ry] = rx
		d.rank[rx]++
	}
	d.sets--

	return nil
}

// Same reports whether x and y belong to the same set.
func (d *DSU) Same(x, y int) (bool, error) {
	rx, err := d.Find(x)
	if err != nil {
		return false, err
	}
	ry, err := d.Find(y)
	if err != nil {
		return false, err
	}

	return rx == ry, nil
}
