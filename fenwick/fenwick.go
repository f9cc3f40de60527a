// Package fenwick implements a binary indexed tree of int64 sums. Index walks
// step with the rightmost-bit primitives: upward by adding the lowest set bit,
// downward by clearing it.
//
// A Tree is not safe for concurrent mutation.
package fenwick

import (
	"github.com/zeebo/errs/v2"

	"storj.io/rightmost"
)

type Tree struct {
	cells []int64 // 1-based, cells[0] is unused
}

// New returns a tree of n zero cells.
func New(n int) (*Tree, error) {
	if n < 0 {
		return nil, errs.Errorf("negative size %d", n)
	}
	return &Tree{cells: make([]int64, n+1)}, nil
}

// FromSlice returns a tree whose cells hold vals, built in linear time.
func FromSlice(vals []int64) *Tree {
	t := &Tree{cells: make([]int64, len(vals)+1)}
	copy(t.cells[1:], vals)
	for i := int64(1); i < int64(len(t.cells)); i++ {
		if p := i + rightmost.IsolateLowestSetBit(i); p < int64(len(t.cells)) {
			t.cells[p] += t.cells[i]
		}
	}
	return t
}

func (t *Tree) Len() int { return len(t.cells) - 1 }

// Add adds delta to cell i.
func (t *Tree) Add(i int, delta int64) error {
	if i < 0 || i >= t.Len() {
		return errs.Errorf("index %d out of range [0, %d)", i, t.Len())
	}
	for j := int64(i + 1); j < int64(len(t.cells)); j += rightmost.IsolateLowestSetBit(j) {
		t.cells[j] += delta
	}
	return nil
}

// PrefixSum returns the sum of cells [0, i).
func (t *Tree) PrefixSum(i int) (int64, error) {
	if i < 0 || i > t.Len() {
		return 0, errs.Errorf("prefix %d out of range [0, %d]", i, t.Len())
	}
	return t.prefix(i), nil
}

// RangeSum returns the sum of cells [lo, hi).
func (t *Tree) RangeSum(lo, hi int) (int64, error) {
	if lo < 0 || hi > t.Len() || lo > hi {
		return 0, errs.Errorf("range [%d, %d) out of range [0, %d]", lo, hi, t.Len())
	}
	return t.prefix(hi) - t.prefix(lo), nil
}

// Get returns the value of cell i.
func (t *Tree) Get(i int) (int64, error) {
	if i < 0 || i >= t.Len() {
		return 0, errs.Errorf("index %d out of range [0, %d)", i, t.Len())
	}
	return t.prefix(i+1) - t.prefix(i), nil
}

// LowerBound returns the smallest i such that the sum of cells [0, i] is at
// least target, or Len() if there is none. Cells must be non-negative.
func (t *Tree) LowerBound(target int64) int {
	n := int64(t.Len())
	if n == 0 {
		return 0
	}

	pos := int64(0)
	for step := int64(1) << rightmost.HighestSetBitIndex(n); step > 0; step >>= 1 {
		if next := pos + step; next <= n && t.cells[next] < target {
			pos = next
			target -= t.cells[next]
		}
	}
	return int(pos)
}

func (t *Tree) prefix(i int) (sum int64) {
	for j := int64(i); j > 0; j = rightmost.ClearLowestSetBit(j) {
		sum += t.cells[j]
	}
	return sum
}
