package fenwick

import (
	"testing"

	"github.com/zeebo/assert"
	"github.com/zeebo/mwc"
	"github.com/zeebo/pp"
)

func naivePrefix(vals []int64, i int) (sum int64) {
	for _, v := range vals[:i] {
		sum += v
	}
	return sum
}

func TestTree(t *testing.T) {
	tr, err := New(8)
	assert.NoError(t, err)
	assert.Equal(t, tr.Len(), 8)

	assert.NoError(t, tr.Add(0, 5))
	assert.NoError(t, tr.Add(3, 2))
	assert.NoError(t, tr.Add(7, 1))
	assert.NoError(t, tr.Add(3, 4))

	sum, err := tr.PrefixSum(4)
	assert.NoError(t, err)
	assert.Equal(t, sum, int64(11))

	sum, err = tr.PrefixSum(8)
	assert.NoError(t, err)
	assert.Equal(t, sum, int64(12))

	sum, err = tr.RangeSum(1, 7)
	assert.NoError(t, err)
	assert.Equal(t, sum, int64(6))

	v, err := tr.Get(3)
	assert.NoError(t, err)
	assert.Equal(t, v, int64(6))

	assert.Equal(t, tr.LowerBound(1), 0)
	assert.Equal(t, tr.LowerBound(6), 3)
	assert.Equal(t, tr.LowerBound(11), 3)
	assert.Equal(t, tr.LowerBound(12), 7)
	assert.Equal(t, tr.LowerBound(13), 8)
}

func TestTreeErrors(t *testing.T) {
	_, err := New(-1)
	assert.That(t, err != nil)

	tr, err := New(4)
	assert.NoError(t, err)

	assert.That(t, tr.Add(-1, 1) != nil)
	assert.That(t, tr.Add(4, 1) != nil)
	_, err = tr.PrefixSum(5)
	assert.That(t, err != nil)
	_, err = tr.RangeSum(3, 2)
	assert.That(t, err != nil)
	_, err = tr.Get(4)
	assert.That(t, err != nil)

	empty, err := New(0)
	assert.NoError(t, err)
	assert.Equal(t, empty.LowerBound(1), 0)
	sum, err := empty.PrefixSum(0)
	assert.NoError(t, err)
	assert.Equal(t, sum, int64(0))
}

func TestTreeMatchesNaive(t *testing.T) {
	for _, n := range []int{1, 2, 3, 7, 8, 9, 63, 64, 65, 100} {
		vals := make([]int64, n)
		for i := range vals {
			vals[i] = int64(mwc.Intn(100))
		}
		built := FromSlice(vals)

		tr, err := New(n)
		assert.NoError(t, err)
		for i, v := range vals {
			assert.NoError(t, tr.Add(i, v))
		}

		for range 2 * n {
			i := mwc.Intn(n)
			d := int64(mwc.Intn(50))
			vals[i] += d
			assert.NoError(t, tr.Add(i, d))
			assert.NoError(t, built.Add(i, d))
		}

		for i := 0; i <= n; i++ {
			want := naivePrefix(vals, i)
			got, err := tr.PrefixSum(i)
			assert.NoError(t, err)
			got2, err := built.PrefixSum(i)
			assert.NoError(t, err)
			if got != want || got2 != want {
				pp.Println(vals)
				t.Fatalf("n=%d prefix(%d): got %d/%d want %d", n, i, got, got2, want)
			}
		}

		total := naivePrefix(vals, n)
		for range 16 {
			target := int64(mwc.Intn(int(total) + 2))
			want := n
			for i := range n {
				if naivePrefix(vals, i+1) >= target {
					want = i
					break
				}
			}
			assert.Equal(t, tr.LowerBound(target), want)
		}
	}
}
