// Package bitmap provides single-word bitmaps and a free-slot pool built on the
// rightmost-bit primitives.
package bitmap

import (
	"fmt"
	"iter"
	"sync/atomic"

	"storj.io/rightmost"
)

// B64 is a 64 slot bitmap. Bit idx set means slot idx is occupied. Methods with
// the Atomic prefix may be called concurrently, the rest may not.
type B64 struct{ b int64 }

func New64(v int64) B64 { return B64{v} }

func (b *B64) AtomicClone() B64        { return B64{atomic.LoadInt64(&b.b)} }
func (b *B64) AtomicSet(idx uint)      { atomic.OrInt64(&b.b, 1<<(idx&63)) }
func (b *B64) AtomicClear(idx uint)    { atomic.AndInt64(&b.b, ^(1 << (idx & 63))) }
func (b *B64) AtomicHas(idx uint) bool { return atomic.LoadInt64(&b.b)&(1<<(idx&63)) != 0 }
func (b *B64) ClearLowest()            { b.b = rightmost.ClearLowestSetBit(b.b) }
func (b *B64) Set(idx uint)            { b.b |= 1 << (idx & 63) }
func (b *B64) Clear(idx uint)          { b.b &^= 1 << (idx & 63) }
func (b B64) Has(idx uint) bool        { return b.b&(1<<(idx&63)) != 0 }
func (b B64) Word() int64              { return b.b }
func (b B64) Empty() bool              { return b.b == 0 }
func (b B64) Full() bool               { return b.b == -1 }
func (b B64) Lowest() int              { return rightmost.LowestSetBitIndex(b.b) }
func (b B64) Highest() int             { return rightmost.HighestSetBitIndex(b.b) }
func (b B64) LowestClear() int         { return lowestClear(b.b) }
func (b B64) All() iter.Seq[int]       { return all(b.b) }
func (b B64) String() string           { return fmt.Sprintf("%064b", uint64(b.b)) }

// Next removes the lowest set bit and returns its index. ok is false if the
// bitmap was empty.
func (b *B64) Next() (idx int, ok bool) {
	idx = b.Lowest()
	b.ClearLowest()
	return idx, idx >= 0
}

// AtomicClaim sets the lowest clear bit and returns its index. ok is false if
// every bit was already set.
func (b *B64) AtomicClaim() (idx int, ok bool) {
	for {
		old := atomic.LoadInt64(&b.b)
		if old == -1 {
			return -1, false
		}
		if atomic.CompareAndSwapInt64(&b.b, old, rightmost.SetLowestClearBit(old)) {
			return lowestClear(old), true
		}
	}
}

// AtomicRelease clears bit idx and reports whether it was set.
func (b *B64) AtomicRelease(idx uint) bool {
	mask := int64(1) << (idx & 63)
	return atomic.AndInt64(&b.b, ^mask)&mask != 0
}

// B32 is a 32 slot bitmap with the same semantics as B64.
type B32 struct{ b int32 }

func New32(v int32) B32 { return B32{v} }

func (b *B32) AtomicClone() B32        { return B32{atomic.LoadInt32(&b.b)} }
func (b *B32) AtomicSet(idx uint)      { atomic.OrInt32(&b.b, 1<<(idx&31)) }
func (b *B32) AtomicClear(idx uint)    { atomic.AndInt32(&b.b, ^(1 << (idx & 31))) }
func (b *B32) AtomicHas(idx uint) bool { return atomic.LoadInt32(&b.b)&(1<<(idx&31)) != 0 }
func (b *B32) ClearLowest()            { b.b = rightmost.ClearLowestSetBit(b.b) }
func (b *B32) Set(idx uint)            { b.b |= 1 << (idx & 31) }
func (b *B32) Clear(idx uint)          { b.b &^= 1 << (idx & 31) }
func (b B32) Has(idx uint) bool        { return b.b&(1<<(idx&31)) != 0 }
func (b B32) Word() int32              { return b.b }
func (b B32) Empty() bool              { return b.b == 0 }
func (b B32) Full() bool               { return b.b == -1 }
func (b B32) Lowest() int              { return rightmost.LowestSetBitIndex(b.b) }
func (b B32) Highest() int             { return rightmost.HighestSetBitIndex(b.b) }
func (b B32) LowestClear() int         { return lowestClear(b.b) }
func (b B32) All() iter.Seq[int]       { return all(b.b) }
func (b B32) String() string           { return fmt.Sprintf("%032b", uint32(b.b)) }

func (b *B32) Next() (idx int, ok bool) {
	idx = b.Lowest()
	b.ClearLowest()
	return idx, idx >= 0
}

func (b *B32) AtomicClaim() (idx int, ok bool) {
	for {
		old := atomic.LoadInt32(&b.b)
		if old == -1 {
			return -1, false
		}
		if atomic.CompareAndSwapInt32(&b.b, old, rightmost.SetLowestClearBit(old)) {
			return lowestClear(old), true
		}
	}
}

func (b *B32) AtomicRelease(idx uint) bool {
	mask := int32(1) << (idx & 31)
	return atomic.AndInt32(&b.b, ^mask)&mask != 0
}

func lowestClear[W rightmost.Word](x W) int {
	return rightmost.LowestSetBitIndex(rightmost.IsolateLowestClearBitExclusive(x))
}

func all[W rightmost.Word](x W) iter.Seq[int] {
	return func(yield func(int) bool) {
		for u := x; u != 0; u = rightmost.ClearLowestSetBit(u) {
			if !yield(rightmost.LowestSetBitIndex(u)) {
				return
			}
		}
	}
}
