// Package rightmost implements the rightmost-bit manipulation formulas over
// fixed-width two's-complement words.
//
// Every function is generic over Word so that the 32-bit and 64-bit versions
// share one body. All arithmetic wraps modulo 2^W and no function allocates,
// branches on its input, or panics.
package rightmost

import (
	"math/bits"
	"unsafe"
)

// Word is the set of signed fixed-width integers the primitives operate on.
type Word interface {
	~int32 | ~int64
}

// Width returns the number of bits in W: 32 or 64.
func Width[W Word]() int {
	var x W
	return int(unsafe.Sizeof(x)) * 8
}

// unsigned returns the bits of x zero-extended to 64 bits.
func unsigned[W Word](x W) uint64 {
	return uint64(x) & (^uint64(0) >> (64 - Width[W]()))
}

// HighestSetBitIndex returns the 0-based index of the most significant set bit
// of x within its width, or -1 if x is zero. Negative values report Width-1.
func HighestSetBitIndex[W Word](x W) int {
	return bits.Len64(unsigned(x)) - 1
}

// LowestSetBitIndex returns the number of trailing zero bits of x, or -1 if x
// is zero.
func LowestSetBitIndex[W Word](x W) int {
	if x == 0 {
		return -1
	}
	return bits.TrailingZeros64(uint64(x))
}
