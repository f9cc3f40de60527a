package rightmost

// ClearLowestSetBit returns x with its least significant 1-bit turned off. It
// returns 0 if x is 0.
func ClearLowestSetBit[W Word](x W) W { return x & (x - 1) }

// SetLowestClearBit returns x with its least significant 0-bit turned on. It
// returns x unchanged if every bit is already set.
func SetLowestClearBit[W Word](x W) W { return x | (x + 1) }

// ClearTrailingSetBits turns off the run of 1-bits starting at bit 0. It is a
// no-op when bit 0 is clear and returns 0 for -1.
func ClearTrailingSetBits[W Word](x W) W { return x & (x + 1) }

// SetTrailingClearBits turns on the run of 0-bits starting at bit 0. It is a
// no-op when bit 0 is set and returns -1 for 0.
func SetTrailingClearBits[W Word](x W) W { return x | (x - 1) }

// IsolateLowestClearBitExclusive returns a word with a single 1-bit at the
// position of the least significant 0-bit of x. It returns 0 for -1.
func IsolateLowestClearBitExclusive[W Word](x W) W { return ^x & (x + 1) }

// IsolateLowestSetBit returns a word with a single 1-bit at the position of
// the least significant 1-bit of x. It returns 0 for 0.
func IsolateLowestSetBit[W Word](x W) W { return x & -x }

// ComplementLowestSetBit returns a word with a single 0-bit at the position of
// the least significant 1-bit of x and 1-bits everywhere else. It returns -1
// for 0.
func ComplementLowestSetBit[W Word](x W) W { return ^x | (x - 1) }

// IsolateLowestSetBitComplementRegion returns a word with a single 0-bit at the
// position of the least significant 1-bit of x and 1-bits at every other
// position up to and including the most significant 1-bit of x. Bits above the
// most significant 1-bit are 0, so 0b10101000 maps to 0b11110111.
//
// For negative x the region spans the whole word and the result equals
// ComplementLowestSetBit(x). For 0 there is no set bit and the result is -1.
func IsolateLowestSetBitComplementRegion[W Word](x W) W {
	// sign extend from the highest set bit. for x == 0 the shift is the full
	// width, which yields 0 and keeps the result at -1.
	s := uint(Width[W]() - 1 - HighestSetBitIndex(x))
	ext := (x << s) >> s
	return ^ext | (x - 1)
}

// MaskTrailingClearBits returns a word with 1-bits exactly at the trailing
// 0-bits of x. It returns -1 for 0.
func MaskTrailingClearBits[W Word](x W) W { return ^x & (x - 1) }

// MaskTrailingSetBitsComplement returns a word with 0-bits exactly at the
// trailing 1-bits of x and 1-bits everywhere else.
func MaskTrailingSetBitsComplement[W Word](x W) W { return ^x | (x + 1) }

// MaskThroughLowestSetBit returns a mask of the least significant 1-bit of x
// and the 0-bits below it. It returns -1 for 0.
func MaskThroughLowestSetBit[W Word](x W) W { return x ^ (x - 1) }

// MaskThroughLowestClearBit returns a mask of the least significant 0-bit of x
// and the 1-bits below it. It returns -1 for -1.
func MaskThroughLowestClearBit[W Word](x W) W { return x ^ (x + 1) }

// ClearLowestSetRun turns off the lowest contiguous run of 1-bits in x.
func ClearLowestSetRun[W Word](x W) W { return ((x | (x - 1)) + 1) & x }
