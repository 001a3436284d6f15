// Package mask provides operations to extract and manipulate ranges of bits
// from a machine word.
//
// Unlike a byte-oriented opcode table, ARM/Thumb fields are conventionally
// described by their ARM Architecture Reference Manual bit position, LSB
// first (e.g. "Rd is bits[2:0]"). So, unlike a big-endian byte-index
// convention, positions here are 0-indexed from the least-significant bit,
// and ranges are given low-bit-first.
package mask

import "math/bits"

// checkRange panics if lo > hi or hi > 31.
func checkRange(lo, hi byte) {
	if lo > hi {
		panic("mask: invalid range, lo must be <= hi")
	}
	if hi > 31 {
		panic("mask: bit position out of range for a 32-bit word")
	}
}

// Bits extracts the inclusive bit range [lo:hi] from v, right-justified.
func Bits(v uint32, lo, hi byte) uint32 {
	checkRange(lo, hi)
	width := hi - lo + 1
	m := uint32(1)<<width - 1
	return (v >> lo) & m
}

// Bit reports whether bit pos of v is set.
func Bit(v uint32, pos byte) bool {
	return v&(1<<pos) != 0
}

// Set returns v with bit pos forced to 1.
func Set(v uint32, pos byte) uint32 {
	return v | (1 << pos)
}

// Clear returns v with bit pos forced to 0.
func Clear(v uint32, pos byte) uint32 {
	return v &^ (1 << pos)
}

// SignExtend sign-extends the low (width) bits of v to a full 32-bit value,
// treating bit (width-1) as the sign bit.
func SignExtend(v uint32, width byte) uint32 {
	shift := 32 - width
	return uint32(int32(v<<shift) >> shift)
}

// RotateRight is a thin wrapper kept alongside the bit helpers above so
// callers needing ROR semantics (register-controlled rotate) don't reach
// past this package for a second bit-twiddling import.
func RotateRight(v uint32, n uint) uint32 {
	return bits.RotateLeft32(v, -int(n))
}
