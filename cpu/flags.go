package cpu

// AddFlags computes N/Z/C/V for d = m + n (modular 32-bit addition). C is
// the unsigned carry out of bit 31; V is signed overflow, true only when
// the operands share a sign and the result's sign differs from theirs.
func AddFlags(m, n, d uint32) Flags {
	carry := (uint64(m) + uint64(n)) > 0xFFFFFFFF
	overflow := (m>>31 == n>>31) && (d>>31 != m>>31)
	return Flags{
		N: d&0x8000_0000 != 0,
		Z: d == 0,
		C: carry,
		V: overflow,
	}
}

// SubFlags computes N/Z/C/V for d = m - n. C is "no borrow": true iff m,
// viewed as unsigned, is >= n. This is the architectural inverse of the
// usual subtract-with-borrow carry meaning.
func SubFlags(m, n, d uint32) Flags {
	noBorrow := m >= n
	overflow := (m>>31 != n>>31) && (d>>31 != m>>31)
	return Flags{
		N: d&0x8000_0000 != 0,
		Z: d == 0,
		C: noBorrow,
		V: overflow,
	}
}

// NeutralFlags computes N/Z for a logical result; C and V are left at
// whatever the caller already holds; applyNZ on PSW enforces this by
// only touching the two fields that change.
func NeutralFlags(d uint32) Flags {
	return Flags{
		N: d&0x8000_0000 != 0,
		Z: d == 0,
	}
}
