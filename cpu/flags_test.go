package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddFlagsCarry(t *testing.T) {
	m, n := uint32(0xFFFF_FFFF), uint32(0x0000_0001)
	d := m + n
	f := AddFlags(m, n, d)
	assert.Equal(t, uint32(0), d)
	assert.True(t, f.Z)
	assert.False(t, f.N)
	assert.True(t, f.C)
	assert.False(t, f.V)
}

func TestSubFlagsSignedOverflow(t *testing.T) {
	m, n := uint32(0x8000_0000), uint32(0x0000_0001)
	d := m - n
	f := SubFlags(m, n, d)
	assert.Equal(t, uint32(0x7FFF_FFFF), d)
	assert.False(t, f.N)
	assert.False(t, f.Z)
	assert.True(t, f.C)
	assert.True(t, f.V)
}

func TestSubFlagsNoBorrow(t *testing.T) {
	f := SubFlags(5, 3, 2)
	assert.True(t, f.C)
	f = SubFlags(3, 5, 0xFFFF_FFFE) // 3-5 mod 2^32
	assert.False(t, f.C)
}

func TestNeutralFlagsLeavesCV(t *testing.T) {
	p := &PSW{C: true, V: true}
	p.applyNZ(NeutralFlags(0))
	assert.True(t, p.Z)
	assert.False(t, p.N)
	assert.True(t, p.C)
	assert.True(t, p.V)
}
