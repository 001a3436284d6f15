package mask

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBits(t *testing.T) {
	v := uint32(0b1011_0110)
	assert.Equal(t, uint32(0b110), Bits(v, 0, 2))
	assert.Equal(t, uint32(0b1011), Bits(v, 4, 7))
	assert.Equal(t, v, Bits(v, 0, 31))
}

func TestBitsPanicsOnBadRange(t *testing.T) {
	assert.Panics(t, func() { Bits(0, 5, 2) })
	assert.Panics(t, func() { Bits(0, 0, 32) })
}

func TestBit(t *testing.T) {
	v := uint32(0x8000_0001)
	assert.True(t, Bit(v, 0))
	assert.True(t, Bit(v, 31))
	assert.False(t, Bit(v, 1))
}

func TestSetClear(t *testing.T) {
	v := uint32(0)
	v = Set(v, 3)
	assert.Equal(t, uint32(0x8), v)
	v = Clear(v, 3)
	assert.Equal(t, uint32(0), v)
}

func TestSignExtend(t *testing.T) {
	assert.Equal(t, uint32(0xFFFF_FFFF), SignExtend(0xFF, 8))
	assert.Equal(t, uint32(0x0000_007F), SignExtend(0x7F, 8))
	assert.Equal(t, uint32(0xFFFF_FE00), SignExtend(0x600, 11))
}

func TestRotateRight(t *testing.T) {
	assert.Equal(t, uint32(0x8000_0000), RotateRight(1, 1))
	assert.Equal(t, uint32(1), RotateRight(0x8000_0000, 31))
}
