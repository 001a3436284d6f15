package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestBus() *Bus {
	return NewBus([]Region{
		{Name: "ram", Base: 0x0300_0000, Data: make([]byte, 0x8000), Prefetch16: 1, Prefetch32: 2},
		{Name: "rom", Base: 0x0800_0000, Data: make([]byte, 0x10000), Prefetch16: 3, Prefetch32: 6},
	})
}

func TestStoreLoad32RoundTrip(t *testing.T) {
	b := newTestBus()
	b.Store32(0x0300_0010, 0xDEADBEEF)
	assert.Equal(t, uint32(0xDEADBEEF), b.Load32(0x0300_0010))
}

func TestStoreLoad16SignExtends(t *testing.T) {
	b := newTestBus()
	b.Store16(0x0300_0020, 0x8001)
	assert.Equal(t, uint32(0x8001), b.LoadU16(0x0300_0020))
	assert.Equal(t, uint32(0xFFFF8001), b.Load16(0x0300_0020))
}

func TestStoreLoad8SignExtends(t *testing.T) {
	b := newTestBus()
	b.Store8(0x0300_0030, 0xFF)
	assert.Equal(t, uint32(0xFF), b.LoadU8(0x0300_0030))
	assert.Equal(t, uint32(0xFFFFFFFF), b.Load8(0x0300_0030))
}

func TestLoad32RotatesOnMisalignedAddress(t *testing.T) {
	b := newTestBus()
	b.Store32(0x0300_0040, 0x11223344)
	// addr+1 reads the same aligned word rotated right by 8 bits.
	assert.Equal(t, uint32(0x44112233), b.Load32(0x0300_0041))
	assert.Equal(t, uint32(0x33441122), b.Load32(0x0300_0042))
	assert.Equal(t, uint32(0x22334411), b.Load32(0x0300_0043))
}

func TestUnmappedLoadReturnsZero(t *testing.T) {
	b := newTestBus()
	assert.Equal(t, uint32(0), b.Load32(0xFFFF_0000))
}

func TestSyncSwitchesActiveRegion(t *testing.T) {
	b := newTestBus()
	assert.Equal(t, uint64(1), b.ActivePrefetchCycles16())

	b.Sync(0x0800_0004)
	assert.Equal(t, uint64(3), b.ActivePrefetchCycles16())
	assert.Equal(t, uint64(6), b.ActivePrefetchCycles32())
}

func TestActiveRegionMaskMatchesSize(t *testing.T) {
	b := newTestBus()
	assert.Equal(t, uint32(0x7FFF), b.ActiveMask())
	b.Sync(0x0800_0000)
	assert.Equal(t, uint32(0xFFFF), b.ActiveMask())
}
