// Package mem implements the memory contract the interpreter consumes:
// typed load/store primitives plus the active-region fast-fetch triple
// (region pointer, mask, prefetch cycle counts) that the step loop reads
// directly on every instruction fetch rather than going through Load16/
// Load32.
package mem

import (
	"fmt"

	"armstep/mask"
)

// Memory is the capability object the cpu package is built against. It
// never reaches into raw host memory itself.
type Memory interface {
	Load32(addr uint32) uint32
	Load16(addr uint32) uint32 // sign-extended
	Load8(addr uint32) uint32  // sign-extended
	LoadU16(addr uint32) uint32
	LoadU8(addr uint32) uint32

	Store32(addr, value uint32)
	Store16(addr, value uint32)
	Store8(addr, value uint32)

	// ActiveRegion, ActiveBase, ActiveMask and the two
	// ActivePrefetchCycles* values form the fast-dispatch triple the
	// step loop uses to fetch opcodes directly, bypassing Load16/
	// Load32. Sync must be called by the owner whenever the logical
	// region under addr may have changed (i.e. on every PC write),
	// since Go has no way to observe writes to the register file
	// implicitly. ActiveBase lets the fetch path compute the same
	// base-relative offset the typed accessors use, rather than
	// assuming the region's base happens to be size-aligned.
	ActiveRegion() []byte
	ActiveBase() uint32
	ActiveMask() uint32
	ActivePrefetchCycles16() uint64
	ActivePrefetchCycles32() uint64
	Sync(addr uint32)
}

// Region is one named, contiguously-backed span of the address space.
// Size must be a power of two; mask() is Size-1 and is what the
// accessors AND a base-relative offset with before indexing into Data.
type Region struct {
	Name string
	Base uint32
	Data []byte

	Prefetch16 uint64
	Prefetch32 uint64
}

func (r Region) mask() uint32 {
	return uint32(len(r.Data) - 1)
}

func (r Region) contains(addr uint32) bool {
	span := uint32(len(r.Data))
	return addr >= r.Base && addr < r.Base+span
}

// Bus is the concrete Memory implementation: an ordered list of Regions
// plus a cached pointer to whichever one currently backs the program
// counter, refreshed by Sync.
type Bus struct {
	Regions []Region

	active       *Region
	activeBase   uint32
	unmappedLogs int
}

// NewBus builds a Bus over the given regions. Regions are consulted in
// the order given; overlapping regions are not rejected (an address
// inside the cached active region resolves to that region, otherwise
// the first match wins), matching a simple fixed memory map rather than
// a general MMU.
func NewBus(regions []Region) *Bus {
	b := &Bus{Regions: regions}
	if len(regions) > 0 {
		b.active = &b.Regions[0]
		b.activeBase = b.Regions[0].Base
	}
	return b
}

func (b *Bus) find(addr uint32) *Region {
	for i := range b.Regions {
		if b.Regions[i].contains(addr) {
			return &b.Regions[i]
		}
	}
	return nil
}

// Sync refreshes the active-region cache for addr. The cpu package calls
// this on every write to PC; it is a no-op if addr already falls inside
// the cached region.
func (b *Bus) Sync(addr uint32) {
	if b.active != nil && b.active.contains(addr) {
		return
	}
	r := b.find(addr)
	if r == nil {
		// Leave the stale cache in place; reads fall back to the
		// slow path below and will log there.
		return
	}
	b.active = r
	b.activeBase = r.Base
}

func (b *Bus) ActiveRegion() []byte {
	if b.active == nil {
		return nil
	}
	return b.active.Data
}

func (b *Bus) ActiveBase() uint32 {
	return b.activeBase
}

func (b *Bus) ActiveMask() uint32 {
	if b.active == nil {
		return 0
	}
	return b.active.mask()
}

func (b *Bus) ActivePrefetchCycles16() uint64 {
	if b.active == nil {
		return 0
	}
	return b.active.Prefetch16
}

func (b *Bus) ActivePrefetchCycles32() uint64 {
	if b.active == nil {
		return 0
	}
	return b.active.Prefetch32
}

// unmapped handles the "memory fault" error kind: the collaborator
// returns zero and logs rather than aborting the step loop.
func (b *Bus) unmapped(op string, addr uint32) {
	if b.unmappedLogs < 32 {
		fmt.Printf("mem: %s to unmapped address %#08x\n", op, addr)
		b.unmappedLogs++
	}
}

// Load32 fetches the word containing addr. A misaligned addr does not
// raise a fault here: the word at the aligned offset is fetched and
// then rotated right by (addr&3)*8 bits, matching LDR's documented
// rotate-on-misaligned-access behavior rather than silently truncating
// the address.
func (b *Bus) Load32(addr uint32) uint32 {
	r := b.regionFor(addr)
	if r == nil {
		b.unmapped("load32", addr)
		return 0
	}
	off := (addr - r.Base) & r.mask() &^ 3
	word := uint32(r.Data[off]) |
		uint32(r.Data[off+1])<<8 |
		uint32(r.Data[off+2])<<16 |
		uint32(r.Data[off+3])<<24
	return mask.RotateRight(word, uint((addr&3)*8))
}

func (b *Bus) LoadU16(addr uint32) uint32 {
	r := b.regionFor(addr)
	if r == nil {
		b.unmapped("load16", addr)
		return 0
	}
	off := (addr - r.Base) & r.mask() &^ 1
	return uint32(r.Data[off]) | uint32(r.Data[off+1])<<8
}

func (b *Bus) Load16(addr uint32) uint32 {
	v := b.LoadU16(addr)
	return uint32(int32(int16(v)))
}

func (b *Bus) LoadU8(addr uint32) uint32 {
	r := b.regionFor(addr)
	if r == nil {
		b.unmapped("load8", addr)
		return 0
	}
	off := (addr - r.Base) & r.mask()
	return uint32(r.Data[off])
}

func (b *Bus) Load8(addr uint32) uint32 {
	v := b.LoadU8(addr)
	return uint32(int32(int8(v)))
}

func (b *Bus) Store32(addr, value uint32) {
	r := b.regionFor(addr)
	if r == nil {
		b.unmapped("store32", addr)
		return
	}
	off := (addr - r.Base) & r.mask() &^ 3
	r.Data[off] = byte(value)
	r.Data[off+1] = byte(value >> 8)
	r.Data[off+2] = byte(value >> 16)
	r.Data[off+3] = byte(value >> 24)
}

func (b *Bus) Store16(addr, value uint32) {
	r := b.regionFor(addr)
	if r == nil {
		b.unmapped("store16", addr)
		return
	}
	off := (addr - r.Base) & r.mask() &^ 1
	r.Data[off] = byte(value)
	r.Data[off+1] = byte(value >> 8)
}

func (b *Bus) Store8(addr, value uint32) {
	r := b.regionFor(addr)
	if r == nil {
		b.unmapped("store8", addr)
		return
	}
	off := (addr - r.Base) & r.mask()
	r.Data[off] = byte(value)
}

// regionFor serves the typed accessors: it prefers the cached active
// region (the common case, since PC and data accesses usually land in
// the same region) and falls back to a full scan.
func (b *Bus) regionFor(addr uint32) *Region {
	if b.active != nil && b.active.contains(addr) {
		return b.active
	}
	return b.find(addr)
}
