package cpu

// stepThumb executes one T-encoding instruction. PC is advanced before
// decode so that handlers reading pc() see the architecturally correct
// lookahead value; the instruction actually being executed is fetched
// from the address PC held on entry. The fetch offset is computed
// relative to the active region's base, same as the typed Load/Store
// accessors, so a region whose base isn't a multiple of its size still
// fetches from the right bytes.
func (c *CPU) stepThumb() {
	addr := c.Regs[rPC]
	c.Regs[rPC] = addr + 2

	region := c.Mem.ActiveRegion()
	base := c.Mem.ActiveBase()
	regionMask := c.Mem.ActiveMask()
	off := (addr-base)&regionMask &^ 1
	lo := off & regionMask
	hi := (off + 1) & regionMask
	opcode := uint16(region[lo]) | uint16(region[hi])<<8

	c.tTable[opcode>>6](c, opcode)
	c.Cycles += 1 + c.Mem.ActivePrefetchCycles16()
}

// stepArm is the A-encoding equivalent. Every table slot currently
// resolves to illegalArm (SPEC_FULL.md §2), but the fetch/advance/
// dispatch/charge sequence is the real one so switching into A-mode via
// BX is fully exercised end to end.
func (c *CPU) stepArm() {
	addr := c.Regs[rPC]
	c.Regs[rPC] = addr + 4

	region := c.Mem.ActiveRegion()
	base := c.Mem.ActiveBase()
	regionMask := c.Mem.ActiveMask()
	off := (addr-base)&regionMask &^ 3
	var b [4]byte
	for i := range b {
		b[i] = region[(off+uint32(i))&regionMask]
	}
	opcode := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24

	idx := ((opcode >> 16) & 0xFF0) | ((opcode >> 4) & 0x00F)
	c.aTable[idx](c, opcode)
	c.Cycles += 1 + c.Mem.ActivePrefetchCycles32()
}

// writeThumbPC performs the T-encoding PC-write ritual: clear bit 0
// (branch targets are always halfword-aligned in T-mode; bit 1 is
// already meaningful and left alone) and resync the memory
// collaborator's active-region cache.
func (c *CPU) writeThumbPC(target uint32) {
	c.Regs[rPC] = target &^ 1
	c.Mem.Sync(c.Regs[rPC])
}

// writeArmPC performs the A-encoding PC-write ritual: align to a word
// boundary.
func (c *CPU) writeArmPC(target uint32) {
	c.Regs[rPC] = target &^ 3
	c.Mem.Sync(c.Regs[rPC])
}
