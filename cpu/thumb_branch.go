package cpu

import "armstep/mask"

// condBranchHandler returns a handler bound to one of the 14 condition
// codes; format 16 replicates the same handler across the four table
// slots the offset's own low bits occupy, but cond itself must be baked
// in at table-construction time since it is not re-derivable from a
// single rawOpcode>>6 slice shared with SWI's cond==15 slot.
func condBranchHandler(cond byte) thumbHandler {
	return func(c *CPU, opcode uint16) {
		if !c.PSW.cond(cond) {
			return
		}
		offset := mask.SignExtend(uint32(mask.Bits(uint32(opcode), 0, 7)), 8) << 1
		c.writeThumbPC(c.pc() + offset)
	}
}

// opBranch implements the unconditional B: sign-extend the 11-bit
// offset, shift left 1, add to the pipeline-observed PC.
func opBranch(c *CPU, opcode uint16) {
	offset := mask.SignExtend(uint32(mask.Bits(uint32(opcode), 0, 10)), 11) << 1
	c.writeThumbPC(c.pc() + offset)
}

// opBl1 implements the first half of BL: LR <- PC + (sign-extended
// 11-bit field << 12). PC does not move; BL2 performs the actual jump.
func opBl1(c *CPU, opcode uint16) {
	field := mask.SignExtend(uint32(mask.Bits(uint32(opcode), 0, 10)), 11)
	c.Regs.Set(rLR, c.pc()+(field<<12))
}

// opBl2 implements the second half: target <- LR + (imm11 << 1); LR is
// then stashed with the return address (this instruction's address + 2,
// tagged T-mode via bit 0) before the jump, so that an interrupt landing
// between BL1 and BL2 observes the documented intermediate LR state
// rather than this one.
func opBl2(c *CPU, opcode uint16) {
	imm11 := uint32(mask.Bits(uint32(opcode), 0, 10))
	oldLR := c.Regs.Get(rLR)
	target := oldLR + (imm11 << 1)
	thisInstrAddr := c.pc() - 4
	c.Regs.Set(rLR, (thisInstrAddr+2)|1)
	c.writeThumbPC(target)
}

// opSwi16 implements SWI imm8: calls the board's software-interrupt
// hook and returns; the hook may mutate any CPU field.
func opSwi16(c *CPU, opcode uint16) {
	imm8 := byte(mask.Bits(uint32(opcode), 0, 7))
	c.Board.Swi16(imm8)
}
