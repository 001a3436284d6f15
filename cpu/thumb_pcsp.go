package cpu

import "armstep/mask"

// opLdr3 implements LDR3 rd, [PC, #imm8*4]: PC-relative load. The low
// two bits of PC as observed by the handler are architecturally forced
// to zero before the offset is added — the mask is applied only at this
// read site, never to the canonical stored PC.
func opLdr3(c *CPU, opcode uint16) {
	rd := byte(mask.Bits(uint32(opcode), 8, 10))
	imm8 := uint32(mask.Bits(uint32(opcode), 0, 7))
	base := c.pc() &^ 3
	c.Regs.Set(rd, c.Mem.Load32(base+imm8*4))
}

// opLdr4 implements LDR4 rd, [SP, #imm8*4].
func opLdr4(c *CPU, opcode uint16) {
	rd := byte(mask.Bits(uint32(opcode), 8, 10))
	imm8 := uint32(mask.Bits(uint32(opcode), 0, 7))
	addr := c.Regs.Get(rSP) + imm8*4
	c.Regs.Set(rd, c.Mem.Load32(addr))
}

// opStr3 implements STR3 rd, [SP, #imm8*4].
func opStr3(c *CPU, opcode uint16) {
	rd := byte(mask.Bits(uint32(opcode), 8, 10))
	imm8 := uint32(mask.Bits(uint32(opcode), 0, 7))
	addr := c.Regs.Get(rSP) + imm8*4
	c.Mem.Store32(addr, c.Regs.Get(rd))
}

// opAdd5 implements the PC-relative form of "load address": rd <- (PC
// & ~3) + imm8*4. No flags. Not named in spec.md's operation list (the
// source leaves it stub) but architecturally unambiguous, so it is
// implemented rather than left illegal.
func opAdd5(c *CPU, opcode uint16) {
	rd := byte(mask.Bits(uint32(opcode), 8, 10))
	imm8 := uint32(mask.Bits(uint32(opcode), 0, 7))
	c.Regs.Set(rd, (c.pc()&^3)+imm8*4)
}

// opAdd6 implements ADD6 rd, SP, #imm8*4. No flags.
func opAdd6(c *CPU, opcode uint16) {
	rd := byte(mask.Bits(uint32(opcode), 8, 10))
	imm8 := uint32(mask.Bits(uint32(opcode), 0, 7))
	c.Regs.Set(rd, c.Regs.Get(rSP)+imm8*4)
}

// opAdd7 implements ADD7 SP, #imm7*4.
func opAdd7(c *CPU, opcode uint16) {
	imm7 := uint32(mask.Bits(uint32(opcode), 0, 6))
	c.Regs.Set(rSP, c.Regs.Get(rSP)+imm7*4)
}

// opSub4 implements SUB4 SP, #imm7*4.
func opSub4(c *CPU, opcode uint16) {
	imm7 := uint32(mask.Bits(uint32(opcode), 0, 6))
	c.Regs.Set(rSP, c.Regs.Get(rSP)-imm7*4)
}
