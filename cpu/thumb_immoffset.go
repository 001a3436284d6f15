package cpu

import "armstep/mask"

// immOffsetOperands decodes formats 9/10's shared [rm, #imm5*scale]
// shape; naming follows the encoded fields (the base register field is
// called rm here, matching §4.7).
func immOffsetOperands(c *CPU, opcode uint16, scale uint32) (addr uint32, rd byte) {
	imm5 := uint32(mask.Bits(uint32(opcode), 6, 10))
	rm := byte(mask.Bits(uint32(opcode), 3, 5))
	rd = byte(mask.Bits(uint32(opcode), 0, 2))
	addr = c.Regs.Get(rm) + imm5*scale
	return addr, rd
}

// opLdr1/opStr1: imm5 * 4.
func opLdr1(c *CPU, opcode uint16) {
	addr, rd := immOffsetOperands(c, opcode, 4)
	c.Regs.Set(rd, c.Mem.Load32(addr))
}

func opStr1(c *CPU, opcode uint16) {
	addr, rd := immOffsetOperands(c, opcode, 4)
	c.Mem.Store32(addr, c.Regs.Get(rd))
}

// opLdrb1/opStrb1: imm5 * 1.
func opLdrb1(c *CPU, opcode uint16) {
	addr, rd := immOffsetOperands(c, opcode, 1)
	c.Regs.Set(rd, c.Mem.LoadU8(addr))
}

func opStrb1(c *CPU, opcode uint16) {
	addr, rd := immOffsetOperands(c, opcode, 1)
	c.Mem.Store8(addr, c.Regs.Get(rd))
}

// opLdrh1/opStrh1: imm5 * 2.
func opLdrh1(c *CPU, opcode uint16) {
	addr, rd := immOffsetOperands(c, opcode, 2)
	c.Regs.Set(rd, c.Mem.LoadU16(addr))
}

func opStrh1(c *CPU, opcode uint16) {
	addr, rd := immOffsetOperands(c, opcode, 2)
	c.Mem.Store16(addr, c.Regs.Get(rd))
}
