package cpu

import "armstep/mask"

// regOffsetOperands decodes the shared [rn, rm] base/offset/dest shape
// of formats 7 and 8.
func regOffsetOperands(c *CPU, opcode uint16) (addr uint32, rd byte) {
	rm := byte(mask.Bits(uint32(opcode), 6, 8))
	rn := byte(mask.Bits(uint32(opcode), 3, 5))
	rd = byte(mask.Bits(uint32(opcode), 0, 2))
	addr = c.Regs.Get(rn) + c.Regs.Get(rm)
	return addr, rd
}

func opStrReg(c *CPU, opcode uint16) {
	addr, rd := regOffsetOperands(c, opcode)
	c.Mem.Store32(addr, c.Regs.Get(rd))
}

func opStrbReg(c *CPU, opcode uint16) {
	addr, rd := regOffsetOperands(c, opcode)
	c.Mem.Store8(addr, c.Regs.Get(rd))
}

func opLdrReg(c *CPU, opcode uint16) {
	addr, rd := regOffsetOperands(c, opcode)
	c.Regs.Set(rd, c.Mem.Load32(addr))
}

func opLdrbReg(c *CPU, opcode uint16) {
	addr, rd := regOffsetOperands(c, opcode)
	c.Regs.Set(rd, c.Mem.LoadU8(addr))
}

func opStrhReg(c *CPU, opcode uint16) {
	addr, rd := regOffsetOperands(c, opcode)
	c.Mem.Store16(addr, c.Regs.Get(rd))
}

func opLdrhReg(c *CPU, opcode uint16) {
	addr, rd := regOffsetOperands(c, opcode)
	c.Regs.Set(rd, c.Mem.LoadU16(addr))
}

func opLdrsbReg(c *CPU, opcode uint16) {
	addr, rd := regOffsetOperands(c, opcode)
	c.Regs.Set(rd, c.Mem.Load8(addr))
}

func opLdrshReg(c *CPU, opcode uint16) {
	addr, rd := regOffsetOperands(c, opcode)
	c.Regs.Set(rd, c.Mem.Load16(addr))
}
