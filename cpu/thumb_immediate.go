package cpu

import "armstep/mask"

// opMovImm8 implements format 3's MOV rd, #imm8: rd <- imm8, neutral
// pattern (so N is always false for an 8-bit immediate, but computing
// it from the general helper keeps the flag logic in one place).
func opMovImm8(c *CPU, opcode uint16) {
	rd := byte(mask.Bits(uint32(opcode), 8, 10))
	imm8 := uint32(mask.Bits(uint32(opcode), 0, 7))
	c.Regs.Set(rd, imm8)
	c.PSW.applyNZ(NeutralFlags(imm8))
}

// opCmpImm8 implements CMP rd, #imm8: subtract but discard the result.
func opCmpImm8(c *CPU, opcode uint16) {
	rd := byte(mask.Bits(uint32(opcode), 8, 10))
	imm8 := uint32(mask.Bits(uint32(opcode), 0, 7))
	m := c.Regs.Get(rd)
	d := m - imm8
	c.PSW.applyNZCV(SubFlags(m, imm8, d))
}

// opAdd2Imm8 implements ADD2 rd, #imm8: rd <- rd + imm8.
func opAdd2Imm8(c *CPU, opcode uint16) {
	rd := byte(mask.Bits(uint32(opcode), 8, 10))
	imm8 := uint32(mask.Bits(uint32(opcode), 0, 7))
	m := c.Regs.Get(rd)
	d := m + imm8
	c.Regs.Set(rd, d)
	c.PSW.applyNZCV(AddFlags(m, imm8, d))
}

// opSub2Imm8 implements SUB2 rd, #imm8: rd <- rd - imm8.
func opSub2Imm8(c *CPU, opcode uint16) {
	rd := byte(mask.Bits(uint32(opcode), 8, 10))
	imm8 := uint32(mask.Bits(uint32(opcode), 0, 7))
	m := c.Regs.Get(rd)
	d := m - imm8
	c.Regs.Set(rd, d)
	c.PSW.applyNZCV(SubFlags(m, imm8, d))
}
