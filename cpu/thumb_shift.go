package cpu

import "armstep/mask"

// opLsl implements format 1's LSL rd, rm, #imm5. imm5 == 0 is a literal
// copy that leaves C untouched; any implementation that folds that case
// into the general shift-by-n loop gets C wrong.
func opLsl(c *CPU, opcode uint16) {
	imm5 := byte(mask.Bits(uint32(opcode), 6, 10))
	rm := byte(mask.Bits(uint32(opcode), 3, 5))
	rd := byte(mask.Bits(uint32(opcode), 0, 2))

	v := c.Regs.Get(rm)
	var result uint32
	if imm5 == 0 {
		result = v
	} else {
		c.PSW.C = mask.Bit(v, 32-imm5)
		result = v << imm5
	}
	c.Regs.Set(rd, result)
	c.PSW.applyNZ(NeutralFlags(result))
}

// opLsr implements LSR rd, rm, #imm5. imm5 == 0 is architecturally a
// shift by 32: C takes bit 31 and rd becomes zero, not a no-op.
func opLsr(c *CPU, opcode uint16) {
	imm5 := byte(mask.Bits(uint32(opcode), 6, 10))
	rm := byte(mask.Bits(uint32(opcode), 3, 5))
	rd := byte(mask.Bits(uint32(opcode), 0, 2))

	v := c.Regs.Get(rm)
	var result uint32
	if imm5 == 0 {
		c.PSW.C = mask.Bit(v, 31)
		result = 0
	} else {
		c.PSW.C = mask.Bit(v, imm5-1)
		result = v >> imm5
	}
	c.Regs.Set(rd, result)
	c.PSW.applyNZ(NeutralFlags(result))
}

// opAsr implements ASR rd, rm, #imm5. imm5 == 0 saturates rd to all-0
// or all-1 according to the sign bit, which also becomes C.
func opAsr(c *CPU, opcode uint16) {
	imm5 := byte(mask.Bits(uint32(opcode), 6, 10))
	rm := byte(mask.Bits(uint32(opcode), 3, 5))
	rd := byte(mask.Bits(uint32(opcode), 0, 2))

	v := c.Regs.Get(rm)
	var result uint32
	if imm5 == 0 {
		c.PSW.C = mask.Bit(v, 31)
		if c.PSW.C {
			result = 0xFFFFFFFF
		} else {
			result = 0
		}
	} else {
		c.PSW.C = mask.Bit(v, imm5-1)
		result = uint32(int32(v) >> imm5)
	}
	c.Regs.Set(rd, result)
	c.PSW.applyNZ(NeutralFlags(result))
}

// opAddReg and opSubReg implement format 2's register form (ADD/SUB rd,
// rn, rm); opAddImm3/opSubImm3 implement the immediate form (ADD/SUB rd,
// rn, #imm3). All four apply the full addition/subtraction flag pattern.

func opAddReg(c *CPU, opcode uint16) {
	rm := byte(mask.Bits(uint32(opcode), 6, 8))
	rn := byte(mask.Bits(uint32(opcode), 3, 5))
	rd := byte(mask.Bits(uint32(opcode), 0, 2))
	m, n := c.Regs.Get(rn), c.Regs.Get(rm)
	d := m + n
	c.Regs.Set(rd, d)
	c.PSW.applyNZCV(AddFlags(m, n, d))
}

func opSubReg(c *CPU, opcode uint16) {
	rm := byte(mask.Bits(uint32(opcode), 6, 8))
	rn := byte(mask.Bits(uint32(opcode), 3, 5))
	rd := byte(mask.Bits(uint32(opcode), 0, 2))
	m, n := c.Regs.Get(rn), c.Regs.Get(rm)
	d := m - n
	c.Regs.Set(rd, d)
	c.PSW.applyNZCV(SubFlags(m, n, d))
}

func opAddImm3(c *CPU, opcode uint16) {
	imm3 := uint32(mask.Bits(uint32(opcode), 6, 8))
	rn := byte(mask.Bits(uint32(opcode), 3, 5))
	rd := byte(mask.Bits(uint32(opcode), 0, 2))
	m := c.Regs.Get(rn)
	d := m + imm3
	c.Regs.Set(rd, d)
	c.PSW.applyNZCV(AddFlags(m, imm3, d))
}

func opSubImm3(c *CPU, opcode uint16) {
	imm3 := uint32(mask.Bits(uint32(opcode), 6, 8))
	rn := byte(mask.Bits(uint32(opcode), 3, 5))
	rd := byte(mask.Bits(uint32(opcode), 0, 2))
	m := c.Regs.Get(rn)
	d := m - imm3
	c.Regs.Set(rd, d)
	c.PSW.applyNZCV(SubFlags(m, imm3, d))
}
