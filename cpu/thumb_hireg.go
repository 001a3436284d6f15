package cpu

import "armstep/mask"

// hiRegOperands decodes format 5's shared operand shape: a 3-bit low
// register field extended to 4 bits by an H flag, for both the
// destination and the second operand.
func hiRegOperands(opcode uint16) (rd, rs byte) {
	h1 := mask.Bit(uint32(opcode), 7)
	h2 := mask.Bit(uint32(opcode), 6)
	rdLow := byte(mask.Bits(uint32(opcode), 0, 2))
	rsLow := byte(mask.Bits(uint32(opcode), 3, 5))
	if h1 {
		rdLow |= 0x8
	}
	if h2 {
		rsLow |= 0x8
	}
	return rdLow, rsLow
}

// opAdd4 implements ADD4 Rd, Rs over the full 16-register file. Flags
// are not updated. A write to PC goes through the T-encoding PC-write
// ritual.
func opAdd4(c *CPU, opcode uint16) {
	rd, rs := hiRegOperands(opcode)
	v := c.Regs.Get(rd) + c.Regs.Get(rs)
	if rd == rPC {
		c.writeThumbPC(v)
		return
	}
	c.Regs.Set(rd, v)
}

// opCmp3 implements CMP3 Rd, Rs: subtraction pattern, result discarded.
func opCmp3(c *CPU, opcode uint16) {
	rd, rs := hiRegOperands(opcode)
	m, n := c.Regs.Get(rd), c.Regs.Get(rs)
	c.PSW.applyNZCV(SubFlags(m, n, m-n))
}

// opMov3 implements MOV3 Rd, Rs. Flags are not updated. A write to PC
// goes through the T-encoding PC-write ritual.
func opMov3(c *CPU, opcode uint16) {
	rd, rs := hiRegOperands(opcode)
	if rd == rPC {
		c.writeThumbPC(c.Regs.Get(rs))
		return
	}
	c.Regs.Set(rd, c.Regs.Get(rs))
}

// opBx implements BX Rs: interworking branch. The execution mode takes
// bit 0 of the source register; the branch target clears that bit and,
// per the documented precedence fix, subtracts any stray bit 1 left
// over from reading PC itself as the source register (PC's pipeline
// fiction can leave bit 1 set) *after* masking bit 0, not before.
func opBx(c *CPU, opcode uint16) {
	_, rs := hiRegOperands(opcode)

	var rmVal uint32
	if rs == rPC {
		rmVal = c.pc()
	} else {
		rmVal = c.Regs.Get(rs)
	}

	toThumb := rmVal&1 != 0

	var misalign uint32
	if rs == rPC {
		misalign = rmVal & 2
	}
	target := (rmVal &^ 1) - misalign

	if toThumb {
		c.PSW.Mode = ModeT
		c.writeThumbPC(target)
	} else {
		c.PSW.Mode = ModeA
		c.writeArmPC(target)
	}
}
