package cpu

import "armstep/mask"

// opAlu dispatches format 4's 16 register-register ALU operations. Op
// encodes which one in bits [9:6]; rs is the second operand register,
// rd both the first operand and (for most ops) the destination.
func opAlu(c *CPU, opcode uint16) {
	op := byte(mask.Bits(uint32(opcode), 6, 9))
	rs := byte(mask.Bits(uint32(opcode), 3, 5))
	rd := byte(mask.Bits(uint32(opcode), 0, 2))

	a := c.Regs.Get(rd)
	b := c.Regs.Get(rs)

	switch op {
	case 0x0: // AND
		d := a & b
		c.Regs.Set(rd, d)
		c.PSW.applyNZ(NeutralFlags(d))
	case 0x1: // EOR
		d := a ^ b
		c.Regs.Set(rd, d)
		c.PSW.applyNZ(NeutralFlags(d))
	case 0x2: // LSL2 (register-controlled)
		d := shiftLslByRegister(c, a, b)
		c.Regs.Set(rd, d)
	case 0x3: // LSR2
		d := shiftLsrByRegister(c, a, b)
		c.Regs.Set(rd, d)
	case 0x4: // ASR2
		d := shiftAsrByRegister(c, a, b)
		c.Regs.Set(rd, d)
	case 0x5: // ADC
		carry := uint32(0)
		if c.PSW.C {
			carry = 1
		}
		d := a + b + carry
		c.Regs.Set(rd, d)
		c.PSW.applyNZCV(addWithCarryFlags(a, b, carry, d))
	case 0x6: // SBC
		borrow := uint32(0)
		if !c.PSW.C {
			borrow = 1
		}
		d := a - b - borrow
		c.Regs.Set(rd, d)
		c.PSW.applyNZCV(subWithBorrowFlags(a, b, borrow, d))
	case 0x7: // ROR (register-controlled)
		d := rorByRegister(c, a, b)
		c.Regs.Set(rd, d)
	case 0x8: // TST
		d := a & b
		c.PSW.applyNZ(NeutralFlags(d))
	case 0x9: // NEG
		d := uint32(0) - b
		c.Regs.Set(rd, d)
		c.PSW.applyNZCV(SubFlags(0, b, d))
	case 0xA: // CMP
		d := a - b
		c.PSW.applyNZCV(SubFlags(a, b, d))
	case 0xB: // CMN
		d := a + b
		c.PSW.applyNZCV(AddFlags(a, b, d))
	case 0xC: // ORR
		d := a | b
		c.Regs.Set(rd, d)
		c.PSW.applyNZ(NeutralFlags(d))
	case 0xD: // MUL
		d := a * b
		c.Regs.Set(rd, d)
		c.PSW.applyNZ(NeutralFlags(d))
	case 0xE: // BIC
		d := a &^ b
		c.Regs.Set(rd, d)
		c.PSW.applyNZ(NeutralFlags(d))
	case 0xF: // MVN
		d := ^b
		c.Regs.Set(rd, d)
		c.PSW.applyNZ(NeutralFlags(d))
	}
}

// addWithCarryFlags and subWithBorrowFlags extend AddFlags/SubFlags to
// account for the incoming carry/borrow when computing C, since ADC/SBC
// fold a third operand into what is otherwise the same addition or
// subtraction pattern.
func addWithCarryFlags(m, n, carryIn, d uint32) Flags {
	carryOut := (uint64(m) + uint64(n) + uint64(carryIn)) > 0xFFFFFFFF
	overflow := (m>>31 == n>>31) && (d>>31 != m>>31)
	return Flags{N: d&0x8000_0000 != 0, Z: d == 0, C: carryOut, V: overflow}
}

func subWithBorrowFlags(m, n, borrowIn, d uint32) Flags {
	noBorrow := uint64(m) >= uint64(n)+uint64(borrowIn)
	overflow := (m>>31 != n>>31) && (d>>31 != m>>31)
	return Flags{N: d&0x8000_0000 != 0, Z: d == 0, C: noBorrow, V: overflow}
}

// shiftLslByRegister, shiftLsrByRegister, shiftAsrByRegister and
// rorByRegister implement the register-controlled shift count rules of
// §4.3: the count is taken from the low byte of rs, with distinct
// behavior at count==0, 0<count<32, count==32 and count>32 (ROR instead
// taking its count modulo 32).
func shiftLslByRegister(c *CPU, v, rs uint32) uint32 {
	count := rs & 0xFF
	var d uint32
	switch {
	case count == 0:
		d = v
	case count < 32:
		c.PSW.C = mask.Bit(v, byte(32-count))
		d = v << count
	case count == 32:
		c.PSW.C = mask.Bit(v, 0)
		d = 0
	default:
		c.PSW.C = false
		d = 0
	}
	c.PSW.applyNZ(NeutralFlags(d))
	return d
}

func shiftLsrByRegister(c *CPU, v, rs uint32) uint32 {
	count := rs & 0xFF
	var d uint32
	switch {
	case count == 0:
		d = v
	case count < 32:
		c.PSW.C = mask.Bit(v, byte(count-1))
		d = v >> count
	case count == 32:
		c.PSW.C = mask.Bit(v, 31)
		d = 0
	default:
		c.PSW.C = false
		d = 0
	}
	c.PSW.applyNZ(NeutralFlags(d))
	return d
}

func shiftAsrByRegister(c *CPU, v, rs uint32) uint32 {
	count := rs & 0xFF
	var d uint32
	switch {
	case count == 0:
		d = v
	case count < 32:
		c.PSW.C = mask.Bit(v, byte(count-1))
		d = uint32(int32(v) >> count)
	default: // count >= 32 saturates
		c.PSW.C = mask.Bit(v, 31)
		if c.PSW.C {
			d = 0xFFFFFFFF
		} else {
			d = 0
		}
	}
	c.PSW.applyNZ(NeutralFlags(d))
	return d
}

func rorByRegister(c *CPU, v, rs uint32) uint32 {
	count := rs & 0xFF
	var d uint32
	if count == 0 {
		d = v
	} else {
		n := count % 32
		if n == 0 {
			c.PSW.C = mask.Bit(v, 31)
			d = v
		} else {
			c.PSW.C = mask.Bit(v, byte(n-1))
			d = mask.RotateRight(v, uint(n))
		}
	}
	c.PSW.applyNZ(NeutralFlags(d))
	return d
}
