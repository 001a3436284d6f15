package cpu

import "armstep/mask"

// opPush implements PUSH {rlist}: high-to-low with pre-decrement, so
// the final SP is initial - 4*count regardless of which registers were
// selected.
func opPush(c *CPU, opcode uint16) {
	rlist := byte(mask.Bits(uint32(opcode), 0, 7))
	sp := c.Regs.Get(rSP)
	for reg := byte(7); ; reg-- {
		if rlist&(1<<reg) != 0 {
			sp -= 4
			c.Mem.Store32(sp, c.Regs.Get(reg))
		}
		if reg == 0 {
			break
		}
	}
	c.Regs.Set(rSP, sp)
}

// opPushR implements PUSHR {rlist, LR}: as opPush, then stores LR one
// slot below the lowest register.
func opPushR(c *CPU, opcode uint16) {
	rlist := byte(mask.Bits(uint32(opcode), 0, 7))
	sp := c.Regs.Get(rSP)
	for reg := byte(7); ; reg-- {
		if rlist&(1<<reg) != 0 {
			sp -= 4
			c.Mem.Store32(sp, c.Regs.Get(reg))
		}
		if reg == 0 {
			break
		}
	}
	sp -= 4
	c.Mem.Store32(sp, c.Regs.Get(rLR))
	c.Regs.Set(rSP, sp)
}

// opPop implements POP {rlist}: low-to-high with post-increment.
func opPop(c *CPU, opcode uint16) {
	rlist := byte(mask.Bits(uint32(opcode), 0, 7))
	sp := c.Regs.Get(rSP)
	for reg := byte(0); reg <= 7; reg++ {
		if rlist&(1<<reg) != 0 {
			c.Regs.Set(reg, c.Mem.Load32(sp))
			sp += 4
		}
	}
	c.Regs.Set(rSP, sp)
}

// opPopR implements POPR {rlist, PC}: as opPop, then loads PC from the
// next slot, masks bit 0 and performs the T-encoding PC-write ritual.
func opPopR(c *CPU, opcode uint16) {
	rlist := byte(mask.Bits(uint32(opcode), 0, 7))
	sp := c.Regs.Get(rSP)
	for reg := byte(0); reg <= 7; reg++ {
		if rlist&(1<<reg) != 0 {
			c.Regs.Set(reg, c.Mem.Load32(sp))
			sp += 4
		}
	}
	target := c.Mem.Load32(sp)
	sp += 4
	c.Regs.Set(rSP, sp)
	c.writeThumbPC(target &^ 1)
}

// opLdmia implements LDMIA rb!, {rlist}: low-to-high, +4 per transfer.
// Base writeback is skipped when rb itself is in the transfer list,
// per the architectural quirk documented in §4.8.
func opLdmia(c *CPU, opcode uint16) {
	rlist := byte(mask.Bits(uint32(opcode), 0, 7))
	rb := byte(mask.Bits(uint32(opcode), 8, 10))
	addr := c.Regs.Get(rb)
	baseInList := rlist&(1<<rb) != 0
	for reg := byte(0); reg <= 7; reg++ {
		if rlist&(1<<reg) != 0 {
			c.Regs.Set(reg, c.Mem.Load32(addr))
			addr += 4
		}
	}
	if !baseInList {
		c.Regs.Set(rb, addr)
	}
}

// opStmia implements STMIA rb!, {rlist}: low-to-high, +4 per transfer,
// always writing the final address back to rb.
func opStmia(c *CPU, opcode uint16) {
	rlist := byte(mask.Bits(uint32(opcode), 0, 7))
	rb := byte(mask.Bits(uint32(opcode), 8, 10))
	addr := c.Regs.Get(rb)
	for reg := byte(0); reg <= 7; reg++ {
		if rlist&(1<<reg) != 0 {
			c.Mem.Store32(addr, c.Regs.Get(reg))
			addr += 4
		}
	}
	c.Regs.Set(rb, addr)
}
