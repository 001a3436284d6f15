package cpu

import "log"

// illegalThumb is installed in every T-table slot with no defined
// semantics. It logs and leaves the CPU state alone; whether a crashed
// guest halts or raises an architectural fault is a board/driver
// decision, not this interpreter's (§7).
func illegalThumb(c *CPU, opcode uint16) {
	log.Printf("cpu: illegal T-encoding opcode %#04x at pc=%#08x", opcode, c.Regs[rPC]-2)
}

// illegalArm is installed in every A-table slot. Per SPEC_FULL.md §2
// that is currently all 4096 of them: no A-encoding semantics are given
// in the source this interpreter is built from.
func illegalArm(c *CPU, opcode uint32) {
	log.Printf("cpu: illegal A-encoding opcode %#08x at pc=%#08x", opcode, c.Regs[rPC]-4)
}
