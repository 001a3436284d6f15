package cpu

import (
	"armstep/board"
	"armstep/mem"
)

// thumbHandler is the signature every T-table slot holds: it receives
// the CPU and the raw 16-bit opcode, decodes whatever operand fields it
// needs from the opcode itself, and performs the semantic action.
type thumbHandler func(c *CPU, opcode uint16)

// armHandler is the A-table equivalent. Per SPEC_FULL.md's scope
// decision every slot currently resolves to illegalArm; the signature
// is still exercised so setMode(A) has a real table to switch to.
type armHandler func(c *CPU, opcode uint32)

// CPU owns the register file, status word, cycle counter and the two
// borrowed collaborator handles. It is single-threaded: no field is
// ever mutated from more than one goroutine, and Step must not be
// called concurrently with itself.
type CPU struct {
	Regs Regs
	PSW  PSW

	Cycles uint64

	Mem   mem.Memory
	Board board.Board

	tTable [1024]thumbHandler
	aTable [4096]armHandler
}

// New builds a CPU wired to the given memory and board collaborators
// and installs the dense dispatch tables. Tables are built once and
// never mutated afterwards.
func New(m mem.Memory, b board.Board) *CPU {
	c := &CPU{Mem: m, Board: b}
	c.tTable = buildThumbTable()
	c.aTable = buildArmTable()
	return c
}

// Reset clears the register file, sets PC/SP from the given reset
// vector and stack pointer, forces T-mode (the only mode this
// interpreter gives full semantics to) and zeroes the cycle counter.
// pc is the address of the first instruction to be fetched, in the
// ordinary sense (not pipeline-advanced) — Regs[PC] holds exactly this
// value; pc() below is what handlers call to see the architectural,
// pipeline-advanced reading of the program counter.
func (c *CPU) Reset(pc, sp uint32) {
	c.Regs = Regs{}
	c.Regs[rSP] = sp
	c.Regs[rPC] = pc
	c.PSW = PSW{Mode: ModeT}
	c.Cycles = 0
	c.Mem.Sync(pc)
}

// SetMode forces the execution mode and re-aligns PC the way the
// indirect-branch PC-write ritual would, then re-syncs the memory
// collaborator's active-region cache. bit follows the interworking
// convention: 1 selects T, 0 selects A.
func (c *CPU) SetMode(bit uint32) {
	pc := c.Regs[rPC]
	if bit&1 != 0 {
		c.PSW.Mode = ModeT
		pc &^= 1
	} else {
		c.PSW.Mode = ModeA
		pc &^= 3
	}
	c.Regs[rPC] = pc
	c.Mem.Sync(pc)
}

// pc returns the value a handler architecturally observes when it reads
// PC: the address of the currently executing instruction plus two
// encoding widths, a consequence of the fetch stage always running one
// instruction ahead of execute. Regs[rPC] itself holds the ordinary
// (non-pipelined) address of the next instruction to fetch; stepThumb/
// stepArm advance it by one encoding-width before invoking the handler,
// so adding one more width here reproduces the architectural "+2·width"
// reading without needing to store the pipelined value canonically.
func (c *CPU) pc() uint32 {
	if c.PSW.Mode == ModeT {
		return c.Regs[rPC] + 2
	}
	return c.Regs[rPC] + 4
}

// Step advances execution by exactly one instruction, per the
// currently-selected execution mode.
func (c *CPU) Step() {
	if c.PSW.Mode == ModeT {
		c.stepThumb()
	} else {
		c.stepArm()
	}
}
