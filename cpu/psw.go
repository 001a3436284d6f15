package cpu

// Mode names the two instruction encodings. The zero value is A, which
// matches the architectural reset state (execution starts in the
// 32-bit encoding).
type Mode byte

const (
	ModeA Mode = iota
	ModeT
)

func (m Mode) String() string {
	if m == ModeT {
		return "T"
	}
	return "A"
}

// PSW is the program status word. Only N, Z, C, V and Mode are
// manipulated by the interpreter; I, F and ModeBits pass through
// untouched and exist so callers that need the full architectural
// picture (a debugger, a board implementing privileged instructions)
// have somewhere to keep them.
type PSW struct {
	N, Z, C, V bool
	Mode       Mode

	I, F     bool
	ModeBits byte
}

// Flags packs the four arithmetic flags a flag-computation primitive
// produces; handlers copy the fields they're told to update into the
// PSW rather than setting n/z/c/v individually inline.
type Flags struct {
	N, Z, C, V bool
}

// applyNZCV writes all four flags.
func (p *PSW) applyNZCV(f Flags) {
	p.N, p.Z, p.C, p.V = f.N, f.Z, f.C, f.V
}

// applyNZ writes only N and Z, per the neutral pattern.
func (p *PSW) applyNZ(f Flags) {
	p.N, p.Z = f.N, f.Z
}
