package cpu

// cond evaluates one of the 14 named condition-code predicates against
// the current flags. code is the 4-bit field as it appears in a
// conditional-branch opcode. 14 (always) yields true and 15 (reserved)
// yields false; the T-table never calls this with either, since it
// routes 14 to the illegal handler and 15 to SWI.
func (p *PSW) cond(code byte) bool {
	switch code {
	case 0: // EQ
		return p.Z
	case 1: // NE
		return !p.Z
	case 2: // CS/HS
		return p.C
	case 3: // CC/LO
		return !p.C
	case 4: // MI
		return p.N
	case 5: // PL
		return !p.N
	case 6: // VS
		return p.V
	case 7: // VC
		return !p.V
	case 8: // HI
		return p.C && !p.Z
	case 9: // LS
		return !p.C || p.Z
	case 10: // GE
		return p.N == p.V
	case 11: // LT
		return p.N != p.V
	case 12: // GT
		return !p.Z && (p.N == p.V)
	case 13: // LE
		return p.Z || (p.N != p.V)
	case 14: // AL
		return true
	default: // 15, reserved
		return false
	}
}
