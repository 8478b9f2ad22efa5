package cpu

const (
	P_NEGATIVE  = uint8(0x80)
	P_OVERFLOW  = uint8(0x40)
	P_S1        = uint8(0x20) // Always 1 when packed.
	P_B         = uint8(0x10) // Only exists on the stack. Pushed by BRK/PHP, never live.
	P_DECIMAL   = uint8(0x08)
	P_INTERRUPT = uint8(0x04)
	P_ZERO      = uint8(0x02)
	P_CARRY     = uint8(0x01)
)

// Status holds the six addressable condition flags. There is no B flag: the
// break bit only exists in the byte BRK/PHP push and is dropped by PLP/RTI.
type Status struct {
	N bool // Negative
	V bool // Overflow
	D bool // Decimal (stored only, the Ricoh ALU has no BCD)
	I bool // Interrupt disable
	Z bool // Zero
	C bool // Carry
}

// SetZN sets Z if val is zero and N from bit 7 of val. It returns val so it can
// be used directly in a register assignment.
func (s *Status) SetZN(val uint8) uint8 {
	s.Z = val == 0
	s.N = val&P_NEGATIVE != 0
	return val
}

// Pack returns the flags in their byte form with bit 5 always set and B clear.
func (s Status) Pack() uint8 {
	v := P_S1
	if s.N {
		v |= P_NEGATIVE
	}
	if s.V {
		v |= P_OVERFLOW
	}
	if s.D {
		v |= P_DECIMAL
	}
	if s.I {
		v |= P_INTERRUPT
	}
	if s.Z {
		v |= P_ZERO
	}
	if s.C {
		v |= P_CARRY
	}
	return v
}

// Unpack loads N,V,D,I,Z,C from val. Bits 4 and 5 are ignored.
func (s *Status) Unpack(val uint8) {
	s.N = val&P_NEGATIVE != 0
	s.V = val&P_OVERFLOW != 0
	s.D = val&P_DECIMAL != 0
	s.I = val&P_INTERRUPT != 0
	s.Z = val&P_ZERO != 0
	s.C = val&P_CARRY != 0
}

// String returns the flags as a labelled bit pattern (upper case is set).
func (s Status) String() string {
	b := []byte("nv-bdizc")
	for i, f := range []bool{s.N, s.V, false, false, s.D, s.I, s.Z, s.C} {
		if f {
			b[i] -= 'a' - 'A'
		}
	}
	return string(b)
}

// carry returns the carry flag as a 0/1 value suitable for arithmetic.
func (s Status) carry() uint8 {
	if s.C {
		return 1
	}
	return 0
}
