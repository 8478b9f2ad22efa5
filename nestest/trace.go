// Package nestest runs a CPU against a reference execution trace in the
// format of the nestest.log file shipped with the nestest ROM and reports
// where the two first disagree.
package nestest

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jmchacon/rp2a03/cpu"
	"github.com/jmchacon/rp2a03/disassemble"
	"github.com/pkg/errors"
)

// Columns in a trace line.
const (
	colPC       = 0
	colMnemonic = 16
	colA        = 48
	colX        = 53
	colY        = 58
	colP        = 63
	colSP       = 68
	minLen      = colSP + len("SP:") + 2
)

// Line is the CPU state recorded before one instruction executes.
type Line struct {
	PC        uint16
	Mnemonic  string
	A, X, Y   uint8
	P         uint8
	S         uint8
	Cycles    uint64
	HasCycles bool // Set if the line carried a CYC: field.
}

// String returns the line in a compact form for error messages.
func (l Line) String() string {
	s := fmt.Sprintf("%.4X %s A:%.2X X:%.2X Y:%.2X P:%.2X SP:%.2X", l.PC, l.Mnemonic, l.A, l.X, l.Y, l.P, l.S)
	if l.HasCycles {
		s += fmt.Sprintf(" CYC:%d", l.Cycles)
	}
	return s
}

// Matches returns true if got agrees with l. Cycles are only compared if l has them.
func (l Line) Matches(got Line) bool {
	if l.PC != got.PC || l.Mnemonic != got.Mnemonic || l.A != got.A || l.X != got.X || l.Y != got.Y || l.P != got.P || l.S != got.S {
		return false
	}
	return !l.HasCycles || l.Cycles == got.Cycles
}

// ParseLine decodes one reference trace line.
func ParseLine(s string) (Line, error) {
	var l Line
	if len(s) < minLen {
		return l, errors.Errorf("line too short (%d bytes): %q", len(s), s)
	}
	pc, err := strconv.ParseUint(s[colPC:colPC+4], 16, 16)
	if err != nil {
		return l, errors.Wrapf(err, "bad PC in %q", s)
	}
	l.PC = uint16(pc)
	l.Mnemonic = s[colMnemonic : colMnemonic+3]

	for _, f := range []struct {
		col   int
		label string
		dest  *uint8
	}{
		{colA, "A:", &l.A},
		{colX, "X:", &l.X},
		{colY, "Y:", &l.Y},
		{colP, "P:", &l.P},
		{colSP, "SP:", &l.S},
	} {
		if !strings.HasPrefix(s[f.col:], f.label) {
			return l, errors.Errorf("missing %s at column %d in %q", f.label, f.col, s)
		}
		start := f.col + len(f.label)
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		if err != nil {
			return l, errors.Wrapf(err, "bad %s value in %q", f.label, s)
		}
		*f.dest = uint8(v)
	}

	if i := strings.Index(s, "CYC:"); i >= 0 {
		f := strings.Fields(s[i+len("CYC:"):])
		if len(f) == 0 {
			return l, errors.Errorf("empty CYC: in %q", s)
		}
		c, err := strconv.ParseUint(f[0], 10, 64)
		if err != nil {
			return l, errors.Wrapf(err, "bad CYC: value in %q", s)
		}
		l.Cycles = c
		l.HasCycles = true
	}
	return l, nil
}

// Capture records the current state of p as a Line.
func Capture(p *cpu.Processor) Line {
	return Line{
		PC:        p.PC,
		Mnemonic:  cpu.Mnemonic(p.Bus().Read(p.PC)),
		A:         p.A,
		X:         p.X,
		Y:         p.Y,
		P:         p.P.Pack(),
		S:         p.S,
		Cycles:    p.Cycles,
		HasCycles: true,
	}
}

// Format returns the current state of p as a trace line in the reference layout.
// The disassembly doesn't carry the memory annotations nestest.log has
// ("= 00" etc) but every parsed column lines up.
func Format(p *cpu.Processor) string {
	b := p.Bus()
	return fmt.Sprintf("%.4X  %-8s %-*s A:%.2X X:%.2X Y:%.2X P:%.2X SP:%.2X CYC:%d",
		p.PC, disassemble.Hex(disassemble.Bytes(p.PC, b)), colA-colMnemonic, disassemble.Text(p.PC, b),
		p.A, p.X, p.Y, p.P.Pack(), p.S, p.Cycles)
}
