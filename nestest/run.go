package nestest

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/jmchacon/rp2a03/cpu"
	"github.com/pkg/errors"
)

// Mismatch is returned by Run when the CPU diverges from the reference.
type Mismatch struct {
	Line int // 1 based line number in the reference.
	Want Line
	Got  Line
}

// Error implements the interface for error types.
func (m *Mismatch) Error() string {
	return fmt.Sprintf("trace mismatch at line %d (%s)\nwant: %s\ngot:  %s", m.Line, strings.Join(m.Fields(), ","), m.Want, m.Got)
}

// Fields returns the names of the columns which differ.
func (m *Mismatch) Fields() []string {
	var f []string
	add := func(name string, differ bool) {
		if differ {
			f = append(f, name)
		}
	}
	add("PC", m.Want.PC != m.Got.PC)
	add("mnemonic", m.Want.Mnemonic != m.Got.Mnemonic)
	add("A", m.Want.A != m.Got.A)
	add("X", m.Want.X != m.Got.X)
	add("Y", m.Want.Y != m.Got.Y)
	add("P", m.Want.P != m.Got.P)
	add("SP", m.Want.S != m.Got.S)
	add("CYC", m.Want.HasCycles && m.Want.Cycles != m.Got.Cycles)
	return f
}

// Run steps p once per reference line read from ref, checking the state before
// each instruction. It stops after limit lines (0 means no limit), at the end of
// ref, or on the first disagreement which is returned as a *Mismatch. If out is
// non-nil each line p produced is written to it in the reference layout.
// The number of lines that matched is always returned.
func Run(p *cpu.Processor, ref io.Reader, limit int, out io.Writer) (int, error) {
	sc := bufio.NewScanner(ref)
	n := 0
	for limit <= 0 || n < limit {
		if !sc.Scan() {
			break
		}
		text := sc.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		want, err := ParseLine(text)
		if err != nil {
			return n, errors.Wrapf(err, "reference line %d", n+1)
		}
		if out != nil {
			if _, err := fmt.Fprintln(out, Format(p)); err != nil {
				return n, errors.Wrap(err, "can't write trace")
			}
		}
		got := Capture(p)
		if !want.Matches(got) {
			return n, &Mismatch{Line: n + 1, Want: want, Got: got}
		}
		n++
		if _, err := p.Step(); err != nil {
			return n, errors.Wrapf(err, "executing line %d", n)
		}
	}
	if err := sc.Err(); err != nil {
		return n, errors.Wrap(err, "can't read reference trace")
	}
	return n, nil
}
