// Package disassemble implements a disassembler for 2A03 opcodes
package disassemble

import (
	"fmt"
	"strings"

	"github.com/jmchacon/rp2a03/cpu"
	"github.com/jmchacon/rp2a03/memory"
)

// Step will take the given PC value and disassemble the instruction at that location
// returning a string for the disassembly and the bytes forward the PC should move to get to
// the next instruction. This does not interpret the instructions so LDA, JMP, LDA in memory
// will disassemble as that sequence and not follow the JMP.
// Only the bytes belonging to the instruction are read, each one once.
func Step(pc uint16, r memory.Bus) (string, int) {
	b := Bytes(pc, r)
	return fmt.Sprintf("%.4X %-8s  %s", pc, Hex(b), text(pc, b)), len(b)
}

// Bytes returns the opcode and operand bytes of the instruction at pc.
// Reads wrap at the top of the address space the same as the CPU's fetches.
func Bytes(pc uint16, r memory.Bus) []uint8 {
	op := r.Read(pc)
	b := make([]uint8, cpu.Lookup(op).Bytes)
	b[0] = op
	for i := 1; i < len(b); i++ {
		b[i] = r.Read(pc + uint16(i))
	}
	return b
}

// Hex returns b as space separated hex pairs (i.e. "4C F5 C5").
func Hex(b []uint8) string {
	s := make([]string, len(b))
	for i, v := range b {
		s[i] = fmt.Sprintf("%.2X", v)
	}
	return strings.Join(s, " ")
}

// Text returns the mnemonic and operand of the instruction at pc. Undocumented
// opcodes are prefixed with * and everything else with a space so the mnemonics
// line up.
func Text(pc uint16, r memory.Bus) string {
	return text(pc, Bytes(pc, r))
}

// Operand returns the assembler syntax for the operand of the instruction at pc.
// Branches show the resolved target rather than the raw offset.
func Operand(pc uint16, r memory.Bus) string {
	return operand(pc, Bytes(pc, r))
}

// text and operand work on the bytes returned by Bytes for the instruction at pc.
func text(pc uint16, b []uint8) string {
	d := cpu.Lookup(b[0])
	m := " "
	if d.Undocumented {
		m = "*"
	}
	out := m + d.Mnemonic
	if op := operand(pc, b); op != "" {
		out += " " + op
	}
	return out
}

func operand(pc uint16, b []uint8) string {
	d := cpu.Lookup(b[0])
	var pc1 uint8
	if len(b) > 1 {
		pc1 = b[1]
	}
	var word uint16
	if len(b) > 2 {
		word = uint16(b[2])<<8 | uint16(b[1])
	}
	switch d.AddressingMode {
	case cpu.Implied:
		return ""
	case cpu.Accumulator:
		return "A"
	case cpu.Immediate:
		return fmt.Sprintf("#$%.2X", pc1)
	case cpu.ZeroPage:
		return fmt.Sprintf("$%.2X", pc1)
	case cpu.ZeroPageX:
		return fmt.Sprintf("$%.2X,X", pc1)
	case cpu.ZeroPageY:
		return fmt.Sprintf("$%.2X,Y", pc1)
	case cpu.Absolute:
		return fmt.Sprintf("$%.4X", word)
	case cpu.AbsoluteX:
		return fmt.Sprintf("$%.4X,X", word)
	case cpu.AbsoluteY:
		return fmt.Sprintf("$%.4X,Y", word)
	case cpu.Indirect:
		return fmt.Sprintf("($%.4X)", word)
	case cpu.IndexedIndirect:
		return fmt.Sprintf("($%.2X,X)", pc1)
	case cpu.IndirectIndexed:
		return fmt.Sprintf("($%.2X),Y", pc1)
	case cpu.Relative:
		// Sign extend the offset so it can be added to the PC.
		return fmt.Sprintf("$%.4X", pc+2+uint16(int16(int8(pc1))))
	}
	panic(fmt.Sprintf("Invalid mode: %s", d.AddressingMode))
}
