package cpu

import "fmt"

// EffectCategory categorises an instruction by the effect it has. It also
// decides the bus protocol execute() follows for the operand.
type EffectCategory int

const (
	Read  EffectCategory = iota // Operand read from the bus and passed to the operation.
	Write                       // Operation value written to the effective address.
	RMW                         // Read, write original back, write modified (or A for Accumulator mode).

	// The following have a variable effect on the program counter.
	Flow       // Branches and JMP.
	Subroutine // JSR and RTS.
	Interrupt  // BRK and RTI.

	Register // Register, flag and stack operations with no operand.
	Halt     // JAM. Stops the CPU until reset.
	Unstable // SHA/SHS/SHX/SHY. Bus timing dependent, reported rather than guessed.
)

func (e EffectCategory) String() string {
	switch e {
	case Read:
		return "Read"
	case Write:
		return "Write"
	case RMW:
		return "RMW"
	case Flow:
		return "Flow"
	case Subroutine:
		return "Subroutine"
	case Interrupt:
		return "Interrupt"
	case Register:
		return "Register"
	case Halt:
		return "Halt"
	case Unstable:
		return "Unstable"
	}
	return "unknown effect"
}

// Definition describes one opcode. Exactly one of the operation references is
// set for every executable opcode.
type Definition struct {
	OpCode         uint8
	Mnemonic       string
	AddressingMode AddressingMode
	Bytes          int
	Cycles         int  // Base cycle cost.
	PageSensitive  bool // +1 cycle when indexing crosses a page.
	Effect         EffectCategory
	Undocumented   bool

	read   func(*Processor, uint8)
	write  func(*Processor) uint8
	modify func(*Processor, uint8) uint8
	branch func(*Processor) bool
	jump   func(*Processor, uint16)
	exec   func(*Processor)
}

// String returns a single instruction definition as a string.
func (d Definition) String() string {
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles) [mode=%s pagesens=%t effect=%s undocumented=%t]", d.OpCode, d.Mnemonic, d.Bytes, d.Cycles, d.AddressingMode, d.PageSensitive, d.Effect, d.Undocumented)
}

// IsBranch returns true if instruction is a branch instruction.
func (d Definition) IsBranch() bool {
	return d.AddressingMode == Relative && d.Effect == Flow
}

// Lookup returns the definition for op. Every byte has one.
func Lookup(op uint8) Definition {
	return opcodes[op]
}

// Mnemonic returns the 3 letter mnemonic for op.
func Mnemonic(op uint8) string {
	return opcodes[op].Mnemonic
}

func rd(m string, mode AddressingMode, cycles int, f func(*Processor, uint8)) Definition {
	return Definition{
		Mnemonic:       m,
		AddressingMode: mode,
		Cycles:         cycles,
		// Every reading instruction on these modes pays for a page crossing.
		PageSensitive: mode == AbsoluteX || mode == AbsoluteY || mode == IndirectIndexed,
		Effect:        Read,
		read:          f,
	}
}

func wr(m string, mode AddressingMode, cycles int, f func(*Processor) uint8) Definition {
	return Definition{Mnemonic: m, AddressingMode: mode, Cycles: cycles, Effect: Write, write: f}
}

func rmw(m string, mode AddressingMode, cycles int, f func(*Processor, uint8) uint8) Definition {
	return Definition{Mnemonic: m, AddressingMode: mode, Cycles: cycles, Effect: RMW, modify: f}
}

func br(m string, f func(*Processor) bool) Definition {
	return Definition{Mnemonic: m, AddressingMode: Relative, Cycles: 2, Effect: Flow, branch: f}
}

func jp(m string, mode AddressingMode, cycles int, e EffectCategory, f func(*Processor, uint16)) Definition {
	return Definition{Mnemonic: m, AddressingMode: mode, Cycles: cycles, Effect: e, jump: f}
}

func im(m string, cycles int, e EffectCategory, f func(*Processor)) Definition {
	return Definition{Mnemonic: m, AddressingMode: Implied, Cycles: cycles, Effect: e, exec: f}
}

func jam() Definition {
	return Definition{Mnemonic: "JAM", AddressingMode: Implied, Effect: Halt, Undocumented: true}
}

func unstable(m string, mode AddressingMode, cycles int) Definition {
	return Definition{Mnemonic: m, AddressingMode: mode, Cycles: cycles, Effect: Unstable, Undocumented: true}
}

func undoc(d Definition) Definition {
	d.Undocumented = true
	return d
}

// opcodes is the dispatch table. Matrix taken from:
// http://wiki.nesdev.com/w/index.php/CPU_unofficial_opcodes
// Cycle counts from http://obelisk.me.uk/6502/reference.html and
// http://nesdev.com/6502_cpu.txt for the undocumented ones.
var opcodes = [256]Definition{
	0x00: im("BRK", 7, Interrupt, (*Processor).brk),
	0x01: rd("ORA", IndexedIndirect, 6, (*Processor).ora),
	0x02: jam(),
	0x03: undoc(rmw("SLO", IndexedIndirect, 8, (*Processor).slo)),
	0x04: undoc(rd("NOP", ZeroPage, 3, (*Processor).nopRead)),
	0x05: rd("ORA", ZeroPage, 3, (*Processor).ora),
	0x06: rmw("ASL", ZeroPage, 5, (*Processor).asl),
	0x07: undoc(rmw("SLO", ZeroPage, 5, (*Processor).slo)),
	0x08: im("PHP", 3, Register, (*Processor).php),
	0x09: rd("ORA", Immediate, 2, (*Processor).ora),
	0x0A: rmw("ASL", Accumulator, 2, (*Processor).asl),
	0x0B: undoc(rd("ANC", Immediate, 2, (*Processor).anc)),
	0x0C: undoc(rd("NOP", Absolute, 4, (*Processor).nopRead)),
	0x0D: rd("ORA", Absolute, 4, (*Processor).ora),
	0x0E: rmw("ASL", Absolute, 6, (*Processor).asl),
	0x0F: undoc(rmw("SLO", Absolute, 6, (*Processor).slo)),

	0x10: br("BPL", (*Processor).bpl),
	0x11: rd("ORA", IndirectIndexed, 5, (*Processor).ora),
	0x12: jam(),
	0x13: undoc(rmw("SLO", IndirectIndexed, 8, (*Processor).slo)),
	0x14: undoc(rd("NOP", ZeroPageX, 4, (*Processor).nopRead)),
	0x15: rd("ORA", ZeroPageX, 4, (*Processor).ora),
	0x16: rmw("ASL", ZeroPageX, 6, (*Processor).asl),
	0x17: undoc(rmw("SLO", ZeroPageX, 6, (*Processor).slo)),
	0x18: im("CLC", 2, Register, (*Processor).clc),
	0x19: rd("ORA", AbsoluteY, 4, (*Processor).ora),
	0x1A: undoc(im("NOP", 2, Register, (*Processor).nop)),
	0x1B: undoc(rmw("SLO", AbsoluteY, 7, (*Processor).slo)),
	0x1C: undoc(rd("NOP", AbsoluteX, 4, (*Processor).nopRead)),
	0x1D: rd("ORA", AbsoluteX, 4, (*Processor).ora),
	0x1E: rmw("ASL", AbsoluteX, 7, (*Processor).asl),
	0x1F: undoc(rmw("SLO", AbsoluteX, 7, (*Processor).slo)),

	0x20: jp("JSR", Absolute, 6, Subroutine, (*Processor).jsr),
	0x21: rd("AND", IndexedIndirect, 6, (*Processor).and),
	0x22: jam(),
	0x23: undoc(rmw("RLA", IndexedIndirect, 8, (*Processor).rla)),
	0x24: rd("BIT", ZeroPage, 3, (*Processor).bit),
	0x25: rd("AND", ZeroPage, 3, (*Processor).and),
	0x26: rmw("ROL", ZeroPage, 5, (*Processor).rol),
	0x27: undoc(rmw("RLA", ZeroPage, 5, (*Processor).rla)),
	0x28: im("PLP", 4, Register, (*Processor).plp),
	0x29: rd("AND", Immediate, 2, (*Processor).and),
	0x2A: rmw("ROL", Accumulator, 2, (*Processor).rol),
	0x2B: undoc(rd("ANC", Immediate, 2, (*Processor).anc)),
	0x2C: rd("BIT", Absolute, 4, (*Processor).bit),
	0x2D: rd("AND", Absolute, 4, (*Processor).and),
	0x2E: rmw("ROL", Absolute, 6, (*Processor).rol),
	0x2F: undoc(rmw("RLA", Absolute, 6, (*Processor).rla)),

	0x30: br("BMI", (*Processor).bmi),
	0x31: rd("AND", IndirectIndexed, 5, (*Processor).and),
	0x32: jam(),
	0x33: undoc(rmw("RLA", IndirectIndexed, 8, (*Processor).rla)),
	0x34: undoc(rd("NOP", ZeroPageX, 4, (*Processor).nopRead)),
	0x35: rd("AND", ZeroPageX, 4, (*Processor).and),
	0x36: rmw("ROL", ZeroPageX, 6, (*Processor).rol),
	0x37: undoc(rmw("RLA", ZeroPageX, 6, (*Processor).rla)),
	0x38: im("SEC", 2, Register, (*Processor).sec),
	0x39: rd("AND", AbsoluteY, 4, (*Processor).and),
	0x3A: undoc(im("NOP", 2, Register, (*Processor).nop)),
	0x3B: undoc(rmw("RLA", AbsoluteY, 7, (*Processor).rla)),
	0x3C: undoc(rd("NOP", AbsoluteX, 4, (*Processor).nopRead)),
	0x3D: rd("AND", AbsoluteX, 4, (*Processor).and),
	0x3E: rmw("ROL", AbsoluteX, 7, (*Processor).rol),
	0x3F: undoc(rmw("RLA", AbsoluteX, 7, (*Processor).rla)),

	0x40: im("RTI", 6, Interrupt, (*Processor).rti),
	0x41: rd("EOR", IndexedIndirect, 6, (*Processor).eor),
	0x42: jam(),
	0x43: undoc(rmw("SRE", IndexedIndirect, 8, (*Processor).sre)),
	0x44: undoc(rd("NOP", ZeroPage, 3, (*Processor).nopRead)),
	0x45: rd("EOR", ZeroPage, 3, (*Processor).eor),
	0x46: rmw("LSR", ZeroPage, 5, (*Processor).lsr),
	0x47: undoc(rmw("SRE", ZeroPage, 5, (*Processor).sre)),
	0x48: im("PHA", 3, Register, (*Processor).pha),
	0x49: rd("EOR", Immediate, 2, (*Processor).eor),
	0x4A: rmw("LSR", Accumulator, 2, (*Processor).lsr),
	0x4B: undoc(rd("ASR", Immediate, 2, (*Processor).asr)),
	0x4C: jp("JMP", Absolute, 3, Flow, (*Processor).jmp),
	0x4D: rd("EOR", Absolute, 4, (*Processor).eor),
	0x4E: rmw("LSR", Absolute, 6, (*Processor).lsr),
	0x4F: undoc(rmw("SRE", Absolute, 6, (*Processor).sre)),

	0x50: br("BVC", (*Processor).bvc),
	0x51: rd("EOR", IndirectIndexed, 5, (*Processor).eor),
	0x52: jam(),
	0x53: undoc(rmw("SRE", IndirectIndexed, 8, (*Processor).sre)),
	0x54: undoc(rd("NOP", ZeroPageX, 4, (*Processor).nopRead)),
	0x55: rd("EOR", ZeroPageX, 4, (*Processor).eor),
	0x56: rmw("LSR", ZeroPageX, 6, (*Processor).lsr),
	0x57: undoc(rmw("SRE", ZeroPageX, 6, (*Processor).sre)),
	0x58: im("CLI", 2, Register, (*Processor).cli),
	0x59: rd("EOR", AbsoluteY, 4, (*Processor).eor),
	0x5A: undoc(im("NOP", 2, Register, (*Processor).nop)),
	0x5B: undoc(rmw("SRE", AbsoluteY, 7, (*Processor).sre)),
	0x5C: undoc(rd("NOP", AbsoluteX, 4, (*Processor).nopRead)),
	0x5D: rd("EOR", AbsoluteX, 4, (*Processor).eor),
	0x5E: rmw("LSR", AbsoluteX, 7, (*Processor).lsr),
	0x5F: undoc(rmw("SRE", AbsoluteX, 7, (*Processor).sre)),

	0x60: im("RTS", 6, Subroutine, (*Processor).rts),
	0x61: rd("ADC", IndexedIndirect, 6, (*Processor).adc),
	0x62: jam(),
	0x63: undoc(rmw("RRA", IndexedIndirect, 8, (*Processor).rra)),
	0x64: undoc(rd("NOP", ZeroPage, 3, (*Processor).nopRead)),
	0x65: rd("ADC", ZeroPage, 3, (*Processor).adc),
	0x66: rmw("ROR", ZeroPage, 5, (*Processor).ror),
	0x67: undoc(rmw("RRA", ZeroPage, 5, (*Processor).rra)),
	0x68: im("PLA", 4, Register, (*Processor).pla),
	0x69: rd("ADC", Immediate, 2, (*Processor).adc),
	0x6A: rmw("ROR", Accumulator, 2, (*Processor).ror),
	0x6B: undoc(rd("ARR", Immediate, 2, (*Processor).arr)),
	0x6C: jp("JMP", Indirect, 5, Flow, (*Processor).jmp),
	0x6D: rd("ADC", Absolute, 4, (*Processor).adc),
	0x6E: rmw("ROR", Absolute, 6, (*Processor).ror),
	0x6F: undoc(rmw("RRA", Absolute, 6, (*Processor).rra)),

	0x70: br("BVS", (*Processor).bvs),
	0x71: rd("ADC", IndirectIndexed, 5, (*Processor).adc),
	0x72: jam(),
	0x73: undoc(rmw("RRA", IndirectIndexed, 8, (*Processor).rra)),
	0x74: undoc(rd("NOP", ZeroPageX, 4, (*Processor).nopRead)),
	0x75: rd("ADC", ZeroPageX, 4, (*Processor).adc),
	0x76: rmw("ROR", ZeroPageX, 6, (*Processor).ror),
	0x77: undoc(rmw("RRA", ZeroPageX, 6, (*Processor).rra)),
	0x78: im("SEI", 2, Register, (*Processor).sei),
	0x79: rd("ADC", AbsoluteY, 4, (*Processor).adc),
	0x7A: undoc(im("NOP", 2, Register, (*Processor).nop)),
	0x7B: undoc(rmw("RRA", AbsoluteY, 7, (*Processor).rra)),
	0x7C: undoc(rd("NOP", AbsoluteX, 4, (*Processor).nopRead)),
	0x7D: rd("ADC", AbsoluteX, 4, (*Processor).adc),
	0x7E: rmw("ROR", AbsoluteX, 7, (*Processor).ror),
	0x7F: undoc(rmw("RRA", AbsoluteX, 7, (*Processor).rra)),

	0x80: undoc(rd("NOP", Immediate, 2, (*Processor).nopRead)),
	0x81: wr("STA", IndexedIndirect, 6, (*Processor).sta),
	0x82: undoc(rd("NOP", Immediate, 2, (*Processor).nopRead)),
	0x83: undoc(wr("SAX", IndexedIndirect, 6, (*Processor).sax)),
	0x84: wr("STY", ZeroPage, 3, (*Processor).sty),
	0x85: wr("STA", ZeroPage, 3, (*Processor).sta),
	0x86: wr("STX", ZeroPage, 3, (*Processor).stx),
	0x87: undoc(wr("SAX", ZeroPage, 3, (*Processor).sax)),
	0x88: im("DEY", 2, Register, (*Processor).dey),
	0x89: undoc(rd("NOP", Immediate, 2, (*Processor).nopRead)),
	0x8A: im("TXA", 2, Register, (*Processor).txa),
	0x8B: undoc(rd("ANE", Immediate, 2, (*Processor).ane)),
	0x8C: wr("STY", Absolute, 4, (*Processor).sty),
	0x8D: wr("STA", Absolute, 4, (*Processor).sta),
	0x8E: wr("STX", Absolute, 4, (*Processor).stx),
	0x8F: undoc(wr("SAX", Absolute, 4, (*Processor).sax)),

	0x90: br("BCC", (*Processor).bcc),
	0x91: wr("STA", IndirectIndexed, 6, (*Processor).sta),
	0x92: jam(),
	0x93: unstable("SHA", IndirectIndexed, 6),
	0x94: wr("STY", ZeroPageX, 4, (*Processor).sty),
	0x95: wr("STA", ZeroPageX, 4, (*Processor).sta),
	0x96: wr("STX", ZeroPageY, 4, (*Processor).stx),
	0x97: undoc(wr("SAX", ZeroPageY, 4, (*Processor).sax)),
	0x98: im("TYA", 2, Register, (*Processor).tya),
	0x99: wr("STA", AbsoluteY, 5, (*Processor).sta),
	0x9A: im("TXS", 2, Register, (*Processor).txs),
	0x9B: unstable("SHS", AbsoluteY, 5),
	0x9C: unstable("SHY", AbsoluteX, 5),
	0x9D: wr("STA", AbsoluteX, 5, (*Processor).sta),
	0x9E: unstable("SHX", AbsoluteY, 5),
	0x9F: unstable("SHA", AbsoluteY, 5),

	0xA0: rd("LDY", Immediate, 2, (*Processor).ldy),
	0xA1: rd("LDA", IndexedIndirect, 6, (*Processor).lda),
	0xA2: rd("LDX", Immediate, 2, (*Processor).ldx),
	0xA3: undoc(rd("LAX", IndexedIndirect, 6, (*Processor).lax)),
	0xA4: rd("LDY", ZeroPage, 3, (*Processor).ldy),
	0xA5: rd("LDA", ZeroPage, 3, (*Processor).lda),
	0xA6: rd("LDX", ZeroPage, 3, (*Processor).ldx),
	0xA7: undoc(rd("LAX", ZeroPage, 3, (*Processor).lax)),
	0xA8: im("TAY", 2, Register, (*Processor).tay),
	0xA9: rd("LDA", Immediate, 2, (*Processor).lda),
	0xAA: im("TAX", 2, Register, (*Processor).tax),
	0xAB: undoc(rd("LXA", Immediate, 2, (*Processor).lxa)),
	0xAC: rd("LDY", Absolute, 4, (*Processor).ldy),
	0xAD: rd("LDA", Absolute, 4, (*Processor).lda),
	0xAE: rd("LDX", Absolute, 4, (*Processor).ldx),
	0xAF: undoc(rd("LAX", Absolute, 4, (*Processor).lax)),

	0xB0: br("BCS", (*Processor).bcs),
	0xB1: rd("LDA", IndirectIndexed, 5, (*Processor).lda),
	0xB2: jam(),
	0xB3: undoc(rd("LAX", IndirectIndexed, 5, (*Processor).lax)),
	0xB4: rd("LDY", ZeroPageX, 4, (*Processor).ldy),
	0xB5: rd("LDA", ZeroPageX, 4, (*Processor).lda),
	0xB6: rd("LDX", ZeroPageY, 4, (*Processor).ldx),
	0xB7: undoc(rd("LAX", ZeroPageY, 4, (*Processor).lax)),
	0xB8: im("CLV", 2, Register, (*Processor).clv),
	0xB9: rd("LDA", AbsoluteY, 4, (*Processor).lda),
	0xBA: im("TSX", 2, Register, (*Processor).tsx),
	0xBB: undoc(rd("LAS", AbsoluteY, 4, (*Processor).las)),
	0xBC: rd("LDY", AbsoluteX, 4, (*Processor).ldy),
	0xBD: rd("LDA", AbsoluteX, 4, (*Processor).lda),
	0xBE: rd("LDX", AbsoluteY, 4, (*Processor).ldx),
	0xBF: undoc(rd("LAX", AbsoluteY, 4, (*Processor).lax)),

	0xC0: rd("CPY", Immediate, 2, (*Processor).cpy),
	0xC1: rd("CMP", IndexedIndirect, 6, (*Processor).cmp),
	0xC2: undoc(rd("NOP", Immediate, 2, (*Processor).nopRead)),
	0xC3: undoc(rmw("DCP", IndexedIndirect, 8, (*Processor).dcp)),
	0xC4: rd("CPY", ZeroPage, 3, (*Processor).cpy),
	0xC5: rd("CMP", ZeroPage, 3, (*Processor).cmp),
	0xC6: rmw("DEC", ZeroPage, 5, (*Processor).dec),
	0xC7: undoc(rmw("DCP", ZeroPage, 5, (*Processor).dcp)),
	0xC8: im("INY", 2, Register, (*Processor).iny),
	0xC9: rd("CMP", Immediate, 2, (*Processor).cmp),
	0xCA: im("DEX", 2, Register, (*Processor).dex),
	0xCB: undoc(rd("SBX", Immediate, 2, (*Processor).sbx)),
	0xCC: rd("CPY", Absolute, 4, (*Processor).cpy),
	0xCD: rd("CMP", Absolute, 4, (*Processor).cmp),
	0xCE: rmw("DEC", Absolute, 6, (*Processor).dec),
	0xCF: undoc(rmw("DCP", Absolute, 6, (*Processor).dcp)),

	0xD0: br("BNE", (*Processor).bne),
	0xD1: rd("CMP", IndirectIndexed, 5, (*Processor).cmp),
	0xD2: jam(),
	0xD3: undoc(rmw("DCP", IndirectIndexed, 8, (*Processor).dcp)),
	0xD4: undoc(rd("NOP", ZeroPageX, 4, (*Processor).nopRead)),
	0xD5: rd("CMP", ZeroPageX, 4, (*Processor).cmp),
	0xD6: rmw("DEC", ZeroPageX, 6, (*Processor).dec),
	0xD7: undoc(rmw("DCP", ZeroPageX, 6, (*Processor).dcp)),
	0xD8: im("CLD", 2, Register, (*Processor).cld),
	0xD9: rd("CMP", AbsoluteY, 4, (*Processor).cmp),
	0xDA: undoc(im("NOP", 2, Register, (*Processor).nop)),
	0xDB: undoc(rmw("DCP", AbsoluteY, 7, (*Processor).dcp)),
	0xDC: undoc(rd("NOP", AbsoluteX, 4, (*Processor).nopRead)),
	0xDD: rd("CMP", AbsoluteX, 4, (*Processor).cmp),
	0xDE: rmw("DEC", AbsoluteX, 7, (*Processor).dec),
	0xDF: undoc(rmw("DCP", AbsoluteX, 7, (*Processor).dcp)),

	0xE0: rd("CPX", Immediate, 2, (*Processor).cpx),
	0xE1: rd("SBC", IndexedIndirect, 6, (*Processor).sbc),
	0xE2: undoc(rd("NOP", Immediate, 2, (*Processor).nopRead)),
	0xE3: undoc(rmw("ISB", IndexedIndirect, 8, (*Processor).isb)),
	0xE4: rd("CPX", ZeroPage, 3, (*Processor).cpx),
	0xE5: rd("SBC", ZeroPage, 3, (*Processor).sbc),
	0xE6: rmw("INC", ZeroPage, 5, (*Processor).inc),
	0xE7: undoc(rmw("ISB", ZeroPage, 5, (*Processor).isb)),
	0xE8: im("INX", 2, Register, (*Processor).inx),
	0xE9: rd("SBC", Immediate, 2, (*Processor).sbc),
	0xEA: im("NOP", 2, Register, (*Processor).nop),
	0xEB: undoc(rd("SBC", Immediate, 2, (*Processor).sbc)),
	0xEC: rd("CPX", Absolute, 4, (*Processor).cpx),
	0xED: rd("SBC", Absolute, 4, (*Processor).sbc),
	0xEE: rmw("INC", Absolute, 6, (*Processor).inc),
	0xEF: undoc(rmw("ISB", Absolute, 6, (*Processor).isb)),

	0xF0: br("BEQ", (*Processor).beq),
	0xF1: rd("SBC", IndirectIndexed, 5, (*Processor).sbc),
	0xF2: jam(),
	0xF3: undoc(rmw("ISB", IndirectIndexed, 8, (*Processor).isb)),
	0xF4: undoc(rd("NOP", ZeroPageX, 4, (*Processor).nopRead)),
	0xF5: rd("SBC", ZeroPageX, 4, (*Processor).sbc),
	0xF6: rmw("INC", ZeroPageX, 6, (*Processor).inc),
	0xF7: undoc(rmw("ISB", ZeroPageX, 6, (*Processor).isb)),
	0xF8: im("SED", 2, Register, (*Processor).sed),
	0xF9: rd("SBC", AbsoluteY, 4, (*Processor).sbc),
	0xFA: undoc(im("NOP", 2, Register, (*Processor).nop)),
	0xFB: undoc(rmw("ISB", AbsoluteY, 7, (*Processor).isb)),
	0xFC: undoc(rd("NOP", AbsoluteX, 4, (*Processor).nopRead)),
	0xFD: rd("SBC", AbsoluteX, 4, (*Processor).sbc),
	0xFE: rmw("INC", AbsoluteX, 7, (*Processor).inc),
	0xFF: undoc(rmw("ISB", AbsoluteX, 7, (*Processor).isb)),
}

func init() {
	for i := range opcodes {
		opcodes[i].OpCode = uint8(i)
		opcodes[i].Bytes = opcodes[i].AddressingMode.Bytes()
	}
}
