package cpu

// AddressingMode describes how an instruction finds its operand.
type AddressingMode int

const (
	Implied         AddressingMode = iota
	Accumulator                    // A
	Immediate                      // #i
	ZeroPage                       // d
	ZeroPageX                      // d,x
	ZeroPageY                      // d,y
	Absolute                       // a
	AbsoluteX                      // a,x
	AbsoluteY                      // a,y
	Indirect                       // (a) - JMP only
	IndexedIndirect                // (d,x)
	IndirectIndexed                // (d),y
	Relative                       // *+r - branches only
)

func (m AddressingMode) String() string {
	switch m {
	case Implied:
		return "Implied"
	case Accumulator:
		return "Accumulator"
	case Immediate:
		return "Immediate"
	case ZeroPage:
		return "ZeroPage"
	case ZeroPageX:
		return "ZeroPageX"
	case ZeroPageY:
		return "ZeroPageY"
	case Absolute:
		return "Absolute"
	case AbsoluteX:
		return "AbsoluteX"
	case AbsoluteY:
		return "AbsoluteY"
	case Indirect:
		return "Indirect"
	case IndexedIndirect:
		return "IndexedIndirect"
	case IndirectIndexed:
		return "IndirectIndexed"
	case Relative:
		return "Relative"
	}
	return "unknown addressing mode"
}

// Bytes returns the instruction length (opcode included) for the mode.
func (m AddressingMode) Bytes() int {
	switch m {
	case Implied, Accumulator:
		return 1
	case Absolute, AbsoluteX, AbsoluteY, Indirect:
		return 3
	}
	return 2
}

// fetch returns the byte at PC and advances PC.
func (p *Processor) fetch() uint8 {
	v := p.bus.Read(p.PC)
	p.PC++
	return v
}

// fetchWord returns the little endian word at PC and advances PC past it.
func (p *Processor) fetchWord() uint16 {
	lo := uint16(p.fetch())
	return uint16(p.fetch())<<8 | lo
}

// readZPWord reads a pointer from the zero page. The high byte wraps within
// page 0 so a pointer at 0xFF takes its high byte from 0x00.
func (p *Processor) readZPWord(zp uint8) uint16 {
	lo := uint16(p.bus.Read(uint16(zp)))
	return uint16(p.bus.Read(uint16(zp+1)))<<8 | lo
}

// pageCrossed reports whether a and b live on different pages.
func pageCrossed(a, b uint16) bool {
	return a&0xFF00 != b&0xFF00
}

// resolve consumes the operand bytes for mode at PC and returns the effective
// address. For Immediate that's the address of the operand byte itself. For
// Relative it's the branch target. crossed is set when indexing (or the
// branch) moved onto a different page, which is what costs the extra cycle.
// Implied and Accumulator consume nothing and return 0.
func (p *Processor) resolve(mode AddressingMode) (addr uint16, crossed bool) {
	switch mode {
	case Immediate:
		addr = p.PC
		p.PC++
	case ZeroPage:
		addr = uint16(p.fetch())
	case ZeroPageX:
		// Done as a uint8 so it wraps inside page 0.
		addr = uint16(p.fetch() + p.X)
	case ZeroPageY:
		addr = uint16(p.fetch() + p.Y)
	case Absolute:
		addr = p.fetchWord()
	case AbsoluteX:
		base := p.fetchWord()
		addr = base + uint16(p.X)
		crossed = pageCrossed(base, addr)
	case AbsoluteY:
		base := p.fetchWord()
		addr = base + uint16(p.Y)
		crossed = pageCrossed(base, addr)
	case Indirect:
		ptr := p.fetchWord()
		// The high byte is read without carrying into the page so ($30FF) reads
		// 0x30FF and 0x3000.
		lo := uint16(p.bus.Read(ptr))
		hi := (ptr & 0xFF00) | uint16(uint8(ptr)+1)
		addr = uint16(p.bus.Read(hi))<<8 | lo
	case IndexedIndirect:
		addr = p.readZPWord(p.fetch() + p.X)
	case IndirectIndexed:
		base := p.readZPWord(p.fetch())
		addr = base + uint16(p.Y)
		crossed = pageCrossed(base, addr)
	case Relative:
		off := p.fetch()
		// Per http://www.6502.org/tutorials/6502opcodes.html the page is compared
		// against the byte after the branch (i.e. the PC now).
		addr = p.PC + uint16(int16(int8(off)))
		crossed = pageCrossed(p.PC, addr)
	}
	return addr, crossed
}
