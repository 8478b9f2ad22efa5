package cpu

// Operation bodies. Register and flag effects only: any memory traffic is done
// by execute() using the byte these return. Read operations take the operand
// value, store operations return the value to write and read-modify-write
// operations take the old byte and return the new one.

func (p *Processor) lda(v uint8) { p.A = p.P.SetZN(v) }
func (p *Processor) ldx(v uint8) { p.X = p.P.SetZN(v) }
func (p *Processor) ldy(v uint8) { p.Y = p.P.SetZN(v) }

func (p *Processor) sta() uint8 { return p.A }
func (p *Processor) stx() uint8 { return p.X }
func (p *Processor) sty() uint8 { return p.Y }

func (p *Processor) tax() { p.X = p.P.SetZN(p.A) }
func (p *Processor) tay() { p.Y = p.P.SetZN(p.A) }
func (p *Processor) txa() { p.A = p.P.SetZN(p.X) }
func (p *Processor) tya() { p.A = p.P.SetZN(p.Y) }
func (p *Processor) tsx() { p.X = p.P.SetZN(p.S) }

// txs is the only transfer which doesn't touch flags.
func (p *Processor) txs() { p.S = p.X }

// adc adds v and carry to A. The carry out is bit 8 of the 9 bit sum and V is
// set if A and v share a sign which the result doesn't.
// Taken from http://www.righto.com/2012/12/the-6502-overflow-flag-explained.html
func (p *Processor) adc(v uint8) {
	sum := uint16(p.A) + uint16(v) + uint16(p.P.carry())
	res := uint8(sum)
	p.P.V = (p.A^res)&(v^res)&0x80 != 0
	p.P.C = sum&0x100 != 0
	p.A = p.P.SetZN(res)
}

// sbc is binary mode only (the 2A03 has no BCD) so it's ADC of the ones complement.
func (p *Processor) sbc(v uint8) { p.adc(^v) }

func (p *Processor) and(v uint8) { p.A = p.P.SetZN(p.A & v) }
func (p *Processor) ora(v uint8) { p.A = p.P.SetZN(p.A | v) }
func (p *Processor) eor(v uint8) { p.A = p.P.SetZN(p.A ^ v) }

// bit sets Z from A&v and copies bits 7 and 6 of v into N and V.
func (p *Processor) bit(v uint8) {
	p.P.Z = p.A&v == 0
	p.P.N = v&P_NEGATIVE != 0
	p.P.V = v&P_OVERFLOW != 0
}

// compare implements the logic for all CMP/CPX/CPY instructions.
// reg-v is done as 2's complement addition by ones complement and add 1
// so carry means no borrow happened. reg is never modified.
func (p *Processor) compare(reg, v uint8) {
	diff := uint16(reg) + uint16(^v) + 1
	p.P.C = diff&0x100 != 0
	p.P.SetZN(uint8(diff))
}

func (p *Processor) cmp(v uint8) { p.compare(p.A, v) }
func (p *Processor) cpx(v uint8) { p.compare(p.X, v) }
func (p *Processor) cpy(v uint8) { p.compare(p.Y, v) }

func (p *Processor) clc() { p.P.C = false }
func (p *Processor) sec() { p.P.C = true }
func (p *Processor) cli() { p.P.I = false }
func (p *Processor) sei() { p.P.I = true }
func (p *Processor) clv() { p.P.V = false }
func (p *Processor) cld() { p.P.D = false }
func (p *Processor) sed() { p.P.D = true }

// Branch conditions. execute() owns the PC update and the cycle penalties.
func (p *Processor) bpl() bool { return !p.P.N }
func (p *Processor) bmi() bool { return p.P.N }
func (p *Processor) bvc() bool { return !p.P.V }
func (p *Processor) bvs() bool { return p.P.V }
func (p *Processor) bcc() bool { return !p.P.C }
func (p *Processor) bcs() bool { return p.P.C }
func (p *Processor) bne() bool { return !p.P.Z }
func (p *Processor) beq() bool { return p.P.Z }

func (p *Processor) asl(v uint8) uint8 {
	p.P.C = v&0x80 != 0
	return p.P.SetZN(v << 1)
}

func (p *Processor) lsr(v uint8) uint8 {
	p.P.C = v&0x01 != 0
	return p.P.SetZN(v >> 1)
}

func (p *Processor) rol(v uint8) uint8 {
	c := p.P.carry()
	p.P.C = v&0x80 != 0
	return p.P.SetZN(v<<1 | c)
}

func (p *Processor) ror(v uint8) uint8 {
	c := p.P.carry() << 7
	p.P.C = v&0x01 != 0
	return p.P.SetZN(v>>1 | c)
}

func (p *Processor) inc(v uint8) uint8 { return p.P.SetZN(v + 1) }
func (p *Processor) dec(v uint8) uint8 { return p.P.SetZN(v - 1) }

func (p *Processor) inx() { p.X = p.P.SetZN(p.X + 1) }
func (p *Processor) iny() { p.Y = p.P.SetZN(p.Y + 1) }
func (p *Processor) dex() { p.X = p.P.SetZN(p.X - 1) }
func (p *Processor) dey() { p.Y = p.P.SetZN(p.Y - 1) }

func (p *Processor) pha() { p.pushStack(p.A) }
func (p *Processor) pla() { p.A = p.P.SetZN(p.popStack()) }

// php always pushes B set along with bit 5.
func (p *Processor) php() { p.pushStack(p.P.Pack() | P_B) }

// plp drops B and bit 5 on the floor since neither is a real flag.
func (p *Processor) plp() { p.P.Unpack(p.popStack()) }

func (p *Processor) jmp(addr uint16) { p.PC = addr }

// jsr pushes the address of the last byte of the JSR (return address - 1).
// RTS compensates by adding one.
func (p *Processor) jsr(addr uint16) {
	p.pushWord(p.PC - 1)
	p.PC = addr
}

func (p *Processor) rts() { p.PC = p.popWord() + 1 }

// brk skips the padding byte after the opcode so the pushed PC is opcode+2.
func (p *Processor) brk() {
	p.pushWord(p.PC + 1)
	p.pushStack(p.P.Pack() | P_B)
	p.P.I = true
	p.PC = p.readWord(IRQ_VECTOR)
}

// rti pulls P then PC. Unlike RTS there is no +1 adjustment.
func (p *Processor) rti() {
	p.P.Unpack(p.popStack())
	p.PC = p.popWord()
}

func (p *Processor) nop() {}

// nopRead is the DOP/TOP family. The operand is read (and may have bus side
// effects) but nothing is done with it.
func (p *Processor) nopRead(uint8) {}

// Undocumented opcodes.
// Descriptions from http://nesdev.com/6502_cpu.txt and
// http://www.ffd2.com/fridge/docs/6502-NMOS.extra.opcodes

// anc is AND #i with C copied from bit 7 of the result.
func (p *Processor) anc(v uint8) {
	p.A = p.P.SetZN(p.A & v)
	p.P.C = p.A&0x80 != 0
}

// ane uses 0xEE as the magic constant per
// http://visual6502.org/wiki/index.php?title=6502_Opcode_8B_(XAA,_ANE)
func (p *Processor) ane(v uint8) { p.A = p.P.SetZN((p.A | 0xEE) & p.X & v) }

// arr is AND #i then ROR A, except C comes from bit 6 and V is bit 6 ^ bit 5.
func (p *Processor) arr(v uint8) {
	res := (p.A&v)>>1 | p.P.carry()<<7
	p.A = p.P.SetZN(res)
	p.P.C = res&0x40 != 0
	p.P.V = (res>>6^res>>5)&0x01 != 0
}

// asr (also known as ALR) is AND #i then LSR A.
func (p *Processor) asr(v uint8) { p.A = p.lsr(p.A & v) }

// dcp decrements memory then compares it against A.
func (p *Processor) dcp(v uint8) uint8 {
	v--
	p.cmp(v)
	return v
}

// isb increments memory then subtracts it from A.
func (p *Processor) isb(v uint8) uint8 {
	v++
	p.sbc(v)
	return v
}

func (p *Processor) las(v uint8) {
	v &= p.S
	p.A, p.X, p.S = v, v, v
	p.P.SetZN(v)
}

func (p *Processor) lax(v uint8) {
	p.A, p.X = v, v
	p.P.SetZN(v)
}

// lxa loads A and X with the immediate. On silicon it's (A | magic) & #i with
// an unstable magic value. This uses 0xFF.
func (p *Processor) lxa(v uint8) { p.lax(v) }

// rla is ROL memory then AND with A.
func (p *Processor) rla(v uint8) uint8 {
	v = p.rol(v)
	p.A = p.P.SetZN(p.A & v)
	return v
}

// rra is ROR memory then ADC. The carry out of the ROR feeds the ADC.
func (p *Processor) rra(v uint8) uint8 {
	v = p.ror(v)
	p.adc(v)
	return v
}

func (p *Processor) sax() uint8 { return p.A & p.X }

// sbx computes X = (A & X) - #i. Carry works like CMP and V is untouched.
func (p *Processor) sbx(v uint8) {
	ax := p.A & p.X
	diff := uint16(ax) + uint16(^v) + 1
	p.P.C = diff&0x100 != 0
	p.X = p.P.SetZN(uint8(diff))
}

// slo is ASL memory then ORA with A.
func (p *Processor) slo(v uint8) uint8 {
	v = p.asl(v)
	p.A = p.P.SetZN(p.A | v)
	return v
}

// sre is LSR memory then EOR with A.
func (p *Processor) sre(v uint8) uint8 {
	v = p.lsr(v)
	p.A = p.P.SetZN(p.A ^ v)
	return v
}
