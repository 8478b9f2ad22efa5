// Package cpu defines the 2A03 (NES 6502) architecture and provides
// the methods needed to run the CPU and interface with it
// for emulation. Execution is one whole instruction per Step so an owning
// scheduler can interleave the PPU/APU on instruction boundaries using the
// returned cycle counts.
package cpu

import (
	"fmt"

	"github.com/jmchacon/rp2a03/irq"
	"github.com/jmchacon/rp2a03/memory"
)

type Processor struct {
	A      uint8    // Accumulator register
	X      uint8    // X register
	Y      uint8    // Y register
	S      uint8    // Stack pointer
	P      Status   // Processor status flags
	PC     uint16   // Program counter
	Model  CPUModel // Must be between UNIMPLEMENTED and MAX from above.
	Cycles uint64   // Total cycles executed since power on.

	bus        memory.Bus
	irq        irq.Sender // Level triggered, masked by I.
	nmi        irq.Sender // Edge triggered.
	nmiHigh    bool       // Last sampled NMI level for edge detection.
	halted     bool       // If stopped due to a JAM instruction
	haltOpcode uint8      // Opcode that caused the halt
}

// A few custom error types to distinguish why the CPU stopped

// UnstableOpcode represents one of the SHA/SHS/SHX/SHY opcodes whose result
// depends on bus timing races this core doesn't model. Nothing was executed.
type UnstableOpcode struct {
	Opcode uint8
	PC     uint16
}

// Error implements the interface for error types.
func (e UnstableOpcode) Error() string {
	return fmt.Sprintf("0x%.2X (%s) at 0x%.4X is an unstable opcode", e.Opcode, Mnemonic(e.Opcode), e.PC)
}

// InvalidCPUState represents an invalid CPU state in the emulator.
type InvalidCPUState struct {
	Reason string
}

// Error implements the interface for error types.
func (e InvalidCPUState) Error() string {
	return fmt.Sprintf("invalid CPU state: %s", e.Reason)
}

// HaltOpcode represents an opcode which halts the CPU.
type HaltOpcode struct {
	Opcode uint8
}

// Error implements the interface for error types.
func (e HaltOpcode) Error() string {
	return fmt.Sprintf("HALT(0x%.2X) executed", e.Opcode)
}

// Init will create a new CPU of the type requested and return it in powered on state.
// If the bus is also a memory.Bank it will be powered on first so the reset vector is valid.
func Init(model CPUModel, bus memory.Bus) (*Processor, error) {
	if model <= CPU_UNIMPLEMENTED || model >= CPU_MAX {
		return nil, fmt.Errorf("CPU model %d is invalid", model)
	}
	if bus == nil {
		return nil, InvalidCPUState{"nil bus"}
	}
	p := &Processor{
		Model: model,
		bus:   bus,
	}
	if b, ok := bus.(memory.Bank); ok {
		b.PowerOn()
	}
	p.PowerOn()
	return p, nil
}

// PowerOn will reset the CPU to specific power on state. Registers are zero, stack is at 0xFD
// and P is cleared with interrupts disabled. The starting PC value is loaded from the reset
// vector.
func (p *Processor) PowerOn() {
	p.A = 0
	p.X = 0
	p.Y = 0
	p.S = 0x00
	p.P = Status{}
	p.Cycles = 0
	p.Reset()
}

// Reset is a warm reset (the reset line pulled on a running CPU). A, X and Y keep their
// values and the stack is moved down 3 bytes as if PC/P had been pushed (but nothing is
// written). Flags are not disturbed except for interrupts being disabled and the PC is loaded
// from the reset vector. A halted CPU is running again afterwards. Use PowerOn for a cold
// start with zeroed registers and S at 0xFD.
func (p *Processor) Reset() {
	p.S -= 3
	p.P.I = true
	p.PC = p.readWord(RESET_VECTOR)
	p.halted = false
	p.haltOpcode = 0x00
	p.nmiHigh = false
	p.Cycles += RESET_CYCLES
}

// Halted returns true if a JAM opcode stopped the CPU. Only Reset or PowerOn clear it.
func (p *Processor) Halted() bool {
	return p.halted
}

// Bus returns the memory the CPU is attached to.
func (p *Processor) Bus() memory.Bus {
	return p.bus
}

// IRQ returns the receiver for the (level triggered) IRQ line.
func (p *Processor) IRQ() irq.Receiver {
	return irqInput{p}
}

// NMI returns the receiver for the (edge triggered) NMI line.
func (p *Processor) NMI() irq.Receiver {
	return nmiInput{p}
}

type irqInput struct{ p *Processor }

// Install implements irq.Receiver.
func (i irqInput) Install(s irq.Sender) { i.p.irq = s }

type nmiInput struct{ p *Processor }

// Install implements irq.Receiver.
func (n nmiInput) Install(s irq.Sender) { n.p.nmi = s }

// Step runs one complete instruction (or the entry sequence of a pending
// interrupt) and returns the cycles it took. Cycles is advanced by the same amount.
//
// A JAM opcode returns a HaltOpcode error and the CPU stays halted (returning the
// same error without touching the bus) until Reset. An unstable opcode returns an
// UnstableOpcode error with no state changed; the caller may Skip it.
func (p *Processor) Step() (int, error) {
	// Fast path if halted. The PC won't advance. i.e. we just keep returning the same error.
	if p.halted {
		return 0, HaltOpcode{p.haltOpcode}
	}
	if c, ok := p.interrupt(); ok {
		p.Cycles += uint64(c)
		return c, nil
	}

	op := p.bus.Read(p.PC)
	d := &opcodes[op]
	switch d.Effect {
	case Halt:
		p.halted = true
		p.haltOpcode = op
		return 0, HaltOpcode{op}
	case Unstable:
		return 0, UnstableOpcode{Opcode: op, PC: p.PC}
	}
	p.PC++
	c := p.execute(d)
	p.Cycles += uint64(c)
	return c, nil
}

// Skip steps over the instruction at PC without executing it and returns its
// base cycle count. Intended for UnstableOpcode recovery.
func (p *Processor) Skip() (int, error) {
	if p.halted {
		return 0, HaltOpcode{p.haltOpcode}
	}
	d := &opcodes[p.bus.Read(p.PC)]
	p.PC += uint16(d.Bytes)
	p.Cycles += uint64(d.Cycles)
	return d.Cycles, nil
}

// execute resolves the operand for d and runs it. PC must already be past the opcode.
// This owns all memory traffic for the operand so operations stay pure register/flag
// updates. Returns cycles consumed including page crossing and branch penalties.
func (p *Processor) execute(d *Definition) int {
	cycles := d.Cycles
	addr, crossed := p.resolve(d.AddressingMode)

	switch {
	case d.read != nil:
		d.read(p, p.bus.Read(addr))
		if d.PageSensitive && crossed {
			cycles++
		}
	case d.write != nil:
		p.bus.Write(addr, d.write(p))
	case d.modify != nil:
		if d.AddressingMode == Accumulator {
			p.A = d.modify(p, p.A)
			break
		}
		// The 6502 writes the unmodified value back while it computes the new one.
		v := p.bus.Read(addr)
		p.bus.Write(addr, v)
		p.bus.Write(addr, d.modify(p, v))
	case d.branch != nil:
		if d.branch(p) {
			p.PC = addr
			cycles++
			if crossed {
				cycles++
			}
		}
	case d.jump != nil:
		d.jump(p, addr)
	case d.exec != nil:
		d.exec(p)
	}
	return cycles
}

// interrupt services a pending NMI or IRQ. NMI wins if both are pending.
// Returns the cycles taken and true if one ran.
func (p *Processor) interrupt() (int, bool) {
	if p.nmi != nil {
		high := p.nmi.Raised()
		edge := high && !p.nmiHigh
		p.nmiHigh = high
		if edge {
			p.runInterrupt(NMI_VECTOR)
			return INTERRUPT_CYCLES, true
		}
	}
	if p.irq != nil && !p.P.I && p.irq.Raised() {
		p.runInterrupt(IRQ_VECTOR)
		return INTERRUPT_CYCLES, true
	}
	return 0, false
}

// runInterrupt pushes PC and P (B clear, unlike BRK) and jumps through vec.
func (p *Processor) runInterrupt(vec uint16) {
	p.pushWord(p.PC)
	p.pushStack(p.P.Pack())
	p.P.I = true
	p.PC = p.readWord(vec)
}

// pushStack pushes the given byte onto the stack and adjusts the stack pointer accordingly.
// S wraps within page 1 with no checks, same as the hardware.
func (p *Processor) pushStack(val uint8) {
	p.bus.Write(0x0100+uint16(p.S), val)
	p.S--
}

// popStack pops the top byte off the stack and adjusts the stack pointer accordingly.
func (p *Processor) popStack() uint8 {
	p.S++
	return p.bus.Read(0x0100 + uint16(p.S))
}

// pushWord pushes the high byte then the low byte.
func (p *Processor) pushWord(val uint16) {
	p.pushStack(uint8(val >> 8))
	p.pushStack(uint8(val))
}

// popWord pops the low byte then the high byte.
func (p *Processor) popWord() uint16 {
	lo := uint16(p.popStack())
	return uint16(p.popStack())<<8 | lo
}

func (p *Processor) readWord(addr uint16) uint16 {
	return memory.ReadWord(p.bus, addr)
}
