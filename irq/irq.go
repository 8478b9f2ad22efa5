// Package irq defines the basic interfaces for working
// with a 6502 family interrupt. A receiver of interrupts (IRQ/NMI)
// will implement this interface to allow other components which generate
// them (APU frame counter, DMC, PPU vblank, mappers) to easily raise state
// without cross coupling component logic.
// NOTE: Even though the chip makes a distinction between level and edge type interrupts
//       the interfaces here don't. The receiver decides how to sample Raised().
package irq

type Sender interface {
	// Raised indicates whether the interrupt is currently held high.
	Raised() bool
}

type Receiver interface {
	// Install takes the given sender and stores it for later checks in appropriate logic.
	Install(s Sender)
}

// Line is a simple Sender whose state is set directly by its owner.
// The zero value is a line which isn't raised.
type Line struct {
	raised bool
}

// Raised implements Sender.
func (l *Line) Raised() bool {
	return l.raised
}

// Set changes the state of the line.
func (l *Line) Set(raised bool) {
	l.raised = raised
}
