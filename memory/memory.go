// Package memory defines the basic interfaces for working
// with a 6502 family memory map. Since each implementation
// that is emulated has specific mappings (including mirrored
// regions and mapper banking) this is defined as an interface.
package memory

// Bus is the only channel a CPU uses to reach memory. Every opcode fetch,
// operand read, stack access and write-back goes through it.
type Bus interface {
	// Read returns the data byte stored at addr. Peripherals behind the bus may
	// have read side effects which the CPU neither knows about nor depends on.
	Read(addr uint16) uint8
	// Write updates addr with the new value. For ROM addresses this is simply a no-op without
	// any error.
	Write(addr uint16, val uint8)
}

// Bank is a Bus which also has a defined power on state.
type Bank interface {
	Bus
	// PowerOn performs power on reset of the memory. This is implementation specific as to
	// whether it's randomized or preset to all zeros.
	PowerOn()
}

// ReadWord returns the little endian 16 bit value stored at addr and addr+1.
// The second read wraps at 0xFFFF like the address bus does.
func ReadWord(b Bus, addr uint16) uint16 {
	lo := uint16(b.Read(addr))
	hi := uint16(b.Read(addr + 1))
	return hi<<8 | lo
}
