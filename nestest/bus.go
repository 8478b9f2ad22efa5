package nestest

import (
	"bytes"
	"os"

	"github.com/pkg/errors"
)

const (
	headerSize  = 16
	trainerSize = 512
	prgBankSize = 16 * 1024
	chrBankSize = 8 * 1024
	ramSize     = 0x0800
)

var magic = []byte("NES\x1A")

// Bus is the smallest NES memory map nestest needs: 2K of RAM mirrored up to
// 0x1FFF and an NROM cartridge at 0x8000-0xFFFF (a 16K image appears twice).
// Everything else reads as 0 and ignores writes.
// It implements memory.Bank.
type Bus struct {
	ram [ramSize]uint8
	prg []uint8
}

// NewBus returns a Bus with the given PRG image mapped. It must be 16K or 32K.
func NewBus(prg []uint8) (*Bus, error) {
	if l := len(prg); l != prgBankSize && l != 2*prgBankSize {
		return nil, errors.Errorf("PRG must be 16K or 32K for NROM, got %d bytes", l)
	}
	b := &Bus{prg: make([]uint8, len(prg))}
	copy(b.prg, prg)
	return b, nil
}

// Read implements memory.Bus.
func (b *Bus) Read(addr uint16) uint8 {
	switch {
	case addr < 0x2000:
		return b.ram[addr&(ramSize-1)]
	case addr >= 0x8000:
		return b.prg[int(addr-0x8000)%len(b.prg)]
	}
	return 0x00
}

// Write implements memory.Bus.
func (b *Bus) Write(addr uint16, val uint8) {
	if addr < 0x2000 {
		b.ram[addr&(ramSize-1)] = val
	}
}

// PowerOn implements memory.Bank. RAM is cleared; the cartridge is untouched.
func (b *Bus) PowerOn() {
	for i := range b.ram {
		b.ram[i] = 0x00
	}
}

// ParseROM maps the PRG data of an iNES image. Only mapper 0 (NROM) is accepted.
func ParseROM(data []byte) (*Bus, error) {
	if len(data) < headerSize || !bytes.Equal(data[:len(magic)], magic) {
		return nil, errors.New("not an iNES image (bad magic)")
	}
	h := data[:headerSize]
	if mapper := h[6]>>4 | h[7]&0xF0; mapper != 0 {
		return nil, errors.Errorf("mapper %d isn't supported, only NROM (0)", mapper)
	}
	off := headerSize
	if h[6]&0x04 != 0 {
		off += trainerSize
	}
	prgLen := int(h[4]) * prgBankSize
	if end := off + prgLen + int(h[5])*chrBankSize; len(data) < end {
		return nil, errors.Errorf("image truncated: header wants %d bytes, have %d", end, len(data))
	}
	b, err := NewBus(data[off : off+prgLen])
	if err != nil {
		return nil, errors.Wrap(err, "bad PRG size")
	}
	return b, nil
}

// LoadROM reads an iNES file from disk and returns a Bus with it mapped.
func LoadROM(path string) (*Bus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "can't read ROM %s", path)
	}
	b, err := ParseROM(data)
	if err != nil {
		return nil, errors.Wrapf(err, "can't load ROM %s", path)
	}
	return b, nil
}
