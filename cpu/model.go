package cpu

import (
	"fmt"
	"time"
)

// CPUModel is an enumeration of the valid CPU types.
type CPUModel int

const (
	CPU_UNIMPLEMENTED CPUModel = iota // Start of valid cpu enumerations.
	CPU_RP2A03                        // NTSC Ricoh 2A03 (NES, Famicom).
	CPU_RP2A07                        // PAL Ricoh 2A07.
	CPU_DENDY                         // UMC clone used in Dendy famiclones (PAL timing, NTSC-like frame).
	CPU_MAX                           // End of CPU enumerations.
)

func (m CPUModel) String() string {
	switch m {
	case CPU_RP2A03:
		return "RP2A03"
	case CPU_RP2A07:
		return "RP2A07"
	case CPU_DENDY:
		return "Dendy"
	}
	return fmt.Sprintf("CPUModel(%d)", int(m))
}

const (
	NMI_VECTOR   = uint16(0xFFFA)
	RESET_VECTOR = uint16(0xFFFC)
	IRQ_VECTOR   = uint16(0xFFFE)

	RESET_CYCLES     = 7 // Cycles charged for the reset sequence.
	INTERRUPT_CYCLES = 7 // Cycles charged for servicing IRQ/NMI.
)

// Base clocks are kept multiplied by clockM2Mul so the PAL rate stays integral.
const (
	clockM2Mul  = 6
	clockNTSC   = 39375000 * clockM2Mul
	clockPAL    = 35468950 * clockM2Mul
	divNTSC     = 11
	divPAL      = 8
	ppuHActive  = 256
	ppuHBlank   = 85
	ppuVActive  = 240
	ppuVSleep   = 1
	ppuVDummy   = 1
	ppuVIntNTSC = 20
	ppuVIntPAL  = 70
	dendyVSleep = 51
	dendyVInt   = 20
)

// TimingModel describes the clock tree of one CPU variant. All values are in
// master clock units (the crystal rate divided by ClockDivider) unless noted.
// The core never uses these for control flow; they're for the scheduler that
// interleaves CPU steps with the PPU/APU.
type TimingModel struct {
	Model        CPUModel
	Clock        uint32 // Crystal rate multiplied by 6.
	ClockDivider uint32 // Clock / ClockDivider is the master clock in Hz.
	CPUDivider   uint32 // Master clocks per CPU cycle.
	PPUDivider   uint32 // Master clocks per PPU dot.
	FrameClocks  uint32 // Master clocks per frame (averaged over odd/even frames on NTSC).
	FPS          uint32 // Integral frames per second.
}

func newTiming(m CPUModel, clock, div, cpuDiv, ppuDiv, frame uint32) TimingModel {
	return TimingModel{
		Model:        m,
		Clock:        clock,
		ClockDivider: div,
		CPUDivider:   cpuDiv,
		PPUDivider:   ppuDiv,
		FrameClocks:  frame,
		// Rounded to nearest.
		FPS: uint32((uint64(clock) + uint64(div)*uint64(frame)/2) / (uint64(div) * uint64(frame))),
	}
}

// frameClocks returns master clocks per frame for the given dot divider and line counts.
// NTSC skips one dot on odd frames so it averages the two frame lengths.
func frameClocks(ppuDiv, vblank uint32, oddSkip bool) uint32 {
	hsync := ppuDiv * (ppuHActive + ppuHBlank)
	frame := (ppuVActive + vblank) * hsync
	if oddSkip {
		return (frame + frame - ppuDiv) / 2
	}
	return frame
}

// Timing returns the clock tree for the given model.
func Timing(m CPUModel) (TimingModel, error) {
	switch m {
	case CPU_RP2A03:
		return newTiming(m, clockNTSC, divNTSC, 12, 4, frameClocks(4, ppuVSleep+ppuVIntNTSC+ppuVDummy, true)), nil
	case CPU_RP2A07:
		return newTiming(m, clockPAL, divPAL, 16, 5, frameClocks(5, ppuVSleep+ppuVIntPAL+ppuVDummy, false)), nil
	case CPU_DENDY:
		return newTiming(m, clockPAL, divPAL, 15, 5, frameClocks(5, dendyVSleep+dendyVInt+ppuVDummy, false)), nil
	}
	return TimingModel{}, fmt.Errorf("CPU model %d is invalid", m)
}

// MasterClock returns the master clock rate in Hz.
func (t TimingModel) MasterClock() float64 {
	return float64(t.Clock) / float64(t.ClockDivider)
}

// CPUClock returns the CPU (M2) rate in Hz.
func (t TimingModel) CPUClock() float64 {
	return t.MasterClock() / float64(t.CPUDivider)
}

// CPUCyclesPerFrame returns the (possibly fractional) number of CPU cycles in one frame.
func (t TimingModel) CPUCyclesPerFrame() float64 {
	return float64(t.FrameClocks) / float64(t.CPUDivider)
}

// Duration converts a CPU cycle count into wall clock time.
func (t TimingModel) Duration(cycles uint64) time.Duration {
	// cycles * CPUDivider master clocks, each ClockDivider/Clock seconds.
	ns := float64(cycles) * float64(t.CPUDivider) * float64(t.ClockDivider) * float64(time.Second) / float64(t.Clock)
	return time.Duration(ns)
}
