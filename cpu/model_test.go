package cpu

import (
	"math"
	"testing"
	"time"

	"github.com/go-test/deep"
)

func TestTiming(t *testing.T) {
	tests := []struct {
		model  CPUModel
		want   TimingModel
		master float64
	}{
		{
			model: CPU_RP2A03,
			want: TimingModel{
				Model:        CPU_RP2A03,
				Clock:        236250000,
				ClockDivider: 11,
				CPUDivider:   12,
				PPUDivider:   4,
				FrameClocks:  357366,
				FPS:          60,
			},
			master: 21477272.727,
		},
		{
			model: CPU_RP2A07,
			want: TimingModel{
				Model:        CPU_RP2A07,
				Clock:        212813700,
				ClockDivider: 8,
				CPUDivider:   16,
				PPUDivider:   5,
				FrameClocks:  531960,
				FPS:          50,
			},
			master: 26601712.5,
		},
		{
			model: CPU_DENDY,
			want: TimingModel{
				Model:        CPU_DENDY,
				Clock:        212813700,
				ClockDivider: 8,
				CPUDivider:   15,
				PPUDivider:   5,
				FrameClocks:  531960,
				FPS:          50,
			},
			master: 26601712.5,
		},
	}
	for _, test := range tests {
		t.Run(test.model.String(), func(t *testing.T) {
			got, err := Timing(test.model)
			if err != nil {
				t.Fatalf("Timing(%s): %v", test.model, err)
			}
			if diff := deep.Equal(got, test.want); diff != nil {
				t.Errorf("Timing differs: %v", diff)
			}
			if m := got.MasterClock(); math.Abs(m-test.master) > 0.01 {
				t.Errorf("MasterClock - got %f want %f", m, test.master)
			}
			if got, want := got.CPUClock(), test.master/float64(test.want.CPUDivider); math.Abs(got-want) > 0.01 {
				t.Errorf("CPUClock - got %f want %f", got, want)
			}
			// One second worth of cycles should come back as (about) a second.
			d := got.Duration(uint64(got.CPUClock()))
			if diff := d - time.Second; diff < -time.Microsecond || diff > time.Microsecond {
				t.Errorf("Duration of 1s of cycles - got %s", d)
			}
		})
	}
	for _, m := range []CPUModel{CPU_UNIMPLEMENTED, CPU_MAX} {
		if _, err := Timing(m); err == nil {
			t.Errorf("Timing(%s) didn't return an error", m)
		}
	}
}

func TestCPUCyclesPerFrame(t *testing.T) {
	ntsc, err := Timing(CPU_RP2A03)
	if err != nil {
		t.Fatal(err)
	}
	// 29780.5 is the well known NTSC figure.
	if got, want := ntsc.CPUCyclesPerFrame(), 29780.5; got != want {
		t.Errorf("NTSC cycles per frame - got %f want %f", got, want)
	}
	pal, err := Timing(CPU_RP2A07)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := pal.CPUCyclesPerFrame(), 33247.5; got != want {
		t.Errorf("PAL cycles per frame - got %f want %f", got, want)
	}
}
