package cpu

import (
	"testing"
)

func TestADCExhaustive(t *testing.T) {
	p := &Processor{}
	for a := 0; a < 256; a++ {
		for v := 0; v < 256; v++ {
			for c := 0; c < 2; c++ {
				p.A = uint8(a)
				p.P = Status{C: c == 1}
				p.adc(uint8(v))

				sum := a + v + c
				signed := int(int8(a)) + int(int8(v)) + c
				want := Status{
					N: sum&0x80 != 0,
					V: signed < -128 || signed > 127,
					Z: sum&0xFF == 0,
					C: sum > 0xFF,
				}
				if p.A != uint8(sum) || p.P != want {
					t.Fatalf("ADC A=0x%.2X v=0x%.2X C=%d: got A=0x%.2X P=%s want A=0x%.2X P=%s", a, v, c, p.A, p.P, uint8(sum), want)
				}
			}
		}
	}
}

func TestSBCExhaustive(t *testing.T) {
	p := &Processor{}
	q := &Processor{}
	for a := 0; a < 256; a++ {
		for v := 0; v < 256; v++ {
			for c := 0; c < 2; c++ {
				p.A, q.A = uint8(a), uint8(a)
				p.P = Status{C: c == 1}
				q.P = p.P
				p.sbc(uint8(v))
				q.adc(^uint8(v))
				if p.A != q.A || p.P != q.P {
					t.Fatalf("SBC A=0x%.2X v=0x%.2X C=%d: got A=0x%.2X P=%s, ADC(^v) gives A=0x%.2X P=%s", a, v, c, p.A, p.P, q.A, q.P)
				}
				// Borrow in is !C.
				diff := a - v - (1 - c)
				if got, want := p.A, uint8(diff); got != want {
					t.Fatalf("SBC A=0x%.2X v=0x%.2X C=%d: got 0x%.2X want 0x%.2X", a, v, c, got, want)
				}
				if got, want := p.P.C, diff >= 0; got != want {
					t.Fatalf("SBC A=0x%.2X v=0x%.2X C=%d: C got %t want %t", a, v, c, got, want)
				}
			}
		}
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		reg, v  uint8
		n, z, c bool
	}{
		{0x10, 0x10, false, true, true},
		{0x10, 0x0F, false, false, true},
		{0x10, 0x11, true, false, false},
		{0x00, 0xFF, false, false, false},
		{0xFF, 0x00, true, false, true},
		{0x80, 0x00, true, false, true},
	}
	for _, test := range tests {
		p := &Processor{A: test.reg, X: test.reg, Y: test.reg}
		for _, f := range []func(uint8){p.cmp, p.cpx, p.cpy} {
			p.P = Status{V: true}
			f(test.v)
			want := Status{N: test.n, Z: test.z, C: test.c, V: true}
			if p.P != want {
				t.Errorf("compare 0x%.2X with 0x%.2X: got %s want %s", test.reg, test.v, p.P, want)
			}
		}
		if p.A != test.reg || p.X != test.reg || p.Y != test.reg {
			t.Errorf("compare modified a register: %+v", p)
		}
	}
}

func TestBIT(t *testing.T) {
	p := &Processor{A: 0x01}
	p.bit(0xC0)
	if want := (Status{N: true, V: true, Z: true}); p.P != want {
		t.Errorf("BIT 0xC0 with A=0x01: got %s want %s", p.P, want)
	}
	p.bit(0x01)
	if want := (Status{}); p.P != want {
		t.Errorf("BIT 0x01 with A=0x01: got %s want %s", p.P, want)
	}
}

func TestUndocumentedALU(t *testing.T) {
	tests := []struct {
		name  string
		a, x  uint8
		s     uint8
		p     Status
		run   func(p *Processor)
		wantA uint8
		wantX uint8
		wantS uint8
		wantP Status
	}{
		{
			name:  "ANC sets C from bit 7",
			a:     0xF0,
			run:   func(p *Processor) { p.anc(0x80) },
			wantA: 0x80,
			wantP: Status{N: true, C: true},
		},
		{
			name:  "ASR",
			a:     0xFF,
			run:   func(p *Processor) { p.asr(0x03) },
			wantA: 0x01,
			wantP: Status{C: true},
		},
		{
			name:  "ARR C from bit 6 V clear",
			a:     0xFF,
			p:     Status{C: true},
			run:   func(p *Processor) { p.arr(0xFF) },
			wantA: 0xFF,
			wantP: Status{N: true, C: true},
		},
		{
			name:  "ARR V from bit 6 xor bit 5",
			a:     0x80,
			run:   func(p *Processor) { p.arr(0xFF) },
			wantA: 0x40,
			wantP: Status{C: true, V: true},
		},
		{
			name:  "ARR zero",
			a:     0x01,
			run:   func(p *Processor) { p.arr(0xFF) },
			wantA: 0x00,
			wantP: Status{Z: true},
		},
		{
			name:  "ANE",
			a:     0x00,
			x:     0xFF,
			run:   func(p *Processor) { p.ane(0x5F) },
			wantA: 0x4E,
			wantX: 0xFF,
		},
		{
			name:  "LXA loads A and X",
			a:     0x12,
			x:     0x34,
			run:   func(p *Processor) { p.lxa(0x80) },
			wantA: 0x80,
			wantX: 0x80,
			wantP: Status{N: true},
		},
		{
			name:  "LAX",
			run:   func(p *Processor) { p.lax(0x00) },
			wantP: Status{Z: true},
		},
		{
			name:  "LAS",
			s:     0xF3,
			run:   func(p *Processor) { p.las(0x3F) },
			wantA: 0x33,
			wantX: 0x33,
			wantS: 0x33,
		},
		{
			name:  "SBX no borrow",
			a:     0xF0,
			x:     0x3F,
			p:     Status{V: true},
			run:   func(p *Processor) { p.sbx(0x10) },
			wantA: 0xF0,
			wantX: 0x20,
			wantP: Status{V: true, C: true},
		},
		{
			name:  "SBX borrow",
			a:     0xF0,
			x:     0x3F,
			run:   func(p *Processor) { p.sbx(0x31) },
			wantA: 0xF0,
			wantX: 0xFF,
			wantP: Status{N: true},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			p := &Processor{A: test.a, X: test.x, S: test.s, P: test.p}
			test.run(p)
			if got, want := p.A, test.wantA; got != want {
				t.Errorf("A - got 0x%.2X want 0x%.2X", got, want)
			}
			if got, want := p.X, test.wantX; got != want {
				t.Errorf("X - got 0x%.2X want 0x%.2X", got, want)
			}
			if got, want := p.S, test.wantS; got != want {
				t.Errorf("S - got 0x%.2X want 0x%.2X", got, want)
			}
			if got, want := p.P, test.wantP; got != want {
				t.Errorf("P - got %s want %s", got, want)
			}
		})
	}
}
