package nestest

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-test/deep"
	"github.com/jmchacon/rp2a03/cpu"
)

// program is a small loop touching flags, branches, RAM, the stack and an
// undocumented NOP. It ends on a JMP to itself.
var program = []uint8{
	0xA2, 0x02, // LDX #$02
	0xA9, 0xFF, // LDA #$FF
	0x18,       // CLC
	0x69, 0x01, // ADC #$01
	0xCA,       // DEX
	0xD0, 0xFA, // BNE $C004
	0x8D, 0x00, 0x02, // STA $0200
	0x04, 0xA9, // *NOP $A9
	0x48,             // PHA
	0x4C, 0x10, 0xC0, // JMP $C010
}

var reference = []string{
	"C000  A2 02     LDX #$02                        A:00 X:00 Y:00 P:24 SP:FD PPU:  0, 21 CYC:7",
	"C002  A9 FF     LDA #$FF                        A:00 X:02 Y:00 P:24 SP:FD PPU:  0, 27 CYC:9",
	"C004  18        CLC                             A:FF X:02 Y:00 P:A4 SP:FD PPU:  0, 33 CYC:11",
	"C005  69 01     ADC #$01                        A:FF X:02 Y:00 P:A4 SP:FD PPU:  0, 39 CYC:13",
	"C007  CA        DEX                             A:00 X:02 Y:00 P:27 SP:FD PPU:  0, 45 CYC:15",
	"C008  D0 FA     BNE $C004                       A:00 X:01 Y:00 P:25 SP:FD PPU:  0, 51 CYC:17",
	"C004  18        CLC                             A:00 X:01 Y:00 P:25 SP:FD PPU:  0, 60 CYC:20",
	"C005  69 01     ADC #$01                        A:00 X:01 Y:00 P:24 SP:FD PPU:  0, 66 CYC:22",
	"C007  CA        DEX                             A:01 X:01 Y:00 P:24 SP:FD PPU:  0, 72 CYC:24",
	"C008  D0 FA     BNE $C004                       A:01 X:00 Y:00 P:26 SP:FD PPU:  0, 78 CYC:26",
	"C00A  8D 00 02  STA $0200 = 00                  A:01 X:00 Y:00 P:26 SP:FD PPU:  0, 84 CYC:28",
	"C00D  04 A9    *NOP $A9 = 00                    A:01 X:00 Y:00 P:26 SP:FD PPU:  0, 96 CYC:32",
	"C00F  48        PHA                             A:01 X:00 Y:00 P:26 SP:FD PPU:  0,105 CYC:35",
	"C010  4C 10 C0  JMP $C010                       A:01 X:00 Y:00 P:26 SP:FC PPU:  0,114 CYC:38",
}

// romImage builds a one bank NROM iNES image with code at 0xC000 and the
// reset vector pointing at it.
func romImage(code []uint8) []byte {
	img := append([]byte("NES\x1A"), 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0)
	prg := make([]byte, prgBankSize)
	copy(prg, code)
	prg[0x3FFC] = 0x00
	prg[0x3FFD] = 0xC0
	return append(img, prg...)
}

func setup(t *testing.T, code []uint8) *cpu.Processor {
	t.Helper()
	b, err := ParseROM(romImage(code))
	if err != nil {
		t.Fatalf("Can't parse ROM: %v", err)
	}
	p, err := cpu.Init(cpu.CPU_RP2A03, b)
	if err != nil {
		t.Fatalf("Can't initialize cpu - %v", err)
	}
	p.PC = 0xC000
	return p
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Line
	}{
		{
			name: "first nestest line",
			line: "C000  4C F5 C5  JMP $C5F5                       A:00 X:00 Y:00 P:24 SP:FD PPU:  0, 21 CYC:7",
			want: Line{PC: 0xC000, Mnemonic: "JMP", P: 0x24, S: 0xFD, Cycles: 7, HasCycles: true},
		},
		{
			name: "undocumented",
			line: "E8E3  C3 45    *DCP ($45,X) @ 47 = 0647 = EB    A:40 X:02 Y:9F P:E5 SP:F9 PPU:116,119 CYC:13447",
			want: Line{PC: 0xE8E3, Mnemonic: "DCP", A: 0x40, X: 0x02, Y: 0x9F, P: 0xE5, S: 0xF9, Cycles: 13447, HasCycles: true},
		},
		{
			name: "older log without cycles",
			line: "C72A  D0 E0     BNE $C70C                       A:00 X:00 Y:00 P:26 SP:FB",
			want: Line{PC: 0xC72A, Mnemonic: "BNE", P: 0x26, S: 0xFB},
		},
		{
			name: "older log with CYC before scanline",
			line: "C5F5  A2 00     LDX #$00                        A:00 X:00 Y:00 P:24 SP:FD CYC:  9 SL:241",
			want: Line{PC: 0xC5F5, Mnemonic: "LDX", P: 0x24, S: 0xFD, Cycles: 9, HasCycles: true},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := ParseLine(test.line)
			if err != nil {
				t.Fatalf("ParseLine: %v", err)
			}
			if diff := deep.Equal(got, test.want); diff != nil {
				t.Errorf("Line differs: %v", diff)
			}
		})
	}
}

func TestParseLineErrors(t *testing.T) {
	good := reference[0]
	tests := []struct {
		name string
		line string
	}{
		{"empty", ""},
		{"short", good[:60]},
		{"bad PC", "G000" + good[4:]},
		{"missing A label", good[:48] + "Q" + good[49:]},
		{"bad X value", good[:55] + "ZZ" + good[57:]},
		{"bad cycles", strings.Replace(good, "CYC:7", "CYC:x", 1)},
		{"empty cycles", strings.Replace(good, "CYC:7", "CYC:", 1)},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if l, err := ParseLine(test.line); err == nil {
				t.Errorf("Didn't get an error. Parsed %s", l)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	p := setup(t, program)
	want := "C000  A2 02     LDX #$02                        A:00 X:00 Y:00 P:24 SP:FD CYC:7"
	got := Format(p)
	if got != want {
		t.Errorf("Format:\ngot  %q\nwant %q", got, want)
	}
	l, err := ParseLine(got)
	if err != nil {
		t.Fatalf("Can't parse formatted line: %v", err)
	}
	if diff := deep.Equal(l, Capture(p)); diff != nil {
		t.Errorf("Format and Capture disagree: %v", diff)
	}
}

func TestRun(t *testing.T) {
	p := setup(t, program)
	var out bytes.Buffer
	// The blank line at the end is how logs usually finish.
	n, err := Run(p, strings.NewReader(strings.Join(reference, "\n")+"\n\n"), 0, &out)
	if err != nil {
		t.Fatalf("Run failed after %d lines: %v\n%s", n, err, out.String())
	}
	if got, want := n, len(reference); got != want {
		t.Errorf("Lines matched - got %d want %d", got, want)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if got, want := len(lines), len(reference); got != want {
		t.Fatalf("Output lines - got %d want %d", got, want)
	}
	for i, l := range lines {
		// Same layout up to the PPU column which isn't modelled. The disassembly
		// in between lacks the memory annotations.
		got, want := l[:colSP+5], reference[i][:colSP+5]
		if got[:colMnemonic] != want[:colMnemonic] || got[colA:] != want[colA:] {
			t.Errorf("Output line %d:\ngot  %q\nwant %q", i+1, got, want)
		}
	}
	if got, want := p.Bus().Read(0x0200), uint8(0x01); got != want {
		t.Errorf("STA $0200 - got 0x%.2X want 0x%.2X", got, want)
	}
	if got, want := p.Bus().Read(0x01FD), uint8(0x01); got != want {
		t.Errorf("PHA - got 0x%.2X want 0x%.2X", got, want)
	}
}

func TestRunLimit(t *testing.T) {
	p := setup(t, program)
	n, err := Run(p, strings.NewReader(strings.Join(reference, "\n")), 5, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got, want := n, 5; got != want {
		t.Errorf("Lines matched - got %d want %d", got, want)
	}
	if got, want := p.PC, uint16(0xC008); got != want {
		t.Errorf("PC - got 0x%.4X want 0x%.4X", got, want)
	}
}

func TestRunMismatch(t *testing.T) {
	tests := []struct {
		name   string
		line   int
		from   string
		to     string
		fields []string
	}{
		{"register", 9, "A:01 X:01", "A:02 X:01", []string{"A"}},
		{"flags and stack", 14, "P:26 SP:FC", "P:A6 SP:FD", []string{"P", "SP"}},
		{"cycles", 7, "CYC:20", "CYC:19", []string{"CYC"}},
		{"pc and mnemonic", 3, "C004  18        CLC", "C005  69 01     ADC", []string{"PC", "mnemonic"}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ref := make([]string, len(reference))
			copy(ref, reference)
			ref[test.line-1] = strings.Replace(ref[test.line-1], test.from, test.to, 1)
			p := setup(t, program)
			n, err := Run(p, strings.NewReader(strings.Join(ref, "\n")), 0, nil)
			var m *Mismatch
			if !errors.As(err, &m) {
				t.Fatalf("Didn't get a mismatch: %v", err)
			}
			if got, want := n, test.line-1; got != want {
				t.Errorf("Lines matched - got %d want %d", got, want)
			}
			if got, want := m.Line, test.line; got != want {
				t.Errorf("Mismatch line - got %d want %d", got, want)
			}
			if diff := deep.Equal(m.Fields(), test.fields); diff != nil {
				t.Errorf("Fields differ: %v\n%s", diff, spew.Sdump(m))
			}
			if !strings.Contains(m.Error(), "want:") {
				t.Errorf("Error text missing detail: %q", m.Error())
			}
		})
	}
}

func TestRunStepError(t *testing.T) {
	// JAM straight away. The first line matches then the step fails.
	p := setup(t, []uint8{0x02})
	line := "C000  02       *JAM                             A:00 X:00 Y:00 P:24 SP:FD CYC:7"
	n, err := Run(p, strings.NewReader(line), 0, nil)
	var h cpu.HaltOpcode
	if !errors.As(err, &h) {
		t.Fatalf("Didn't get a HaltOpcode: %v", err)
	}
	if got, want := n, 1; got != want {
		t.Errorf("Lines matched - got %d want %d", got, want)
	}
}

func TestBus(t *testing.T) {
	prg := make([]uint8, prgBankSize)
	prg[0x0000] = 0x11
	prg[0x3FFF] = 0x22
	b, err := NewBus(prg)
	if err != nil {
		t.Fatalf("NewBus: %v", err)
	}
	b.Write(0x0001, 0xAB)
	for _, addr := range []uint16{0x0001, 0x0801, 0x1001, 0x1801} {
		if got, want := b.Read(addr), uint8(0xAB); got != want {
			t.Errorf("RAM mirror 0x%.4X - got 0x%.2X want 0x%.2X", addr, got, want)
		}
	}
	b.Write(0x1FFF, 0xCD)
	if got, want := b.Read(0x07FF), uint8(0xCD); got != want {
		t.Errorf("RAM mirror write - got 0x%.2X want 0x%.2X", got, want)
	}
	for _, addr := range []uint16{0x2000, 0x4015, 0x6000} {
		b.Write(addr, 0xFF)
		if got := b.Read(addr); got != 0x00 {
			t.Errorf("Unmapped 0x%.4X read 0x%.2X", addr, got)
		}
	}
	// 16K images appear at both 0x8000 and 0xC000.
	for addr, want := range map[uint16]uint8{0x8000: 0x11, 0xC000: 0x11, 0xBFFF: 0x22, 0xFFFF: 0x22} {
		if got := b.Read(addr); got != want {
			t.Errorf("PRG 0x%.4X - got 0x%.2X want 0x%.2X", addr, got, want)
		}
	}
	b.Write(0x8000, 0x99)
	if got, want := b.Read(0x8000), uint8(0x11); got != want {
		t.Errorf("PRG was writable - got 0x%.2X want 0x%.2X", got, want)
	}
	b.PowerOn()
	if got := b.Read(0x0001); got != 0x00 {
		t.Errorf("RAM not cleared by PowerOn: 0x%.2X", got)
	}
	if got, want := b.Read(0x8000), uint8(0x11); got != want {
		t.Errorf("PowerOn cleared PRG - got 0x%.2X want 0x%.2X", got, want)
	}

	big := make([]uint8, 2*prgBankSize)
	big[prgBankSize] = 0x33
	b, err = NewBus(big)
	if err != nil {
		t.Fatalf("NewBus 32K: %v", err)
	}
	if got, want := b.Read(0xC000), uint8(0x33); got != want {
		t.Errorf("32K PRG 0xC000 - got 0x%.2X want 0x%.2X", got, want)
	}
	if _, err := NewBus(make([]uint8, 3*prgBankSize)); err == nil {
		t.Error("NewBus accepted 48K of PRG")
	}
}

func TestParseROM(t *testing.T) {
	good := romImage(program)
	trainer := append(append([]byte{}, good[:headerSize]...), make([]byte, trainerSize)...)
	trainer[6] |= 0x04
	trainer = append(trainer, good[headerSize:]...)
	mapper := append([]byte{}, good...)
	mapper[6] = 0x10
	banks := append([]byte{}, good...)
	banks[4] = 3
	banks = append(banks, make([]byte, 2*prgBankSize)...)

	tests := []struct {
		name    string
		data    []byte
		wantErr bool
	}{
		{"good", good, false},
		{"trainer", trainer, false},
		{"bad magic", append([]byte("NES\x00"), good[4:]...), true},
		{"too short", good[:8], true},
		{"mapper 1", mapper, true},
		{"truncated", good[:len(good)-1], true},
		{"3 PRG banks", banks, true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			b, err := ParseROM(test.data)
			if got, want := err != nil, test.wantErr; got != want {
				t.Fatalf("error - got %v want error %t", err, want)
			}
			if err != nil {
				return
			}
			if got, want := b.Read(0xC000), program[0]; got != want {
				t.Errorf("PRG 0xC000 - got 0x%.2X want 0x%.2X", got, want)
			}
		})
	}
}

func TestLoadROM(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.nes")
	if err := os.WriteFile(fn, romImage(program), 0o644); err != nil {
		t.Fatalf("Can't write ROM: %v", err)
	}
	b, err := LoadROM(fn)
	if err != nil {
		t.Fatalf("LoadROM: %v", err)
	}
	if got, want := b.Read(0xC001), program[1]; got != want {
		t.Errorf("PRG 0xC001 - got 0x%.2X want 0x%.2X", got, want)
	}
	_, err = LoadROM(filepath.Join(t.TempDir(), "missing.nes"))
	if err == nil {
		t.Fatal("LoadROM of a missing file worked")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadROM error doesn't wrap the cause: %v", err)
	}
}

const (
	nestestROM   = "testdata/nestest.nes"
	nestestLog   = "testdata/nestest.log"
	nestestLines = 8980
)

// TestNestest runs the official/unofficial opcode sections of nestest in
// automation mode (PC = 0xC000). The ROM and log aren't redistributable so
// this only runs when they've been dropped into testdata.
func TestNestest(t *testing.T) {
	for _, f := range []string{nestestROM, nestestLog} {
		if _, err := os.Stat(f); err != nil {
			t.Skipf("%s not available: %v", f, err)
		}
	}
	b, err := LoadROM(nestestROM)
	if err != nil {
		t.Fatalf("LoadROM: %v", err)
	}
	p, err := cpu.Init(cpu.CPU_RP2A03, b)
	if err != nil {
		t.Fatalf("Can't initialize cpu - %v", err)
	}
	p.PC = 0xC000
	log, err := os.Open(nestestLog)
	if err != nil {
		t.Fatalf("Can't open log: %v", err)
	}
	defer log.Close()
	n, err := Run(p, log, nestestLines, nil)
	if err != nil {
		t.Fatalf("nestest failed after %d lines: %v", n, err)
	}
	if got, want := n, nestestLines; got != want {
		t.Errorf("Lines matched - got %d want %d", got, want)
	}
	// nestest records failures at 0x02/0x03. 0 means everything passed.
	if got := b.Read(0x0002); got != 0x00 {
		t.Errorf("nestest reported official opcode failure 0x%.2X", got)
	}
	if got := b.Read(0x0003); got != 0x00 {
		t.Errorf("nestest reported unofficial opcode failure 0x%.2X", got)
	}
}
