// disassembler takes a filename and loads it and then disassembles it to stdout
// starting at the first instruction. If the filename ends in .nes (case insensitive)
// it's treated as an iNES (mapper 0) image and the PRG space (0x8000-0xFFFF) is
// disassembled. Anything else is loaded as a raw binary at -offset.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/golang/glog"
	"github.com/jmchacon/rp2a03/disassemble"
	"github.com/jmchacon/rp2a03/memory"
	"github.com/jmchacon/rp2a03/nestest"
)

// flatMemory implements the memory.Bus interface
type flatMemory struct {
	addr [65536]uint8
}

func (r *flatMemory) Read(addr uint16) uint8 {
	return r.addr[addr]
}

func (r *flatMemory) Write(addr uint16, val uint8) {}

var (
	startPC = flag.Int("start_pc", -1, "PC value to start disassembling. Defaults to -offset (raw) or 0x8000 (iNES)")
	offset  = flag.Int("offset", 0x0000, "Offset into RAM to start loading data. All other RAM will be zero'd out. Ignored for iNES files.")
	vectors = flag.Bool("vectors", true, "For iNES files print the NMI/RESET/IRQ vectors first")
)

func main() {
	flag.Parse()
	defer glog.Flush()
	if len(flag.Args()) != 1 {
		glog.Exitf("Invalid command: %s [-start_pc <PC> -offset <offset>] <filename>", os.Args[0])
	}
	fn := flag.Args()[0]

	var bus memory.Bus
	var pc uint16
	var size int
	if strings.HasSuffix(strings.ToLower(fn), ".nes") {
		b, err := nestest.LoadROM(fn)
		if err != nil {
			glog.Exitf("%v", err)
		}
		bus = b
		pc = 0x8000
		size = 0x8000
		if *vectors {
			for _, v := range []struct {
				name string
				addr uint16
			}{
				{"NMI", 0xFFFA},
				{"RESET", 0xFFFC},
				{"IRQ", 0xFFFE},
			} {
				fmt.Printf("%-5s 0x%.4X\n", v.name, memory.ReadWord(b, v.addr))
			}
		}
	} else {
		if *offset < 0 || *offset > 0xFFFF {
			glog.Exitf("Offset 0x%X out of range", *offset)
		}
		b, err := os.ReadFile(fn)
		if err != nil {
			glog.Exitf("Can't open %s - %v", fn, err)
		}
		max := 65536 - *offset
		if l := len(b); l > max {
			glog.Warningf("Length %d at offset %d too long, truncating to 64k", l, *offset)
			b = b[:max]
		}
		f := &flatMemory{}
		copy(f.addr[*offset:], b)
		bus = f
		pc = uint16(*offset)
		size = len(b)
	}
	if *startPC >= 0 {
		// Keep the same end point, just start later (or earlier).
		size -= *startPC - int(pc)
		pc = uint16(*startPC)
	}
	glog.Infof("0x%.2X bytes at pc: %.4X", size, pc)

	cnt := 0
	// Can't base it on PC since it may rollover so just disassemble until we run out of buffer.
	for cnt < size {
		dis, off := disassemble.Step(pc, bus)
		pc += uint16(off)
		cnt += off
		fmt.Println(dis)
	}
}
