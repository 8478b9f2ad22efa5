// nestrace runs an iNES (NROM) image on the CPU and compares the state before
// every instruction against a reference trace in nestest.log format. The first
// mismatch is printed and the exit status is 1. Without a reference the trace
// is only printed.
//
// The default flags match nestest's automation mode:
//
//	nestrace -rom nestest.nes -log nestest.log
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/golang/glog"
	"github.com/jmchacon/rp2a03/cpu"
	"github.com/jmchacon/rp2a03/nestest"
	"golang.org/x/term"
)

var (
	rom          = flag.String("rom", "", "iNES (mapper 0) image to run")
	logFile      = flag.String("log", "", "Reference trace to compare against. If empty the trace is just printed")
	startPC      = flag.Int("start_pc", 0xC000, "PC value to start execution at. Negative uses the reset vector")
	instructions = flag.Int("instructions", 8980, "Number of instructions to run. 0 runs until the reference ends (a reference is required)")
	model        = flag.String("model", "ntsc", "CPU model: ntsc, pal or dendy")
	quiet        = flag.Bool("quiet", false, "Don't print each trace line")
)

var models = map[string]cpu.CPUModel{
	"ntsc":  cpu.CPU_RP2A03,
	"pal":   cpu.CPU_RP2A07,
	"dendy": cpu.CPU_DENDY,
}

const (
	red   = "\x1b[31m"
	reset = "\x1b[0m"
)

func main() {
	flag.Parse()
	defer glog.Flush()
	if *rom == "" {
		glog.Exitf("Invalid command: %s -rom <file> [-log <reference>] [-start_pc <PC>] [-instructions <N>] [-model ntsc|pal|dendy]", os.Args[0])
	}
	m, ok := models[strings.ToLower(*model)]
	if !ok {
		glog.Exitf("Unknown model %q", *model)
	}
	if *logFile == "" && *instructions <= 0 {
		glog.Exitf("-instructions must be positive without -log")
	}

	b, err := nestest.LoadROM(*rom)
	if err != nil {
		glog.Exitf("%v", err)
	}
	p, err := cpu.Init(m, b)
	if err != nil {
		glog.Exitf("Can't initialize cpu - %v", err)
	}
	if *startPC >= 0 {
		p.PC = uint16(*startPC)
	}
	glog.Infof("Loaded %s, %s starting at 0x%.4X", *rom, m, p.PC)

	var out io.Writer = os.Stdout
	if *quiet {
		out = nil
	}

	var n int
	if *logFile == "" {
		n, err = trace(p, *instructions, out)
	} else {
		f, ferr := os.Open(*logFile)
		if ferr != nil {
			glog.Exitf("Can't open reference %s - %v", *logFile, ferr)
		}
		defer f.Close()
		n, err = nestest.Run(p, f, *instructions, out)
	}
	report(p, m, n)

	if err != nil {
		msg := fmt.Sprintf("Failed after %d instructions: %v", n, err)
		if term.IsTerminal(int(os.Stdout.Fd())) {
			msg = red + msg + reset
		}
		fmt.Println(msg)
		glog.Flush()
		os.Exit(1)
	}
}

// trace runs n instructions printing each one if out is set.
func trace(p *cpu.Processor, n int, out io.Writer) (int, error) {
	for i := 0; i < n; i++ {
		if out != nil {
			fmt.Fprintln(out, nestest.Format(p))
		}
		if glog.V(1) {
			glog.Infof("%s", nestest.Capture(p))
		}
		if _, err := p.Step(); err != nil {
			return i, err
		}
	}
	return n, nil
}

func report(p *cpu.Processor, m cpu.CPUModel, n int) {
	t, err := cpu.Timing(m)
	if err != nil {
		glog.Errorf("No timing for %s - %v", m, err)
		return
	}
	glog.Infof("%d instructions, %d cycles (%.1f frames, %s at %.0fHz)", n, p.Cycles, float64(p.Cycles)/t.CPUCyclesPerFrame(), t.Duration(p.Cycles), t.CPUClock())
}
