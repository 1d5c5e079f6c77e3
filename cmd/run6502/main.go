// run6502 loads a flat binary image into memory, seeds the reset vector,
// resets a Processor, and runs it for a fixed cycle budget, printing the
// final register state. It exists to exercise cpu and memory end to end;
// it is a convenience example, not part of the core library.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/go6502/go6502/cpu"
	"github.com/go6502/go6502/memory"
)

var (
	offset  = flag.Int("offset", 0x0000, "offset into RAM to load the image at")
	resetPC = flag.Int("reset_pc", -1, "reset vector value; defaults to -offset")
	cycles  = flag.Int("cycles", 1000, "cycle budget to run")
)

func main() {
	flag.Parse()
	if len(flag.Args()) != 1 {
		log.Fatalf("Usage: %s [-offset <n>] [-reset_pc <n>] [-cycles <n>] <filename>", os.Args[0])
	}

	mem := memory.New()
	if err := mem.LoadBinary(flag.Args()[0], uint16(*offset)); err != nil {
		log.Fatalf("can't load %s: %v", flag.Args()[0], err)
	}

	pc := uint16(*offset)
	if *resetPC >= 0 {
		pc = uint16(*resetPC)
	}
	mem.WriteWord(cpu.ResetVector, pc)

	p := cpu.NewProcessor()
	p.Reset(mem)

	remaining := p.Execute(*cycles, mem)
	fmt.Printf("A=%.2X X=%.2X Y=%.2X SP=%.2X PC=%.4X P=%.2X cycles_remaining=%d\n",
		p.A, p.X, p.Y, p.SP, p.PC, p.P, remaining)
}
