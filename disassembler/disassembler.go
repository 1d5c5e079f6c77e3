// disassembler loads a flat binary image into memory at a given offset
// and disassembles it to stdout starting at a given PC, one instruction
// per line, until the loaded bytes are exhausted.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/go6502/go6502/disassemble"
	"github.com/go6502/go6502/memory"
)

var (
	startPC = flag.Int("start_pc", 0x0000, "PC value to start disassembling")
	offset  = flag.Int("offset", 0x0000, "Offset into RAM to start loading the file")
)

func main() {
	flag.Parse()
	if len(flag.Args()) != 1 {
		log.Fatalf("Usage: %s [-start_pc <PC>] [-offset <offset>] <filename>", os.Args[0])
	}
	fn := flag.Args()[0]

	mem := memory.New()
	if err := mem.LoadBinary(fn, uint16(*offset)); err != nil {
		log.Fatalf("can't load %s: %v", fn, err)
	}
	b, err := os.ReadFile(fn)
	if err != nil {
		log.Fatalf("can't stat %s: %v", fn, err)
	}

	pc := uint16(*startPC)
	cnt := 0
	for cnt < len(b) {
		dis, off := disassemble.Step(pc, mem)
		pc += uint16(off)
		cnt += off
		fmt.Println(dis)
	}
}
