// Package disassemble implements a one-instruction-at-a-time disassembler
// for the documented NMOS 6502 instruction set, built on the same
// opcodes.Table the cpu package uses to execute.
package disassemble

import (
	"fmt"

	"github.com/go6502/go6502/memory"
	"github.com/go6502/go6502/opcodes"
)

// Step disassembles the instruction at pc and returns its text along with
// the number of bytes it occupies (1, 2, or 3), so a caller can advance pc
// by that amount to reach the next instruction. Step does not interpret
// the instruction stream: a JMP target is printed as an address, not
// followed. An unrecognized opcode byte disassembles as a raw ".byte".
func Step(pc uint16, mem memory.Bank) (string, int) {
	op := mem.Read(pc)
	entry := opcodes.Table[op]
	if entry.Unassigned() {
		return fmt.Sprintf("%.4X %.2X        .byte $%.2X", pc, op, op), 1
	}

	switch entry.Mode {
	case opcodes.Implied, opcodes.Accumulator:
		return fmt.Sprintf("%.4X %.2X        %s", pc, op, entry.Mnemonic), 1
	case opcodes.Immediate:
		v := mem.Read(pc + 1)
		return fmt.Sprintf("%.4X %.2X %.2X     %s #$%.2X", pc, op, v, entry.Mnemonic, v), 2
	case opcodes.ZeroPage:
		v := mem.Read(pc + 1)
		return fmt.Sprintf("%.4X %.2X %.2X     %s $%.2X", pc, op, v, entry.Mnemonic, v), 2
	case opcodes.ZeroPageX:
		v := mem.Read(pc + 1)
		return fmt.Sprintf("%.4X %.2X %.2X     %s $%.2X,X", pc, op, v, entry.Mnemonic, v), 2
	case opcodes.ZeroPageY:
		v := mem.Read(pc + 1)
		return fmt.Sprintf("%.4X %.2X %.2X     %s $%.2X,Y", pc, op, v, entry.Mnemonic, v), 2
	case opcodes.IndirectX:
		v := mem.Read(pc + 1)
		return fmt.Sprintf("%.4X %.2X %.2X     %s ($%.2X,X)", pc, op, v, entry.Mnemonic, v), 2
	case opcodes.IndirectY:
		v := mem.Read(pc + 1)
		return fmt.Sprintf("%.4X %.2X %.2X     %s ($%.2X),Y", pc, op, v, entry.Mnemonic, v), 2
	case opcodes.Relative:
		v := mem.Read(pc + 1)
		target := uint16(int32(pc) + 2 + int32(int8(v)))
		return fmt.Sprintf("%.4X %.2X %.2X     %s $%.4X", pc, op, v, entry.Mnemonic, target), 2
	case opcodes.Absolute:
		lo, hi := mem.Read(pc+1), mem.Read(pc+2)
		return fmt.Sprintf("%.4X %.2X %.2X %.2X  %s $%.2X%.2X", pc, op, lo, hi, entry.Mnemonic, hi, lo), 3
	case opcodes.AbsoluteX:
		lo, hi := mem.Read(pc+1), mem.Read(pc+2)
		return fmt.Sprintf("%.4X %.2X %.2X %.2X  %s $%.2X%.2X,X", pc, op, lo, hi, entry.Mnemonic, hi, lo), 3
	case opcodes.AbsoluteY:
		lo, hi := mem.Read(pc+1), mem.Read(pc+2)
		return fmt.Sprintf("%.4X %.2X %.2X %.2X  %s $%.2X%.2X,Y", pc, op, lo, hi, entry.Mnemonic, hi, lo), 3
	case opcodes.Indirect:
		lo, hi := mem.Read(pc+1), mem.Read(pc+2)
		return fmt.Sprintf("%.4X %.2X %.2X %.2X  %s ($%.2X%.2X)", pc, op, lo, hi, entry.Mnemonic, hi, lo), 3
	}
	return fmt.Sprintf("%.4X %.2X        .byte $%.2X", pc, op, op), 1
}
