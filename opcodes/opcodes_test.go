package opcodes

import "testing"

func TestKnownOpcodes(t *testing.T) {
	tests := []struct {
		op       uint8
		mnemonic string
		mode     Mode
		cycles   int
	}{
		{0xA9, "LDA", Immediate, 2},
		{0xA5, "LDA", ZeroPage, 3},
		{0x20, "JSR", Absolute, 6},
		{0x9D, "STA", AbsoluteX, 5},
		{0x6C, "JMP", Indirect, 5},
		{0x00, "BRK", Implied, 7},
		{0xEA, "NOP", Implied, 2},
	}
	for _, test := range tests {
		got := Table[test.op]
		if got.Unassigned() {
			t.Fatalf("opcode 0x%.2X unexpectedly unassigned", test.op)
		}
		if got.Mnemonic != test.mnemonic || got.Mode != test.mode || got.Cycles != test.cycles {
			t.Errorf("Table[0x%.2X] = %+v, want {%s %d %d}", test.op, got, test.mnemonic, test.mode, test.cycles)
		}
	}
}

func TestUnassignedOpcode(t *testing.T) {
	// 0x02 is an illegal/undocumented opcode (HLT on NMOS); out of scope here.
	if got := Table[0x02]; !got.Unassigned() {
		t.Errorf("Table[0x02] = %+v, want unassigned", got)
	}
}

func TestReadIndexed(t *testing.T) {
	for _, m := range []Mode{AbsoluteX, AbsoluteY, IndirectY} {
		if !ReadIndexed(m) {
			t.Errorf("ReadIndexed(%d) = false, want true", m)
		}
	}
	for _, m := range []Mode{Absolute, ZeroPage, IndirectX, Implied} {
		if ReadIndexed(m) {
			t.Errorf("ReadIndexed(%d) = true, want false", m)
		}
	}
}
