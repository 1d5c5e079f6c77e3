// Package memory implements the flat 64 KiB address space a 6502 family
// processor is wired to. Every one of the 65,536 possible 16-bit
// addresses names a distinct byte cell; there is no banking, no
// shadowed regions, and no parent/child chaining.
package memory

import "os"

// Size is the number of addressable byte cells in a 6502 address space.
const Size = 1 << 16

// Bank is the interface a Processor drives to read and write its
// attached memory. Memory is exclusively owned by the caller; a
// Processor never retains a reference between Execute calls.
type Bank interface {
	// Read returns the byte stored at addr.
	Read(addr uint16) uint8
	// Write stores val at addr.
	Write(addr uint16, val uint8)
}

// Memory is a flat, zero-initializable 64 KiB byte-addressable store.
// It implements Bank.
type Memory struct {
	ram [Size]uint8
}

// New allocates a zero-filled 64 KiB memory image.
func New() *Memory {
	return &Memory{}
}

// Read implements Bank.
func (m *Memory) Read(addr uint16) uint8 {
	return m.ram[addr]
}

// Write implements Bank.
func (m *Memory) Write(addr uint16, val uint8) {
	m.ram[addr] = val
}

// WriteWord stores val as a little-endian word: the low byte at addr,
// the high byte at addr+1 (wrapping to 0x0000 if addr is 0xFFFF).
func (m *Memory) WriteWord(addr uint16, val uint16) {
	m.ram[addr] = uint8(val & 0xFF)
	m.ram[addr+1] = uint8(val >> 8)
}

// ReadWord reads a little-endian word: the low byte at addr, the high
// byte at addr+1 (wrapping to 0x0000 if addr is 0xFFFF).
func (m *Memory) ReadWord(addr uint16) uint16 {
	lo := uint16(m.ram[addr])
	hi := uint16(m.ram[addr+1])
	return (hi << 8) | lo
}

// Reset zero-fills the entire image. Processor.Reset does not call it;
// a caller that wants a blank image calls Reset before writing its
// program bytes and reset vector.
func (m *Memory) Reset() {
	m.ram = [Size]uint8{}
}

// WriteBinary dumps the full 64 KiB image to path as a flat byte stream.
// This is a convenience for driver programs; the fetch/decode/execute
// core never calls it.
func (m *Memory) WriteBinary(path string) error {
	return os.WriteFile(path, m.ram[:], 0o644)
}

// LoadBinary reads the file at path and copies its bytes into the image
// starting at offset, truncating silently if the file runs past the end
// of the 64 KiB address space. Like WriteBinary this is a driver
// convenience, not part of the fetch/decode/execute core.
func (m *Memory) LoadBinary(path string, offset uint16) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if max := Size - int(offset); len(b) > max {
		b = b[:max]
	}
	copy(m.ram[offset:], b)
	return nil
}
