// Package memory implements the flat 4 KB CHIP-8 address space including the
// resident hexadecimal font.
package memory

import (
	"errors"
	"fmt"
)

// CHIP-8 memory layout constants.
//
//	0x000-0x04F: unused
//	0x050-0x09F: resident font (16 glyphs of 5 bytes)
//	0x0A0-0x1FF: unused
//	0x200-0xFFF: program space
const (
	// Size is the number of addressable bytes.
	Size = 4096

	// AddressMask limits an address to the 12 bit address space.
	AddressMask = Size - 1

	// ProgramStart is the address that ROMs are loaded to and execution begins at.
	ProgramStart = 0x200

	// MaxROMSize is the largest ROM that fits into program space.
	MaxROMSize = Size - ProgramStart

	// FontStart is the address of the first glyph of the resident font.
	FontStart = 0x50

	// GlyphSize is the number of bytes of a single font glyph.
	GlyphSize = 5
)

// ErrROMTooLarge is returned when a ROM does not fit into program space.
var ErrROMTooLarge = errors.New("ROM too large")

var font = [16 * GlyphSize]byte{
	0xf0, 0x90, 0x90, 0x90, 0xf0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xf0, 0x10, 0xf0, 0x80, 0xf0, // 2
	0xf0, 0x10, 0xf0, 0x10, 0xf0, // 3
	0x90, 0x90, 0xf0, 0x10, 0x10, // 4
	0xf0, 0x80, 0xf0, 0x10, 0xf0, // 5
	0xf0, 0x80, 0xf0, 0x90, 0xf0, // 6
	0xf0, 0x10, 0x20, 0x40, 0x40, // 7
	0xf0, 0x90, 0xf0, 0x90, 0xf0, // 8
	0xf0, 0x90, 0xf0, 0x10, 0xf0, // 9
	0xf0, 0x90, 0xf0, 0x90, 0x90, // A
	0xe0, 0x90, 0xe0, 0x90, 0xe0, // B
	0xf0, 0x80, 0x80, 0x80, 0xf0, // C
	0xe0, 0x90, 0x90, 0x90, 0xe0, // D
	0xf0, 0x80, 0xf0, 0x80, 0xf0, // E
	0xf0, 0x80, 0xf0, 0x80, 0x80, // F
}

// Memory is the CHIP-8 main memory.
// All index arguments must be smaller than Size, the caller is responsible
// for masking computed addresses.
type Memory struct {
	data [Size]byte
}

// New returns a zeroed memory with the font resident at FontStart.
func New() *Memory {
	m := &Memory{}
	m.Clear()
	return m
}

// Clear zeroes the whole address space and restores the resident font.
func (m *Memory) Clear() {
	m.data = [Size]byte{}
	copy(m.data[FontStart:], font[:])
}

// Get returns the byte at the given index.
func (m *Memory) Get(index uint16) byte {
	return m.data[index]
}

// Set writes a byte to the given index.
func (m *Memory) Set(index uint16, value byte) {
	m.data[index] = value
}

// Read returns a view of length bytes starting at start.
// The returned slice aliases the memory.
func (m *Memory) Read(start uint16, length int) []byte {
	return m.data[start : int(start)+length]
}

// ReadOpcode reads the big-endian 16 bit opcode at address.
// The second byte of an opcode at the last address wraps to address 0.
func (m *Memory) ReadOpcode(address uint16) uint16 {
	high := m.data[address]
	low := m.data[(address+1)&AddressMask]
	return uint16(high)<<8 | uint16(low)
}

// LoadROM copies the ROM into program space and zeroes the rest of it.
// A ROM that does not fit is rejected before any byte is written.
func (m *Memory) LoadROM(rom []byte) error {
	if len(rom) > MaxROMSize {
		return fmt.Errorf("%w: %d bytes exceed the %d bytes of program space",
			ErrROMTooLarge, len(rom), MaxROMSize)
	}
	n := copy(m.data[ProgramStart:], rom)
	clear(m.data[ProgramStart+n:])
	return nil
}
