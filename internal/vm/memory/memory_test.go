package memory

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestNew_Font(t *testing.T) {
	m := New()

	assert.Equal(t, []byte{0xf0, 0x90, 0x90, 0x90, 0xf0}, m.Read(FontStart, GlyphSize))
	assert.Equal(t, []byte{0xf0, 0x80, 0xf0, 0x80, 0x80}, m.Read(FontStart+15*GlyphSize, GlyphSize))

	for i := range uint16(FontStart) {
		assert.Equal(t, byte(0), m.Get(i))
	}
	for i := uint16(FontStart + len(font)); i < Size; i++ {
		assert.Equal(t, byte(0), m.Get(i))
	}
}

func TestMemory_GetSet(t *testing.T) {
	m := New()
	m.Set(200, 42)

	assert.Equal(t, byte(42), m.Get(200))
	assert.Equal(t, []byte{42, 0, 0}, m.Read(200, 3))
}

func TestMemory_ReadAliases(t *testing.T) {
	m := New()
	view := m.Read(0x300, 2)
	m.Set(0x301, 7)

	assert.Equal(t, byte(7), view[1])
}

func TestMemory_ReadOpcode(t *testing.T) {
	m := New()
	m.Set(0x200, 0x12)
	m.Set(0x201, 0x34)
	assert.Equal(t, uint16(0x1234), m.ReadOpcode(0x200))

	m.Set(AddressMask, 0xAB)
	m.Set(0, 0xCD)
	assert.Equal(t, uint16(0xABCD), m.ReadOpcode(AddressMask))
}

func TestMemory_LoadROM(t *testing.T) {
	m := New()
	err := m.LoadROM([]byte{0x60, 0x05, 0x70, 0x03})
	assert.NoError(t, err)

	assert.Equal(t, []byte{0x60, 0x05, 0x70, 0x03, 0x00}, m.Read(ProgramStart, 5))
	assert.Equal(t, byte(0), m.Get(ProgramStart-1))
}

func TestMemory_LoadROM_ClearsProgramSpace(t *testing.T) {
	m := New()
	assert.NoError(t, m.LoadROM([]byte{0x60, 0x05, 0x70, 0x03, 0x12, 0x00}))
	m.Set(AddressMask, 0xEE)
	assert.NoError(t, m.LoadROM([]byte{0x60, 0x01}))

	assert.Equal(t, []byte{0x60, 0x01, 0x00, 0x00, 0x00, 0x00}, m.Read(ProgramStart, 6))
	assert.Equal(t, byte(0), m.Get(AddressMask))
	assert.Equal(t, byte(0xf0), m.Get(FontStart))
}

func TestMemory_LoadROM_MaxSize(t *testing.T) {
	m := New()
	rom := make([]byte, MaxROMSize)
	rom[len(rom)-1] = 0xEE

	assert.NoError(t, m.LoadROM(rom))
	assert.Equal(t, byte(0xEE), m.Get(AddressMask))
}

func TestMemory_LoadROM_TooLarge(t *testing.T) {
	m := New()
	rom := make([]byte, MaxROMSize+1)
	for i := range rom {
		rom[i] = 0xFF
	}

	err := m.LoadROM(rom)
	assert.True(t, errors.Is(err, ErrROMTooLarge))
	assert.Equal(t, byte(0), m.Get(ProgramStart))
}

func TestMemory_Clear(t *testing.T) {
	m := New()
	m.Set(0x400, 1)
	m.Set(FontStart, 0)
	m.Clear()

	assert.Equal(t, byte(0), m.Get(0x400))
	assert.Equal(t, byte(0xf0), m.Get(FontStart))
}
