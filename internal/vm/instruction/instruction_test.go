package instruction

import (
	"testing"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestParse(t *testing.T) {
	ins := Parse(0xD125)

	assert.Equal(t, uint16(0xD125), ins.Opcode)
	assert.Equal(t, [4]uint8{0xD, 0x1, 0x2, 0x5}, ins.Nibbles)
	assert.Equal(t, uint16(0x125), ins.Addr)
	assert.Equal(t, uint8(0x25), ins.Byte)
	assert.Equal(t, uint8(0x1), ins.X)
	assert.Equal(t, uint8(0x2), ins.Y)
	assert.Equal(t, uint8(0x5), ins.N)
}

func TestParse_FieldsConsistent(t *testing.T) {
	for _, opcode := range []uint16{0x0000, 0x00E0, 0x1FFF, 0x8AB4, 0xFFFF, 0x3C7F} {
		ins := Parse(opcode)
		n := ins.Nibbles

		assert.Equal(t, opcode, uint16(n[0])<<12|uint16(n[1])<<8|uint16(n[2])<<4|uint16(n[3]))
		assert.Equal(t, opcode&0x0FFF, ins.Addr)
		assert.Equal(t, uint8(opcode), ins.Byte)
		assert.Equal(t, n[1], ins.X)
		assert.Equal(t, n[2], ins.Y)
		assert.Equal(t, n[3], ins.N)
	}
}

func TestInstruction_Name(t *testing.T) {
	tests := []struct {
		name     string
		opcode   uint16
		expected string
	}{
		{"clear screen", 0x00E0, chip8.ClsName},
		{"return", 0x00EE, chip8.RetName},
		{"jump", 0x1234, chip8.JpName},
		{"call", 0x2ABC, chip8.CallName},
		{"load byte", 0x6005, chip8.LdName},
		{"add byte", 0x7003, chip8.AddName},
		{"xor", 0x8123, chip8.XorName},
		{"random", 0xC0FF, chip8.RndName},
		{"draw", 0xD125, chip8.DrwName},
		{"skip pressed", 0xE19E, chip8.SkpName},
		{"skip not pressed", 0xE1A1, chip8.SknpName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Parse(tt.opcode).Name())
		})
	}
}

func TestInstruction_String(t *testing.T) {
	tests := []struct {
		opcode   uint16
		expected string
	}{
		{0x00E0, chip8.ClsName},
		{0x1234, chip8.JpName + " $234"},
		{0x6A05, chip8.LdName + " VA, $05"},
		{0x8126, chip8.ShrName + " V1"},
		{0xA2F0, chip8.LdName + " I, $2F0"},
		{0xD125, chip8.DrwName + " V1, V2, $5"},
		{0xF329, chip8.LdName + " F, V3"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Parse(tt.opcode).String())
	}
}
