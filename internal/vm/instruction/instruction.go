// Package instruction decodes 16 bit CHIP-8 opcodes into their operand fields.
package instruction

import (
	"fmt"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Unknown is the mnemonic of opcodes that match no instruction.
const Unknown = "???"

// Instruction is a decoded opcode. All fields are derived from Opcode,
// decoding is total and never fails.
type Instruction struct {
	Opcode  uint16
	Nibbles [4]uint8 // most significant nibble first
	Addr    uint16   // nnn, lowest 12 bits
	Byte    uint8    // kk, lowest 8 bits
	X       uint8    // second nibble
	Y       uint8    // third nibble
	N       uint8    // lowest nibble
}

// Parse decodes the opcode.
func Parse(opcode uint16) Instruction {
	ins := Instruction{
		Opcode: opcode,
		Addr:   opcode & 0x0FFF,
		Byte:   uint8(opcode & 0x00FF),
		X:      uint8(opcode>>8) & 0xF,
		Y:      uint8(opcode>>4) & 0xF,
		N:      uint8(opcode) & 0xF,
	}
	ins.Nibbles = [4]uint8{uint8(opcode >> 12), ins.X, ins.Y, ins.N}
	return ins
}

// Name returns the assembler mnemonic of the instruction or Unknown.
func (ins Instruction) Name() string {
	for _, op := range chip8.Opcodes[int(ins.Nibbles[0])] {
		if op.Info.Mask&ins.Opcode == op.Info.Value && op.Instruction != nil {
			return op.Instruction.Name
		}
	}
	return Unknown
}

// String returns the instruction in assembler notation, for example
// "drw V1, V2, $5".
func (ins Instruction) String() string {
	name := ins.Name()
	if params := ins.operands(); params != "" {
		return fmt.Sprintf("%s %s", name, params)
	}
	return name
}

func (ins Instruction) operands() string {
	switch ins.Nibbles[0] {
	case 0x0:
		if ins.Opcode == 0x00E0 || ins.Opcode == 0x00EE {
			return ""
		}
		return fmt.Sprintf("$%03X", ins.Addr)
	case 0x1, 0x2:
		return fmt.Sprintf("$%03X", ins.Addr)
	case 0x3, 0x4, 0x6, 0x7, 0xC:
		return fmt.Sprintf("V%X, $%02X", ins.X, ins.Byte)
	case 0x5, 0x9:
		return fmt.Sprintf("V%X, V%X", ins.X, ins.Y)
	case 0x8:
		if ins.N == 0x6 || ins.N == 0xE {
			return fmt.Sprintf("V%X", ins.X)
		}
		return fmt.Sprintf("V%X, V%X", ins.X, ins.Y)
	case 0xA:
		return fmt.Sprintf("I, $%03X", ins.Addr)
	case 0xB:
		return fmt.Sprintf("V0, $%03X", ins.Addr)
	case 0xD:
		return fmt.Sprintf("V%X, V%X, $%X", ins.X, ins.Y, ins.N)
	case 0xE:
		return fmt.Sprintf("V%X", ins.X)
	default:
		return ins.timerOperands()
	}
}

// timerOperands formats the Fx forms which share a mnemonic but differ
// in their implicit operand.
func (ins Instruction) timerOperands() string {
	switch ins.Byte {
	case 0x07:
		return fmt.Sprintf("V%X, DT", ins.X)
	case 0x0A:
		return fmt.Sprintf("V%X, K", ins.X)
	case 0x15:
		return fmt.Sprintf("DT, V%X", ins.X)
	case 0x18:
		return fmt.Sprintf("ST, V%X", ins.X)
	case 0x1E:
		return fmt.Sprintf("I, V%X", ins.X)
	case 0x29:
		return fmt.Sprintf("F, V%X", ins.X)
	case 0x33:
		return fmt.Sprintf("B, V%X", ins.X)
	case 0x55:
		return fmt.Sprintf("[I], V%X", ins.X)
	case 0x65:
		return fmt.Sprintf("V%X, [I]", ins.X)
	default:
		return fmt.Sprintf("$%04X", ins.Opcode)
	}
}
