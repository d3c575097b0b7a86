// Package registers implements the CHIP-8 register file.
package registers

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/vm/memory"
)

// Register selects one of the 21 addressable locations of the register file.
type Register uint8

// Addressable registers. V0 to VF map to the data registers in order.
const (
	V0 Register = iota
	V1
	V2
	V3
	V4
	V5
	V6
	V7
	V8
	V9
	VA
	VB
	VC
	VD
	VE
	VF
	I
	DT
	ST
	PC
	SP
)

// DataRegisters is the number of general purpose registers.
const DataRegisters = 16

// FlagRegister is the index of VF, the carry, borrow and collision flag.
const FlagRegister = DataRegisters - 1

// instructionSize is the fixed width of an instruction in bytes.
const instructionSize = 2

var registerNames = [...]string{
	"V0", "V1", "V2", "V3", "V4", "V5", "V6", "V7",
	"V8", "V9", "VA", "VB", "VC", "VD", "VE", "VF",
	"I", "DT", "ST", "PC", "SP",
}

// String returns the assembler name of the register.
func (r Register) String() string {
	if int(r) < len(registerNames) {
		return registerNames[r]
	}
	return fmt.Sprintf("Register(%d)", r)
}

// IsData returns whether the register is one of V0 to VF.
func (r Register) IsData() bool {
	return r <= VF
}

// Registers holds the data registers, the address register, both timers,
// the program counter and the stack pointer.
type Registers struct {
	v          [DataRegisters]byte
	i          uint16
	delayTimer byte
	soundTimer byte
	pc         uint16
	sp         byte
}

// New returns a register file in power-on state.
func New() *Registers {
	r := &Registers{}
	r.Reset()
	return r
}

// Reset zeroes all registers and points the program counter at the program start.
func (r *Registers) Reset() {
	*r = Registers{
		pc: memory.ProgramStart,
	}
}

// Get returns the value of any register widened to 16 bit.
func (r *Registers) Get(reg Register) uint16 {
	switch {
	case reg.IsData():
		return uint16(r.v[reg])
	case reg == I:
		return r.i
	case reg == DT:
		return uint16(r.delayTimer)
	case reg == ST:
		return uint16(r.soundTimer)
	case reg == PC:
		return r.pc
	case reg == SP:
		return uint16(r.sp)
	default:
		panic(fmt.Sprintf("invalid register %s", reg))
	}
}

// Set writes any register, values are truncated to the register width.
func (r *Registers) Set(reg Register, value uint16) {
	switch {
	case reg.IsData():
		r.v[reg] = byte(value)
	case reg == I:
		r.i = value
	case reg == DT:
		r.delayTimer = byte(value)
	case reg == ST:
		r.soundTimer = byte(value)
	case reg == PC:
		r.pc = value
	case reg == SP:
		r.sp = byte(value)
	default:
		panic(fmt.Sprintf("invalid register %s", reg))
	}
}

// V returns data register n.
func (r *Registers) V(n uint8) byte {
	return r.v[n]
}

// SetV writes data register n.
func (r *Registers) SetV(n uint8, value byte) {
	r.v[n] = value
}

// SetCarryIf sets VF to 1 if the condition holds and to 0 otherwise.
func (r *Registers) SetCarryIf(condition bool) {
	if condition {
		r.v[FlagRegister] = 1
	} else {
		r.v[FlagRegister] = 0
	}
}

// I returns the address register.
func (r *Registers) I() uint16 {
	return r.i
}

// SetI writes the address register.
func (r *Registers) SetI(address uint16) {
	r.i = address
}

// DT returns the delay timer.
func (r *Registers) DT() byte {
	return r.delayTimer
}

// SetDT writes the delay timer.
func (r *Registers) SetDT(value byte) {
	r.delayTimer = value
}

// DecrementDT counts the delay timer down by one, stopping at zero.
func (r *Registers) DecrementDT() {
	if r.delayTimer > 0 {
		r.delayTimer--
	}
}

// ST returns the sound timer.
func (r *Registers) ST() byte {
	return r.soundTimer
}

// SetST writes the sound timer.
func (r *Registers) SetST(value byte) {
	r.soundTimer = value
}

// DecrementST counts the sound timer down by one, stopping at zero.
func (r *Registers) DecrementST() {
	if r.soundTimer > 0 {
		r.soundTimer--
	}
}

// PC returns the program counter.
func (r *Registers) PC() uint16 {
	return r.pc
}

// SetPC writes the program counter.
func (r *Registers) SetPC(address uint16) {
	r.pc = address
}

// AdvancePC moves the program counter to the next instruction.
func (r *Registers) AdvancePC() {
	r.pc += instructionSize
}

// RewindPC moves the program counter back to the previous instruction.
func (r *Registers) RewindPC() {
	r.pc -= instructionSize
}

// SP returns the stack pointer.
func (r *Registers) SP() byte {
	return r.sp
}

// IncrementSP increments the stack pointer.
func (r *Registers) IncrementSP() {
	r.sp++
}

// DecrementSP decrements the stack pointer.
func (r *Registers) DecrementSP() {
	r.sp--
}
