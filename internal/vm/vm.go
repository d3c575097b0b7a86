// Package vm implements the CHIP-8 execution engine which ties memory,
// registers, stack, screen and keypad together.
package vm

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/vm/instruction"
	"github.com/retroenv/retrochip8/internal/vm/keypad"
	"github.com/retroenv/retrochip8/internal/vm/memory"
	"github.com/retroenv/retrochip8/internal/vm/registers"
	"github.com/retroenv/retrochip8/internal/vm/screen"
	"github.com/retroenv/retrochip8/internal/vm/stack"
	"github.com/retroenv/retrogolib/log"
)

// Speaker is driven once per timer tick with whether the sound timer is active.
type Speaker interface {
	Beep(active bool)
}

// NopSpeaker is a speaker that ignores all beeps.
type NopSpeaker struct{}

// Beep implements Speaker.
func (NopSpeaker) Beep(bool) {}

// VM is a CHIP-8 virtual machine. It is not safe for concurrent use,
// the host serializes stepping, ticking and input.
type VM struct {
	logger  *log.Logger
	speaker Speaker
	random  func() byte
	quirks  Quirks

	instructionsPerFrame int

	memory    *memory.Memory
	registers *registers.Registers
	stack     *stack.Stack
	screen    *screen.Screen
	keypad    *keypad.Keypad

	rom []byte // last loaded ROM, reloaded by Reset
}

// New returns a VM in power-on state that beeps through the given speaker.
func New(speaker Speaker, opts ...Option) *VM {
	if speaker == nil {
		speaker = NopSpeaker{}
	}

	v := &VM{
		speaker:              speaker,
		random:               randomByte,
		instructionsPerFrame: DefaultInstructionsPerFrame,

		memory:    memory.New(),
		registers: registers.New(),
		stack:     stack.New(),
		screen:    screen.New(),
		keypad:    keypad.New(),
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.logger == nil {
		v.logger = defaultLogger()
	}
	return v
}

// LoadROM resets the VM to the power-on state with the ROM in program
// space. A ROM that is too large is rejected and leaves the VM unchanged.
func (v *VM) LoadROM(rom []byte) error {
	if len(rom) > memory.MaxROMSize {
		return fmt.Errorf("loading ROM: %w: %d bytes exceed the %d bytes of program space",
			memory.ErrROMTooLarge, len(rom), memory.MaxROMSize)
	}
	v.rom = append([]byte(nil), rom...)
	v.Reset()
	return nil
}

// Reset restores the power-on state and reloads the last loaded ROM.
func (v *VM) Reset() {
	v.memory.Clear()
	v.registers.Reset()
	v.stack.Reset()
	v.screen.Clear()
	v.keypad.Reset()

	if v.rom != nil {
		// the ROM passed the size check when it was loaded
		_ = v.memory.LoadROM(v.rom)
	}
}

// Step fetches, decodes and executes one instruction.
// Stack overflow and underflow are returned as errors that wrap
// stack.ErrStackOverflow and stack.ErrStackUnderflow.
func (v *VM) Step() error {
	pc := v.registers.PC()
	opcode := v.memory.ReadOpcode(pc & memory.AddressMask)
	ins := instruction.Parse(opcode)
	v.registers.AdvancePC()

	v.logger.Debug("Executing instruction",
		log.Hex("address", pc),
		log.Hex("opcode", opcode),
		log.String("instruction", ins.Name()))

	if err := v.execute(ins); err != nil {
		return fmt.Errorf("executing opcode %04X at address %03X: %w", opcode, pc, err)
	}
	return nil
}

// Tick advances both timers by one 60 Hz period and drives the speaker
// with the sound timer state before the decrement.
func (v *VM) Tick() {
	v.registers.DecrementDT()

	active := v.registers.ST() > 0
	v.speaker.Beep(active)
	v.registers.DecrementST()
}

// Frame executes the configured number of instructions followed by one tick.
func (v *VM) Frame() error {
	for range v.instructionsPerFrame {
		if err := v.Step(); err != nil {
			return err
		}
	}
	v.Tick()
	return nil
}

// KeyDown marks the logical key as pressed, keys above 0xF are ignored.
func (v *VM) KeyDown(key uint8) {
	if key < keypad.Keys {
		v.keypad.KeyDown(key)
	}
}

// KeyUp marks the logical key as released, keys above 0xF are ignored.
func (v *VM) KeyUp(key uint8) {
	if key < keypad.Keys {
		v.keypad.KeyUp(key)
	}
}

// IsPixelSet returns whether the screen pixel at column x and row y is set.
// Coordinates outside of the screen report false.
func (v *VM) IsPixelSet(x, y int) bool {
	return v.screen.IsPixelSet(x, y)
}

// DisplayBuffer returns a row-major copy of the screen, one byte per pixel.
func (v *VM) DisplayBuffer() []byte {
	return v.screen.Buffer()
}

// Registers gives read and write access to the register file.
func (v *VM) Registers() *registers.Registers {
	return v.registers
}

// Memory gives read and write access to the main memory.
func (v *VM) Memory() *memory.Memory {
	return v.memory
}
