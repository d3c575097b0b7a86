package vm

import (
	"github.com/retroenv/retrochip8/internal/vm/instruction"
	"github.com/retroenv/retrochip8/internal/vm/memory"
	"github.com/retroenv/retrogolib/log"
)

// execute dispatches on the top nibble and, for the families sharing one,
// on the lowest nibble or byte. The PC already points at the next instruction.
func (v *VM) execute(ins instruction.Instruction) error {
	switch ins.Nibbles[0] {
	case 0x0:
		return v.executeSystem(ins)
	case 0x1:
		v.registers.SetPC(ins.Addr)
	case 0x2:
		if err := v.stack.Push(v.registers, v.registers.PC()); err != nil {
			return err
		}
		v.registers.SetPC(ins.Addr)
	case 0x3:
		v.skipIf(v.registers.V(ins.X) == ins.Byte)
	case 0x4:
		v.skipIf(v.registers.V(ins.X) != ins.Byte)
	case 0x5:
		if ins.N != 0 {
			v.unknown(ins)
			return nil
		}
		v.skipIf(v.registers.V(ins.X) == v.registers.V(ins.Y))
	case 0x6:
		v.registers.SetV(ins.X, ins.Byte)
	case 0x7:
		v.registers.SetV(ins.X, v.registers.V(ins.X)+ins.Byte)
	case 0x8:
		v.executeArithmetic(ins)
	case 0x9:
		if ins.N != 0 {
			v.unknown(ins)
			return nil
		}
		v.skipIf(v.registers.V(ins.X) != v.registers.V(ins.Y))
	case 0xA:
		v.registers.SetI(ins.Addr)
	case 0xB:
		v.registers.SetPC(uint16(v.registers.V(0)) + ins.Addr)
	case 0xC:
		v.registers.SetV(ins.X, v.random()&ins.Byte)
	case 0xD:
		v.draw(ins)
	case 0xE:
		v.executeKey(ins)
	default:
		v.executeMisc(ins)
	}
	return nil
}

func (v *VM) executeSystem(ins instruction.Instruction) error {
	switch ins.Opcode {
	case 0x00E0:
		v.screen.Clear()
	case 0x00EE:
		address, err := v.stack.Pop(v.registers)
		if err != nil {
			return err
		}
		v.registers.SetPC(address)
	default:
		v.unknown(ins)
	}
	return nil
}

func (v *VM) executeArithmetic(ins instruction.Instruction) {
	x, y := ins.X, ins.Y
	vx, vy := v.registers.V(x), v.registers.V(y)

	switch ins.N {
	case 0x0:
		v.registers.SetV(x, vy)
	case 0x1:
		v.registers.SetV(x, vx|vy)
	case 0x2:
		v.registers.SetV(x, vx&vy)
	case 0x3:
		v.registers.SetV(x, vx^vy)
	case 0x4:
		sum := uint16(vx) + uint16(vy)
		v.registers.SetCarryIf(sum > 0xFF)
		v.registers.SetV(x, byte(sum))
	case 0x5:
		v.registers.SetCarryIf(vx > vy)
		v.registers.SetV(x, vx-vy)
	case 0x6:
		if v.quirks.ShiftUsesVy {
			vx = vy
		}
		v.registers.SetCarryIf(vx&0x01 != 0)
		v.registers.SetV(x, vx>>1)
	case 0x7:
		v.registers.SetCarryIf(vy > vx)
		v.registers.SetV(x, vy-vx)
	case 0xE:
		if v.quirks.ShiftUsesVy {
			vx = vy
		}
		v.registers.SetCarryIf(vx&0x80 != 0)
		v.registers.SetV(x, vx<<1)
	default:
		v.unknown(ins)
	}
}

func (v *VM) executeKey(ins instruction.Instruction) {
	key := v.registers.V(ins.X) & 0xF

	switch ins.Byte {
	case 0x9E:
		v.skipIf(v.keypad.IsKeyDown(key))
	case 0xA1:
		v.skipIf(!v.keypad.IsKeyDown(key))
	default:
		v.unknown(ins)
	}
}

func (v *VM) executeMisc(ins instruction.Instruction) {
	x := ins.X
	vx := v.registers.V(x)

	switch ins.Byte {
	case 0x07:
		v.registers.SetV(x, v.registers.DT())
	case 0x0A:
		key, ok := v.keypad.FirstDown()
		if !ok {
			v.registers.RewindPC()
			return
		}
		v.registers.SetV(x, key)
	case 0x15:
		v.registers.SetDT(vx)
	case 0x18:
		v.registers.SetST(vx)
	case 0x1E:
		address := v.registers.I() + uint16(vx)
		v.registers.SetCarryIf(address > 1<<15)
		v.registers.SetI(address)
	case 0x29:
		address := uint16(vx) * memory.GlyphSize
		if v.quirks.FontBaseOffset {
			address += memory.FontStart
		}
		v.registers.SetI(address)
	case 0x33:
		i := v.registers.I()
		v.memory.Set(i&memory.AddressMask, vx/100)
		v.memory.Set((i+1)&memory.AddressMask, vx/10%10)
		v.memory.Set((i+2)&memory.AddressMask, vx%10)
	case 0x55:
		i := v.registers.I()
		for n := range x + 1 {
			v.memory.Set((i+uint16(n))&memory.AddressMask, v.registers.V(n))
		}
	case 0x65:
		i := v.registers.I()
		for n := range x + 1 {
			v.registers.SetV(n, v.memory.Get((i+uint16(n))&memory.AddressMask))
		}
	default:
		v.unknown(ins)
	}
}

func (v *VM) draw(ins instruction.Instruction) {
	sprite := v.readBlock(v.registers.I(), int(ins.N))
	x := int(v.registers.V(ins.X))
	y := int(v.registers.V(ins.Y))

	collision := v.screen.DrawSprite(x, y, sprite)
	v.registers.SetCarryIf(collision)
}

// readBlock returns length bytes starting at address, wrapping at the end
// of the address space.
func (v *VM) readBlock(address uint16, length int) []byte {
	start := address & memory.AddressMask
	if int(start)+length <= memory.Size {
		return v.memory.Read(start, length)
	}

	block := make([]byte, length)
	for i := range block {
		block[i] = v.memory.Get((start + uint16(i)) & memory.AddressMask)
	}
	return block
}

func (v *VM) skipIf(condition bool) {
	if condition {
		v.registers.AdvancePC()
	}
}

func (v *VM) unknown(ins instruction.Instruction) {
	v.logger.Warn("Skipping unknown opcode",
		log.Hex("address", v.registers.PC()-2),
		log.Hex("opcode", ins.Opcode))
}
