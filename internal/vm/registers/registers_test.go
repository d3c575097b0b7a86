package registers

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestNew(t *testing.T) {
	r := New()

	assert.Equal(t, uint16(0x200), r.PC())
	assert.Equal(t, byte(0), r.SP())
	assert.Equal(t, uint16(0), r.I())
	for n := range uint8(DataRegisters) {
		assert.Equal(t, byte(0), r.V(n))
	}
}

func TestRegisters_VRoundTrip(t *testing.T) {
	r := New()
	for n := range uint8(DataRegisters) {
		for v := range 256 {
			r.SetV(n, byte(v))
			assert.Equal(t, byte(v), r.V(n))
		}
	}
}

func TestRegisters_Tagged(t *testing.T) {
	tests := []struct {
		reg   Register
		value uint16
		want  uint16
	}{
		{VA, 42, 42},
		{VF, 0x1FF, 0xFF},
		{I, 0x0ABC, 0x0ABC},
		{DT, 60, 60},
		{ST, 0x130, 0x30},
		{PC, 0x0300, 0x0300},
		{SP, 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.reg.String(), func(t *testing.T) {
			r := New()
			r.Set(tt.reg, tt.value)
			assert.Equal(t, tt.want, r.Get(tt.reg))
		})
	}
}

func TestRegisters_TaggedMatchesAccessors(t *testing.T) {
	r := New()
	r.Set(VA, 42)
	r.Set(I, 0x123)
	r.Set(PC, 0x400)

	assert.Equal(t, byte(42), r.V(0xA))
	assert.Equal(t, uint16(0x123), r.I())
	assert.Equal(t, uint16(0x400), r.PC())
}

func TestRegister_String(t *testing.T) {
	assert.Equal(t, "V0", V0.String())
	assert.Equal(t, "VF", VF.String())
	assert.Equal(t, "SP", SP.String())
	assert.Equal(t, "Register(99)", Register(99).String())
	assert.True(t, VF.IsData())
	assert.False(t, I.IsData())
}

func TestRegisters_SetCarryIf(t *testing.T) {
	r := New()
	r.SetCarryIf(true)
	assert.Equal(t, byte(1), r.V(FlagRegister))
	r.SetCarryIf(false)
	assert.Equal(t, byte(0), r.V(FlagRegister))
}

func TestRegisters_Timers(t *testing.T) {
	r := New()
	r.SetDT(1)
	r.DecrementDT()
	assert.Equal(t, byte(0), r.DT())
	r.DecrementDT()
	assert.Equal(t, byte(0), r.DT())

	r.SetST(2)
	r.DecrementST()
	assert.Equal(t, byte(1), r.ST())
}

func TestRegisters_ProgramCounter(t *testing.T) {
	r := New()
	r.AdvancePC()
	assert.Equal(t, uint16(0x202), r.PC())
	r.RewindPC()
	assert.Equal(t, uint16(0x200), r.PC())
}

func TestRegisters_Reset(t *testing.T) {
	r := New()
	r.SetV(3, 9)
	r.SetI(0x300)
	r.IncrementSP()
	r.Reset()

	assert.Equal(t, byte(0), r.V(3))
	assert.Equal(t, uint16(0), r.I())
	assert.Equal(t, byte(0), r.SP())
	assert.Equal(t, uint16(0x200), r.PC())
}
