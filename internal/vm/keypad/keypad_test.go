package keypad

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestKeypad_PressRelease(t *testing.T) {
	k := New()
	assert.False(t, k.IsKeyDown(1))

	k.KeyDown(1)
	assert.True(t, k.IsKeyDown(1))
	assert.False(t, k.IsKeyDown(2))

	k.KeyUp(1)
	assert.False(t, k.IsKeyDown(1))
}

func TestKeypad_FirstDown(t *testing.T) {
	k := New()
	_, ok := k.FirstDown()
	assert.False(t, ok)

	k.KeyDown(0xC)
	k.KeyDown(0x5)
	key, ok := k.FirstDown()
	assert.True(t, ok)
	assert.Equal(t, uint8(0x5), key)

	k.KeyDown(0x0)
	key, ok = k.FirstDown()
	assert.True(t, ok)
	assert.Equal(t, uint8(0x0), key)
}

func TestKeypad_Reset(t *testing.T) {
	k := New()
	k.KeyDown(0xF)
	k.Reset()

	_, ok := k.FirstDown()
	assert.False(t, ok)
}
