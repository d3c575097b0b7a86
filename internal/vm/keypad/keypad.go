// Package keypad implements the 16 key hexadecimal CHIP-8 keypad state.
package keypad

import "slices"

// Keys is the number of keys of the keypad.
const Keys = 16

// Keypad holds the pressed state of every logical key 0x0 to 0xF.
// Key arguments must be smaller than Keys.
type Keypad struct {
	down [Keys]bool
}

// New returns a keypad with all keys released.
func New() *Keypad {
	return &Keypad{}
}

// KeyDown marks the key as pressed.
func (k *Keypad) KeyDown(key uint8) {
	k.down[key] = true
}

// KeyUp marks the key as released.
func (k *Keypad) KeyUp(key uint8) {
	k.down[key] = false
}

// IsKeyDown returns whether the key is pressed.
func (k *Keypad) IsKeyDown(key uint8) bool {
	return k.down[key]
}

// FirstDown returns the lowest pressed key.
func (k *Keypad) FirstDown() (uint8, bool) {
	index := slices.Index(k.down[:], true)
	if index < 0 {
		return 0, false
	}
	return uint8(index), true
}

// Reset releases all keys.
func (k *Keypad) Reset() {
	k.down = [Keys]bool{}
}
