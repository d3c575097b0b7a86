// Package keymap translates host keyboard keys to CHIP-8 keypad keys.
//
// The 4x4 block on the left of a QWERTY keyboard mirrors the layout of the
// COSMAC VIP hexadecimal keypad:
//
//	1 2 3 4      1 2 3 C
//	Q W E R  ->  4 5 6 D
//	A S D F      7 8 9 E
//	Z X C V      A 0 B F
package keymap

import "unicode"

// Binding maps one host key to a keypad key.
type Binding struct {
	Host rune
	Key  uint8
}

var bindings = [...]Binding{
	{'1', 0x1}, {'2', 0x2}, {'3', 0x3}, {'4', 0xC},
	{'q', 0x4}, {'w', 0x5}, {'e', 0x6}, {'r', 0xD},
	{'a', 0x7}, {'s', 0x8}, {'d', 0x9}, {'f', 0xE},
	{'z', 0xA}, {'x', 0x0}, {'c', 0xB}, {'v', 0xF},
}

// Lookup returns the keypad key bound to the host key, ignoring case.
func Lookup(host rune) (uint8, bool) {
	host = unicode.ToLower(host)
	for _, b := range bindings {
		if b.Host == host {
			return b.Key, true
		}
	}
	return 0, false
}

// Bindings returns all bindings in keyboard row order.
func Bindings() []Binding {
	return append([]Binding(nil), bindings[:]...)
}
