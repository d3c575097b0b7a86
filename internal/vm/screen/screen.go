// Package screen implements the 64x32 monochrome CHIP-8 framebuffer.
package screen

const (
	// Width is the number of pixel columns.
	Width = 64
	// Height is the number of pixel rows.
	Height = 32
)

// spriteWidth is the number of pixels encoded in one sprite byte.
const spriteWidth = 8

// Screen is the framebuffer. Pixels are toggled by sprite drawing, never assigned.
type Screen struct {
	pixels [Width * Height]bool
}

// New returns a cleared screen.
func New() *Screen {
	return &Screen{}
}

// Clear unsets every pixel.
func (s *Screen) Clear() {
	s.pixels = [Width * Height]bool{}
}

// IsPixelSet returns whether the pixel at column x and row y is set.
// Coordinates outside of the screen report false.
func (s *Screen) IsPixelSet(x, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}
	return s.pixels[y*Width+x]
}

// DrawSprite XORs the sprite onto the screen with its top left corner at x, y.
// Every byte is one row, the most significant bit is the leftmost pixel.
// Pixels that fall off an edge wrap around to the opposite edge.
// The result reports whether any set pixel was unset by the draw.
func (s *Screen) DrawSprite(x, y int, sprite []byte) bool {
	collision := false

	for row, line := range sprite {
		for col := range spriteWidth {
			if line&(0x80>>col) == 0 {
				continue
			}

			px := (x + col) % Width
			py := (y + row) % Height
			index := py*Width + px
			if s.pixels[index] {
				collision = true
			}
			s.pixels[index] = !s.pixels[index]
		}
	}

	return collision
}

// Buffer returns a row-major copy of the screen with one byte per pixel,
// 1 for set and 0 for unset pixels.
func (s *Screen) Buffer() []byte {
	buf := make([]byte, Width*Height)
	for i, set := range s.pixels {
		if set {
			buf[i] = 1
		}
	}
	return buf
}
