// Package window runs the virtual machine in a desktop window.
package window

import (
	"context"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/retroenv/retrochip8/internal/keymap"
	"github.com/retroenv/retrochip8/internal/vm/screen"
	"golang.org/x/image/font/basicfont"
)

const title = "retrochip8"

// Machine is the part of the virtual machine that the window drives.
type Machine interface {
	Frame() error
	Reset()
	KeyDown(key uint8)
	KeyUp(key uint8)
	DisplayBuffer() []byte
}

// hostKeys maps the runes of the key bindings to keyboard keys.
var hostKeys = map[rune]ebiten.Key{
	'1': ebiten.Key1, '2': ebiten.Key2, '3': ebiten.Key3, '4': ebiten.Key4,
	'q': ebiten.KeyQ, 'w': ebiten.KeyW, 'e': ebiten.KeyE, 'r': ebiten.KeyR,
	'a': ebiten.KeyA, 's': ebiten.KeyS, 'd': ebiten.KeyD, 'f': ebiten.KeyF,
	'z': ebiten.KeyZ, 'x': ebiten.KeyX, 'c': ebiten.KeyC, 'v': ebiten.KeyV,
}

var (
	pixelOn     = color.RGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff}
	pixelOff    = color.RGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xff}
	overlayText = color.RGBA{R: 0xff, G: 0x40, B: 0x40, A: 0xff}
)

// input abstracts the keyboard state queries of ebiten.
type input interface {
	IsKeyPressed(key ebiten.Key) bool
	IsKeyJustPressed(key ebiten.Key) bool
	IsClosing() bool
}

type ebitenInput struct{}

func (ebitenInput) IsKeyPressed(key ebiten.Key) bool     { return ebiten.IsKeyPressed(key) }
func (ebitenInput) IsKeyJustPressed(key ebiten.Key) bool { return inpututil.IsKeyJustPressed(key) }
func (ebitenInput) IsClosing() bool                      { return ebiten.IsWindowBeingClosed() }

type binding struct {
	host ebiten.Key
	key  uint8
}

// Game implements ebiten.Game. Update runs at the default 60 ticks per
// second and executes one machine frame per tick.
type Game struct {
	ctx       context.Context
	machine   Machine
	input     input
	bindings  []binding
	scale     int
	maxFrames int
	frames    int
	paused    bool

	canvas *ebiten.Image
	pixels []byte
}

// New returns a game that stops after maxFrames frames, 0 runs until the
// window is closed, Escape is pressed or the context is cancelled.
func New(ctx context.Context, machine Machine, scale, maxFrames int) *Game {
	g := &Game{
		ctx:       ctx,
		machine:   machine,
		input:     ebitenInput{},
		scale:     scale,
		maxFrames: maxFrames,
		pixels:    make([]byte, screen.Width*screen.Height*4),
	}
	for _, b := range keymap.Bindings() {
		g.bindings = append(g.bindings, binding{host: hostKeys[b.Host], key: b.Key})
	}
	return g
}

// Run opens the window and blocks until the game ends.
func Run(game *Game) error {
	ebiten.SetWindowSize(screen.Width*game.scale, screen.Height*game.scale)
	ebiten.SetWindowTitle(title)

	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("running window: %w", err)
	}
	return game.ctx.Err()
}

// Frames returns the number of executed machine frames.
func (g *Game) Frames() int {
	return g.frames
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if g.ctx.Err() != nil || g.input.IsClosing() || g.input.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if g.maxFrames > 0 && g.frames >= g.maxFrames {
		return ebiten.Termination
	}

	if g.input.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if g.input.IsKeyJustPressed(ebiten.KeyF5) {
		g.machine.Reset()
	}

	for _, b := range g.bindings {
		if g.input.IsKeyPressed(b.host) {
			g.machine.KeyDown(b.key)
		} else {
			g.machine.KeyUp(b.key)
		}
	}

	if g.paused {
		return nil
	}
	if err := g.machine.Frame(); err != nil {
		return err
	}
	g.frames++
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(dst *ebiten.Image) {
	if g.canvas == nil {
		g.canvas = ebiten.NewImage(screen.Width, screen.Height)
	}

	fillPixels(g.pixels, g.machine.DisplayBuffer())
	g.canvas.WritePixels(g.pixels)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	dst.DrawImage(g.canvas, op)

	if g.paused {
		text.Draw(dst, "PAUSED", basicfont.Face7x13, 8, 16, overlayText)
	}
}

// Layout implements ebiten.Game.
func (g *Game) Layout(_, _ int) (int, int) {
	return screen.Width * g.scale, screen.Height * g.scale
}

// fillPixels converts the display buffer to RGBA pixels.
func fillPixels(pixels, buffer []byte) {
	for i, set := range buffer {
		c := pixelOff
		if set != 0 {
			c = pixelOn
		}
		offset := i * 4
		pixels[offset] = c.R
		pixels[offset+1] = c.G
		pixels[offset+2] = c.B
		pixels[offset+3] = c.A
	}
}
