package window

import (
	"context"
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/retroenv/retrochip8/internal/vm/screen"
	"github.com/retroenv/retrogolib/assert"
)

type fakeInput struct {
	pressed     map[ebiten.Key]bool
	justPressed map[ebiten.Key]bool
	closing     bool
}

func (f *fakeInput) IsKeyPressed(key ebiten.Key) bool     { return f.pressed[key] }
func (f *fakeInput) IsKeyJustPressed(key ebiten.Key) bool { return f.justPressed[key] }
func (f *fakeInput) IsClosing() bool                      { return f.closing }

type fakeMachine struct {
	frames int
	resets int
	down   [16]bool
	err    error
}

func (m *fakeMachine) Frame() error {
	if m.err != nil {
		return m.err
	}
	m.frames++
	return nil
}

func (m *fakeMachine) Reset()                { m.resets++ }
func (m *fakeMachine) KeyDown(key uint8)     { m.down[key] = true }
func (m *fakeMachine) KeyUp(key uint8)       { m.down[key] = false }
func (m *fakeMachine) DisplayBuffer() []byte { return make([]byte, screen.Width*screen.Height) }

func newTestGame(ctx context.Context, maxFrames int) (*Game, *fakeMachine, *fakeInput) {
	machine := &fakeMachine{}
	in := &fakeInput{
		pressed:     map[ebiten.Key]bool{},
		justPressed: map[ebiten.Key]bool{},
	}
	g := New(ctx, machine, 10, maxFrames)
	g.input = in
	return g, machine, in
}

func TestGame_UpdateRunsFrames(t *testing.T) {
	g, machine, _ := newTestGame(context.Background(), 2)

	assert.NoError(t, g.Update())
	assert.NoError(t, g.Update())
	assert.True(t, errors.Is(g.Update(), ebiten.Termination))
	assert.Equal(t, 2, machine.frames)
	assert.Equal(t, 2, g.Frames())
}

func TestGame_Keys(t *testing.T) {
	g, machine, in := newTestGame(context.Background(), 0)

	in.pressed[ebiten.KeyQ] = true
	in.pressed[ebiten.KeyV] = true
	assert.NoError(t, g.Update())
	assert.True(t, machine.down[0x4])
	assert.True(t, machine.down[0xF])
	assert.False(t, machine.down[0x5])

	in.pressed[ebiten.KeyQ] = false
	assert.NoError(t, g.Update())
	assert.False(t, machine.down[0x4])
	assert.True(t, machine.down[0xF])
}

func TestGame_PauseAndReset(t *testing.T) {
	g, machine, in := newTestGame(context.Background(), 0)

	in.justPressed[ebiten.KeyP] = true
	assert.NoError(t, g.Update())
	assert.Equal(t, 0, machine.frames)

	in.justPressed[ebiten.KeyP] = false
	in.justPressed[ebiten.KeyF5] = true
	assert.NoError(t, g.Update())
	assert.Equal(t, 1, machine.resets)
	assert.Equal(t, 0, machine.frames)
}

func TestGame_Termination(t *testing.T) {
	g, _, in := newTestGame(context.Background(), 0)
	in.justPressed[ebiten.KeyEscape] = true
	assert.True(t, errors.Is(g.Update(), ebiten.Termination))

	ctx, cancel := context.WithCancel(context.Background())
	g, _, _ = newTestGame(ctx, 0)
	cancel()
	assert.True(t, errors.Is(g.Update(), ebiten.Termination))
}

func TestGame_FrameError(t *testing.T) {
	g, machine, _ := newTestGame(context.Background(), 0)
	machine.err = errors.New("stack overflow")

	assert.ErrorContains(t, g.Update(), "stack overflow")
}

func TestGame_Layout(t *testing.T) {
	g, _, _ := newTestGame(context.Background(), 0)
	w, h := g.Layout(1, 1)
	assert.Equal(t, 640, w)
	assert.Equal(t, 320, h)
}

func TestFillPixels(t *testing.T) {
	pixels := make([]byte, 8)
	fillPixels(pixels, []byte{1, 0})

	assert.Equal(t, []byte{pixelOn.R, pixelOn.G, pixelOn.B, 0xff}, pixels[:4])
	assert.Equal(t, []byte{pixelOff.R, pixelOff.G, pixelOff.B, 0xff}, pixels[4:])
}
