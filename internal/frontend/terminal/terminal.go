// Package terminal runs the virtual machine inside a text terminal.
// Two pixel rows are rendered per text line using half block characters.
package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/retroenv/retrochip8/internal/keymap"
	"github.com/retroenv/retrochip8/internal/vm/keypad"
	"github.com/retroenv/retrochip8/internal/vm/screen"
	"golang.org/x/term"
)

// HoldFrames is the number of frames a key stays pressed after its key
// press was received. Terminals report no key releases.
const HoldFrames = 6

const (
	keyCtrlC  = 0x03
	keyEscape = 0x1b

	cursorHome  = "\x1b[H"
	clearScreen = "\x1b[2J"
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
)

// ErrQuit is returned by Frame when the user asked to quit.
var ErrQuit = errors.New("quit requested")

// Machine is the part of the virtual machine that the terminal drives.
type Machine interface {
	Frame() error
	KeyDown(key uint8)
	KeyUp(key uint8)
	IsPixelSet(x, y int) bool
}

// Terminal renders to out and reads key presses from in.
type Terminal struct {
	machine Machine
	in      io.Reader
	out     io.Writer

	input    chan byte
	done     chan struct{}
	stopOnce sync.Once
	held  [keypad.Keys]int // remaining frames per pressed key

	fd       int
	oldState *term.State
	builder  strings.Builder
}

// New returns a terminal frontend using stdin and stdout.
func New(machine Machine) *Terminal {
	return NewWithIO(machine, os.Stdin, os.Stdout)
}

// NewWithIO returns a terminal frontend using the given streams.
func NewWithIO(machine Machine, in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		machine: machine,
		in:      in,
		out:     out,
		input:   make(chan byte, 64),
		done:    make(chan struct{}),
		fd:      -1,
	}
}

// Start switches a terminal input into raw mode and starts reading keys.
// Stop has to be called to restore the terminal.
func (t *Terminal) Start() error {
	if file, ok := t.in.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		t.fd = int(file.Fd())
		oldState, err := term.MakeRaw(t.fd)
		if err != nil {
			return fmt.Errorf("setting terminal raw mode: %w", err)
		}
		t.oldState = oldState
	}

	go t.readInput()

	_, err := io.WriteString(t.out, clearScreen+hideCursor)
	return err
}

// Stop restores the terminal state and stops forwarding input.
func (t *Terminal) Stop() {
	t.stopOnce.Do(func() { close(t.done) })
	_, _ = io.WriteString(t.out, showCursor+"\r\n")
	if t.oldState != nil {
		_ = term.Restore(t.fd, t.oldState)
		t.oldState = nil
	}
}

// readInput forwards input bytes until the reader fails or Stop is called.
// A read blocked on stdin is not interruptible, the goroutine then ends
// with the process.
func (t *Terminal) readInput() {
	buf := make([]byte, 16)
	for {
		n, err := t.in.Read(buf)
		for _, b := range buf[:n] {
			select {
			case t.input <- b:
			case <-t.done:
				return
			}
		}
		if err != nil {
			return
		}
	}
}

// Frame processes pending key presses, runs one machine frame and renders
// the screen.
func (t *Terminal) Frame() error {
	if err := t.processInput(); err != nil {
		return err
	}
	if err := t.machine.Frame(); err != nil {
		return err
	}
	return t.Render()
}

func (t *Terminal) processInput() error {
	for key, frames := range t.held {
		if frames == 0 {
			continue
		}
		t.held[key]--
		if t.held[key] == 0 {
			t.machine.KeyUp(uint8(key))
		}
	}

	for {
		select {
		case b := <-t.input:
			if b == keyCtrlC || b == keyEscape {
				return ErrQuit
			}
			key, ok := keymap.Lookup(rune(b))
			if !ok {
				continue
			}
			t.held[key] = HoldFrames
			t.machine.KeyDown(key)
		default:
			return nil
		}
	}
}

// Render draws the screen at the top left of the terminal.
func (t *Terminal) Render() error {
	t.builder.Reset()
	t.builder.WriteString(cursorHome)

	for y := 0; y < screen.Height; y += 2 {
		for x := range screen.Width {
			upper := t.machine.IsPixelSet(x, y)
			lower := t.machine.IsPixelSet(x, y+1)
			t.builder.WriteString(halfBlock(upper, lower))
		}
		// raw mode does not translate newlines
		t.builder.WriteString("\r\n")
	}

	_, err := io.WriteString(t.out, t.builder.String())
	return err
}

func halfBlock(upper, lower bool) string {
	switch {
	case upper && lower:
		return "█"
	case upper:
		return "▀"
	case lower:
		return "▄"
	default:
		return " "
	}
}
