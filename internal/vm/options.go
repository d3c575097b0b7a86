package vm

import (
	"math/rand/v2"

	"github.com/retroenv/retrogolib/log"
)

// DefaultInstructionsPerFrame is the number of instructions executed per
// 60 Hz frame unless configured otherwise.
const DefaultInstructionsPerFrame = 10

// Quirks selects between divergent historical interpretations of opcodes.
// The zero value is the default behavior.
type Quirks struct {
	// ShiftUsesVy makes 8xy6 and 8xyE shift Vy and store the result in Vx.
	ShiftUsesVy bool
	// FontBaseOffset makes Fx29 point I at the resident font, adding its
	// base address to Vx*5.
	FontBaseOffset bool
}

// Option configures a VM.
type Option func(*VM)

// WithLogger sets the logger, the default logs at info level.
func WithLogger(logger *log.Logger) Option {
	return func(v *VM) {
		v.logger = logger
	}
}

// WithRandom sets the byte source used by Cxkk.
func WithRandom(random func() byte) Option {
	return func(v *VM) {
		v.random = random
	}
}

// WithQuirks sets the opcode compatibility flags.
func WithQuirks(quirks Quirks) Option {
	return func(v *VM) {
		v.quirks = quirks
	}
}

// WithInstructionsPerFrame sets how many instructions Frame executes.
// Values below 1 are ignored.
func WithInstructionsPerFrame(n int) Option {
	return func(v *VM) {
		if n > 0 {
			v.instructionsPerFrame = n
		}
	}
}

func randomByte() byte {
	return byte(rand.UintN(256))
}

func defaultLogger() *log.Logger {
	return log.NewWithConfig(log.DefaultConfig())
}
