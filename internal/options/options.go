// Package options contains the program options.
package options

// Parameters contains file path options.
type Parameters struct {
	Input      string `flag:"i" usage:"input ROM file"`
	WAV        string `flag:"wav" usage:"record the beeper output to a .wav file"`
	Screenshot string `flag:"screenshot" usage:"save the screen as .png file on exit"`
}

// Flags contains behavior options.
type Flags struct {
	InstructionsPerFrame int  `flag:"ipf" usage:"instructions executed per 60 Hz frame" default:"10"`
	Frames               int  `flag:"frames" usage:"stop after the given number of frames, 0 runs until quit"`
	ShiftUsesVy          bool `flag:"shift-vy" usage:"shift opcodes shift Vy into Vx"`
	FontBaseOffset       bool `flag:"font-base" usage:"font opcode adds the font base address"`
	Debug                bool `flag:"debug" usage:"enable debug logging"`
	Quiet                bool `flag:"q" usage:"quiet mode"`
}

// Display contains frontend options.
type Display struct {
	Scale    int  `flag:"scale" usage:"window pixels per CHIP-8 pixel" default:"10"`
	Terminal bool `flag:"terminal" usage:"render in the terminal instead of a window"`
	Mute     bool `flag:"mute" usage:"disable sound output"`
}

// ListingFlags contains listing output options.
type ListingFlags struct {
	List          bool `flag:"list" usage:"print an assembly listing of the ROM instead of running it"`
	NoHexComments bool `flag:"nohexcomments" usage:"omit hex opcode bytes in listing comments"`
	NoOffsets     bool `flag:"nooffsets" usage:"omit addresses in listing comments"`
}

// Program options of the emulator.
type Program struct {
	Parameters
	Flags
	Display
	ListingFlags
}

// Emulator defines options to control the virtual machine.
type Emulator struct {
	InstructionsPerFrame int
	ShiftUsesVy          bool
	FontBaseOffset       bool
}

// NewEmulator returns a new options instance with default options.
func NewEmulator() Emulator {
	return Emulator{
		InstructionsPerFrame: 10,
	}
}
