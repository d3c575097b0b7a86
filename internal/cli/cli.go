// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/retroenv/retrochip8/internal/options"
)

// Limits of numeric options.
const (
	maxInstructionsPerFrame = 1000
	maxScale                = 64
)

// ParseFlags parses command line flags and returns program and emulator options
func ParseFlags() (options.Program, options.Emulator, error) {
	return parseArgs(os.Args)
}

func parseArgs(osArgs []string) (options.Program, options.Emulator, error) {
	flags := flag.NewFlagSet(osArgs[0], flag.ContinueOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(osArgs[1:])
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Input == "") {
		return opts, options.Emulator{}, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, options.Emulator{}, err
	}

	if err := validateOptions(opts); err != nil {
		return opts, options.Emulator{}, err
	}

	if len(args) > 0 {
		opts.Input = args[0]
	}

	return opts, createEmulatorOptions(opts), nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the usage and all flag defaults.
func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: retrochip8 [options] <ROM file>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg != "" && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after ROM file, please pass the ROM file as last argument", arg),
			}
		}
	}
	if len(args) > 1 {
		return &UsageError{
			msg: fmt.Sprintf("only one ROM file can be run, got %d", len(args)),
		}
	}
	return nil
}

// validateOptions checks the ranges of numeric option values
func validateOptions(opts options.Program) error {
	if opts.InstructionsPerFrame < 1 || opts.InstructionsPerFrame > maxInstructionsPerFrame {
		return fmt.Errorf("instructions per frame %d out of range 1-%d",
			opts.InstructionsPerFrame, maxInstructionsPerFrame)
	}
	if opts.Scale < 1 || opts.Scale > maxScale {
		return fmt.Errorf("scale %d out of range 1-%d", opts.Scale, maxScale)
	}
	if opts.Frames < 0 {
		return fmt.Errorf("frame count %d must not be negative", opts.Frames)
	}
	return nil
}

// createEmulatorOptions creates emulator options based on program options
func createEmulatorOptions(opts options.Program) options.Emulator {
	emuOptions := options.NewEmulator()
	emuOptions.InstructionsPerFrame = opts.InstructionsPerFrame
	emuOptions.ShiftUsesVy = opts.ShiftUsesVy
	emuOptions.FontBaseOffset = opts.FontBaseOffset
	return emuOptions
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", "", "name of the input ROM file")
	flags.StringVar(&opts.WAV, "wav", "", "name of a .wav file to record the beeper output to")
	flags.StringVar(&opts.Screenshot, "screenshot", "", "name of a .png file to save the screen to on exit")
	flags.IntVar(&opts.InstructionsPerFrame, "ipf", 10, "number of instructions executed per 60 Hz frame (1-1000)")
	flags.IntVar(&opts.Frames, "frames", 0, "stop after the given number of frames, 0 runs until quit")
	flags.IntVar(&opts.Scale, "scale", 10, "window pixels per CHIP-8 pixel (1-64)")
	flags.BoolVar(&opts.Terminal, "terminal", false, "render in the terminal instead of a window")
	flags.BoolVar(&opts.Mute, "mute", false, "disable sound output")
	flags.BoolVar(&opts.ShiftUsesVy, "shift-vy", false, "shift opcodes 8xy6/8xyE shift Vy into Vx")
	flags.BoolVar(&opts.FontBaseOffset, "font-base", false, "font opcode Fx29 adds the font base address 0x50")
	flags.BoolVar(&opts.List, "list", false, "print an assembly listing of the ROM instead of running it")
	flags.BoolVar(&opts.NoHexComments, "nohexcomments", false, "do not output opcode bytes as hex values in listing comments")
	flags.BoolVar(&opts.NoOffsets, "nooffsets", false, "do not output addresses in listing comments")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
