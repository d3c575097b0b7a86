// Package session handles a complete emulator run, from loading the ROM
// to shutting down audio and frontend.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/retroenv/retrochip8/internal/audio"
	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/frontend/terminal"
	"github.com/retroenv/retrochip8/internal/frontend/window"
	"github.com/retroenv/retrochip8/internal/listing"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrochip8/internal/screenshot"
	"github.com/retroenv/retrochip8/internal/vm"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// Run handles the complete emulation workflow.
func Run(ctx context.Context, logger *log.Logger, opts options.Program, emuOptions options.Emulator) error {
	rom, err := loader.New().Load(opts.Input)
	if err != nil {
		return fmt.Errorf("loading ROM: %w", err)
	}

	if opts.List {
		listingOptions := listing.Options{
			HexComments:    !opts.NoHexComments,
			OffsetComments: !opts.NoOffsets,
		}
		if err := listing.Write(stdout, rom, listingOptions); err != nil {
			return fmt.Errorf("writing listing: %w", err)
		}
		return nil
	}

	speaker, closers, err := createSpeaker(logger, opts)
	if err != nil {
		return fmt.Errorf("creating speaker: %w", err)
	}
	defer closeAll(logger, closers)

	machine := vm.New(speaker, config.CreateVMOptions(logger, emuOptions)...)
	if err := machine.LoadROM(rom); err != nil {
		return err
	}
	logger.Info("Running ROM", log.String("file", opts.Input), log.Int("size", len(rom)))

	if opts.Terminal {
		err = runTerminal(ctx, machine, opts.Frames)
	} else {
		err = runWindow(ctx, machine, opts.Scale, opts.Frames)
	}

	if opts.Screenshot != "" {
		if serr := screenshot.Save(opts.Screenshot, machine.DisplayBuffer(), opts.Scale); serr != nil {
			logger.Error("Saving screenshot failed", log.Err(serr))
		} else {
			logger.Info("Saved screenshot", log.String("file", opts.Screenshot))
		}
	}
	return err
}

// console streams, replaced in tests.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
)

func runTerminal(ctx context.Context, machine *vm.VM, frames int) error {
	frontend := terminal.NewWithIO(machine, stdin, stdout)
	if err := frontend.Start(); err != nil {
		return fmt.Errorf("starting terminal: %w", err)
	}
	defer frontend.Stop()

	_, err := runner.Run(ctx, runner.FrameDuration, frames, frontend.Frame)
	if errors.Is(err, terminal.ErrQuit) {
		return nil
	}
	return err
}

func runWindow(ctx context.Context, machine *vm.VM, scale, frames int) error {
	return window.Run(window.New(ctx, machine, scale, frames))
}

// createSpeaker combines the audio device output and the WAV recorder
// depending on the options. The returned closers have to be closed after
// the run.
func createSpeaker(logger *log.Logger, opts options.Program) (vm.Speaker, []io.Closer, error) {
	var speakers audio.Multi
	var closers []io.Closer

	if !opts.Mute {
		device, err := audio.NewOtoSpeaker(audio.DefaultSampleRate)
		if err != nil {
			logger.Warn("Audio output unavailable", log.Err(err))
		} else {
			speakers = append(speakers, device)
			closers = append(closers, device)
		}
	}

	if opts.WAV != "" {
		file, err := os.Create(opts.WAV)
		if err != nil {
			closeAll(logger, closers)
			return nil, nil, fmt.Errorf("creating wav file %s: %w", opts.WAV, err)
		}
		recorder := audio.NewWavRecorder(file, audio.DefaultSampleRate)
		speakers = append(speakers, recorder)
		// the recorder finalizes the header, it has to be closed before the file
		closers = append(closers, recorder, file)
	}

	return speakers, closers, nil
}

func closeAll(logger *log.Logger, closers []io.Closer) {
	for _, closer := range closers {
		if err := closer.Close(); err != nil {
			logger.Error("Closing output failed", log.Err(err))
		}
	}
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	logger.Info("retrochip8", log.String("version", buildinfo.Version(version, commit, date)))

	if date != "" && !strings.Contains(date, "unknown") {
		logger.Info("Build", log.String("date", date))
	}
}
