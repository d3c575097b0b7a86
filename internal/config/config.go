// Package config handles application configuration and setup
package config

import (
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/vm"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// CreateVMOptions maps the emulator options to virtual machine options.
func CreateVMOptions(logger *log.Logger, opts options.Emulator) []vm.Option {
	return []vm.Option{
		vm.WithLogger(logger),
		vm.WithInstructionsPerFrame(opts.InstructionsPerFrame),
		vm.WithQuirks(vm.Quirks{
			ShiftUsesVy:    opts.ShiftUsesVy,
			FontBaseOffset: opts.FontBaseOffset,
		}),
	}
}
