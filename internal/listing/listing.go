// Package listing writes a linear assembly listing of a CHIP-8 ROM.
package listing

import (
	"fmt"
	"hash/crc32"
	"io"

	"github.com/retroenv/retrochip8/internal/vm/instruction"
	"github.com/retroenv/retrochip8/internal/vm/memory"
)

const opcodeSize = 2

// Options of the listing.
type Options struct {
	HexComments    bool // opcode bytes as comment
	OffsetComments bool // address as comment
}

// Write decodes every 2 byte word of the ROM in order. Jump and call
// targets inside the ROM get a label line. A trailing odd byte is written
// as data.
func Write(w io.Writer, rom []byte, options Options) error {
	if err := writeCommentHeader(w, rom); err != nil {
		return err
	}

	labels := collectLabels(rom)
	end := memory.ProgramStart + len(rom)

	for address := memory.ProgramStart; address < end; address += opcodeSize {
		if label, ok := labels[uint16(address)]; ok {
			if _, err := fmt.Fprintf(w, "%s:\n", label); err != nil {
				return fmt.Errorf("writing label: %w", err)
			}
		}

		data := rom[address-memory.ProgramStart : min(address-memory.ProgramStart+opcodeSize, len(rom))]
		code := fmt.Sprintf(".byte $%02x", data[0])
		if len(data) == opcodeSize {
			code = instruction.Parse(uint16(data[0])<<8 | uint16(data[1])).String()
		}

		if err := writeLine(w, code, comment(address, data, options)); err != nil {
			return err
		}
	}
	return nil
}

func writeCommentHeader(w io.Writer, rom []byte) error {
	if _, err := fmt.Fprintf(w, "; ROM CRC32 checksum: %08x\n", crc32.ChecksumIEEE(rom)); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if _, err := fmt.Fprintf(w, "; Code base address: $%04x\n\n", memory.ProgramStart); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	return nil
}

// collectLabels names the targets of jp and call instructions that point
// into the ROM. The program start is always labeled. Odd targets are not
// labeled as the listing only starts lines at even addresses.
func collectLabels(rom []byte) map[uint16]string {
	labels := map[uint16]string{
		memory.ProgramStart: "Start",
	}
	end := uint16(memory.ProgramStart + len(rom))

	for i := 0; i+1 < len(rom); i += opcodeSize {
		ins := instruction.Parse(uint16(rom[i])<<8 | uint16(rom[i+1]))
		if ins.Nibbles[0] != 0x1 && ins.Nibbles[0] != 0x2 {
			continue
		}
		if ins.Addr < memory.ProgramStart || ins.Addr >= end || ins.Addr%opcodeSize != 0 {
			continue
		}
		if _, ok := labels[ins.Addr]; !ok {
			labels[ins.Addr] = fmt.Sprintf("_label_%04x", ins.Addr)
		}
	}
	return labels
}

func comment(address int, data []byte, options Options) string {
	var s string
	if options.OffsetComments {
		s = fmt.Sprintf("$%04X", address)
	}
	if options.HexComments {
		hex := fmt.Sprintf("% 02X", data)
		if s == "" {
			s = hex
		} else {
			s += "  " + hex
		}
	}
	return s
}

func writeLine(w io.Writer, code, comment string) error {
	var err error
	if comment == "" {
		_, err = fmt.Fprintf(w, "  %s\n", code)
	} else {
		_, err = fmt.Fprintf(w, "  %-30s ; %s\n", code, comment)
	}
	if err != nil {
		return fmt.Errorf("writing line: %w", err)
	}
	return nil
}
