// Package rom owns the raw byte image of a Super Metroid cartridge dump: the
// copier-header detection, PAL rejection, and the little-endian /
// CPU-address helpers every higher-level reader in this module builds on.
//
// Kept alive from the teacher's own internal/rom package (which built ROM
// images for its own fictional instruction set) is the shape of the type —
// a byte buffer plus metadata, constructed once and read many times — and
// the error-wrapping idiom from internal/memory/cartridge.go. The actual
// bytes it reads, and the mapping from CPU address to file offset, are
// entirely rewritten for the SNES LoROM layout.
package rom

import (
	"errors"
	"fmt"
	"os"
)

const (
	// romSizeUnit is the bank size vanilla SM (U) ROM images are padded to;
	// a size that isn't a multiple of it indicates a copier header.
	romSizeUnit = 1 << 15
	// copierHeaderLength is the size of the optional preamble some dumpers
	// prepend to a ROM image.
	copierHeaderLength = 512
	// palFlagOffset is the byte (within the headerless image) that PAL
	// releases mark with a value >= 2.
	palFlagOffset = 0x7FD9
)

// ErrPALROM is returned by New/Load when the image is detected as a PAL
// dump, which this library does not support.
var ErrPALROM = errors.New("ROM is PAL. This doesn't work on PAL ROMs.")

// Rom is an immutable, in-memory Super Metroid ROM image.
type Rom struct {
	buffer       []byte
	headerLength int
}

// Load reads a ROM image from disk and builds a Rom from it.
func Load(path string) (*Rom, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("rom: couldn't read ROM file %q: %w", path, err)
	}
	r, err := New(data)
	if err != nil {
		return nil, fmt.Errorf("rom: %q: %w", path, err)
	}
	return r, nil
}

// New builds a Rom from an in-memory image, detecting the copier header (if
// any) and rejecting PAL dumps.
func New(data []byte) (*Rom, error) {
	headerLength := 0
	if len(data)%romSizeUnit != 0 {
		headerLength = copierHeaderLength
	}

	if headerLength+palFlagOffset >= len(data) {
		return nil, fmt.Errorf("ROM image is too small (%d bytes) to be a valid Super Metroid dump", len(data))
	}
	if data[headerLength+palFlagOffset] >= 2 {
		return nil, ErrPALROM
	}

	return &Rom{buffer: data, headerLength: headerLength}, nil
}

// HeaderLength returns 0 or 512 depending on whether a copier header was
// detected when the ROM was loaded.
func (r *Rom) HeaderLength() int {
	return r.headerLength
}

// Buffer returns the full underlying byte image, copier header included.
// Callers must not mutate the returned slice.
func (r *Rom) Buffer() []byte {
	return r.buffer
}

// Len returns the size in bytes of the underlying image.
func (r *Rom) Len() int {
	return len(r.buffer)
}

// At returns the byte at offset, or an error if offset falls outside the
// ROM image.
func (r *Rom) At(offset int) (byte, error) {
	if offset < 0 || offset >= len(r.buffer) {
		return 0, fmt.Errorf("rom: offset 0x%X is out of bounds (ROM is %d bytes)", offset, len(r.buffer))
	}
	return r.buffer[offset], nil
}
