// Package lzc implements the variable-opcode, byte-oriented compression
// scheme Super Metroid uses for room graphics, palettes, and layer data.
//
// There is no true LZ77 sliding window here: the "copy" opcodes read back
// from the destination buffer that is itself being built, byte at a time,
// so a copy can legally overlap its own source bytes (run-length expansion
// falls out of that for free). The control-byte dispatch below is modeled
// on the switch-on-mode instruction decoder of the teacher codebase's
// internal/cpu package, which is not part of this module.
package lzc

import (
	"fmt"

	"smroomcore/internal/debug"
)

// opcode identifies one of the eight operations a control byte can select.
type opcode uint8

const (
	opDirectCopy opcode = iota
	opByteFill
	opWordFill
	opGradient
	opAbsoluteCopy
	opAbsoluteCopyInverted
	opRelativeCopy
	opRelativeCopyInverted
)

// terminator is the control byte that ends a compressed stream.
const terminator = 0xFF

// Decompress expands the compressed byte stream starting at offset in src,
// returning the decompressed bytes. It stops at the first 0xFF control
// byte and never reads src beyond what the stream actually consumes.
// logger is optional (nil-safe) and receives a Warning entry whenever a
// back/absolute-reference copy silently no-ops on a negative reference.
func Decompress(src []byte, offset int, logger *debug.Logger) ([]byte, error) {
	dst := make([]byte, 0, 512)
	pos := offset

	for {
		op, err := readByte(src, pos)
		if err != nil {
			return nil, fmt.Errorf("lzc: reading control byte at 0x%X: %w", pos, err)
		}
		if op == terminator {
			break
		}
		pos++

		var length int
		var code opcode
		if op&0xE0 == 0xE0 {
			hi, err := readByte(src, pos)
			if err != nil {
				return nil, fmt.Errorf("lzc: reading long-form length byte at 0x%X: %w", pos, err)
			}
			length = int(op&3)<<8 | int(hi)
			code = opcode((op >> 2) & 7)
			pos++
		} else {
			length = int(op & 0x1F)
			code = opcode(op >> 5)
		}
		length++

		switch code {
		case opDirectCopy:
			for i := 0; i < length; i++ {
				b, err := readByte(src, pos)
				if err != nil {
					return nil, fmt.Errorf("lzc: direct copy at 0x%X: %w", pos, err)
				}
				dst = append(dst, b)
				pos++
			}

		case opByteFill:
			b, err := readByte(src, pos)
			if err != nil {
				return nil, fmt.Errorf("lzc: byte fill at 0x%X: %w", pos, err)
			}
			for i := 0; i < length; i++ {
				dst = append(dst, b)
			}
			pos++

		case opWordFill:
			lo, err := readByte(src, pos)
			if err != nil {
				return nil, fmt.Errorf("lzc: word fill at 0x%X: %w", pos, err)
			}
			hi, err := readByte(src, pos+1)
			if err != nil {
				return nil, fmt.Errorf("lzc: word fill at 0x%X: %w", pos+1, err)
			}
			pair := [2]byte{lo, hi}
			for i := 0; i < length; i++ {
				dst = append(dst, pair[i%2])
			}
			pos += 2

		case opGradient:
			b, err := readByte(src, pos)
			if err != nil {
				return nil, fmt.Errorf("lzc: gradient fill at 0x%X: %w", pos, err)
			}
			for i := 0; i < length; i++ {
				dst = append(dst, byte((int(b)+i)%0x100))
			}
			pos++

		case opAbsoluteCopy:
			n, err := lzCopy(src, pos, length, 2, 0, true, &dst, logger)
			if err != nil {
				return nil, err
			}
			pos += n

		case opAbsoluteCopyInverted:
			n, err := lzCopy(src, pos, length, 2, 0xFF, true, &dst, logger)
			if err != nil {
				return nil, err
			}
			pos += n

		case opRelativeCopy:
			n, err := lzCopy(src, pos, length, 1, 0, false, &dst, logger)
			if err != nil {
				return nil, err
			}
			pos += n

		case opRelativeCopyInverted:
			n, err := lzCopy(src, pos, length, 1, 0xFF, false, &dst, logger)
			if err != nil {
				return nil, err
			}
			pos += n
		}
	}

	return dst, nil
}

// lzCopy reads a 1- or 2-byte back-reference at src[offset:] and appends
// length bytes (each optionally XORed with mask) from dst to itself,
// reading the source byte-by-byte so the copy can read bytes it has
// itself already appended in this same call.
//
// If the resolved starting index is negative, nothing is appended: the
// back-reference bytes are still consumed from the stream, but the op
// silently produces no output. This matches the vanilla decompressor
// exactly and must not be treated as an error.
func lzCopy(src []byte, offset, length, refBytes int, mask byte, absolute bool, dst *[]byte, logger *debug.Logger) (int, error) {
	b0, err := readByte(src, offset)
	if err != nil {
		return 0, fmt.Errorf("lzc: copy reference at 0x%X: %w", offset, err)
	}
	from := int(b0)
	if refBytes == 2 {
		b1, err := readByte(src, offset+1)
		if err != nil {
			return 0, fmt.Errorf("lzc: copy reference at 0x%X: %w", offset+1, err)
		}
		from |= int(b1) << 8
	}
	if !absolute {
		from = len(*dst) - from
	}

	if from >= 0 {
		for i := 0; i < length; i++ {
			*dst = append(*dst, (*dst)[from+i]^mask)
		}
	} else {
		logger.Logf(debug.ComponentLZC, debug.LogLevelWarning, "copy reference at 0x%X resolved to negative index %d (length %d); silently producing no output", offset, from, length)
	}

	return refBytes, nil
}

func readByte(buf []byte, offset int) (byte, error) {
	if offset < 0 || offset >= len(buf) {
		return 0, fmt.Errorf("offset 0x%X is out of bounds (buffer is %d bytes)", offset, len(buf))
	}
	return buf[offset], nil
}
