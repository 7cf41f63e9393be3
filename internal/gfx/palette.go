package gfx

import "image/color"

// DecodePalette reads a blob of little-endian BGR555 color entries (2 bytes
// each) and returns one color.NRGBA per entry, alpha always fully opaque.
// Pixel index 0 within a tile is never looked up through this slice —
// BuildTileSet substitutes a transparent sentinel for it instead.
func DecodePalette(buf []byte) []color.NRGBA {
	colors := make([]color.NRGBA, 0, len(buf)/2)
	for i := 0; i+1 < len(buf); i += 2 {
		p := uint16(buf[i]) | uint16(buf[i+1])<<8
		colors = append(colors, color.NRGBA{
			R: scale5to8(p & 0x1F),
			G: scale5to8((p >> 5) & 0x1F),
			B: scale5to8((p >> 10) & 0x1F),
			A: 0xFF,
		})
	}
	return colors
}

// scale5to8 expands a 5-bit SNES color component to a full 8-bit channel.
func scale5to8(component uint16) uint8 {
	return uint8(component * 255 / 31)
}
