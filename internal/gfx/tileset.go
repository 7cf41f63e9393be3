package gfx

import (
	"fmt"
	"image"
	"image/color"
)

// TileAssembler is an 8-byte record naming the four 8x8 subtile descriptors
// that compose a 16x16 tile: upper-left, upper-right, lower-left,
// lower-right.
type TileAssembler struct {
	UL, UR, DL, DR uint16
}

// ParseTileAssemblers reads an assembler table, 8 bytes per entry, from buf.
func ParseTileAssemblers(buf []byte) ([]TileAssembler, error) {
	if len(buf)%8 != 0 {
		return nil, fmt.Errorf("gfx: assembler table length %d is not a multiple of 8", len(buf))
	}
	out := make([]TileAssembler, 0, len(buf)/8)
	for i := 0; i+8 <= len(buf); i += 8 {
		out = append(out, TileAssembler{
			UL: uint16(buf[i]) | uint16(buf[i+1])<<8,
			UR: uint16(buf[i+2]) | uint16(buf[i+3])<<8,
			DL: uint16(buf[i+4]) | uint16(buf[i+5])<<8,
			DR: uint16(buf[i+6]) | uint16(buf[i+7])<<8,
		})
	}
	return out, nil
}

// BuildTileSet rasterizes one 16x16 RGBA image per assembler entry, reading
// subtile pixels from subTiles and coloring them from palette.
func BuildTileSet(subTiles []byte, palette []color.NRGBA, assemblers []TileAssembler) []*image.RGBA {
	tileSet := make([]*image.RGBA, len(assemblers))
	for i, a := range assemblers {
		img := image.NewRGBA(image.Rect(0, 0, TileSize, TileSize))
		drawSubTile(subTiles, a.UL, palette, img, 0, 0)
		drawSubTile(subTiles, a.UR, palette, img, subTileSize, 0)
		drawSubTile(subTiles, a.DL, palette, img, 0, subTileSize)
		drawSubTile(subTiles, a.DR, palette, img, subTileSize, subTileSize)
		tileSet[i] = img
	}
	return tileSet
}

// drawSubTile rasterizes one 8x8 subtile descriptor into dst at (x, y).
// A pixel index of 0 is always transparent, regardless of what color the
// palette holds at that slot.
func drawSubTile(subTiles []byte, descriptor uint16, palette []color.NRGBA, dst *image.RGBA, x, y int) {
	var xMask, yMask byte
	if descriptor&0x4000 != 0 {
		xMask = 7
	}
	if descriptor&0x8000 != 0 {
		yMask = 7
	}
	hi := int((descriptor & 0x1C00) >> 6)
	index := int(descriptor & 0x3FF)

	for ty := 0; ty < subTileSize; ty++ {
		for tx := 0; tx < subTileSize; tx++ {
			srcX := tx ^ int(xMask)
			srcY := ty ^ int(yMask)
			pos := index*64 + srcX + srcY*subTileSize
			if pos < 0 || pos >= len(subTiles) {
				continue
			}
			lo := subTiles[pos]
			var c color.NRGBA
			if lo != 0 && hi|int(lo) < len(palette) {
				c = palette[hi|int(lo)]
				c.A = 0xFF
			}
			dst.Set(x+tx, y+ty, c)
		}
	}
}
