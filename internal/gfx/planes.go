// Package gfx turns decompressed SNES graphics blobs into Go images: the
// planar-to-chunky pixel unpacker, the BGR555 palette decoder, and the
// assembler-driven 16x16 tile rasterizer. None of it touches the ROM or
// the room record layout directly — it operates purely on the byte slices
// Room.Open hands it, the same separation of concerns the teacher's
// internal/ppu package draws between CGRAM/VRAM bytes and rendered pixels.
package gfx

// TileSize is the pixel width and height of a fully assembled tile.
const TileSize = 16

// subTileSize is the side length in pixels of one planar-decoded 8x8 tile.
const subTileSize = 8

// DecodePlanes converts a buffer of SNES 4bpp planar tile data into a flat
// subTiles buffer: one byte per pixel index in [0,15], 64 bytes per 8x8
// tile, row-major within each tile. buf's length must be a multiple of 32;
// buf is not modified.
func DecodePlanes(buf []byte) []byte {
	packed := make([]byte, len(buf))

	for block := 0; block+32 <= len(buf); block += 32 {
		copyBlock := buf[block : block+32]
		for y := 0; y < subTileSize; y++ {
			line := [4]byte{
				copyBlock[y*2],
				copyBlock[y*2+1],
				copyBlock[y*2+16],
				copyBlock[y*2+17],
			}
			for x := 0; x < subTileSize; x++ {
				shift := uint((7 - x) * 4)
				var word uint32
				for j := 0; j < 4; j++ {
					word += uint32(line[j]&1) << (shift + uint(j))
				}
				for j := 0; j < 4; j++ {
					packed[block+y*4+j] |= byte(word >> uint(8*j))
					line[j] >>= 1
				}
			}
		}
	}

	subTiles := make([]byte, 0, len(packed)*2)
	for _, b := range packed {
		subTiles = append(subTiles, b&0xF, b>>4)
	}
	return subTiles
}
