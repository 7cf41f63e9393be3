package smroom

import (
	"fmt"
	"image"

	"smroomcore/internal/debug"
	"smroomcore/internal/gfx"
	"smroomcore/internal/lzc"
	"smroomcore/internal/rom"
)

// buildTileSet runs the graphics pipeline described in §4.3/§4.4: decode
// the region's tile graphics plus the shared common tiles, decode the
// palette, decode the assembler table (optionally prefixed with the
// shared cross-region table), then rasterize one 16x16 image per
// assembler entry. logger is optional (nil-safe) and receives a Debug
// entry at each of the two Ceres special-casing branches (§4.3/§9).
func buildTileSet(buf []byte, header RoomHeader, state RoomState, logger *debug.Logger) ([]*image.RGBA, error) {
	tileSetPointer := tileSetTableBase + int(state.TileSet)*9

	graphicsOffset, err := rom.ReadPointer(buf, tileSetPointer+3)
	if err != nil {
		return nil, fmt.Errorf("reading tile graphics pointer: %w", err)
	}
	graphics, err := lzc.Decompress(buf, graphicsOffset, logger)
	if err != nil {
		return nil, fmt.Errorf("decompressing tile graphics: %w", err)
	}

	intermediateSize := 0x5000
	if int(state.TileSet) == CeresTileSet {
		intermediateSize = 0x8000
		logger.Logf(debug.ComponentGFX, debug.LogLevelDebug, "tile set %d is the Ceres set; using 0x8000-byte intermediate graphics buffer", state.TileSet)
	}
	graphics = resize(graphics, intermediateSize)

	commonTiles, err := lzc.Decompress(buf, commonTilesOffset, logger)
	if err != nil {
		return nil, fmt.Errorf("decompressing common tiles: %w", err)
	}
	graphics = append(graphics, commonTiles...)

	subTiles := gfx.DecodePlanes(graphics)

	paletteOffset, err := rom.ReadPointer(buf, tileSetPointer+6)
	if err != nil {
		return nil, fmt.Errorf("reading palette pointer: %w", err)
	}
	paletteBlob, err := lzc.Decompress(buf, paletteOffset, logger)
	if err != nil {
		return nil, fmt.Errorf("decompressing palette: %w", err)
	}
	palette := gfx.DecodePalette(paletteBlob)

	var assemblerBlob []byte
	if int(header.Region) != CeresRegion {
		shared, err := lzc.Decompress(buf, sharedAssemblerOffset, logger)
		if err != nil {
			return nil, fmt.Errorf("decompressing shared assembler table: %w", err)
		}
		assemblerBlob = append(assemblerBlob, shared...)
	} else {
		logger.Logf(debug.ComponentGFX, debug.LogLevelDebug, "region %d is Ceres; skipping the shared cross-region assembler table", header.Region)
	}
	assemblerOffset, err := rom.ReadPointer(buf, tileSetPointer)
	if err != nil {
		return nil, fmt.Errorf("reading assembler table pointer: %w", err)
	}
	regionAssemblers, err := lzc.Decompress(buf, assemblerOffset, logger)
	if err != nil {
		return nil, fmt.Errorf("decompressing assembler table: %w", err)
	}
	assemblerBlob = append(assemblerBlob, regionAssemblers...)

	assemblers, err := gfx.ParseTileAssemblers(assemblerBlob)
	if err != nil {
		return nil, fmt.Errorf("parsing assembler table: %w", err)
	}

	return gfx.BuildTileSet(subTiles, palette, assemblers), nil
}

// resize truncates or zero-extends buf to exactly n bytes, matching the
// vanilla pipeline's fixed-size intermediate graphics buffer before the
// common tiles are appended.
func resize(buf []byte, n int) []byte {
	if len(buf) >= n {
		return buf[:n]
	}
	out := make([]byte, n)
	copy(out, buf)
	return out
}
