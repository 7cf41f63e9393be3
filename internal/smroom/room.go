package smroom

import (
	"fmt"

	"smroomcore/internal/debug"
	"smroomcore/internal/lzc"
	"smroomcore/internal/rom"
)

// tileSetTableBase, commonTilesOffset, and sharedAssemblerOffset are the
// fixed pipeline offsets re-exported from internal/rom for readability
// here; they are ROM file offsets already, never CPU addresses, so none
// of them ever get a headerLength added to them (see Open's doc comment).
const (
	tileSetTableBase      = rom.TileSetTableBase
	commonTilesOffset     = rom.CommonTilesOffset
	sharedAssemblerOffset = rom.SharedAssemblerOffset
)

// Open reconstructs a room from r starting at the given ROM file offset
// (excluding any copier header; Open adds r.HeaderLength() itself),
// selecting the RoomState named by stateIndex (-1 for "default": the
// first unconditional STANDARD entry).
//
// headerLength is added to file offsets at exactly four points: the
// initial header offset, the alternate-state RoomState pointer, the
// scroll grid offset, and the door pointer table plus the door record it
// resolves to. It is deliberately NOT added anywhere in the graphics
// pipeline or to the state.data layer blob offset — those pointers are
// CPU addresses or fixed ROM offsets that vanilla Super Metroid's own
// code resolves without ever crossing back through the copier-header
// adjustment, and this reconstruction must match that exactly rather than
// "fix" the asymmetry.
func Open(r *rom.Rom, offset int, stateIndex int, logger *debug.Logger) (*Room, error) {
	buf := r.Buffer()
	headerLength := r.HeaderLength()
	offset += headerLength

	header, err := readRoomHeader(buf, offset)
	if err != nil {
		return nil, fmt.Errorf("smroom: reading room header at 0x%X: %w", offset, err)
	}
	logger.Logf(debug.ComponentRoom, debug.LogLevelDebug, "read header at 0x%X: region=%d size=%dx%d", offset, header.Region, header.Width, header.Height)
	offset += roomHeaderSize

	resolved, err := scanStateCodes(buf, offset, stateIndex, logger)
	if err != nil {
		return nil, fmt.Errorf("smroom: scanning state codes: %w", err)
	}

	stateOffset := resolved.markerOffset
	if resolved.chosenCode != StateStandard {
		ptr, err := rom.ReadU16(buf, resolved.markerOffset-2)
		if err != nil {
			return nil, err
		}
		stateOffset = headerLength + rom.CPUToROM(0x8F0000|uint32(ptr))
	}

	state, err := readRoomState(buf, stateOffset)
	if err != nil {
		return nil, fmt.Errorf("smroom: reading room state at 0x%X: %w", stateOffset, err)
	}

	scroll := makeGrid(int(header.Width), int(header.Height))
	if state.Scroll >= 0x8000 {
		scrollOffset := headerLength + rom.CPUToROM(0x8F0000|uint32(state.Scroll))
		if err := readScrollGrid(buf, scrollOffset, scroll); err != nil {
			return nil, fmt.Errorf("smroom: reading scroll grid at 0x%X: %w", scrollOffset, err)
		}
	}

	tiles, doorsInRoom, err := readTileGrid(buf, rom.CPUToROM(state.Data), int(header.Width), int(header.Height), logger)
	if err != nil {
		return nil, fmt.Errorf("smroom: reading tile data: %w", err)
	}

	tileSet, err := buildTileSet(buf, header, state, logger)
	if err != nil {
		return nil, fmt.Errorf("smroom: building tile set: %w", err)
	}

	doors, err := readDoorTable(buf, header, headerLength, doorsInRoom)
	if err != nil {
		return nil, fmt.Errorf("smroom: reading door table: %w", err)
	}

	return &Room{
		Header:     header,
		StateCodes: resolved.codes,
		StateValue: resolved.stateValue,
		State:      state,
		Scroll:     scroll,
		Tiles:      tiles,
		TileSet:    tileSet,
		Doors:      doors,
	}, nil
}

func makeGrid(width, height int) [][]uint8 {
	grid := make([][]uint8, width)
	for i := range grid {
		grid[i] = make([]uint8, height)
	}
	return grid
}

func readScrollGrid(buf []byte, offset int, grid [][]uint8) error {
	width, height := len(grid), 0
	if width > 0 {
		height = len(grid[0])
	}
	for i := 0; i < width; i++ {
		for j := 0; j < height; j++ {
			b, err := rom.ReadByte(buf, offset)
			if err != nil {
				return err
			}
			grid[i][j] = b
			offset++
		}
	}
	return nil
}

// readTileGrid decompresses the layer blob at offset and decodes the two
// tile layers plus the BTS plane into a width*16 by height*16 grid of
// Tile, returning the number of doors the room references.
func readTileGrid(buf []byte, offset int, width, height int, logger *debug.Logger) ([][]Tile, int, error) {
	blob, err := lzc.Decompress(buf, offset, logger)
	if err != nil {
		return nil, 0, err
	}
	if len(blob) < 2 {
		return nil, 0, fmt.Errorf("%w: layer blob is %d bytes", ErrTruncatedBuffer, len(blob))
	}

	roomDataSize := int(blob[0]) | int(blob[1])<<8
	iSize := width * ChunkSize
	jSize := height * ChunkSize

	hasLayer2 := len(blob) > 2+roomDataSize+roomDataSize/2

	tiles := make([][]Tile, iSize)
	doorsInRoom := 0
	for i := 0; i < iSize; i++ {
		tiles[i] = make([]Tile, jSize)
		for j := 0; j < jSize; j++ {
			cellIndex := i + j*iSize
			layer1, err := readTileLayer(blob, 2+2*cellIndex)
			if err != nil {
				return nil, 0, err
			}
			btsOffset := 2 + roomDataSize + cellIndex
			if btsOffset >= len(blob) {
				return nil, 0, fmt.Errorf("%w: BTS plane truncated", ErrTruncatedBuffer)
			}
			bts := blob[btsOffset]

			tile := Tile{Layer1: layer1, BTS: bts}
			if hasLayer2 {
				layer2, err := readTileLayer(blob, 2+roomDataSize+roomDataSize/2+2*cellIndex)
				if err != nil {
					return nil, 0, err
				}
				tile.Layer2 = layer2
				tile.HasLayer2 = true
			}
			tiles[i][j] = tile

			if layer1.Property == 9 && int(bts)+1 > doorsInRoom {
				doorsInRoom = int(bts) + 1
			}
		}
	}

	return tiles, doorsInRoom, nil
}

