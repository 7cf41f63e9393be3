// Package smroom reconstructs a single Super Metroid room from a ROM image:
// its header, the state-code chain and the RoomState it selects, the
// compressed tile and behavior planes, the scroll grid, the rebuilt
// graphics tile set, and the door table. It is the orchestrator layer that
// binds internal/rom, internal/lzc, and internal/gfx together, the same
// role internal/emulator plays for the teacher's CPU/PPU/APU/memory
// subsystems.
package smroom

import (
	"fmt"
	"image"

	"smroomcore/internal/rom"
)

// CeresRegion and CeresTileSet are re-exported from internal/rom for
// callers that only import smroom.
const (
	CeresRegion  = rom.CeresRegion
	CeresTileSet = rom.CeresTileSet
	ChunkSize    = 16
	TileSize     = 16
)

// RoomHeader is the fixed 11-byte record at the start of every room.
type RoomHeader struct {
	Index         uint8
	Region        uint8
	X, Y          uint8
	Width, Height uint8
	UpScroller    uint8
	DownScroller  uint8
	GraphicsFlags uint8
	Doors         uint16 // 16-bit pointer within bank $8F
}

const roomHeaderSize = 11

func readRoomHeader(buf []byte, offset int) (RoomHeader, error) {
	if offset < 0 || offset+roomHeaderSize > len(buf) {
		return RoomHeader{}, fmt.Errorf("smroom: RoomHeader at 0x%X out of bounds (len=%d)", offset, len(buf))
	}
	doors, err := rom.ReadU16(buf, offset+9)
	if err != nil {
		return RoomHeader{}, err
	}
	return RoomHeader{
		Index:         buf[offset],
		Region:        buf[offset+1],
		X:             buf[offset+2],
		Y:             buf[offset+3],
		Width:         buf[offset+4],
		Height:        buf[offset+5],
		UpScroller:    buf[offset+6],
		DownScroller:  buf[offset+7],
		GraphicsFlags: buf[offset+8],
		Doors:         doors,
	}, nil
}

// RoomState is the 26-byte record describing one variation of a room.
type RoomState struct {
	Data          uint32 // 24-bit CPU pointer to the compressed layer blob
	TileSet       uint8
	MusicTrack    uint8
	MusicControl  uint8
	FX1           uint16
	Enemies       uint16
	EnemySet      uint16
	Layer2        uint16
	Scroll        uint16
	Unknown       uint16
	FX2           uint16
	PLM           uint16
	Background    uint16
	LayerHandling uint16
}

const roomStateSize = 26

func readRoomState(buf []byte, offset int) (RoomState, error) {
	if offset < 0 || offset+roomStateSize > len(buf) {
		return RoomState{}, fmt.Errorf("smroom: RoomState at 0x%X out of bounds (len=%d)", offset, len(buf))
	}
	data, err := rom.ReadU24(buf, offset)
	if err != nil {
		return RoomState{}, err
	}
	fields := make([]uint16, 11)
	offsets := []int{6, 8, 10, 12, 14, 16, 18, 20, 22, 24}
	for i, o := range offsets {
		v, err := rom.ReadU16(buf, offset+o)
		if err != nil {
			return RoomState{}, err
		}
		fields[i] = v
	}
	return RoomState{
		Data:          data,
		TileSet:       buf[offset+3],
		MusicTrack:    buf[offset+4],
		MusicControl:  buf[offset+5],
		FX1:           fields[0],
		Enemies:       fields[1],
		EnemySet:      fields[2],
		Layer2:        fields[3],
		Scroll:        fields[4],
		Unknown:       fields[5],
		FX2:           fields[6],
		PLM:           fields[7],
		Background:    fields[8],
		LayerHandling: fields[9],
	}, nil
}

// TileLayer is one 16-bit cell entry: an atlas tile index plus flip bits
// and a 4-bit property nibble.
type TileLayer struct {
	Index    uint16 // low 10 bits
	FlipH    bool
	FlipV    bool
	Property uint8 // high nibble, 0-15; 9 means the cell's BTS byte is a door index
}

func readTileLayer(buf []byte, offset int) (TileLayer, error) {
	v, err := rom.ReadU16(buf, offset)
	if err != nil {
		return TileLayer{}, err
	}
	return TileLayer{
		Index:    v & 0x3FF,
		FlipH:    buf[offset+1]&0x04 != 0,
		FlipV:    buf[offset+1]&0x08 != 0,
		Property: buf[offset+1] >> 4,
	}, nil
}

// Tile is one map cell: the index/flip layer 1 data, the behavior byte,
// and an optional layer 2.
type Tile struct {
	Layer1     TileLayer
	BTS        uint8
	Layer2     TileLayer
	HasLayer2  bool
}

// Door is a 12-byte record describing a connection to another room.
type Door struct {
	Room         int // fully resolved file offset, or 0
	DoorBitFlag  uint8
	Direction    uint8
	IllusionX    uint8
	IllusionY    uint8
	X, Y         uint8
	Distance     uint16
	ScrollData   uint16
}

const doorSize = 12

func readDoorRecord(buf []byte, offset int) (Door, error) {
	if offset < 0 || offset+doorSize > len(buf) {
		return Door{}, fmt.Errorf("smroom: Door at 0x%X out of bounds (len=%d)", offset, len(buf))
	}
	room, err := rom.ReadU16(buf, offset)
	if err != nil {
		return Door{}, err
	}
	distance, err := rom.ReadU16(buf, offset+8)
	if err != nil {
		return Door{}, err
	}
	scrollData, err := rom.ReadU16(buf, offset+10)
	if err != nil {
		return Door{}, err
	}

	resolvedRoom := 0
	if room != 0 {
		resolvedRoom = rom.CPUToROM(0x8F0000 | uint32(room))
	}

	return Door{
		Room:        resolvedRoom,
		DoorBitFlag: buf[offset+2],
		Direction:   buf[offset+3],
		IllusionX:   buf[offset+4],
		IllusionY:   buf[offset+5],
		X:           buf[offset+6],
		Y:           buf[offset+7],
		Distance:    distance,
		ScrollData:  scrollData,
	}, nil
}

// Room is the fully reconstructed state of one room.
type Room struct {
	Header       RoomHeader
	StateCodes   []StateCode
	StateValue   uint8 // recorded byte for EVENTS/BOSSES entries; 0 otherwise
	State        RoomState
	Scroll       [][]uint8 // [x][y], dims Header.Width x Header.Height
	Tiles        [][]Tile  // [x][y], dims Header.Width*ChunkSize x Header.Height*ChunkSize
	TileSet      []*image.RGBA
	Doors        []Door
}
