package smroom

import (
	"fmt"

	"smroomcore/internal/rom"
)

// readDoorTable resolves the door pointer table at header.Doors and reads
// count Door records out of it. Both the pointer-table offset and the
// record offset it resolves to get headerLength added, unlike anything in
// the graphics pipeline.
func readDoorTable(buf []byte, header RoomHeader, headerLength int, count int) ([]Door, error) {
	doors := make([]Door, 0, count)
	tableOffset := headerLength + rom.CPUToROM(0x8F0000|uint32(header.Doors))

	for i := 0; i < count; i++ {
		ptr, err := rom.ReadU16(buf, tableOffset+2*i)
		if err != nil {
			return nil, fmt.Errorf("reading door pointer %d at 0x%X: %w", i, tableOffset+2*i, err)
		}
		recordOffset := headerLength + rom.CPUToROM(0x830000|uint32(ptr))
		door, err := readDoorRecord(buf, recordOffset)
		if err != nil {
			return nil, fmt.Errorf("reading door record %d at 0x%X: %w", i, recordOffset, err)
		}
		doors = append(doors, door)
	}

	return doors, nil
}

// ReadDoor returns the door connected to the tile at (x, y), or nil if
// that cell is out of bounds or isn't a door cell.
func (r *Room) ReadDoor(x, y int) *Door {
	if x < 0 || y < 0 || x >= len(r.Tiles) {
		return nil
	}
	if y >= len(r.Tiles[x]) {
		return nil
	}
	tile := r.Tiles[x][y]
	if tile.Layer1.Property != 9 {
		return nil
	}
	if int(tile.BTS) >= len(r.Doors) {
		return nil
	}
	return &r.Doors[tile.BTS]
}
