package smroom

import (
	"testing"

	"smroomcore/internal/debug"
	"smroomcore/internal/rom"
)

func TestReadRoomHeader(t *testing.T) {
	buf := []byte{0x05, 0x06, 0x01, 0x02, 0x03, 0x04, 0x07, 0x08, 0x09, 0x34, 0x12}
	header, err := readRoomHeader(buf, 0)
	if err != nil {
		t.Fatalf("readRoomHeader() error = %v", err)
	}
	want := RoomHeader{
		Index: 0x05, Region: 0x06, X: 0x01, Y: 0x02,
		Width: 0x03, Height: 0x04, UpScroller: 0x07, DownScroller: 0x08,
		GraphicsFlags: 0x09, Doors: 0x1234,
	}
	if header != want {
		t.Errorf("readRoomHeader() = %+v, want %+v", header, want)
	}
}

func TestReadTileLayerBitFields(t *testing.T) {
	// high byte 0x74 = 0111_0100: property nibble 0x7, flipH bit (0x04)
	// set, flipV bit (0x08) clear, and its low 2 bits (00) contribute
	// nothing to the index beyond the low byte.
	buf := []byte{0xAB, 0x74}
	layer, err := readTileLayer(buf, 0)
	if err != nil {
		t.Fatalf("readTileLayer() error = %v", err)
	}
	if layer.Index != 0xAB {
		t.Errorf("Index = 0x%X, want 0xAB", layer.Index)
	}
	if !layer.FlipH || layer.FlipV {
		t.Errorf("FlipH/FlipV = %v/%v, want true/false", layer.FlipH, layer.FlipV)
	}
	if layer.Property != 7 {
		t.Errorf("Property = %d, want 7", layer.Property)
	}
}

func TestScanStateCodesUnknownCodeErrors(t *testing.T) {
	buf := []byte{0x00, 0x00} // not a recognized state code
	if _, err := scanStateCodes(buf, 0, -1, nil); err == nil {
		t.Error("scanStateCodes() error = nil, want ErrUnknownStateCode")
	}
}

func TestScanStateCodesDefaultsToFirstStandard(t *testing.T) {
	// DOORS entry (6 bytes) then STANDARD.
	buf := []byte{
		0xEB, 0xE5, 0, 0, 0, 0, // DOORS code + 4 padding bytes (6-byte entry)
		0xE6, 0xE5, // STANDARD
	}
	resolved, err := scanStateCodes(buf, 0, -1, nil)
	if err != nil {
		t.Fatalf("scanStateCodes() error = %v", err)
	}
	if len(resolved.codes) != 2 || resolved.codes[1] != StateStandard {
		t.Fatalf("codes = %v, want [DOORS STANDARD]", resolved.codes)
	}
	if resolved.chosenCode != StateStandard {
		t.Errorf("chosenCode = %v, want STANDARD", resolved.chosenCode)
	}
	if resolved.markerOffset != len(buf) {
		t.Errorf("markerOffset = %d, want %d", resolved.markerOffset, len(buf))
	}
}

func TestScanStateCodesLogsStandardFallback(t *testing.T) {
	buf := []byte{
		0xEB, 0xE5, 0, 0, 0, 0, // DOORS code + 4 padding bytes (6-byte entry)
		0xE6, 0xE5, // STANDARD
	}
	logger := debug.NewLogger(64)
	logger.SetComponentEnabled(debug.ComponentRoom, true)
	logger.SetMinLevel(debug.LogLevelDebug)

	if _, err := scanStateCodes(buf, 0, -1, logger); err != nil {
		t.Fatalf("scanStateCodes() error = %v", err)
	}

	entries := logger.Entries()
	if len(entries) != 1 {
		t.Fatalf("len(logger.Entries()) = %d, want 1", len(entries))
	}
	if entries[0].Component != debug.ComponentRoom || entries[0].Level != debug.LogLevelDebug {
		t.Errorf("logged entry = %+v, want Component=%s Level=%s", entries[0], debug.ComponentRoom, debug.LogLevelDebug)
	}
}

func TestReadDoorOutOfBoundsReturnsNil(t *testing.T) {
	r := &Room{Tiles: [][]Tile{{{Layer1: TileLayer{Property: 0}}}}}
	if d := r.ReadDoor(5, 5); d != nil {
		t.Errorf("ReadDoor() = %+v, want nil for out-of-bounds coordinates", d)
	}
	if d := r.ReadDoor(0, 0); d != nil {
		t.Errorf("ReadDoor() = %+v, want nil for a non-door cell", d)
	}
}

func TestReadDoorReturnsMatchingRecord(t *testing.T) {
	r := &Room{
		Tiles: [][]Tile{{{Layer1: TileLayer{Property: 9}, BTS: 1}}},
		Doors: []Door{{X: 1}, {X: 2}},
	}
	d := r.ReadDoor(0, 0)
	if d == nil || d.X != 2 {
		t.Errorf("ReadDoor() = %+v, want door with X=2", d)
	}
}

func TestStateCodeNameFallsBackToDecimal(t *testing.T) {
	if got := StateCodeName(StateStandard); got != "STANDARD" {
		t.Errorf("StateCodeName(STANDARD) = %q, want STANDARD", got)
	}
	if got := StateCodeName(StateCode(0x1234)); got != "4660" {
		t.Errorf("StateCodeName(0x1234) = %q, want 4660", got)
	}
}

// buildSyntheticRoomROM assembles a minimal but structurally valid vanilla
// ROM image exercising every stage of Open: a single-state STANDARD room,
// one 16x16-cell tile grid with no doors, and a graphics pipeline whose
// compressed blobs are all trivial (literal/fill runs) but still flow
// through the real decompressor, planar decoder, and assembler.
func buildSyntheticRoomROM(t *testing.T) []byte {
	t.Helper()
	const size = 0x1D0000
	buf := make([]byte, size)

	const headerOffset = 0x1000
	copy(buf[headerOffset:], []byte{
		0x00,       // index
		0x00,       // region (non-Ceres)
		0x00, 0x00, // x, y
		0x01, 0x01, // width, height
		0x00, 0x00, // up/down scroller
		0x00,       // graphicsFlags
		0x20, 0x10, // doors pointer (unused: room has zero doors)
	})

	stateListOffset := headerOffset + roomHeaderSize
	copy(buf[stateListOffset:], []byte{0xE6, 0xE5}) // STANDARD
	stateOffset := stateListOffset + 2

	copy(buf[stateOffset:], []byte{
		0x00, 0x20, 0x8F, // data: CPU ptr 0x8F2000
		0x00,       // tileSet
		0x00,       // musicTrack
		0x00,       // musicControl
		0x00, 0x00, // fx1
		0x00, 0x00, // enemies
		0x00, 0x00, // enemySet
		0x00, 0x00, // layer2
		0x00, 0x00, // scroll (< 0x8000: default scroll grid)
		0x00, 0x00, // unknown
		0x00, 0x00, // fx2
		0x00, 0x00, // plm
		0x00, 0x00, // background
		0x00, 0x00, // layerHandling
	})

	// Layer blob at cpuToRom(0x8F2000) = 0x07A000: roomDataSize=0x0200
	// (512 bytes of layer1, 256 bytes of BTS), entirely zero, followed by
	// the terminator.
	copy(buf[0x07A000:], []byte{
		0x01, 0x00, 0x02, // direct copy, length 2: roomDataSize LE bytes
		0xE6, 0xFF, 0x00, // long-form byte fill, length 768, value 0
		0xFF,
	})

	// Tile-set pointer triad at 0x7E6A2 (tileSet 0): assembler, graphics,
	// palette pointers, in that field order.
	copy(buf[0x7E6A2:], []byte{
		0x00, 0x50, 0x8F, // assembler: CPU ptr 0x8F5000
		0x00, 0x30, 0x8F, // graphics: CPU ptr 0x8F3000
		0x00, 0x40, 0x8F, // palette: CPU ptr 0x8F4000
	})

	buf[0x07B000] = 0xFF // graphics: empty compressed stream
	buf[0x07C000] = 0xFF // palette: empty compressed stream
	buf[0x1C8000] = 0xFF // common tiles: empty compressed stream
	buf[0x1CA09D] = 0xFF // shared assembler table: empty compressed stream

	// Region-specific assembler table at cpuToRom(0x8F5000) = 0x07D000:
	// one literal 8-byte assembler entry, all zero descriptors.
	copy(buf[0x07D000:], []byte{
		0x07, // direct copy, length 8
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0xFF,
	})

	return buf
}

func TestBuildTileSetLogsCeresSpecialCasing(t *testing.T) {
	buf := make([]byte, 0x200000)

	tileSetPointer := tileSetTableBase + int(CeresTileSet)*9
	copy(buf[tileSetPointer:], []byte{
		0x00, 0x60, 0x8F, // assembler table pointer -> CPU 0x8F6000
		0x00, 0x61, 0x8F, // tile graphics pointer -> CPU 0x8F6100
		0x00, 0x62, 0x8F, // palette pointer -> CPU 0x8F6200
	})

	// Region assembler table: one literal 8-byte all-zero descriptor.
	copy(buf[0x07E000:], []byte{0x07, 0, 0, 0, 0, 0, 0, 0, 0, 0xFF})
	buf[0x07E100] = 0xFF // tile graphics: empty compressed stream
	buf[0x07E200] = 0xFF // palette: empty compressed stream
	buf[commonTilesOffset] = 0xFF // common tiles: empty compressed stream

	header := RoomHeader{Region: CeresRegion}
	state := RoomState{TileSet: CeresTileSet}

	logger := debug.NewLogger(64)
	logger.SetComponentEnabled(debug.ComponentGFX, true)
	logger.SetMinLevel(debug.LogLevelDebug)

	if _, err := buildTileSet(buf, header, state, logger); err != nil {
		t.Fatalf("buildTileSet() error = %v", err)
	}

	entries := logger.Entries()
	if len(entries) != 2 {
		t.Fatalf("len(logger.Entries()) = %d, want 2 (Ceres buffer size + shared assembler skip)", len(entries))
	}
	for _, e := range entries {
		if e.Component != debug.ComponentGFX || e.Level != debug.LogLevelDebug {
			t.Errorf("logged entry = %+v, want Component=%s Level=%s", e, debug.ComponentGFX, debug.LogLevelDebug)
		}
	}
}

func TestOpenSyntheticRoom(t *testing.T) {
	buf := buildSyntheticRoomROM(t)
	r, err := rom.New(buf)
	if err != nil {
		t.Fatalf("rom.New() error = %v", err)
	}

	room, err := Open(r, 0x1000, -1, nil)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	if got, want := len(room.StateCodes), 1; got != want {
		t.Fatalf("len(StateCodes) = %d, want %d", got, want)
	}
	if room.StateCodes[0] != StateStandard {
		t.Errorf("StateCodes[0] = %v, want STANDARD", room.StateCodes[0])
	}

	wantISize := int(room.Header.Width) * ChunkSize
	wantJSize := int(room.Header.Height) * ChunkSize
	if len(room.Tiles) != wantISize {
		t.Fatalf("len(Tiles) = %d, want %d", len(room.Tiles), wantISize)
	}
	if len(room.Tiles[0]) != wantJSize {
		t.Fatalf("len(Tiles[0]) = %d, want %d", len(room.Tiles[0]), wantJSize)
	}

	if len(room.Scroll) != int(room.Header.Width) || len(room.Scroll[0]) != int(room.Header.Height) {
		t.Errorf("Scroll dims = %dx%d, want %dx%d", len(room.Scroll), len(room.Scroll[0]), room.Header.Width, room.Header.Height)
	}

	if len(room.Doors) != 0 {
		t.Errorf("len(Doors) = %d, want 0", len(room.Doors))
	}

	if len(room.TileSet) != 1 {
		t.Fatalf("len(TileSet) = %d, want 1", len(room.TileSet))
	}
	bounds := room.TileSet[0].Bounds()
	if bounds.Dx() != TileSize || bounds.Dy() != TileSize {
		t.Errorf("TileSet[0] bounds = %v, want %dx%d", bounds, TileSize, TileSize)
	}

	if d := room.ReadDoor(0, 0); d != nil {
		t.Errorf("ReadDoor(0,0) = %+v, want nil (no doors in this room)", d)
	}
}
