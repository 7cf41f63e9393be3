package rom

import "testing"

func vanillaSizedBuffer() []byte {
	buf := make([]byte, 3*1024*1024) // 3 MiB, a multiple of 32768
	buf[palFlagOffset] = 0            // NTSC
	return buf
}

func TestNewDetectsHeaderlessVanillaROM(t *testing.T) {
	r, err := New(vanillaSizedBuffer())
	if err != nil {
		t.Fatalf("New() error = %v, want nil", err)
	}
	if r.HeaderLength() != 0 {
		t.Errorf("HeaderLength() = %d, want 0", r.HeaderLength())
	}
}

func TestNewDetectsCopierHeader(t *testing.T) {
	buf := append(make([]byte, copierHeaderLength), vanillaSizedBuffer()...)
	r, err := New(buf)
	if err != nil {
		t.Fatalf("New() error = %v, want nil", err)
	}
	if r.HeaderLength() != copierHeaderLength {
		t.Errorf("HeaderLength() = %d, want %d", r.HeaderLength(), copierHeaderLength)
	}
}

func TestNewRejectsPALROM(t *testing.T) {
	buf := vanillaSizedBuffer()
	buf[palFlagOffset] = 2
	if _, err := New(buf); err != ErrPALROM {
		t.Errorf("New() error = %v, want ErrPALROM", err)
	}
}

func TestNewRejectsTruncatedImage(t *testing.T) {
	if _, err := New(make([]byte, 10)); err == nil {
		t.Error("New() error = nil, want an error for a too-small image")
	}
}

func TestCPUToROM(t *testing.T) {
	tests := []struct {
		addr uint32
		want int
	}{
		{0x8F8000, 0x078000}, // bit 15 set; formula is applied regardless (§9 caveat)
		{0x9AB327, 0x0D3327 &^ 0},
	}
	// Second case computed directly from the formula for clarity.
	tests[1].want = int((tests[1].addr&0x7F0000)>>1 | (tests[1].addr & 0x7FFF))

	for _, tt := range tests {
		if got := CPUToROM(tt.addr); got != tt.want {
			t.Errorf("CPUToROM(0x%X) = 0x%X, want 0x%X", tt.addr, got, tt.want)
		}
	}
}

func TestReadU16(t *testing.T) {
	buf := []byte{0x34, 0x12}
	got, err := ReadU16(buf, 0)
	if err != nil {
		t.Fatalf("ReadU16() error = %v", err)
	}
	if got != 0x1234 {
		t.Errorf("ReadU16() = 0x%04X, want 0x1234", got)
	}
}

func TestReadU16OutOfBounds(t *testing.T) {
	if _, err := ReadU16([]byte{0x01}, 0); err == nil {
		t.Error("ReadU16() error = nil, want error on truncated buffer")
	}
}

func TestReadU24(t *testing.T) {
	buf := []byte{0x56, 0x34, 0x12}
	got, err := ReadU24(buf, 0)
	if err != nil {
		t.Fatalf("ReadU24() error = %v", err)
	}
	if got != 0x123456 {
		t.Errorf("ReadU24() = 0x%06X, want 0x123456", got)
	}
}

func TestMusicControlNameFallsBackToDecimal(t *testing.T) {
	if got := MusicControlName(7); got != "Mute" {
		t.Errorf("MusicControlName(7) = %q, want Mute", got)
	}
	if got := MusicControlName(200); got != "200" {
		t.Errorf("MusicControlName(200) = %q, want 200", got)
	}
}

func TestMusicTrackNameFallsBackToDecimal(t *testing.T) {
	if got := MusicTrackName(0x1E); got != "Tourian" {
		t.Errorf("MusicTrackName(0x1E) = %q, want Tourian", got)
	}
	if got := MusicTrackName(0xFF); got != "255" {
		t.Errorf("MusicTrackName(0xFF) = %q, want 255", got)
	}
}

func TestRoomOffsetsTableLength(t *testing.T) {
	if len(RoomOffsets) != Rooms {
		t.Errorf("len(RoomOffsets) = %d, want %d", len(RoomOffsets), Rooms)
	}
}
