package rom

import "strconv"

// MusicControlName returns a human-readable description of a RoomState
// MusicControl byte, falling back to a decimal rendering of the raw value
// for anything not in the fixed vanilla table.
func MusicControlName(musicControl uint8) string {
	switch musicControl {
	case 0:
		return "No Change"
	case 1:
		return "Samus appear"
	case 2:
		return "Aquire item"
	case 3:
		return "Elevator"
	case 4:
		return "Hall before statues"
	case 5:
		return "No change/Song One"
	case 6:
		return "Song Two"
	case 7:
		return "Mute"
	default:
		return strconv.Itoa(int(musicControl))
	}
}

// MusicTrackName returns a human-readable description of a RoomState
// MusicTrack byte, falling back to a decimal rendering of the raw value for
// anything not in the fixed vanilla table.
func MusicTrackName(musicTrack uint8) string {
	switch musicTrack {
	case 0x00:
		return "None"
	case 0x03:
		return "Title Screen"
	case 0x06:
		return "Empty Crateria"
	case 0x09:
		return "Space Pirate"
	case 0x0C:
		return "Samus Theme"
	case 0x0F:
		return "Green Brinstar"
	case 0x12:
		return "Red Brinstar"
	case 0x15:
		return "Upper Norfair"
	case 0x18:
		return "Lower Norfair"
	case 0x1B:
		return "Maridia"
	case 0x1E:
		return "Tourian"
	case 0x21:
		return "Mother Brain"
	case 0x24:
		return "Boss Fight 1(04,05,06,80)"
	case 0x27:
		return "Boss Fight 2(04,05,06)"
	case 0x2A:
		return "Miniboss Fight"
	case 0x2D:
		return "Ceres"
	case 0x30:
		return "Wrecked Ship"
	case 0x33:
		return "Zebes Boom"
	case 0x36:
		return "Intro"
	case 0x39:
		return "Death"
	case 0x3C:
		return "Credits"
	case 0x3F:
		return "The last metroid is in captivity"
	case 0x42:
		return "The galaxy is at peace"
	case 0x45:
		return "Large Metroid"
	case 0x48:
		return "Samus Theme"
	default:
		return strconv.Itoa(int(musicTrack))
	}
}
