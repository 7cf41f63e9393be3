package smroom

import "strconv"

// StateCode is one of the fixed 16-bit markers that introduce a state entry
// in the list immediately following a RoomHeader.
type StateCode uint16

const (
	StateStandard           StateCode = 0xE5E6
	StateDoors              StateCode = 0xE5EB
	StateTourianBoss1       StateCode = 0xE5FF
	StateEvents             StateCode = 0xE612
	StateBosses             StateCode = 0xE629
	StateMorph              StateCode = 0xE640
	StateMorphAndMissiles   StateCode = 0xE652
	StatePowerBombs         StateCode = 0xE669
	StateSpeedBooster       StateCode = 0xE678
)

// entrySize is the number of bytes, including the 2-byte code itself, that
// a state entry of this code occupies in the ROM.
func (c StateCode) entrySize() (int, bool) {
	switch c {
	case StateStandard:
		return 2, true
	case StateDoors:
		return 6, true
	case StateTourianBoss1:
		return 4, true
	case StateEvents:
		return 5, true
	case StateBosses:
		return 5, true
	case StateMorph:
		return 4, true
	case StateMorphAndMissiles:
		return 4, true
	case StatePowerBombs:
		return 4, true
	case StateSpeedBooster:
		return 4, true
	default:
		return 0, false
	}
}

// recordsPredicateByte reports whether this code's entry ends with a
// 1-byte predicate immediately before the 2-byte pointer the resolver
// reads at marker-3, the way EVENTS and BOSSES entries do.
func (c StateCode) recordsPredicateByte() bool {
	return c == StateEvents || c == StateBosses
}

// StateCodeName returns a human-readable name for the known state codes,
// or the decimal value for anything else (state codes outside the fixed
// table are a fatal parse error well before a caller would ask for their
// name, but the lookup itself never fails).
func StateCodeName(code StateCode) string {
	switch code {
	case StateStandard:
		return "STANDARD"
	case StateDoors:
		return "Doors"
	case StateTourianBoss1:
		return "Tourian Boss 1"
	case StateEvents:
		return "Events"
	case StateBosses:
		return "Bosses"
	case StateMorph:
		return "Morph"
	case StateMorphAndMissiles:
		return "Morph & Missiles"
	case StatePowerBombs:
		return "Power Bombs"
	case StateSpeedBooster:
		return "Speed Booster"
	default:
		return strconv.Itoa(int(code))
	}
}
