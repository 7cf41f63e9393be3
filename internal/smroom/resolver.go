package smroom

import (
	"fmt"

	"smroomcore/internal/debug"
	"smroomcore/internal/rom"
)

// resolvedState is what scanStateCodes hands back to Room.Open: the full
// ordered list of codes encountered, plus everything needed to locate and
// interpret the one the caller asked for.
type resolvedState struct {
	codes      []StateCode
	stateValue uint8
	// markerOffset is the file offset immediately after the chosen entry's
	// state code.
	markerOffset int
	chosenCode   StateCode
}

// scanStateCodes walks the state-code list starting at offset (immediately
// after a RoomHeader), selecting the entry the way §4.2 describes: the
// caller-chosen index if in range, else the first STANDARD fallback.
// Any code outside the fixed table is a fatal parse error. logger is
// optional (nil-safe) and receives a Debug entry whenever the STANDARD
// fallback is taken because stateIndex didn't match any earlier entry.
func scanStateCodes(buf []byte, offset int, stateIndex int, logger *debug.Logger) (resolvedState, error) {
	var result resolvedState
	found := false

	for i := 0; ; i++ {
		code16, err := rom.ReadU16(buf, offset)
		if err != nil {
			return resolvedState{}, fmt.Errorf("smroom: reading state code at 0x%X: %w", offset, err)
		}
		code := StateCode(code16)

		size, known := code.entrySize()
		if !known {
			return resolvedState{}, fmt.Errorf("%w: 0x%04X at 0x%X", ErrUnknownStateCode, code16, offset)
		}
		offset += size
		result.codes = append(result.codes, code)

		if i == stateIndex || (code == StateStandard && !found) {
			if code == StateStandard && i != stateIndex {
				logger.Logf(debug.ComponentRoom, debug.LogLevelDebug, "state index %d not matched by entry %d; falling back to STANDARD at 0x%X", stateIndex, i, offset)
			}
			found = true
			result.markerOffset = offset
			result.chosenCode = code
			if code.recordsPredicateByte() {
				b, err := rom.ReadByte(buf, offset-3)
				if err != nil {
					return resolvedState{}, err
				}
				result.stateValue = b
			}
		}

		if code == StateStandard {
			break
		}
	}

	return result, nil
}
