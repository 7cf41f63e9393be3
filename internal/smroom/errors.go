package smroom

import "errors"

// ErrUnknownStateCode is returned when the state-code scan encounters a
// 16-bit value outside the fixed nine-entry table.
var ErrUnknownStateCode = errors.New("smroom: unrecognized state code")

// ErrTruncatedBuffer is returned when a decompressed blob is shorter than
// the structure being read out of it requires.
var ErrTruncatedBuffer = errors.New("smroom: truncated decompressed buffer")
