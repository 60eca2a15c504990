package domain

import "errors"

// ErrProtocolViolation is returned when the driver receives a message it cannot handle,
// or when a sweep does not write every cell exactly once.
var ErrProtocolViolation = errors.New("protocol violation")

// ErrDimensionMismatch is returned when grid and sweep dimensions disagree.
var ErrDimensionMismatch = errors.New("dimension mismatch")

// ErrOutOfOrderResume is returned when a routine is resumed with a value of the wrong
// kind for its pending message.
var ErrOutOfOrderResume = errors.New("out of order resume")

// ErrRoutineComplete is returned when a finished routine is resumed.
var ErrRoutineComplete = errors.New("routine already complete")

// ErrInvalidDimensions is returned when a grid or sweep is created with a non-positive size.
var ErrInvalidDimensions = errors.New("invalid dimensions")
