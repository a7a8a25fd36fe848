package maze

import "errors"

var (
	// ErrInvalidDimension is returned for a side below one or above MaxDimension.
	ErrInvalidDimension = errors.New("invalid maze dimensions")
	// ErrStartOutOfBounds is returned when the start cell is not a floor
	// inside the grid.
	ErrStartOutOfBounds = errors.New("start is outside the maze or on a wall")
	// ErrDisconnectedRegion is returned when nothing can be reached from the
	// start cell.
	ErrDisconnectedRegion = errors.New("start has no reachable floor neighbors")
	// ErrUnknownAlgorithm is returned for an unrecognized Algorithm name.
	ErrUnknownAlgorithm = errors.New("unknown maze algorithm")
	// ErrMalformedGrid is returned by ParseGrid for ragged rows or unknown
	// glyphs.
	ErrMalformedGrid = errors.New("malformed grid")
)
