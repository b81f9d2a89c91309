package chess

import "errors"

var (
	// ErrOutOfBounds is returned for any coordinate outside the grid.
	ErrOutOfBounds = errors.New("out of board bounds")
	// ErrUnknownKind is returned when the piece catalog has no entry for a
	// requested kind symbol.
	ErrUnknownKind = errors.New("unknown piece kind")
	// ErrEmptySquare is returned when an operation requires an occupant.
	ErrEmptySquare = errors.New("no piece on square")
	// ErrIllegalMove is returned when a requested move is not in the current
	// legal-move set.
	ErrIllegalMove = errors.New("illegal move")
)
