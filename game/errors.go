package game

import "errors"

var (
	// ErrIllegalMove is returned when a move references an empty pit, a pit
	// that does not belong to the mover, or a finished game.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidConfiguration is returned when a board cannot be built from
	// the given dimensions or slots.
	ErrInvalidConfiguration = errors.New("invalid board configuration")
)
