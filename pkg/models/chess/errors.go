package chess

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidMove is matched by every rejected wall. Nothing is mutated
	// when it is returned.
	ErrInvalidMove = errors.New("invalid move")

	ErrSamePoint   = fmt.Errorf("%w: source and target are the same point", ErrInvalidMove)
	ErrOutOfRange  = fmt.Errorf("%w: point is outside the grid", ErrInvalidMove)
	ErrNotAdjacent = fmt.Errorf("%w: points are not adjacent", ErrInvalidMove)
	ErrWallExists  = fmt.Errorf("%w: wall already exists", ErrInvalidMove)
	ErrWrongTurn   = fmt.Errorf("%w: not this player's turn", ErrInvalidMove)
	ErrGameOver    = fmt.Errorf("%w: game is over", ErrInvalidMove)
	ErrFreeOwner   = fmt.Errorf("%w: walls must be drawn by a player", ErrInvalidMove)

	// ErrInvariantViolation marks an internal consistency failure.
	ErrInvariantViolation = errors.New("invariant violation")
)
