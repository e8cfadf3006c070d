package engine

import "errors"

var (
	// ErrBoundsTooSmall is returned when the play area cannot hold a snake and a food
	ErrBoundsTooSmall = errors.New("play bounds too small")

	// ErrInvalidState is returned when a supplied state breaks a board invariant
	ErrInvalidState = errors.New("invalid game state")

	// ErrBoardFull is returned by food placement when no free interior cell remains
	ErrBoardFull = errors.New("no free cell for food")
)
