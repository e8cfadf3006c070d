package constants

import "time"

// Game Loop Timing Constants
const (
	// TickInterval is the fixed simulation step; one snake move per tick
	TickInterval = 100 * time.Millisecond

	// GameOverLinger is how long the final score stays visible before exit
	GameOverLinger = 2 * time.Second
)

// Board Constants
const (
	// MinBoardSize is the smallest accepted play height/width, border included.
	// Leaves a 3x3 interior so the first food always has room.
	MinBoardSize = 5

	// BorderWidth is the wall thickness on each side of the play area
	BorderWidth = 1
)

// Scoring and Food
const (
	// ScorePerFood is added to the score for each food eaten
	ScorePerFood = 10

	// FoodSampleAttempts bounds the random probes before falling back to a free-cell scan
	FoodSampleAttempts = 64
)
