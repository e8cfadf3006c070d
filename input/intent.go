package input

import "github.com/lixenwraith/snake/engine"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentQuit   // q, Q, Ctrl+C
	IntentResize // Terminal resize event

	IntentMoveUp    // Up arrow
	IntentMoveDown  // Down arrow
	IntentMoveLeft  // Left arrow
	IntentMoveRight // Right arrow
)

// Direction maps a move intent to its heading; DirNone for everything else
func (i IntentType) Direction() engine.Direction {
	switch i {
	case IntentMoveUp:
		return engine.DirUp
	case IntentMoveDown:
		return engine.DirDown
	case IntentMoveLeft:
		return engine.DirLeft
	case IntentMoveRight:
		return engine.DirRight
	}
	return engine.DirNone
}

func (i IntentType) String() string {
	switch i {
	case IntentQuit:
		return "quit"
	case IntentResize:
		return "resize"
	case IntentMoveUp:
		return "up"
	case IntentMoveDown:
		return "down"
	case IntentMoveLeft:
		return "left"
	case IntentMoveRight:
		return "right"
	}
	return "none"
}
