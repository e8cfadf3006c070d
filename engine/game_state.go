package engine

import "slices"

// GameState is a snapshot of one game at a tick boundary.
// Snake[0] is the head; order runs head to tail.
type GameState struct {
	Snake     []Coordinate
	Direction Direction
	Food      Coordinate
	HasFood   bool // false only once the snake fills the board
	Score     int
	Alive     bool
	Cause     Cause
	Tick      uint64
}

// Head returns the first snake segment
func (s GameState) Head() Coordinate {
	return s.Snake[0]
}

// Len returns the snake length
func (s GameState) Len() int {
	return len(s.Snake)
}

// Clone returns a copy that shares no memory with s
func (s GameState) Clone() GameState {
	c := s
	c.Snake = slices.Clone(s.Snake)
	return c
}

// CellAt classifies c. Linear in snake length; renderers drawing the full
// board should walk Snake directly instead.
func (s GameState) CellAt(c Coordinate) Cell {
	for i, seg := range s.Snake {
		if seg == c {
			if i == 0 {
				return CellHead
			}
			return CellSnake
		}
	}
	if s.HasFood && s.Food == c {
		return CellFood
	}
	return CellEmpty
}
