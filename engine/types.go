package engine

// Coordinate is a board cell addressed by row and column
type Coordinate struct {
	Row int
	Col int
}

// Add returns the coordinate offset by one unit in the given direction
func (c Coordinate) Add(d Direction) Coordinate {
	dr, dc := d.Delta()
	return Coordinate{Row: c.Row + dr, Col: c.Col + dc}
}

// Direction is the snake heading. The zero value DirNone means no input
type Direction uint8

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Valid reports whether d is one of the four headings
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// Opposite returns the reverse heading, DirNone for invalid input
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	}
	return DirNone
}

// Delta returns the row and column offset of a single move
func (d Direction) Delta() (dRow, dCol int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	case DirRight:
		return 0, 1
	}
	return 0, 0
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return "none"
}

// Cause records why a run ended
type Cause uint8

const (
	CauseNone Cause = iota
	CauseWall
	CauseSelf
	CauseBoardFull
)

func (c Cause) String() string {
	switch c {
	case CauseWall:
		return "wall"
	case CauseSelf:
		return "self"
	case CauseBoardFull:
		return "board_full"
	}
	return "none"
}

// Cell classifies a board coordinate for rendering
type Cell uint8

const (
	CellEmpty Cell = iota
	CellHead
	CellSnake
	CellFood
)

// Bounds is the play area size, border rows and columns included
type Bounds struct {
	Height int
	Width  int
}

// Interior reports whether c lies strictly inside the border
func (b Bounds) Interior(c Coordinate) bool {
	return c.Row > 0 && c.Row < b.Height-1 && c.Col > 0 && c.Col < b.Width-1
}

// InteriorCells returns the number of playable cells
func (b Bounds) InteriorCells() int {
	return (b.Height - 2) * (b.Width - 2)
}
