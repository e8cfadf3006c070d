package engine

// OccupancyGrid is a dense row-major bitmap of snake-occupied cells.
// Kept in lockstep with the body slice so collision and food probes are O(1)
type OccupancyGrid struct {
	Width  int
	Height int
	Cells  []bool // index = row*Width + col
	count  int
}

// NewOccupancyGrid creates an empty grid covering the whole play area
func NewOccupancyGrid(b Bounds) *OccupancyGrid {
	return &OccupancyGrid{
		Width:  b.Width,
		Height: b.Height,
		Cells:  make([]bool, b.Width*b.Height),
	}
}

func (g *OccupancyGrid) index(c Coordinate) (int, bool) {
	if c.Row < 0 || c.Row >= g.Height || c.Col < 0 || c.Col >= g.Width {
		return 0, false
	}
	return c.Row*g.Width + c.Col, true
}

// Set marks c occupied. Out of bounds is a no-op
func (g *OccupancyGrid) Set(c Coordinate) {
	idx, ok := g.index(c)
	if !ok || g.Cells[idx] {
		return
	}
	g.Cells[idx] = true
	g.count++
}

// Clear marks c free
func (g *OccupancyGrid) Clear(c Coordinate) {
	idx, ok := g.index(c)
	if !ok || !g.Cells[idx] {
		return
	}
	g.Cells[idx] = false
	g.count--
}

// Has reports whether c is occupied. Out of bounds reads as free
func (g *OccupancyGrid) Has(c Coordinate) bool {
	idx, ok := g.index(c)
	return ok && g.Cells[idx]
}

// Count returns the number of occupied cells
func (g *OccupancyGrid) Count() int {
	return g.count
}
