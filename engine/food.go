package engine

import "math/rand/v2"

// FoodPlacer picks food cells uniformly from the free interior
type FoodPlacer struct {
	bounds   Bounds
	rng      *rand.Rand
	attempts int
	free     []Coordinate // scratch for the scan fallback
}

// NewFoodPlacer creates a placer; attempts <= 0 skips sampling and always scans
func NewFoodPlacer(b Bounds, rng *rand.Rand, attempts int) *FoodPlacer {
	return &FoodPlacer{
		bounds:   b,
		rng:      rng,
		attempts: attempts,
	}
}

// Place returns a free interior cell.
// Rejection sampling covers sparse boards; once it misses attempts times the
// interior is scanned and one free cell is chosen uniformly. ErrBoardFull when none is left
func (p *FoodPlacer) Place(occupied *OccupancyGrid) (Coordinate, error) {
	rows, cols := p.bounds.Height-2, p.bounds.Width-2

	for i := 0; i < p.attempts; i++ {
		c := Coordinate{
			Row: 1 + p.rng.IntN(rows),
			Col: 1 + p.rng.IntN(cols),
		}
		if !occupied.Has(c) {
			return c, nil
		}
	}

	p.free = p.free[:0]
	for r := 1; r <= rows; r++ {
		for c := 1; c <= cols; c++ {
			coord := Coordinate{Row: r, Col: c}
			if !occupied.Has(coord) {
				p.free = append(p.free, coord)
			}
		}
	}
	if len(p.free) == 0 {
		return Coordinate{}, ErrBoardFull
	}
	return p.free[p.rng.IntN(len(p.free))], nil
}
